package templates

import (
	"fmt"
	"strings"
)

// MissingVariableError reports a placeholder in a template body with no
// corresponding entry in the variable mapping.
type MissingVariableError struct {
	Key string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("missing variable: %s", e.Key)
}

// Merge substitutes every single-brace {name} placeholder in body with
// the corresponding variable's textual value. If any placeholder has no
// variable, Merge fails with a *MissingVariableError and produces no
// partial output.
//
// The grammar has no escape form for literal braces: an unterminated,
// empty, or stray brace is a merge error. Known limitation.
func Merge(body string, vars map[string]any) (string, error) {
	var out strings.Builder
	for i := 0; i < len(body); {
		c := body[i]
		if c == '}' {
			return "", fmt.Errorf("unmatched '}' at offset %d", i)
		}
		if c != '{' {
			out.WriteByte(c)
			i++
			continue
		}

		end := strings.IndexByte(body[i+1:], '}')
		if end < 0 {
			return "", fmt.Errorf("unterminated placeholder at offset %d", i)
		}
		name := body[i+1 : i+1+end]
		if name == "" {
			return "", fmt.Errorf("empty placeholder at offset %d", i)
		}
		val, ok := vars[name]
		if !ok {
			return "", &MissingVariableError{Key: name}
		}
		out.WriteString(fmt.Sprint(val))
		i += end + 2
	}
	return out.String(), nil
}
