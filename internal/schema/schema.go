// Package schema declares the record shapes stored by the service.
//
// Declarations are documentation and boundary-validation metadata only:
// handlers consult them to check required fields and fill defaults, and
// the /schema endpoint renders them for tooling. The storage layer never
// reads them — any collection name is a valid storage target.
package schema

import "fmt"

// Field describes one field of a declared collection.
type Field struct {
	Name     string
	Type     string
	Required bool
	Default  any
	Doc      string
}

// Collection is a declared record shape. The collection name is the
// lowercase of the record kind.
type Collection struct {
	Name   string
	Fields []Field
}

// Collections returns the five declared record kinds.
func Collections() []Collection {
	return []Collection{
		{
			Name: "client",
			Fields: []Field{
				{Name: "name", Type: "str", Required: true, Doc: "Client or company name"},
				{Name: "email", Type: "Optional[str]", Doc: "Primary contact email"},
				{Name: "phone", Type: "Optional[str]", Doc: "Primary contact phone"},
				{Name: "company_type", Type: "Optional[str]", Doc: "LLC, C-Corp, S-Corp, etc."},
				{Name: "jurisdiction", Type: "Optional[str]", Doc: "State or country of formation"},
				{Name: "founders", Type: "Optional[List[Dict]]", Default: []any{}, Doc: "List of founders with roles and ownership"},
			},
		},
		{
			Name: "matter",
			Fields: []Field{
				{Name: "client_id", Type: "str", Required: true, Doc: "Associated client id"},
				{Name: "title", Type: "str", Required: true, Doc: "Matter title, e.g., Incorporation, Fundraise, IP Assignment"},
				{Name: "status", Type: "str", Default: "open", Doc: "open, in_progress, closed"},
				{Name: "description", Type: "Optional[str]", Doc: "Matter description"},
				{Name: "tags", Type: "Optional[List[str]]", Default: []any{}},
			},
		},
		{
			Name: "documenttemplate",
			Fields: []Field{
				{Name: "name", Type: "str", Required: true, Doc: "Template name, e.g., Mutual NDA"},
				{Name: "category", Type: "str", Default: "contract", Doc: "contract, corporate, hr, privacy, etc."},
				{Name: "variables", Type: "List[str]", Default: []any{}, Doc: "List of variable placeholders used in template body"},
				{Name: "body", Type: "str", Required: true, Doc: "Template body text with {placeholders}"},
			},
		},
		{
			Name: "document",
			Fields: []Field{
				{Name: "client_id", Type: "Optional[str]", Doc: "Client id if applicable"},
				{Name: "matter_id", Type: "Optional[str]", Doc: "Matter id if applicable"},
				{Name: "title", Type: "str", Required: true, Doc: "Document title"},
				{Name: "category", Type: "str", Default: "contract"},
				{Name: "content", Type: "str", Required: true, Doc: "Generated document text/content"},
				{Name: "template_id", Type: "Optional[str]", Doc: "Source template id"},
				{Name: "variables", Type: "Optional[Dict[str, str]]", Default: map[string]any{}, Doc: "Variables used for generation"},
			},
		},
		{
			Name: "task",
			Fields: []Field{
				{Name: "client_id", Type: "Optional[str]"},
				{Name: "matter_id", Type: "Optional[str]"},
				{Name: "title", Type: "str", Required: true},
				{Name: "status", Type: "str", Default: "todo", Doc: "todo, in_progress, done"},
				{Name: "due_date", Type: "Optional[date]"},
				{Name: "assignee", Type: "Optional[str]"},
				{Name: "notes", Type: "Optional[str]"},
			},
		},
	}
}

// Lookup returns the declaration for a collection name, if one exists.
// Unknown names are fine: records in undeclared collections pass
// through the boundary unvalidated.
func Lookup(name string) (Collection, bool) {
	for _, c := range Collections() {
		if c.Name == name {
			return c, true
		}
	}
	return Collection{}, false
}

// Validate checks that every required field is present and non-nil.
// Reference fields (client_id, matter_id, template_id) are checked for
// presence only, never resolved against the store.
func (c Collection) Validate(record map[string]any) error {
	for _, f := range c.Fields {
		if !f.Required {
			continue
		}
		v, ok := record[f.Name]
		if !ok || v == nil {
			return fmt.Errorf("missing required field %q for collection %q", f.Name, c.Name)
		}
		if s, isStr := v.(string); isStr && s == "" {
			return fmt.Errorf("missing required field %q for collection %q", f.Name, c.Name)
		}
	}
	return nil
}

// ApplyDefaults fills declared default values for fields absent from
// the record. The record is modified in place.
func (c Collection) ApplyDefaults(record map[string]any) {
	for _, f := range c.Fields {
		if f.Default == nil {
			continue
		}
		if _, ok := record[f.Name]; !ok {
			record[f.Name] = f.Default
		}
	}
}

// Description is the wire shape of one collection on /schema.
type Description struct {
	Name   string            `json:"name"`
	Fields map[string]string `json:"fields"`
}

// Describe renders every declared collection as a name plus a mapping
// from field name to a human-readable type descriptor.
func Describe() []Description {
	cols := Collections()
	out := make([]Description, len(cols))
	for i, c := range cols {
		fields := make(map[string]string, len(c.Fields))
		for _, f := range c.Fields {
			fields[f.Name] = f.Type
		}
		out[i] = Description{Name: c.Name, Fields: fields}
	}
	return out
}
