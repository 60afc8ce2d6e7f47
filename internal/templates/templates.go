// Package templates holds the starter template catalog and the merge
// operation that fills {placeholder} variables into a template body.
package templates

// Template describes a document body with named placeholders.
type Template struct {
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Variables []string `json:"variables"`
	Body      string   `json:"body"`
}

// Defaults returns the fixed starter templates. They are served
// directly, never read from or written to the store, and cannot be
// edited through any endpoint.
func Defaults() []Template {
	return []Template{
		{
			Name:      "Mutual NDA",
			Category:  "contract",
			Variables: []string{"party_a_name", "party_b_name", "effective_date", "jurisdiction"},
			Body: `This Mutual Non-Disclosure Agreement (the "Agreement") is made effective on {effective_date} between {party_a_name} and {party_b_name}. ` +
				`Each party agrees to hold Confidential Information in strict confidence and not to disclose it to any third party... Governing law: {jurisdiction}.`,
		},
		{
			Name:      "Advisor Agreement",
			Category:  "corporate",
			Variables: []string{"company_name", "advisor_name", "equity_percent", "vesting_months"},
			Body: `This Advisor Agreement is entered into by and between {company_name} and {advisor_name}. ` +
				`Compensation shall be equity equal to {equity_percent}% vesting over {vesting_months} months...`,
		},
		{
			Name:      "IP Assignment",
			Category:  "ip",
			Variables: []string{"assignor_name", "assignee_company", "effective_date"},
			Body:      `For good and valuable consideration, {assignor_name} hereby assigns to {assignee_company} all right, title, and interest in and to the Assigned Inventions effective {effective_date}...`,
		},
	}
}
