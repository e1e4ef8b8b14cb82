package cv

// ContactItem is one rendered entry of the header's contact list.
type ContactItem struct {
	Field  string `json:"field"`
	Icon   string `json:"icon"`           // Phosphor icon class, e.g. "ph-globe"
	Label  string `json:"label"`
	Href   string `json:"href,omitempty"` // Empty renders the label as plain text
	NewTab bool   `json:"new_tab,omitempty"`
}

// FieldResult is the outcome of formatting one contact field.
// A result with a non-nil Err carries no items.
type FieldResult struct {
	Field string
	Items []ContactItem
	Err   error
}

// Skipped reports whether the field was dropped from the header.
func (r FieldResult) Skipped() bool {
	return r.Err != nil
}

// SkippedField is the API view of a dropped contact field.
type SkippedField struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// HeaderView is the JSON form of a CV header.
type HeaderView struct {
	Title    string         `json:"title"`
	Headline string         `json:"headline"`
	Items    []ContactItem  `json:"items"`
	Skipped  []SkippedField `json:"skipped"`
	Download string         `json:"download"`
}
