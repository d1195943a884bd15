package schema

// Fragment is one level of an adaptive tree form document: an optional label
// and description, the leaf properties entered at this level, and the
// mutually exclusive subwidget branches below it. Fragments nest to
// arbitrary depth; a document's root fragment describes the whole form.
//
// The struct has no yaml tags: yaml.v3 lowercases Go field names by default,
// which already matches the document keys.
type Fragment struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Properties  []Property `json:"properties,omitempty"`
	Subwidgets  []Fragment `json:"subwidgets,omitempty"`
}

// Property declares a single leaf input on a fragment. Field carries the
// widget kind identifier, resolved against the field registry at build time.
type Property struct {
	Name        string `json:"name"`
	Field       string `json:"field"`
	Description string `json:"description,omitempty"`
}
