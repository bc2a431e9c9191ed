package diag

import (
	"speclint/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// FixEdit is a single text replacement. speclint never applies edits to the
// linted files; fixes are rendered as suggestions only.
type FixEdit struct {
	Span    source.Span
	NewText string
}

type Fix struct {
	Title string
	Edits []FixEdit
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}

// WithFix returns a copy of the diagnostic with an extra fix suggestion.
func (d Diagnostic) WithFix(title string, edits ...FixEdit) Diagnostic {
	d.Fixes = append(d.Fixes, Fix{Title: title, Edits: edits})
	return d
}
