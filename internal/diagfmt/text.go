package diagfmt

import (
	"io"

	"speclint/internal/diag"
	"speclint/internal/source"
)

// Text печатает диагностики по одной строке:
// <file>:<line>: [<rule-id>] <message>
func Text(w io.Writer, bag *diag.Bag, fs *source.FileSet) error {
	_, err := io.WriteString(w, diag.FormatTextDiagnostics(bag.Items(), fs))
	return err
}
