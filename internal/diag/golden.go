package diag

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"speclint/internal/source"
)

type goldenDiagnostic struct {
	Severity string
	Rule     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatTextDiagnostics renders diagnostics one per line in the CLI text
// format: <file>:<line>: [<rule-id>] <message>. Ordering is deterministic.
func FormatTextDiagnostics(diags []Diagnostic, fs *source.FileSet) string {
	rendered := collectRendered(diags, fs, false)

	var b strings.Builder
	for i, d := range rendered {
		fmt.Fprintf(&b, "%s:%d: [%s] %s", d.Path, d.Line, d.Rule, d.Message)
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// FormatGoldenDiagnostics renders diagnostics into a stable, single-line-per-entry
// representation suitable for golden files: severity, rule, position, message.
func FormatGoldenDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	rendered := collectRendered(diags, fs, includeNotes)

	var b strings.Builder
	for i, d := range rendered {
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", d.Severity, d.Rule, d.Path, d.Line, d.Column, d.Message)
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func collectRendered(diags []Diagnostic, fs *source.FileSet, includeNotes bool) []goldenDiagnostic {
	if fs == nil || len(diags) == 0 {
		return nil
	}

	rendered := make([]goldenDiagnostic, 0, len(diags))
	for _, d := range diags {
		loc, ok := resolveSpan(fs, d.Primary)
		if ok {
			rendered = append(rendered, goldenDiagnostic{
				Severity: severityLabel(d.Severity),
				Rule:     d.Code.Name(),
				Path:     loc.Path,
				Line:     loc.Line,
				Column:   loc.Column,
				Message:  sanitizeMessage(d.Message),
			})
		}

		if includeNotes {
			for _, note := range d.Notes {
				nloc, nok := resolveSpan(fs, note.Span)
				if !nok {
					continue
				}
				rendered = append(rendered, goldenDiagnostic{
					Severity: "note",
					Rule:     d.Code.Name(),
					Path:     nloc.Path,
					Line:     nloc.Line,
					Column:   nloc.Column,
					Message:  sanitizeMessage(note.Msg),
				})
			}
		}
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Severity != dj.Severity {
			return di.Severity < dj.Severity
		}
		if di.Rule != dj.Rule {
			return di.Rule < dj.Rule
		}
		return di.Message < dj.Message
	})

	return rendered
}

type resolvedSpan struct {
	Path   string
	Line   uint32
	Column uint32
}

func resolveSpan(fs *source.FileSet, span source.Span) (loc resolvedSpan, ok bool) {
	defer func() {
		if recover() != nil {
			loc = resolvedSpan{}
			ok = false
		}
	}()

	file := fs.Get(span.File)
	start, _ := fs.Resolve(span)
	return resolvedSpan{
		Path:   cleanPath(file.FormatPath("relative", fs.BaseDir())),
		Line:   start.Line,
		Column: start.Col,
	}, true
}

func cleanPath(path string) string {
	p := filepath.ToSlash(path)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

func severityLabel(sev Severity) string {
	switch sev {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
