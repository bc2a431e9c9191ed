package diagfmt

import (
	"encoding/json"
	"io"

	"speclint/internal/diag"
	"speclint/internal/source"
)

// LocationJSON — детальное местоположение (byte-офсеты и колонки).
type LocationJSON struct {
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// NoteJSON представляет дополнительную заметку для JSON
type NoteJSON struct {
	Message string `json:"message"`
	File    string `json:"file"`
	Line    uint32 `json:"line"`
}

// FixEditJSON представляет одно редактирование для JSON
type FixEditJSON struct {
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	NewText   string `json:"new_text"`
}

// FixJSON — предложение по исправлению. Инструмент не применяет правки,
// это только подсказка для редактора.
type FixJSON struct {
	Title string        `json:"title"`
	Edits []FixEditJSON `json:"edits,omitempty"`
}

// DiagnosticJSON представляет одну диагностику в JSON формате.
// Первые пять полей — стабильный контракт структурированного вывода.
type DiagnosticJSON struct {
	File     string        `json:"file"`
	Line     uint32        `json:"line"`
	Rule     string        `json:"rule"`
	Severity string        `json:"severity"`
	Message  string        `json:"message"`
	Location *LocationJSON `json:"location,omitempty"`
	Notes    []NoteJSON    `json:"notes,omitempty"`
	Fixes    []FixJSON     `json:"fixes,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// formatPath форматирует путь согласно режиму.
func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	diagnostics := make([]DiagnosticJSON, 0, maxItems)
	for i := 0; i < maxItems; i++ {
		d := items[i]
		f := fs.Get(d.Primary.File)
		startPos, endPos := fs.Resolve(d.Primary)

		diagJSON := DiagnosticJSON{
			File:     formatPath(f, fs, opts.PathMode),
			Line:     startPos.Line,
			Rule:     d.Code.Name(),
			Severity: d.Severity.String(),
			Message:  d.Message,
		}

		if opts.IncludePositions {
			diagJSON.Location = &LocationJSON{
				StartByte: d.Primary.Start,
				EndByte:   d.Primary.End,
				StartCol:  startPos.Col,
				EndLine:   endPos.Line,
				EndCol:    endPos.Col,
			}
		}

		if opts.IncludeNotes && len(d.Notes) > 0 {
			diagJSON.Notes = make([]NoteJSON, len(d.Notes))
			for j, note := range d.Notes {
				nf := fs.Get(note.Span.File)
				npos, _ := fs.Resolve(note.Span)
				diagJSON.Notes[j] = NoteJSON{
					Message: note.Msg,
					File:    formatPath(nf, fs, opts.PathMode),
					Line:    npos.Line,
				}
			}
		}

		if opts.IncludeFixes && len(d.Fixes) > 0 {
			diagJSON.Fixes = make([]FixJSON, 0, len(d.Fixes))
			for _, fix := range d.Fixes {
				fixJSON := FixJSON{Title: fix.Title}
				for _, edit := range fix.Edits {
					fixJSON.Edits = append(fixJSON.Edits, FixEditJSON{
						StartByte: edit.Span.Start,
						EndByte:   edit.Span.End,
						NewText:   edit.NewText,
					})
				}
				diagJSON.Fixes = append(diagJSON.Fixes, fixJSON)
			}
		}

		diagnostics = append(diagnostics, diagJSON)
	}

	return DiagnosticsOutput{
		Diagnostics: diagnostics,
		Count:       len(diagnostics),
	}
}

// JSON форматирует диагностики в JSON формат.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	output := BuildDiagnosticsOutput(bag, fs, opts)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
