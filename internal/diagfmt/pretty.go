package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"speclint/internal/diag"
	"speclint/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> [<rule>] <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	sevColor := map[diag.Severity]*color.Color{
		diag.SevInfo:    color.New(color.FgCyan),
		diag.SevWarning: color.New(color.FgYellow),
		diag.SevError:   color.New(color.FgRed, color.Bold),
	}
	ruleColor := color.New(color.FgMagenta)
	gutterColor := color.New(color.FgHiBlack)
	for _, c := range sevColor {
		if !opts.Color {
			c.DisableColor()
		}
	}
	if !opts.Color {
		ruleColor.DisableColor()
		gutterColor.DisableColor()
	}

	for _, d := range bag.Items() {
		f := fs.Get(d.Primary.File)
		start, end := fs.Resolve(d.Primary)
		path := formatPath(f, fs, opts.PathMode)

		fmt.Fprintf(w, "%s:%d:%d: %s %s %s\n",
			path, start.Line, start.Col,
			sevColor[d.Severity].Sprint(d.Severity.String()),
			ruleColor.Sprintf("[%s]", d.Code.Name()),
			d.Message,
		)

		writeContext(w, f, start, end, opts, gutterColor, sevColor[d.Severity])

		if opts.ShowNotes {
			for _, note := range d.Notes {
				nf := fs.Get(note.Span.File)
				npos, _ := fs.Resolve(note.Span)
				fmt.Fprintf(w, "  %s %s (%s:%d)\n",
					gutterColor.Sprint("note:"), note.Msg,
					formatPath(nf, fs, opts.PathMode), npos.Line)
			}
		}
		if opts.ShowFixes {
			for _, fix := range d.Fixes {
				fmt.Fprintf(w, "  %s %s\n", gutterColor.Sprint("fix:"), fix.Title)
			}
		}
	}
}

// writeContext печатает строку с подчёркиванием и, при Context > 0,
// соседние строки вокруг неё.
func writeContext(w io.Writer, f *source.File, start, end source.LineCol, opts PrettyOpts, gutter, underline *color.Color) {
	line := f.GetLine(start.Line)
	if line == "" && start.Line > f.LineCount() {
		return
	}

	first := start.Line
	if ctx := uint32(max(int8(0), opts.Context)); ctx > 0 && first > ctx {
		first -= ctx
	} else if ctx > 0 {
		first = 1
	}

	for ln := first; ln < start.Line; ln++ {
		fmt.Fprintf(w, "  %s %s\n", gutter.Sprintf("%4d |", ln), f.GetLine(ln))
	}

	fmt.Fprintf(w, "  %s %s\n", gutter.Sprintf("%4d |", start.Line), line)

	// подчёркивание: колонки 1-based; для многострочного спана подчёркиваем
	// только первую строку до её конца
	startCol := int(start.Col)
	endCol := int(end.Col)
	if end.Line != start.Line || endCol <= startCol {
		endCol = len(line) + 1
	}
	if startCol < 1 {
		startCol = 1
	}
	marker := strings.Repeat(" ", startCol-1) + "^"
	if endCol > startCol+1 {
		marker += strings.Repeat("~", endCol-startCol-1)
	}
	fmt.Fprintf(w, "  %s %s\n", gutter.Sprint("     |"), underline.Sprint(marker))

	if ctx := uint32(max(int8(0), opts.Context)); ctx > 0 {
		lastLine := min(start.Line+ctx, f.LineCount())
		for ln := start.Line + 1; ln <= lastLine; ln++ {
			fmt.Fprintf(w, "  %s %s\n", gutter.Sprintf("%4d |", ln), f.GetLine(ln))
		}
	}
}
