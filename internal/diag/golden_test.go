package diag

import (
	"strings"
	"testing"

	"speclint/internal/source"
)

func testFileSet(t *testing.T, content string) (*source.FileSet, source.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("widget_spec.rb", []byte(content))
	return fs, id
}

func TestFormatTextDiagnostics(t *testing.T) {
	fs, id := testFileSet(t, "describe \"X\" do\n  it \"should work\" do\n  end\nend\n")

	diags := []Diagnostic{{
		Severity: SevWarning,
		Code:     StyShouldPrefixInExample,
		Message:  "start the description with a third-person verb instead of 'should'",
		Primary:  source.Span{File: id, Start: 21, End: 34},
	}}

	got := FormatTextDiagnostics(diags, fs)
	want := "widget_spec.rb:2: [should-prefix-in-example] start the description with a third-person verb instead of 'should'"
	if got != want {
		t.Fatalf("text format mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestFormatTextDiagnosticsOrdering(t *testing.T) {
	fs, id := testFileSet(t, "one\ntwo\nthree\n")

	diags := []Diagnostic{
		{Severity: SevWarning, Code: StyContextDescriptionPrefix, Message: "later", Primary: source.Span{File: id, Start: 8, End: 13}},
		{Severity: SevWarning, Code: StyShouldPrefixInExample, Message: "earlier", Primary: source.Span{File: id, Start: 0, End: 3}},
	}

	got := FormatTextDiagnostics(diags, fs)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "widget_spec.rb:1:") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "widget_spec.rb:3:") {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestFormatGoldenDiagnosticsIncludesNotes(t *testing.T) {
	fs, id := testFileSet(t, "alpha\nbeta\n")

	diags := []Diagnostic{{
		Severity: SevWarning,
		Code:     StyOneExpectationPerExample,
		Message:  "too many expectations",
		Primary:  source.Span{File: id, Start: 6, End: 10},
		Notes:    []Note{{Span: source.Span{File: id, Start: 0, End: 5}, Msg: "first expectation is here"}},
	}}

	got := FormatGoldenDiagnostics(diags, fs, true)
	if !strings.Contains(got, "warning one-expectation-per-example widget_spec.rb:2:1 too many expectations") {
		t.Errorf("primary line missing:\n%s", got)
	}
	if !strings.Contains(got, "note one-expectation-per-example widget_spec.rb:1:1 first expectation is here") {
		t.Errorf("note line missing:\n%s", got)
	}
}

func TestFormatTextDiagnosticsEmpty(t *testing.T) {
	fs, _ := testFileSet(t, "x\n")
	if got := FormatTextDiagnostics(nil, fs); got != "" {
		t.Errorf("empty input rendered %q", got)
	}
}
