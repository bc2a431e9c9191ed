package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"speclint/internal/diag"
	"speclint/internal/source"
)

func testBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("widget_spec.rb", []byte("describe \"X\" do\n  it \"should work\" do\n  end\nend\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.StyShouldPrefixInExample,
		Message:  "start the description with a third-person verb instead of 'should'",
		Primary:  source.Span{File: id, Start: 21, End: 34},
		Notes:    []diag.Note{{Span: source.Span{File: id, Start: 0, End: 8}, Msg: "group is here"}},
		Fixes:    []diag.Fix{{Title: "reword the description"}},
	})
	bag.Sort()
	return bag, fs
}

func TestJSONStableContract(t *testing.T) {
	bag, fs := testBag(t)

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{}); err != nil {
		t.Fatal(err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}

	d := out.Diagnostics[0]
	if d.File != "widget_spec.rb" {
		t.Errorf("file = %q", d.File)
	}
	if d.Line != 2 {
		t.Errorf("line = %d, want 2", d.Line)
	}
	if d.Rule != "should-prefix-in-example" {
		t.Errorf("rule = %q", d.Rule)
	}
	if d.Severity != "WARNING" {
		t.Errorf("severity = %q", d.Severity)
	}
	if d.Message == "" {
		t.Error("message is empty")
	}
	if d.Location != nil {
		t.Error("location present without IncludePositions")
	}
}

func TestJSONWithPositionsNotesAndFixes(t *testing.T) {
	bag, fs := testBag(t)

	var buf bytes.Buffer
	opts := JSONOpts{IncludePositions: true, IncludeNotes: true, IncludeFixes: true}
	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatal(err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	d := out.Diagnostics[0]
	if d.Location == nil || d.Location.StartByte != 21 || d.Location.EndByte != 34 {
		t.Errorf("location = %+v", d.Location)
	}
	if len(d.Notes) != 1 || d.Notes[0].Line != 1 {
		t.Errorf("notes = %+v", d.Notes)
	}
	if len(d.Fixes) != 1 || d.Fixes[0].Title != "reword the description" {
		t.Errorf("fixes = %+v", d.Fixes)
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("widget_spec.rb", []byte("a\nb\nc\n"))
	bag := diag.NewBag(8)
	for i := uint32(0); i < 3; i++ {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevWarning,
			Code:     diag.StyShouldPrefixInExample,
			Primary:  source.Span{File: id, Start: i, End: i + 1},
		})
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Fatalf("truncated output: count=%d len=%d", out.Count, len(out.Diagnostics))
	}
}

func TestTextFormat(t *testing.T) {
	bag, fs := testBag(t)

	var buf bytes.Buffer
	if err := Text(&buf, bag, fs); err != nil {
		t.Fatal(err)
	}
	want := "widget_spec.rb:2: [should-prefix-in-example] start the description with a third-person verb instead of 'should'"
	if buf.String() != want {
		t.Fatalf("text output:\n got %q\nwant %q", buf.String(), want)
	}
}

func TestPrettyWithoutColor(t *testing.T) {
	bag, fs := testBag(t)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: false, ShowNotes: true, ShowFixes: true})
	out := buf.String()

	if !strings.Contains(out, "widget_spec.rb:2:6: WARNING [should-prefix-in-example]") {
		t.Errorf("header line missing:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("underline missing:\n%s", out)
	}
	if !strings.Contains(out, "note: group is here") {
		t.Errorf("note missing:\n%s", out)
	}
	if !strings.Contains(out, "fix: reword the description") {
		t.Errorf("fix missing:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("escape sequences in colorless output")
	}
}

func TestSarifShape(t *testing.T) {
	bag, fs := testBag(t)

	var buf bytes.Buffer
	meta := SarifRunMeta{
		ToolName:       "speclint",
		ToolVersion:    "0.0.0-test",
		InvocationArgs: []string{"speclint", "lint", "."},
	}
	if err := Sarif(&buf, bag, fs, meta); err != nil {
		t.Fatal(err)
	}

	var log struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name  string `json:"name"`
					Rules []struct {
						ID string `json:"id"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID string `json:"ruleId"`
				Level  string `json:"level"`
			} `json:"results"`
		} `json:"runs"`
	}
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if log.Version != "2.1.0" || len(log.Runs) != 1 {
		t.Fatalf("log shape: version=%q runs=%d", log.Version, len(log.Runs))
	}
	run := log.Runs[0]
	if run.Tool.Driver.Name != "speclint" {
		t.Errorf("driver name = %q", run.Tool.Driver.Name)
	}
	if len(run.Tool.Driver.Rules) != 1 || run.Tool.Driver.Rules[0].ID != "should-prefix-in-example" {
		t.Errorf("rules = %+v", run.Tool.Driver.Rules)
	}
	if len(run.Results) != 1 || run.Results[0].Level != "warning" {
		t.Errorf("results = %+v", run.Results)
	}
}
