package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLineHelpers(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("a_spec.rb", []byte("a\nbb\n\nccc")))

	if got := f.LineCount(); got != 4 {
		t.Errorf("LineCount = %d, want 4", got)
	}
	if got := f.LineAt(0); got != 1 {
		t.Errorf("LineAt(0) = %d", got)
	}
	if got := f.LineAt(3); got != 2 {
		t.Errorf("LineAt(3) = %d", got)
	}
	if got := f.GetLine(2); got != "bb" {
		t.Errorf("GetLine(2) = %q", got)
	}
	if got := f.GetLine(4); got != "ccc" {
		t.Errorf("GetLine(4) = %q", got)
	}
	if got := f.GetLine(9); got != "" {
		t.Errorf("GetLine out of range = %q", got)
	}
	if !f.IsBlankLine(3) {
		t.Error("line 3 is blank")
	}
	if f.IsBlankLine(4) {
		t.Error("line 4 is not blank")
	}
}

func TestIsBlankLineWhitespaceOnly(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("a_spec.rb", []byte("x\n  \t \ny\n")))
	if !f.IsBlankLine(2) {
		t.Error("whitespace-only line must count as blank")
	}
	if f.IsBlankLine(1) || f.IsBlankLine(3) {
		t.Error("non-empty lines flagged as blank")
	}
}

func TestLineSpan(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("a_spec.rb", []byte("a\nbb\n\nccc")))

	sp := f.LineSpan(2)
	if sp.Start != 2 || sp.End != 4 {
		t.Errorf("LineSpan(2) = %d..%d, want 2..4", sp.Start, sp.End)
	}
	if string(f.Content[sp.Start:sp.End]) != "bb" {
		t.Errorf("LineSpan(2) text = %q", f.Content[sp.Start:sp.End])
	}

	last := f.LineSpan(4)
	if string(f.Content[last.Start:last.End]) != "ccc" {
		t.Errorf("LineSpan(4) text = %q", f.Content[last.Start:last.End])
	}

	out := f.LineSpan(40)
	if !out.Empty() {
		t.Errorf("out-of-range span = %v, want empty", out)
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a_spec.rb", []byte("one\ntwo\n"))

	start, end := fs.Resolve(Span{File: id, Start: 4, End: 7})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("start = %d:%d, want 2:1", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 4 {
		t.Errorf("end = %d:%d, want 2:4", end.Line, end.Col)
	}
}

func TestLineAtNewlineBoundaries(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("a_spec.rb", []byte("a\nb\nc\n")))

	// '\n' ещё принадлежит своей строке, следующий байт открывает новую
	if got := f.LineAt(1); got != 1 {
		t.Errorf("LineAt(1) = %d, want 1", got)
	}
	if got := f.LineAt(2); got != 2 {
		t.Errorf("LineAt(2) = %d, want 2", got)
	}
	if got := f.LineAt(4); got != 3 {
		t.Errorf("LineAt(4) = %d, want 3", got)
	}

	two := fs.Get(fs.AddVirtual("b_spec.rb", []byte("ab\ncd")))
	start, end := fs.Resolve(Span{File: two.ID, Start: 3, End: 5})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("start = %d:%d, want 2:1", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 3 {
		t.Errorf("end = %d:%d, want 2:3", end.Line, end.Col)
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 10, End: 14}
	b := Span{File: 1, Start: 4, End: 12}
	c := a.Cover(b)
	if c.Start != 4 || c.End != 14 {
		t.Errorf("cover = %v", c)
	}

	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("cross-file cover changed the span: %v", got)
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf_spec.rb")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a\r\nb\r\n")...)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a\nb\n" {
		t.Errorf("content = %q", f.Content)
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Error("FileNormalizedCRLF flag not set")
	}
	if f.Flags&FileHadBOM == 0 {
		t.Error("FileHadBOM flag not set")
	}
}

func TestGetByPath(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("./sub/../a_spec.rb", []byte("x"))

	if _, ok := fs.GetByPath("a_spec.rb"); !ok {
		t.Error("normalized lookup failed")
	}
	if _, ok := fs.GetByPath("missing_spec.rb"); ok {
		t.Error("missing path resolved")
	}
}

func TestHashChangesWithContent(t *testing.T) {
	fs := NewFileSet()
	a := fs.Get(fs.AddVirtual("a_spec.rb", []byte("one")))
	b := fs.Get(fs.AddVirtual("b_spec.rb", []byte("two")))
	if a.Hash == b.Hash {
		t.Error("different contents share a hash")
	}
}
