package driver

import (
	"context"
	"testing"

	"speclint/internal/diag"
	"speclint/internal/source"
)

func testCache(t *testing.T) *DiskCache {
	t.Helper()
	return &DiskCache{dir: t.TempDir()}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache := testCache(t)
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("calc_spec.rb", []byte(cleanSpec)))

	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.StyExplicitEachRedundant,
		Message:  "drop the explicit scope",
		Primary:  source.Span{File: file.ID, Start: 10, End: 17},
		Notes:    []diag.Note{{Span: source.Span{File: file.ID, Start: 0, End: 5}, Msg: "hook is here"}},
		Fixes: []diag.Fix{{
			Title: "remove the scope argument",
			Edits: []diag.FixEdit{{Span: source.Span{File: file.ID, Start: 10, End: 17}}},
		}},
	})

	const fp = "schema=1;rules=all"
	cache.Store(file, fp, bag)

	got, ok := cache.Lookup(file, fp, 8)
	if !ok {
		t.Fatal("stored entry not found")
	}
	if got.Len() != 1 {
		t.Fatalf("cached diagnostics = %d", got.Len())
	}
	d := got.Items()[0]
	if d.Code != diag.StyExplicitEachRedundant || d.Severity != diag.SevWarning {
		t.Errorf("cached diag = %v %v", d.Code.ID(), d.Severity)
	}
	if d.Primary.Start != 10 || d.Primary.End != 17 || d.Primary.File != file.ID {
		t.Errorf("cached span = %v", d.Primary)
	}
	if len(d.Notes) != 1 || d.Notes[0].Msg != "hook is here" {
		t.Errorf("cached notes = %v", d.Notes)
	}
	if len(d.Fixes) != 1 || d.Fixes[0].Title != "remove the scope argument" {
		t.Errorf("cached fixes = %v", d.Fixes)
	}
}

func TestDiskCacheFingerprintMismatchIsMiss(t *testing.T) {
	cache := testCache(t)
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("calc_spec.rb", []byte(cleanSpec)))

	cache.Store(file, "config-a", diag.NewBag(4))
	if _, ok := cache.Lookup(file, "config-b", 4); ok {
		t.Fatal("different fingerprint produced a hit")
	}
}

func TestDiskCacheContentChangeIsMiss(t *testing.T) {
	cache := testCache(t)
	fs := source.NewFileSet()
	before := fs.Get(fs.AddVirtual("calc_spec.rb", []byte(cleanSpec)))
	after := fs.Get(fs.AddVirtual("calc_spec.rb", []byte(violatingSpec)))

	cache.Store(before, "fp", diag.NewBag(4))
	if _, ok := cache.Lookup(after, "fp", 4); ok {
		t.Fatal("changed content produced a hit")
	}
}

func TestNilCacheIsSafe(t *testing.T) {
	var cache *DiskCache
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("calc_spec.rb", []byte(cleanSpec)))

	cache.Store(file, "fp", diag.NewBag(4))
	if _, ok := cache.Lookup(file, "fp", 4); ok {
		t.Fatal("nil cache returned a hit")
	}
	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
}

func TestDropAll(t *testing.T) {
	cache := testCache(t)
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("calc_spec.rb", []byte(cleanSpec)))

	cache.Store(file, "fp", diag.NewBag(4))
	if _, ok := cache.Lookup(file, "fp", 4); !ok {
		t.Fatal("entry missing before drop")
	}
	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.Lookup(file, "fp", 4); ok {
		t.Fatal("entry survived DropAll")
	}
}

func TestCacheFingerprintSeparatesConfigs(t *testing.T) {
	base := LintOptions{MaxDiagnostics: 200}
	all := cacheFingerprint(base)

	limited := base
	limited.Enabled = map[diag.Code]bool{diag.StyShouldPrefixInExample: true}
	if cacheFingerprint(limited) == all {
		t.Error("rule subset shares a fingerprint with the full set")
	}

	longer := base
	longer.Config.MaxDescriptionLength = 100
	if cacheFingerprint(longer) == all {
		t.Error("description limit not part of the fingerprint")
	}
}

func TestLintPathsCacheReuse(t *testing.T) {
	dir := t.TempDir()
	writeSpec(t, dir, "a_spec.rb", violatingSpec)

	cache := testCache(t)
	opts := LintOptions{MaxDiagnostics: 50, Cache: cache}

	_, first, err := LintPaths(context.Background(), []string{dir}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].FromCache {
		t.Fatal("first run reported a cache hit")
	}

	_, second, err := LintPaths(context.Background(), []string{dir}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second[0].FromCache {
		t.Fatal("second run missed the cache")
	}
	if second[0].Bag.Len() != first[0].Bag.Len() {
		t.Fatalf("cached run differs: %d vs %d", second[0].Bag.Len(), first[0].Bag.Len())
	}
}
