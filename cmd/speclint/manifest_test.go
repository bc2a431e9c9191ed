package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestFindSpeclintTomlWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "spec", "models")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	manifest := filepath.Join(root, "speclint.toml")
	if err := os.WriteFile(manifest, []byte("[lint]\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, ok, err := findSpeclintToml(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got != manifest {
		t.Fatalf("found %q (ok=%v), want %q", got, ok, manifest)
	}
}

func TestLoadLintManifest(t *testing.T) {
	root := t.TempDir()
	content := `[lint]
max_description_length = 80
rules = ["subject-not-leading"]
format = "json"
severity_threshold = "info"
jobs = 4
result_cache = true
`
	if err := os.WriteFile(filepath.Join(root, "speclint.toml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	m, found, err := loadLintManifest(root)
	if err != nil || !found {
		t.Fatalf("found=%v err=%v", found, err)
	}
	sec := m.Config.Lint
	if sec.MaxDescriptionLength != 80 {
		t.Errorf("max_description_length = %d", sec.MaxDescriptionLength)
	}
	if len(sec.Rules) != 1 || sec.Rules[0] != "subject-not-leading" {
		t.Errorf("rules = %v", sec.Rules)
	}
	if sec.Format != "json" || sec.SeverityThreshold != "info" {
		t.Errorf("format = %q threshold = %q", sec.Format, sec.SeverityThreshold)
	}
	if sec.Jobs != 4 || !sec.ResultCache {
		t.Errorf("jobs = %d cache = %v", sec.Jobs, sec.ResultCache)
	}
	if m.Root != root {
		t.Errorf("root = %q, want %q", m.Root, root)
	}
}

func TestLoadLintManifestRejectsBadTOML(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "speclint.toml"), []byte("[lint\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := loadLintManifest(root); err == nil {
		t.Fatal("broken TOML accepted")
	}
}

func TestDefaultManifestParses(t *testing.T) {
	var cfg lintFileConfig
	if _, err := toml.Decode(defaultManifest(), &cfg); err != nil {
		t.Fatalf("generated manifest does not parse: %v", err)
	}
	if cfg.Lint.MaxDescriptionLength != 60 {
		t.Errorf("max_description_length = %d, want 60", cfg.Lint.MaxDescriptionLength)
	}
	if cfg.Lint.Format != "pretty" {
		t.Errorf("format = %q", cfg.Lint.Format)
	}
	if cfg.Lint.SeverityThreshold != "warning" {
		t.Errorf("severity_threshold = %q", cfg.Lint.SeverityThreshold)
	}
}
