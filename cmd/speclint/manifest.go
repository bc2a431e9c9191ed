package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// lintManifest — найденный speclint.toml вместе с его директорией.
type lintManifest struct {
	Path   string
	Root   string
	Config lintFileConfig
}

type lintFileConfig struct {
	Lint lintSection `toml:"lint"`
}

// lintSection повторяет флаги команды lint; флаг командной строки всегда
// сильнее значения из файла.
type lintSection struct {
	MaxDescriptionLength int      `toml:"max_description_length"`
	Rules                []string `toml:"rules"`
	Disable              []string `toml:"disable"`
	Format               string   `toml:"format"`
	SeverityThreshold    string   `toml:"severity_threshold"`
	Jobs                 int      `toml:"jobs"`
	ResultCache          bool     `toml:"result_cache"`
}

// findSpeclintToml ищет speclint.toml от startDir вверх по дереву директорий.
func findSpeclintToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "speclint.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadLintManifest загружает ближайший speclint.toml; его отсутствие — не
// ошибка, линтер работает с настройками по умолчанию.
func loadLintManifest(startDir string) (*lintManifest, bool, error) {
	manifestPath, ok, err := findSpeclintToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg lintFileConfig
	if _, err := toml.DecodeFile(manifestPath, &cfg); err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", manifestPath, err)
	}
	return &lintManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}
