package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a default speclint.toml",
	Long: `Create a speclint.toml with the default configuration in the given
directory (current directory if omitted). The file documents every knob, so
editing it is the easiest way to tune the linter per project.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	manifestPath := filepath.Join(target, "speclint.toml")
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("already initialized: %s exists", manifestPath)
	}

	if err := os.WriteFile(manifestPath, []byte(defaultManifest()), 0o600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	rel := manifestPath
	if wd, err := os.Getwd(); err == nil {
		if r, relErr := filepath.Rel(wd, manifestPath); relErr == nil {
			rel = r
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", rel)
	return nil
}

func defaultManifest() string {
	return `# speclint configuration
# Command-line flags override anything set here.

[lint]
# Display-width limit for example descriptions.
max_description_length = 60

# Enable only these rules (empty = all). Run "speclint rules" for the list.
rules = []

# Rules to disable.
disable = []

# Output format: pretty, text, json, or sarif.
format = "pretty"

# Minimum severity that affects the exit status: info, warning, or error.
severity_threshold = "warning"

# Parallel workers; 0 picks the number of CPUs.
jobs = 0

# Cache diagnostics of unchanged files under the user cache directory.
result_cache = false
`
}
