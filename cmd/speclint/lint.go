package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"speclint/internal/diag"
	"speclint/internal/diagfmt"
	"speclint/internal/driver"
	"speclint/internal/rules"
	"speclint/internal/source"
	"speclint/internal/version"
)

var lintCmd = &cobra.Command{
	Use:   "lint [flags] <path>...",
	Short: "Check spec files against the style rules",
	Long: `Check one or more spec files (or directories, scanned recursively for
*_spec.rb) against the style rules and report violations.

Exit codes: 0 — clean, 1 — violations at or above the severity threshold,
2 — parse or internal error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLint,
	// ошибки уже напечатаны диагностиками, usage при них не нужен
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	lintCmd.Flags().String("rules", "", "comma-separated rule identifiers to enable (default: all)")
	lintCmd.Flags().String("disable", "", "comma-separated rule identifiers to disable")
	lintCmd.Flags().String("format", "pretty", "output format (pretty|text|json|sarif)")
	lintCmd.Flags().Int("max-description-length", rules.DefaultMaxDescriptionLength, "max example description length")
	lintCmd.Flags().String("severity-threshold", "warning", "minimum severity affecting the exit status (info|warning|error)")
	lintCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	lintCmd.Flags().String("ui", "auto", "interactive progress display (auto|on|off)")
	lintCmd.Flags().Bool("result-cache", false, "cache diagnostics of unchanged files on disk")
	lintCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	lintCmd.Flags().Bool("with-fixes", false, "include fix suggestions in output")
	lintCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	lintCmd.Flags().Int("context", 0, "context lines around each diagnostic (pretty format)")
}

// lintSettings — эффективные настройки запуска после слияния speclint.toml
// и флагов командной строки.
type lintSettings struct {
	format         string
	threshold      diag.Severity
	maxDescription int
	jobs           int
	resultCache    bool
	enabled        map[diag.Code]bool
	pathMode       diagfmt.PathMode
	withNotes      bool
	withFixes      bool
	contextLines   int
	uiMode         uiMode
	colorMode      string
	quiet          bool
	maxDiagnostics int
}

func runLint(cmd *cobra.Command, args []string) error {
	settings, err := resolveLintSettings(cmd, args)
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if settings.resultCache {
		cache, err = driver.OpenDiskCache("speclint")
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: result cache disabled: %v\n", err)
		}
	}

	opts := driver.LintOptions{
		MaxDiagnostics: settings.maxDiagnostics,
		Jobs:           settings.jobs,
		Config:         rules.Config{MaxDescriptionLength: settings.maxDescription},
		Enabled:        settings.enabled,
		Cache:          cache,
	}

	useTUI := shouldUseTUI(settings.uiMode) && !settings.quiet &&
		(settings.format == "pretty" || settings.format == "text")

	var fileSet *source.FileSet
	var results []driver.LintFileResult
	if useTUI {
		fileSet, results, err = lintWithUI(cmd.Context(), args, opts)
	} else {
		fileSet, results, err = driver.LintPaths(cmd.Context(), args, opts)
	}
	if err != nil {
		return err
	}

	total := diag.NewBag(0)
	for _, res := range results {
		if res.Bag != nil {
			total.Merge(res.Bag)
		}
	}
	total.Sort()

	if err := renderDiagnostics(cmd, total, fileSet, settings); err != nil {
		return err
	}

	status := driver.ExitStatus(results, settings.threshold)
	if !settings.quiet && (settings.format == "pretty" || settings.format == "text") {
		fmt.Fprintf(cmd.OutOrStdout(), "%d file(s) checked, %d flagged, %d diagnostic(s)\n",
			len(results), countFlagged(results, settings.threshold), total.Len())
	}
	if status != 0 {
		os.Exit(status)
	}
	return nil
}

// resolveLintSettings сливает значения из speclint.toml и флагов.
// Флаг, заданный явно, всегда сильнее файла.
func resolveLintSettings(cmd *cobra.Command, args []string) (lintSettings, error) {
	flags := cmd.Flags()

	startDir := "."
	if len(args) > 0 {
		if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
			startDir = args[0]
		} else {
			startDir = filepath.Dir(args[0])
		}
	}
	manifest, found, err := loadLintManifest(startDir)
	if err != nil {
		return lintSettings{}, err
	}

	format, _ := flags.GetString("format")
	thresholdStr, _ := flags.GetString("severity-threshold")
	maxDescription, _ := flags.GetInt("max-description-length")
	jobs, _ := flags.GetInt("jobs")
	resultCache, _ := flags.GetBool("result-cache")
	rulesStr, _ := flags.GetString("rules")
	disableStr, _ := flags.GetString("disable")

	if found {
		sec := manifest.Config.Lint
		if !flags.Changed("format") && sec.Format != "" {
			format = sec.Format
		}
		if !flags.Changed("severity-threshold") && sec.SeverityThreshold != "" {
			thresholdStr = sec.SeverityThreshold
		}
		if !flags.Changed("max-description-length") && sec.MaxDescriptionLength > 0 {
			maxDescription = sec.MaxDescriptionLength
		}
		if !flags.Changed("jobs") && sec.Jobs > 0 {
			jobs = sec.Jobs
		}
		if !flags.Changed("result-cache") {
			resultCache = sec.ResultCache
		}
		if !flags.Changed("rules") && len(sec.Rules) > 0 {
			rulesStr = strings.Join(sec.Rules, ",")
		}
		if !flags.Changed("disable") && len(sec.Disable) > 0 {
			disableStr = strings.Join(sec.Disable, ",")
		}
	}

	switch format {
	case "pretty", "text", "json", "sarif":
	default:
		return lintSettings{}, fmt.Errorf("unsupported format %q (must be pretty, text, json, or sarif)", format)
	}

	threshold, ok := diag.ParseSeverity(thresholdStr)
	if !ok {
		return lintSettings{}, fmt.Errorf("invalid severity threshold %q (must be info, warning, or error)", thresholdStr)
	}

	enabled, err := resolveRuleSet(rulesStr, disableStr)
	if err != nil {
		return lintSettings{}, err
	}

	uiModeStr, _ := flags.GetString("ui")
	mode, err := readUIMode(uiModeStr)
	if err != nil {
		return lintSettings{}, err
	}

	fullpath, _ := flags.GetBool("fullpath")
	pathMode := diagfmt.PathModeAuto
	if fullpath {
		pathMode = diagfmt.PathModeAbsolute
	}

	withNotes, _ := flags.GetBool("with-notes")
	withFixes, _ := flags.GetBool("with-fixes")
	contextLines, _ := flags.GetInt("context")
	colorMode, _ := cmd.Root().PersistentFlags().GetString("color")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	return lintSettings{
		format:         format,
		threshold:      threshold,
		maxDescription: maxDescription,
		jobs:           jobs,
		resultCache:    resultCache,
		enabled:        enabled,
		pathMode:       pathMode,
		withNotes:      withNotes,
		withFixes:      withFixes,
		contextLines:   contextLines,
		uiMode:         mode,
		colorMode:      colorMode,
		quiet:          quiet,
		maxDiagnostics: maxDiagnostics,
	}, nil
}

// resolveRuleSet переводит --rules/--disable в набор включённых кодов.
// nil означает "все правила".
func resolveRuleSet(rulesStr, disableStr string) (map[diag.Code]bool, error) {
	if rulesStr == "" && disableStr == "" {
		return nil, nil
	}

	enabled := make(map[diag.Code]bool)
	if rulesStr == "" {
		for _, code := range diag.RuleCodes() {
			enabled[code] = true
		}
	} else {
		for _, name := range splitRuleList(rulesStr) {
			code, ok := diag.RuleByName(name)
			if !ok {
				return nil, unknownRuleError(name)
			}
			enabled[code] = true
		}
	}

	for _, name := range splitRuleList(disableStr) {
		code, ok := diag.RuleByName(name)
		if !ok {
			return nil, unknownRuleError(name)
		}
		delete(enabled, code)
	}
	return enabled, nil
}

func splitRuleList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func unknownRuleError(name string) error {
	known := make([]string, 0, len(diag.RuleCodes()))
	for _, code := range diag.RuleCodes() {
		known = append(known, code.Name())
	}
	sort.Strings(known)
	return fmt.Errorf("unknown rule %q; known rules:\n  %s", name, strings.Join(known, "\n  "))
}

// renderDiagnostics пишет итоговый отчёт в выбранном формате.
func renderDiagnostics(cmd *cobra.Command, total *diag.Bag, fileSet *source.FileSet, settings lintSettings) error {
	out := cmd.OutOrStdout()

	switch settings.format {
	case "text":
		return diagfmt.Text(out, total, fileSet)

	case "json":
		return diagfmt.JSON(out, total, fileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         settings.pathMode,
			IncludeNotes:     settings.withNotes,
			IncludeFixes:     settings.withFixes,
		})

	case "sarif":
		return diagfmt.Sarif(out, total, fileSet, diagfmt.SarifRunMeta{
			ToolName:       "speclint",
			ToolVersion:    version.Version,
			InvocationArgs: os.Args,
			PathMode:       settings.pathMode,
		})

	default:
		useColor := colorEnabled(settings.colorMode, os.Stdout)
		ctxLines := settings.contextLines
		if ctxLines < 0 {
			ctxLines = 0
		} else if ctxLines > 127 {
			ctxLines = 127
		}
		diagfmt.Pretty(out, total, fileSet, diagfmt.PrettyOpts{
			Color:     useColor,
			Context:   int8(ctxLines),
			PathMode:  settings.pathMode,
			ShowNotes: settings.withNotes,
			ShowFixes: settings.withFixes,
		})
		return nil
	}
}
