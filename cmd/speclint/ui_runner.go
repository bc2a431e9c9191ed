package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"speclint/internal/diag"
	"speclint/internal/driver"
	"speclint/internal/source"
	"speclint/internal/ui"
)

type lintOutcome struct {
	fileSet *source.FileSet
	results []driver.LintFileResult
	err     error
}

// lintWithUI запускает проверку под bubbletea-прогрессом. Вывод диагностик
// происходит после завершения программы, чтобы не мешать отрисовке.
func lintWithUI(ctx context.Context, paths []string, opts driver.LintOptions) (*source.FileSet, []driver.LintFileResult, error) {
	files, err := driver.ExpandPaths(paths)
	if err != nil {
		return nil, nil, err
	}

	events := make(chan ui.Event, 256)
	outcomeCh := make(chan lintOutcome, 1)

	opts.OnFile = func(res driver.LintFileResult, done, total int) {
		events <- ui.Event{File: res.Path, Status: statusFor(res)}
	}

	go func() {
		fileSet, results, err := driver.LintPaths(ctx, paths, opts)
		outcomeCh <- lintOutcome{fileSet: fileSet, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("speclint", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		outcome.err = uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}

func statusFor(res driver.LintFileResult) ui.Status {
	switch {
	case res.FromCache:
		return ui.StatusCached
	case res.Bag == nil || res.Bag.Len() == 0:
		return ui.StatusClean
	case res.Bag.HasErrors():
		return ui.StatusFailed
	default:
		return ui.StatusFlagged
	}
}

// countFlagged считает файлы с диагностиками на уровне threshold и выше.
func countFlagged(results []driver.LintFileResult, threshold diag.Severity) int {
	n := 0
	for _, res := range results {
		if res.Bag != nil && res.Bag.CountAtOrAbove(threshold) > 0 {
			n++
		}
	}
	return n
}
