package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"speclint/internal/diag"
	"speclint/internal/rules"
	"speclint/internal/source"
)

// specFileSuffix — соглашение об именовании spec-файлов.
const specFileSuffix = "_spec.rb"

// ListSpecFiles возвращает отсортированный список всех *_spec.rb под dir.
func ListSpecFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, specFileSuffix) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ExpandPaths разворачивает аргументы командной строки в список файлов:
// директории сканируются рекурсивно по суффиксу *_spec.rb, явно указанные
// файлы берутся как есть.
func ExpandPaths(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			// файл попадёт в результаты с IO-диагностикой
			add(path)
			continue
		}
		if info.IsDir() {
			found, err := ListSpecFiles(path)
			if err != nil {
				return nil, err
			}
			for _, f := range found {
				add(f)
			}
			continue
		}
		add(path)
	}

	sort.Strings(files)
	return files, nil
}

// LintPaths проверяет все файлы параллельно. Файлы независимы, поэтому
// результаты пишутся по уникальным индексам без мьютекса; одна ошибка
// загрузки или разбора не мешает остальным файлам.
func LintPaths(ctx context.Context, paths []string, opts LintOptions) (*source.FileSet, []LintFileResult, error) {
	files, err := ExpandPaths(paths)
	if err != nil {
		return nil, nil, err
	}

	baseDir := ""
	if len(paths) == 1 {
		if info, statErr := os.Stat(paths[0]); statErr == nil && info.IsDir() {
			baseDir = paths[0]
		}
	}
	fileSet := source.NewFileSetWithBase(baseDir)

	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// FileSet не потокобезопасен: загружаем все файлы до запуска горутин
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	engine := rules.NewEngine(opts.Config)
	fingerprint := cacheFingerprint(opts)
	results := make([]LintFileResult, len(files))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res := lintOne(path, fileSet, fileIDs, loadErrors, engine, fingerprint, opts)
			results[i] = res

			if opts.OnFile != nil {
				opts.OnFile(res, int(done.Add(1)), len(files))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// lintOne обрабатывает один файл: ошибка загрузки, кеш или полный прогон.
func lintOne(
	path string,
	fileSet *source.FileSet,
	fileIDs map[string]source.FileID,
	loadErrors map[string]error,
	engine *rules.Engine,
	fingerprint string,
	opts LintOptions,
) LintFileResult {
	bag := diag.NewBag(opts.MaxDiagnostics)

	if loadErr, failed := loadErrors[path]; failed {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOLoadFileError,
			Message:  "failed to load file: " + loadErr.Error(),
			Primary:  source.Span{},
		})
		return LintFileResult{Path: path, Bag: bag}
	}

	fileID := fileIDs[path]
	file := fileSet.Get(fileID)

	if cached, ok := opts.Cache.Lookup(file, fingerprint, opts.MaxDiagnostics); ok {
		return LintFileResult{Path: path, FileID: fileID, Bag: cached, FromCache: true}
	}

	tree, bag := LintFile(file, engine, opts)
	opts.Cache.Store(file, fingerprint, bag)

	return LintFileResult{Path: path, FileID: fileID, Bag: bag, Tree: tree}
}
