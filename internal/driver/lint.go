package driver

import (
	"speclint/internal/ast"
	"speclint/internal/diag"
	"speclint/internal/lexer"
	"speclint/internal/parser"
	"speclint/internal/rules"
	"speclint/internal/source"
)

// LintOptions собирает все ручки одного запуска линтера.
type LintOptions struct {
	MaxDiagnostics int
	MaxErrors      uint
	Jobs           int
	Config         rules.Config
	// Enabled ограничивает набор правил; nil означает все правила.
	Enabled map[diag.Code]bool
	// Cache переиспользует диагностики для неизменённых файлов; nil выключает.
	Cache *DiskCache
	// OnFile вызывается после завершения каждого файла. Вызовы приходят из
	// разных горутин; получатель сам сериализует обработку.
	OnFile func(res LintFileResult, done, total int)
}

// LintFileResult содержит результат проверки одного файла.
type LintFileResult struct {
	Path      string        // путь, как он был найден
	FileID    source.FileID // ID файла в FileSet
	Bag       *diag.Bag     // отсортированные диагностики
	Tree      *ast.SpecFile // nil при ошибке загрузки или попадании в кеш
	FromCache bool
}

// LintFile прогоняет один загруженный файл через lexer, parser и правила.
// Синтаксическая ошибка прерывает анализ файла: правила по частично
// разобранному дереву дали бы мусорные срабатывания.
func LintFile(file *source.File, engine *rules.Engine, opts LintOptions) (*ast.SpecFile, *diag.Bag) {
	bag := diag.NewBag(opts.MaxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	tree := parser.ParseFile(lx, parser.Options{
		Reporter:  reporter,
		MaxErrors: opts.MaxErrors,
	})

	if !bag.HasErrors() {
		engine.Run(tree, file, opts.Enabled, reporter)
	}

	bag.Sort()
	bag.Dedup()
	return tree, bag
}

// ExitStatus вычисляет код выхода процесса по всем диагностикам запуска.
// 2 — ошибка разбора или внутренняя ошибка, 1 — есть нарушения на уровне
// threshold и выше, 0 — чисто.
func ExitStatus(results []LintFileResult, threshold diag.Severity) int {
	status := 0
	for _, res := range results {
		if res.Bag == nil {
			continue
		}
		for _, d := range res.Bag.Items() {
			if d.Severity == diag.SevError && isInternalCode(d.Code) {
				return 2
			}
		}
		if res.Bag.CountAtOrAbove(threshold) > 0 {
			status = 1
		}
	}
	return status
}

// isInternalCode — ошибки лексера/парсера/IO/движка, а не стиля.
func isInternalCode(code diag.Code) bool {
	return code < diag.StyInfo || code >= diag.IOLoadFileError
}
