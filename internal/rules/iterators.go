package rules

import (
	"speclint/internal/ast"
	"speclint/internal/diag"
)

// iteratorGeneratedExamples — STY3012.
// Примеры, порождённые циклом по литеральной коллекции, дают невнятные
// имена в отчёте и прячут падения за индексом итерации.
type iteratorGeneratedExamples struct{}

func (r *iteratorGeneratedExamples) Code() diag.Code { return diag.StyIteratorGeneratedExamples }
func (r *iteratorGeneratedExamples) Name() string    { return r.Code().Name() }

func (r *iteratorGeneratedExamples) Check(ctx *Context) {
	ctx.File.WalkAll(func(n ast.Node) bool {
		b, ok := n.(*ast.BlockNode)
		if !ok || !b.IterOverLiteral {
			return true
		}
		if !containsExample(b) {
			return true
		}
		diag.ReportWarning(ctx.Reporter, r.Code(), b.Span(),
			"write an explicit example per element instead of iterating a literal collection").
			Emit()
		// не спускаемся внутрь: одного сообщения на цикл достаточно
		return false
	})
}

func containsExample(n ast.Node) bool {
	found := false
	ast.Walk(n, func(c ast.Node) bool {
		if c.Kind() == ast.NodeExample {
			found = true
		}
		return !found
	})
	return found
}
