package rules

import (
	"fmt"

	"speclint/internal/ast"
	"speclint/internal/diag"
)

// oneExpectationPerExample — STY3007.
// Один пример проверяет одно поведение. Маркер aggregate_failures на примере
// или на объемлющей группе снимает ограничение.
type oneExpectationPerExample struct{}

func (r *oneExpectationPerExample) Code() diag.Code { return diag.StyOneExpectationPerExample }
func (r *oneExpectationPerExample) Name() string    { return r.Code().Name() }

func (r *oneExpectationPerExample) Check(ctx *Context) {
	ctx.File.WalkAll(func(n ast.Node) bool {
		e, ok := n.(*ast.ExampleNode)
		if !ok {
			return true
		}
		if e.AggregateFailures || len(e.Expectations) <= 1 {
			return true
		}
		b := diag.ReportWarning(ctx.Reporter, r.Code(), e.Expectations[1],
			fmt.Sprintf("example has %d expectations; keep one expectation per example or mark it :aggregate_failures", len(e.Expectations)))
		b.WithNote(e.Expectations[0], "first expectation is here")
		b.Emit()
		return true
	})
}
