package rules

import (
	"speclint/internal/ast"
	"speclint/internal/diag"
)

// explicitEachRedundant — STY3005.
// before(:each) и before(:example) означают то же, что и просто before.
type explicitEachRedundant struct{}

func (r *explicitEachRedundant) Code() diag.Code { return diag.StyExplicitEachRedundant }
func (r *explicitEachRedundant) Name() string    { return r.Code().Name() }

func (r *explicitEachRedundant) Check(ctx *Context) {
	ctx.File.WalkAll(func(n ast.Node) bool {
		h, ok := n.(*ast.HookNode)
		if !ok {
			return true
		}
		if h.ExplicitScope && h.Scope == ast.ScopeEach {
			diag.ReportWarning(ctx.Reporter, r.Code(), h.ScopeSpan,
				"'"+h.HookKind.String()+"' runs per example by default; drop the explicit scope").
				WithFix("remove the scope argument", diag.FixEdit{Span: h.ScopeSpan, NewText: ""}).
				Emit()
		}
		return true
	})
}
