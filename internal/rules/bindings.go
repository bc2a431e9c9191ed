package rules

import (
	"speclint/internal/ast"
	"speclint/internal/diag"
)

// bindingGrouping — STY3004.
// Хуки идут после всех let/subject, а не между ними.
type bindingGrouping struct{}

func (r *bindingGrouping) Code() diag.Code { return diag.StyBindingGrouping }
func (r *bindingGrouping) Name() string    { return r.Code().Name() }

func (r *bindingGrouping) Check(ctx *Context) {
	eachSiblingList(ctx.File, func(_ *ast.GroupNode, siblings []ast.Node) {
		var pending []*ast.HookNode // хуки, уже встреченные после биндингов
		seenBinding := false
		for _, n := range siblings {
			switch node := n.(type) {
			case *ast.HookNode:
				if seenBinding {
					pending = append(pending, node)
				}
			case *ast.BindingNode:
				for _, hook := range pending {
					diag.ReportWarning(ctx.Reporter, r.Code(), hook.Span(),
						"move the '"+node.BindingKind.String()+"' declaration above this hook; hooks follow all let/subject declarations").
						WithNote(node.Span(), "declaration found below the hook").
						Emit()
				}
				pending = nil
				seenBinding = true
			}
		}
	})
}

// subjectNotLeading — STY3013.
// subject объявляется первым в своей группе.
type subjectNotLeading struct{}

func (r *subjectNotLeading) Code() diag.Code { return diag.StySubjectNotLeading }
func (r *subjectNotLeading) Name() string    { return r.Code().Name() }

func (r *subjectNotLeading) Check(ctx *Context) {
	eachSiblingList(ctx.File, func(_ *ast.GroupNode, siblings []ast.Node) {
		for i, n := range siblings {
			b, ok := n.(*ast.BindingNode)
			if !ok || !b.IsSubject() {
				continue
			}
			if i > 0 {
				diag.ReportWarning(ctx.Reporter, r.Code(), b.Span(),
					"declare the subject first in its group").
					WithNote(siblings[0].Span(), "group content starts here").
					Emit()
			}
		}
	})
}
