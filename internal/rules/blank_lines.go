package rules

import (
	"fmt"

	"speclint/internal/ast"
	"speclint/internal/diag"
)

// blankLineAfterGroupOpen — STY3001.
// Пустая строка сразу после открывающей строки группы лишняя: тело должно
// начинаться на следующей строке.
type blankLineAfterGroupOpen struct{}

func (r *blankLineAfterGroupOpen) Code() diag.Code { return diag.StyBlankLineAfterGroupOpen }
func (r *blankLineAfterGroupOpen) Name() string    { return r.Code().Name() }

func (r *blankLineAfterGroupOpen) Check(ctx *Context) {
	ctx.File.WalkAll(func(n ast.Node) bool {
		g, ok := n.(*ast.GroupNode)
		if !ok || len(g.Nodes) == 0 {
			return true
		}
		first := g.Nodes[0]
		blank := g.OpenLine + 1
		if first.StartLine() > blank && ctx.Source.IsBlankLine(blank) {
			diag.ReportWarning(ctx.Reporter, r.Code(), ctx.Source.LineSpan(blank),
				"remove the blank line right after the group opening").
				WithNote(g.Span(), "group opened here").
				Emit()
		}
		return true
	})
}

// blankLineBetweenSiblings — STY3002.
// Соседние группы разделяются ровно одной пустой строкой.
type blankLineBetweenSiblings struct{}

func (r *blankLineBetweenSiblings) Code() diag.Code { return diag.StyBlankLineBetweenSiblings }
func (r *blankLineBetweenSiblings) Name() string    { return r.Code().Name() }

func (r *blankLineBetweenSiblings) Check(ctx *Context) {
	eachSiblingList(ctx.File, func(_ *ast.GroupNode, siblings []ast.Node) {
		var prev *ast.GroupNode
		for _, n := range siblings {
			g, ok := n.(*ast.GroupNode)
			if !ok {
				prev = nil
				continue
			}
			if prev != nil {
				blanks := countBlankLines(ctx, prev.EndLine()+1, g.StartLine()-1)
				if blanks != 1 {
					diag.ReportWarning(ctx.Reporter, r.Code(), g.Span(),
						fmt.Sprintf("sibling groups must be separated by exactly one blank line, found %d", blanks)).
						Emit()
				}
			}
			prev = g
		}
	})
}

// blankLineAfterBindingBlock — STY3003.
// После блока let/subject/хуков перед остальным содержимым группы должна
// быть пустая строка. Между самими объявлениями пустая строка не нужна.
type blankLineAfterBindingBlock struct{}

func (r *blankLineAfterBindingBlock) Code() diag.Code { return diag.StyBlankLineAfterBindingBlock }
func (r *blankLineAfterBindingBlock) Name() string    { return r.Code().Name() }

func (r *blankLineAfterBindingBlock) Check(ctx *Context) {
	eachSiblingList(ctx.File, func(_ *ast.GroupNode, siblings []ast.Node) {
		for i, n := range siblings {
			if !isBindingOrHook(n) || i+1 >= len(siblings) {
				continue
			}
			next := siblings[i+1]
			if isBindingOrHook(next) {
				continue
			}
			if next.StartLine() == n.EndLine()+1 {
				diag.ReportWarning(ctx.Reporter, r.Code(), next.Span(),
					"add a blank line after the let/subject/hook block").
					WithNote(n.Span(), "declaration block ends here").
					Emit()
			}
		}
	})
}

// countBlankLines считает пустые строки в диапазоне [from, to] включительно.
func countBlankLines(ctx *Context, from, to uint32) int {
	count := 0
	for line := from; line <= to && line > 0; line++ {
		if ctx.Source.IsBlankLine(line) {
			count++
		}
	}
	return count
}
