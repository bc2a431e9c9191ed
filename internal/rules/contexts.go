package rules

import (
	"strings"

	"speclint/internal/ast"
	"speclint/internal/diag"
)

// contextMissingNegativeCase — STY3008 (эвристика, SevInfo).
// Условный контекст без соседа, покрывающего противоположный случай.
// Отрицание ищется по словам в описании, поэтому возможны ложные
// срабатывания; правило репортит не строже уровня info.
type contextMissingNegativeCase struct{}

func (r *contextMissingNegativeCase) Code() diag.Code { return diag.StyContextMissingNegativeCase }
func (r *contextMissingNegativeCase) Name() string    { return r.Code().Name() }

var negationMarkers = []string{
	"not", "no", "without", "missing", "invalid", "empty", "fails",
	"doesn't", "does not", "isn't", "is not", "unsuccessful", "blank",
}

func (r *contextMissingNegativeCase) Check(ctx *Context) {
	eachSiblingList(ctx.File, func(_ *ast.GroupNode, siblings []ast.Node) {
		var conditional []*ast.GroupNode
		hasNegative := false
		for _, n := range siblings {
			g, ok := n.(*ast.GroupNode)
			if !ok || g.GroupKind != ast.GroupContext || g.Description == "" {
				continue
			}
			if !isConditionalDescription(g.Description) {
				continue
			}
			conditional = append(conditional, g)
			if hasNegationMarker(g.Description) {
				hasNegative = true
			}
		}
		if len(conditional) == 0 || hasNegative {
			return
		}
		first := conditional[0]
		diag.ReportInfo(ctx.Reporter, r.Code(), first.DescriptionSpan,
			"conditional context has no sibling covering the negated condition").
			Emit()
	})
}

func isConditionalDescription(desc string) bool {
	switch strings.ToLower(firstWord(desc)) {
	case "when", "with", "without", "if":
		return true
	default:
		return false
	}
}

func hasNegationMarker(desc string) bool {
	lower := " " + strings.ToLower(desc) + " "
	for _, marker := range negationMarkers {
		if strings.Contains(lower, " "+marker+" ") {
			return true
		}
	}
	return strings.HasPrefix(strings.ToLower(desc), "without")
}
