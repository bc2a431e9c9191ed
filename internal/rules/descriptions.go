package rules

import (
	"fmt"
	"regexp"
	"strings"

	"speclint/internal/ast"
	"speclint/internal/diag"
)

// shouldPrefixInExample — STY3006.
// "it 'should return ...'" описывает намерение, а не поведение.
type shouldPrefixInExample struct{}

func (r *shouldPrefixInExample) Code() diag.Code { return diag.StyShouldPrefixInExample }
func (r *shouldPrefixInExample) Name() string    { return r.Code().Name() }

var shouldPrefixRe = regexp.MustCompile(`(?i)^should(n't|\s|$)`)

func (r *shouldPrefixInExample) Check(ctx *Context) {
	ctx.File.WalkAll(func(n ast.Node) bool {
		e, ok := n.(*ast.ExampleNode)
		if !ok || !e.HasDescription {
			return true
		}
		if shouldPrefixRe.MatchString(e.Description) {
			diag.ReportWarning(ctx.Reporter, r.Code(), e.DescriptionSpan,
				"start the description with a third-person verb instead of 'should'").
				Emit()
		}
		return true
	})
}

// contextDescriptionPrefix — STY3009.
// Описание context начинается с when/with/without.
type contextDescriptionPrefix struct{}

func (r *contextDescriptionPrefix) Code() diag.Code { return diag.StyContextDescriptionPrefix }
func (r *contextDescriptionPrefix) Name() string    { return r.Code().Name() }

var contextPrefixes = []string{"when", "with", "without"}

func (r *contextDescriptionPrefix) Check(ctx *Context) {
	ctx.File.WalkAll(func(n ast.Node) bool {
		g, ok := n.(*ast.GroupNode)
		if !ok || g.GroupKind != ast.GroupContext || g.Description == "" {
			return true
		}
		first := firstWord(g.Description)
		for _, p := range contextPrefixes {
			if strings.EqualFold(first, p) {
				return true
			}
		}
		diag.ReportWarning(ctx.Reporter, r.Code(), g.DescriptionSpan,
			"start the context description with 'when', 'with', or 'without'").
			Emit()
		return true
	})
}

// exampleConditionalSuffix — STY3010.
// Условие в хвосте описания примера ("... if X") прячет отдельный контекст.
type exampleConditionalSuffix struct{}

func (r *exampleConditionalSuffix) Code() diag.Code { return diag.StyExampleConditionalSuffix }
func (r *exampleConditionalSuffix) Name() string    { return r.Code().Name() }

var conditionalWordRe = regexp.MustCompile(`(?i)\s(if|unless|when)\b`)

func (r *exampleConditionalSuffix) Check(ctx *Context) {
	ctx.File.WalkAll(func(n ast.Node) bool {
		e, ok := n.(*ast.ExampleNode)
		if !ok || !e.HasDescription {
			return true
		}
		if loc := conditionalWordRe.FindStringIndex(e.Description); loc != nil {
			diag.ReportWarning(ctx.Reporter, r.Code(), e.DescriptionSpan,
				"extract the conditional clause into a separate context").
				Emit()
		}
		return true
	})
}

// exampleDescriptionLength — STY3011.
type exampleDescriptionLength struct{}

func (r *exampleDescriptionLength) Code() diag.Code { return diag.StyExampleDescriptionLength }
func (r *exampleDescriptionLength) Name() string    { return r.Code().Name() }

func (r *exampleDescriptionLength) Check(ctx *Context) {
	limit := ctx.Config.MaxDescriptionLength
	if limit <= 0 {
		limit = DefaultMaxDescriptionLength
	}
	ctx.File.WalkAll(func(n ast.Node) bool {
		e, ok := n.(*ast.ExampleNode)
		if !ok || !e.HasDescription {
			return true
		}
		if width := DescriptionWidth(e.Description); width > limit {
			diag.ReportWarning(ctx.Reporter, r.Code(), e.DescriptionSpan,
				fmt.Sprintf("description is %d characters long (limit %d); split the example or move detail into a context", width, limit)).
				Emit()
		}
		return true
	})
}

// methodDescriptionPrefix — STY3014 (эвристика, SevInfo).
// describe с именем метода помечается '#' для инстансных и '.' для классовых
// методов. Без таблицы символов можно лишь распознать "голое" имя метода.
type methodDescriptionPrefix struct{}

func (r *methodDescriptionPrefix) Code() diag.Code { return diag.StyMethodDescriptionPrefix }
func (r *methodDescriptionPrefix) Name() string    { return r.Code().Name() }

var bareMethodNameRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*[?!=]?$`)

func (r *methodDescriptionPrefix) Check(ctx *Context) {
	ctx.File.WalkAll(func(n ast.Node) bool {
		g, ok := n.(*ast.GroupNode)
		if !ok || g.GroupKind != ast.GroupDescribe || g.Description == "" {
			return true
		}
		if strings.HasPrefix(g.Description, "#") || strings.HasPrefix(g.Description, ".") {
			return true
		}
		if bareMethodNameRe.MatchString(g.Description) {
			diag.ReportInfo(ctx.Reporter, r.Code(), g.DescriptionSpan,
				"prefix the method name with '#' for instance methods or '.' for class methods").
				Emit()
		}
		return true
	})
}

func firstWord(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i]
	}
	return s
}
