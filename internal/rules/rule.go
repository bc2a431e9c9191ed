package rules

import (
	"speclint/internal/ast"
	"speclint/internal/diag"
	"speclint/internal/source"
)

// Context — всё, что видит правило за один проход по файлу.
// Правила читают дерево и исходник, но никогда не изменяют их.
type Context struct {
	File     *ast.SpecFile
	Source   *source.File
	Config   Config
	Reporter diag.Reporter
}

// Rule is a single independent check over the parsed tree.
// Check must be deterministic and must not retain state between files.
type Rule interface {
	// Code is the stable diagnostic code of the rule.
	Code() diag.Code
	// Name is the kebab-case identifier used in output and --rules.
	Name() string
	// Check inspects the tree and reports violations through ctx.Reporter.
	Check(ctx *Context)
}

// eachSiblingList вызывает fn для каждого списка детей: сначала корневого,
// затем всех вложенных. Правила о соседях работают в терминах этих списков.
func eachSiblingList(f *ast.SpecFile, fn func(parent *ast.GroupNode, siblings []ast.Node)) {
	fn(nil, f.Roots)
	f.WalkAll(func(n ast.Node) bool {
		if g, ok := n.(*ast.GroupNode); ok {
			fn(g, g.Nodes)
		} else if b, ok := n.(*ast.BlockNode); ok && len(b.Nodes) > 0 {
			fn(nil, b.Nodes)
		}
		return true
	})
}

// isBindingOrHook — узлы, образующие "шапку" группы.
func isBindingOrHook(n ast.Node) bool {
	switch n.Kind() {
	case ast.NodeBinding, ast.NodeHook:
		return true
	default:
		return false
	}
}
