package ast

import (
	"speclint/internal/source"
)

// NodeKind discriminates spec tree nodes.
type NodeKind uint8

const (
	// NodeGroup is a describe/context/feature block.
	NodeGroup NodeKind = iota
	// NodeExample is an it/specify/example/scenario block.
	NodeExample
	// NodeBinding is a let/let!/subject/subject! declaration.
	NodeBinding
	// NodeHook is a before/after/around block.
	NodeHook
	// NodeBlock is any other statement, possibly with a nested body.
	NodeBlock
)

func (k NodeKind) String() string {
	switch k {
	case NodeGroup:
		return "group"
	case NodeExample:
		return "example"
	case NodeBinding:
		return "binding"
	case NodeHook:
		return "hook"
	case NodeBlock:
		return "block"
	}
	return "unknown"
}

// Node is a single classified statement of a spec file.
// Invariant: Children() preserves source order.
type Node interface {
	Kind() NodeKind
	Span() source.Span
	// StartLine and EndLine are the 1-based line range the node occupies.
	StartLine() uint32
	EndLine() uint32
	Children() []Node
}

// base carries the location fields shared by all nodes.
type base struct {
	span      source.Span
	startLine uint32
	endLine   uint32
}

func (b *base) Span() source.Span { return b.span }
func (b *base) StartLine() uint32 { return b.startLine }
func (b *base) EndLine() uint32   { return b.endLine }

// SetLocation записывает span и диапазон строк узла (используется парсером).
func (b *base) SetLocation(span source.Span, startLine, endLine uint32) {
	b.span = span
	b.startLine = startLine
	b.endLine = endLine
}

// Walk обходит дерево в порядке исходника (pre-order).
// Если fn возвращает false, поддерево не посещается.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children() {
		Walk(child, fn)
	}
}
