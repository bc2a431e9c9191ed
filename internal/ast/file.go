package ast

import (
	"speclint/internal/source"
)

// SpecFile is the root of one parsed spec file.
type SpecFile struct {
	File  source.FileID
	Roots []Node
}

// WalkAll обходит все корневые узлы файла.
func (f *SpecFile) WalkAll(fn func(Node) bool) {
	for _, root := range f.Roots {
		Walk(root, fn)
	}
}

// Groups returns every group node in the file, in source order.
func (f *SpecFile) Groups() []*GroupNode {
	var out []*GroupNode
	f.WalkAll(func(n Node) bool {
		if g, ok := n.(*GroupNode); ok {
			out = append(out, g)
		}
		return true
	})
	return out
}

// Examples returns every example node in the file, in source order.
func (f *SpecFile) Examples() []*ExampleNode {
	var out []*ExampleNode
	f.WalkAll(func(n Node) bool {
		if e, ok := n.(*ExampleNode); ok {
			out = append(out, e)
		}
		return true
	})
	return out
}
