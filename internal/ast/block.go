package ast

// BlockNode is any statement the parser does not classify as part of the
// spec DSL: plain code, shared_examples, iterator loops, configuration.
type BlockNode struct {
	base
	// Head is the first token's text, for debugging dumps.
	Head string
	// IterOverLiteral marks statements that iterate a literal collection
	// ([...].each, %w[...].each); examples inside them are flagged by the
	// iterator rule.
	IterOverLiteral bool

	Nodes []Node
}

func (b *BlockNode) Kind() NodeKind   { return NodeBlock }
func (b *BlockNode) Children() []Node { return b.Nodes }
