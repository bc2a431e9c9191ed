package parser

import (
	"speclint/internal/ast"
	"speclint/internal/diag"
	"speclint/internal/token"
)

// parseGroup разбирает describe/context/feature вместе с телом блока.
func (p *Parser) parseGroup(ctx bodyCtx, rspecReceiver bool) ast.Node {
	start := p.peek()
	if rspecReceiver {
		p.advance() // RSpec
		p.advance() // .
	}
	word := p.advance()

	var kind ast.GroupKind
	switch word.Text {
	case "context":
		kind = ast.GroupContext
	case "feature":
		kind = ast.GroupFeature
	default:
		kind = ast.GroupDescribe
	}

	args := p.parseCallArgs()

	g := &ast.GroupNode{
		GroupKind:         kind,
		Description:       args.desc,
		DescriptionSpan:   args.descSpan,
		ConstDescription:  args.constName,
		Depth:             ctx.depth,
		AggregateFailures: args.aggregate || ctx.aggregate,
		RSpecReceiver:     rspecReceiver,
	}

	if !args.hasDesc && args.constName == "" {
		p.err(diag.SynMissingDescription, word.Span, "'"+word.Text+"' without a description argument")
	}

	childCtx := bodyCtx{depth: ctx.depth + 1, aggregate: g.AggregateFailures}
	endSpan := args.lastSpan

	switch {
	case p.at(token.KwDo):
		open := p.advance()
		g.OpenLine = p.file.LineAt(open.Span.Start)
		nodes, closed := p.parseBody(token.KwEnd, open.Span, childCtx)
		g.Nodes = nodes
		if closed && p.at(token.KwEnd) {
			endSpan = p.advance().Span
		} else {
			endSpan = p.prev().Span
		}

	case p.at(token.LBrace) && isBlockBrace(p.prev().Kind):
		open := p.advance()
		g.OpenLine = p.file.LineAt(open.Span.Start)
		nodes, closed := p.parseBody(token.RBrace, open.Span, childCtx)
		g.Nodes = nodes
		if closed && p.at(token.RBrace) {
			endSpan = p.advance().Span
		} else {
			endSpan = p.prev().Span
		}

	default:
		p.err(diag.SynMissingBlockBody, word.Span, "'"+word.Text+"' without a block body")
		g.OpenLine = p.file.LineAt(word.Span.Start)
	}

	p.setLoc(g, start.Span, endSpan)
	return g
}
