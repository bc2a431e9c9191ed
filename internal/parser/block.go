package parser

import (
	"speclint/internal/ast"
	"speclint/internal/token"
)

// parseGenericStatement разбирает оператор вне DSL: обычный код,
// shared_examples, итераторы, условия. Если оператор открывает блок,
// его тело разбирается рекурсивно, чтобы DSL-вызовы внутри не терялись.
func (p *Parser) parseGenericStatement(ctx bodyCtx) ast.Node {
	startPos := p.pos
	head := p.peek()

	b := &ast.BlockNode{
		Head: head.Text,
	}

	literalReceiver := head.Kind == token.LBracket || head.Kind == token.PercentLit
	sawMethodCall := false
	endSpan := head.Span

	// оператор с keyword-заголовком: тело до 'end' разбираем рекурсивно
	if head.OpensWithEnd() || isStatementOpener(head.Kind) {
		open := p.advance()
		p.skipStatementHead(startPos)
		nodes, closed := p.parseBody(token.KwEnd, open.Span, ctx)
		b.Nodes = nodes
		if closed && p.at(token.KwEnd) {
			endSpan = p.advance().Span
		} else {
			endSpan = p.prev().Span
		}
		p.setLoc(b, head.Span, endSpan)
		return b
	}

scan:
	for {
		t := p.peek()
		if t.Kind == token.EOF {
			break
		}
		if t.Kind == token.KwEnd || t.Kind == token.RBrace {
			break
		}
		if p.pos > startPos && p.atStatementEnd() {
			break
		}

		switch t.Kind {
		case token.LParen:
			open := p.advance()
			p.skipBalanced(token.RParen, open.Span)

		case token.LBracket:
			open := p.advance()
			p.skipBalanced(token.RBracket, open.Span)

		case token.LBrace:
			if isBlockBrace(p.prev().Kind) {
				open := p.advance()
				nodes, closed := p.parseBody(token.RBrace, open.Span, ctx)
				b.Nodes = nodes
				if closed && p.at(token.RBrace) {
					endSpan = p.advance().Span
				} else {
					endSpan = p.prev().Span
				}
				break scan
			}
			open := p.advance()
			p.skipBalanced(token.RBrace, open.Span)

		case token.KwDo:
			open := p.advance()
			nodes, closed := p.parseBody(token.KwEnd, open.Span, ctx)
			b.Nodes = nodes
			if closed && p.at(token.KwEnd) {
				endSpan = p.advance().Span
			} else {
				endSpan = p.prev().Span
			}
			break scan

		case token.Dot, token.SafeNav:
			p.advance()
			if p.peek().Kind == token.Ident {
				sawMethodCall = true
			}

		default:
			if t.OpensWithEnd() {
				// выражение вида x = case ... end
				open := p.advance()
				p.skipDoBlock(open.Span)
			} else {
				p.advance()
			}
		}
		endSpan = p.prev().Span
	}

	b.IterOverLiteral = literalReceiver && sawMethodCall && len(b.Nodes) > 0
	p.setLoc(b, head.Span, endSpan)
	return b
}

// skipStatementHead пропускает остаток заголовка (условие if/while и т.п.)
// до конца строки, балансируя скобки.
func (p *Parser) skipStatementHead(startPos int) {
	for {
		t := p.peek()
		if t.Kind == token.EOF || t.Kind == token.KwThen {
			if t.Kind == token.KwThen {
				p.advance()
			}
			return
		}
		if p.pos > startPos && p.atStatementEnd() {
			return
		}
		switch t.Kind {
		case token.LParen:
			open := p.advance()
			p.skipBalanced(token.RParen, open.Span)
		case token.LBracket:
			open := p.advance()
			p.skipBalanced(token.RBracket, open.Span)
		case token.LBrace:
			open := p.advance()
			p.skipBalanced(token.RBrace, open.Span)
		default:
			p.advance()
		}
	}
}
