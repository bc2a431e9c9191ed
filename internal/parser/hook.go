package parser

import (
	"speclint/internal/ast"
	"speclint/internal/diag"
	"speclint/internal/source"
	"speclint/internal/token"
)

// parseHook разбирает before/after/around.
func (p *Parser) parseHook() ast.Node {
	word := p.advance()

	var kind ast.HookKind
	switch word.Text {
	case "after":
		kind = ast.HookAfter
	case "around":
		kind = ast.HookAround
	default:
		kind = ast.HookBefore
	}

	args := p.parseCallArgs()

	h := &ast.HookNode{
		HookKind: kind,
	}
	switch args.firstSym {
	case "":
		h.Scope = ast.ScopeDefault
	case "each", "example":
		h.Scope = ast.ScopeEach
		h.ExplicitScope = true
	case "all", "context":
		h.Scope = ast.ScopeAll
		h.ExplicitScope = true
	case "suite":
		h.Scope = ast.ScopeSuite
		h.ExplicitScope = true
	default:
		// метаданные-фильтр вроде before(:each, :db) не меняют скоуп,
		// но здесь первый символ не из известного набора
		h.Scope = ast.ScopeDefault
	}
	if h.ExplicitScope {
		h.ScopeSpan = args.firstSymSpan
		if args.hasParens {
			h.ScopeSpan = args.parenSpan
		}
	}

	endSpan := p.skipAttachedBlock(word.Span, args.lastSpan, word.Text)
	p.setLoc(h, word.Span, endSpan)
	return h
}

// skipAttachedBlock съедает блок { ... } или do ... end после вызова,
// не интерпретируя его содержимое. Возвращает span закрывающего токена.
func (p *Parser) skipAttachedBlock(headSpan, argsEnd source.Span, name string) source.Span {
	switch {
	case p.at(token.KwDo):
		open := p.advance()
		return p.skipDoBlock(open.Span)

	case p.at(token.LBrace) && isBlockBrace(p.prev().Kind):
		open := p.advance()
		p.skipBalanced(token.RBrace, open.Span)
		return p.prev().Span

	default:
		p.err(diag.SynMissingBlockBody, headSpan, "'"+name+"' without a block body")
		return argsEnd
	}
}

// skipDoBlock пропускает тело do-блока, учитывая вложенные end-блоки.
func (p *Parser) skipDoBlock(openSpan source.Span) source.Span {
	depth := 1
	statementStart := true
	for {
		t := p.peek()
		switch {
		case t.Kind == token.EOF:
			p.err(diag.SynUnclosedBlock, openSpan, "block is never closed; expected 'end'")
			return p.prev().Span

		case t.Kind == token.KwEnd:
			p.advance()
			depth--
			if depth == 0 {
				return p.prev().Span
			}

		case t.OpensWithEnd():
			p.advance()
			depth++

		case isStatementOpener(t.Kind) && statementStart:
			p.advance()
			depth++

		default:
			p.advance()
		}
		statementStart = p.peek().HasNewlineBefore() || p.prev().Kind == token.Semicolon
	}
}
