package parser

import (
	"speclint/internal/ast"
	"speclint/internal/diag"
	"speclint/internal/source"
	"speclint/internal/token"
)

// parseBody — основной цикл: разбирает операторы до закрывающего токена.
// stop is token.KwEnd for do-blocks, token.RBrace for brace blocks and
// token.EOF for the top level. Returns false when the closer was never found.
func (p *Parser) parseBody(stop token.Kind, openerSpan source.Span, ctx bodyCtx) ([]ast.Node, bool) {
	p.skipBlockParams()
	var nodes []ast.Node
	for {
		switch {
		case p.atEOF():
			if stop != token.EOF {
				p.err(diag.SynUnclosedBlock, openerSpan, "block is never closed; expected '"+stop.String()+"'")
				return nodes, false
			}
			return nodes, true

		case p.at(stop):
			return nodes, true

		case p.at(token.KwEnd):
			// 'end' без открытого блока
			p.err(diag.SynUnexpectedEnd, p.peek().Span, "unexpected 'end'")
			p.advance()

		case p.at(token.RBrace):
			p.err(diag.SynUnexpectedToken, p.peek().Span, "unexpected '}'")
			p.advance()

		case p.at(token.Semicolon):
			p.advance()

		default:
			if n := p.parseStatement(ctx); n != nil {
				nodes = append(nodes, n)
			}
		}
	}
}

// parseStatement классифицирует оператор по головному токену.
func (p *Parser) parseStatement(ctx bodyCtx) ast.Node {
	head := p.peek()

	if head.Kind == token.ConstIdent && head.Text == "RSpec" &&
		p.peekAt(1).Kind == token.Dot && isGroupWord(p.peekAt(2)) {
		return p.parseGroup(ctx, true)
	}

	if head.Kind == token.Ident {
		switch head.Text {
		case "describe", "context", "feature":
			return p.parseGroup(ctx, false)
		case "it", "specify", "example", "scenario":
			return p.parseExample(ctx)
		case "let", "let!", "subject", "subject!":
			return p.parseBinding()
		case "before", "after", "around":
			return p.parseHook()
		}
	}

	return p.parseGenericStatement(ctx)
}

func isGroupWord(t token.Token) bool {
	if t.Kind != token.Ident {
		return false
	}
	switch t.Text {
	case "describe", "context", "feature":
		return true
	}
	return false
}

// skipBlockParams пропускает параметры блока |a, b| сразу после do или '{'.
func (p *Parser) skipBlockParams() {
	if !p.at(token.Pipe) {
		return
	}
	p.advance()
	for !p.atEOF() && !p.at(token.Pipe) {
		if p.peek().HasNewlineBefore() {
			return // незакрытый список параметров, не съедаем тело
		}
		p.advance()
	}
	if p.at(token.Pipe) {
		p.advance()
	}
}

// atStatementEnd reports whether the statement ends before the next token:
// all brackets are balanced (the caller tracks that), the next token starts
// a new line, and the previous token does not continue the expression.
func (p *Parser) atStatementEnd() bool {
	next := p.peek()
	if next.Kind == token.EOF || next.Kind == token.Semicolon {
		return true
	}
	if !next.HasNewlineBefore() {
		return false
	}
	if continuesLine(p.prev().Kind) {
		return false
	}
	// Строка, начинающаяся с '.method', продолжает цепочку вызовов.
	if next.Kind == token.Dot || next.Kind == token.SafeNav {
		return false
	}
	return true
}

// continuesLine reports whether a line ending with this token kind carries
// the statement over to the next line.
func continuesLine(k token.Kind) bool {
	switch k {
	case token.Comma, token.Dot, token.SafeNav, token.Colon, token.ColonColon,
		token.Arrow, token.RArrow, token.Label, token.Question,
		token.Assign, token.PlusAssign, token.MinusAssign, token.StarAssign,
		token.SlashAssign, token.OrAssign, token.AndAssign,
		token.Plus, token.Minus, token.Star, token.StarStar, token.Slash, token.Percent,
		token.EqEq, token.EqEqEq, token.BangEq, token.Match, token.NotMatch,
		token.Lt, token.LtEq, token.Gt, token.GtEq, token.Spaceship, token.Shl,
		token.Pipe, token.PipePipe, token.Amp, token.AmpAmp, token.Caret,
		token.KwAnd, token.KwOr, token.KwNot:
		return true
	default:
		return false
	}
}

// isBlockBrace решает, открывает ли '{' блок, а не hash-литерал.
// После идентификатора или закрывающей скобки фигурная скобка — это блок.
func isBlockBrace(prev token.Kind) bool {
	switch prev {
	case token.Ident, token.ConstIdent, token.RParen, token.RBracket,
		token.IVar, token.GVar:
		return true
	default:
		return false
	}
}
