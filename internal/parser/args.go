package parser

import (
	"strings"

	"speclint/internal/diag"
	"speclint/internal/source"
	"speclint/internal/token"
)

// callArgs — всё, что правила хотят знать об аргументах DSL-вызова.
type callArgs struct {
	desc      string // первый строковый аргумент без кавычек
	descSpan  source.Span
	hasDesc   bool
	constName string // первый константный аргумент (describe Article)
	constSpan source.Span

	firstSym     string // первый символьный аргумент без ':'
	firstSymSpan source.Span
	hasParens    bool
	parenSpan    source.Span // span списка аргументов вместе со скобками
	aggregate    bool        // :aggregate_failures или aggregate_failures: true

	lastSpan source.Span // span последнего токена аргументов
}

// parseCallArgs scans the arguments of a DSL call after the call word. It
// stops before the block opener ('do' or a block '{') or at the end of the
// statement. Nested brackets inside argument expressions are skipped whole.
func (p *Parser) parseCallArgs() callArgs {
	args := callArgs{lastSpan: p.prev().Span}

	if p.at(token.LParen) {
		open := p.advance()
		args.hasParens = true
		args.parenSpan = open.Span
		p.scanArgList(&args, token.RParen)
		if p.at(token.RParen) {
			closing := p.advance()
			args.parenSpan = args.parenSpan.Cover(closing.Span)
			args.lastSpan = closing.Span
		} else {
			p.errUnclosed(token.RParen, open.Span)
		}
		// после (...) ещё могут идти голые метаданные: it('x'), :slow
		if p.at(token.Comma) {
			p.advance()
			p.scanBareArgs(&args)
		}
		return args
	}

	p.scanBareArgs(&args)
	return args
}

// scanBareArgs scans unparenthesized arguments up to the block opener or the
// end of the statement.
func (p *Parser) scanBareArgs(args *callArgs) {
	for {
		t := p.peek()
		if t.Kind == token.EOF || t.Kind == token.KwDo {
			return
		}
		if t.Kind == token.LBrace && isBlockBrace(p.prev().Kind) {
			return
		}
		if p.atStatementEnd() {
			return
		}
		p.consumeArgToken(args)
	}
}

// scanArgList scans arguments inside parentheses up to the closer.
func (p *Parser) scanArgList(args *callArgs, closer token.Kind) {
	for {
		t := p.peek()
		if t.Kind == token.EOF || t.Kind == closer {
			return
		}
		p.consumeArgToken(args)
	}
}

// consumeArgToken съедает один аргументный токен (или вложенную скобочную
// группу целиком) и обновляет накопленные поля.
func (p *Parser) consumeArgToken(args *callArgs) {
	t := p.advance()
	args.lastSpan = t.Span

	switch t.Kind {
	case token.StringLit:
		if !args.hasDesc {
			args.desc = stringValue(t.Text)
			args.descSpan = t.Span
			args.hasDesc = true
		}

	case token.ConstIdent:
		if args.constName == "" && !args.hasDesc {
			name := t.Text
			sp := t.Span
			for p.at(token.ColonColon) && p.peekAt(1).Kind == token.ConstIdent {
				p.advance()
				part := p.advance()
				name += "::" + part.Text
				sp = sp.Cover(part.Span)
				args.lastSpan = part.Span
			}
			args.constName = name
			args.constSpan = sp
		}

	case token.SymbolLit:
		// символ после метки — значение метаданных, не тег
		if p.pos >= 2 && p.toks[p.pos-2].Kind == token.Label {
			break
		}
		sym := strings.TrimPrefix(t.Text, ":")
		sym = strings.Trim(sym, `"'`)
		if sym == "aggregate_failures" {
			args.aggregate = true
		}
		if args.firstSym == "" {
			args.firstSym = sym
			args.firstSymSpan = t.Span
		}

	case token.Label:
		// метаданные вида aggregate_failures: true
		name := strings.TrimSuffix(t.Text, ":")
		val := p.peek()
		if name == "aggregate_failures" && val.Kind == token.KwTrue {
			args.aggregate = true
		}

	case token.LParen:
		p.skipBalanced(token.RParen, t.Span)
		args.lastSpan = p.prev().Span
	case token.LBracket:
		p.skipBalanced(token.RBracket, t.Span)
		args.lastSpan = p.prev().Span
	case token.LBrace:
		p.skipBalanced(token.RBrace, t.Span)
		args.lastSpan = p.prev().Span
	}
}

// skipBalanced съедает токены до закрывающей скобки, учитывая вложенность.
func (p *Parser) skipBalanced(closer token.Kind, openSpan source.Span) {
	for {
		t := p.peek()
		switch t.Kind {
		case token.EOF:
			p.errUnclosed(closer, openSpan)
			return
		case closer:
			p.advance()
			return
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

func (p *Parser) errUnclosed(closer token.Kind, openSpan source.Span) {
	switch closer {
	case token.RParen:
		p.err(diag.SynUnclosedParen, openSpan, "unclosed '('")
	case token.RBracket:
		p.err(diag.SynUnclosedBracket, openSpan, "unclosed '['")
	default:
		p.err(diag.SynUnclosedBrace, openSpan, "unclosed '{'")
	}
}

// stringValue снимает кавычки со строкового литерала. Текст интерполяции
// остаётся как есть: для правил важна только видимая длина и префикс.
func stringValue(text string) string {
	if len(text) >= 2 {
		switch {
		case text[0] == '"' && text[len(text)-1] == '"',
			text[0] == '\'' && text[len(text)-1] == '\'':
			return text[1 : len(text)-1]
		}
	}
	return text
}
