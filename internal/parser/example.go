package parser

import (
	"speclint/internal/ast"
	"speclint/internal/diag"
	"speclint/internal/source"
	"speclint/internal/token"
)

// parseExample разбирает it/specify/example/scenario.
// Тело примера не попадает в дерево: правила работают только со спанами
// ожиданий внутри него.
func (p *Parser) parseExample(ctx bodyCtx) ast.Node {
	word := p.advance()

	var kind ast.ExampleKind
	switch word.Text {
	case "specify":
		kind = ast.ExampleSpecify
	case "example":
		kind = ast.ExampleExample
	case "scenario":
		kind = ast.ExampleScenario
	default:
		kind = ast.ExampleIt
	}

	args := p.parseCallArgs()

	e := &ast.ExampleNode{
		ExampleKind:       kind,
		Description:       args.desc,
		HasDescription:    args.hasDesc,
		DescriptionSpan:   args.descSpan,
		AggregateFailures: args.aggregate || ctx.aggregate,
	}

	endSpan := args.lastSpan

	switch {
	case p.at(token.KwDo):
		open := p.advance()
		e.Expectations = p.scanExampleBody(token.KwEnd, open.Span)
		if p.at(token.KwEnd) {
			endSpan = p.advance().Span
		} else {
			endSpan = p.prev().Span
		}

	case p.at(token.LBrace) && isBlockBrace(p.prev().Kind):
		open := p.advance()
		e.Expectations = p.scanExampleBody(token.RBrace, open.Span)
		if p.at(token.RBrace) {
			endSpan = p.advance().Span
		} else {
			endSpan = p.prev().Span
		}

	default:
		// pending-пример без тела: it "does something eventually"
	}

	p.setLoc(e, word.Span, endSpan)
	return e
}

// scanExampleBody walks the statements of an example body and collects the
// span of every expectation statement. Non-expectation statements that open
// nested blocks (aggregate_failures do ... end, conditionals) are scanned
// recursively; the blocks of an expectation itself (expect { ... }) are not,
// so a guarded expectation still counts once.
func (p *Parser) scanExampleBody(stop token.Kind, openerSpan source.Span) []source.Span {
	p.skipBlockParams()
	var spans []source.Span
	for {
		switch {
		case p.atEOF():
			p.errBodyUnclosed(stop, openerSpan)
			return spans
		case p.at(stop):
			return spans
		case p.at(token.Semicolon):
			p.advance()
		default:
			spans = append(spans, p.scanBodyStatement(stop)...)
		}
	}
}

// scanBodyStatement съедает один оператор тела примера и возвращает спаны
// найденных в нём ожиданий.
func (p *Parser) scanBodyStatement(enclosing token.Kind) []source.Span {
	startPos := p.pos
	head := p.peek()
	isExpectation := isExpectationHead(head)
	last := head.Span
	var nested []source.Span

	// счётчик открытых end-блоков внутри оператора
	endDepth := 0
	if head.OpensWithEnd() || isStatementOpener(head.Kind) {
		endDepth = 1
		p.advance()
	}

	for {
		t := p.peek()
		if t.Kind == token.EOF {
			break
		}
		if endDepth == 0 && (t.Kind == enclosing || t.Kind == token.KwEnd || t.Kind == token.RBrace) {
			break
		}
		if endDepth == 0 && p.pos > startPos && p.atStatementEnd() {
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
			open := p.advance()
			if isBlockBrace(p.prev().Kind) && !isExpectation {
				nested = append(nested, p.scanExampleBody(token.RBrace, open.Span)...)
				if p.at(token.RBrace) {
					p.advance()
				}
			} else {
				p.skipBalanced(token.RBrace, open.Span)
			}
		case token.KwDo:
			open := p.advance()
			if isExpectation {
				endDepth++
			} else {
				nested = append(nested, p.scanExampleBody(token.KwEnd, open.Span)...)
				if p.at(token.KwEnd) {
					p.advance()
				}
			}
		case token.KwEnd:
			p.advance()
			if endDepth > 0 {
				endDepth--
			}
		case token.Dot:
			p.advance()
			// легаси-ожидание: value.should eq(...)
			m := p.peek()
			if m.Kind == token.Ident && (m.Text == "should" || m.Text == "should_not") {
				isExpectation = true
			}
		default:
			if t.OpensWithEnd() {
				endDepth++
			}
			p.advance()
		}
		last = p.prev().Span
	}

	if isExpectation {
		return append([]source.Span{head.Span.Cover(last)}, nested...)
	}
	return nested
}

func (p *Parser) errBodyUnclosed(stop token.Kind, openerSpan source.Span) {
	p.err(diag.SynUnclosedBlock, openerSpan, "block is never closed; expected '"+stop.String()+"'")
}

// isExpectationHead reports whether the statement starts an expectation.
func isExpectationHead(t token.Token) bool {
	if t.Kind != token.Ident {
		return false
	}
	switch t.Text {
	case "expect", "is_expected", "should", "should_not", "expect_any_instance_of":
		return true
	}
	return false
}

// isStatementOpener — if/unless/while/until открывают блок только в позиции
// начала оператора.
func isStatementOpener(k token.Kind) bool {
	switch k {
	case token.KwIf, token.KwUnless, token.KwWhile, token.KwUntil:
		return true
	default:
		return false
	}
}
