package parser

import (
	"strings"

	"speclint/internal/ast"
	"speclint/internal/diag"
)

// parseBinding разбирает let/let!/subject/subject!.
func (p *Parser) parseBinding() ast.Node {
	word := p.advance()

	var kind ast.BindingKind
	switch word.Text {
	case "let":
		kind = ast.BindingLet
	case "let!":
		kind = ast.BindingLetBang
	case "subject!":
		kind = ast.BindingSubjectBang
	default:
		kind = ast.BindingSubject
	}
	eager := strings.HasSuffix(word.Text, "!")

	args := p.parseCallArgs()

	b := &ast.BindingNode{
		BindingKind: kind,
		Name:        args.firstSym,
		Eager:       eager,
	}

	if b.Name == "" && (kind == ast.BindingLet || kind == ast.BindingLetBang) {
		p.err(diag.SynUnexpectedToken, word.Span, "'"+word.Text+"' requires a symbol name")
	}

	endSpan := p.skipAttachedBlock(word.Span, args.lastSpan, word.Text)
	p.setLoc(b, word.Span, endSpan)
	return b
}
