package parser

import (
	"speclint/internal/ast"
	"speclint/internal/diag"
	"speclint/internal/lexer"
	"speclint/internal/source"
	"speclint/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Parser — состояние парсера на один файл.
// Токены вычитываются целиком до разбора: правила и разбор операторов
// требуют произвольного lookahead, а файлы спеков маленькие.
type Parser struct {
	file *source.File
	toks []token.Token
	pos  int
	opts Options
}

// ParseFile — входная точка для разбора одного файла.
// Требует уже созданный lexer (на основе source.File).
func ParseFile(lx *lexer.Lexer, opts Options) *ast.SpecFile {
	p := Parser{
		file: lx.File(),
		opts: opts,
	}
	for {
		tok := lx.Next()
		p.toks = append(p.toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	roots, _ := p.parseBody(token.EOF, p.toks[0].Span, bodyCtx{})
	return &ast.SpecFile{
		File:  p.file.ID,
		Roots: roots,
	}
}

// bodyCtx carries state inherited from enclosing groups.
type bodyCtx struct {
	depth     int
	aggregate bool
}

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

// peekAt возвращает токен через n позиций вперёд (0 == peek).
func (p *Parser) peekAt(n int) token.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[p.pos+n]
}

func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atEOF() bool {
	return p.at(token.EOF)
}

// atWord reports whether the next token is a plain identifier with the text.
func (p *Parser) atWord(text string) bool {
	t := p.peek()
	return t.Kind == token.Ident && t.Text == text
}

// prev возвращает последний потреблённый токен.
func (p *Parser) prev() token.Token {
	if p.pos == 0 {
		return token.Token{Kind: token.Invalid}
	}
	return p.toks[p.pos-1]
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Enough() {
		return
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil, nil)
}

func (p *Parser) err(code diag.Code, sp source.Span, msg string) {
	p.report(code, diag.SevError, sp, msg)
}

// setLoc записывает span и диапазон строк узла через локатор base.
func (p *Parser) setLoc(n interface {
	SetLocation(source.Span, uint32, uint32)
}, start, end source.Span) {
	sp := start.Cover(end)
	endOff := sp.End
	if endOff > sp.Start {
		endOff--
	}
	n.SetLocation(sp, p.file.LineAt(sp.Start), p.file.LineAt(endOff))
}
