package lexer

import (
	"speclint/internal/source"
	"speclint/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look    *token.Token   // 1 элементный буфер для токена
	hold    []token.Trivia // накопленные leading trivia
	last    token.Kind     // последний значимый токен (для / и heredoc)
	pending []string       // теги heredoc, открытых на текущей строке
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
		hold:   nil,
		last:   token.Invalid,
	}
}

// Next возвращает следующий **значимый** токен с уже собранным Leading.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	// 1) Если есть look — вернуть его и очистить
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		lx.last = tok.Kind
		return tok
	}

	// 2) собрать leading trivia в lx.hold
	lx.collectLeadingTrivia()

	// 3) Если EOF → вернуть EOF (Leading из hold приклеиваем, парсеру нужны
	// завершающие пустые строки)
	if lx.cursor.EOF() {
		tok := token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
			Text: "",
		}
		tok.Leading = lx.hold
		lx.hold = nil
		lx.last = token.EOF
		return tok
	}

	// 4) Посмотреть текущий байт и выбрать сканер
	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStartByte(ch) || ch == '_':
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '"' || ch == '\'':
		tok = lx.scanString(ch)

	case ch == ':':
		tok = lx.scanSymbolOrColon()

	case ch == '@':
		tok = lx.scanIVar()

	case ch == '$':
		tok = lx.scanGVar()

	case ch == '%' && lx.isPercentLiteralStart():
		tok = lx.scanPercentLiteral()

	case ch == '/' && lx.inExprPosition():
		tok = lx.scanRegexp()

	case ch == '<' && lx.isHeredocStart():
		tok = lx.scanHeredoc()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	// 5) В полученный token.Token положить Leading: lx.hold, обнулить hold
	tok.Leading = lx.hold
	lx.hold = nil

	lx.last = tok.Kind
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	last := lx.last
	t := lx.Next()
	lx.look = &t
	lx.last = last
	return t
}

// File returns the underlying source file.
func (lx *Lexer) File() *source.File {
	return lx.file
}

// EmptySpan returns a zero-length span at the current offset.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// inExprPosition reports whether the next token starts an expression.
// После идентификатора, литерала или закрывающей скобки '/' — это деление,
// иначе начало регулярного выражения.
func (lx *Lexer) inExprPosition() bool {
	switch lx.last {
	case token.Ident, token.ConstIdent, token.IVar, token.GVar,
		token.IntLit, token.FloatLit, token.StringLit, token.SymbolLit,
		token.PercentLit, token.RegexpLit,
		token.RParen, token.RBracket, token.RBrace,
		token.KwEnd, token.KwSelf, token.KwNil, token.KwTrue, token.KwFalse:
		return false
	default:
		return true
	}
}
