package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents a lowercase identifier (method or local name),
	// including trailing '?' / '!' forms.
	Ident
	// ConstIdent represents a capitalized constant such as Article or RSpec.
	ConstIdent
	// IVar represents an instance variable (@name).
	IVar
	// GVar represents a global variable ($name).
	GVar
	// Label represents a hash label (name:), e.g. aggregate_failures:.
	Label

	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwEnd represents the 'end' keyword.
	KwEnd // end
	// KwDef represents the 'def' keyword.
	KwDef // def
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwUnless represents the 'unless' keyword.
	KwUnless // unless
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwUntil represents the 'until' keyword.
	KwUntil // until
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwBegin represents the 'begin' keyword.
	KwBegin // begin
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwModule represents the 'module' keyword.
	KwModule // module
	// KwThen represents the 'then' keyword.
	KwThen // then
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwElsif represents the 'elsif' keyword.
	KwElsif // elsif
	// KwWhen represents the 'when' keyword.
	KwWhen // when
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwRescue represents the 'rescue' keyword.
	KwRescue // rescue
	// KwEnsure represents the 'ensure' keyword.
	KwEnsure // ensure
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwYield represents the 'yield' keyword.
	KwYield // yield
	// KwAnd represents the 'and' keyword.
	KwAnd // and
	// KwOr represents the 'or' keyword.
	KwOr // or
	// KwNot represents the 'not' keyword.
	KwNot // not
	// KwNil represents the 'nil' keyword.
	KwNil // nil
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwSelf represents the 'self' keyword.
	KwSelf // self
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwNext represents the 'next' keyword.
	KwNext // next
	// KwSuper represents the 'super' keyword.
	KwSuper // super

	// SymbolLit represents a symbol literal such as :each.
	SymbolLit
	// StringLit represents a single- or double-quoted string literal.
	StringLit
	// PercentLit represents a percent literal such as %w[a b] or %i[x y].
	PercentLit
	// RegexpLit represents a regular expression literal.
	RegexpLit
	// IntLit represents an integer literal.
	IntLit
	// FloatLit represents a float literal.
	FloatLit

	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// Comma represents ','.
	Comma // ,
	// Dot represents '.'.
	Dot // .
	// DotDot represents '..'.
	DotDot // ..
	// DotDotDot represents '...'.
	DotDotDot // ...
	// SafeNav represents '&.'.
	SafeNav // &.
	// Semicolon represents ';'.
	Semicolon // ;
	// Colon represents ':'.
	Colon // :
	// ColonColon represents '::'.
	ColonColon // ::
	// Arrow represents '=>'.
	Arrow // =>
	// RArrow represents '->'.
	RArrow // ->
	// Pipe represents '|'.
	Pipe // |
	// PipePipe represents '||'.
	PipePipe // ||
	// OrAssign represents '||='.
	OrAssign // ||=
	// Amp represents '&'.
	Amp // &
	// AmpAmp represents '&&'.
	AmpAmp // &&
	// AndAssign represents '&&='.
	AndAssign // &&=
	// Plus represents '+'.
	Plus // +
	// PlusAssign represents '+='.
	PlusAssign // +=
	// Minus represents '-'.
	Minus // -
	// MinusAssign represents '-='.
	MinusAssign // -=
	// Star represents '*'.
	Star // *
	// StarStar represents '**'.
	StarStar // **
	// StarAssign represents '*='.
	StarAssign // *=
	// Slash represents '/'.
	Slash // /
	// SlashAssign represents '/='.
	SlashAssign // /=
	// Percent represents '%'.
	Percent // %
	// Assign represents '='.
	Assign // =
	// EqEq represents '=='.
	EqEq // ==
	// EqEqEq represents '==='.
	EqEqEq // ===
	// Match represents '=~'.
	Match // =~
	// Bang represents '!'.
	Bang // !
	// BangEq represents '!='.
	BangEq // !=
	// NotMatch represents '!~'.
	NotMatch // !~
	// Lt represents '<'.
	Lt // <
	// LtEq represents '<='.
	LtEq // <=
	// Spaceship represents '<=>'.
	Spaceship // <=>
	// Shl represents '<<'.
	Shl // <<
	// Gt represents '>'.
	Gt // >
	// GtEq represents '>='.
	GtEq // >=
	// Question represents '?'.
	Question // ?
	// Tilde represents '~'.
	Tilde // ~
	// Caret represents '^'.
	Caret // ^
)

var kindNames = map[Kind]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	ConstIdent:  "ConstIdent",
	IVar:        "IVar",
	GVar:        "GVar",
	Label:       "Label",
	KwDo:        "do",
	KwEnd:       "end",
	KwDef:       "def",
	KwIf:        "if",
	KwUnless:    "unless",
	KwCase:      "case",
	KwWhile:     "while",
	KwUntil:     "until",
	KwFor:       "for",
	KwBegin:     "begin",
	KwClass:     "class",
	KwModule:    "module",
	KwThen:      "then",
	KwElse:      "else",
	KwElsif:     "elsif",
	KwWhen:      "when",
	KwIn:        "in",
	KwRescue:    "rescue",
	KwEnsure:    "ensure",
	KwReturn:    "return",
	KwYield:     "yield",
	KwAnd:       "and",
	KwOr:        "or",
	KwNot:       "not",
	KwNil:       "nil",
	KwTrue:      "true",
	KwFalse:     "false",
	KwSelf:      "self",
	KwBreak:     "break",
	KwNext:      "next",
	KwSuper:     "super",
	SymbolLit:   "SymbolLit",
	StringLit:   "StringLit",
	PercentLit:  "PercentLit",
	RegexpLit:   "RegexpLit",
	IntLit:      "IntLit",
	FloatLit:    "FloatLit",
	LParen:      "(",
	RParen:      ")",
	LBrace:      "{",
	RBrace:      "}",
	LBracket:    "[",
	RBracket:    "]",
	Comma:       ",",
	Dot:         ".",
	DotDot:      "..",
	DotDotDot:   "...",
	SafeNav:     "&.",
	Semicolon:   ";",
	Colon:       ":",
	ColonColon:  "::",
	Arrow:       "=>",
	RArrow:      "->",
	Pipe:        "|",
	PipePipe:    "||",
	OrAssign:    "||=",
	Amp:         "&",
	AmpAmp:      "&&",
	AndAssign:   "&&=",
	Plus:        "+",
	PlusAssign:  "+=",
	Minus:       "-",
	MinusAssign: "-=",
	Star:        "*",
	StarStar:    "**",
	StarAssign:  "*=",
	Slash:       "/",
	SlashAssign: "/=",
	Percent:     "%",
	Assign:      "=",
	EqEq:        "==",
	EqEqEq:      "===",
	Match:       "=~",
	Bang:        "!",
	BangEq:      "!=",
	NotMatch:    "!~",
	Lt:          "<",
	LtEq:        "<=",
	Spaceship:   "<=>",
	Shl:         "<<",
	Gt:          ">",
	GtEq:        ">=",
	Question:    "?",
	Tilde:       "~",
	Caret:       "^",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
