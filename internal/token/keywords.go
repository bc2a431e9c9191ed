package token

var keywords = map[string]Kind{
	"do":     KwDo,
	"end":    KwEnd,
	"def":    KwDef,
	"if":     KwIf,
	"unless": KwUnless,
	"case":   KwCase,
	"while":  KwWhile,
	"until":  KwUntil,
	"for":    KwFor,
	"begin":  KwBegin,
	"class":  KwClass,
	"module": KwModule,
	"then":   KwThen,
	"else":   KwElse,
	"elsif":  KwElsif,
	"when":   KwWhen,
	"in":     KwIn,
	"rescue": KwRescue,
	"ensure": KwEnsure,
	"return": KwReturn,
	"yield":  KwYield,
	"and":    KwAnd,
	"or":     KwOr,
	"not":    KwNot,
	"nil":    KwNil,
	"true":   KwTrue,
	"false":  KwFalse,
	"self":   KwSelf,
	"break":  KwBreak,
	"next":   KwNext,
	"super":  KwSuper,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые — только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
