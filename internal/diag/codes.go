package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedPercent      Code = 1005
	LexUnterminatedRegexp       Code = 1006

	// Структурные (разбор дерева групп)
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnclosedBlock      Code = 2002
	SynUnexpectedEnd      Code = 2003
	SynUnclosedParen      Code = 2004
	SynUnclosedBrace      Code = 2005
	SynUnclosedBracket    Code = 2006
	SynMissingBlockBody   Code = 2007
	SynMissingDescription Code = 2008

	// Правила стиля
	StyInfo                         Code = 3000
	StyBlankLineAfterGroupOpen      Code = 3001
	StyBlankLineBetweenSiblings     Code = 3002
	StyBlankLineAfterBindingBlock   Code = 3003
	StyBindingGrouping              Code = 3004
	StyExplicitEachRedundant        Code = 3005
	StyShouldPrefixInExample        Code = 3006
	StyOneExpectationPerExample     Code = 3007
	StyContextMissingNegativeCase   Code = 3008
	StyContextDescriptionPrefix     Code = 3009
	StyExampleConditionalSuffix     Code = 3010
	StyExampleDescriptionLength     Code = 3011
	StyIteratorGeneratedExamples    Code = 3012
	StySubjectNotLeading            Code = 3013
	StyMethodDescriptionPrefix      Code = 3014

	// Ошибки I/O
	IOLoadFileError Code = 4001

	// Внутренние сбои движка правил
	IntInfo        Code = 5000
	IntRuleFailure Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode:                   "Unknown error",
	LexInfo:                       "Lexical information",
	LexUnknownChar:                "Unknown character",
	LexUnterminatedString:         "Unterminated string",
	LexUnterminatedBlockComment:   "Unterminated block comment",
	LexBadNumber:                  "Bad number",
	LexUnterminatedPercent:        "Unterminated percent literal",
	LexUnterminatedRegexp:         "Unterminated regexp literal",
	SynInfo:                       "Structure information",
	SynUnexpectedToken:            "Unexpected token",
	SynUnclosedBlock:              "Unclosed block",
	SynUnexpectedEnd:              "Unexpected 'end'",
	SynUnclosedParen:              "Unclosed parenthesis",
	SynUnclosedBrace:              "Unclosed brace",
	SynUnclosedBracket:            "Unclosed bracket",
	SynMissingBlockBody:           "Group call without a block body",
	SynMissingDescription:         "Group call without a description",
	StyInfo:                       "Style information",
	StyBlankLineAfterGroupOpen:    "Blank line right after a group opening",
	StyBlankLineBetweenSiblings:   "Sibling groups not separated by one blank line",
	StyBlankLineAfterBindingBlock: "Missing blank line after let/subject/hook block",
	StyBindingGrouping:            "Hook interleaved with let/subject declarations",
	StyExplicitEachRedundant:      "Explicit default hook scope",
	StyShouldPrefixInExample:      "Example description starts with 'should'",
	StyOneExpectationPerExample:   "More than one expectation in example",
	StyContextMissingNegativeCase: "Conditional context without a negated sibling",
	StyContextDescriptionPrefix:   "Context description without when/with/without prefix",
	StyExampleConditionalSuffix:   "Example description ends with a conditional clause",
	StyExampleDescriptionLength:   "Example description too long",
	StyIteratorGeneratedExamples:  "Examples generated from a literal collection",
	StySubjectNotLeading:          "Subject is not the first declaration in its group",
	StyMethodDescriptionPrefix:    "Method description without '#' or '.' prefix",
	IOLoadFileError:               "I/O load file error",
	IntInfo:                       "Internal information",
	IntRuleFailure:                "Rule implementation failure",
}

// ruleNames are the stable CLI identifiers of style rules.
var ruleNames = map[Code]string{
	StyBlankLineAfterGroupOpen:    "blank-line-after-group-open",
	StyBlankLineBetweenSiblings:   "blank-line-between-sibling-groups",
	StyBlankLineAfterBindingBlock: "blank-line-after-binding-block",
	StyBindingGrouping:            "binding-grouping",
	StyExplicitEachRedundant:      "explicit-each-redundant",
	StyShouldPrefixInExample:      "should-prefix-in-example",
	StyOneExpectationPerExample:   "one-expectation-per-example",
	StyContextMissingNegativeCase: "context-missing-negative-case",
	StyContextDescriptionPrefix:   "context-description-prefix",
	StyExampleConditionalSuffix:   "example-description-conditional-suffix",
	StyExampleDescriptionLength:   "example-description-length",
	StyIteratorGeneratedExamples:  "iterator-generated-examples",
	StySubjectNotLeading:          "subject-not-leading",
	StyMethodDescriptionPrefix:    "method-description-prefix",
}

var ruleByName = func() map[string]Code {
	m := make(map[string]Code, len(ruleNames))
	for code, name := range ruleNames {
		m[name] = code
	}
	return m
}()

// RuleByName resolves a kebab-case rule identifier to its code.
func RuleByName(name string) (Code, bool) {
	c, ok := ruleByName[name]
	return c, ok
}

// RuleCodes returns all style rule codes in ascending order.
func RuleCodes() []Code {
	out := make([]Code, 0, len(ruleNames))
	for c := StyInfo + 1; c <= StyMethodDescriptionPrefix; c++ {
		if _, ok := ruleNames[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("STY%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("INT%04d", ic)
	}
	return "E0000"
}

// Name returns the kebab-case rule identifier for style codes and the
// numeric ID for everything else. This is what appears in [...] in output.
func (c Code) Name() string {
	if name, ok := ruleNames[c]; ok {
		return name
	}
	return c.ID()
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
