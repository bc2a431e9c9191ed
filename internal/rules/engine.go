package rules

import (
	"fmt"

	"speclint/internal/ast"
	"speclint/internal/diag"
	"speclint/internal/source"
)

// Engine применяет набор правил к дереву одного файла.
// Порядок правил фиксирован (по возрастанию кода), поэтому для одинакового
// входа последовательность диагностик детерминирована.
type Engine struct {
	cfg   Config
	rules []Rule
}

// NewEngine constructs an engine with every built-in rule registered.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg: cfg,
		rules: []Rule{
			&blankLineAfterGroupOpen{},
			&blankLineBetweenSiblings{},
			&blankLineAfterBindingBlock{},
			&bindingGrouping{},
			&explicitEachRedundant{},
			&shouldPrefixInExample{},
			&oneExpectationPerExample{},
			&contextMissingNegativeCase{},
			&contextDescriptionPrefix{},
			&exampleConditionalSuffix{},
			&exampleDescriptionLength{},
			&iteratorGeneratedExamples{},
			&subjectNotLeading{},
			&methodDescriptionPrefix{},
		},
	}
}

// Rules returns the registered rules in evaluation order.
func (e *Engine) Rules() []Rule {
	return e.rules
}

// Run прогоняет все включённые правила по дереву. enabled == nil означает
// "все правила". Паника внутри правила не выходит за границу движка:
// она превращается во внутреннюю диагностику, и анализ продолжается.
func (e *Engine) Run(file *ast.SpecFile, src *source.File, enabled map[diag.Code]bool, rep diag.Reporter) {
	ctx := &Context{
		File:     file,
		Source:   src,
		Config:   e.cfg,
		Reporter: rep,
	}
	for _, rule := range e.rules {
		if enabled != nil && !enabled[rule.Code()] {
			continue
		}
		e.runOne(rule, ctx)
	}
}

func (e *Engine) runOne(rule Rule, ctx *Context) {
	defer func() {
		if r := recover(); r != nil {
			span := source.Span{File: ctx.Source.ID}
			diag.ReportError(ctx.Reporter, diag.IntRuleFailure, span,
				fmt.Sprintf("rule %s failed: %v", rule.Name(), r)).Emit()
		}
	}()
	rule.Check(ctx)
}
