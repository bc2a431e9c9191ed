package ast

import (
	"speclint/internal/source"
)

// ExampleKind is the flavour of an example call.
type ExampleKind uint8

const (
	ExampleIt ExampleKind = iota
	ExampleSpecify
	ExampleExample
	ExampleScenario
)

func (k ExampleKind) String() string {
	switch k {
	case ExampleIt:
		return "it"
	case ExampleSpecify:
		return "specify"
	case ExampleExample:
		return "example"
	case ExampleScenario:
		return "scenario"
	}
	return "example"
}

// ExampleNode represents a single test case.
type ExampleNode struct {
	base
	ExampleKind ExampleKind
	// Description may be absent for one-liners: it { is_expected.to be_valid }.
	Description     string
	HasDescription  bool
	DescriptionSpan source.Span
	// Expectations are the spans of expectation statements found in the body
	// (expect(...), is_expected..., legacy .should).
	Expectations []source.Span
	// AggregateFailures is set by an :aggregate_failures tag on the example
	// or on an enclosing group.
	AggregateFailures bool
}

func (e *ExampleNode) Kind() NodeKind   { return NodeExample }
func (e *ExampleNode) Children() []Node { return nil }
