package ast

import (
	"speclint/internal/source"
)

// GroupKind is the flavour of a group call.
type GroupKind uint8

const (
	GroupDescribe GroupKind = iota
	GroupContext
	GroupFeature
)

func (k GroupKind) String() string {
	switch k {
	case GroupDescribe:
		return "describe"
	case GroupContext:
		return "context"
	case GroupFeature:
		return "feature"
	}
	return "group"
}

// GroupNode represents a describe/context/feature block.
type GroupNode struct {
	base
	GroupKind GroupKind
	// Description is the first string argument; empty when the argument is a
	// constant or expression (describe Article).
	Description     string
	DescriptionSpan source.Span
	// ConstDescription holds the constant name for describe Article forms.
	ConstDescription string
	// Depth is the nesting depth; top-level groups have depth 0.
	Depth int
	// OpenLine is the line of the group's opening (the do/{ line).
	OpenLine uint32
	// AggregateFailures is set by an :aggregate_failures tag or
	// aggregate_failures: true metadata on the call.
	AggregateFailures bool
	// RSpecReceiver marks the RSpec.describe form.
	RSpecReceiver bool

	Nodes []Node
}

func (g *GroupNode) Kind() NodeKind   { return NodeGroup }
func (g *GroupNode) Children() []Node { return g.Nodes }

// DescriptionText returns the quoted description when present, otherwise the
// constant argument name.
func (g *GroupNode) DescriptionText() string {
	if g.Description != "" {
		return g.Description
	}
	return g.ConstDescription
}
