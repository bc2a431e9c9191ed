package ast

import (
	"speclint/internal/source"
)

// HookKind is the flavour of a hook call.
type HookKind uint8

const (
	HookBefore HookKind = iota
	HookAfter
	HookAround
)

func (k HookKind) String() string {
	switch k {
	case HookBefore:
		return "before"
	case HookAfter:
		return "after"
	case HookAround:
		return "around"
	}
	return "hook"
}

// HookScope is the scope qualifier of a hook.
type HookScope uint8

const (
	// ScopeDefault means no qualifier was written; semantically :each.
	ScopeDefault HookScope = iota
	ScopeEach
	ScopeAll
	ScopeSuite
)

func (s HookScope) String() string {
	switch s {
	case ScopeEach:
		return ":each"
	case ScopeAll:
		return ":all"
	case ScopeSuite:
		return ":suite"
	}
	return ""
}

// HookNode represents a before/after/around block.
type HookNode struct {
	base
	HookKind HookKind
	Scope    HookScope
	// ExplicitScope is true when the qualifier was spelled out; with
	// ScopeEach that spelling is redundant.
	ExplicitScope bool
	// ScopeSpan covers the qualifier argument including parentheses, for
	// fix suggestions.
	ScopeSpan source.Span
}

func (h *HookNode) Kind() NodeKind   { return NodeHook }
func (h *HookNode) Children() []Node { return nil }
