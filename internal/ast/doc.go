// Package ast defines the structural tree of a spec file: groups, examples,
// bindings, hooks, and unclassified blocks. The tree is built once per file
// by the parser and read (never mutated) by the rule engine.
package ast
