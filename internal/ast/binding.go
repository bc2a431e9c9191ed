package ast

// BindingKind is the flavour of a value declaration.
type BindingKind uint8

const (
	BindingLet BindingKind = iota
	BindingLetBang
	BindingSubject
	BindingSubjectBang
)

func (k BindingKind) String() string {
	switch k {
	case BindingLet:
		return "let"
	case BindingLetBang:
		return "let!"
	case BindingSubject:
		return "subject"
	case BindingSubjectBang:
		return "subject!"
	}
	return "binding"
}

// BindingNode represents a let/let!/subject/subject! declaration.
type BindingNode struct {
	base
	BindingKind BindingKind
	// Name is the symbol argument; empty for an anonymous subject.
	Name string
	// Eager is true for the bang forms, which evaluate before each example.
	Eager bool
}

func (b *BindingNode) Kind() NodeKind   { return NodeBinding }
func (b *BindingNode) Children() []Node { return nil }

// IsSubject reports whether the binding declares the subject.
func (b *BindingNode) IsSubject() bool {
	return b.BindingKind == BindingSubject || b.BindingKind == BindingSubjectBang
}
