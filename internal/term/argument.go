// Package term implements the leaf-level SPARQL vocabulary: term atoms
// (variables and constants) and the recursive filter-expression trees built
// over them.
package term

import "strings"

// Argument is a single SPARQL term atom: either a variable (name starts with
// ? or $) or a constant (an IRI <...>, a literal "...", a blank node _:..., or
// a bare symbol). Argument is a plain comparable struct: == and map keys
// compare every field, including Datatype, Lang, Desc, IsURI and Dtype. No
// comparison by (Name, Constant) alone is provided.
type Argument struct {
	Name     string
	Constant bool

	Datatype string
	Lang     string

	// Desc doubles as the ORDER BY DESC marker (non-empty means "this
	// variable was mentioned in ORDER BY ... DESC") and, on the right
	// operand of a REGEX expression, as the regex flags string. The two
	// uses never overlap in practice: only REGEX reads it as flags text.
	Desc string

	IsURI bool
	Dtype string
}

// NewVariable builds a variable Argument, validating the leading sigil per
// the §3 invariant (constant=false implies Name starts with ? or $).
func NewVariable(name string) (Argument, error) {
	if !strings.HasPrefix(name, "?") && !strings.HasPrefix(name, "$") {
		return Argument{}, malformedVariable(name)
	}
	return Argument{Name: name, Constant: false}, nil
}

// NewConstant builds a constant Argument (IRI, literal, blank node, or bare
// symbol lexical form) with no datatype or language tag; callers set
// Datatype/Lang on the returned value when needed.
func NewConstant(name string) Argument {
	return Argument{Name: name, Constant: true}
}

// String renders the argument's lexical form, with datatype taking priority
// over language tag when both happen to be set — mirrors
// pysparql.Argument.__str__.
func (a Argument) String() string {
	s := a.Name
	switch {
	case a.Datatype != "":
		s += "^^" + a.Datatype
	case a.Lang != "":
		s += "@" + a.Lang
	}
	return s
}

// GetVars returns the argument's own name if it is a variable, else nil.
func (a Argument) GetVars() []string {
	if a.Constant {
		return nil
	}
	return []string{a.Name}
}

// GetConsts returns the argument's lexical form (with datatype/lang suffix)
// if it is a constant, else nil.
func (a Argument) GetConsts() []string {
	if !a.Constant {
		return nil
	}
	n := a.Name
	switch {
	case a.Datatype != "":
		n += "^^" + a.Datatype
	case a.Lang != "":
		n += "@" + a.Lang
	}
	return []string{n}
}

// Places is always 1 for a single Argument.
func (a Argument) Places() int { return 1 }

// ConstantNumber is 1 if the argument is constant, else 0.
func (a Argument) ConstantNumber() int {
	if a.Constant {
		return 1
	}
	return 0
}

// ConstantPercentage is ConstantNumber()/Places(), defined as 0 when
// Places()==0 (never happens for a bare Argument, but kept for symmetry with
// the rest of the AST's statistics methods).
func (a Argument) ConstantPercentage() float64 {
	if a.Places() == 0 {
		return 0
	}
	return float64(a.ConstantNumber()) / float64(a.Places())
}

// Instantiate replaces the argument with a constant built from bindings if it
// is a variable whose stripped name (leading ?/$ removed) is a key in
// bindings; otherwise returns the argument unchanged. Never mutates a.
func (a Argument) Instantiate(bindings map[string]string) Argument {
	if a.Constant {
		return a
	}
	stripped := strings.TrimLeft(a.Name, "?$")
	if v, ok := bindings[stripped]; ok {
		return NewConstant(v)
	}
	return a
}
