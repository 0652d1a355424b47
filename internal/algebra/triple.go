package algebra

import (
	"strings"

	"github.com/awudima/fedcore/internal/term"
)

// Triple is a single SPARQL triple pattern: subject, predicate, object, each
// a term.Argument. Grounded on pysparql.Triple.
type Triple struct {
	Subject   term.Argument
	Predicate term.Argument
	Object    term.Argument

	// IsGeneral is set by SetGeneral when Predicate resolves (after prefix
	// expansion) to one of the caller-supplied general predicates — a
	// predicate too common (e.g. rdf:type) to be a useful join-selectivity
	// signal.
	IsGeneral bool
}

// NewTriple builds a Triple from its three positions.
func NewTriple(s, p, o term.Argument) *Triple {
	return &Triple{Subject: s, Predicate: p, Object: o}
}

// Less implements the same-subject, const-position-first ordering heuristic
// pysparql.Triple.__lt__ uses to order a JoinBlock's elements: a triple with
// more of its constant-bearing positions "in front" sorts earlier, so a
// planner probes the more selective pattern first.
func (t *Triple) Less(other *Triple) bool {
	if other.Subject.Constant && !t.Subject.Constant {
		return false
	}
	if t.Subject.Constant && !other.Subject.Constant {
		return true
	}
	if other.Predicate.Constant && t.Predicate.Constant && other.Object.Constant && !t.Object.Constant {
		return false
	}
	if other.Predicate.Constant && t.Predicate.Constant && t.Object.Constant && !other.Object.Constant {
		return true
	}
	return t.ConstantPercentage() > other.ConstantPercentage()
}

func (t *Triple) GetVars() []string {
	var vars []string
	if !t.Subject.Constant {
		vars = append(vars, t.Subject.Name)
	}
	if !t.Object.Constant {
		vars = append(vars, t.Object.Name)
	}
	vars = append(vars, t.GetPredVars()...)
	return vars
}

func (t *Triple) GetConsts() []string {
	var consts []string
	if t.Subject.Constant {
		consts = append(consts, t.Subject.Name)
	}
	if t.Object.Constant {
		consts = append(consts, t.Object.Name)
	}
	return consts
}

func (t *Triple) GetPredVars() []string {
	if !t.Predicate.Constant {
		return []string{t.Predicate.Name}
	}
	return nil
}

// Places is always 3: subject, predicate, object.
func (t *Triple) Places() int { return 3 }

func (t *Triple) ConstSubjects() int {
	if t.Subject.Constant {
		return 1
	}
	return 0
}

func (t *Triple) ConstObjects() int {
	if t.Object.Constant {
		return 1
	}
	return 0
}

func (t *Triple) ConstPredicates() int {
	if t.Predicate.Constant {
		return 1
	}
	return 0
}

func (t *Triple) ConstantNumber() int {
	return t.ConstSubjects() + t.ConstPredicates() + t.ConstObjects()
}

func (t *Triple) ConstantPercentage() float64 {
	return constantPercentage(t.ConstantNumber(), t.Places())
}

// AllTriplesGeneral reports whether this triple's predicate was flagged
// general by SetGeneral.
func (t *Triple) AllTriplesGeneral() bool { return t.IsGeneral }

// AllTriplesLowSelectivity reports whether this triple contributes weak join
// selectivity: a variable predicate, or both subject and object variable.
// General predicates are deliberately NOT considered here (the subject-only
// exemption was removed from the source this is grounded on).
func (t *Triple) AllTriplesLowSelectivity() bool {
	return !t.Predicate.Constant || (!t.Subject.Constant && !t.Object.Constant)
}

// SetGeneral resolves Predicate through prefixes and marks IsGeneral if the
// result appears in generalPreds.
func (t *Triple) SetGeneral(prefixes map[string]string, generalPreds []string) {
	resolved := GetURI(t.Predicate.Name, t.Predicate.Datatype, t.Predicate.Lang, prefixes)
	for _, g := range generalPreds {
		if resolved == g {
			t.IsGeneral = true
			return
		}
	}
}

// Instantiate returns a new Triple with every variable position whose
// stripped name is bound in bindings replaced by the bound constant; unbound
// positions are carried over unchanged. Never mutates t.
func (t *Triple) Instantiate(bindings map[string]string) Node {
	return &Triple{
		Subject:   instantiateArg(t.Subject, bindings),
		Predicate: instantiateArg(t.Predicate, bindings),
		Object:    instantiateArg(t.Object, bindings),
		IsGeneral: t.IsGeneral,
	}
}

// InstantiateFilter behaves like Instantiate — a Triple has no nested
// Service to carry a filter string into, so filterStr is accepted only to
// satisfy Node and is otherwise unused.
func (t *Triple) InstantiateFilter(bindings map[string]string, filterStr string) Node {
	return t.Instantiate(bindings)
}

func instantiateArg(a term.Argument, bindings map[string]string) term.Argument {
	if a.Constant {
		return a
	}
	stripped := strings.TrimLeft(a.Name, "?$")
	if v, ok := bindings[stripped]; ok {
		return term.NewConstant(v)
	}
	return a
}

// Show renders the triple as "indent subject predicate object".
func (t *Triple) Show(indent string) string {
	return "\n" + indent + t.Subject.String() + " " + t.Predicate.String() + " " + t.Object.String()
}
