package algebra

import "github.com/awudima/fedcore/internal/term"

// Filter wraps a term.Expression as a standalone algebra node (a SPARQL
// FILTER clause), per pysparql.Filter. ConstantNumber/ConstantPercentage are
// fixed at 1/0.5 rather than delegated to the wrapped expression — preserved
// verbatim from the source this is grounded on, which comments out the
// delegating version.
type Filter struct {
	Expr *term.Expression
}

// NewFilter wraps expr as a Filter node.
func NewFilter(expr *term.Expression) *Filter {
	return &Filter{Expr: expr}
}

func (f *Filter) GetVars() []string  { return f.Expr.GetVars() }
func (f *Filter) GetConsts() []string { return f.Expr.GetConsts() }
func (f *Filter) GetPredVars() []string { return nil }
func (f *Filter) Places() int { return f.Expr.Places() }

// ConstantNumber is fixed at 1, not delegated to Expr.ConstantNumber — see
// the type doc comment.
func (f *Filter) ConstantNumber() int { return 1 }

// ConstantPercentage is fixed at 0.5, not delegated to Expr — see the type
// doc comment.
func (f *Filter) ConstantPercentage() float64 { return 0.5 }

func (f *Filter) ConstSubjects() int   { return 0 }
func (f *Filter) ConstObjects() int    { return 0 }
func (f *Filter) ConstPredicates() int { return 0 }

func (f *Filter) AllTriplesGeneral() bool       { return false }
func (f *Filter) AllTriplesLowSelectivity() bool { return true }

func (f *Filter) SetGeneral(prefixes map[string]string, generalPreds []string) {}

func (f *Filter) Instantiate(bindings map[string]string) Node {
	return &Filter{Expr: f.Expr.Instantiate(bindings)}
}

func (f *Filter) InstantiateFilter(bindings map[string]string, filterStr string) Node {
	return &Filter{Expr: f.Expr.InstantiateFilter(bindings, filterStr)}
}

// Show renders "indent FILTER (expr)", with REGEX rendered via its dedicated
// lowercase form when no flags are present, matching pysparql.Filter.show.
func (f *Filter) Show(indent string) string {
	if f.Expr != nil && f.Expr.Op == "REGEX" {
		if f.Expr.Right != nil && f.Expr.Right.Arg.Desc != "" {
			return "\nFILTER REGEX(" + f.Expr.Left.String() + "," + f.Expr.Right.Arg.Name + "," + f.Expr.Right.Arg.Desc + ")"
		}
		return "\n" + indent + "FILTER regex(" + f.Expr.Left.String() + "," + f.Expr.Right.String() + ")"
	}
	return "\n" + indent + "FILTER (" + f.Expr.String() + ")"
}
