package algebra

import (
	"strings"

	"github.com/awudima/fedcore/internal/term"
)

// QueryType distinguishes the three SPARQL query forms this AST can
// represent and serialize.
type QueryType int

const (
	Select QueryType = iota
	Construct
	Ask
)

// Query is the root of a parsed/planned SPARQL query: its projection args,
// its body (normally a *UnionBlock wrapping one or more *JoinBlock
// branches), and the modifiers (DISTINCT, ORDER BY, LIMIT, OFFSET).
// Grounded on pysparql.Query.
type Query struct {
	Prefs []string // each entry "prefix:<IRI>", matching pysparql's raw prefs list
	Args  []term.Argument
	Body  Node

	Distinct bool
	OrderBy  []term.Argument
	Limit    int
	Offset   int

	Type QueryType

	// FilterNested is appended text rendered verbatim into the outermost
	// WHERE clause — the query-level counterpart of Service.FilterNested.
	FilterNested string

	// JoinVars is the set of variables that appear in at least two
	// distinct positions across Body's triples — derived once at
	// construction time, matching pysparql.Query.join_vars.
	JoinVars map[string]struct{}
}

// NewQuery builds a Query, deriving JoinVars and forcing Limit to 1 when
// qtype is Ask (an ASK query only ever needs one matching solution),
// matching pysparql.Query.__init__.
func NewQuery(prefs []string, args []term.Argument, body Node, distinct bool, orderBy []term.Argument, limit, offset int, qtype QueryType, generalPreds []string) *Query {
	q := &Query{
		Prefs:    prefs,
		Args:     args,
		Body:     body,
		Distinct: distinct,
		OrderBy:  orderBy,
		Limit:    limit,
		Offset:   offset,
		Type:     qtype,
	}
	if qtype == Ask {
		q.Limit = 1
	}
	q.JoinVars = q.computeJoinVars()
	if body != nil {
		body.SetGeneral(GetPrefs(prefs), generalPreds)
	}
	return q
}

// GetPrefs parses a flat "prefix:<IRI>" list into a prefix-to-IRI map,
// matching pysparql.SPARQL.getPrefs.
func GetPrefs(prefs []string) map[string]string {
	out := make(map[string]string, len(prefs))
	for _, p := range prefs {
		idx := strings.Index(p, ":")
		if idx < 0 {
			continue
		}
		out[strings.TrimSpace(p[:idx])] = strings.TrimSpace(p[idx+1:])
	}
	return out
}

// Instantiate returns a fresh Query with Body instantiated against bindings;
// every other field is carried over. Never mutates q — unlike the source
// this is grounded on, which reassigns self.body and returns self.
func (q *Query) Instantiate(bindings map[string]string) *Query {
	next := *q
	next.Body = q.Body.Instantiate(bindings)
	return &next
}

// InstantiateFilter returns a fresh Query like Instantiate, with filterStr
// appended to FilterNested (space-separated), matching pysparql.Query.instantiateFilter's
// string concatenation (but without mutating q).
func (q *Query) InstantiateFilter(bindings map[string]string, filterStr string) *Query {
	next := *q
	next.Body = q.Body.Instantiate(bindings)
	next.FilterNested = q.FilterNested + " " + filterStr
	return &next
}

func (q *Query) Places() int            { return q.Body.Places() }
func (q *Query) ConstantNumber() int    { return q.Body.ConstantNumber() }
func (q *Query) ConstantPercentage() float64 {
	return constantPercentage(q.ConstantNumber(), q.Places())
}
func (q *Query) GetVars() []string { return q.Body.GetVars() }

// GetFilterVars returns the set of variable names mentioned in any FILTER
// clause reachable from Body.
func (q *Query) GetFilterVars() map[string]struct{} {
	vars := collectFilterVars(q.Body)
	out := make(map[string]struct{}, len(vars))
	for _, v := range vars {
		out[v] = struct{}{}
	}
	return out
}

func collectFilterVars(n Node) []string {
	var vars []string
	switch b := n.(type) {
	case *UnionBlock:
		for _, f := range b.Filters {
			vars = append(vars, f.GetVars()...)
		}
		for _, e := range b.Elements {
			vars = append(vars, collectFilterVars(e)...)
		}
	case *JoinBlock:
		for _, f := range b.Filters {
			vars = append(vars, f.GetVars()...)
		}
		for _, e := range b.Elements {
			switch e.(type) {
			case *Service, *Optional, *UnionBlock, *JoinBlock:
				vars = append(vars, collectFilterVars(e)...)
			}
		}
	case *Service:
		for _, f := range b.Filters {
			vars = append(vars, f.GetVars()...)
		}
		for _, t := range b.Triples {
			vars = append(vars, collectFilterVars(t)...)
		}
	case *Optional:
		vars = append(vars, collectFilterVars(b.Bgg)...)
	}
	return vars
}

// computeJoinVars walks Body collecting every variable appearing in a
// subject or object position, then keeps only those appearing more than
// once — the candidates a physical join operator must probe on. Grounded on
// pysparql.Query.getJoinVars / SPARQL.getJoinVarsUnionBlock /
// SPARQL.getJoinVarsJoinBlock. (getJoinVars2 in the source this is grounded
// on is unreachable dead code — it iterates self.body as if it were a flat
// Service list, which no constructor ever produces — and is intentionally
// not ported.)
func (q *Query) computeJoinVars() map[string]struct{} {
	counts := map[string]int{}
	for _, v := range collectJoinVarCandidates(q.Body) {
		counts[v]++
	}
	out := map[string]struct{}{}
	for v, c := range counts {
		if c > 1 {
			out[v] = struct{}{}
		}
	}
	return out
}

func collectJoinVarCandidates(n Node) []string {
	var vars []string
	switch b := n.(type) {
	case *Triple:
		if !b.Subject.Constant {
			vars = append(vars, b.Subject.Name)
		}
		if !b.Object.Constant {
			vars = append(vars, b.Object.Name)
		}
	case *Service:
		for _, t := range b.Triples {
			vars = append(vars, collectJoinVarCandidates(t)...)
		}
	case *Optional:
		vars = append(vars, collectJoinVarCandidates(b.Bgg)...)
	case *UnionBlock:
		for _, e := range b.Elements {
			vars = append(vars, collectJoinVarCandidates(e)...)
		}
	case *JoinBlock:
		for _, e := range b.Elements {
			vars = append(vars, collectJoinVarCandidates(e)...)
		}
	}
	return vars
}

// Show serializes the query back to SPARQL text: prefix declarations, the
// SELECT/CONSTRUCT/ASK head, and the WHERE-wrapped body.
func (q *Query) Show() string {
	bodyStr := q.Body.Show(" ")
	return q.render(bodyStr)
}

func (q *Query) render(bodyStr string) string {
	switch q.Type {
	case Construct:
		var args []string
		for _, a := range q.Args {
			args = append(args, a.String())
		}
		return q.prefixDecls() + "CONSTRUCT {" + strings.Join(args, "\n") +
			"\n}\nWHERE {" + bodyStr + "\n" + q.FilterNested + "\n}"
	case Ask:
		return q.prefixDecls() + "ASK  WHERE {" + bodyStr + "\n" + q.FilterNested + "\n}"
	default:
		d := ""
		if q.Distinct {
			d = "DISTINCT "
		}
		argsStr := "*"
		if len(q.Args) > 0 {
			var parts []string
			for _, a := range q.Args {
				parts = append(parts, a.String())
			}
			argsStr = strings.Join(parts, " ")
		}
		argsStr += "\n"
		return q.prefixDecls() + "SELECT " + d + argsStr + " WHERE {" + bodyStr + "\n" + q.FilterNested + "\n}"
	}
}

// prefixDecls renders every "prefix:<IRI>" entry in Prefs as a "prefix p:
// <IRI>" declaration line.
func (q *Query) prefixDecls() string {
	var b strings.Builder
	for _, e := range q.Prefs {
		idx := strings.Index(e, ":")
		if idx < 0 {
			continue
		}
		b.WriteString("\nprefix " + e[:idx] + ": " + e[idx+1:])
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	return b.String()
}
