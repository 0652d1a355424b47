// Package fedcore is the root facade over the federated SPARQL query engine
// core: the algebra AST (internal/algebra, internal/term), the streaming
// physical operators (internal/operator, internal/stream), and the RML
// term-map-to-SQL translator (internal/rml). Grounded on pgraph.go's
// type-alias-plus-thin-wrapper facade shape.
package fedcore

import (
	"context"

	"github.com/awudima/fedcore/internal/algebra"
	"github.com/awudima/fedcore/internal/operator"
	"github.com/awudima/fedcore/internal/rml"
	"github.com/awudima/fedcore/internal/stream"
	"github.com/awudima/fedcore/internal/term"
)

type (
	Node       = algebra.Node
	Query      = algebra.Query
	QueryType  = algebra.QueryType
	Triple     = algebra.Triple
	Filter     = algebra.Filter
	JoinBlock  = algebra.JoinBlock
	UnionBlock = algebra.UnionBlock
	Optional   = algebra.Optional
	Service    = algebra.Service

	Argument   = term.Argument
	Expression = term.Expression

	Tuple       = stream.Tuple
	TupleStream = stream.TupleStream
	Record      = stream.Record

	RemoteSource             = operator.RemoteSource
	ProjectConfig             = operator.ProjectConfig
	NestedLoopOptionalConfig  = operator.NestedLoopOptionalConfig

	TermMap       = rml.TermMap
	TripleMapType = rml.TripleMapType
	TermType      = rml.TermType
	TranslateResult = rml.Result
)

const (
	Select    = algebra.Select
	Construct = algebra.Construct
	Ask       = algebra.Ask
)

const (
	Constant  = rml.Constant
	Reference = rml.Reference
	Template  = rml.Template
)

const (
	IRI     = rml.IRI
	Literal = rml.Literal
	BNode   = rml.BNode
)

// NewQuery builds a Query AST root. See algebra.NewQuery.
func NewQuery(prefs []string, args []term.Argument, body Node, distinct bool, orderBy []term.Argument, limit, offset int, qtype QueryType, generalPreds []string) *Query {
	return algebra.NewQuery(prefs, args, body, distinct, orderBy, limit, offset, qtype, generalPreds)
}

// NewTriple builds a Triple pattern. See algebra.NewTriple.
func NewTriple(s, p, o term.Argument) *Triple {
	return algebra.NewTriple(s, p, o)
}

// NewService builds a Service block. See algebra.NewService.
func NewService(endpoint string, triples []Node, datasource string, rdfmts []string, stars map[string][]Node, filters []*Filter, starFilters map[string][]*Filter) *Service {
	return algebra.NewService(endpoint, triples, datasource, rdfmts, stars, filters, starFilters)
}

// RunProject executes a Project operator over in, writing to out.
func RunProject(ctx context.Context, cfg ProjectConfig, in, out *TupleStream) error {
	return operator.NewProject(cfg).Run(ctx, in, nil, out)
}

// RunNestedLoopOptional executes a NestedLoopOptional operator over qLeft,
// writing results to out.
func RunNestedLoopOptional(ctx context.Context, cfg NestedLoopOptionalConfig, qLeft, out *TupleStream) error {
	return operator.NewNestedLoopOptional(cfg).Run(ctx, qLeft, nil, out)
}

// TranslateTermMap translates an RML term map against a bound SPARQL
// argument. See rml.Translate.
func TranslateTermMap(tm TermMap, rdfTerm term.Argument, comparisonOp string) (TranslateResult, error) {
	return rml.Translate(tm, rdfTerm, comparisonOp)
}
