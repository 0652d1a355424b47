// Package rml translates an RML/R2RML term map paired with a bound SPARQL
// term into the SQL fragments (term expression, filter conditions,
// projection) a relational source needs to answer the corresponding triple
// pattern. Grounded on awudima/sql/rml2sql/term_map.py::TermMap2SQL.
package rml

// TripleMapType classifies how a TermMap generates its RDF term.
type TripleMapType int

const (
	Constant TripleMapType = iota
	Reference
	Template
)

// TermType classifies the kind of RDF term a TermMap generates.
type TermType int

const (
	IRI TermType = iota
	Literal
	BNode
)

// TermMap is an RML term map: a constant value, a column reference, or a
// template string, tagged with the RDF term kind it generates.
type TermMap struct {
	Value        string
	ResourceType TripleMapType
	Type         TermType

	// TableAlias/Schema optionally qualify every column this term map
	// references.
	TableAlias string
	Schema     string
}

// NewTermMap builds a TermMap.
func NewTermMap(value string, resourceType TripleMapType, termType TermType) TermMap {
	return TermMap{Value: value, ResourceType: resourceType, Type: termType}
}

// Columns returns every distinct column name this term map references: the
// single REFERENCE column, or every {placeholder} column in a TEMPLATE,
// or none for CONSTANT.
func (tm TermMap) Columns() ([]string, error) {
	switch tm.ResourceType {
	case Reference:
		return []string{tm.Value}, nil
	case Template:
		segs, err := splitTemplate(tm.Value)
		if err != nil {
			return nil, err
		}
		var cols []string
		for _, s := range segs {
			if s.HasColumn {
				cols = append(cols, s.Column)
			}
		}
		return cols, nil
	default:
		return nil, nil
	}
}
