// Package algebra implements the SPARQL algebra AST: Triple, Filter,
// JoinBlock, UnionBlock, Optional, Service, and Query, with the static
// analyses (variable/constant extraction, selectivity statistics,
// instantiation, filter propagation, serialization, and the service/triple
// ordering heuristic) spec.md §4.1 requires uniformly across every node
// type.
//
// Every concrete node type is a tagged variant satisfying Node — the shape
// DESIGN NOTES recommends in place of virtual inheritance — dispatched by a
// Go type switch wherever a parent node needs to recurse into a
// heterogeneous child (e.g. JoinBlock.Elements mixes Triple, Service,
// Optional, and nested JoinBlock/UnionBlock values).
package algebra

import "strings"

var (
	_ Node = (*Triple)(nil)
	_ Node = (*Filter)(nil)
	_ Node = (*JoinBlock)(nil)
	_ Node = (*UnionBlock)(nil)
	_ Node = (*Optional)(nil)
	_ Node = (*Service)(nil)
)

// Node is the operation surface every algebra AST node implements.
type Node interface {
	GetVars() []string
	GetConsts() []string
	GetPredVars() []string
	Places() int
	ConstantNumber() int
	ConstantPercentage() float64
	ConstSubjects() int
	ConstObjects() int
	ConstPredicates() int
	AllTriplesGeneral() bool
	AllTriplesLowSelectivity() bool
	SetGeneral(prefixes map[string]string, generalPreds []string)
	Instantiate(bindings map[string]string) Node
	InstantiateFilter(bindings map[string]string, filterStr string) Node
	Show(indent string) string
}

// constantPercentage is the shared 0-guarded division used by every node's
// ConstantPercentage method, per spec.md §7(d): stats on an empty body
// return 0, never divide-by-zero.
func constantPercentage(constants, places int) float64 {
	if places == 0 {
		return 0
	}
	return float64(constants) / float64(places)
}

// defaultPrefixes are always merged into the caller-supplied prefix map by
// GetURI, matching pysparql.SPARQL.getUri.
var defaultPrefixes = map[string]string{
	"rdfs": "<http://www.w3.org/2000/01/rdf-schema#>",
	"owl":  "<http://www.w3.org/2002/07/owl#>",
	"rdf":  "<http://www.w3.org/1999/02/22-rdf-syntax-ns#>",
}

// GetURI expands a prefixed name ("prefix:suffix") to a full <IRI> using
// prefixes, always augmented with rdfs/owl/rdf. Literals (containing a quote)
// and already-bracketed IRIs pass through unchanged; if the argument carries
// a datatype or language tag, that suffix is appended instead of prefix
// expansion. Grounded on pysparql.SPARQL.getUri.
func GetURI(name, datatype, lang string, prefixes map[string]string) string {
	merged := make(map[string]string, len(prefixes)+len(defaultPrefixes))
	for k, v := range prefixes {
		merged[k] = v
	}
	for k, v := range defaultPrefixes {
		merged[k] = v
	}

	if datatype != "" || lang != "" {
		s := name
		if datatype != "" {
			s += "^^" + datatype
		}
		if lang != "" {
			s += "@" + lang
		}
		return s
	}

	if strings.Contains(name, "\"") || strings.Contains(name, "'") {
		return name
	}

	if pre, suf, ok := splitPrefix(name); ok {
		base, known := merged[pre]
		if known {
			return strings.TrimSuffix(base, ">") + suf + ">"
		}
	}

	return name
}

// splitPrefix detects a "prefix:suffix" form by the first ":" appearing
// before any "<", matching pysparql.SPARQL.prefix.
func splitPrefix(name string) (prefix, suffix string, ok bool) {
	if strings.HasPrefix(name, "<") {
		return "", "", false
	}
	idx := strings.Index(name, ":")
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(name[:idx]), strings.TrimSpace(name[idx+1:]), true
}

// nestNode is the pairwise-folded tree nest() builds over a flat element
// list, used to render nested UNION/join groups. A leaf wraps a single Node;
// an internal node wraps a (Left, Right) pair, mirroring the tuple values
// pysparql.SPARQL.nest produces.
type nestNode struct {
	leaf        Node
	left, right *nestNode
}

// nest repeatedly folds a list pairwise — popping the last two and grouping
// them — until one element remains, yielding a right-leaning tree. Grounded
// on pysparql.SPARQL.nest.
func nest(items []Node) *nestNode {
	if len(items) == 0 {
		return nil
	}
	cur := make([]*nestNode, len(items))
	for i, it := range items {
		cur[i] = &nestNode{leaf: it}
	}
	for len(cur) > 1 {
		var next []*nestNode
		for len(cur) > 1 {
			x := cur[len(cur)-1]
			cur = cur[:len(cur)-1]
			y := cur[len(cur)-1]
			cur = cur[:len(cur)-1]
			next = append(next, &nestNode{left: x, right: y})
		}
		if len(cur) == 1 {
			next = append(next, cur[0])
		}
		cur = next
	}
	return cur[0]
}

// auxShow serializes a nest()-folded tree, wrapping each side in braces and
// joining with op ("UNION" or "."). Grounded on pysparql.SPARQL.aux.
func auxShow(n *nestNode, indent, op string) string {
	if n == nil {
		return ""
	}
	if n.leaf != nil {
		return n.leaf.Show(indent + "  ")
	}
	var b strings.Builder
	if n.left != nil {
		b.WriteString(indent + "{\n" + auxShow(n.left, indent+"  ", op) + "\n" + indent + "}\n")
	}
	if n.left != nil && n.right != nil {
		b.WriteString(indent + op + "\n")
	}
	if n.right != nil {
		b.WriteString(indent + "{\n" + auxShow(n.right, indent+"  ", op) + "\n" + indent + "}")
	}
	return b.String()
}

// Nest is the exported form of nest()+auxShow, for callers (e.g. a planner)
// that want to render an arbitrary element list as a nested UNION group
// without constructing a full UnionBlock.
func Nest(items []Node, op string) string {
	return auxShow(nest(items), "", op)
}
