package term

import "fmt"

// Expression is a node in a SPARQL filter-expression tree: a functor or
// infix operator applied to one or two operands. Leaves are represented as
// an Expression whose Op is "", whose Left/Right are nil, and whose Arg holds
// the Argument — see Leaf/Arg below — so that the whole tree is a single
// recursive type, the
// way pysparql.Expression nests Argument values directly as .left/.right.
type Expression struct {
	Op    string
	Left  *Expression
	Right *Expression // nil for unary functors

	// Arg is set only on leaf nodes (Op == ""); Left/Right are nil there.
	Arg Argument
}

// unaryFunctor and binaryFunctor classify Op values exactly as
// pysparql.SPARQL.unaryFunctor / .binaryFunctor do. infixOperator lists the
// remaining two-operand operators that are rendered inline rather than as a
// functor call.
var unaryFunctor = buildSet(
	"!", "BOUND", "bound", "ISIRI", "isiri", "ISURI", "isuri", "ISBLANK", "isblank",
	"ISLITERAL", "isliteral", "STR", "str", "UCASE", "ucase", "LANG", "lang",
	"DATATYPE", "datatype",
	"xsd:double", "xsd:integer", "xsd:decimal", "xsd:float", "xsd:string",
	"xsd:boolean", "xsd:dateTime", "xsd:nonPositiveInteger", "xsd:negativeInteger",
	"xsd:long", "xsd:int", "xsd:short", "xsd:byte", "xsd:nonNegativeInteger",
	"xsd:unsignedInt", "xsd:unsignedShort", "xsd:unsignedByte", "xsd:positiveInteger",
	"<http://www.w3.org/2001/XMLSchema#integer>",
	"<http://www.w3.org/2001/XMLSchema#decimal>",
	"<http://www.w3.org/2001/XMLSchema#double>",
	"<http://www.w3.org/2001/XMLSchema#float>",
	"<http://www.w3.org/2001/XMLSchema#string>",
	"<http://www.w3.org/2001/XMLSchema#boolean>",
	"<http://www.w3.org/2001/XMLSchema#dateTime>",
	"<http://www.w3.org/2001/XMLSchema#nonPositiveInteger>",
	"<http://www.w3.org/2001/XMLSchema#negativeInteger>",
	"<http://www.w3.org/2001/XMLSchema#long>",
	"<http://www.w3.org/2001/XMLSchema#int>",
	"<http://www.w3.org/2001/XMLSchema#short>",
	"<http://www.w3.org/2001/XMLSchema#byte>",
	"<http://www.w3.org/2001/XMLSchema#nonNegativeInteger>",
	"<http://www.w3.org/2001/XMLSchema#unsignedInt>",
	"<http://www.w3.org/2001/XMLSchema#unsignedShort>",
	"<http://www.w3.org/2001/XMLSchema#unsignedByte>",
	"<http://www.w3.org/2001/XMLSchema#positiveInteger>",
)

var binaryFunctor = buildSet(
	"REGEX", "SAMETERM", "LANGMATCHES", "CONTAINS", "langMatches", "regex", "sameTerm",
)

var infixOperator = buildSet(
	"=", "!=", "<", ">", "<=", ">=", "&&", "||", "+", "-", "*", "/",
)

func buildSet(items ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

// IsUnaryFunctor reports whether op is one of the recognized unary functors
// (including every XSD cast, in both qname and full-IRI form).
func IsUnaryFunctor(op string) bool {
	_, ok := unaryFunctor[op]
	return ok
}

// IsBinaryFunctor reports whether op is one of REGEX/sameTerm/langMatches/CONTAINS.
func IsBinaryFunctor(op string) bool {
	_, ok := binaryFunctor[op]
	return ok
}

// IsInfixOperator reports whether op is one of the comparison/boolean/arithmetic infix operators.
func IsInfixOperator(op string) bool {
	_, ok := infixOperator[op]
	return ok
}

// Leaf builds an Expression wrapping a single Argument — the base case of
// the recursive tree.
func Leaf(a Argument) *Expression {
	return &Expression{Arg: a}
}

// Unary builds a unary-functor Expression.
func Unary(op string, left *Expression) *Expression {
	return &Expression{Op: op, Left: left}
}

// Binary builds a binary-functor or infix-operator Expression.
func Binary(op string, left, right *Expression) *Expression {
	return &Expression{Op: op, Left: left, Right: right}
}

// isLeaf reports whether e wraps a bare Argument rather than an operator
// application.
func (e *Expression) isLeaf() bool {
	return e.Op == "" && e.Left == nil && e.Right == nil
}

// GetVars recursively enumerates free variable names, possibly with
// duplicates, mirroring pysparql.Expression.getVars.
func (e *Expression) GetVars() []string {
	if e == nil {
		return nil
	}
	if e.isLeaf() {
		return e.Arg.GetVars()
	}
	if IsUnaryFunctor(e.Op) || IsBinaryFunctor(e.Op) || e.Right == nil {
		return e.Left.GetVars()
	}
	return append(e.Left.GetVars(), e.Right.GetVars()...)
}

// GetConsts recursively enumerates constant lexical forms.
func (e *Expression) GetConsts() []string {
	if e == nil {
		return nil
	}
	if e.isLeaf() {
		return e.Arg.GetConsts()
	}
	switch {
	case IsUnaryFunctor(e.Op) || e.Right == nil:
		return e.Left.GetConsts()
	case IsBinaryFunctor(e.Op):
		return e.Right.GetConsts()
	default:
		return append(e.Left.GetConsts(), e.Right.GetConsts()...)
	}
}

// Places counts operand slots: unary functors (and no-flags REGEX) count
// only the left operand.
func (e *Expression) Places() int {
	if e == nil {
		return 0
	}
	if e.isLeaf() {
		return e.Arg.Places()
	}
	if IsUnaryFunctor(e.Op) || (e.Op == "REGEX" && (e.Right == nil || e.Right.Arg.Desc == "")) {
		return e.Left.Places()
	}
	return e.Left.Places() + e.Right.Places()
}

// ConstantNumber mirrors Places' left/right split.
func (e *Expression) ConstantNumber() int {
	if e == nil {
		return 0
	}
	if e.isLeaf() {
		return e.Arg.ConstantNumber()
	}
	if IsUnaryFunctor(e.Op) || (e.Op == "REGEX" && (e.Right == nil || e.Right.Arg.Desc == "")) {
		return e.Left.ConstantNumber()
	}
	return e.Left.ConstantNumber() + e.Right.ConstantNumber()
}

// ConstantPercentage is ConstantNumber()/Places(), 0 if Places()==0.
func (e *Expression) ConstantPercentage() float64 {
	places := e.Places()
	if places == 0 {
		return 0
	}
	return float64(e.ConstantNumber()) / float64(places)
}

// Instantiate returns a fresh tree with every variable mentioned in bindings
// replaced by a constant. Never mutates e.
func (e *Expression) Instantiate(bindings map[string]string) *Expression {
	if e == nil {
		return nil
	}
	if e.isLeaf() {
		return Leaf(e.Arg.Instantiate(bindings))
	}
	return &Expression{
		Op:    e.Op,
		Left:  e.Left.Instantiate(bindings),
		Right: e.Right.Instantiate(bindings),
	}
}

// InstantiateFilter behaves like Instantiate: an Expression tree has no
// nested Service to carry filterStr into, so it is accepted only so callers
// composing Filter.InstantiateFilter have a uniform signature to call.
func (e *Expression) InstantiateFilter(bindings map[string]string, filterStr string) *Expression {
	return e.Instantiate(bindings)
}

// String renders the expression back to SPARQL filter-expression text.
func (e *Expression) String() string {
	if e == nil {
		return ""
	}
	if e.isLeaf() {
		return e.Arg.String()
	}
	switch {
	case IsUnaryFunctor(e.Op):
		return fmt.Sprintf("%s(%s)", e.Op, e.Left)
	case IsBinaryFunctor(e.Op):
		if e.Op == "REGEX" && e.Right != nil && e.Right.Arg.Desc != "" {
			return fmt.Sprintf("%s(%s,%s,%s)", e.Op, e.Left, e.Right.Arg.Name, e.Right.Arg.Desc)
		}
		return fmt.Sprintf("%s(%s,%s)", e.Op, e.Left, e.Right)
	case e.Right == nil:
		return e.Op + e.Left.String()
	default:
		return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right)
	}
}
