package term

import "testing"

func TestExpressionGetVarsUnary(t *testing.T) {
	v, _ := NewVariable("?x")
	e := Unary("BOUND", Leaf(v))
	vars := e.GetVars()
	if len(vars) != 1 || vars[0] != "?x" {
		t.Errorf("GetVars() = %v, want [?x]", vars)
	}
}

func TestExpressionGetVarsInfix(t *testing.T) {
	x, _ := NewVariable("?x")
	y, _ := NewVariable("?y")
	e := Binary("=", Leaf(x), Leaf(y))
	vars := e.GetVars()
	if len(vars) != 2 {
		t.Errorf("GetVars() = %v, want 2 entries", vars)
	}
}

func TestExpressionPlacesUnaryVsInfix(t *testing.T) {
	x, _ := NewVariable("?x")
	y, _ := NewVariable("?y")

	unary := Unary("STR", Leaf(x))
	if p := unary.Places(); p != 1 {
		t.Errorf("unary Places() = %d, want 1", p)
	}

	infix := Binary("=", Leaf(x), Leaf(y))
	if p := infix.Places(); p != 2 {
		t.Errorf("infix Places() = %d, want 2", p)
	}
}

func TestExpressionStringRendering(t *testing.T) {
	x, _ := NewVariable("?x")
	y, _ := NewVariable("?y")

	unary := Unary("BOUND", Leaf(x))
	if got, want := unary.String(), "BOUND(?x)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	infix := Binary("=", Leaf(x), Leaf(y))
	if got, want := infix.String(), "(?x = ?y)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestExpressionRegexWithFlags(t *testing.T) {
	x, _ := NewVariable("?x")
	flags := Argument{Name: "i", Constant: true, Desc: "i"}

	e := Binary("REGEX", Leaf(x), Leaf(flags))

	got := e.String()
	want := "REGEX(?x,i,i)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestExpressionInstantiateIsPure(t *testing.T) {
	x, _ := NewVariable("?x")
	e := Unary("BOUND", Leaf(x))

	bound := e.Instantiate(map[string]string{"x": "1"})
	if bound.Left.Arg.Name != "1" {
		t.Errorf("instantiated leaf = %+v, want constant 1", bound.Left.Arg)
	}
	if e.Left.Arg.Name != "?x" {
		t.Errorf("Instantiate mutated receiver: %+v", e.Left.Arg)
	}
}
