package algebra

import (
	"testing"

	"github.com/awudima/fedcore/internal/term"
)

func triple(t *testing.T, s, p, o string) *Triple {
	t.Helper()
	mk := func(name string) term.Argument {
		if name[0] == '?' {
			a, err := term.NewVariable(name)
			if err != nil {
				t.Fatal(err)
			}
			return a
		}
		return term.NewConstant(name)
	}
	return NewTriple(mk(s), mk(p), mk(o))
}

func TestQueryJoinVarsRequiresTwoOccurrences(t *testing.T) {
	t1 := triple(t, "?x", "<http://ex/p1>", "?y")
	t2 := triple(t, "?y", "<http://ex/p2>", "?z")
	body := NewUnionBlock([]Node{NewJoinBlock([]Node{t1, t2}, nil)}, nil)

	q := NewQuery(nil, nil, body, false, nil, -1, -1, Select, nil)

	if _, ok := q.JoinVars["?y"]; !ok {
		t.Errorf("JoinVars = %v, want ?y present (appears in two triples)", q.JoinVars)
	}
	if _, ok := q.JoinVars["?x"]; ok {
		t.Errorf("JoinVars = %v, want ?x absent (appears once)", q.JoinVars)
	}
}

func TestQueryAskForcesLimitOne(t *testing.T) {
	t1 := triple(t, "?x", "<http://ex/p>", "?y")
	body := NewUnionBlock([]Node{NewJoinBlock([]Node{t1}, nil)}, nil)

	q := NewQuery(nil, nil, body, false, nil, -1, -1, Ask, nil)
	if q.Limit != 1 {
		t.Errorf("Limit = %d, want 1 for an ASK query", q.Limit)
	}
}

func TestQueryInstantiateIsPure(t *testing.T) {
	t1 := triple(t, "?x", "<http://ex/p>", "?y")
	body := NewUnionBlock([]Node{NewJoinBlock([]Node{t1}, nil)}, nil)
	q := NewQuery(nil, nil, body, false, nil, -1, -1, Select, nil)

	instantiated := q.Instantiate(map[string]string{"x": "<http://ex/a>"})
	if instantiated == q {
		t.Error("Instantiate() returned the same pointer, want a fresh Query")
	}
	if instantiated.Body == q.Body {
		t.Error("Instantiate() did not replace Body with a fresh node")
	}
}
