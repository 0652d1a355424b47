package algebra

import "testing"

func TestUnionBlockIncludeFilterPushesIntoServices(t *testing.T) {
	svc1 := NewService("<http://ex/e1>", []Node{
		triple(t, "?s", "<http://ex/p>", "?o"),
	}, "", nil, nil, nil, nil)
	svc2 := NewService("<http://ex/e2>", []Node{
		triple(t, "?s", "<http://ex/p2>", "?o"),
	}, "", nil, nil, nil, nil)
	ub := NewUnionBlock([]Node{svc1, svc2}, nil)

	f := NewFilter(nil)
	ub.IncludeFilter(f)

	if len(svc1.Filters) != 1 || svc1.Filters[0] != f {
		t.Errorf("svc1.Filters = %v, want [f] pushed through UnionBlock.IncludeFilter", svc1.Filters)
	}
	if len(svc2.Filters) != 1 || svc2.Filters[0] != f {
		t.Errorf("svc2.Filters = %v, want [f] pushed through UnionBlock.IncludeFilter", svc2.Filters)
	}
}
