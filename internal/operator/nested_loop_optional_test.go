package operator

import (
	"context"
	"testing"

	"github.com/awudima/fedcore/internal/stream"
)

// fakeRemote is a RemoteSource stub whose Execute answers are keyed by the
// instance value of the first join variable, letting tests drive the
// partition-miss paths deterministically.
type fakeRemote struct {
	atts    []string
	answers map[string][]stream.Tuple
}

func (f *fakeRemote) Atts() []string { return f.atts }

func (f *fakeRemote) Execute(ctx context.Context, vars []string, instanceValues []string, out *stream.TupleStream) error {
	key := ""
	if len(instanceValues) > 0 {
		key = instanceValues[0]
	}
	for _, tup := range f.answers[key] {
		if err := out.Put(ctx, tup); err != nil {
			return err
		}
	}
	return out.PutEOF(ctx)
}

func runNLO(t *testing.T, cfg NestedLoopOptionalConfig, left []stream.Tuple) []stream.Tuple {
	t.Helper()
	ctx := context.Background()
	in := stream.NewTupleStream(len(left) + 1)
	out := stream.NewTupleStream(len(left) + 4)

	for _, tup := range left {
		if err := in.Put(ctx, tup); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}
	if err := in.PutEOF(ctx); err != nil {
		t.Fatalf("PutEOF failed: %v", err)
	}

	if err := NewNestedLoopOptional(cfg).Run(ctx, in, nil, out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var results []stream.Tuple
	for {
		tup, err := out.Get(ctx)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if stream.IsEOF(tup) {
			break
		}
		results = append(results, tup)
	}
	return results
}

func TestNestedLoopOptionalJoinVarsIsOrderedIntersection(t *testing.T) {
	n := NewNestedLoopOptional(NestedLoopOptionalConfig{
		VarsLeft:  []string{"x", "y", "z"},
		VarsRight: []string{"z", "x"},
	})
	if got, want := n.JoinVars(), []string{"x", "z"}; len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("JoinVars() = %v, want %v (VarsLeft order)", got, want)
	}
}

func TestNestedLoopOptionalRemoteJoinMatchWins(t *testing.T) {
	remote := &fakeRemote{
		atts: []string{"x", "w"},
		answers: map[string][]stream.Tuple{
			"1": {{"x": "1", "w": "remote-w"}},
		},
	}
	cfg := NestedLoopOptionalConfig{
		VarsLeft:   []string{"x", "y"},
		VarsRight:  []string{"x", "w"},
		Partitions: 2,
		Remote:     remote,
	}

	results := runNLO(t, cfg, []stream.Tuple{{"x": "1", "y": "left-y"}})

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0]["y"] != "left-y" || results[0]["w"] != "remote-w" {
		t.Errorf("merged result = %v, want both left and remote bindings present", results[0])
	}
}

func TestNestedLoopOptionalRemoteMissPadsEmpty(t *testing.T) {
	remote := &fakeRemote{
		atts:    []string{"x", "w"},
		answers: map[string][]stream.Tuple{},
	}
	cfg := NestedLoopOptionalConfig{
		VarsLeft:   []string{"x", "y"},
		VarsRight:  []string{"x", "w"},
		Partitions: 2,
		Remote:     remote,
	}

	results := runNLO(t, cfg, []stream.Tuple{{"x": "1", "y": "left-y"}})

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0]["y"] != "left-y" {
		t.Errorf("merged result = %v, want left binding preserved", results[0])
	}
	if w, ok := results[0]["w"]; !ok || w != "" {
		t.Errorf("merged result = %v, want w bound to empty string (OPTIONAL miss padding)", results[0])
	}
}

func TestNestedLoopOptionalSecondProbeHitsCachedPartitionNotRemote(t *testing.T) {
	calls := 0
	remote := &countingRemote{
		fakeRemote: fakeRemote{
			atts: []string{"x", "w"},
			answers: map[string][]stream.Tuple{
				"1": {{"x": "1", "w": "remote-w"}},
			},
		},
		calls: &calls,
	}
	cfg := NestedLoopOptionalConfig{
		VarsLeft:   []string{"x", "y"},
		VarsRight:  []string{"x", "w"},
		Partitions: 1,
		Remote:     remote,
	}

	results := runNLO(t, cfg, []stream.Tuple{
		{"x": "1", "y": "first"},
		{"x": "1", "y": "second"},
	})

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if calls != 1 {
		t.Errorf("remote Execute called %d times, want exactly 1 (second probe should hit the cached right partition)", calls)
	}
}

type countingRemote struct {
	fakeRemote
	calls *int
}

func (c *countingRemote) Execute(ctx context.Context, vars []string, instanceValues []string, out *stream.TupleStream) error {
	*c.calls++
	return c.fakeRemote.Execute(ctx, vars, instanceValues, out)
}
