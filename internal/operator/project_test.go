package operator

import (
	"context"
	"testing"

	"github.com/awudima/fedcore/internal/stream"
	"github.com/awudima/fedcore/internal/term"
)

func runProject(t *testing.T, cfg ProjectConfig, tuples []stream.Tuple) []stream.Tuple {
	t.Helper()
	ctx := context.Background()
	in := stream.NewTupleStream(len(tuples) + 1)
	out := stream.NewTupleStream(len(tuples) + 1)

	for _, tup := range tuples {
		if err := in.Put(ctx, tup); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}
	if err := in.PutEOF(ctx); err != nil {
		t.Fatalf("PutEOF failed: %v", err)
	}

	if err := NewProject(cfg).Run(ctx, in, nil, out); err != nil {
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

func TestProjectKeepsOnlyConfiguredVars(t *testing.T) {
	x, _ := term.NewVariable("?x")
	results := runProject(t, ProjectConfig{Vars: []term.Argument{x}}, []stream.Tuple{
		{"x": "1", "y": "2"},
	})

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if _, ok := results[0]["y"]; ok {
		t.Errorf("result = %v, want y dropped", results[0])
	}
	if results[0]["x"] != "1" {
		t.Errorf("result = %v, want x=1", results[0])
	}
}

func TestProjectEmptyVarsKeepsEverything(t *testing.T) {
	results := runProject(t, ProjectConfig{}, []stream.Tuple{
		{"x": "1", "y": "2"},
	})

	if len(results) != 1 || results[0]["x"] != "1" || results[0]["y"] != "2" {
		t.Errorf("results = %v, want the full tuple unchanged", results)
	}
}

func TestProjectRespectsLimit(t *testing.T) {
	results := runProject(t, ProjectConfig{Limit: 1}, []stream.Tuple{
		{"x": "1"}, {"x": "2"}, {"x": "3"},
	})

	if len(results) != 1 {
		t.Errorf("got %d results, want exactly 1 (Limit)", len(results))
	}
}
