package rml

import (
	"testing"

	"github.com/awudima/fedcore/internal/term"
)

func TestTranslateConstantVsConstantMatchShortCircuits(t *testing.T) {
	// Both sides are normalized by requote() before comparison, so the
	// single-quoted term-map value matches the bracketed IRI constant.
	tm := NewTermMap("'http://ex/fixed'", Constant, IRI)
	rdfTerm := term.NewConstant("<http://ex/fixed>")

	res, err := Translate(tm, rdfTerm, "=")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if res.FilterConditions != nil && res.FilterConditions.String() != "" {
		t.Errorf("FilterConditions = %q, want empty/nil (CONSTANT==CONSTANT match short-circuits)", res.FilterConditions.String())
	}
}

func TestTranslateConstantVsConstantMismatchIsFalse(t *testing.T) {
	tm := NewTermMap("http://ex/fixed", Constant, IRI)
	rdfTerm := term.NewConstant("<http://ex/other>")

	res, err := Translate(tm, rdfTerm, "=")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if got, want := res.FilterConditions.String(), "FALSE"; got != want {
		t.Errorf("FilterConditions = %q, want %q", got, want)
	}
}

func TestTranslateTemplateBoundVariableProjects(t *testing.T) {
	tm := NewTermMap("http://ex/City/{name}", Template, IRI)
	x, err := term.NewVariable("?x")
	if err != nil {
		t.Fatalf("NewVariable failed: %v", err)
	}

	res, err := Translate(tm, x, "")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if res.Projection == nil {
		t.Fatal("Projection = nil, want a SelectExpression for an unbound variable")
	}
	if got, want := res.Projection.String(), "CONCAT('http://ex/City/',`name`) AS x"; got != want {
		t.Errorf("Projection = %q, want %q", got, want)
	}
	if got, want := res.FilterConditions.String(), "`name` IS NOT NULL"; got != want {
		t.Errorf("FilterConditions = %q, want %q", got, want)
	}
}

func TestTranslateReferenceConstantProducesEqualityFilter(t *testing.T) {
	tm := NewTermMap("name", Reference, Literal)
	rdfTerm := term.NewConstant(`"Alice"`)

	res, err := Translate(tm, rdfTerm, "")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if got, want := res.FilterConditions.String(), "`name`='Alice'"; got != want {
		t.Errorf("FilterConditions = %q, want %q", got, want)
	}
}
