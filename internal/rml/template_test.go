package rml

import "testing"

func TestSplitTemplatePrefixThenColumn(t *testing.T) {
	segs, err := splitTemplate("http://ex/City/{name}")
	if err != nil {
		t.Fatalf("splitTemplate failed: %v", err)
	}
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	if segs[0].Prefix != "http://ex/City/" || segs[0].Column != "name" || !segs[0].HasColumn {
		t.Errorf("segment = %+v, want prefix %q column %q", segs[0], "http://ex/City/", "name")
	}
}

func TestSplitTemplateColumnOnly(t *testing.T) {
	segs, err := splitTemplate("{name}")
	if err != nil {
		t.Fatalf("splitTemplate failed: %v", err)
	}
	if len(segs) != 1 || segs[0].Prefix != "" || segs[0].Column != "name" {
		t.Errorf("segments = %+v, want a single bare-column segment", segs)
	}
}

func TestSplitTemplateTrailingLiteral(t *testing.T) {
	segs, err := splitTemplate("{name}/profile")
	if err != nil {
		t.Fatalf("splitTemplate failed: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	if segs[1].HasColumn || segs[1].Prefix != "/profile" {
		t.Errorf("trailing segment = %+v, want a literal-only \"/profile\" segment", segs[1])
	}
}

func TestSplitTemplateMultipleColumns(t *testing.T) {
	segs, err := splitTemplate("http://ex/{type}/{id}")
	if err != nil {
		t.Fatalf("splitTemplate failed: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	if segs[0].Column != "type" || segs[1].Column != "id" {
		t.Errorf("segments = %+v, want columns [type id]", segs)
	}
}
