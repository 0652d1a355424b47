package rml

import "testing"

type fakeSchema map[string]string

func (f fakeSchema) ColumnType(table, column string) (string, bool) {
	t, ok := f[table+"."+column]
	return t, ok
}

var _ Schema = fakeSchema(nil)

func TestSchemaColumnTypeLookup(t *testing.T) {
	s := fakeSchema{"city.id": "INTEGER"}

	if got, ok := s.ColumnType("city", "id"); !ok || got != "INTEGER" {
		t.Errorf("ColumnType(city,id) = (%q,%v), want (INTEGER,true)", got, ok)
	}
	if _, ok := s.ColumnType("city", "missing"); ok {
		t.Error("ColumnType(city,missing) reported ok=true, want false")
	}
}
