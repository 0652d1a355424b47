package stream

import "testing"

func TestNewPartitionedTableRoundsToPowerOfTwo(t *testing.T) {
	tbl := NewPartitionedTable(5)
	if tbl.Size() != 8 {
		t.Errorf("Size() = %d, want 8 (next power of two after 5)", tbl.Size())
	}
}

func TestPartitionIndexStable(t *testing.T) {
	tbl := NewPartitionedTable(4)
	key := "abc"
	i1 := tbl.PartitionIndex(key)
	i2 := tbl.PartitionIndex(key)
	if i1 != i2 {
		t.Errorf("PartitionIndex(%q) not stable: %d vs %d", key, i1, i2)
	}
	if i1 < 0 || i1 >= tbl.Size() {
		t.Errorf("PartitionIndex(%q) = %d out of range [0,%d)", key, i1, tbl.Size())
	}
}

func TestNextTimestampMonotonic(t *testing.T) {
	a := NextTimestamp()
	b := NextTimestamp()
	if b <= a {
		t.Errorf("NextTimestamp() not strictly increasing: %d then %d", a, b)
	}
}

func TestJoinKeyConcatenatesInOrder(t *testing.T) {
	tup := Tuple{"a": "1", "b": "2"}
	if got, want := JoinKey(tup, []string{"a", "b"}), "12"; got != want {
		t.Errorf("JoinKey() = %q, want %q", got, want)
	}
	if got, want := JoinKey(tup, []string{"b", "a"}), "21"; got != want {
		t.Errorf("JoinKey() = %q, want %q (order must follow the given var list)", got, want)
	}
}

func TestInsertAndPartition(t *testing.T) {
	tbl := NewPartitionedTable(2)
	rec := Record{Tuple: Tuple{"a": "1"}, Ats: 1}
	tbl.Insert(0, rec)

	got := tbl.Partition(0)
	if len(got) != 1 || got[0].Tuple["a"] != "1" {
		t.Errorf("Partition(0) = %v, want one record with a=1", got)
	}
	if len(tbl.Partition(1)) != 0 {
		t.Errorf("Partition(1) = %v, want empty", tbl.Partition(1))
	}
}
