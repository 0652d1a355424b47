package stream

import (
	"hash/fnv"
	"strings"
	"sync/atomic"
)

// Record is one row of a PartitionedTable: a tuple plus its arrival
// timestamp (Ats) and a reserved field (Dts) per spec.md §3.
type Record struct {
	Tuple Tuple
	Ats   int64
	Dts   int64
}

var clock atomic.Int64

// NextTimestamp returns a strictly monotonically increasing counter value,
// used as Record.Ats. A steady atomic counter rather than wall-clock time,
// per spec.md §5/§9: is_duplicated depends on strict monotonicity, which a
// clock tick cannot guarantee under concurrent inserts.
func NextTimestamp() int64 {
	return clock.Add(1)
}

// PartitionedTable is a fixed-size hash-partitioned append-only store of
// Records, per spec.md §3. Its partition count (Size) is always a power of
// two.
type PartitionedTable struct {
	partitions [][]Record
	size       int
}

// NewPartitionedTable creates a table with the given number of partitions.
// size must be a power of two; a non-power-of-two is rounded up.
func NewPartitionedTable(size int) *PartitionedTable {
	size = nextPowerOfTwo(size)
	return &PartitionedTable{
		partitions: make([][]Record, size),
		size:       size,
	}
}

func nextPowerOfTwo(n int) int {
	if n < 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Size returns the partition count.
func (t *PartitionedTable) Size() int { return t.size }

// PartitionIndex hashes key (the concatenation of join-variable bindings in
// a fixed order) to a partition index.
func (t *PartitionedTable) PartitionIndex(key string) int {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum64() % uint64(t.size))
}

// Insert appends r to partition i.
func (t *PartitionedTable) Insert(i int, r Record) {
	t.partitions[i] = append(t.partitions[i], r)
}

// Partition returns the records currently in partition i.
func (t *PartitionedTable) Partition(i int) []Record {
	return t.partitions[i]
}

// JoinKey concatenates t's bindings for vars, in the given fixed order — the
// hash-partitioning key used by insert-and-probe.
func JoinKey(t Tuple, vars []string) string {
	var b strings.Builder
	for _, v := range vars {
		b.WriteString(t[v])
	}
	return b.String()
}
