package operator

import "github.com/awudima/fedcore/internal/term"

// ProjectConfig configures a Project operator: Vars is the (possibly empty —
// empty means project everything) projection list, Limit caps the number of
// output tuples (<=0 means unbounded).
type ProjectConfig struct {
	Vars  []term.Argument
	Limit int
}

// NestedLoopOptionalConfig configures a NestedLoopOptional operator.
// Partitions must be a power of two (stream.NewPartitionedTable rounds up
// if it is not).
type NestedLoopOptionalConfig struct {
	VarsLeft  []string
	VarsRight []string
	Partitions int
	Remote    RemoteSource
}
