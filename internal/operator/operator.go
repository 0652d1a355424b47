// Package operator implements the physical streaming operators that execute
// over algebra nodes: Project and NestedLoopOptional, each pinned to one
// worker goroutine and communicating with its neighbors only through
// stream.TupleStream — never shared memory. Grounded on
// awudima/operators/qforms/Xproject.py and
// awudima/operators/blocking/NestedLoopOptional.py.
package operator

import (
	"context"

	"github.com/awudima/fedcore/internal/stream"
)

// Operator is the common shape every physical operator satisfies: read from
// one or two input streams, write to one output stream, honoring ctx
// cancellation.
type Operator interface {
	Run(ctx context.Context, left, right *stream.TupleStream, out *stream.TupleStream) error
}

// RemoteSource is the endpoint-client boundary a NestedLoopOptional probes
// on a partition miss: it blocks until every matching tuple plus EOF has
// been enqueued to out. Atts names every variable the source can bind, used
// to build the synthetic empty tuple on a miss.
type RemoteSource interface {
	Execute(ctx context.Context, vars []string, instanceValues []string, out *stream.TupleStream) error
	Atts() []string
}
