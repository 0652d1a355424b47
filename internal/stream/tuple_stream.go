package stream

import (
	"context"
	"sync"
	"sync/atomic"
)

// Tuple is a variable-name-to-lexical-value mapping — the leading ?/$ is
// always stripped by the producer before the binding lands in a Tuple. A nil
// Tuple is the in-band end-of-stream sentinel (EOF): every valid tuple,
// including the empty-binding tuple produced by the OPTIONAL-empty branch,
// is a non-nil map, so nil is unambiguous.
type Tuple map[string]string

// EOF is the distinguished end-of-stream sentinel.
var EOF Tuple = nil

// IsEOF reports whether t is the end-of-stream sentinel.
func IsEOF(t Tuple) bool { return t == nil }

// TupleStream is a bounded FIFO of Tuples terminated by exactly one EOF, per
// spec.md §3/§5: a blocking-put/blocking-get channel between two pipelined
// operators. Grounded on the teacher's channel-based fan-in in
// query.executeConcurrent, generalized from a one-shot result channel to a
// long-lived sentinel-terminated stream.
type TupleStream struct {
	ch      chan Tuple
	done    chan struct{}
	doneMu  sync.Once
	eofSent atomic.Bool
}

// NewTupleStream creates a stream with the given channel capacity (the bound
// on in-flight tuples between producer and consumer).
func NewTupleStream(capacity int) *TupleStream {
	if capacity < 0 {
		capacity = 0
	}
	return &TupleStream{
		ch:   make(chan Tuple, capacity),
		done: make(chan struct{}),
	}
}

// Put blocks until the tuple is accepted, the consumer signals it is gone
// (CloseConsumer), or ctx is canceled. Passing a nil Tuple here is a caller
// error; use PutEOF to terminate the stream.
func (s *TupleStream) Put(ctx context.Context, t Tuple) error {
	select {
	case s.ch <- t:
		return nil
	case <-s.done:
		return ErrStreamClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// PutEOF sends the end-of-stream sentinel exactly once; subsequent calls are
// no-ops, so an operator that races to terminate (e.g. cancellation firing
// concurrently with a natural end of input) never blocks trying to emit a
// second EOF.
func (s *TupleStream) PutEOF(ctx context.Context) error {
	if !s.eofSent.CompareAndSwap(false, true) {
		return nil
	}
	return s.Put(ctx, EOF)
}

// Get blocks until a tuple or EOF arrives, or ctx is canceled.
func (s *TupleStream) Get(ctx context.Context) (Tuple, error) {
	select {
	case t := <-s.ch:
		return t, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// CloseConsumer signals that the consumer has gone away; any blocked or
// future Put fails with ErrStreamClosed. Idempotent.
func (s *TupleStream) CloseConsumer() {
	s.doneMu.Do(func() { close(s.done) })
}

// Merge copies m's bindings into t, overwriting any overlapping keys with
// m's values ("right wins"), and returns the result as a new Tuple — the
// merge direction used by the NestedLoopOptional's local-match branch.
func (t Tuple) Merge(m Tuple) Tuple {
	out := make(Tuple, len(t)+len(m))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Clone returns a shallow copy of t.
func (t Tuple) Clone() Tuple {
	out := make(Tuple, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}
