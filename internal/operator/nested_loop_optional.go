package operator

import (
	"context"

	"github.com/awudima/fedcore/internal/stream"
)

// NestedLoopOptional is a symmetric hash-partitioned optional-join operator:
// it drains its left input fully, then for each left tuple probes a local
// partitioned cache of right-side results and falls back to contacting a
// RemoteSource only on a partition miss, caching the remote answer (or a
// synthetic empty tuple, for true OPTIONAL misses) for subsequent probes.
// Grounded on awudima/operators/blocking/NestedLoopOptional.py.
type NestedLoopOptional struct {
	varsLeft  map[string]struct{}
	varsRight map[string]struct{}
	joinVars  []string

	left   *stream.PartitionedTable
	right  *stream.PartitionedTable
	remote RemoteSource
}

// NewNestedLoopOptional builds a NestedLoopOptional, deriving JoinVars as
// the intersection of VarsLeft and VarsRight in VarsLeft's iteration order.
func NewNestedLoopOptional(cfg NestedLoopOptionalConfig) *NestedLoopOptional {
	vl := toSet(cfg.VarsLeft)
	vr := toSet(cfg.VarsRight)

	var joinVars []string
	for _, v := range cfg.VarsLeft {
		if _, ok := vr[v]; ok {
			joinVars = append(joinVars, v)
		}
	}

	partitions := cfg.Partitions
	if partitions <= 0 {
		partitions = 1
	}

	return &NestedLoopOptional{
		varsLeft:  vl,
		varsRight: vr,
		joinVars:  joinVars,
		left:      stream.NewPartitionedTable(partitions),
		right:     stream.NewPartitionedTable(partitions),
		remote:    cfg.Remote,
	}
}

func toSet(items []string) map[string]struct{} {
	s := make(map[string]struct{}, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

// JoinVars returns the fixed-order join variable list derived at construction.
func (n *NestedLoopOptional) JoinVars() []string { return n.joinVars }

// Run drains qLeft fully into a buffer, probes every buffered tuple, then
// drains the accumulated results to out and emits EOF. qRight is unused:
// the right side is reached only through the RemoteSource on a partition
// miss, never as a direct input stream.
func (n *NestedLoopOptional) Run(ctx context.Context, qLeft, _ *stream.TupleStream, out *stream.TupleStream) error {
	var buf []stream.Tuple
	for {
		t, err := qLeft.Get(ctx)
		if err != nil {
			return err
		}
		if stream.IsEOF(t) {
			break
		}
		buf = append(buf, t)
	}

	var results []stream.Tuple
	for _, t := range buf {
		select {
		case <-ctx.Done():
			return canceled("NestedLoopOptional")
		default:
		}
		rs, err := n.insertAndProbe(ctx, t)
		if err != nil {
			return err
		}
		results = append(results, rs...)
	}

	for _, r := range results {
		if err := out.Put(ctx, r); err != nil {
			return err
		}
	}
	return out.PutEOF(ctx)
}

// insertAndProbe hashes t on the join key, inserts it into the left table,
// and probes the corresponding right partition.
func (n *NestedLoopOptional) insertAndProbe(ctx context.Context, t stream.Tuple) ([]stream.Tuple, error) {
	key := stream.JoinKey(t, n.joinVars)
	i := n.left.PartitionIndex(key)

	rec := stream.Record{Tuple: t, Ats: stream.NextTimestamp()}
	n.left.Insert(i, rec)

	return n.probe(ctx, rec, i)
}

// probe checks rec against every record currently in the right table's
// partition i. On a match it emits the local join (right side wins on
// overlap). If the partition was empty or produced no match, it falls back
// to contacting the remote source.
func (n *NestedLoopOptional) probe(ctx context.Context, rec stream.Record, i int) ([]stream.Tuple, error) {
	partition := n.right.Partition(i)

	var results []stream.Tuple
	anyJoin := false

	for _, r := range partition {
		if isDuplicated(rec, r) {
			break
		}
		if !joinMatches(rec.Tuple, r.Tuple, n.joinVars) {
			continue
		}
		anyJoin = true
		results = append(results, rec.Tuple.Merge(r.Tuple))
	}

	if len(partition) == 0 || !anyJoin {
		remoteResults, err := n.contactRemote(ctx, rec, i)
		if err != nil {
			return nil, err
		}
		results = append(results, remoteResults...)
	}

	return results, nil
}

// isDuplicated reports whether rec arrived before r — the monotonic-ats
// check that blocks re-emitting a pair already produced when r was the
// probing side.
func isDuplicated(rec, r stream.Record) bool {
	return rec.Ats < r.Ats
}

func joinMatches(a, b stream.Tuple, vars []string) bool {
	for _, v := range vars {
		if a[v] != b[v] {
			return false
		}
	}
	return true
}

// contactRemote invokes the RemoteSource for rec's join-key instance values
// and drains its output stream, producing a join result per remote tuple
// (left side wins on overlap here — intentionally asymmetric with probe's
// local-match branch, per the OPTIONAL contract) or, on an immediate EOF, a
// single synthetic empty-tuple result.
func (n *NestedLoopOptional) contactRemote(ctx context.Context, rec stream.Record, i int) ([]stream.Tuple, error) {
	instances := make([]string, len(n.joinVars))
	for idx, v := range n.joinVars {
		instances[idx] = rec.Tuple[v]
	}

	remoteOut := stream.NewTupleStream(16)
	errCh := make(chan error, 1)
	go func() {
		errCh <- n.remote.Execute(ctx, n.joinVars, instances, remoteOut)
	}()

	first, err := remoteOut.Get(ctx)
	if err != nil {
		return nil, err
	}

	if stream.IsEOF(first) {
		if err := <-errCh; err != nil {
			return nil, err
		}
		return n.optionalMiss(rec, i), nil
	}

	var results []stream.Tuple
	rTuple := first
	for !stream.IsEOF(rTuple) {
		res2 := rTuple.Clone()
		for _, v := range n.joinVars {
			res2[v] = rec.Tuple[v]
		}
		n.right.Insert(i, stream.Record{Tuple: res2, Ats: stream.NextTimestamp()})

		results = append(results, rTuple.Merge(rec.Tuple))

		rTuple, err = remoteOut.Get(ctx)
		if err != nil {
			return nil, err
		}
	}

	if err := <-errCh; err != nil {
		return nil, err
	}
	return results, nil
}

// optionalMiss builds the synthetic empty right tuple (every attribute the
// remote source can bind, mapped to ""), caches it so later probes hitting
// the same partition skip the remote call, and pads rec's tuple with it.
func (n *NestedLoopOptional) optionalMiss(rec stream.Record, i int) []stream.Tuple {
	empty := make(stream.Tuple, len(n.remote.Atts()))
	for _, k := range n.remote.Atts() {
		empty[k] = ""
	}
	n.right.Insert(i, stream.Record{Tuple: empty, Ats: stream.NextTimestamp()})

	return []stream.Tuple{empty.Merge(rec.Tuple)}
}
