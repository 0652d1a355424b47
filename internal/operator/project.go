package operator

import (
	"context"
	"strings"

	"github.com/awudima/fedcore/internal/stream"
)

// Project reads tuples from its left input, keeps only the bound variables
// named in Config.Vars (renaming "?x"/"$x" to "x"), and stops after Limit
// outputs if Limit > 0. Grounded on
// awudima/operators/qforms/Xproject.py::Xproject.
type Project struct {
	Config ProjectConfig
}

// NewProject builds a Project operator.
func NewProject(cfg ProjectConfig) *Project {
	return &Project{Config: cfg}
}

// Run implements Operator. The right input is unused (Project is
// single-input) and is accepted only to satisfy the interface.
func (p *Project) Run(ctx context.Context, left, _ *stream.TupleStream, out *stream.TupleStream) error {
	emitted := 0
	for {
		select {
		case <-ctx.Done():
			return canceled("Project")
		default:
		}

		t, err := left.Get(ctx)
		if err != nil {
			return err
		}
		if stream.IsEOF(t) {
			return out.PutEOF(ctx)
		}

		var res stream.Tuple
		if len(p.Config.Vars) == 0 {
			res = t.Clone()
		} else {
			res = make(stream.Tuple, len(p.Config.Vars))
			for _, v := range p.Config.Vars {
				name := strings.TrimLeft(v.Name, "?$")
				res[name] = t[name]
			}
		}

		if err := out.Put(ctx, res); err != nil {
			return err
		}
		emitted++
		if p.Config.Limit > 0 && emitted >= p.Config.Limit {
			return out.PutEOF(ctx)
		}
	}
}
