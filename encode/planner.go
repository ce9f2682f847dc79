// SPDX-License-Identifier: MIT

package encode

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/blockenc/gate"
	"github.com/katalvlaran/blockenc/rotation"
	"github.com/katalvlaran/blockenc/transform"
)

// planner streams layers into a sink, optionally through outer conditioning,
// and counts what it forwards.
type planner struct {
	opts    options
	sink    gate.Sink
	cond    *gate.Conditioned
	emitted int
}

func newPlanner(sink gate.Sink, o options) (*planner, error) {
	p := &planner{opts: o, sink: sink}
	if o.outer != nil {
		cond, err := gate.Condition(sink, o.outer, o.states)
		if err != nil {
			return nil, errors.Wrap(err, "outer controls")
		}
		p.cond = cond
		p.sink = cond
	}

	return p, nil
}

// Append implements gate.Sink.
func (p *planner) Append(op gate.Op) error {
	if err := p.sink.Append(op); err != nil {
		return err
	}
	p.emitted++

	return nil
}

func (p *planner) close() error {
	if p.cond == nil {
		return nil
	}

	return p.cond.Close()
}

// uniform emits one uniformly controlled rotation given natural-order
// angles into dst (the planner itself or a buffer).
func (p *planner) uniform(dst gate.Sink, stage string, layer int, axis gate.Kind, target int, controls []int, natural []float64) error {
	u := rotation.Uniform{Axis: axis, Target: target, Controls: controls}
	var err error
	if p.opts.uncompressed {
		u.Angles = natural
		err = rotation.Expand(dst, u, p.opts.eps)
	} else {
		if u.Angles, err = transform.UniformAngles(natural); err != nil {
			return errors.Wrapf(err, "%s layer %d", stage, layer)
		}
		err = rotation.Emit(dst, u, p.opts.eps)
	}
	if err != nil {
		return errors.Wrapf(err, "%s layer %d", stage, layer)
	}

	if ce := p.opts.log.Check(zap.DebugLevel, "layer compiled"); ce != nil {
		ce.Write(
			zap.String("stage", stage),
			zap.Int("layer", layer),
			zap.Stringer("axis", axis),
			zap.Int("target", target),
			zap.Int("controls", len(controls)),
			zap.Int("kept", kept(u.Angles, p.opts.eps)),
			zap.Int("emitted", p.emitted),
		)
	}

	return nil
}

func kept(angles []float64, eps float64) int {
	n := 0
	for _, a := range angles {
		if math.Abs(a) > eps {
			n++
		}
	}

	return n
}

// prefixControls returns prior[:l] followed by tail in a fresh slice.
func prefixControls(prior []int, l int, tail []int) []int {
	out := make([]int, 0, l+len(tail))
	out = append(out, prior[:l]...)

	return append(out, tail...)
}
