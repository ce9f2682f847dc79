// SPDX-License-Identifier: MIT

package rotation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/blockenc/bitutil"
	"github.com/katalvlaran/blockenc/gate"
)

// Uniform describes one uniformly controlled rotation.
//
//   - Axis     — RX, RY or RZ.
//   - Target   — qubit the rotations act on.
//   - Controls — ordered control qubits; Controls[0] is the most significant
//     bit of a control pattern.
//   - Angles   — 2^len(Controls) angles. Compile/Emit expect Gray order
//     (transform.UniformAngles); Expand expects natural pattern order.
type Uniform struct {
	Axis     gate.Kind
	Target   int
	Controls []int
	Angles   []float64
}

// Validate checks axis and dimensions.
func (u Uniform) Validate() error {
	if !u.Axis.IsRotation() {
		return fmt.Errorf("rotation: axis %s: %w", u.Axis, ErrUnsupportedGateKind)
	}
	if len(u.Controls) >= bitsPerInt || len(u.Angles) != 1<<len(u.Controls) {
		return fmt.Errorf("rotation: %d angles for %d controls: %w", len(u.Angles), len(u.Controls), ErrInvalidDimension)
	}

	return nil
}

const bitsPerInt = 32 << (^uint(0) >> 63)

// Compile returns the Gray-code compressed gate sequence of u as a new
// circuit. See Emit.
func Compile(u Uniform, eps float64, opts ...Option) (*gate.Circuit, error) {
	c := gate.NewCircuit()
	if err := Emit(c, u, eps, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Emit streams the Gray-code compressed gate sequence of u into sink.
//
// For i = 0..2^k-1: if |Angles[i]| > eps, the pending CNOTs are flushed and
// an unconditioned rotation by Angles[i] is emitted on Target; then the
// control whose Gray bit toggles between i and i+1 (control 0 for the final
// wrap-around) flips its membership in the open set. Remaining pending CNOTs
// are flushed at the end. CNOTs have the control qubit as control and Target
// as target, flushed in ascending control position.
//
// CNOT conjugation negates RY and RZ angles but commutes with RX, so the
// compressed form accepts only RY and RZ; use Expand for RX.
//
// Errors:
//   - ErrUnsupportedGateKind for RX, plus Validate errors.
//   - ErrInvalidDimension from Validate.
//   - ErrInconsistentControlSpec from WithOuterControls.
//   - Any error returned by sink; ops already emitted stay emitted.
//
// Complexity: O(2^k) time, O(k) memory.
func Emit(sink gate.Sink, u Uniform, eps float64, opts ...Option) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if u.Axis == gate.RX {
		return fmt.Errorf("rotation: Gray compile of %s: %w", u.Axis, ErrUnsupportedGateKind)
	}
	o := gather(opts)
	dst := sink
	var cond *gate.Conditioned
	if o.outer != nil {
		var err error
		if cond, err = gate.Condition(sink, o.outer, o.states); err != nil {
			return err
		}
		dst = cond
	}

	if err := emitGray(dst, u, eps); err != nil {
		return err
	}
	if cond != nil {
		return cond.Close()
	}

	return nil
}

func emitGray(dst gate.Sink, u Uniform, eps float64) error {
	k := len(u.Controls)
	open := make([]bool, k)

	flush := func() error {
		for pos, pending := range open {
			if !pending {
				continue
			}
			cx, err := gate.NewCNOT(u.Controls[pos], u.Target)
			if err != nil {
				return err
			}
			if err := dst.Append(cx); err != nil {
				return err
			}
			open[pos] = false
		}

		return nil
	}

	for i, angle := range u.Angles {
		if math.Abs(angle) > eps {
			if err := flush(); err != nil {
				return err
			}
			op, err := gate.NewRotation(u.Axis, u.Target, angle)
			if err != nil {
				return err
			}
			if err := dst.Append(op); err != nil {
				return err
			}
		}
		if k > 0 {
			pos := bitutil.GrayIncBit(i, k)
			open[pos] = !open[pos]
		}
	}

	return flush()
}

// Expand emits u as one multi-controlled rotation per control pattern whose
// angle exceeds eps, in natural pattern order. Pattern i requires the
// controls to hold BinaryDigits(i, k). This is the uncompressed reference
// form; Angles must be in natural order.
func Expand(sink gate.Sink, u Uniform, eps float64, opts ...Option) error {
	if err := u.Validate(); err != nil {
		return err
	}
	o := gather(opts)
	dst := sink
	var cond *gate.Conditioned
	if o.outer != nil {
		var err error
		if cond, err = gate.Condition(sink, o.outer, o.states); err != nil {
			return err
		}
		dst = cond
	}

	k := len(u.Controls)
	for i, angle := range u.Angles {
		if math.Abs(angle) <= eps {
			continue
		}
		op, err := gate.NewRotation(u.Axis, u.Target, angle)
		if err != nil {
			return err
		}
		if k > 0 {
			if op, err = op.WithControls(u.Controls, bitutil.BinaryDigits(i, k)); err != nil {
				return err
			}
		}
		if err := dst.Append(op); err != nil {
			return err
		}
	}
	if cond != nil {
		return cond.Close()
	}

	return nil
}
