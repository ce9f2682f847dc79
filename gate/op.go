// SPDX-License-Identifier: MIT

package gate

import (
	"fmt"
	"strings"
)

// Op is one emitted operation.
//
// Fields:
//   - Kind     — gate kind.
//   - Targets  — one qubit, two for SWAP.
//   - Controls — ordered control qubits; empty for an unconditioned gate.
//   - Pattern  — required control bits, one 0/1 per control. Nil means every
//     control must be 1.
//   - Angle    — rotation angle for RX/RY/RZ, zero otherwise.
//
// Ops are values; constructors and Circuit copy the slices they receive so an
// emitted op is never aliased by the emitter.
type Op struct {
	Kind     Kind
	Targets  []int
	Controls []int
	Pattern  []int
	Angle    float64
}

// NewRotation returns an unconditioned rotation about axis.
//
// Errors:
//   - ErrUnsupportedGateKind if axis is not RX, RY or RZ.
//   - ErrQubitRange if target is negative.
func NewRotation(axis Kind, target int, angle float64) (Op, error) {
	if !axis.IsRotation() {
		return Op{}, fmt.Errorf("NewRotation: %s: %w", axis, ErrUnsupportedGateKind)
	}
	op := Op{Kind: axis, Targets: []int{target}, Angle: angle}

	return op, op.Validate()
}

// NewGate returns an unconditioned X, Y, Z or H gate.
func NewGate(kind Kind, target int) (Op, error) {
	switch kind {
	case X, Y, Z, H:
	default:
		return Op{}, fmt.Errorf("NewGate: %s: %w", kind, ErrUnsupportedGateKind)
	}
	op := Op{Kind: kind, Targets: []int{target}}

	return op, op.Validate()
}

// NewCNOT returns X on target controlled by control.
func NewCNOT(control, target int) (Op, error) {
	op := Op{Kind: X, Targets: []int{target}, Controls: []int{control}}

	return op, op.Validate()
}

// NewSwap returns SWAP on qubits a and b.
func NewSwap(a, b int) (Op, error) {
	op := Op{Kind: SWAP, Targets: []int{a, b}}

	return op, op.Validate()
}

// Target returns the first target qubit.
func (o Op) Target() int { return o.Targets[0] }

// IsCNOT reports whether o is an X gate with exactly one control that must be 1.
func (o Op) IsCNOT() bool {
	return o.Kind == X && len(o.Controls) == 1 && (o.Pattern == nil || o.Pattern[0] == 1)
}

// ControlBit returns the value control i must hold for o to act.
func (o Op) ControlBit(i int) int {
	if o.Pattern == nil {
		return 1
	}

	return o.Pattern[i]
}

// Validate checks the structural invariants of o.
//
// Errors:
//   - ErrUnsupportedGateKind for an unknown kind.
//   - ErrQubitRange for a wrong target count, a negative qubit or a qubit
//     appearing twice.
//   - ErrInconsistentControlSpec for a pattern whose length differs from the
//     control list or that holds values other than 0 and 1.
func (o Op) Validate() error {
	if !o.Kind.Valid() {
		return fmt.Errorf("Validate: %s: %w", o.Kind, ErrUnsupportedGateKind)
	}
	want := 1
	if o.Kind == SWAP {
		want = 2
	}
	if len(o.Targets) != want {
		return fmt.Errorf("Validate: %s with %d targets: %w", o.Kind, len(o.Targets), ErrQubitRange)
	}

	seen := make(map[int]struct{}, len(o.Targets)+len(o.Controls))
	for _, q := range append(append([]int(nil), o.Targets...), o.Controls...) {
		if q < 0 {
			return fmt.Errorf("Validate: qubit %d: %w", q, ErrQubitRange)
		}
		if _, dup := seen[q]; dup {
			return fmt.Errorf("Validate: qubit %d used twice: %w", q, ErrQubitRange)
		}
		seen[q] = struct{}{}
	}

	if o.Pattern != nil {
		if len(o.Pattern) != len(o.Controls) {
			return fmt.Errorf("Validate: %d controls, %d states: %w", len(o.Controls), len(o.Pattern), ErrInconsistentControlSpec)
		}
		for _, b := range o.Pattern {
			if b != 0 && b != 1 {
				return fmt.Errorf("Validate: control state %d: %w", b, ErrInconsistentControlSpec)
			}
		}
	}

	return nil
}

// Clone returns a deep copy of o.
func (o Op) Clone() Op {
	out := o
	out.Targets = cloneInts(o.Targets)
	out.Controls = cloneInts(o.Controls)
	out.Pattern = cloneInts(o.Pattern)

	return out
}

// Inverse returns the adjoint of o. Rotations flip the sign of their angle;
// X, Y, Z, H and SWAP are self-inverse.
func (o Op) Inverse() Op {
	out := o.Clone()
	if out.Kind.IsRotation() {
		out.Angle = -out.Angle
	}

	return out
}

// WithControls returns a copy of o additionally conditioned on controls,
// which are placed before o's own controls. states gives the required value
// of each new control; nil means all ones.
func (o Op) WithControls(controls, states []int) (Op, error) {
	if states != nil && len(states) != len(controls) {
		return Op{}, fmt.Errorf("WithControls: %d controls, %d states: %w", len(controls), len(states), ErrInconsistentControlSpec)
	}

	out := o.Clone()
	out.Controls = append(cloneInts(controls), o.Controls...)
	if states != nil || o.Pattern != nil {
		pattern := make([]int, 0, len(out.Controls))
		if states != nil {
			pattern = append(pattern, states...)
		} else {
			pattern = append(pattern, ones(len(controls))...)
		}
		if o.Pattern != nil {
			pattern = append(pattern, o.Pattern...)
		} else {
			pattern = append(pattern, ones(len(o.Controls))...)
		}
		out.Pattern = pattern
	}

	return out, out.Validate()
}

// String renders o compactly, e.g. "RY(0.5) q2 | c[0 1]=[1 0]".
func (o Op) String() string {
	var b strings.Builder
	b.WriteString(o.Kind.String())
	if o.Kind.IsRotation() {
		fmt.Fprintf(&b, "(%g)", o.Angle)
	}
	for _, q := range o.Targets {
		fmt.Fprintf(&b, " q%d", q)
	}
	if len(o.Controls) > 0 {
		fmt.Fprintf(&b, " | c%v", o.Controls)
		if o.Pattern != nil {
			fmt.Fprintf(&b, "=%v", o.Pattern)
		}
	}

	return b.String()
}

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s))
	copy(out, s)

	return out
}

func ones(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = 1
	}

	return out
}
