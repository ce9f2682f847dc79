// SPDX-License-Identifier: MIT

package sim

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/blockenc/gate"
)

// StateVector holds 2^NumQubits amplitudes and applies ops in place.
// It implements gate.Sink.
type StateVector struct {
	amps      []complex128
	numQubits int
}

// NewStateVector returns |0…0⟩ on numQubits qubits.
func NewStateVector(numQubits int) (*StateVector, error) {
	return NewBasisState(numQubits, 0)
}

// NewBasisState returns the computational basis state with (little-endian)
// index on numQubits qubits.
func NewBasisState(numQubits, index int) (*StateVector, error) {
	if numQubits < 0 || numQubits > MaxQubits {
		return nil, fmt.Errorf("NewBasisState(%d): %w", numQubits, ErrTooManyQubits)
	}
	size := 1 << numQubits
	if index < 0 || index >= size {
		return nil, fmt.Errorf("NewBasisState: index %d of %d: %w", index, size, ErrInvalidDimension)
	}
	amps := make([]complex128, size)
	amps[index] = 1

	return &StateVector{amps: amps, numQubits: numQubits}, nil
}

// NumQubits returns the register size.
func (s *StateVector) NumQubits() int { return s.numQubits }

// Amplitudes returns a copy of the amplitudes in little-endian order.
func (s *StateVector) Amplitudes() []complex128 {
	out := make([]complex128, len(s.amps))
	copy(out, s.amps)

	return out
}

// Norm returns the Euclidean norm of the state.
func (s *StateVector) Norm() float64 {
	sum := 0.0
	for _, a := range s.amps {
		sum += real(a * cmplx.Conj(a))
	}

	return math.Sqrt(sum)
}

// IsNormalized reports whether the norm is within tol of 1.
func (s *StateVector) IsNormalized(tol float64) bool {
	return scalar.EqualWithinAbs(s.Norm(), 1, tol)
}

// Append applies op to the state.
//
// Errors:
//   - op.Validate errors.
//   - ErrQubitOutOfRange if op touches a qubit ≥ NumQubits.
func (s *StateVector) Append(op gate.Op) error {
	if err := op.Validate(); err != nil {
		return err
	}
	for _, q := range append(append([]int(nil), op.Targets...), op.Controls...) {
		if q >= s.numQubits {
			return fmt.Errorf("Append %s: qubit %d of %d: %w", op, q, s.numQubits, ErrQubitOutOfRange)
		}
	}

	var mask, want int
	for i, c := range op.Controls {
		mask |= 1 << c
		if op.ControlBit(i) == 1 {
			want |= 1 << c
		}
	}

	if op.Kind == gate.SWAP {
		s.swap(op.Targets[0], op.Targets[1], mask, want)

		return nil
	}
	s.apply1(op.Target(), matrixOf(op), mask, want)

	return nil
}

// matrixOf returns the 2×2 matrix of a single-target op as
// {u00, u01, u10, u11}.
func matrixOf(op gate.Op) [4]complex128 {
	c := complex(math.Cos(op.Angle/2), 0)
	sn := math.Sin(op.Angle / 2)
	switch op.Kind {
	case gate.X:
		return [4]complex128{0, 1, 1, 0}
	case gate.Y:
		return [4]complex128{0, -1i, 1i, 0}
	case gate.Z:
		return [4]complex128{1, 0, 0, -1}
	case gate.H:
		h := complex(1/math.Sqrt2, 0)
		return [4]complex128{h, h, h, -h}
	case gate.RX:
		js := complex(0, -sn)
		return [4]complex128{c, js, js, c}
	case gate.RY:
		s := complex(sn, 0)
		return [4]complex128{c, -s, s, c}
	default: // gate.RZ
		phase := cmplx.Exp(complex(0, op.Angle/2))
		return [4]complex128{cmplx.Conj(phase), 0, 0, phase}
	}
}

func (s *StateVector) apply1(q int, u [4]complex128, mask, want int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit != 0 || i&mask != want {
			continue
		}
		j := i | bit
		a0, a1 := s.amps[i], s.amps[j]
		s.amps[i] = u[0]*a0 + u[1]*a1
		s.amps[j] = u[2]*a0 + u[3]*a1
	}
}

func (s *StateVector) swap(q1, q2, mask, want int) {
	bit1, bit2 := 1<<q1, 1<<q2
	for i := range s.amps {
		if i&bit1 == 0 || i&bit2 != 0 || i&mask != want {
			continue
		}
		j := (i &^ bit1) | bit2
		s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
	}
}

// Run executes c on |0…0⟩ over numQubits qubits.
func Run(c *gate.Circuit, numQubits int) (*StateVector, error) {
	s, err := NewStateVector(numQubits)
	if err != nil {
		return nil, err
	}
	if err := c.Replay(s); err != nil {
		return nil, err
	}

	return s, nil
}
