// SPDX-License-Identifier: MIT

package sim

import (
	"fmt"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/blockenc/bitutil"
	"github.com/katalvlaran/blockenc/gate"
)

// PreparedState returns the amplitudes of s with qubit 0 as the most
// significant index bit.
func PreparedState(s *StateVector) ([]complex128, error) {
	return bitutil.BitReversePermute(s.amps, len(s.amps), 1, 0)
}

// RawUnitary returns the matrix of c on numQubits qubits in little-endian
// order: column j is c applied to basis state j.
//
// Complexity: O(4^q · len(c)) time, O(4^q) memory.
func RawUnitary(c *gate.Circuit, numQubits int) (*mat.CDense, error) {
	if numQubits < 0 || numQubits > MaxQubits/2 {
		return nil, fmt.Errorf("RawUnitary(%d): %w", numQubits, ErrTooManyQubits)
	}
	dim := 1 << numQubits
	u := mat.NewCDense(dim, dim, nil)
	for j := 0; j < dim; j++ {
		s, err := NewBasisState(numQubits, j)
		if err != nil {
			return nil, err
		}
		if err := c.Replay(s); err != nil {
			return nil, fmt.Errorf("RawUnitary: column %d: %w", j, err)
		}
		for i, a := range s.amps {
			u.Set(i, j, a)
		}
	}

	return u, nil
}

// Unitary returns the matrix of c on numQubits qubits with qubit 0 as the
// most significant bit of both row and column indices.
func Unitary(c *gate.Circuit, numQubits int) (*mat.CDense, error) {
	raw, err := RawUnitary(c, numQubits)
	if err != nil {
		return nil, err
	}
	dim := 1 << numQubits
	data := make([]complex128, 0, dim*dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			data = append(data, raw.At(i, j))
		}
	}
	if data, err = bitutil.BitReversePermute(data, dim, dim, 0); err != nil {
		return nil, err
	}
	if data, err = bitutil.BitReversePermute(data, dim, dim, 1); err != nil {
		return nil, err
	}

	return mat.NewCDense(dim, dim, data), nil
}

// EncodedBlock returns the top-left 2^n×2^n block of u, i.e. the block
// selected by the leading qubits all being |0⟩ when the trailing n qubits
// carry the index register.
func EncodedBlock(u *mat.CDense, n int) (*mat.CDense, error) {
	r, c := u.Dims()
	size := 1 << n
	if n < 0 || size > r || size > c {
		return nil, fmt.Errorf("EncodedBlock: %d index qubits in %dx%d: %w", n, r, c, ErrInvalidDimension)
	}
	block := mat.NewCDense(size, size, nil)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			block.Set(i, j, u.At(i, j))
		}
	}

	return block, nil
}

// VectorDistance returns ‖a-b‖₂. Lengths must match.
func VectorDistance(a, b []complex128) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("VectorDistance: %d vs %d: %w", len(a), len(b), ErrInvalidDimension)
	}
	diff := make([]complex128, len(a))
	for i := range a {
		diff[i] = a[i] - b[i]
	}

	return cmplxs.Norm(diff, 2), nil
}

// FrobeniusDistance returns ‖a-b‖_F. Shapes must match.
func FrobeniusDistance(a, b *mat.CDense) (float64, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return 0, fmt.Errorf("FrobeniusDistance: %dx%d vs %dx%d: %w", ar, ac, br, bc, ErrInvalidDimension)
	}
	diff := make([]complex128, 0, ar*ac)
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			diff = append(diff, a.At(i, j)-b.At(i, j))
		}
	}

	return cmplxs.Norm(diff, 2), nil
}
