// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/blockenc/bitutil"
)

// GrayPermutation returns a new slice whose entry i is v[GrayCode(i)].
func GrayPermutation(v []float64) ([]float64, error) {
	if !bitutil.IsPowerOfTwo(len(v)) {
		return nil, fmt.Errorf("GrayPermutation: length %d: %w", len(v), ErrInvalidDimension)
	}
	out := make([]float64, len(v))
	for i := range out {
		out[i] = v[bitutil.GrayCode(i)]
	}

	return out, nil
}

// GrayPermutationRows reorders the rows of m so that row i of the result is
// row GrayCode(i) of m.
func GrayPermutationRows(m *mat.Dense) (*mat.Dense, error) {
	r, c := m.Dims()
	if !bitutil.IsPowerOfTwo(r) {
		return nil, fmt.Errorf("GrayPermutationRows: %d rows: %w", r, ErrInvalidDimension)
	}
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		out.SetRow(i, m.RawRowView(bitutil.GrayCode(i)))
	}

	return out, nil
}

// UniformAngles converts angles given in natural control-pattern order into
// the Gray-ordered rotation angles of a uniformly controlled rotation.
func UniformAngles(angles []float64) ([]float64, error) {
	scaled, err := ScaledButterfly(angles)
	if err != nil {
		return nil, fmt.Errorf("UniformAngles: %w", err)
	}

	return GrayPermutation(scaled)
}

// UniformAnglesColumns is UniformAngles applied to every column of m.
func UniformAnglesColumns(m *mat.Dense) (*mat.Dense, error) {
	scaled, err := ScaledButterflyColumns(m)
	if err != nil {
		return nil, fmt.Errorf("UniformAnglesColumns: %w", err)
	}

	return GrayPermutationRows(scaled)
}
