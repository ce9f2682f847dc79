// SPDX-License-Identifier: MIT

package angletree

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// PhaseTreeMatrix returns the size×size matrix P with
// DecomposePhaseTree(p) == P·p. It is built recursively from the seed
// [[-1,-1],[-1,1]] by stacking kron(M, [½,½]) over kron(I, [-1,1]).
//
// It is the slow reference form of DecomposePhaseTree, O(size²) memory.
//
// Errors:
//   - ErrInvalidDimension if size is not a power of two ≥ 2.
func PhaseTreeMatrix(size int) (*mat.Dense, error) {
	if err := validateLength(size); err != nil {
		return nil, fmt.Errorf("PhaseTreeMatrix: %w", err)
	}

	m := mat.NewDense(2, 2, []float64{-1, -1, -1, 1})
	for k := 2; k != size; k *= 2 {
		upper := mat.NewDense(k, 2*k, nil)
		lower := mat.NewDense(k, 2*k, nil)
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				v := m.At(i, j) / 2
				upper.Set(i, 2*j, v)
				upper.Set(i, 2*j+1, v)
			}
			lower.Set(i, 2*i, -1)
			lower.Set(i, 2*i+1, 1)
		}

		var next mat.Dense
		next.Stack(upper, lower)
		m = &next
	}

	return m, nil
}
