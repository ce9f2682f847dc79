// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/blockenc/bitutil"
)

// ScaledButterfly applies the scaled fast Walsh–Hadamard transform to v and
// returns the result in a new slice.
//
// For h = 1..log2(len(v)), every pair (x, y) at distance 2^(h-1) inside a
// block of size 2^h is replaced by ((x+y)/2, (x-y)/2).
//
// Errors:
//   - ErrInvalidDimension if len(v) is not a power of two.
//
// Complexity: O(n log n) time, O(n) memory.
func ScaledButterfly(v []float64) ([]float64, error) {
	k, err := bitutil.Log2(len(v))
	if err != nil {
		return nil, fmt.Errorf("ScaledButterfly: %w", err)
	}
	out := make([]float64, len(v))
	copy(out, v)
	butterfly(out, k)

	return out, nil
}

// butterfly runs the scaled transform in place over 2^k entries.
func butterfly(v []float64, k int) {
	n := len(v)
	for h := 1; h <= k; h++ {
		half := 1 << (h - 1)
		for start := 0; start < n; start += 2 * half {
			for j := start; j < start+half; j++ {
				x, y := v[j], v[j+half]
				v[j] = (x + y) / 2
				v[j+half] = (x - y) / 2
			}
		}
	}
}

// ScaledButterflyColumns applies ScaledButterfly independently to every
// column of m. m is left untouched.
//
// Errors:
//   - ErrInvalidDimension if the row count is not a power of two.
func ScaledButterflyColumns(m *mat.Dense) (*mat.Dense, error) {
	r, c := m.Dims()
	k, err := bitutil.Log2(r)
	if err != nil {
		return nil, fmt.Errorf("ScaledButterflyColumns: %w", err)
	}

	out := mat.NewDense(r, c, nil)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, m)
		butterfly(col, k)
		out.SetCol(j, col)
	}

	return out, nil
}
