// SPDX-License-Identifier: MIT

package transform

import (
	"math/bits"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/blockenc/bitutil"
)

// MikkoMatrix returns the 2^k×2^k matrix M with
//
//	M[i][j] = (-1)^popcount(i & GrayCode(j))
//
// relating Gray-ordered rotation angles u to per-pattern angles a = M·u.
// It is dense and O(4^k); use UniformAngles for real work.
func MikkoMatrix(k int) *mat.Dense {
	n := 1 << k
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if bits.OnesCount(uint(i&bitutil.GrayCode(j)))%2 == 0 {
				m.Set(i, j, 1)
			} else {
				m.Set(i, j, -1)
			}
		}
	}

	return m
}
