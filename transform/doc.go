// SPDX-License-Identifier: MIT

// Package transform reshapes per-layer rotation angles into the Gray-ordered
// form consumed by a uniformly controlled rotation.
//
// A uniformly controlled rotation over k controls applies angle a[p] when the
// controls hold pattern p. Written as alternating single-qubit rotations and
// CNOTs walking the Gray cycle, the rotation angles u must satisfy
//
//	a = M · u,   M[i][j] = (-1)^popcount(i & gray(j))
//
// whose solution is u = 2^-k · Mᵀ · a. The same result is obtained in
// O(k·2^k) by a scaled Walsh–Hadamard butterfly followed by a Gray
// permutation of the rows:
//
//	UniformAngles(a) = GrayPermutation(ScaledButterfly(a))
//
// MikkoMatrix builds M explicitly and is kept as a reference for tests.
package transform
