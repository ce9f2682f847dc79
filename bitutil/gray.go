// SPDX-License-Identifier: MIT

package bitutil

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// GrayCode returns the binary-reflected Gray code of x: x ^ (x >> 1).
func GrayCode[T constraints.Integer](x T) T {
	return x ^ (x >> 1)
}

// DiffGrayIndex returns the position of the bit at which GrayCode(a) and
// GrayCode(b) differ, counted from the most significant of length bits
// (position 0 is the leftmost bit).
//
// For consecutive integers the two codes differ in exactly one bit and the
// result is always in [0, length). For other pairs the highest differing
// bit is reported. When a == b there is no differing bit and -1 is returned.
//
// Complexity: O(1).
func DiffGrayIndex(a, b, length int) int {
	diff := uint(GrayCode(a) ^ GrayCode(b))
	if diff == 0 {
		return -1
	}

	// floor(log2(diff)) is the index of the highest set bit.
	return length - bits.Len(diff)
}

// GrayIncBit returns the position (0 = most significant of length bits) of
// the bit that toggles when moving from GrayCode(i) to GrayCode(i+1). The
// last code of the cycle, i = 2^length-1, wraps back to code 0 by toggling
// the most significant bit, so 0 is returned for it.
func GrayIncBit(i, length int) int {
	if i == 1<<length-1 {
		return 0
	}

	return DiffGrayIndex(i, i+1, length)
}
