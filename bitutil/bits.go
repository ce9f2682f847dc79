// SPDX-License-Identifier: MIT

package bitutil

import (
	"fmt"
	"math/bits"
)

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns k such that n == 1<<k.
//
// Errors:
//   - ErrInvalidDimension if n is not a positive power of two.
func Log2(n int) (int, error) {
	if !IsPowerOfTwo(n) {
		return 0, fmt.Errorf("Log2(%d): %w", n, ErrInvalidDimension)
	}

	return bits.TrailingZeros(uint(n)), nil
}

// BinaryDigits returns the most-significant-first binary digits of num,
// zero padded to width length. Width 0 yields an empty, non-nil list.
// Digits above the requested width are dropped.
//
// Example: BinaryDigits(5, 4) == []int{0, 1, 0, 1}.
func BinaryDigits(num, length int) []int {
	digits := make([]int, length)
	for i := length - 1; i >= 0; i-- {
		digits[i] = num & 1
		num >>= 1
	}

	return digits
}

// ReverseBits reverses the lower width bits of x.
// Example: ReverseBits(0b110, 3) == 0b011.
func ReverseBits(x, width int) int {
	result := 0
	for range width {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}

// BitReversePermute permutes a row-major rows×cols array along one axis by
// reversing the binary index of every position on that axis. Axis 0 moves
// whole rows, axis 1 moves columns within each row. A vector is passed as
// rows=len, cols=1 with axis 0.
//
// The input is not modified; a new slice is returned.
//
// Errors:
//   - ErrInvalidAxis if axis is not 0 or 1.
//   - ErrInvalidDimension if len(data) != rows*cols or the permuted axis
//     is not a power of two.
//
// Complexity: O(rows·cols) time and memory.
func BitReversePermute[T any](data []T, rows, cols, axis int) ([]T, error) {
	if axis != 0 && axis != 1 {
		return nil, fmt.Errorf("BitReversePermute: axis %d: %w", axis, ErrInvalidAxis)
	}
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("BitReversePermute: %d entries for %dx%d: %w", len(data), rows, cols, ErrInvalidDimension)
	}
	size := rows
	if axis == 1 {
		size = cols
	}
	width, err := Log2(size)
	if err != nil {
		return nil, fmt.Errorf("BitReversePermute: axis %d: %w", axis, err)
	}

	out := make([]T, len(data))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			nr, nc := r, c
			if axis == 0 {
				nr = ReverseBits(r, width)
			} else {
				nc = ReverseBits(c, width)
			}
			out[nr*cols+nc] = data[r*cols+c]
		}
	}

	return out, nil
}
