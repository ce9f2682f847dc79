// SPDX-License-Identifier: MIT

package bitutil_test

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blockenc/bitutil"
)

func TestGrayCode_KnownValues(t *testing.T) {
	want := []int{0, 1, 3, 2, 6, 7, 5, 4}
	for i, w := range want {
		assert.Equal(t, w, bitutil.GrayCode(i), "gray(%d)", i)
	}
	assert.Equal(t, uint8(0b1100), bitutil.GrayCode(uint8(0b1000)))
}

// TestDiffGrayIndex_Consecutive checks that every consecutive pair yields a
// single valid position and that the reported bit is the one that flips.
func TestDiffGrayIndex_Consecutive(t *testing.T) {
	for length := 1; length <= 8; length++ {
		for i := 0; i <= 1<<length-2; i++ {
			idx := bitutil.DiffGrayIndex(i, i+1, length)
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, length)

			diff := bitutil.GrayCode(i) ^ bitutil.GrayCode(i+1)
			require.Equal(t, 1, bits.OnesCount(uint(diff)), "consecutive codes differ in one bit")
			assert.Equal(t, 1<<(length-1-idx), diff, "i=%d length=%d", i, length)
		}
	}
}

func TestDiffGrayIndex_Equal(t *testing.T) {
	assert.Equal(t, -1, bitutil.DiffGrayIndex(3, 3, 4))
}

func TestGrayIncBit_Wraps(t *testing.T) {
	assert.Equal(t, 1, bitutil.GrayIncBit(0, 2)) // 00 -> 01
	assert.Equal(t, 0, bitutil.GrayIncBit(1, 2)) // 01 -> 11
	assert.Equal(t, 1, bitutil.GrayIncBit(2, 2)) // 11 -> 10
	assert.Equal(t, 0, bitutil.GrayIncBit(3, 2)) // 10 -> 00 (wrap)
}

func TestBinaryDigits(t *testing.T) {
	assert.Equal(t, []int{0, 1, 0, 1}, bitutil.BinaryDigits(5, 4))
	assert.Equal(t, []int{1, 1}, bitutil.BinaryDigits(3, 2))
	assert.Equal(t, []int{1}, bitutil.BinaryDigits(3, 1), "digits above width are dropped")

	empty := bitutil.BinaryDigits(0, 0)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestLog2(t *testing.T) {
	k, err := bitutil.Log2(1)
	require.NoError(t, err)
	assert.Equal(t, 0, k)

	k, err = bitutil.Log2(64)
	require.NoError(t, err)
	assert.Equal(t, 6, k)

	for _, bad := range []int{0, -4, 3, 12} {
		_, err = bitutil.Log2(bad)
		assert.ErrorIs(t, err, bitutil.ErrInvalidDimension, "n=%d", bad)
	}
}

func TestReverseBits(t *testing.T) {
	assert.Equal(t, 0b011, bitutil.ReverseBits(0b110, 3))
	assert.Equal(t, 0b1000, bitutil.ReverseBits(1, 4))
	assert.Equal(t, 0, bitutil.ReverseBits(7, 0))
}

func TestBitReversePermute_Vector(t *testing.T) {
	v := []int{0, 1, 2, 3, 4, 5, 6, 7}
	got, err := bitutil.BitReversePermute(v, len(v), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 2, 6, 1, 5, 3, 7}, got)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, v, "input must stay untouched")

	back, err := bitutil.BitReversePermute(got, len(got), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, v, back, "bit reversal is an involution")
}

func TestBitReversePermute_MatrixAxes(t *testing.T) {
	// 2x4 row-major matrix.
	m := []string{
		"a0", "a1", "a2", "a3",
		"b0", "b1", "b2", "b3",
	}
	cols, err := bitutil.BitReversePermute(m, 2, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a0", "a2", "a1", "a3", "b0", "b2", "b1", "b3"}, cols)

	rows, err := bitutil.BitReversePermute(m, 2, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, m, rows, "a 1-bit axis is its own reversal")
}

func TestBitReversePermute_Errors(t *testing.T) {
	_, err := bitutil.BitReversePermute([]int{1, 2, 3}, 3, 1, 0)
	assert.ErrorIs(t, err, bitutil.ErrInvalidDimension)

	_, err = bitutil.BitReversePermute([]int{1, 2}, 2, 2, 0)
	assert.ErrorIs(t, err, bitutil.ErrInvalidDimension, "length must match shape")

	_, err = bitutil.BitReversePermute([]int{1, 2}, 2, 1, 2)
	assert.ErrorIs(t, err, bitutil.ErrInvalidAxis)
}
