// SPDX-License-Identifier: MIT

// Package bitutil collects the small bit-twiddling primitives shared by the
// angle transforms, the rotation compiler and the simulator readback.
//
// What lives here:
//
//   - GrayCode / DiffGrayIndex  — binary-reflected Gray code and the single
//     bit that flips between two consecutive codes, counted from the most
//     significant of a fixed width (0 = leftmost control qubit).
//   - BinaryDigits              — zero-padded, most-significant-first digit lists
//     used as control-state patterns.
//   - ReverseBits / BitReversePermute — index reversal used to translate between
//     the engine's qubit order (qubit 0 is the most significant bit) and a
//     backend's little-endian order (qubit 0 is bit 0).
//   - Log2 / IsPowerOfTwo       — dimension validation.
//
// Every function is pure, deterministic and allocation-free except where a new
// slice is returned.
package bitutil
