// SPDX-License-Identifier: MIT

package angletree

import (
	"fmt"
	"math"

	"github.com/katalvlaran/blockenc/bitutil"
)

// DecomposePair returns the norm of (v0, v1) and the angle θ with
// cos θ = v0/norm. The zero pair yields (0, 0).
//
// Callers pass magnitudes (or norms of subtrees); v1's sign is not encoded.
// The arccos argument is clamped to [-1, 1] so rounding never yields NaN.
func DecomposePair(v0, v1 float64) (norm, angle float64) {
	norm = math.Hypot(v0, v1)
	if norm == 0 {
		return 0, 0
	}

	return norm, math.Acos(clamp(v0/norm, -1, 1))
}

// DecomposeRealPair returns the norm of (v0, v1) and the argument of
// v0 + i·v1 reduced to [0, 2π). Unlike DecomposePair it keeps the signs of
// both entries, so it serves signed real data. The zero pair yields (0, 0).
func DecomposeRealPair(v0, v1 float64) (norm, angle float64) {
	if v0 == 0 && v1 == 0 {
		return 0, 0
	}
	norm = math.Hypot(v0, v1)
	angle = math.Atan2(v1/norm, v0/norm)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	return norm, angle
}

// DecomposeNorms splits v into consecutive pairs and decomposes each with
// DecomposePair. Both results have len(v)/2 entries and keep pair order.
//
// Errors:
//   - ErrInvalidDimension if len(v) is not a power of two ≥ 2.
func DecomposeNorms(v []float64) (norms, angles []float64, err error) {
	return decomposeLayer("DecomposeNorms", v, DecomposePair)
}

// DecomposeRealNorms is DecomposeNorms with DecomposeRealPair as the pair rule.
func DecomposeRealNorms(v []float64) (norms, angles []float64, err error) {
	return decomposeLayer("DecomposeRealNorms", v, DecomposeRealPair)
}

func decomposeLayer(tag string, v []float64, pair func(v0, v1 float64) (float64, float64)) ([]float64, []float64, error) {
	if err := validateLength(len(v)); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", tag, err)
	}
	half := len(v) / 2
	norms := make([]float64, half)
	angles := make([]float64, half)
	for i := 0; i < half; i++ {
		norms[i], angles[i] = pair(v[2*i], v[2*i+1])
	}

	return norms, angles, nil
}

// DecomposePhaseTree maps a length-2^n phase vector onto its phase tree:
// entry 0 is the root sign term, entries [2^l, 2^(l+1)) are the layer-l
// phase differences. The input is not modified.
//
// Round i = 1..n works on the first 2l entries, l = 2^(n-i):
//
//	front[j]  = (old[2j] + old[2j+1]) / 2
//	back[l+j] = -old[2j] + old[2j+1]
//
// and the last surviving pair becomes root = -old[0] - old[1].
//
// Errors:
//   - ErrInvalidDimension if len(phases) is not a power of two ≥ 2.
//
// Complexity: O(2^n) time, O(2^n) memory.
func DecomposePhaseTree(phases []float64) ([]float64, error) {
	if err := validateLength(len(phases)); err != nil {
		return nil, fmt.Errorf("DecomposePhaseTree: %w", err)
	}
	buf := make([]float64, len(phases))
	copy(buf, phases)
	scratch := make([]float64, len(phases))

	for l := len(phases) / 2; l >= 1; l /= 2 {
		scratch = phaseRound(buf, scratch, l)
	}
	// scratch still holds the inputs of the final (l = 1) round.
	buf[0] = -scratch[0] - scratch[1]

	return buf, nil
}

// phaseRound performs one round over buf[:2l], keeping the round's inputs in
// scratch, and returns scratch.
func phaseRound(buf, scratch []float64, l int) []float64 {
	copy(scratch[:2*l], buf[:2*l])
	for j := 0; j < l; j++ {
		x, y := scratch[2*j], scratch[2*j+1]
		buf[j] = (x + y) / 2
		buf[l+j] = y - x
	}

	return scratch
}

func validateLength(n int) error {
	if n < 2 || !bitutil.IsPowerOfTwo(n) {
		return fmt.Errorf("length %d: %w", n, ErrInvalidDimension)
	}

	return nil
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
