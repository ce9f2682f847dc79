// SPDX-License-Identifier: MIT

package angletree

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/blockenc/bitutil"
)

// AssembleVector builds the angle tree of v.
//
// NormMode: v holds magnitudes (isReal=false) or signed real amplitudes
// (isReal=true). The leaf layer is decomposed with DecomposeNorms, or with
// DecomposeRealNorms when isReal, and every further layer with
// DecomposeNorms on the previous layer's norms until one norm remains.
// All angles are doubled.
//
// PhaseMode: v holds phases; DecomposePhaseTree is applied once and isReal
// is ignored.
//
// Errors:
//   - ErrInvalidDimension if len(v) is not a power of two ≥ 2.
//   - ErrUnknownMode for any other mode.
func AssembleVector(v []float64, mode Mode, isReal bool) (*Tree, error) {
	switch mode {
	case NormMode:
		return normTree(v, isReal)
	case PhaseMode:
		return phaseTree(v)
	default:
		return nil, fmt.Errorf("AssembleVector: mode %d: %w", mode, ErrUnknownMode)
	}
}

func normTree(v []float64, isReal bool) (*Tree, error) {
	n, err := depth(len(v))
	if err != nil {
		return nil, fmt.Errorf("AssembleVector: %w", err)
	}

	var norms, angles []float64
	if isReal {
		norms, angles, err = DecomposeRealNorms(v)
	} else {
		norms, angles, err = DecomposeNorms(v)
	}
	if err != nil {
		return nil, err
	}

	layers := make([][]float64, n)
	layers[n-1] = angles
	for l := n - 2; l >= 0; l-- {
		norms, angles, err = DecomposeNorms(norms)
		if err != nil {
			return nil, err
		}
		layers[l] = angles
	}
	for _, layer := range layers {
		floats.Scale(2, layer)
	}

	return &Tree{Mode: NormMode, Layers: layers}, nil
}

func phaseTree(v []float64) (*Tree, error) {
	n, err := depth(len(v))
	if err != nil {
		return nil, fmt.Errorf("AssembleVector: %w", err)
	}
	flat, err := DecomposePhaseTree(v)
	if err != nil {
		return nil, err
	}

	t := &Tree{Mode: PhaseMode, Root: flat[0], Layers: make([][]float64, n)}
	for l := 0; l < n; l++ {
		t.Layers[l] = flat[1<<l : 1<<(l+1)]
	}

	return t, nil
}

func depth(length int) (int, error) {
	if err := validateLength(length); err != nil {
		return 0, err
	}

	return bitutil.Log2(length)
}

// MatrixTree holds the angle tables of a 2^n×2^n matrix.
//
//   - Norms  — (2^n-1)×(2^n+1). Column j < 2^n is the flat norm tree of
//     column j; column 2^n is the norm tree of the per-column Frobenius
//     norms (the global normalization stage).
//   - Phases — 2^n×2^n, column j is the flat phase tree of column j.
//     Nil when the matrix was decomposed as real.
type MatrixTree struct {
	N      int
	Real   bool
	Norms  *mat.Dense
	Phases *mat.Dense
}

// AssembleMatrix decomposes every column of m.
//
// When isReal, only the real parts are used and each column is decomposed
// with signed real leaves; no phase table is built. Otherwise magnitudes
// feed the norm trees and arguments feed the phase trees.
//
// Errors:
//   - ErrInvalidDimension if m is not square with a power-of-two side ≥ 2.
//
// Complexity: O(4^n) time and memory.
func AssembleMatrix(m *mat.CDense, isReal bool) (*MatrixTree, error) {
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("AssembleMatrix: %dx%d is not square: %w", r, c, ErrInvalidDimension)
	}
	n, err := depth(r)
	if err != nil {
		return nil, fmt.Errorf("AssembleMatrix: %w", err)
	}

	t := &MatrixTree{N: n, Real: isReal, Norms: mat.NewDense(r-1, c+1, nil)}
	if !isReal {
		t.Phases = mat.NewDense(r, c, nil)
	}

	colNorms := make([]float64, c)
	column := make([]complex128, r)
	mags := make([]float64, r)
	phases := make([]float64, r)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			column[i] = m.At(i, j)
		}

		if isReal {
			for i, z := range column {
				mags[i] = real(z)
			}
			colNorms[j] = floats.Norm(mags, 2)
		} else {
			for i, z := range column {
				mags[i] = cmplx.Abs(z)
				phases[i] = cmplx.Phase(z)
			}
			colNorms[j] = cmplxs.Norm(column, 2)

			pt, err := AssembleVector(phases, PhaseMode, false)
			if err != nil {
				return nil, fmt.Errorf("AssembleMatrix: column %d: %w", j, err)
			}
			t.Phases.SetCol(j, pt.Flat())
		}

		nt, err := AssembleVector(mags, NormMode, isReal)
		if err != nil {
			return nil, fmt.Errorf("AssembleMatrix: column %d: %w", j, err)
		}
		t.Norms.SetCol(j, nt.Flat())
	}

	global, err := AssembleVector(colNorms, NormMode, false)
	if err != nil {
		return nil, fmt.Errorf("AssembleMatrix: column norms: %w", err)
	}
	t.Norms.SetCol(c, global.Flat())

	return t, nil
}

// NormLayer returns layer l of every column's norm tree, flattened row-major:
// entry i·2^n + j is angle i of column j. The prior-target pattern i is the
// most significant part of the index and the column index j the least,
// matching a control list of prior targets followed by the index register.
func (t *MatrixTree) NormLayer(l int) ([]float64, error) {
	if err := t.checkLayer(l); err != nil {
		return nil, err
	}

	return rowsOf(t.Norms, 1<<l-1, 1<<(l+1)-1, 1<<t.N), nil
}

// GlobalLayer returns layer l of the column-norm tree (2^l entries).
func (t *MatrixTree) GlobalLayer(l int) ([]float64, error) {
	if err := t.checkLayer(l); err != nil {
		return nil, err
	}
	out := make([]float64, 1<<l)
	for i := range out {
		out[i] = t.Norms.At(1<<l-1+i, 1<<t.N)
	}

	return out, nil
}

// PhaseRoot returns the root sign term of every column (2^n entries), or nil
// for a real tree.
func (t *MatrixTree) PhaseRoot() []float64 {
	if t.Phases == nil {
		return nil
	}

	return rowsOf(t.Phases, 0, 1, 1<<t.N)
}

// PhaseLayer returns layer l of every column's phase tree, flattened like
// NormLayer, or nil for a real tree.
func (t *MatrixTree) PhaseLayer(l int) ([]float64, error) {
	if err := t.checkLayer(l); err != nil {
		return nil, err
	}
	if t.Phases == nil {
		return nil, nil
	}

	return rowsOf(t.Phases, 1<<l, 1<<(l+1), 1<<t.N), nil
}

func (t *MatrixTree) checkLayer(l int) error {
	if l < 0 || l >= t.N {
		return fmt.Errorf("layer %d of %d: %w", l, t.N, ErrLayerRange)
	}

	return nil
}

// rowsOf copies rows [from, to) and columns [0, cols) of m in row-major order.
func rowsOf(m *mat.Dense, from, to, cols int) []float64 {
	out := make([]float64, 0, (to-from)*cols)
	for i := from; i < to; i++ {
		out = append(out, m.RawRowView(i)[:cols]...)
	}

	return out
}
