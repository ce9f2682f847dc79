// SPDX-License-Identifier: MIT

package angletree_test

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/blockenc/angletree"
)

const tol = 1e-12

var approx = cmpopts.EquateApprox(0, tol)

// unitVector returns a random vector of length 2^n with unit Euclidean norm.
// When nonNegative is set all entries are magnitudes.
func unitVector(rng *rand.Rand, n int, nonNegative bool) []float64 {
	v := make([]float64, 1<<n)
	for i := range v {
		v[i] = rng.NormFloat64()
		if nonNegative {
			v[i] = math.Abs(v[i])
		}
	}
	floats.Scale(1/floats.Norm(v, 2), v)

	return v
}

// amplitudes rebuilds a vector from a norm tree: each qubit layer contributes
// cos(θ/2) on bit 0 and sin(θ/2) on bit 1 of the current prefix.
func amplitudes(tree *angletree.Tree) []float64 {
	n := tree.Depth()
	out := make([]float64, 1<<n)
	for b := range out {
		amp := 1.0
		for l := 0; l < n; l++ {
			prefix := b >> (n - l)
			bit := (b >> (n - 1 - l)) & 1
			half := tree.Layers[l][prefix] / 2
			if bit == 0 {
				amp *= math.Cos(half)
			} else {
				amp *= math.Sin(half)
			}
		}
		out[b] = amp
	}

	return out
}

// phases rebuilds per-entry phases from a phase tree using the RZ convention
// RZ(θ) = diag(e^{-iθ/2}, e^{iθ/2}) and a root RZ applied to |0⟩.
func phases(tree *angletree.Tree) []float64 {
	n := tree.Depth()
	out := make([]float64, 1<<n)
	for b := range out {
		phi := -tree.Root / 2
		for l := 0; l < n; l++ {
			prefix := b >> (n - l)
			bit := (b >> (n - 1 - l)) & 1
			if bit == 0 {
				phi -= tree.Layers[l][prefix] / 2
			} else {
				phi += tree.Layers[l][prefix] / 2
			}
		}
		out[b] = phi
	}

	return out
}

func TestDecomposePair_ZeroVector(t *testing.T) {
	norm, angle := angletree.DecomposePair(0, 0)
	assert.Equal(t, 0.0, norm)
	assert.Equal(t, 0.0, angle)
	assert.False(t, math.IsNaN(angle))

	norm, angle = angletree.DecomposeRealPair(0, 0)
	assert.Equal(t, 0.0, norm)
	assert.Equal(t, 0.0, angle)
}

func TestDecomposePair_Values(t *testing.T) {
	norm, angle := angletree.DecomposePair(0, 2)
	assert.InDelta(t, 2, norm, tol)
	assert.InDelta(t, math.Pi/2, angle, tol)

	norm, angle = angletree.DecomposePair(1, 1)
	assert.InDelta(t, math.Sqrt2, norm, tol)
	assert.InDelta(t, math.Pi/4, angle, tol)
}

func TestDecomposeRealPair_KeepsSigns(t *testing.T) {
	cases := []struct {
		v0, v1, angle float64
	}{
		{1, 0, 0},
		{0, 1, math.Pi / 2},
		{-1, 0, math.Pi},
		{0, -1, 3 * math.Pi / 2},
		{-1, -1, 5 * math.Pi / 4},
	}
	for _, tc := range cases {
		norm, angle := angletree.DecomposeRealPair(tc.v0, tc.v1)
		assert.InDelta(t, math.Hypot(tc.v0, tc.v1), norm, tol)
		assert.InDelta(t, tc.angle, angle, tol, "(%v,%v)", tc.v0, tc.v1)
		assert.GreaterOrEqual(t, angle, 0.0)
		assert.Less(t, angle, 2*math.Pi)
	}
}

// TestBasisStateScenario follows the |00⟩ walkthrough: the real vector
// [1,0,0,0] decomposes into an all-zero tree.
func TestBasisStateScenario(t *testing.T) {
	norms, angles, err := angletree.DecomposeRealNorms([]float64{1, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, norms)
	assert.Equal(t, []float64{0, 0}, angles)

	norms, angles, err = angletree.DecomposeNorms(norms)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, norms)
	assert.Equal(t, []float64{0}, angles)

	tree, err := angletree.AssembleVector([]float64{1, 0, 0, 0}, angletree.NormMode, true)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, tree.Flat())
}

func TestDecomposeNorms_BadLength(t *testing.T) {
	for _, v := range [][]float64{nil, {1}, {1, 2, 3}} {
		_, _, err := angletree.DecomposeNorms(v)
		assert.ErrorIs(t, err, angletree.ErrInvalidDimension, "len=%d", len(v))
	}
	_, err := angletree.DecomposePhaseTree([]float64{1, 2, 3, 4, 5, 6})
	assert.ErrorIs(t, err, angletree.ErrInvalidDimension)
}

// TestPhaseTree_MatchesMatrix compares the fast butterfly against the
// explicit recursive matrix for every size up to 2^7.
func TestPhaseTree_MatchesMatrix(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 1; n <= 7; n++ {
		p := make([]float64, 1<<n)
		for i := range p {
			p[i] = (rng.Float64()*2 - 1) * math.Pi
		}
		fast, err := angletree.DecomposePhaseTree(p)
		require.NoError(t, err)

		ref, err := angletree.PhaseTreeMatrix(len(p))
		require.NoError(t, err)
		var want mat.VecDense
		want.MulVec(ref, mat.NewVecDense(len(p), p))

		if diff := cmp.Diff(want.RawVector().Data, fast, approx); diff != "" {
			t.Fatalf("n=%d (-matrix +fast):\n%s", n, diff)
		}
	}
}

func TestPhaseTreeMatrix_Seed(t *testing.T) {
	m, err := angletree.PhaseTreeMatrix(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1, -1, 1}, m.RawMatrix().Data)

	m, err = angletree.PhaseTreeMatrix(4)
	require.NoError(t, err)
	want := mat.NewDense(4, 4, []float64{
		-0.5, -0.5, -0.5, -0.5,
		-0.5, -0.5, 0.5, 0.5,
		-1, 1, 0, 0,
		0, 0, -1, 1,
	})
	assert.True(t, mat.EqualApprox(want, m, tol))
}

func TestDecomposePhaseTree_DoesNotMutate(t *testing.T) {
	p := []float64{0.1, 0.2, 0.3, 0.4}
	_, err := angletree.DecomposePhaseTree(p)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.4}, p)
}

func TestAssembleVector_NormRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for n := 1; n <= 6; n++ {
		v := unitVector(rng, n, true)
		tree, err := angletree.AssembleVector(v, angletree.NormMode, false)
		require.NoError(t, err)
		require.Equal(t, n, tree.Depth())
		for l, layer := range tree.Layers {
			assert.Len(t, layer, 1<<l)
		}
		assert.Len(t, tree.Flat(), 1<<n-1)

		if diff := cmp.Diff(v, amplitudes(tree), approx); diff != "" {
			t.Fatalf("n=%d (-want +rebuilt):\n%s", n, diff)
		}
	}
}

func TestAssembleVector_RealSignedRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for n := 1; n <= 5; n++ {
		v := unitVector(rng, n, false)
		tree, err := angletree.AssembleVector(v, angletree.NormMode, true)
		require.NoError(t, err)
		if diff := cmp.Diff(v, amplitudes(tree), approx); diff != "" {
			t.Fatalf("n=%d (-want +rebuilt):\n%s", n, diff)
		}
	}
}

func TestAssembleVector_PhaseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for n := 1; n <= 6; n++ {
		p := make([]float64, 1<<n)
		for i := range p {
			p[i] = (rng.Float64()*2 - 1) * math.Pi
		}
		tree, err := angletree.AssembleVector(p, angletree.PhaseMode, false)
		require.NoError(t, err)
		flat := tree.Flat()
		require.Len(t, flat, 1<<n)
		assert.Equal(t, tree.Root, flat[0])

		if diff := cmp.Diff(p, phases(tree), approx); diff != "" {
			t.Fatalf("n=%d (-want +rebuilt):\n%s", n, diff)
		}
	}
}

func TestAssembleVector_ZeroVector(t *testing.T) {
	tree, err := angletree.AssembleVector(make([]float64, 8), angletree.NormMode, false)
	require.NoError(t, err)
	for _, a := range tree.Flat() {
		assert.False(t, math.IsNaN(a))
		assert.Equal(t, 0.0, a)
	}
}

func TestAssembleVector_UnknownMode(t *testing.T) {
	_, err := angletree.AssembleVector([]float64{1, 0}, angletree.Mode(9), false)
	assert.ErrorIs(t, err, angletree.ErrUnknownMode)
	assert.Equal(t, "unknown", angletree.Mode(9).String())
}

func randomCDense(rng *rand.Rand, size int) *mat.CDense {
	data := make([]complex128, size*size)
	for i := range data {
		data[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}

	return mat.NewCDense(size, size, data)
}

func TestAssembleMatrix_Shapes(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	m := randomCDense(rng, 4)

	tree, err := angletree.AssembleMatrix(m, false)
	require.NoError(t, err)
	assert.Equal(t, 2, tree.N)

	r, c := tree.Norms.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 5, c)
	r, c = tree.Phases.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 4, c)

	realTree, err := angletree.AssembleMatrix(m, true)
	require.NoError(t, err)
	assert.Nil(t, realTree.Phases)
	assert.Nil(t, realTree.PhaseRoot())
	layer, err := realTree.PhaseLayer(0)
	require.NoError(t, err)
	assert.Nil(t, layer)
}

// TestAssembleMatrix_ColumnsAndGlobal checks every column against the vector
// decomposition and the extra column against the column-norm tree.
func TestAssembleMatrix_ColumnsAndGlobal(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	const size = 4
	m := randomCDense(rng, size)

	tree, err := angletree.AssembleMatrix(m, false)
	require.NoError(t, err)

	colNorms := make([]float64, size)
	for j := 0; j < size; j++ {
		mags := make([]float64, size)
		ph := make([]float64, size)
		for i := 0; i < size; i++ {
			mags[i] = cmplx.Abs(m.At(i, j))
			ph[i] = cmplx.Phase(m.At(i, j))
		}
		colNorms[j] = floats.Norm(mags, 2)

		nt, err := angletree.AssembleVector(mags, angletree.NormMode, false)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(nt.Flat(), mat.Col(nil, j, tree.Norms), approx))

		pt, err := angletree.AssembleVector(ph, angletree.PhaseMode, false)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(pt.Flat(), mat.Col(nil, j, tree.Phases), approx))
	}

	gt, err := angletree.AssembleVector(colNorms, angletree.NormMode, false)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(gt.Flat(), mat.Col(nil, size, tree.Norms), approx))

	g1, err := tree.GlobalLayer(1)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(gt.Layers[1], g1, approx))
}

func TestMatrixTree_LayerOrdering(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	const size = 4
	tree, err := angletree.AssembleMatrix(randomCDense(rng, size), false)
	require.NoError(t, err)

	layer, err := tree.NormLayer(1)
	require.NoError(t, err)
	require.Len(t, layer, 2*size)
	for i := 0; i < 2; i++ {
		for j := 0; j < size; j++ {
			assert.Equal(t, tree.Norms.At(1+i, j), layer[i*size+j])
		}
	}

	ph, err := tree.PhaseLayer(1)
	require.NoError(t, err)
	require.Len(t, ph, 2*size)
	assert.Equal(t, tree.Phases.At(3, 2), ph[1*size+2])
	assert.Equal(t, mat.Row(nil, 0, tree.Phases), tree.PhaseRoot())

	_, err = tree.NormLayer(2)
	assert.ErrorIs(t, err, angletree.ErrLayerRange)
	_, err = tree.GlobalLayer(-1)
	assert.ErrorIs(t, err, angletree.ErrLayerRange)
}

func TestAssembleMatrix_BadShape(t *testing.T) {
	_, err := angletree.AssembleMatrix(mat.NewCDense(2, 4, nil), false)
	assert.ErrorIs(t, err, angletree.ErrInvalidDimension)

	_, err = angletree.AssembleMatrix(mat.NewCDense(3, 3, nil), false)
	assert.ErrorIs(t, err, angletree.ErrInvalidDimension)

	_, err = angletree.AssembleMatrix(mat.NewCDense(1, 1, nil), false)
	assert.ErrorIs(t, err, angletree.ErrInvalidDimension)
}
