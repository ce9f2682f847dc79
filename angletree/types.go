// SPDX-License-Identifier: MIT

package angletree

// Mode selects which tree AssembleVector builds.
type Mode int

const (
	// NormMode builds the doubled RY angle tree from magnitudes.
	NormMode Mode = iota

	// PhaseMode builds the RZ angle tree from phases.
	PhaseMode
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case NormMode:
		return "norm"
	case PhaseMode:
		return "phase"
	default:
		return "unknown"
	}
}

// Tree is a layered angle tree for a vector of length 2^n.
//
// Fields:
//   - Mode   — which decomposition produced the tree.
//   - Root   — PhaseMode only: the global sign term applied before layer 0.
//   - Layers — Layers[l] holds 2^l angles, l = 0..n-1, root layer first.
type Tree struct {
	Mode   Mode
	Root   float64
	Layers [][]float64
}

// Depth returns n, the number of layers.
func (t *Tree) Depth() int { return len(t.Layers) }

// Flat returns the tree as one slice: the layers concatenated root first,
// preceded by Root for phase trees. Norm trees flatten to 2^n-1 entries,
// phase trees to 2^n.
func (t *Tree) Flat() []float64 {
	size := 1<<len(t.Layers) - 1
	if t.Mode == PhaseMode {
		size++
	}
	out := make([]float64, 0, size)
	if t.Mode == PhaseMode {
		out = append(out, t.Root)
	}
	for _, layer := range t.Layers {
		out = append(out, layer...)
	}

	return out
}
