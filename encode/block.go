// SPDX-License-Identifier: MIT

package encode

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/blockenc/angletree"
	"github.com/katalvlaran/blockenc/gate"
)

// BlockEncoding compiles the block encoding of m into a new gate.Circuit.
// See EncodeMatrix.
func BlockEncoding(m *mat.CDense, qubits []int, opts ...Option) (*gate.Circuit, error) {
	c := gate.NewCircuit()
	if err := EncodeMatrix(c, m, qubits, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// EncodeMatrix streams a circuit whose unitary U satisfies
// (⟨0|ⁿ ⊗ I) U (|0⟩ⁿ ⊗ I) = m/‖m‖_F into sink. m is 2^n×2^n; qubits holds n
// working qubits followed by n index qubits. The block equals m itself when
// ‖m‖_F = 1.
//
// Errors:
//   - ErrInvalidDimension if m is not square with a power-of-two side ≥ 2
//     or len(qubits) != 2n.
//   - ErrInconsistentControlSpec, gate.ErrQubitRange for bad outer controls.
//   - Errors from sink; already emitted ops stay emitted.
func EncodeMatrix(sink gate.Sink, m *mat.CDense, qubits []int, opts ...Option) error {
	o := gatherOptions(opts)
	tree, err := angletree.AssembleMatrix(m, o.isReal)
	if err != nil {
		return errors.Wrap(err, "EncodeMatrix")
	}
	n := tree.N
	if len(qubits) != 2*n {
		return errors.Wrapf(ErrInvalidDimension, "EncodeMatrix: %d qubits for a %dx%d matrix", len(qubits), 1<<n, 1<<n)
	}
	work, index := qubits[:n], qubits[n:]

	p, err := newPlanner(sink, o)
	if err != nil {
		return errors.Wrap(err, "EncodeMatrix")
	}
	o.log.Debug("block encoding",
		zap.Int("qubits", n),
		zap.Bool("real", o.isReal),
		zap.Bool("compressed", !o.uncompressed),
		zap.Float64("epsilon", o.eps),
	)

	if err := prepColumns(p, tree, work, index); err != nil {
		return errors.Wrap(err, "EncodeMatrix")
	}

	for i := 0; i < n; i++ {
		sw, err := gate.NewSwap(work[i], index[i])
		if err != nil {
			return errors.Wrap(err, "EncodeMatrix: swap")
		}
		if err := p.Append(sw); err != nil {
			return errors.Wrap(err, "EncodeMatrix: swap")
		}
	}

	global := gate.NewCircuit()
	for l := 0; l < n; l++ {
		angles, err := tree.GlobalLayer(l)
		if err != nil {
			return errors.Wrap(err, "EncodeMatrix")
		}
		floats.Scale(-1, angles)
		if err := p.uniform(global, "global", l, gate.RY, work[l], work[:l], angles); err != nil {
			return errors.Wrap(err, "EncodeMatrix")
		}
	}
	if err := global.Reverse().Replay(p); err != nil {
		return errors.Wrap(err, "EncodeMatrix: global stage")
	}

	return errors.Wrap(p.close(), "EncodeMatrix")
}

// prepColumns emits the column-preparation stage: every layer is controlled
// by the prior working qubits and the whole index register.
func prepColumns(p *planner, tree *angletree.MatrixTree, work, index []int) error {
	n := tree.N
	if root := tree.PhaseRoot(); root != nil {
		if err := p.uniform(p, "prep phase root", 0, gate.RZ, work[0], index, root); err != nil {
			return err
		}
	}
	for l := 0; l < n; l++ {
		angles, err := tree.NormLayer(l)
		if err != nil {
			return err
		}
		if err := p.uniform(p, "prep norm", l, gate.RY, work[l], prefixControls(work, l, index), angles); err != nil {
			return err
		}
	}
	if tree.Real {
		return nil
	}
	for l := 0; l < n; l++ {
		angles, err := tree.PhaseLayer(l)
		if err != nil {
			return err
		}
		if err := p.uniform(p, "prep phase", l, gate.RZ, work[l], prefixControls(work, l, index), angles); err != nil {
			return err
		}
	}

	return nil
}
