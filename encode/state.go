// SPDX-License-Identifier: MIT

package encode

import (
	"math/cmplx"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/blockenc/angletree"
	"github.com/katalvlaran/blockenc/bitutil"
	"github.com/katalvlaran/blockenc/gate"
)

// StatePreparation compiles the state-preparation circuit of state into a
// new gate.Circuit. See PrepareState.
func StatePreparation(state []complex128, targets []int, opts ...Option) (*gate.Circuit, error) {
	c := gate.NewCircuit()
	if err := PrepareState(c, state, targets, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// PrepareState streams a circuit mapping |0…0⟩ on targets to state into
// sink. state must be normalized; its length is 2^len(targets).
//
// Emission order:
//
//	RZ(root phase) on targets[0]            complex only
//	RY layer 0 on targets[0]
//	RY layer l on targets[l], controls targets[:l], l = 1..n-1
//	RZ phase layer l likewise, l = 0..n-1   complex only
//
// Errors:
//   - ErrInvalidDimension if len(state) is not a power of two ≥ 2 or
//     len(targets) != log2(len(state)).
//   - ErrInconsistentControlSpec, gate.ErrQubitRange for bad outer controls.
//   - Errors from sink; already emitted ops stay emitted.
func PrepareState(sink gate.Sink, state []complex128, targets []int, opts ...Option) error {
	o := gatherOptions(opts)
	n, err := bitutil.Log2(len(state))
	if err != nil || n == 0 {
		return errors.Wrapf(ErrInvalidDimension, "PrepareState: state length %d", len(state))
	}
	if len(targets) != n {
		return errors.Wrapf(ErrInvalidDimension, "PrepareState: %d targets for %d amplitudes", len(targets), len(state))
	}

	norms, phases, err := stateTrees(state, o.isReal)
	if err != nil {
		return errors.Wrap(err, "PrepareState")
	}

	p, err := newPlanner(sink, o)
	if err != nil {
		return errors.Wrap(err, "PrepareState")
	}
	o.log.Debug("state preparation",
		zap.Int("qubits", n),
		zap.Bool("real", o.isReal),
		zap.Bool("compressed", !o.uncompressed),
		zap.Float64("epsilon", o.eps),
	)

	if phases != nil {
		if err := p.uniform(p, "phase root", 0, gate.RZ, targets[0], nil, []float64{phases.Root}); err != nil {
			return errors.Wrap(err, "PrepareState")
		}
	}
	for l, layer := range norms.Layers {
		if err := p.uniform(p, "norm", l, gate.RY, targets[l], targets[:l], layer); err != nil {
			return errors.Wrap(err, "PrepareState")
		}
	}
	if phases != nil {
		for l, layer := range phases.Layers {
			if err := p.uniform(p, "phase", l, gate.RZ, targets[l], targets[:l], layer); err != nil {
				return errors.Wrap(err, "PrepareState")
			}
		}
	}

	return errors.Wrap(p.close(), "PrepareState")
}

// stateTrees returns the norm tree and, unless isReal, the phase tree.
func stateTrees(state []complex128, isReal bool) (*angletree.Tree, *angletree.Tree, error) {
	if isReal {
		re := make([]float64, len(state))
		for i, z := range state {
			re[i] = real(z)
		}
		norms, err := angletree.AssembleVector(re, angletree.NormMode, true)

		return norms, nil, err
	}

	mags := make([]float64, len(state))
	args := make([]float64, len(state))
	for i, z := range state {
		mags[i] = cmplx.Abs(z)
		args[i] = cmplx.Phase(z)
	}
	norms, err := angletree.AssembleVector(mags, angletree.NormMode, false)
	if err != nil {
		return nil, nil, err
	}
	phases, err := angletree.AssembleVector(args, angletree.PhaseMode, false)
	if err != nil {
		return nil, nil, err
	}

	return norms, phases, nil
}
