// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/blockenc/config"
	"github.com/katalvlaran/blockenc/encode"
	"github.com/katalvlaran/blockenc/gate"
	"github.com/katalvlaran/blockenc/qasm"
	"github.com/katalvlaran/blockenc/sim"
)

// trial is one compiled and verified random input.
type trial struct {
	ops, depth, rotations, cnots, swaps int
	err                                 float64
}

func run(cfg config.Config, logger *zap.Logger, out io.Writer) error {
	opts := []encode.Option{
		encode.WithEpsilon(cfg.Epsilon),
		encode.WithLogger(logger.Named("encode")),
	}
	if cfg.Real {
		opts = append(opts, encode.WithReal())
	}
	if cfg.Uncompressed {
		opts = append(opts, encode.WithUncompressed())
	}

	results := make([]trial, 0, cfg.Trials)
	var last *gate.Circuit
	var width int
	for i := 0; i < cfg.Trials; i++ {
		var (
			t   trial
			c   *gate.Circuit
			err error
		)
		rng := trialRNG(cfg.Seed, i)
		switch cfg.Mode {
		case config.ModeBlock:
			c, t.err, err = blockTrial(rng, cfg, opts)
			width = 2 * cfg.Qubits
		default:
			c, t.err, err = stateTrial(rng, cfg, opts)
			width = cfg.Qubits
		}
		if err != nil {
			return errors.Wrapf(err, "trial %d", i)
		}
		t.ops, t.depth = c.Len(), c.Depth()
		t.rotations, t.cnots, t.swaps = c.RotationCount(), c.CNOTCount(), c.Count(gate.SWAP)
		logger.Info("trial",
			zap.Int("trial", i),
			zap.Int("ops", t.ops),
			zap.Int("depth", t.depth),
			zap.Int("cnots", t.cnots),
			zap.Float64("error", t.err),
		)
		results = append(results, t)
		last = c
	}

	if cfg.QASMPath != "" {
		b := qasm.NewBuilder(width)
		if err := last.Replay(b); err != nil {
			return errors.Wrap(err, "render qasm")
		}
		if err := os.WriteFile(cfg.QASMPath, []byte(b.String()), 0o644); err != nil {
			return errors.Wrap(err, "write qasm")
		}
	}

	_, err := fmt.Fprintln(out, render(cfg, results))
	return err
}

func randomVector(rng *rand.Rand, size int, isReal bool) []complex128 {
	v := make([]complex128, size)
	for i := range v {
		if isReal {
			v[i] = complex(rng.NormFloat64(), 0)
		} else {
			v[i] = complex(rng.NormFloat64(), rng.NormFloat64())
		}
	}
	cmplxs.Scale(complex(1/cmplxs.Norm(v, 2), 0), v)

	return v
}

func stateTrial(rng *rand.Rand, cfg config.Config, opts []encode.Option) (*gate.Circuit, float64, error) {
	n := cfg.Qubits
	state := randomVector(rng, 1<<n, cfg.Real)
	targets := make([]int, n)
	for i := range targets {
		targets[i] = i
	}

	c, err := encode.StatePreparation(state, targets, opts...)
	if err != nil {
		return nil, 0, err
	}
	sv, err := sim.Run(c, n)
	if err != nil {
		return nil, 0, err
	}
	if !sv.IsNormalized(errorThreshold) {
		return nil, 0, errors.Errorf("simulated state has norm %g", sv.Norm())
	}
	got, err := sim.PreparedState(sv)
	if err != nil {
		return nil, 0, err
	}
	d, err := sim.VectorDistance(got, state)

	return c, d, err
}

func blockTrial(rng *rand.Rand, cfg config.Config, opts []encode.Option) (*gate.Circuit, float64, error) {
	n := cfg.Qubits
	m := mat.NewCDense(1<<n, 1<<n, randomVector(rng, 1<<(2*n), cfg.Real))
	qubits := make([]int, 2*n)
	for i := range qubits {
		qubits[i] = i
	}

	c, err := encode.BlockEncoding(m, qubits, opts...)
	if err != nil {
		return nil, 0, err
	}
	u, err := sim.Unitary(c, 2*n)
	if err != nil {
		return nil, 0, err
	}
	block, err := sim.EncodedBlock(u, n)
	if err != nil {
		return nil, 0, err
	}
	d, err := sim.FrobeniusDistance(block, m)

	return c, d, err
}
