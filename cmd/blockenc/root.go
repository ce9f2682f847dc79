// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/blockenc/config"
)

type flagValues struct {
	configPath string
	cfg        config.Config
}

func newRootCmd(out io.Writer) *cobra.Command {
	var fv flagValues
	cmd := &cobra.Command{
		Use:           "blockenc",
		Short:         "Compile and verify state-preparation and block-encoding circuits",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, fv)
			if err != nil {
				return err
			}
			logger, err := cfg.CreateLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			logger.Debug("configuration", zap.Any("config", cfg))
			return run(cfg, logger, out)
		},
	}

	f := cmd.Flags()
	f.StringVar(&fv.configPath, "config", "", "YAML config file")
	f.StringVar(&fv.cfg.Mode, "mode", "", "state or block")
	f.IntVar(&fv.cfg.Qubits, "qubits", 0, "number of qubits n")
	f.Float64Var(&fv.cfg.Epsilon, "epsilon", 0, "drop angles with |θ| ≤ epsilon")
	f.BoolVar(&fv.cfg.Real, "real", false, "real inputs, RY gates only")
	f.BoolVar(&fv.cfg.Uncompressed, "uncompressed", false, "one multi-controlled rotation per pattern")
	f.Int64Var(&fv.cfg.Seed, "seed", 0, "random seed")
	f.IntVar(&fv.cfg.Trials, "trials", 0, "number of random inputs")
	f.StringVar(&fv.cfg.QASMPath, "qasm", "", "write the last circuit as OpenQASM 3")
	f.BoolVar(&fv.cfg.Debug, "debug", false, "debug logging")

	return cmd
}

// resolveConfig layers the config file, the environment and explicitly set
// flags, then applies defaults and validates.
func resolveConfig(cmd *cobra.Command, fv flagValues) (config.Config, error) {
	var cfg config.Config
	var err error
	if fv.configPath != "" {
		if cfg, err = config.Load(fv.configPath); err != nil {
			return cfg, err
		}
	}
	if cfg, err = cfg.FromEnv(); err != nil {
		return cfg, err
	}

	f := cmd.Flags()
	if f.Changed("mode") {
		cfg.Mode = fv.cfg.Mode
	}
	if f.Changed("qubits") {
		cfg.Qubits = fv.cfg.Qubits
	}
	if f.Changed("epsilon") {
		cfg.Epsilon = fv.cfg.Epsilon
	}
	if f.Changed("real") {
		cfg.Real = fv.cfg.Real
	}
	if f.Changed("uncompressed") {
		cfg.Uncompressed = fv.cfg.Uncompressed
	}
	if f.Changed("seed") {
		cfg.Seed = fv.cfg.Seed
	}
	if f.Changed("trials") {
		cfg.Trials = fv.cfg.Trials
	}
	if f.Changed("qasm") {
		cfg.QASMPath = fv.cfg.QASMPath
	}
	if f.Changed("debug") {
		cfg.Debug = fv.cfg.Debug
	}

	cfg = cfg.WithDefaults()
	return cfg, errors.Wrap(cfg.Validate(), "resolve config")
}
