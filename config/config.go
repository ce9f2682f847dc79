// SPDX-License-Identifier: MIT

package config

import (
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// Modes.
const (
	ModeState = "state"
	ModeBlock = "block"
)

const (
	defaultMode   = ModeState
	defaultQubits = 3
	defaultSeed   = 1
	defaultTrials = 1

	// maxQubits bounds the register the command simulates: a block encoding
	// over n qubits needs a 4^n×4^n unitary.
	maxQubits = 6
)

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	// Mode is "state" (state preparation) or "block" (block encoding).
	Mode string `yaml:"mode"`
	// Qubits is n: the vector has 2^n entries, the matrix is 2^n×2^n.
	Qubits int `yaml:"qubits"`
	// Epsilon is the truncation threshold; angles with |θ| ≤ Epsilon are
	// dropped.
	Epsilon float64 `yaml:"epsilon"`
	// Real restricts inputs to real values and circuits to RY gates.
	Real bool `yaml:"real"`
	// Uncompressed emits one multi-controlled rotation per pattern.
	Uncompressed bool `yaml:"uncompressed"`
	// Seed drives the random inputs.
	Seed int64 `yaml:"seed"`
	// Trials is the number of random inputs compiled and checked.
	Trials int `yaml:"trials"`
	// QASMPath, when set, receives the last compiled circuit as OpenQASM 3.
	QASMPath string `yaml:"qasmPath"`
	// Debug switches to a development logger at debug level.
	Debug bool `yaml:"debug"`
}

// WithDefaults returns a copy of the Config with any missing fields set to
// their default values.
func (c Config) WithDefaults() Config {
	cpy := c
	if cpy.Mode == "" {
		cpy.Mode = defaultMode
	}
	if cpy.Qubits == 0 {
		cpy.Qubits = defaultQubits
	}
	if cpy.Seed == 0 {
		cpy.Seed = defaultSeed
	}
	if cpy.Trials == 0 {
		cpy.Trials = defaultTrials
	}
	return cpy
}

// Validate reports the first setting outside its range.
func (c Config) Validate() error {
	switch {
	case c.Mode != ModeState && c.Mode != ModeBlock:
		return errors.Wrapf(ErrInvalidConfig, "mode %q", c.Mode)
	case c.Qubits < 1 || c.Qubits > maxQubits:
		return errors.Wrapf(ErrInvalidConfig, "qubits %d not in [1, %d]", c.Qubits, maxQubits)
	case c.Mode == ModeBlock && 2*c.Qubits > maxQubits:
		return errors.Wrapf(ErrInvalidConfig, "block mode needs %d qubits, at most %d", 2*c.Qubits, maxQubits)
	case c.Epsilon < 0 || math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0):
		return errors.Wrapf(ErrInvalidConfig, "epsilon %g", c.Epsilon)
	case c.Trials < 1:
		return errors.Wrapf(ErrInvalidConfig, "trials %d", c.Trials)
	}
	return nil
}

// Load reads a YAML config file. Defaults are not applied.
func Load(path string) (Config, error) {
	var c Config
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrap(err, "load config")
	}
	if err := yaml.UnmarshalStrict(raw, &c); err != nil {
		return c, errors.Wrap(err, "load config")
	}
	return c, nil
}

// Save writes c as YAML.
func (c Config) Save(path string) error {
	raw, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "save config")
	}
	return errors.Wrap(os.WriteFile(path, raw, 0o644), "save config")
}

// Env variable names.
const (
	EnvMode         = "BLOCKENC_MODE"
	EnvQubits       = "BLOCKENC_QUBITS"
	EnvEpsilon      = "BLOCKENC_EPSILON"
	EnvReal         = "BLOCKENC_REAL"
	EnvUncompressed = "BLOCKENC_UNCOMPRESSED"
	EnvSeed         = "BLOCKENC_SEED"
	EnvTrials       = "BLOCKENC_TRIALS"
	EnvQASM         = "BLOCKENC_QASM"
	EnvDebug        = "BLOCKENC_DEBUG"
)

// FromEnv returns c overlaid with the BLOCKENC_* process environment.
func (c Config) FromEnv() (Config, error) {
	return c.overlay(os.LookupEnv)
}

// FromEnvFile returns c overlaid with the BLOCKENC_* entries of a .env file.
// The process environment is left untouched.
func (c Config) FromEnvFile(path string) (Config, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return c, errors.Wrap(err, "read env file")
	}
	return c.overlay(func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	})
}

func (c Config) overlay(lookup func(string) (string, bool)) (Config, error) {
	cpy := c
	var err error
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	num := func(key string, set func(string) error) {
		if v, ok := lookup(key); ok && err == nil {
			if perr := set(strings.TrimSpace(v)); perr != nil {
				err = errors.Wrapf(ErrInvalidConfig, "%s=%q", key, v)
			}
		}
	}
	flag := func(key string, dst *bool) {
		num(key, func(v string) (perr error) { *dst, perr = strconv.ParseBool(v); return })
	}

	str(EnvMode, &cpy.Mode)
	str(EnvQASM, &cpy.QASMPath)
	num(EnvQubits, func(v string) (perr error) { cpy.Qubits, perr = strconv.Atoi(v); return })
	num(EnvEpsilon, func(v string) (perr error) { cpy.Epsilon, perr = strconv.ParseFloat(v, 64); return })
	num(EnvSeed, func(v string) (perr error) { cpy.Seed, perr = strconv.ParseInt(v, 10, 64); return })
	num(EnvTrials, func(v string) (perr error) { cpy.Trials, perr = strconv.Atoi(v); return })
	flag(EnvReal, &cpy.Real)
	flag(EnvUncompressed, &cpy.Uncompressed)
	flag(EnvDebug, &cpy.Debug)

	if err != nil {
		return c, err
	}
	return cpy, nil
}

// CreateLogger returns a development logger when debug is set and a
// production logger otherwise.
func (c Config) CreateLogger() (*zap.Logger, error) {
	var logger *zap.Logger
	var err error
	if c.Debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}

	return logger, errors.Wrap(err, "create logger")
}
