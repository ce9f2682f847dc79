// SPDX-License-Identifier: MIT

package encode

import (
	"math"

	"go.uber.org/zap"
)

// DefaultEpsilon keeps every non-zero angle.
const DefaultEpsilon = 0.0

const (
	panicEpsilonInvalid = "encode: WithEpsilon: eps must be finite, non-negative"
	panicLoggerNil      = "encode: WithLogger: logger must not be nil"
)

// Option configures PrepareState and EncodeMatrix.
type Option func(*options)

type options struct {
	eps          float64
	isReal       bool
	uncompressed bool
	outer        []int
	states       []int
	log          *zap.Logger
}

// WithEpsilon sets the truncation threshold: an angle is emitted iff
// |angle| > eps. Panics if eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithReal treats the input as real: signs are carried by RY angles and no
// RZ gates are emitted. Imaginary parts are ignored.
func WithReal() Option {
	return func(o *options) { o.isReal = true }
}

// WithUncompressed emits one multi-controlled rotation per control pattern
// instead of the Gray-code compressed sequence.
func WithUncompressed() Option {
	return func(o *options) { o.uncompressed = true }
}

// WithOuterControls conditions the whole circuit on qubits holding states
// (nil means all ones). Controls required to be 0 are X-conjugated around
// the circuit.
func WithOuterControls(qubits, states []int) Option {
	return func(o *options) {
		o.outer = append([]int(nil), qubits...)
		o.states = nil
		if states != nil {
			o.states = append([]int(nil), states...)
		}
	}
}

// WithLogger sets the logger used for per-layer debug records.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.log = log }
}

func gatherOptions(opts []Option) options {
	o := options{eps: DefaultEpsilon, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
