// SPDX-License-Identifier: MIT

package rotation

// Option configures Compile, Emit and Expand.
type Option func(*options)

type options struct {
	outer  []int
	states []int
}

// WithOuterControls conditions the whole compiled sequence on qubits holding
// states (nil means all ones). Controls required to be 0 are X-conjugated
// around the block. Mismatched lengths surface as ErrInconsistentControlSpec
// when compiling.
func WithOuterControls(qubits, states []int) Option {
	return func(o *options) {
		o.outer = append([]int(nil), qubits...)
		if states != nil {
			o.states = append([]int(nil), states...)
		}
	}
}

func gather(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
