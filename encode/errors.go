// SPDX-License-Identifier: MIT

package encode

import (
	"github.com/katalvlaran/blockenc/bitutil"
	"github.com/katalvlaran/blockenc/gate"
)

// Sentinel errors re-exported from the packages that raise them.
var (
	// ErrInvalidDimension: input length or side is not a power of two ≥ 2,
	// or the qubit list does not match it.
	ErrInvalidDimension = bitutil.ErrInvalidDimension

	// ErrUnsupportedGateKind: never expected from the planners; surfaced if
	// a sink rejects a kind.
	ErrUnsupportedGateKind = gate.ErrUnsupportedGateKind

	// ErrInconsistentControlSpec: outer control qubits and states disagree.
	ErrInconsistentControlSpec = gate.ErrInconsistentControlSpec
)
