// SPDX-License-Identifier: MIT

package rotation

import (
	"github.com/katalvlaran/blockenc/bitutil"
	"github.com/katalvlaran/blockenc/gate"
)

// Sentinels shared with the packages that define them, re-exported so
// callers of this package need no extra imports to match errors.
var (
	// ErrInvalidDimension: len(Angles) != 2^len(Controls).
	ErrInvalidDimension = bitutil.ErrInvalidDimension

	// ErrUnsupportedGateKind: the axis is not RX, RY or RZ.
	ErrUnsupportedGateKind = gate.ErrUnsupportedGateKind

	// ErrInconsistentControlSpec: outer control qubits and states disagree.
	ErrInconsistentControlSpec = gate.ErrInconsistentControlSpec
)
