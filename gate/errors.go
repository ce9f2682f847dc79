// SPDX-License-Identifier: MIT

package gate

import "errors"

var (
	// ErrUnsupportedGateKind indicates a gate kind outside the supported set,
	// or a non-rotation kind where a rotation axis is required.
	ErrUnsupportedGateKind = errors.New("gate: unsupported gate kind")

	// ErrInconsistentControlSpec indicates a control-qubit list and a
	// control-state list of different lengths, or a state other than 0 or 1.
	ErrInconsistentControlSpec = errors.New("gate: inconsistent control specification")

	// ErrQubitRange indicates a negative qubit index, a wrong number of
	// targets, or a qubit used twice within one op.
	ErrQubitRange = errors.New("gate: invalid qubit index")
)
