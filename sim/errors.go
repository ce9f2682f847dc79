// SPDX-License-Identifier: MIT

package sim

import (
	"errors"

	"github.com/katalvlaran/blockenc/bitutil"
)

var (
	// ErrQubitOutOfRange indicates an op touching a qubit ≥ NumQubits.
	ErrQubitOutOfRange = errors.New("sim: qubit out of range")

	// ErrTooManyQubits indicates a register larger than the simulator accepts.
	ErrTooManyQubits = errors.New("sim: too many qubits")

	// ErrInvalidDimension aliases bitutil.ErrInvalidDimension.
	ErrInvalidDimension = bitutil.ErrInvalidDimension
)

// MaxQubits bounds the register size of a StateVector.
const MaxQubits = 24
