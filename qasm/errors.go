// SPDX-License-Identifier: MIT

package qasm

import "errors"

var (
	// ErrQubitOutOfRange indicates an op on a qubit outside the register.
	ErrQubitOutOfRange = errors.New("qasm: qubit out of range")

	// ErrSyntax indicates a line Parse does not understand.
	ErrSyntax = errors.New("qasm: syntax error")
)
