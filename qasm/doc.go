// SPDX-License-Identifier: MIT

// Package qasm renders gate sequences as OpenQASM 3 text and reads that
// subset back.
//
// Builder is a gate.Sink: every appended op becomes one statement. Controls
// are written as modifiers, one group per run of equal required states:
//
//	cx q[0], q[2];
//	ctrl(2) @ negctrl @ ry(0.25) q[0], q[1], q[3], q[4];
//
// Parse accepts the statements Builder writes, which is enough to store a
// compiled circuit and replay it later.
package qasm
