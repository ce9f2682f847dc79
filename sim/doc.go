// SPDX-License-Identifier: MIT

// Package sim is a dense state-vector backend for gate.Sink, used to verify
// compiled circuits.
//
// Bit order: qubit q is bit 1<<q of an amplitude index (little-endian), the
// natural order of most simulators. The compilers number qubits the other
// way round (qubit 0 is the most significant bit of a vector index), so the
// readback helpers PreparedState, Unitary and EncodedBlock translate with
// bitutil.BitReversePermute.
//
// Memory is O(2^q) for a state and O(4^q) for a unitary; keep q small.
package sim
