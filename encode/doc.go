// SPDX-License-Identifier: MIT

// Package encode plans the two circuits built on angle trees:
//
//   - State preparation: n target qubits, |0…0⟩ ↦ Σ v_i |i⟩ for a
//     normalized v of length 2^n. Qubit targets[0] is the most significant
//     bit of i.
//   - Block encoding: n working qubits followed by n index qubits; the
//     top-left 2^n×2^n block of the circuit's unitary is A/‖A‖_F.
//
// Both stream gate.Op values into a gate.Sink layer by layer. Each layer is
// a uniformly controlled rotation compiled by package rotation (Gray-code
// compressed by default, one multi-controlled rotation per pattern with
// WithUncompressed). An angle is emitted iff |angle| > epsilon.
//
// Block encoding runs three stages:
//
//  1. PREP: per-column preparation on the working register controlled by
//     the index register (RZ root, RY layers, RZ layers).
//  2. SWAP of working and index qubits, pairwise.
//  3. The adjoint of the column-norm preparation, built in a buffer and
//     replayed in reverse order with negated angles.
//
// Errors abort emission; ops already streamed stay in the sink.
package encode
