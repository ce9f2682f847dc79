// SPDX-License-Identifier: MIT

// Package blockenc compiles normalized vectors and matrices into quantum
// gate sequences: state preparation and block encoding by binary-tree
// angle decomposition, with Gray-code compressed uniformly controlled
// rotations.
//
// 🚀 Pipeline
//
//	input ─▶ angletree ─▶ transform ─▶ rotation ─▶ gate.Sink
//	         (norms,       (butterfly,   (Gray-code
//	          phases)       Gray order)   CNOT walk)
//
// encode drives the pipeline layer by layer and streams ops into any
// gate.Sink: an in-memory gate.Circuit, the sim state-vector backend or the
// qasm text backend.
//
// 📦 Packages
//
//	bitutil/    — Gray codes, binary digits, bit reversal, power-of-two log
//	transform/  — scaled Walsh–Hadamard butterfly, Gray permutation
//	angletree/  — norm and phase trees of vectors and matrix columns
//	gate/       — Op, Sink, Circuit, outer-control conditioning
//	rotation/   — uniformly controlled rotations, compressed and expanded
//	encode/     — StatePreparation, BlockEncoding
//	sim/        — state-vector backend and readback for verification
//	qasm/       — OpenQASM 3 emitter and reader
//	config/     — YAML/.env settings of cmd/blockenc
//	cmd/        — blockenc, random-input compile-and-verify driver
//
// ✨ Quick start
//
//	c, err := encode.StatePreparation(amplitudes, []int{0, 1, 2},
//		encode.WithEpsilon(1e-6))
//
// Qubit 0 of a target list is the most significant bit of an amplitude
// index. Everything is single-threaded and deterministic.
package blockenc
