// SPDX-License-Identifier: MIT

// Package gate defines the operations the compilers emit and the sink they
// emit them into.
//
// An Op is an immutable record: a Kind (X, Y, Z, H, SWAP, RX, RY, RZ), one
// target (two for SWAP), an optional ordered list of control qubits, an
// optional required control pattern and, for rotations, an angle.
//
// Sink is the only contract between the compilers and a backend. Backends
// append ops in order and never reorder them:
//
//   - *Circuit      — in-memory append-only log (this package).
//   - *Conditioned  — decorator adding outer controls to every op on the fly.
//   - sim.StateVector, qasm.Builder — executing and text backends.
//
// Compilers never branch on which backend is behind a Sink.
package gate
