// SPDX-License-Identifier: MIT

// Package rotation synthesizes uniformly controlled rotations.
//
// A uniformly controlled rotation over k controls applies one independent
// angle per control pattern. Naively that is 2^k multi-controlled rotations
// (Expand). Compile instead walks the Gray cycle of the controls and emits
// single-qubit rotations separated by CNOTs from the control whose Gray bit
// toggles, which needs the angles in Gray order (see transform.UniformAngles).
//
// Truncation:
//
//	An angle is kept iff |angle| > eps. CNOTs between two elided rotations
//	are not emitted: toggles are accumulated in a fixed k-entry open set and
//	flushed only in front of the next kept rotation (and once at the end),
//	where pairs of toggles on the same control cancel. An all-elided array
//	compiles to the empty circuit.
//
// Cost for m kept angles:
//
//	m rotations, at most min(2^k, k·(m+1)) CNOTs, exactly 2^k when all
//	2^k angles are kept. Raising eps never increases the gate count.
package rotation
