// SPDX-License-Identifier: MIT

// Package angletree decomposes a vector (or every column of a matrix) into
// the binary tree of rotation angles that a state-preparation circuit
// applies layer by layer.
//
// 🌳 Norm tree
//
//	A length-2^n magnitude vector is split into pairs; each pair (v0, v1) is
//	replaced by its norm and the angle θ with cos θ = v0/norm. Feeding the
//	norms back in builds the tree bottom-up until a single norm remains.
//	Layers are stored root first; Layers[l] has 2^l angles, doubled so they
//	can be used directly as RY arguments.
//
// 🌀 Phase tree
//
//	A length-2^n phase vector is mapped linearly onto a root sign term plus
//	per-layer phase differences used as RZ arguments. The fast butterfly in
//	DecomposePhaseTree is checked against the explicit PhaseTreeMatrix.
//
// 🧮 Matrix trees
//
//	AssembleMatrix runs the vector decomposition per column and adds one more
//	norm column built from the per-column Frobenius norms, which drives the
//	normalization stage of a block encoding.
//
// Zero pairs and zero vectors produce angle 0 by convention, never NaN.
package angletree
