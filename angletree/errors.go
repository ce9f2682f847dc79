// SPDX-License-Identifier: MIT

package angletree

import (
	"errors"

	"github.com/katalvlaran/blockenc/bitutil"
)

var (
	// ErrInvalidDimension aliases bitutil.ErrInvalidDimension: a vector length
	// or matrix side is not a power of two ≥ 2, or a matrix is not square.
	ErrInvalidDimension = bitutil.ErrInvalidDimension

	// ErrUnknownMode indicates a Mode other than NormMode or PhaseMode.
	ErrUnknownMode = errors.New("angletree: mode must be norm or phase")

	// ErrLayerRange indicates a layer index outside [0, n).
	ErrLayerRange = errors.New("angletree: layer out of range")
)
