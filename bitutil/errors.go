// SPDX-License-Identifier: MIT

package bitutil

import "errors"

// ErrInvalidDimension reports a length or matrix side that is not a positive
// power of two, or a register size that does not match log2 of an array
// length. Other packages re-export it under the same name so callers can
// match it with errors.Is regardless of where it was raised.
var ErrInvalidDimension = errors.New("bitutil: dimension is not a power of two")

// ErrInvalidAxis indicates an axis other than 0 (rows) or 1 (columns).
var ErrInvalidAxis = errors.New("bitutil: axis must be 0 or 1")
