// SPDX-License-Identifier: MIT

package transform

import "github.com/katalvlaran/blockenc/bitutil"

// ErrInvalidDimension aliases bitutil.ErrInvalidDimension: the row count is
// not a positive power of two.
var ErrInvalidDimension = bitutil.ErrInvalidDimension
