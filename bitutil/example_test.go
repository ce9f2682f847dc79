// SPDX-License-Identifier: MIT

package bitutil_test

import (
	"fmt"

	"github.com/katalvlaran/blockenc/bitutil"
)

// ExampleDiffGrayIndex walks the 2-bit Gray cycle and prints which control
// position toggles at each step.
func ExampleDiffGrayIndex() {
	const width = 2
	for i := 0; i < 1<<width; i++ {
		fmt.Printf("%02b -> %d\n", bitutil.GrayCode(i), bitutil.GrayIncBit(i, width))
	}
	// Output:
	// 00 -> 1
	// 01 -> 0
	// 11 -> 1
	// 10 -> 0
}
