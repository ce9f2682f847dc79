// SPDX-License-Identifier: MIT

package angletree_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/blockenc/angletree"
)

// ExampleAssembleVector decomposes the uniform superposition on two qubits:
// every RY angle is π/2.
func ExampleAssembleVector() {
	v := []float64{0.5, 0.5, 0.5, 0.5}
	tree, err := angletree.AssembleVector(v, angletree.NormMode, false)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for l, layer := range tree.Layers {
		fmt.Printf("layer %d:", l)
		for _, a := range layer {
			fmt.Printf(" %.4f", a/math.Pi)
		}
		fmt.Println()
	}
	// Output:
	// layer 0: 0.5000
	// layer 1: 0.5000 0.5000
}
