// SPDX-License-Identifier: MIT

package encode_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/blockenc/encode"
	"github.com/katalvlaran/blockenc/gate"
	"github.com/katalvlaran/blockenc/sim"
)

// clean maps round-off residue to zero so it prints unsigned.
func clean(x float64) float64 {
	if math.Abs(x) < 1e-12 {
		return 0
	}

	return x
}

// ExampleStatePreparation prepares the Bell state (|00⟩+|11⟩)/√2.
func ExampleStatePreparation() {
	s := complex(1/math.Sqrt2, 0)
	c, err := encode.StatePreparation([]complex128{s, 0, 0, s}, []int{0, 1}, encode.WithReal())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("rotations=%d cnots=%d\n", c.RotationCount(), c.CNOTCount())

	sv, _ := sim.Run(c, 2)
	amps, _ := sim.PreparedState(sv)
	for i, a := range amps {
		fmt.Printf("|%02b⟩ %.4f\n", i, clean(real(a)))
	}
	// Output:
	// rotations=3 cnots=2
	// |00⟩ 0.7071
	// |01⟩ 0.0000
	// |10⟩ 0.0000
	// |11⟩ 0.7071
}

// ExampleBlockEncoding encodes the Pauli X matrix scaled to unit Frobenius
// norm.
func ExampleBlockEncoding() {
	s := complex(1/math.Sqrt2, 0)
	m := mat.NewCDense(2, 2, []complex128{0, s, s, 0})
	c, err := encode.BlockEncoding(m, []int{0, 1}, encode.WithReal())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("swaps:", c.Count(gate.SWAP))

	u, _ := sim.Unitary(c, 2)
	block, _ := sim.EncodedBlock(u, 1)
	for i := 0; i < 2; i++ {
		fmt.Printf("%.4f %.4f\n", clean(real(block.At(i, 0))), clean(real(block.At(i, 1))))
	}
	// Output:
	// swaps: 1
	// 0.0000 0.7071
	// 0.7071 0.0000
}
