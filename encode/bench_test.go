// SPDX-License-Identifier: MIT

package encode_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/blockenc/encode"
	"github.com/katalvlaran/blockenc/gate"
)

var discard = gate.SinkFunc(func(gate.Op) error { return nil })

func BenchmarkPrepareState_10Qubits(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	state := randomState(rng, 10, false)
	targets := qubitRange(0, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := encode.PrepareState(discard, state, targets); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeMatrix_5Qubits(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	m := randomMatrix(rng, 5, false)
	qubits := qubitRange(0, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := encode.EncodeMatrix(discard, m, qubits); err != nil {
			b.Fatal(err)
		}
	}
}
