// SPDX-License-Identifier: MIT

package transform_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/blockenc/transform"
)

// BenchmarkUniformAngles_K10 measures the butterfly + Gray permutation on 1024 angles.
func BenchmarkUniformAngles_K10(b *testing.B) {
	a := randomAngles(rand.New(rand.NewSource(1)), 1<<10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := transform.UniformAngles(a); err != nil {
			b.Fatalf("UniformAngles failed: %v", err)
		}
	}
}
