// SPDX-License-Identifier: MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrialRNG_Deterministic(t *testing.T) {
	a, b := trialRNG(7, 3), trialRNG(7, 3)
	assert.Equal(t, a.Int63(), b.Int63())

	assert.NotEqual(t, trialRNG(7, 3).Int63(), trialRNG(7, 4).Int63())
	assert.Equal(t, trialRNG(0, 1).Int63(), trialRNG(fallbackSeed, 1).Int63())
}
