// SPDX-License-Identifier: MIT

package main

import "math/rand"

// fallbackSeed replaces a zero seed.
const fallbackSeed int64 = 1

// trialRNG returns the random stream of one trial. Trial i draws the same
// inputs for a given seed regardless of how many trials run before it.
func trialRNG(seed int64, trial int) *rand.Rand {
	if seed == 0 {
		seed = fallbackSeed
	}

	return rand.New(rand.NewSource(mixSeed(seed, uint64(trial))))
}

// mixSeed combines a base seed and a stream index with the SplitMix64
// finalizer.
func mixSeed(base int64, stream uint64) int64 {
	x := uint64(base) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
