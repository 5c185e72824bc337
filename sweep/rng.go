// Package sweep - RNG utilities for parallel trial execution.
//
// This file centralizes deterministic random generation for the dispatcher.
//
// Goals:
//   - Determinism: same seed ⇒ identical trial streams across platforms.
//   - Independence: each worker gets its own decorrelated stream, so the
//     aggregate is invariant to the worker count in expectation.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Streams are derived up front
//     in the dispatching goroutine; workers never share one.
package sweep

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// Arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64-style avalanche, eliminating correlations between
// sibling streams.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// Canonical SplitMix64 multipliers/finalizer; see Vigna 2014.
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG creates an independent deterministic stream from a base RNG and
// a stream identifier. base.Int63() is consumed once so repeated calls with
// the same stream id still yield distinct children.
//
// Complexity: O(1).
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultRNGSeed
	} else {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
