// SPDX-License-Identifier: MIT
// Package selection - RNG utilities shared by randomized policies and heuristics.
//
// Goals:
//   - Determinism: same seed ⇒ identical decisions for identical call sequences.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Parallel contexts: DeriveRand gives each worker an independent stream.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package selection

import "math/rand"

// DefaultSeed is used when callers pass seed == 0.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier with a
// SplitMix64-style finalizer so that neighbouring stream ids yield
// uncorrelated seeds.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRand creates an independent deterministic stream for a worker.
// If base == nil, DefaultSeed is the parent; otherwise base.Int63() is
// consumed once, so deriving twice with the same stream id still yields
// different children.
//
// Call during setup, not in hot loops.
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// IntInRange returns a uniform integer in [lo, hi]. If hi < lo it returns lo.
//
// Complexity: O(1); one rng.Intn call when hi > lo, none otherwise.
func IntInRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + rng.Intn(hi-lo+1)
}
