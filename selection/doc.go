// SPDX-License-Identifier: MIT

// Package selection provides the scratch item pool consumed during one
// selection decision and the pure policies that pick one item from it.
//
// Policies never touch a solution builder: they read a Pool and return a
// position in it. Any policy therefore composes with any pool source: the
// builder's available items for construction, its included items for
// destruction.
//
// Policies (closed set, dispatched through a fixed table):
//
//	UniformRandom  uniform over current pool members; needs a *rand.Rand.
//	MaxProfit      linear scan, strict '>' so ties keep the earliest position.
//	MinProfit      linear scan, strict '<' so ties keep the earliest position.
//
// Determinism: MaxProfit/MinProfit are fully deterministic. UniformRandom
// consumes exactly one rng.Intn call per pick, so a seeded *rand.Rand and an
// identical call sequence reproduce identical decisions.
//
// Concurrency: Pool and *rand.Rand are not goroutine-safe. Give every
// heuristic context its own Pool and its own stream (see DeriveRand).
package selection
