// SPDX-License-Identifier: MIT

// Package heuristic composes solution.Builder mutations and selection
// policies into the moves a local search uses:
//
//   - Fill episodes (GreedyFill, RandomFill): every available item is
//     drawn exactly once, in policy order, and included only if it keeps
//     the solution feasible. Skipped items are not retried.
//   - Single removals (RemoveRandom, RemoveWorst).
//   - MultiRemove: a removal method applied k times, k derived from the
//     included count and a fraction.
//   - AddGreedy / AddRandom: one unconditional inclusion, preceded by a
//     removal when nothing is left to add.
//
// A Library owns one builder, one scratch pool and one RNG. It is not safe
// for concurrent use; parallel runs each create their own Library over a
// private Builder while sharing the read-only instance.
//
// Hooks (WithOnInclude, WithOnExclude, WithOnEpisode) observe mutations
// without influencing them; the telemetry package builds on them.
package heuristic
