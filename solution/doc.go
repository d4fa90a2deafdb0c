// SPDX-License-Identifier: MIT

// Package solution implements the incremental MKP solution builder and the
// immutable snapshots it finalizes into.
//
// Builder state:
//
//	included ∪ available = all items, included ∩ available = ∅   (every mutation)
//	usage[r] = Σ w(i, r) over included i                         (maintained in O(m))
//
// Include/Exclude are O(m): they move one index between two swap-delete
// index sets and add/subtract one weight row. Usage is only rebuilt from
// scratch by Clear. IncludedItems/AvailableItems are O(k) copies, never
// live views; their order is unspecified but deterministic for a given
// history of mutations.
//
// Scoring (Snapshot):
//
//	penalty = overfilledResources × includedCount × (maxProfit + 1)
//	score   = totalProfit − penalty
//	feasible ⇔ penalty == 0
//
// One overfilled resource costs more than the profit of every item in the
// snapshot together, so any infeasible snapshot scores below every feasible
// snapshot of the same instance. Beyond that guarantee the penalty ignores
// overflow magnitude: among infeasible snapshots of equal size, only the
// number of overfilled resources matters.
//
// Concurrency: a Builder is owned by exactly one heuristic context and does
// no locking. Snapshots are immutable and safe to share.
package solution
