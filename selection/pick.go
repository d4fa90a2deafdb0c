// SPDX-License-Identifier: MIT
// Package selection: the three picking operators.
//
// Each operator is read-only over the pool and returns a position, not an
// item, so the caller can drop the pick with RemoveAt without a second scan.

package selection

import "math/rand"

// PickUniformRandom returns a uniformly distributed position in p.
//
// Complexity: O(1); exactly one rng.Intn call.
func PickUniformRandom(p *Pool, rng *rand.Rand) (int, error) {
	if p.IsEmpty() {
		return 0, ErrEmptyPool
	}
	if rng == nil {
		return 0, ErrNeedRandSource
	}

	return rng.Intn(len(p.items)), nil
}

// PickMaxProfit returns the position of the most profitable member.
// Ties keep the earliest position.
//
// Complexity: O(k).
func PickMaxProfit(p *Pool) (int, error) {
	if p.IsEmpty() {
		return 0, ErrEmptyPool
	}
	best := 0
	for i := 1; i < len(p.items); i++ {
		if p.items[i].Profit > p.items[best].Profit {
			best = i
		}
	}

	return best, nil
}

// PickMinProfit returns the position of the least profitable member.
// Ties keep the earliest position.
//
// Complexity: O(k).
func PickMinProfit(p *Pool) (int, error) {
	if p.IsEmpty() {
		return 0, ErrEmptyPool
	}
	worst := 0
	for i := 1; i < len(p.items); i++ {
		if p.items[i].Profit < p.items[worst].Profit {
			worst = i
		}
	}

	return worst, nil
}
