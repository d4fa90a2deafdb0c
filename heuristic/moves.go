// SPDX-License-Identifier: MIT
// Package heuristic: multi-remove and single-item add moves.

package heuristic

import (
	"math"

	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/selection"
)

// RemoveBudget returns the number of removals MultiRemove performs on a
// solution with included items:
//
//	fixed:  k = max(1, ⌊included·fraction⌋)
//	random: k uniform in [1, max(1, ⌊included·fraction⌋)]
//
// The random variant draws from the Library's RNG (no draw when the upper
// bound is 1). The upper bound is inclusive: every k in [1, X] has
// probability 1/X. fraction is not validated here; see MultiRemove.
func (l *Library) RemoveBudget(included int, fraction float64, randomCount bool) int {
	k := max(1, int(math.Floor(float64(included)*fraction)))
	if randomCount {
		k = selection.IntInRange(l.rng, 1, k)
	}

	return k
}

// MultiRemove applies method k times, k = RemoveBudget(IncludedCount,
// fraction, randomCount). Each removal acts on the state left by the
// previous one; the solution may end up empty.
//
// Errors: ErrInvalidFraction, ErrUnknownMethod, ErrNoIncludedItems.
//
// Complexity: O(k·(c log c + m)), c = IncludedCount.
func (l *Library) MultiRemove(method RemoveMethod, fraction float64, randomCount bool) (Episode, error) {
	ep := Episode{Kind: KindMultiRemove}
	if !(fraction > 0 && fraction <= 1) {
		return ep, heuristicErrorf(string(ep.Kind), ErrInvalidFraction)
	}
	if _, err := method.Policy(); err != nil {
		return ep, heuristicErrorf(string(ep.Kind), err)
	}
	c := l.b.IncludedCount()
	if c == 0 {
		return ep, heuristicErrorf(string(ep.Kind), ErrNoIncludedItems)
	}

	k := l.RemoveBudget(c, fraction, randomCount)
	for ; ep.Removed < k; ep.Removed++ {
		if _, err := l.Remove(method); err != nil {
			return ep, heuristicErrorf(string(ep.Kind), err)
		}
	}
	l.endEpisode(ep)

	return ep, nil
}

// AddGreedy includes the most profitable available item without a
// feasibility check. When nothing is available and more than one item is
// included, the least profitable included item is removed first.
//
// Errors: ErrNoAvailableItems when no item can be freed.
func (l *Library) AddGreedy() (instance.Item, error) {
	if !l.b.CanAdd() && l.b.CanRemove() {
		if _, err := l.RemoveWorst(); err != nil {
			return instance.Item{}, heuristicErrorf("add-greedy", err)
		}
	}

	return l.addBy(selection.MaxProfit, "add-greedy")
}

// AddRandom includes a uniformly random available item without a
// feasibility check. When nothing is available, a random included item is
// removed first.
//
// Errors: ErrNoAvailableItems when the instance has no items to cycle.
func (l *Library) AddRandom() (instance.Item, error) {
	if !l.b.CanAdd() {
		if _, err := l.RemoveRandom(); err != nil {
			return instance.Item{}, heuristicErrorf("add-random", err)
		}
	}

	return l.addBy(selection.UniformRandom, "add-random")
}

func (l *Library) addBy(pol selection.Policy, op string) (instance.Item, error) {
	if l.b.AvailableCount() == 0 {
		return instance.Item{}, heuristicErrorf(op, ErrNoAvailableItems)
	}
	if err := l.seedPool(l.b.AvailableItems()); err != nil {
		return instance.Item{}, err
	}
	pos, err := pol.Pick(l.pool, l.rng)
	if err != nil {
		return instance.Item{}, heuristicErrorf(op, err)
	}
	it, _ := l.pool.At(pos)
	if err = l.include(it); err != nil {
		return instance.Item{}, heuristicErrorf(op, err)
	}

	return it, nil
}
