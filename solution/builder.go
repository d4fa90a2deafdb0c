// SPDX-License-Identifier: MIT
// Package solution: Builder, the mutable included/available partition.

package solution

import (
	"slices"

	"github.com/katalvlaran/knapsack/instance"
)

// Builder maintains one candidate solution of an instance.
// The zero value is not usable; construct with New.
type Builder struct {
	inst      *instance.Instance
	items     []instance.Item // by index, copied once from inst
	included  indexSet
	available indexSet
	usage     []int
	maxProfit int
}

// New returns a builder over inst holding the empty solution.
//
// Complexity: O(n + m).
func New(inst *instance.Instance) (*Builder, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	n := inst.ItemCount()
	b := &Builder{
		inst:      inst,
		items:     inst.Items(),
		included:  newIndexSet(n),
		available: newIndexSet(n),
		usage:     make([]int, inst.ResourceCount()),
		maxProfit: inst.MaxProfit(),
	}
	b.Clear()

	return b, nil
}

// Instance returns the instance the builder operates on.
func (b *Builder) Instance() *instance.Instance { return b.inst }

// Include moves it from available to included and adds its weights to usage.
// No feasibility check is made; see IsIncludeFeasible.
//
// Errors: ErrInvalidItem, ErrDuplicateInclusion.
//
// Complexity: O(m).
func (b *Builder) Include(it instance.Item) error {
	if !b.inst.Contains(it) {
		return itemErrorf(methodInclude, it.ID, ErrInvalidItem)
	}
	if b.included.has(it.ID) {
		return itemErrorf(methodInclude, it.ID, ErrDuplicateInclusion)
	}
	if err := b.inst.AddWeights(b.usage, it.ID); err != nil {
		return err
	}
	b.available.remove(it.ID)
	b.included.add(it.ID)

	return nil
}

// Exclude moves it from included to available and subtracts its weights.
//
// Errors: ErrInvalidItem, ErrNotIncluded.
//
// Complexity: O(m).
func (b *Builder) Exclude(it instance.Item) error {
	if !b.inst.Contains(it) {
		return itemErrorf(methodExclude, it.ID, ErrInvalidItem)
	}
	if !b.included.has(it.ID) {
		return itemErrorf(methodExclude, it.ID, ErrNotIncluded)
	}
	if err := b.inst.SubtractWeights(b.usage, it.ID); err != nil {
		return err
	}
	b.included.remove(it.ID)
	b.available.add(it.ID)

	return nil
}

// IsIncludeFeasible reports whether including it would keep every resource
// within capacity. Foreign items are never feasible. The state of it
// (included or not) is not consulted.
//
// Complexity: O(m).
func (b *Builder) IsIncludeFeasible(it instance.Item) bool {
	return b.inst.Contains(it) && b.inst.FitsWith(b.usage, it.ID)
}

// IsIncluded reports whether it is currently included.
func (b *Builder) IsIncluded(it instance.Item) bool {
	return b.inst.Contains(it) && b.included.has(it.ID)
}

// IsFeasible reports whether no resource is over capacity.
//
// Complexity: O(m).
func (b *Builder) IsFeasible() bool {
	return b.inst.Overfilled(b.usage) == 0
}

// IncludedItems returns a copy of the included items.
//
// Complexity: O(k), k = IncludedCount().
func (b *Builder) IncludedItems() []instance.Item {
	return b.collect(b.included.members)
}

// AvailableItems returns a copy of the available items.
//
// Complexity: O(k), k = AvailableCount().
func (b *Builder) AvailableItems() []instance.Item {
	return b.collect(b.available.members)
}

func (b *Builder) collect(idx []int) []instance.Item {
	out := make([]instance.Item, len(idx))
	for k, i := range idx {
		out[k] = b.items[i]
	}

	return out
}

// IncludedCount returns the number of included items in O(1).
func (b *Builder) IncludedCount() int { return b.included.len() }

// AvailableCount returns the number of available items in O(1).
func (b *Builder) AvailableCount() int { return b.available.len() }

// Usage returns a copy of the per-resource usage vector.
func (b *Builder) Usage() []int { return slices.Clone(b.usage) }

// CanAdd reports whether at least one item is still available.
func (b *Builder) CanAdd() bool { return b.included.len() < len(b.items) }

// CanRemove reports whether more than one item is included, i.e. a removal
// would leave the solution non-empty.
func (b *Builder) CanRemove() bool { return b.included.len() > 1 }

// Clear resets to the empty solution: every item available, zero usage.
// Clear is idempotent.
//
// Complexity: O(n + m).
func (b *Builder) Clear() {
	b.included.clear()
	b.available.fill()
	clear(b.usage)
}

// Build finalizes the current state into an immutable Snapshot.
//
// Errors: ErrEmptyBuild when nothing is included.
//
// Complexity: O(k log k + m).
func (b *Builder) Build() (*Snapshot, error) {
	if b.included.len() == 0 {
		return nil, ErrEmptyBuild
	}

	items := b.IncludedItems()
	slices.SortFunc(items, func(x, y instance.Item) int { return x.ID - y.ID })

	var total int
	for _, it := range items {
		total += it.Profit
	}
	over := b.inst.Overfilled(b.usage)

	return &Snapshot{
		inst:        b.inst,
		items:       items,
		usage:       slices.Clone(b.usage),
		totalProfit: total,
		overfilled:  over,
		penalty:     Penalty(over, len(items), b.maxProfit),
	}, nil
}

// ImportSolution replaces the current state with the snapshot's item set:
// Clear followed by Include of every snapshot item.
//
// The snapshot must have been built on the same problem (see
// instance.Instance.SameProblem); LP-optimum copies are interchangeable.
//
// Errors: ErrNilSnapshot, ErrForeignSnapshot.
//
// Complexity: O(n + k·m).
func (b *Builder) ImportSolution(s *Snapshot) error {
	if s == nil {
		return ErrNilSnapshot
	}
	if !b.inst.SameProblem(s.inst) {
		return ErrForeignSnapshot
	}
	b.Clear()
	for _, it := range s.items {
		if err := b.Include(it); err != nil {
			return itemErrorf(methodImport, it.ID, err)
		}
	}

	return nil
}

// Penalty returns overfilled × included × (maxProfit + 1).
func Penalty(overfilled, included, maxProfit int) int {
	return overfilled * included * (maxProfit + 1)
}
