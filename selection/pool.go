// SPDX-License-Identifier: MIT
// Package selection: Pool, an ordered scratch list of candidate items.

package selection

import "github.com/katalvlaran/knapsack/instance"

const (
	methodAdd      = "Pool.Add"
	methodRemove   = "Pool.Remove"
	methodRemoveAt = "Pool.RemoveAt"
	methodAt       = "Pool.At"
)

// Pool is an ordered list of distinct items with O(1) membership tests.
// Removal preserves the order of the remaining members, so "earliest
// position" stays meaningful across a whole fill episode.
//
// A Pool is reusable: Reset empties it while keeping its buffers.
type Pool struct {
	items  []instance.Item
	member map[int]struct{}
}

// NewPool returns an empty pool with room for capacity items.
func NewPool(capacity int) *Pool {
	if capacity < 0 {
		capacity = 0
	}

	return &Pool{
		items:  make([]instance.Item, 0, capacity),
		member: make(map[int]struct{}, capacity),
	}
}

// Reset removes every member.
//
// Complexity: O(k).
func (p *Pool) Reset() {
	p.items = p.items[:0]
	clear(p.member)
}

// Add appends items in order. It stops at the first duplicate and returns
// ErrDuplicateItem; items before it stay added.
//
// Complexity: O(len(items)).
func (p *Pool) Add(items ...instance.Item) error {
	for _, it := range items {
		if _, dup := p.member[it.ID]; dup {
			return selectionErrorf(methodAdd, ErrDuplicateItem, "item %d", it.ID)
		}
		p.member[it.ID] = struct{}{}
		p.items = append(p.items, it)
	}

	return nil
}

// Remove deletes it from the pool, keeping the order of the others.
//
// Complexity: O(k).
func (p *Pool) Remove(it instance.Item) error {
	if _, ok := p.member[it.ID]; !ok {
		return selectionErrorf(methodRemove, ErrNotInPool, "item %d", it.ID)
	}
	for i := range p.items {
		if p.items[i].ID == it.ID {
			return p.RemoveAt(i)
		}
	}

	return selectionErrorf(methodRemove, ErrNotInPool, "item %d", it.ID)
}

// RemoveAt deletes the member at position pos, keeping the order of the others.
//
// Complexity: O(k − pos).
func (p *Pool) RemoveAt(pos int) error {
	if pos < 0 || pos >= len(p.items) {
		return selectionErrorf(methodRemoveAt, ErrPositionOutOfRange, "%d of %d", pos, len(p.items))
	}
	delete(p.member, p.items[pos].ID)
	copy(p.items[pos:], p.items[pos+1:])
	p.items = p.items[:len(p.items)-1]

	return nil
}

// At returns the member at position pos.
func (p *Pool) At(pos int) (instance.Item, error) {
	if pos < 0 || pos >= len(p.items) {
		return instance.Item{}, selectionErrorf(methodAt, ErrPositionOutOfRange, "%d of %d", pos, len(p.items))
	}

	return p.items[pos], nil
}

// Contains reports whether an item with it.ID is a member.
func (p *Pool) Contains(it instance.Item) bool {
	_, ok := p.member[it.ID]

	return ok
}

// Len returns the number of members.
func (p *Pool) Len() int { return len(p.items) }

// IsEmpty reports whether the pool has no members.
func (p *Pool) IsEmpty() bool { return len(p.items) == 0 }

// Items returns a copy of the members in pool order.
func (p *Pool) Items() []instance.Item {
	out := make([]instance.Item, len(p.items))
	copy(out, p.items)

	return out
}
