// SPDX-License-Identifier: MIT
// Package instance: the Instance type, its constructor and read accessors.

package instance

import (
	"fmt"
	"math"
)

// Method names used as error context.
const (
	methodNew           = "New"
	methodWithLPOptimum = "WithLPOptimum"
	methodItem          = "Item"
	methodResource      = "Resource"
	methodWeight        = "Weight"
)

// Option configures optional Instance metadata in New.
// Invalid values are recorded and surfaced as an error by New.
type Option func(*instanceConfig)

type instanceConfig struct {
	number    int
	lpOptimum float64
	hasLP     bool
	err       error
}

// WithNumber records the instance's position in its source file.
// The number is part of the LP-table key (resources, items, number).
func WithNumber(k int) Option {
	return func(c *instanceConfig) {
		if k < 0 {
			c.err = instanceErrorf(methodNew, ErrNegativeValue, "number %d", k)
			return
		}
		c.number = k
	}
}

// WithLPOptimum attaches the LP-relaxation optimum used for gap reporting.
// v must be finite and strictly positive.
func WithLPOptimum(v float64) Option {
	return func(c *instanceConfig) {
		if err := validateLPOptimum(v); err != nil {
			c.err = err
			return
		}
		c.lpOptimum, c.hasLP = v, true
	}
}

// Instance is an immutable MKP instance. The zero value is not usable;
// construct instances with New.
type Instance struct {
	number    int
	items     []Item
	resources []Resource
	weights   []int // row-major, len == n*m
	maxProfit int
	lpOptimum float64
	hasLP     bool
	origin    *Instance // the New result this value was derived from
}

// New validates and freezes an instance.
//
// Contract:
//   - len(items) ≥ 1, len(resources) ≥ 1;
//   - items[i].ID == i and resources[r].ID == r;
//   - profits, capacities and weights are non-negative;
//   - weights has exactly len(items) rows of exactly len(resources) entries,
//     weights[i][r] being the weight of item i on resource r.
//
// Inputs are copied; later mutation of the caller's slices has no effect.
//
// Complexity: O(n·m) time and memory.
func New(items []Item, resources []Resource, weights [][]int, opts ...Option) (*Instance, error) {
	var cfg instanceConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	n, m := len(items), len(resources)
	if n == 0 {
		return nil, ErrNoItems
	}
	if m == 0 {
		return nil, ErrNoResources
	}
	if len(weights) != n {
		return nil, instanceErrorf(methodNew, ErrDimensionMismatch, "%d weight rows for %d items", len(weights), n)
	}

	inst := &Instance{
		number:    cfg.number,
		items:     make([]Item, n),
		resources: make([]Resource, m),
		weights:   make([]int, n*m),
		lpOptimum: cfg.lpOptimum,
		hasLP:     cfg.hasLP,
	}
	inst.origin = inst

	var i, r int
	for i = 0; i < n; i++ {
		it := items[i]
		if it.ID != i {
			return nil, instanceErrorf(methodNew, ErrIDMismatch, "item at %d has id %d", i, it.ID)
		}
		if it.Profit < 0 {
			return nil, instanceErrorf(methodNew, ErrNegativeValue, "item %d profit %d", i, it.Profit)
		}
		if it.Profit > inst.maxProfit {
			inst.maxProfit = it.Profit
		}
		inst.items[i] = it
	}

	for r = 0; r < m; r++ {
		res := resources[r]
		if res.ID != r {
			return nil, instanceErrorf(methodNew, ErrIDMismatch, "resource at %d has id %d", r, res.ID)
		}
		if res.Capacity < 0 {
			return nil, instanceErrorf(methodNew, ErrNegativeValue, "resource %d capacity %d", r, res.Capacity)
		}
		inst.resources[r] = res
	}

	for i = 0; i < n; i++ {
		row := weights[i]
		if len(row) != m {
			return nil, instanceErrorf(methodNew, ErrDimensionMismatch, "item %d has %d weights, want %d", i, len(row), m)
		}
		for r = 0; r < m; r++ {
			if row[r] < 0 {
				return nil, instanceErrorf(methodNew, ErrNegativeValue, "item %d, resource %d weight %d", i, r, row[r])
			}
			inst.weights[i*m+r] = row[r]
		}
	}

	return inst, nil
}

// WithLPOptimum returns a copy of in carrying the given LP optimum.
// The item, resource and weight tables are shared, not copied: they are
// never written after New.
func (in *Instance) WithLPOptimum(v float64) (*Instance, error) {
	if err := validateLPOptimum(v); err != nil {
		return nil, err
	}
	out := *in
	out.lpOptimum, out.hasLP = v, true

	return &out, nil
}

// SameProblem reports whether in and other describe the same problem: the
// same New result or copies of it made with WithLPOptimum.
func (in *Instance) SameProblem(other *Instance) bool {
	return in != nil && other != nil && in.origin == other.origin
}

func validateLPOptimum(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return instanceErrorf(methodWithLPOptimum, ErrInvalidLPOptimum, "%g", v)
	}

	return nil
}

// Number returns the instance's position in its source file (0 if unset).
func (in *Instance) Number() int { return in.number }

// ItemCount returns n.
func (in *Instance) ItemCount() int { return len(in.items) }

// ResourceCount returns m.
func (in *Instance) ResourceCount() int { return len(in.resources) }

// MaxProfit returns the largest item profit; it scales the infeasibility penalty.
func (in *Instance) MaxProfit() int { return in.maxProfit }

// Item returns the item at index i.
func (in *Instance) Item(i int) (Item, error) {
	if i < 0 || i >= len(in.items) {
		return Item{}, instanceErrorf(methodItem, ErrItemOutOfRange, "%d", i)
	}

	return in.items[i], nil
}

// Items returns a copy of all items in index order.
//
// Complexity: O(n).
func (in *Instance) Items() []Item {
	out := make([]Item, len(in.items))
	copy(out, in.items)

	return out
}

// Resource returns the resource at index r.
func (in *Instance) Resource(r int) (Resource, error) {
	if r < 0 || r >= len(in.resources) {
		return Resource{}, instanceErrorf(methodResource, ErrResourceOutOfRange, "%d", r)
	}

	return in.resources[r], nil
}

// Resources returns a copy of all resources in index order.
func (in *Instance) Resources() []Resource {
	out := make([]Resource, len(in.resources))
	copy(out, in.resources)

	return out
}

// Contains reports whether it is an item of this instance: its ID is in
// range and the stored item under that ID carries the same profit.
func (in *Instance) Contains(it Item) bool {
	return it.ID >= 0 && it.ID < len(in.items) && in.items[it.ID] == it
}

// Weight returns w(item, resource) with bounds checks.
//
// Complexity: O(1).
func (in *Instance) Weight(item, resource int) (int, error) {
	if item < 0 || item >= len(in.items) {
		return 0, instanceErrorf(methodWeight, ErrItemOutOfRange, "item %d", item)
	}
	if resource < 0 || resource >= len(in.resources) {
		return 0, instanceErrorf(methodWeight, ErrResourceOutOfRange, "resource %d", resource)
	}

	return in.weights[item*len(in.resources)+resource], nil
}

// Weights returns a copy of the weight matrix, one row of m weights per item.
//
// Complexity: O(n·m).
func (in *Instance) Weights() [][]int {
	m := len(in.resources)
	out := make([][]int, len(in.items))
	for i := range out {
		out[i] = append([]int(nil), in.weights[i*m:(i+1)*m]...)
	}

	return out
}

// LPOptimum returns the LP-relaxation optimum and whether one is attached.
func (in *Instance) LPOptimum() (float64, bool) { return in.lpOptimum, in.hasLP }

// Gap returns (lp − value) / lp, or ok == false when no LP optimum is attached.
func (in *Instance) Gap(value float64) (gap float64, ok bool) {
	if !in.hasLP {
		return 0, false
	}

	return (in.lpOptimum - value) / in.lpOptimum, true
}

// PercentGap returns Gap(value) × 100.
func (in *Instance) PercentGap(value float64) (float64, bool) {
	g, ok := in.Gap(value)

	return g * 100, ok
}

// String implements fmt.Stringer with a one-line summary.
func (in *Instance) String() string {
	return fmt.Sprintf("instance{number=%d items=%d resources=%d}", in.number, len(in.items), len(in.resources))
}
