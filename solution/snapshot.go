// SPDX-License-Identifier: MIT
// Package solution: Snapshot, the immutable result of Builder.Build.

package solution

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/knapsack/instance"
)

// Snapshot is an immutable solution: a copied item set (ascending IDs), a
// copied usage vector and its score. It shares nothing mutable with the
// builder that produced it.
type Snapshot struct {
	inst        *instance.Instance
	items       []instance.Item
	usage       []int
	totalProfit int
	overfilled  int
	penalty     int
}

// Instance returns the instance the snapshot was built on.
func (s *Snapshot) Instance() *instance.Instance { return s.inst }

// Score returns TotalProfit − Penalty, the value snapshots are compared by.
func (s *Snapshot) Score() int { return s.totalProfit - s.penalty }

// TotalProfit returns the raw profit sum of the included items.
func (s *Snapshot) TotalProfit() int { return s.totalProfit }

// Penalty returns the infeasibility penalty (0 for feasible snapshots).
func (s *Snapshot) Penalty() int { return s.penalty }

// Overfilled returns the number of resources above capacity.
func (s *Snapshot) Overfilled() int { return s.overfilled }

// Feasible reports whether the penalty is zero.
func (s *Snapshot) Feasible() bool { return s.penalty == 0 }

// Items returns a copy of the included items in ascending ID order.
func (s *Snapshot) Items() []instance.Item { return slices.Clone(s.items) }

// ItemCount returns the number of included items.
func (s *Snapshot) ItemCount() int { return len(s.items) }

// Usage returns a copy of the usage vector.
func (s *Snapshot) Usage() []int { return slices.Clone(s.usage) }

// HasItem reports whether the item with the given ID is included.
//
// Complexity: O(log k).
func (s *Snapshot) HasItem(id int) bool {
	_, found := slices.BinarySearchFunc(s.items, id, func(it instance.Item, target int) int { return it.ID - target })

	return found
}

// SameAs reports whether both snapshots hold exactly the same item IDs.
//
// Complexity: O(k).
func (s *Snapshot) SameAs(other *Snapshot) bool {
	if other == nil || len(other.items) != len(s.items) {
		return false
	}
	for i := range s.items {
		if s.items[i].ID != other.items[i].ID {
			return false
		}
	}

	return true
}

// Better reports whether s scores strictly above other. Any snapshot is
// better than nil.
func (s *Snapshot) Better(other *Snapshot) bool {
	return other == nil || s.Score() > other.Score()
}

// Gap returns (lp − Score) / lp, or ok == false when the instance carries
// no LP optimum.
func (s *Snapshot) Gap() (float64, bool) { return s.inst.Gap(float64(s.Score())) }

// PercentGap returns Gap × 100.
func (s *Snapshot) PercentGap() (float64, bool) { return s.inst.PercentGap(float64(s.Score())) }

// Summary is a flat, export-friendly view of a snapshot.
type Summary struct {
	Instance    int      `json:"instance" yaml:"instance"`
	Score       int      `json:"score" yaml:"score"`
	TotalProfit int      `json:"total_profit" yaml:"total_profit"`
	Penalty     int      `json:"penalty" yaml:"penalty"`
	Feasible    bool     `json:"feasible" yaml:"feasible"`
	GapPercent  *float64 `json:"gap_percent,omitempty" yaml:"gap_percent,omitempty"`
	Items       []int    `json:"items" yaml:"items,flow"`
	Usage       []int    `json:"usage" yaml:"usage,flow"`
	Overfilled  []int    `json:"overfilled,omitempty" yaml:"overfilled,omitempty,flow"`
}

// Summary returns the export view of s.
func (s *Snapshot) Summary() Summary {
	out := Summary{
		Instance:    s.inst.Number(),
		Score:       s.Score(),
		TotalProfit: s.totalProfit,
		Penalty:     s.penalty,
		Feasible:    s.Feasible(),
		Items:       make([]int, len(s.items)),
		Usage:       slices.Clone(s.usage),
	}
	if g, ok := s.PercentGap(); ok {
		out.GapPercent = &g
	}
	for i, it := range s.items {
		out.Items[i] = it.ID
	}
	for r, res := range s.inst.Resources() {
		if s.usage[r] > res.Capacity {
			out.Overfilled = append(out.Overfilled, r)
		}
	}

	return out
}

// String renders the snapshot for reports: score (and gap), feasibility,
// item IDs and usage, with '!' after every overfilled resource.
func (s *Snapshot) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Total profit: %d", s.Score())
	if g, ok := s.PercentGap(); ok {
		fmt.Fprintf(&sb, " (gap: %.4f%%)", g)
	}
	fmt.Fprintf(&sb, "\nFeasible: %t\nItem list:", s.Feasible())
	for _, it := range s.items {
		fmt.Fprintf(&sb, " %d", it.ID)
	}
	sb.WriteString("\nResource usage:")
	for r, res := range s.inst.Resources() {
		fmt.Fprintf(&sb, " %d", s.usage[r])
		if s.usage[r] > res.Capacity {
			sb.WriteByte('!')
		}
	}
	sb.WriteByte('\n')

	return sb.String()
}
