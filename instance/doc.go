// SPDX-License-Identifier: MIT

// Package instance models an immutable Multidimensional Knapsack Problem
// (MKP) instance: n profit-bearing items, m capacity-bounded resources and
// a complete n×m integer weight matrix.
//
// An Instance is validated once in New and never changes afterwards, so it
// may be shared read-only by any number of goroutines, each of which owns
// its own solution.Builder.
//
// Layout:
//
//	items[i]       Item{ID: i, Profit: p_i}
//	resources[r]   Resource{ID: r, Capacity: c_r}
//	weights[i*m+r]  w(i, r), row-major, one row per item
//
// Row-major storage keeps one item's weight vector contiguous, which is what
// the O(m) incremental usage updates of the builder walk over.
//
// Errors (all matched with errors.Is):
//
//	ErrNoItems, ErrNoResources     empty instance.
//	ErrDimensionMismatch           ragged or short weight matrix, usage vector of wrong length.
//	ErrNegativeValue               negative profit, capacity or weight.
//	ErrIDMismatch                  item/resource ID differs from its position.
//	ErrItemOutOfRange              item index outside [0, n).
//	ErrResourceOutOfRange          resource index outside [0, m).
//	ErrInvalidLPOptimum            NaN, ±Inf or non-positive LP optimum.
package instance
