// SPDX-License-Identifier: MIT
// Package instance: value types for items and resources.

package instance

import "fmt"

// Item is a selectable object with a non-negative profit.
// Two items are the same item iff their IDs are equal; inside an Instance
// the ID doubles as the item's position.
type Item struct {
	// ID is the item's index in its Instance, 0..n-1.
	ID int

	// Profit is the value gained when the item is included.
	Profit int
}

// String implements fmt.Stringer.
func (it Item) String() string {
	return fmt.Sprintf("item{id=%d profit=%d}", it.ID, it.Profit)
}

// Resource is a capacity-bounded dimension of the knapsack.
type Resource struct {
	// ID is the resource's index in its Instance, 0..m-1.
	ID int

	// Capacity is the maximum admissible cumulative weight.
	Capacity int
}

// String implements fmt.Stringer.
func (r Resource) String() string {
	return fmt.Sprintf("resource{id=%d capacity=%d}", r.ID, r.Capacity)
}
