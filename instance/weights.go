// SPDX-License-Identifier: MIT
// Package instance: O(m) weight-vector kernels over caller-owned usage vectors.
//
// These helpers are the hot path of every include/exclude/feasibility query.
// They check only the O(1) shape preconditions (item index, len(usage));
// weights themselves were validated once in New and are not re-checked.

package instance

const (
	methodAddWeights      = "AddWeights"
	methodSubtractWeights = "SubtractWeights"
)

// row returns item i's weight vector as a view into the frozen table.
// Callers inside the package must not write through it.
func (in *Instance) row(i int) []int {
	m := len(in.resources)

	return in.weights[i*m : (i+1)*m]
}

func (in *Instance) checkUsage(method string, usage []int, item int) error {
	if item < 0 || item >= len(in.items) {
		return instanceErrorf(method, ErrItemOutOfRange, "item %d", item)
	}
	if len(usage) != len(in.resources) {
		return instanceErrorf(method, ErrDimensionMismatch, "usage length %d, want %d", len(usage), len(in.resources))
	}

	return nil
}

// AddWeights adds item's weight vector to usage in place.
//
// Complexity: O(m).
func (in *Instance) AddWeights(usage []int, item int) error {
	if err := in.checkUsage(methodAddWeights, usage, item); err != nil {
		return err
	}
	for r, w := range in.row(item) {
		usage[r] += w
	}

	return nil
}

// SubtractWeights subtracts item's weight vector from usage in place.
//
// Complexity: O(m).
func (in *Instance) SubtractWeights(usage []int, item int) error {
	if err := in.checkUsage(methodSubtractWeights, usage, item); err != nil {
		return err
	}
	for r, w := range in.row(item) {
		usage[r] -= w
	}

	return nil
}

// FitsWith reports whether usage[r] + w(item, r) ≤ capacity(r) for every r.
// It returns false when item or usage does not match the instance.
//
// Complexity: O(m); stops at the first violated resource.
func (in *Instance) FitsWith(usage []int, item int) bool {
	if item < 0 || item >= len(in.items) || len(usage) != len(in.resources) {
		return false
	}
	for r, w := range in.row(item) {
		if usage[r]+w > in.resources[r].Capacity {
			return false
		}
	}

	return true
}

// Overfilled returns how many resources have usage above capacity.
// A usage vector of the wrong length counts every resource as overfilled.
//
// Complexity: O(m).
func (in *Instance) Overfilled(usage []int) int {
	if len(usage) != len(in.resources) {
		return len(in.resources)
	}
	var count int
	for r, res := range in.resources {
		if usage[r] > res.Capacity {
			count++
		}
	}

	return count
}
