// SPDX-License-Identifier: MIT
// Package instance: sentinel error set.
//
// Every message is prefixed with "instance: ". Constructors and accessors
// wrap these sentinels with positional context through instanceErrorf;
// callers match them with errors.Is.

package instance

import (
	"errors"
	"fmt"
)

var (
	// ErrNoItems is returned when an instance is built without items.
	ErrNoItems = errors.New("instance: no items")

	// ErrNoResources is returned when an instance is built without resources.
	ErrNoResources = errors.New("instance: no resources")

	// ErrDimensionMismatch signals a ragged or short weight matrix, or a
	// usage vector whose length differs from the resource count.
	ErrDimensionMismatch = errors.New("instance: dimension mismatch")

	// ErrNegativeValue signals a negative profit, capacity or weight.
	ErrNegativeValue = errors.New("instance: negative value")

	// ErrIDMismatch signals an item or resource whose ID differs from its position.
	ErrIDMismatch = errors.New("instance: id does not match position")

	// ErrItemOutOfRange indicates an item index outside [0, n).
	ErrItemOutOfRange = errors.New("instance: item index out of range")

	// ErrResourceOutOfRange indicates a resource index outside [0, m).
	ErrResourceOutOfRange = errors.New("instance: resource index out of range")

	// ErrInvalidLPOptimum indicates an LP optimum that is NaN, ±Inf or not positive.
	ErrInvalidLPOptimum = errors.New("instance: invalid LP optimum")
)

// instanceErrorf prefixes err with the method name and a formatted location,
// e.g. "New(item 3, resource 1): instance: negative value".
//
// Complexity: O(len(format) + Σlen(args)).
func instanceErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s(%s): %w", method, fmt.Sprintf(format, args...), err)
}
