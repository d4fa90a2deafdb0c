// SPDX-License-Identifier: MIT
// Package selection: sentinel error set. Messages are prefixed with
// "selection: "; callers match with errors.Is.

package selection

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPool is returned when a policy is asked to pick from an empty pool.
	ErrEmptyPool = errors.New("selection: empty pool")

	// ErrNotInPool is returned when removing an item that is not a pool member.
	ErrNotInPool = errors.New("selection: item not in pool")

	// ErrDuplicateItem is returned when adding an item that is already a member.
	ErrDuplicateItem = errors.New("selection: item already in pool")

	// ErrPositionOutOfRange indicates a pool position outside [0, Len()).
	ErrPositionOutOfRange = errors.New("selection: position out of range")

	// ErrUnknownPolicy is returned for Policy values outside the closed set.
	ErrUnknownPolicy = errors.New("selection: unknown policy")

	// ErrNeedRandSource is returned when UniformRandom is invoked with a nil rng.
	ErrNeedRandSource = errors.New("selection: rng is required")
)

// selectionErrorf wraps err with "<method>(<detail>): ".
func selectionErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s(%s): %w", method, fmt.Sprintf(format, args...), err)
}
