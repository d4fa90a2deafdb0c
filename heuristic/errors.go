// SPDX-License-Identifier: MIT
// Package heuristic: sentinel errors.

package heuristic

import (
	"errors"
	"fmt"
)

var (
	// ErrNilBuilder is returned by New for a nil builder.
	ErrNilBuilder = errors.New("heuristic: builder is nil")

	// ErrNoAvailableItems indicates a fill or add with nothing left to include.
	ErrNoAvailableItems = errors.New("heuristic: no available items")

	// ErrNoIncludedItems indicates a removal from an empty solution.
	ErrNoIncludedItems = errors.New("heuristic: no included items")

	// ErrInvalidFraction indicates a multi-remove fraction outside (0, 1].
	ErrInvalidFraction = errors.New("heuristic: fraction must be in (0, 1]")

	// ErrUnknownMethod indicates a FillMethod or RemoveMethod outside its enumeration.
	ErrUnknownMethod = errors.New("heuristic: unknown method")
)

// heuristicErrorf prefixes err with the operation name.
func heuristicErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
