// SPDX-License-Identifier: MIT
// Package solution: sentinel error set.
//
// Every builder failure is a local precondition violation. Errors are
// wrapped with the failing operation and the offending item, e.g.
// "Builder.Include(item 3): solution: item already included"; callers match
// with errors.Is. Nothing is retried here.

package solution

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInstance is returned by New for a nil instance.
	ErrNilInstance = errors.New("solution: instance is nil")

	// ErrInvalidItem indicates an item that does not belong to the builder's instance.
	ErrInvalidItem = errors.New("solution: item does not belong to the instance")

	// ErrDuplicateInclusion indicates Include on an item that is already included.
	ErrDuplicateInclusion = errors.New("solution: item already included")

	// ErrNotIncluded indicates Exclude on an item that is not included.
	ErrNotIncluded = errors.New("solution: item not included")

	// ErrEmptyBuild indicates Build on a solution with no included items.
	ErrEmptyBuild = errors.New("solution: cannot build an empty solution")

	// ErrNilSnapshot indicates ImportSolution(nil).
	ErrNilSnapshot = errors.New("solution: snapshot is nil")

	// ErrForeignSnapshot indicates ImportSolution of a snapshot built on another instance.
	ErrForeignSnapshot = errors.New("solution: snapshot belongs to another instance")
)

const (
	methodInclude = "Builder.Include"
	methodExclude = "Builder.Exclude"
	methodImport  = "Builder.ImportSolution"
)

// itemErrorf wraps err with the method and the offending item id.
func itemErrorf(method string, id int, err error) error {
	return fmt.Errorf("%s(item %d): %w", method, id, err)
}
