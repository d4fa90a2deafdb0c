// SPDX-License-Identifier: MIT
// Package plan: sentinel errors.

package plan

import "errors"

var (
	// ErrEmptyPlan indicates a plan without steps.
	ErrEmptyPlan = errors.New("plan: no steps")

	// ErrUnknownStep indicates a step name or value outside the enumeration.
	ErrUnknownStep = errors.New("plan: unknown step")

	// ErrInvalidPlan indicates an invalid plan parameter.
	ErrInvalidPlan = errors.New("plan: invalid parameter")

	// ErrForeignProvided indicates a provided solution exported from another instance.
	ErrForeignProvided = errors.New("plan: provided solution belongs to another instance")

	// ErrNilInstance is returned by NewRunner for a nil instance.
	ErrNilInstance = errors.New("plan: instance is nil")
)
