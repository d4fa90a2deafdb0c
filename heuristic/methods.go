// SPDX-License-Identifier: MIT
// Package heuristic: FillMethod and RemoveMethod, closed enumerations of
// the composite moves, each bound to a selection.Policy at compile time.

package heuristic

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/knapsack/selection"
)

// FillMethod selects the draw order of a fill episode.
type FillMethod uint8

const (
	// GreedyFill visits available items by decreasing profit.
	GreedyFill FillMethod = iota
	// RandomFill visits available items in uniformly random order.
	RandomFill

	fillMethodCount
)

var fillPolicies = [fillMethodCount]selection.Policy{
	GreedyFill: selection.MaxProfit,
	RandomFill: selection.UniformRandom,
}

var fillNames = [fillMethodCount]string{
	GreedyFill: "greedy",
	RandomFill: "random",
}

// String returns the method name used in flags and plan files.
func (f FillMethod) String() string {
	if f >= fillMethodCount {
		return fmt.Sprintf("FillMethod(%d)", uint8(f))
	}

	return fillNames[f]
}

// Policy returns the selection policy driving the episode.
func (f FillMethod) Policy() (selection.Policy, error) {
	if f >= fillMethodCount {
		return 0, fmt.Errorf("%w: %s", ErrUnknownMethod, f)
	}

	return fillPolicies[f], nil
}

// ParseFillMethod accepts "greedy"/"random", with or without a "-fill" suffix.
func ParseFillMethod(s string) (FillMethod, error) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "-fill")
	for i, n := range fillNames {
		if n == name {
			return FillMethod(i), nil
		}
	}

	return 0, fmt.Errorf("%w: fill %q", ErrUnknownMethod, s)
}

// UnmarshalText lets FillMethod appear in YAML plans and flag values.
func (f *FillMethod) UnmarshalText(text []byte) error {
	v, err := ParseFillMethod(string(text))
	if err != nil {
		return err
	}
	*f = v

	return nil
}

// MarshalText renders the canonical name.
func (f FillMethod) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// RemoveMethod selects which included item a single removal drops.
type RemoveMethod uint8

const (
	// RemoveRandom drops a uniformly random included item.
	RemoveRandom RemoveMethod = iota
	// RemoveWorst drops the least profitable included item (lowest ID on ties).
	RemoveWorst

	removeMethodCount
)

var removePolicies = [removeMethodCount]selection.Policy{
	RemoveRandom: selection.UniformRandom,
	RemoveWorst:  selection.MinProfit,
}

var removeNames = [removeMethodCount]string{
	RemoveRandom: "random",
	RemoveWorst:  "worst",
}

// String returns the method name used in flags and plan files.
func (m RemoveMethod) String() string {
	if m >= removeMethodCount {
		return fmt.Sprintf("RemoveMethod(%d)", uint8(m))
	}

	return removeNames[m]
}

// Policy returns the selection policy used to pick the victim.
func (m RemoveMethod) Policy() (selection.Policy, error) {
	if m >= removeMethodCount {
		return 0, fmt.Errorf("%w: %s", ErrUnknownMethod, m)
	}

	return removePolicies[m], nil
}

// ParseRemoveMethod accepts "random"/"worst" ("greedy" is an alias of
// "worst"), with or without a "remove-" prefix.
func ParseRemoveMethod(s string) (RemoveMethod, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "remove-")
	if name == "greedy" {
		return RemoveWorst, nil
	}
	for i, n := range removeNames {
		if n == name {
			return RemoveMethod(i), nil
		}
	}

	return 0, fmt.Errorf("%w: remove %q", ErrUnknownMethod, s)
}

// UnmarshalText lets RemoveMethod appear in YAML plans and flag values.
func (m *RemoveMethod) UnmarshalText(text []byte) error {
	v, err := ParseRemoveMethod(string(text))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// MarshalText renders the canonical name.
func (m RemoveMethod) MarshalText() ([]byte, error) { return []byte(m.String()), nil }
