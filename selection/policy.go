// SPDX-License-Identifier: MIT
// Package selection: Policy, the closed enumeration of picking operators.

package selection

import (
	"fmt"
	"math/rand"
	"strings"
)

// Policy names one of the picking operators.
type Policy uint8

const (
	// UniformRandom picks uniformly among pool members.
	UniformRandom Policy = iota
	// MaxProfit picks the most profitable member (earliest on ties).
	MaxProfit
	// MinProfit picks the least profitable member (earliest on ties).
	MinProfit

	policyCount
)

// Picker is the common signature of the table entries. Deterministic
// pickers ignore rng.
type Picker func(p *Pool, rng *rand.Rand) (int, error)

// pickers is indexed by Policy. It is fixed at compile time; there is no
// runtime registration.
var pickers = [policyCount]Picker{
	UniformRandom: PickUniformRandom,
	MaxProfit:     func(p *Pool, _ *rand.Rand) (int, error) { return PickMaxProfit(p) },
	MinProfit:     func(p *Pool, _ *rand.Rand) (int, error) { return PickMinProfit(p) },
}

var policyNames = [policyCount]string{
	UniformRandom: "uniform-random",
	MaxProfit:     "max-profit",
	MinProfit:     "min-profit",
}

// String returns the policy's canonical name.
func (pol Policy) String() string {
	if pol >= policyCount {
		return fmt.Sprintf("Policy(%d)", uint8(pol))
	}

	return policyNames[pol]
}

// Valid reports whether pol is one of the declared policies.
func (pol Policy) Valid() bool { return pol < policyCount }

// ParsePolicy resolves a canonical name (case-insensitive) to a Policy.
func ParsePolicy(s string) (Policy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range policyNames {
		if n == name {
			return Policy(i), nil
		}
	}

	return 0, selectionErrorf("ParsePolicy", ErrUnknownPolicy, "%q", s)
}

// Picker resolves pol to its table entry. Resolve once at configuration time
// and keep the returned function for the hot loop.
func (pol Policy) Picker() (Picker, error) {
	if !pol.Valid() {
		return nil, selectionErrorf("Policy.Picker", ErrUnknownPolicy, "%d", uint8(pol))
	}

	return pickers[pol], nil
}

// Pick applies pol to p. rng may be nil for deterministic policies.
func (pol Policy) Pick(p *Pool, rng *rand.Rand) (int, error) {
	fn, err := pol.Picker()
	if err != nil {
		return 0, err
	}

	return fn(p, rng)
}
