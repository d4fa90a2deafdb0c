// SPDX-License-Identifier: MIT
// Package plan: Step, the closed set of plan instructions.

package plan

import (
	"fmt"
	"strings"
)

// Step is one plan instruction.
type Step uint8

const (
	// StepInit clears and fills with the plan's fill method, unless a
	// provided solution exists (then it does nothing; see StepLoad).
	StepInit Step = iota
	// StepClear empties the solution.
	StepClear
	// StepLoad imports the provided solution, if any.
	StepLoad
	// StepSave builds a snapshot and offers it to the incumbent.
	StepSave
	// StepGreedyFill runs a greedy fill episode over the available items.
	StepGreedyFill
	// StepRandomFill runs a random fill episode over the available items.
	StepRandomFill
	// StepRemoveRandom excludes one uniformly chosen included item.
	StepRemoveRandom
	// StepRemoveWorst excludes the least profitable included item.
	StepRemoveWorst
	// StepMultiRemove uses the plan's MultiRemove settings.
	StepMultiRemove
	// StepAddGreedy includes the most profitable available item, freeing
	// the worst one first when nothing is available.
	StepAddGreedy
	// StepAddRandom includes a random available item, freeing a random one
	// first when nothing is available.
	StepAddRandom

	stepCount
)

var stepNames = [stepCount]string{
	StepInit:         "init",
	StepClear:        "clear",
	StepLoad:         "load",
	StepSave:         "save",
	StepGreedyFill:   "greedy-fill",
	StepRandomFill:   "random-fill",
	StepRemoveRandom: "remove-random",
	StepRemoveWorst:  "remove-worst",
	StepMultiRemove:  "multi-remove",
	StepAddGreedy:    "add-greedy",
	StepAddRandom:    "add-random",
}

func (s Step) String() string {
	if s >= stepCount {
		return fmt.Sprintf("Step(%d)", uint8(s))
	}

	return stepNames[s]
}

// Valid reports whether s is a declared step.
func (s Step) Valid() bool { return s < stepCount }

// ParseStep resolves a step name (case-insensitive; '_' and '-' are
// interchangeable).
func ParseStep(name string) (Step, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, sn := range stepNames {
		if sn == n {
			return Step(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStep, name)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Step) UnmarshalText(text []byte) error {
	v, err := ParseStep(string(text))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Step) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStep, uint8(s))
	}

	return []byte(stepNames[s]), nil
}
