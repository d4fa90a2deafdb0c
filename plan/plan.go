// SPDX-License-Identifier: MIT
// Package plan: Plan, its defaults and YAML decoding.

package plan

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knapsack/heuristic"
)

// MultiRemove configures StepMultiRemove.
type MultiRemove struct {
	Remove      heuristic.RemoveMethod `yaml:"remove"`
	Fraction    float64                `yaml:"fraction"`
	RandomCount bool                   `yaml:"random_count"`
}

// Plan is a named step list with its parameters.
type Plan struct {
	Name        string               `yaml:"name"`
	Fill        heuristic.FillMethod `yaml:"fill"`
	Seed        int64                `yaml:"seed"`
	MultiRemove MultiRemove          `yaml:"multi_remove"`
	Steps       []Step               `yaml:"steps"`
}

// DefaultMultiRemove removes a random count, up to three quarters of the
// included items, at random.
func DefaultMultiRemove() MultiRemove {
	return MultiRemove{Remove: heuristic.RemoveRandom, Fraction: 0.75, RandomCount: true}
}

// Default returns the smoke-test plan: an initial solution followed by
// every perturbation kind, saving after each.
func Default() *Plan {
	return &Plan{
		Name:        "default",
		Fill:        heuristic.GreedyFill,
		MultiRemove: DefaultMultiRemove(),
		Steps: []Step{
			StepInit, StepSave,
			StepAddRandom, StepSave,
			StepRemoveRandom, StepSave,
			StepMultiRemove, StepSave,
			StepMultiRemove, StepRandomFill, StepSave,
			StepMultiRemove, StepGreedyFill, StepSave,
		},
	}
}

// Validate checks the plan's parameters and steps.
func (p *Plan) Validate() error {
	if len(p.Steps) == 0 {
		return ErrEmptyPlan
	}
	for i, s := range p.Steps {
		if !s.Valid() {
			return fmt.Errorf("%w: steps[%d] = %d", ErrUnknownStep, i, uint8(s))
		}
	}
	if _, err := p.Fill.Policy(); err != nil {
		return fmt.Errorf("%w: fill: %w", ErrInvalidPlan, err)
	}
	if _, err := p.MultiRemove.Remove.Policy(); err != nil {
		return fmt.Errorf("%w: multi_remove.remove: %w", ErrInvalidPlan, err)
	}
	if f := p.MultiRemove.Fraction; !(f > 0 && f <= 1) {
		return fmt.Errorf("%w: multi_remove.fraction %v not in (0, 1]", ErrInvalidPlan, f)
	}

	return nil
}

// Decode reads one YAML plan. Omitted fill and multi_remove fields keep
// the defaults of Default; unknown keys are rejected.
func Decode(r io.Reader) (*Plan, error) {
	p := &Plan{Fill: heuristic.GreedyFill, MultiRemove: DefaultMultiRemove()}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyPlan
		}
		return nil, fmt.Errorf("plan: decode: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Load decodes the plan file at path. A plan without a name is named
// after the file.
func Load(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = path
	}

	return p, nil
}
