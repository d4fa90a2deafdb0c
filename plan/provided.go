// SPDX-License-Identifier: MIT
// Package plan: rebuilding a provided solution from exported item IDs.

package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/solution"
)

// SnapshotFromIDs builds a snapshot of inst holding exactly the given item IDs.
func SnapshotFromIDs(inst *instance.Instance, ids []int) (*solution.Snapshot, error) {
	b, err := solution.New(inst)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		it, err := inst.Item(id)
		if err != nil {
			return nil, fmt.Errorf("plan: provided solution: %w", err)
		}
		if err = b.Include(it); err != nil {
			return nil, fmt.Errorf("plan: provided solution: %w", err)
		}
	}

	return b.Build()
}

// providedDoc is the shape LoadProvided accepts: a solution.Summary at the
// top level or under "best". Instance is a pointer so that a missing key
// can be told apart from instance 0.
type providedDoc struct {
	Instance *int  `yaml:"instance"`
	Items    []int `yaml:"items"`
	Best     *struct {
		Instance *int  `yaml:"instance"`
		Items    []int `yaml:"items"`
	} `yaml:"best"`
}

// LoadProvided reads a YAML solution and rebuilds it on inst. The document
// is either a solution.Summary or a run report carrying one under "best"
// (as written by "mkp run --output yaml").
//
// Errors: ErrForeignProvided when the document names an instance number
// other than inst.Number().
func LoadProvided(path string, inst *instance.Instance) (*solution.Snapshot, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}
	var doc providedDoc
	if err = yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("plan: %s: %w", path, err)
	}
	number, ids := doc.Instance, doc.Items
	if doc.Best != nil {
		number, ids = doc.Best.Instance, doc.Best.Items
	}
	if number != nil && *number != inst.Number() {
		return nil, fmt.Errorf("%w: %s was exported from instance %d, loaded instance is %d",
			ErrForeignProvided, path, *number, inst.Number())
	}

	return SnapshotFromIDs(inst, ids)
}
