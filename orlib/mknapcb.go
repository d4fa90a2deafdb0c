// SPDX-License-Identifier: MIT
// Package orlib: instance file reader.

package orlib

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/knapsack/instance"
)

// ParseInstances reads every instance of an mknapcb stream. The k-th
// instance (0-based) carries instance.WithNumber(k).
//
// Errors: ErrUnexpectedEOF, ErrSyntax, ErrEntryCount (line-numbered), or
// an instance validation error.
func ParseInstances(r io.Reader) ([]*instance.Instance, error) {
	lr := newLineReader(r)

	head, err := lr.fields()
	if err != nil {
		return nil, err
	}
	count, err := lr.atoi(head[0], "instance count")
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, lineErrorf(lr.line, ErrSyntax, "negative instance count %d", count)
	}

	out := make([]*instance.Instance, 0, count)
	for k := 0; k < count; k++ {
		inst, err := parseOne(lr, k)
		if err != nil {
			return nil, fmt.Errorf("orlib: instance %d: %w", k, err)
		}
		out = append(out, inst)
	}

	return out, nil
}

func parseOne(lr *lineReader, number int) (*instance.Instance, error) {
	head, err := lr.fields()
	if err != nil {
		return nil, err
	}
	if len(head) < 2 {
		return nil, lineErrorf(lr.line, ErrSyntax, "header needs item and resource counts, got %q", head)
	}
	n, err := lr.atoi(head[0], "item count")
	if err != nil {
		return nil, err
	}
	m, err := lr.atoi(head[1], "resource count")
	if err != nil {
		return nil, err
	}
	if n <= 0 || m <= 0 {
		return nil, lineErrorf(lr.line, ErrSyntax, "non-positive size %d×%d", n, m)
	}
	headerLine := lr.line

	profits, err := lr.ints(n, "profits")
	if err != nil {
		return nil, err
	}
	// File order is resource-major; instance.New takes item-major rows.
	weights := make([][]int, n)
	for i := range weights {
		weights[i] = make([]int, m)
	}
	for r := 0; r < m; r++ {
		row, err := lr.ints(n, fmt.Sprintf("weights of resource %d", r))
		if err != nil {
			return nil, err
		}
		for i, w := range row {
			weights[i][r] = w
		}
	}
	caps, err := lr.ints(m, "capacities")
	if err != nil {
		return nil, err
	}

	items := make([]instance.Item, n)
	for i, p := range profits {
		items[i] = instance.Item{ID: i, Profit: p}
	}
	resources := make([]instance.Resource, m)
	for r, c := range caps {
		resources[r] = instance.Resource{ID: r, Capacity: c}
	}
	inst, err := instance.New(items, resources, weights, instance.WithNumber(number))
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", headerLine, err)
	}

	return inst, nil
}

// LoadInstance parses the file at path and returns its index-th instance.
//
// Errors: ErrInstanceIndex, file and parse errors.
func LoadInstance(path string, index int) (*instance.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("orlib: %w", err)
	}
	defer f.Close()

	all, err := ParseInstances(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if index < 0 || index >= len(all) {
		return nil, fmt.Errorf("%s: %w: %d of %d", path, ErrInstanceIndex, index, len(all))
	}

	return all[index], nil
}
