// SPDX-License-Identifier: MIT
// Package orlib: LP-relaxation optimum tables.

package orlib

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/knapsack/instance"
)

type lpKey struct{ resources, items, number int }

// LPTable maps (resources, items, instance number) to the LP-relaxation
// optimum of that instance.
type LPTable struct {
	values map[lpKey]float64
}

// Len returns the number of entries.
func (t *LPTable) Len() int { return len(t.values) }

// Lookup returns the optimum for the m-resource, n-item instance number idx.
func (t *LPTable) Lookup(m, n, idx int) (float64, bool) {
	v, ok := t.values[lpKey{m, n, idx}]

	return v, ok
}

// ParseLPTable reads an LP table. Later duplicates of a key overwrite
// earlier ones.
func ParseLPTable(r io.Reader) (*LPTable, error) {
	lr := newLineReader(r)
	head, err := lr.fields()
	if err != nil {
		return nil, err
	}
	count, err := lr.atoi(head[0], "entry count")
	if err != nil {
		return nil, err
	}

	t := &LPTable{values: make(map[lpKey]float64, max(count, 0))}
	for k := 0; k < count; k++ {
		f, err := lr.fields()
		if err != nil {
			return nil, err
		}
		if len(f) < 2 {
			return nil, lineErrorf(lr.line, ErrSyntax, "want \"m.n-NN value\", got %q", f)
		}
		key, err := parseLPKey(f[0])
		if err != nil {
			return nil, lineErrorf(lr.line, ErrSyntax, "%v", err)
		}
		v, err := strconv.ParseFloat(f[1], 64)
		if err != nil {
			return nil, lineErrorf(lr.line, ErrSyntax, "%q is not a number", f[1])
		}
		t.values[key] = v
	}

	return t, nil
}

func parseLPKey(s string) (lpKey, error) {
	size, num, ok := strings.Cut(s, "-")
	if !ok {
		return lpKey{}, fmt.Errorf("key %q lacks '-'", s)
	}
	ms, ns, ok := strings.Cut(size, ".")
	if !ok {
		return lpKey{}, fmt.Errorf("key %q lacks '.'", s)
	}
	var k lpKey
	var err error
	if k.resources, err = strconv.Atoi(ms); err != nil {
		return lpKey{}, fmt.Errorf("key %q: bad resource count", s)
	}
	if k.items, err = strconv.Atoi(ns); err != nil {
		return lpKey{}, fmt.Errorf("key %q: bad item count", s)
	}
	if k.number, err = strconv.Atoi(num); err != nil {
		return lpKey{}, fmt.Errorf("key %q: bad instance number", s)
	}

	return k, nil
}

// LoadLPTable parses the LP table at path.
func LoadLPTable(path string) (*LPTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("orlib: %w", err)
	}
	defer f.Close()

	t, err := ParseLPTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// AttachLPOptimum returns a copy of inst carrying its LP optimum from t.
// When t has no entry for inst, inst is returned unchanged with ok false.
func AttachLPOptimum(inst *instance.Instance, t *LPTable) (_ *instance.Instance, ok bool, err error) {
	v, found := t.Lookup(inst.ResourceCount(), inst.ItemCount(), inst.Number())
	if !found {
		return inst, false, nil
	}
	out, err := inst.WithLPOptimum(v)
	if err != nil {
		return nil, false, err
	}

	return out, true, nil
}
