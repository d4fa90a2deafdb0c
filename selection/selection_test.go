// SPDX-License-Identifier: MIT
// Package selection_test covers Pool bookkeeping, the three picking
// operators and the Policy dispatch table.
package selection_test

import (
	"testing"

	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(profits ...int) []instance.Item {
	out := make([]instance.Item, len(profits))
	for i, p := range profits {
		out[i] = instance.Item{ID: i, Profit: p}
	}

	return out
}

func newPool(t *testing.T, profits ...int) *selection.Pool {
	t.Helper()
	p := selection.NewPool(len(profits))
	require.NoError(t, p.Add(items(profits...)...))

	return p
}

func TestPool_AddRemovePreservesOrder(t *testing.T) {
	p := newPool(t, 5, 6, 7, 8)
	require.Equal(t, 4, p.Len())

	require.NoError(t, p.Remove(instance.Item{ID: 1, Profit: 6}))
	assert.Equal(t, []instance.Item{{ID: 0, Profit: 5}, {ID: 2, Profit: 7}, {ID: 3, Profit: 8}}, p.Items())

	require.NoError(t, p.RemoveAt(0))
	first, err := p.At(0)
	require.NoError(t, err)
	assert.Equal(t, 2, first.ID)
	assert.False(t, p.Contains(instance.Item{ID: 0}))
	assert.True(t, p.Contains(instance.Item{ID: 3}))

	require.ErrorIs(t, p.Remove(instance.Item{ID: 0}), selection.ErrNotInPool)
	require.ErrorIs(t, p.RemoveAt(2), selection.ErrPositionOutOfRange)
	_, err = p.At(-1)
	require.ErrorIs(t, err, selection.ErrPositionOutOfRange)
	require.ErrorIs(t, p.Add(instance.Item{ID: 2}), selection.ErrDuplicateItem)
}

func TestPool_ResetIsReusable(t *testing.T) {
	p := newPool(t, 1, 2, 3)
	p.Reset()
	assert.True(t, p.IsEmpty())
	assert.False(t, p.Contains(instance.Item{ID: 1}))

	require.NoError(t, p.Add(items(9, 9)...), "ids freed by Reset can be added again")
	assert.Equal(t, 2, p.Len())
}

func TestPickers_EmptyPool(t *testing.T) {
	p := selection.NewPool(0)
	_, err := selection.PickMaxProfit(p)
	require.ErrorIs(t, err, selection.ErrEmptyPool)
	_, err = selection.PickMinProfit(p)
	require.ErrorIs(t, err, selection.ErrEmptyPool)
	_, err = selection.PickUniformRandom(p, selection.NewRand(0))
	require.ErrorIs(t, err, selection.ErrEmptyPool)
}

func TestPickMaxMin_TiesKeepEarliest(t *testing.T) {
	p := newPool(t, 3, 9, 1, 9, 1)

	pos, err := selection.PickMaxProfit(p)
	require.NoError(t, err)
	assert.Equal(t, 1, pos)

	pos, err = selection.PickMinProfit(p)
	require.NoError(t, err)
	assert.Equal(t, 2, pos)
}

func TestPickUniformRandom(t *testing.T) {
	p := newPool(t, 1, 1, 1, 1)

	_, err := selection.PickUniformRandom(p, nil)
	require.ErrorIs(t, err, selection.ErrNeedRandSource)

	rng := selection.NewRand(7)
	seen := make(map[int]int)
	for i := 0; i < 4000; i++ {
		pos, err := selection.PickUniformRandom(p, rng)
		require.NoError(t, err)
		require.GreaterOrEqual(t, pos, 0)
		require.Less(t, pos, p.Len())
		seen[pos]++
	}
	for pos := 0; pos < p.Len(); pos++ {
		assert.InDelta(t, 1000, seen[pos], 200, "position %d frequency", pos)
	}
}

func TestPolicy_TableAndNames(t *testing.T) {
	p := newPool(t, 4, 8, 2)

	for _, tc := range []struct {
		name string
		pol  selection.Policy
		want int
	}{
		{"max-profit", selection.MaxProfit, 1},
		{"min-profit", selection.MinProfit, 2},
	} {
		parsed, err := selection.ParsePolicy(tc.name)
		require.NoError(t, err)
		assert.Equal(t, tc.pol, parsed)
		assert.Equal(t, tc.name, tc.pol.String())

		pos, err := tc.pol.Pick(p, nil)
		require.NoError(t, err)
		assert.Equal(t, tc.want, pos)
	}

	parsed, err := selection.ParsePolicy(" Uniform-Random ")
	require.NoError(t, err)
	assert.Equal(t, selection.UniformRandom, parsed)

	_, err = selection.ParsePolicy("best-fit")
	require.ErrorIs(t, err, selection.ErrUnknownPolicy)

	bogus := selection.Policy(42)
	assert.False(t, bogus.Valid())
	_, err = bogus.Pick(p, nil)
	require.ErrorIs(t, err, selection.ErrUnknownPolicy)
	assert.Equal(t, "Policy(42)", bogus.String())
}

func TestRNG_SeedDeterminism(t *testing.T) {
	a, b := selection.NewRand(0), selection.NewRand(selection.DefaultSeed)
	for i := 0; i < 16; i++ {
		require.Equal(t, a.Int63(), b.Int63(), "seed 0 must map to DefaultSeed")
	}

	base1, base2 := selection.NewRand(99), selection.NewRand(99)
	c1, c2 := selection.DeriveRand(base1, 3), selection.DeriveRand(base2, 3)
	for i := 0; i < 16; i++ {
		require.Equal(t, c1.Int63(), c2.Int63())
	}

	s0 := selection.DeriveRand(selection.NewRand(5), 0)
	s1 := selection.DeriveRand(selection.NewRand(5), 1)
	assert.NotEqual(t, s0.Int63(), s1.Int63(), "different streams must diverge")
}

func TestIntInRange(t *testing.T) {
	rng := selection.NewRand(11)
	for i := 0; i < 500; i++ {
		v := selection.IntInRange(rng, 1, 4)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 4)
	}
	assert.Equal(t, 3, selection.IntInRange(rng, 3, 3))
	assert.Equal(t, 5, selection.IntInRange(rng, 5, 2))
}
