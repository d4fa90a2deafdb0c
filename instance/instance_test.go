// SPDX-License-Identifier: MIT
// Package instance_test covers construction-time validation and the O(m)
// weight kernels of instance.Instance.
package instance_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/knapsack/instance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exampleA is the three-item, one-resource instance used across packages:
// profits 10, 20, 15; capacity 5; weights 3, 4, 2.
func exampleA(t *testing.T, opts ...instance.Option) *instance.Instance {
	t.Helper()
	inst, err := instance.New(
		[]instance.Item{{ID: 0, Profit: 10}, {ID: 1, Profit: 20}, {ID: 2, Profit: 15}},
		[]instance.Resource{{ID: 0, Capacity: 5}},
		[][]int{{3}, {4}, {2}},
		opts...,
	)
	require.NoError(t, err)

	return inst
}

func TestNew_Accessors(t *testing.T) {
	inst := exampleA(t, instance.WithNumber(4))

	assert.Equal(t, 3, inst.ItemCount())
	assert.Equal(t, 1, inst.ResourceCount())
	assert.Equal(t, 4, inst.Number())
	assert.Equal(t, 20, inst.MaxProfit())

	it, err := inst.Item(1)
	require.NoError(t, err)
	assert.Equal(t, instance.Item{ID: 1, Profit: 20}, it)

	res, err := inst.Resource(0)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Capacity)

	w, err := inst.Weight(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, w)

	_, ok := inst.LPOptimum()
	assert.False(t, ok, "no LP optimum attached by default")
}

func TestNew_CopiesInputs(t *testing.T) {
	items := []instance.Item{{ID: 0, Profit: 1}}
	weights := [][]int{{7, 8}}
	inst, err := instance.New(items, []instance.Resource{{ID: 0, Capacity: 9}, {ID: 1, Capacity: 9}}, weights)
	require.NoError(t, err)

	items[0].Profit = 99
	weights[0][1] = 0

	it, _ := inst.Item(0)
	assert.Equal(t, 1, it.Profit)
	w, _ := inst.Weight(0, 1)
	assert.Equal(t, 8, w)

	rows := inst.Weights()
	assert.Equal(t, [][]int{{7, 8}}, rows)
	rows[0][0] = 0
	w, _ = inst.Weight(0, 0)
	assert.Equal(t, 7, w, "Weights must return a copy")

	out := inst.Items()
	out[0].Profit = 42
	it, _ = inst.Item(0)
	assert.Equal(t, 1, it.Profit, "Items must return a copy")
}

func TestNew_Rejects(t *testing.T) {
	ok := []instance.Item{{ID: 0, Profit: 1}, {ID: 1, Profit: 2}}
	res := []instance.Resource{{ID: 0, Capacity: 3}}

	cases := []struct {
		name      string
		items     []instance.Item
		resources []instance.Resource
		weights   [][]int
		opts      []instance.Option
		want      error
	}{
		{"no items", nil, res, nil, nil, instance.ErrNoItems},
		{"no resources", ok, nil, [][]int{{}, {}}, nil, instance.ErrNoResources},
		{"missing row", ok, res, [][]int{{1}}, nil, instance.ErrDimensionMismatch},
		{"ragged row", ok, res, [][]int{{1}, {1, 2}}, nil, instance.ErrDimensionMismatch},
		{"negative weight", ok, res, [][]int{{1}, {-1}}, nil, instance.ErrNegativeValue},
		{"negative profit", []instance.Item{{ID: 0, Profit: -5}}, res, [][]int{{1}}, nil, instance.ErrNegativeValue},
		{"negative capacity", ok, []instance.Resource{{ID: 0, Capacity: -1}}, [][]int{{1}, {1}}, nil, instance.ErrNegativeValue},
		{"item id mismatch", []instance.Item{{ID: 1, Profit: 1}}, res, [][]int{{1}}, nil, instance.ErrIDMismatch},
		{"resource id mismatch", ok, []instance.Resource{{ID: 3, Capacity: 1}}, [][]int{{1}, {1}}, nil, instance.ErrIDMismatch},
		{"nan lp", ok, res, [][]int{{1}, {1}}, []instance.Option{instance.WithLPOptimum(math.NaN())}, instance.ErrInvalidLPOptimum},
		{"zero lp", ok, res, [][]int{{1}, {1}}, []instance.Option{instance.WithLPOptimum(0)}, instance.ErrInvalidLPOptimum},
		{"negative number", ok, res, [][]int{{1}, {1}}, []instance.Option{instance.WithNumber(-1)}, instance.ErrNegativeValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := instance.New(tc.items, tc.resources, tc.weights, tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAccessors_OutOfRange(t *testing.T) {
	inst := exampleA(t)

	_, err := inst.Item(3)
	require.ErrorIs(t, err, instance.ErrItemOutOfRange)
	_, err = inst.Item(-1)
	require.ErrorIs(t, err, instance.ErrItemOutOfRange)
	_, err = inst.Resource(1)
	require.ErrorIs(t, err, instance.ErrResourceOutOfRange)
	_, err = inst.Weight(0, 1)
	require.ErrorIs(t, err, instance.ErrResourceOutOfRange)
	_, err = inst.Weight(5, 0)
	require.ErrorIs(t, err, instance.ErrItemOutOfRange)
}

func TestContains(t *testing.T) {
	inst := exampleA(t)

	assert.True(t, inst.Contains(instance.Item{ID: 2, Profit: 15}))
	assert.False(t, inst.Contains(instance.Item{ID: 2, Profit: 16}), "same id, different profit is foreign")
	assert.False(t, inst.Contains(instance.Item{ID: 3, Profit: 15}))
	assert.False(t, inst.Contains(instance.Item{ID: -1}))
}

func TestWeightKernels(t *testing.T) {
	inst, err := instance.New(
		[]instance.Item{{ID: 0, Profit: 1}, {ID: 1, Profit: 1}},
		[]instance.Resource{{ID: 0, Capacity: 5}, {ID: 1, Capacity: 4}},
		[][]int{{2, 3}, {3, 2}},
	)
	require.NoError(t, err)

	usage := make([]int, 2)
	require.NoError(t, inst.AddWeights(usage, 0))
	assert.Equal(t, []int{2, 3}, usage)
	assert.False(t, inst.FitsWith(usage, 1), "resource 1 would reach 5 > 4")
	assert.Equal(t, 0, inst.Overfilled(usage))

	require.NoError(t, inst.AddWeights(usage, 1))
	assert.Equal(t, []int{5, 5}, usage)
	assert.Equal(t, 1, inst.Overfilled(usage))

	require.NoError(t, inst.SubtractWeights(usage, 0))
	assert.Equal(t, []int{3, 2}, usage)

	require.ErrorIs(t, inst.AddWeights(usage, 2), instance.ErrItemOutOfRange)
	require.ErrorIs(t, inst.SubtractWeights([]int{0}, 0), instance.ErrDimensionMismatch)
	assert.False(t, inst.FitsWith([]int{0}, 0))
	assert.Equal(t, 2, inst.Overfilled(nil))
}

func TestGap(t *testing.T) {
	inst := exampleA(t)
	_, ok := inst.Gap(20)
	assert.False(t, ok)

	withLP, err := inst.WithLPOptimum(40)
	require.NoError(t, err)
	g, ok := withLP.Gap(30)
	require.True(t, ok)
	assert.InDelta(t, 0.25, g, 1e-12)
	pg, _ := withLP.PercentGap(30)
	assert.InDelta(t, 25.0, pg, 1e-9)

	_, ok = inst.LPOptimum()
	assert.False(t, ok, "WithLPOptimum must not mutate the receiver")
	assert.True(t, inst.SameProblem(withLP))
	assert.True(t, withLP.SameProblem(inst))
	assert.False(t, inst.SameProblem(exampleA(t)))
	assert.False(t, inst.SameProblem(nil))

	_, err = inst.WithLPOptimum(math.Inf(1))
	require.ErrorIs(t, err, instance.ErrInvalidLPOptimum)
}
