// SPDX-License-Identifier: MIT
package plan_test

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knapsack/heuristic"
	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/plan"
	"github.com/katalvlaran/knapsack/solution"
)

func randomInstance(t *testing.T, seed int64, n, m int) *instance.Instance {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	items := make([]instance.Item, n)
	weights := make([][]int, n)
	for i := range items {
		items[i] = instance.Item{ID: i, Profit: 1 + rng.Intn(80)}
		weights[i] = make([]int, m)
		for r := range weights[i] {
			weights[i][r] = 1 + rng.Intn(30)
		}
	}
	resources := make([]instance.Resource, m)
	for r := range resources {
		resources[r] = instance.Resource{ID: r, Capacity: 8 * n}
	}
	inst, err := instance.New(items, resources, weights, instance.WithLPOptimum(float64(80*n)))
	require.NoError(t, err)

	return inst
}

func tracing(t *testing.T) (*tracetest.SpanRecorder, plan.RunnerOption) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	return sr, plan.WithTracerProvider(tp)
}

func TestRunner_DefaultPlan(t *testing.T) {
	inst := randomInstance(t, 1, 40, 3)
	sr, withTP := tracing(t)
	var seen []plan.Checkpoint
	r, err := plan.NewRunner(inst, withTP, plan.WithOnCheckpoint(func(cp plan.Checkpoint) { seen = append(seen, cp) }))
	require.NoError(t, err)

	p := plan.Default()
	p.Seed = 7
	res, err := r.Run(context.Background(), p)
	require.NoError(t, err)

	require.Len(t, res.Checkpoints, 6)
	assert.Equal(t, res.Checkpoints, seen)
	assert.Equal(t, "default", res.Plan)
	assert.NotEqual(t, [16]byte{}, [16]byte(res.RunID))

	first := res.Checkpoints[0]
	assert.Equal(t, 1, first.Index)
	assert.True(t, first.Improved)
	assert.True(t, first.Snapshot.Feasible(), "init fills greedily")

	best := res.Checkpoints[0].Snapshot
	for _, cp := range res.Checkpoints[1:] {
		if cp.Improved {
			assert.Greater(t, cp.Snapshot.Score(), best.Score())
			best = cp.Snapshot
		}
	}
	assert.Same(t, best, res.Best)
	assert.Same(t, res.Checkpoints[5].Snapshot, res.Last)

	spans := sr.Ended()
	require.Len(t, spans, len(p.Steps)+1)
	assert.Equal(t, "plan.init", spans[0].Name())
	assert.Equal(t, "plan.Run", spans[len(spans)-1].Name())
}

func TestRunner_SeedReproducible(t *testing.T) {
	inst := randomInstance(t, 2, 50, 4)
	r, err := plan.NewRunner(inst)
	require.NoError(t, err)

	p := plan.Default()
	p.Fill = heuristic.RandomFill
	p.Seed = 99
	a, err := r.Run(context.Background(), p)
	require.NoError(t, err)
	b, err := r.Run(context.Background(), p)
	require.NoError(t, err)

	require.Len(t, b.Checkpoints, len(a.Checkpoints))
	for i := range a.Checkpoints {
		assert.True(t, a.Checkpoints[i].Snapshot.SameAs(b.Checkpoints[i].Snapshot), "checkpoint %d", i)
	}
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestRunner_StepFailure(t *testing.T) {
	inst := randomInstance(t, 3, 10, 2)
	sr, withTP := tracing(t)
	r, err := plan.NewRunner(inst, withTP)
	require.NoError(t, err)

	res, err := r.Run(context.Background(), &plan.Plan{
		Name:        "broken",
		MultiRemove: plan.DefaultMultiRemove(),
		Steps:       []plan.Step{plan.StepGreedyFill, plan.StepSave, plan.StepClear, plan.StepSave},
	})
	require.ErrorIs(t, err, solution.ErrEmptyBuild)
	assert.Contains(t, err.Error(), "step 3 (save)")
	require.NotNil(t, res)
	assert.Len(t, res.Checkpoints, 1, "checkpoints before the failure are kept")
	assert.NotNil(t, res.Best)

	spans := sr.Ended()
	require.NotEmpty(t, spans)
	assert.Equal(t, codes.Error, spans[len(spans)-1].Status().Code)
}

func TestRunner_ContextCancelled(t *testing.T) {
	r, err := plan.NewRunner(randomInstance(t, 4, 10, 2))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = r.Run(ctx, plan.Default())
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunner_RunBatch(t *testing.T) {
	inst := randomInstance(t, 7, 40, 3)
	var saved atomic.Int64
	r, err := plan.NewRunner(inst, plan.WithOnCheckpoint(func(plan.Checkpoint) { saved.Add(1) }))
	require.NoError(t, err)

	p := plan.Default()
	p.Fill = heuristic.RandomFill
	p.Seed = 11
	a, err := r.RunBatch(context.Background(), p, 6, 2)
	require.NoError(t, err)
	require.Len(t, a.Results, 6)
	require.NotNil(t, a.Best)

	var total int64
	for i, res := range a.Results {
		require.NotNil(t, res, "run %d", i)
		assert.Equal(t, plan.BatchSeed(p.Seed, i), a.Seeds[i])
		assert.GreaterOrEqual(t, a.Best.Score(), res.Best.Score())
		total += int64(len(res.Checkpoints))
	}
	assert.Equal(t, total, saved.Load())
	assert.Same(t, a.Results[a.BestRun].Best, a.Best)
	assert.Equal(t, int64(11), p.Seed, "the caller's plan is not modified")

	b, err := r.RunBatch(context.Background(), p, 6, 0)
	require.NoError(t, err)
	assert.Equal(t, a.Seeds, b.Seeds)
	assert.Equal(t, a.BestRun, b.BestRun)
	assert.True(t, a.Best.SameAs(b.Best), "batches are reproducible regardless of scheduling")

	_, err = r.RunBatch(context.Background(), p, 0, 1)
	require.ErrorIs(t, err, plan.ErrInvalidPlan)
}

func TestRunner_ProvidedSolution(t *testing.T) {
	inst := randomInstance(t, 5, 20, 2)
	provided, err := plan.SnapshotFromIDs(inst, []int{3, 1, 4})
	require.NoError(t, err)

	var logs bytes.Buffer
	r, err := plan.NewRunner(inst,
		plan.WithProvided(provided),
		plan.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
	)
	require.NoError(t, err)

	res, err := r.Run(context.Background(), &plan.Plan{
		Name:        "resume",
		MultiRemove: plan.DefaultMultiRemove(),
		Steps:       []plan.Step{plan.StepInit, plan.StepLoad, plan.StepSave},
	})
	require.NoError(t, err)
	require.Len(t, res.Checkpoints, 1)
	assert.True(t, res.Best.SameAs(provided), "init keeps a provided solution, load imports it")
	assert.Contains(t, logs.String(), "provided solution was not modified")

	_, err = plan.SnapshotFromIDs(inst, []int{99})
	require.ErrorIs(t, err, instance.ErrItemOutOfRange)
	_, err = plan.SnapshotFromIDs(inst, []int{1, 1})
	require.ErrorIs(t, err, solution.ErrDuplicateInclusion)
}

func TestLoadProvided(t *testing.T) {
	inst := randomInstance(t, 6, 12, 2)
	s, err := plan.SnapshotFromIDs(inst, []int{0, 5, 7})
	require.NoError(t, err)

	raw, err := yaml.Marshal(s.Summary())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "best.yaml")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	back, err := plan.LoadProvided(path, inst)
	require.NoError(t, err)
	assert.True(t, back.SameAs(s))
	assert.Equal(t, s.Score(), back.Score())

	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

		return p
	}

	_, err = plan.LoadProvided(write("other.yaml", "instance: 7\nitems: [0, 1]\n"), inst)
	require.ErrorIs(t, err, plan.ErrForeignProvided)
	assert.Contains(t, err.Error(), "instance 7")

	_, err = plan.LoadProvided(write("report.yaml", "run_id: x\nbest:\n  instance: 3\n  items: [0]\n"), inst)
	require.ErrorIs(t, err, plan.ErrForeignProvided, "the nested best summary is checked too")

	bare, err := plan.LoadProvided(write("bare.yaml", "items: [2, 4]\n"), inst)
	require.NoError(t, err, "documents without an instance key are accepted")
	assert.True(t, bare.HasItem(4))

	_, err = plan.LoadProvided(path, nil)
	require.ErrorIs(t, err, plan.ErrNilInstance)
}

func TestIncumbent(t *testing.T) {
	inst, err := instance.New(
		[]instance.Item{{ID: 0, Profit: 3}, {ID: 1, Profit: 4}},
		[]instance.Resource{{ID: 0, Capacity: 2}},
		[][]int{{1}, {1}},
	)
	require.NoError(t, err)
	a, err := plan.SnapshotFromIDs(inst, []int{0})
	require.NoError(t, err)
	a2, err := plan.SnapshotFromIDs(inst, []int{0})
	require.NoError(t, err)
	both, err := plan.SnapshotFromIDs(inst, []int{0, 1})
	require.NoError(t, err)
	require.Greater(t, both.Score(), a.Score())

	in := plan.NewIncumbent(nil, nil)
	assert.Nil(t, in.Best())
	assert.False(t, in.Offer(nil))

	assert.True(t, in.Offer(a))
	assert.False(t, in.Offer(a2), "equal score keeps the earlier snapshot")
	assert.Same(t, a, in.Best())
	assert.Same(t, a2, in.Last())

	assert.True(t, in.Offer(both))
	assert.False(t, in.Offer(a))
	assert.Same(t, both, in.Best())
	assert.Same(t, a, in.Last())
}

func TestDecode(t *testing.T) {
	p, err := plan.Decode(strings.NewReader(`
name: perturb
fill: random
seed: 42
multi_remove: {remove: worst, fraction: 0.25}
steps: [init, save, multi_remove, greedy-fill, save]
`))
	require.NoError(t, err)
	assert.Equal(t, "perturb", p.Name)
	assert.Equal(t, heuristic.RandomFill, p.Fill)
	assert.Equal(t, int64(42), p.Seed)
	assert.Equal(t, plan.MultiRemove{Remove: heuristic.RemoveWorst, Fraction: 0.25, RandomCount: true}, p.MultiRemove,
		"omitted keys keep their defaults")
	assert.Equal(t, []plan.Step{plan.StepInit, plan.StepSave, plan.StepMultiRemove, plan.StepGreedyFill, plan.StepSave}, p.Steps)

	defaults, err := plan.Decode(strings.NewReader("steps: [init, save]\n"))
	require.NoError(t, err)
	assert.Equal(t, heuristic.GreedyFill, defaults.Fill)
	assert.Equal(t, plan.DefaultMultiRemove(), defaults.MultiRemove)
}

func TestDecode_Errors(t *testing.T) {
	_, err := plan.Decode(strings.NewReader(""))
	require.ErrorIs(t, err, plan.ErrEmptyPlan)

	_, err = plan.Decode(strings.NewReader("steps: []\n"))
	require.ErrorIs(t, err, plan.ErrEmptyPlan)

	_, err = plan.Decode(strings.NewReader("steps: [init, teleport]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown step")

	_, err = plan.Decode(strings.NewReader("steps: [init]\nspeed: 3\n"))
	require.Error(t, err, "unknown keys are rejected")

	_, err = plan.Decode(strings.NewReader("steps: [init]\nmulti_remove: {fraction: 0}\n"))
	require.ErrorIs(t, err, plan.ErrInvalidPlan)

	_, err = plan.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_NamesAfterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quick.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps: [init, save]\n"), 0o600))

	p, err := plan.Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, p.Name)
}

func TestStep_Names(t *testing.T) {
	for _, s := range plan.Default().Steps {
		back, err := plan.ParseStep(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, back)
	}
	assert.Equal(t, "Step(200)", plan.Step(200).String())
	_, err := plan.Step(200).MarshalText()
	require.ErrorIs(t, err, plan.ErrUnknownStep)
	require.ErrorIs(t, (&plan.Plan{Steps: []plan.Step{200}, MultiRemove: plan.DefaultMultiRemove()}).Validate(), plan.ErrUnknownStep)
}
