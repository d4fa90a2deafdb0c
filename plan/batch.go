// SPDX-License-Identifier: MIT
// Package plan: RunBatch, independent multi-start runs of one plan.

package plan

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/knapsack/selection"
	"github.com/katalvlaran/knapsack/solution"
)

// Batch is the outcome of RunBatch. Results[i] is run i; BestRun is -1
// when no run saved a checkpoint.
type Batch struct {
	Results []*Result
	Seeds   []int64
	Best    *solution.Snapshot
	BestRun int
}

// BatchSeed returns the seed of run i in a batch started from seed.
// Seeds are a pure function of (seed, i), so a batch is reproducible
// regardless of scheduling.
func BatchSeed(seed int64, i int) int64 {
	return selection.DeriveRand(selection.NewRand(seed), uint64(i)).Int63()
}

// RunBatch executes p runs times with seeds BatchSeed(p.Seed, i), at most
// parallel at a time (parallel <= 0 means all at once). The first failing
// run cancels the others; the batch built so far is returned with the error.
// Checkpoint hooks registered on r are called from several goroutines.
//
// Best is the highest-scoring best snapshot; ties go to the lowest run index.
func (r *Runner) RunBatch(ctx context.Context, p *Plan, runs, parallel int) (*Batch, error) {
	if runs < 1 {
		return nil, fmt.Errorf("%w: runs = %d", ErrInvalidPlan, runs)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	batch := &Batch{
		Results: make([]*Result, runs),
		Seeds:   make([]int64, runs),
		BestRun: -1,
	}
	g, gctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i := range runs {
		q := *p
		q.Seed = BatchSeed(p.Seed, i)
		q.Name = fmt.Sprintf("%s#%d", p.Name, i)
		batch.Seeds[i] = q.Seed
		g.Go(func() error {
			res, err := r.Run(gctx, &q)
			batch.Results[i] = res

			return err
		})
	}
	err := g.Wait()

	for i, res := range batch.Results {
		if res != nil && res.Best != nil && res.Best.Better(batch.Best) {
			batch.Best, batch.BestRun = res.Best, i
		}
	}
	if batch.Best != nil {
		r.log.Info("batch finished", slog.Int("runs", runs), slog.Int("best_run", batch.BestRun),
			slog.Int("best_score", batch.Best.Score()))
	}

	return batch, err
}
