// SPDX-License-Identifier: MIT
// Package plan: Incumbent, the retention policy for saved snapshots.

package plan

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/katalvlaran/knapsack/solution"
)

// Incumbent keeps the most recent and the best snapshot offered to it.
// Best is replaced only by a strictly higher Score, so the earliest of
// equally scored snapshots is kept. Safe for concurrent use.
type Incumbent struct {
	mu       sync.Mutex
	provided *solution.Snapshot
	last     *solution.Snapshot
	best     *solution.Snapshot
	log      *slog.Logger
}

// NewIncumbent returns an empty incumbent. provided is the solution a run
// started from (nil if none); offering a snapshot identical to it logs a
// warning. log may be nil.
func NewIncumbent(provided *solution.Snapshot, log *slog.Logger) *Incumbent {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Incumbent{provided: provided, log: log}
}

// Offer records s as the last snapshot and reports whether it became the
// new best. A nil s is ignored.
func (in *Incumbent) Offer(s *solution.Snapshot) bool {
	if s == nil {
		return false
	}
	in.mu.Lock()
	defer in.mu.Unlock()

	in.last = s
	if in.provided != nil && in.provided.SameAs(s) {
		in.log.LogAttrs(context.Background(), slog.LevelWarn, "provided solution was not modified",
			slog.Int("score", s.Score()))
	}
	if !s.Better(in.best) {
		return false
	}
	in.best = s

	return true
}

// Provided returns the starting solution, or nil.
func (in *Incumbent) Provided() *solution.Snapshot { return in.provided }

// Last returns the most recently offered snapshot, or nil.
func (in *Incumbent) Last() *solution.Snapshot {
	in.mu.Lock()
	defer in.mu.Unlock()

	return in.last
}

// Best returns the best snapshot so far, or nil.
func (in *Incumbent) Best() *solution.Snapshot {
	in.mu.Lock()
	defer in.mu.Unlock()

	return in.best
}
