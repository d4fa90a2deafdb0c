// SPDX-License-Identifier: MIT
// Package heuristic: Library, fill episodes and single removals.

package heuristic

import (
	"context"
	"log/slog"
	"math/rand"
	"slices"

	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/selection"
	"github.com/katalvlaran/knapsack/solution"
)

// EpisodeKind labels a completed episode.
type EpisodeKind string

const (
	KindGreedyFill  EpisodeKind = "greedy-fill"
	KindRandomFill  EpisodeKind = "random-fill"
	KindMultiRemove EpisodeKind = "multi-remove"
)

// Episode summarizes one fill or multi-remove invocation.
type Episode struct {
	Kind     EpisodeKind
	Visited  int // items drawn from the pool (fill only)
	Included int
	Removed  int
}

// Library applies composite moves to one Builder.
type Library struct {
	b    *solution.Builder
	pool *selection.Pool
	rng  *rand.Rand
	log  *slog.Logger

	onInclude []func(instance.Item)
	onExclude []func(instance.Item)
	onEpisode []func(Episode)
}

// New binds a Library to b. b must not be mutated concurrently with the
// Library's moves.
func New(b *solution.Builder, opts ...Option) (*Library, error) {
	if b == nil {
		return nil, ErrNilBuilder
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Library{
		b:         b,
		pool:      selection.NewPool(b.Instance().ItemCount()),
		rng:       cfg.rng,
		log:       cfg.logger,
		onInclude: cfg.onInclude,
		onExclude: cfg.onExclude,
		onEpisode: cfg.onEpisode,
	}, nil
}

// Builder returns the builder the Library mutates.
func (l *Library) Builder() *solution.Builder { return l.b }

// Rand returns the Library's random source.
func (l *Library) Rand() *rand.Rand { return l.rng }

// Fill runs one fill episode with the given method.
//
// Every available item is drawn once in policy order; a drawn item is
// included iff IsIncludeFeasible holds at that moment, and leaves the pool
// either way. Pools are seeded in ascending ID order, so greedy ties go to
// the lowest ID.
//
// Errors: ErrUnknownMethod, ErrNoAvailableItems.
//
// Complexity: O(n²) pool maintenance plus O(n·m) feasibility checks.
func (l *Library) Fill(method FillMethod) (Episode, error) {
	pol, err := method.Policy()
	if err != nil {
		return Episode{}, heuristicErrorf("Fill", err)
	}
	ep := Episode{Kind: KindGreedyFill}
	if method == RandomFill {
		ep.Kind = KindRandomFill
	}
	if l.b.AvailableCount() == 0 {
		return ep, heuristicErrorf(string(ep.Kind), ErrNoAvailableItems)
	}

	pick, _ := pol.Picker()
	if err = l.seedPool(l.b.AvailableItems()); err != nil {
		return ep, err
	}
	for !l.pool.IsEmpty() {
		pos, err := pick(l.pool, l.rng)
		if err != nil {
			return ep, heuristicErrorf(string(ep.Kind), err)
		}
		it, _ := l.pool.At(pos)
		ep.Visited++
		if l.b.IsIncludeFeasible(it) {
			if err = l.include(it); err != nil {
				return ep, heuristicErrorf(string(ep.Kind), err)
			}
			ep.Included++
		}
		if err = l.pool.RemoveAt(pos); err != nil {
			return ep, heuristicErrorf(string(ep.Kind), err)
		}
	}
	l.endEpisode(ep)

	return ep, nil
}

// GreedyFill is Fill(GreedyFill).
func (l *Library) GreedyFill() (Episode, error) { return l.Fill(GreedyFill) }

// RandomFill is Fill(RandomFill).
func (l *Library) RandomFill() (Episode, error) { return l.Fill(RandomFill) }

// Remove excludes one included item chosen by method and returns it.
// Unlike Builder.CanRemove, a removal that empties the solution is allowed.
//
// Errors: ErrUnknownMethod, ErrNoIncludedItems.
func (l *Library) Remove(method RemoveMethod) (instance.Item, error) {
	pol, err := method.Policy()
	if err != nil {
		return instance.Item{}, heuristicErrorf("Remove", err)
	}
	op := "remove-" + method.String()
	if l.b.IncludedCount() == 0 {
		return instance.Item{}, heuristicErrorf(op, ErrNoIncludedItems)
	}
	if err = l.seedPool(l.b.IncludedItems()); err != nil {
		return instance.Item{}, err
	}
	pos, err := pol.Pick(l.pool, l.rng)
	if err != nil {
		return instance.Item{}, heuristicErrorf(op, err)
	}
	it, _ := l.pool.At(pos)
	if err = l.exclude(it); err != nil {
		return instance.Item{}, heuristicErrorf(op, err)
	}

	return it, nil
}

// RemoveRandom is Remove(RemoveRandom).
func (l *Library) RemoveRandom() (instance.Item, error) { return l.Remove(RemoveRandom) }

// RemoveWorst is Remove(RemoveWorst).
func (l *Library) RemoveWorst() (instance.Item, error) { return l.Remove(RemoveWorst) }

// seedPool refills the scratch pool with items in ascending ID order.
func (l *Library) seedPool(items []instance.Item) error {
	slices.SortFunc(items, func(x, y instance.Item) int { return x.ID - y.ID })
	l.pool.Reset()

	return l.pool.Add(items...)
}

func (l *Library) include(it instance.Item) error {
	if err := l.b.Include(it); err != nil {
		return err
	}
	for _, fn := range l.onInclude {
		fn(it)
	}

	return nil
}

func (l *Library) exclude(it instance.Item) error {
	if err := l.b.Exclude(it); err != nil {
		return err
	}
	for _, fn := range l.onExclude {
		fn(it)
	}

	return nil
}

func (l *Library) endEpisode(ep Episode) {
	l.log.LogAttrs(context.Background(), slog.LevelDebug, "episode",
		slog.String("kind", string(ep.Kind)),
		slog.Int("visited", ep.Visited),
		slog.Int("included", ep.Included),
		slog.Int("removed", ep.Removed),
		slog.Int("size", l.b.IncludedCount()),
	)
	for _, fn := range l.onEpisode {
		fn(ep)
	}
}
