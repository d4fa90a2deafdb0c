// SPDX-License-Identifier: MIT
// Package heuristic: functional options for New.
//
// Option constructors panic on nil arguments; the moves themselves never
// panic. Randomness is explicit: WithSeed or WithRand, otherwise the
// selection.DefaultSeed stream.

package heuristic

import (
	"io"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/selection"
)

// Option customizes a Library.
type Option func(*config)

type config struct {
	rng       *rand.Rand
	logger    *slog.Logger
	onInclude []func(instance.Item)
	onExclude []func(instance.Item)
	onEpisode []func(Episode)
}

func defaultConfig() config {
	return config{
		rng:    selection.NewRand(0),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithSeed seeds a private RNG; seed 0 maps to selection.DefaultSeed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = selection.NewRand(seed) }
}

// WithRand uses r for every random decision. r must not be shared with
// another goroutine. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("heuristic: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithLogger sets the debug logger for episodes. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("heuristic: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}

// WithOnInclude registers fn, called after every inclusion made by the Library.
// Multiple hooks run in registration order. Panics on nil.
func WithOnInclude(fn func(instance.Item)) Option {
	if fn == nil {
		panic("heuristic: WithOnInclude(nil)")
	}

	return func(c *config) { c.onInclude = append(c.onInclude, fn) }
}

// WithOnExclude registers fn, called after every exclusion made by the Library.
// Panics on nil.
func WithOnExclude(fn func(instance.Item)) Option {
	if fn == nil {
		panic("heuristic: WithOnExclude(nil)")
	}

	return func(c *config) { c.onExclude = append(c.onExclude, fn) }
}

// WithOnEpisode registers fn, called when a fill or multi-remove episode ends.
// Panics on nil.
func WithOnEpisode(fn func(Episode)) Option {
	if fn == nil {
		panic("heuristic: WithOnEpisode(nil)")
	}

	return func(c *config) { c.onEpisode = append(c.onEpisode, fn) }
}
