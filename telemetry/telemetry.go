// SPDX-License-Identifier: MIT
// Package telemetry exposes Prometheus metrics for heuristic runs.
//
// A Collector registers on a caller-supplied registry (never the global
// one) and is fed through heuristic hooks and snapshot checkpoints:
//
//	reg := prometheus.NewRegistry()
//	col := telemetry.NewCollector(reg)
//	lib, _ := heuristic.New(b, col.HeuristicOptions()...)
//	...
//	col.ObserveSnapshot(snap)
//	_ = telemetry.WriteText(os.Stdout, reg)
//
// All methods are safe for concurrent use.
package telemetry

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/knapsack/heuristic"
	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/solution"
)

const namespace = "mkp"

// Collector holds the run metrics.
type Collector struct {
	// Includes counts items included by heuristic moves.
	Includes prometheus.Counter
	// Excludes counts items excluded by heuristic moves.
	Excludes prometheus.Counter
	// Episodes counts completed episodes. Labels: kind.
	Episodes *prometheus.CounterVec
	// EpisodeMoves observes items included (fills) or removed (multi-remove)
	// per episode. Labels: kind.
	EpisodeMoves *prometheus.HistogramVec
	// Checkpoints counts built snapshots. Labels: feasible.
	Checkpoints *prometheus.CounterVec
	// BestScore is the highest snapshot score observed.
	BestScore prometheus.Gauge
	// BestGapPercent is the LP gap of the best snapshot, when known.
	BestGapPercent prometheus.Gauge

	mu      sync.Mutex
	hasBest bool
	best    int
}

// NewCollector creates the metrics and registers them on reg.
// Panics if registration fails, as promauto does.
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		Includes: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "builder",
			Name:      "includes_total",
			Help:      "Items included by heuristic moves.",
		}),
		Excludes: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "builder",
			Name:      "excludes_total",
			Help:      "Items excluded by heuristic moves.",
		}),
		Episodes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "heuristic",
			Name:      "episodes_total",
			Help:      "Completed fill and multi-remove episodes by kind.",
		}, []string{"kind"}),
		EpisodeMoves: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "heuristic",
			Name:      "episode_moves",
			Help:      "Items included (fill) or removed (multi-remove) per episode.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"kind"}),
		Checkpoints: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "solution",
			Name:      "checkpoints_total",
			Help:      "Snapshots built, by feasibility.",
		}, []string{"feasible"}),
		BestScore: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "solution",
			Name:      "best_score",
			Help:      "Highest snapshot score observed.",
		}),
		BestGapPercent: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "solution",
			Name:      "best_gap_percent",
			Help:      "LP gap of the best snapshot in percent.",
		}),
	}
}

// HeuristicOptions returns the hooks that feed c from a heuristic.Library.
func (c *Collector) HeuristicOptions() []heuristic.Option {
	return []heuristic.Option{
		heuristic.WithOnInclude(func(instance.Item) { c.Includes.Inc() }),
		heuristic.WithOnExclude(func(instance.Item) { c.Excludes.Inc() }),
		heuristic.WithOnEpisode(c.observeEpisode),
	}
}

func (c *Collector) observeEpisode(ep heuristic.Episode) {
	kind := string(ep.Kind)
	c.Episodes.WithLabelValues(kind).Inc()
	moves := ep.Included
	if ep.Kind == heuristic.KindMultiRemove {
		moves = ep.Removed
	}
	c.EpisodeMoves.WithLabelValues(kind).Observe(float64(moves))
}

// ObserveSnapshot records a checkpoint and raises the best-score gauges
// when s scores strictly higher than every earlier snapshot.
func (c *Collector) ObserveSnapshot(s *solution.Snapshot) {
	if s == nil {
		return
	}
	c.Checkpoints.WithLabelValues(strconv.FormatBool(s.Feasible())).Inc()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hasBest && s.Score() <= c.best {
		return
	}
	c.hasBest, c.best = true, s.Score()
	c.BestScore.Set(float64(s.Score()))
	if g, ok := s.PercentGap(); ok {
		c.BestGapPercent.Set(g)
	}
}

// WriteText writes every family gathered from g in the Prometheus text
// exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("telemetry: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("telemetry: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
