// SPDX-License-Identifier: MIT
// Package plan: Runner, the step-list interpreter.

package plan

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/knapsack/heuristic"
	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/solution"
)

const tracerName = "github.com/katalvlaran/knapsack/plan"

// Checkpoint is the outcome of one save step.
type Checkpoint struct {
	Index    int // position of the save step in Plan.Steps
	Snapshot *solution.Snapshot
	Improved bool // became the incumbent's best
}

// Result is the outcome of a run.
type Result struct {
	RunID       uuid.UUID
	Plan        string
	Checkpoints []Checkpoint
	Best        *solution.Snapshot // nil when no save step succeeded
	Last        *solution.Snapshot
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithTracerProvider sets the provider for step spans. Panics on nil.
func WithTracerProvider(tp trace.TracerProvider) RunnerOption {
	if tp == nil {
		panic("plan: WithTracerProvider(nil)")
	}

	return func(r *Runner) { r.tracer = tp.Tracer(tracerName) }
}

// WithLogger sets the run logger. Panics on nil.
func WithLogger(l *slog.Logger) RunnerOption {
	if l == nil {
		panic("plan: WithLogger(nil)")
	}

	return func(r *Runner) { r.log = l }
}

// WithHeuristicOptions appends options for every Library the runner
// creates. They are applied after the plan's seed, so WithRand here wins.
func WithHeuristicOptions(opts ...heuristic.Option) RunnerOption {
	return func(r *Runner) { r.libOpts = append(r.libOpts, opts...) }
}

// WithProvided sets the solution that StepLoad imports and StepInit keeps.
// It must be built on the runner's instance.
func WithProvided(s *solution.Snapshot) RunnerOption {
	return func(r *Runner) { r.provided = s }
}

// WithOnCheckpoint registers fn, called after every save step. Panics on nil.
func WithOnCheckpoint(fn func(Checkpoint)) RunnerOption {
	if fn == nil {
		panic("plan: WithOnCheckpoint(nil)")
	}

	return func(r *Runner) { r.onCheckpoint = append(r.onCheckpoint, fn) }
}

// Runner executes plans against one instance. A Runner may execute several
// plans concurrently; each Run owns its builder and library.
type Runner struct {
	inst         *instance.Instance
	tracer       trace.Tracer
	log          *slog.Logger
	libOpts      []heuristic.Option
	provided     *solution.Snapshot
	onCheckpoint []func(Checkpoint)
}

// NewRunner binds a runner to inst.
func NewRunner(inst *instance.Instance, opts ...RunnerOption) (*Runner, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	r := &Runner{
		inst:   inst,
		tracer: otel.GetTracerProvider().Tracer(tracerName),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// run holds the per-Run state.
type run struct {
	*Runner
	plan *Plan
	b    *solution.Builder
	lib  *heuristic.Library
	inc  *Incumbent
	res  *Result
	log  *slog.Logger
}

// Run validates p and executes its steps once, in order. The context is
// checked between steps. On failure the partial result (checkpoints so far)
// is returned together with the error.
func (r *Runner) Run(ctx context.Context, p *Plan) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	b, err := solution.New(r.inst)
	if err != nil {
		return nil, err
	}
	id := uuid.New()
	log := r.log.With(slog.String("run_id", id.String()), slog.String("plan", p.Name))

	libOpts := append([]heuristic.Option{heuristic.WithSeed(p.Seed), heuristic.WithLogger(log)}, r.libOpts...)
	lib, err := heuristic.New(b, libOpts...)
	if err != nil {
		return nil, err
	}

	st := &run{
		Runner: r,
		plan:   p,
		b:      b,
		lib:    lib,
		inc:    NewIncumbent(r.provided, log),
		res:    &Result{RunID: id, Plan: p.Name},
		log:    log,
	}

	ctx, span := r.tracer.Start(ctx, "plan.Run", trace.WithAttributes(
		attribute.String("plan.name", p.Name),
		attribute.String("run.id", id.String()),
		attribute.Int("plan.steps", len(p.Steps)),
		attribute.Int("instance.number", r.inst.Number()),
	))
	defer span.End()

	log.Info("run started", slog.Int("steps", len(p.Steps)), slog.Int64("seed", p.Seed))
	for i, step := range p.Steps {
		if err = ctx.Err(); err != nil {
			break
		}
		if err = st.exec(ctx, i, step); err != nil {
			err = fmt.Errorf("plan: step %d (%s): %w", i, step, err)
			break
		}
	}
	st.res.Best, st.res.Last = st.inc.Best(), st.inc.Last()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("run failed", slog.Any("error", err))

		return st.res, err
	}
	if best := st.res.Best; best != nil {
		span.SetAttributes(attribute.Int("best.score", best.Score()))
		log.Info("run finished", slog.Int("best_score", best.Score()), slog.Bool("feasible", best.Feasible()))
	} else {
		log.Info("run finished without checkpoints")
	}

	return st.res, nil
}

// exec runs one step inside its own span.
func (st *run) exec(ctx context.Context, i int, step Step) (err error) {
	_, span := st.tracer.Start(ctx, "plan."+step.String(), trace.WithAttributes(
		attribute.Int("step.index", i),
	))
	defer func() {
		span.SetAttributes(attribute.Int("solution.included", st.b.IncludedCount()))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	switch step {
	case StepInit:
		if st.provided != nil {
			return nil
		}
		st.b.Clear()
		_, err = st.lib.Fill(st.plan.Fill)
	case StepClear:
		st.b.Clear()
	case StepLoad:
		if st.provided != nil {
			err = st.b.ImportSolution(st.provided)
		}
	case StepSave:
		err = st.save(i)
	case StepGreedyFill:
		_, err = st.lib.GreedyFill()
	case StepRandomFill:
		_, err = st.lib.RandomFill()
	case StepRemoveRandom:
		_, err = st.lib.RemoveRandom()
	case StepRemoveWorst:
		_, err = st.lib.RemoveWorst()
	case StepMultiRemove:
		mr := st.plan.MultiRemove
		_, err = st.lib.MultiRemove(mr.Remove, mr.Fraction, mr.RandomCount)
	case StepAddGreedy:
		_, err = st.lib.AddGreedy()
	case StepAddRandom:
		_, err = st.lib.AddRandom()
	default:
		err = fmt.Errorf("%w: %d", ErrUnknownStep, uint8(step))
	}

	return err
}

func (st *run) save(i int) error {
	s, err := st.b.Build()
	if err != nil {
		return err
	}
	cp := Checkpoint{Index: i, Snapshot: s, Improved: st.inc.Offer(s)}
	st.res.Checkpoints = append(st.res.Checkpoints, cp)

	attrs := []slog.Attr{
		slog.Int("step", i),
		slog.Int("score", s.Score()),
		slog.Bool("feasible", s.Feasible()),
		slog.Int("items", s.ItemCount()),
		slog.Bool("improved", cp.Improved),
	}
	if g, ok := s.PercentGap(); ok {
		attrs = append(attrs, slog.Float64("gap_percent", g))
	}
	st.log.LogAttrs(context.Background(), slog.LevelDebug, "checkpoint", attrs...)
	for _, fn := range st.onCheckpoint {
		fn(cp)
	}

	return nil
}
