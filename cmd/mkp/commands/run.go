// SPDX-License-Identifier: MIT
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knapsack/heuristic"
	"github.com/katalvlaran/knapsack/plan"
	"github.com/katalvlaran/knapsack/solution"
	"github.com/katalvlaran/knapsack/telemetry"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute a heuristic plan and report its checkpoints",
		Long: `run executes a plan once against the selected instance and prints every
saved checkpoint followed by the best one. Without --plan the default plan
is used: an initial fill followed by add, remove and multi-remove
perturbations, saving after each.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd)
		},
	}
	fs := cmd.Flags()
	addInstanceFlags(fs)
	fs.String("plan", "", "YAML plan file (default: built-in plan)")
	fs.String("fill", "greedy", "fill method for init steps: greedy or random")
	fs.Int64("seed", 0, "RNG seed (0 selects the default seed)")
	fs.Int("runs", 1, "independent runs with derived seeds; the best one is reported")
	fs.Int("parallel", 0, "maximum concurrent runs (0: all at once)")
	fs.String("from", "", "start from a solution exported with --output yaml")
	fs.String("output", "text", "result format: text or yaml")
	fs.Bool("metrics", false, "print Prometheus metrics after the run")
	fs.Bool("trace", false, "export step spans to stderr")

	return cmd
}

func (a *app) run(cmd *cobra.Command) error {
	output := strings.ToLower(a.v.GetString("output"))
	if output != "text" && output != "yaml" {
		return fmt.Errorf("output: unknown format %q", output)
	}
	inst, err := a.loadInstance()
	if err != nil {
		return err
	}

	p := plan.Default()
	if path := a.v.GetString("plan"); path != "" {
		if p, err = plan.Load(path); err != nil {
			return err
		}
	}
	if a.v.IsSet("fill") || a.v.GetString("plan") == "" {
		if p.Fill, err = heuristic.ParseFillMethod(a.v.GetString("fill")); err != nil {
			return err
		}
	}
	if a.v.IsSet("seed") {
		p.Seed = a.v.GetInt64("seed")
	}

	opts := []plan.RunnerOption{plan.WithLogger(a.log)}
	if from := a.v.GetString("from"); from != "" {
		provided, err := plan.LoadProvided(from, inst)
		if err != nil {
			return err
		}
		opts = append(opts, plan.WithProvided(provided))
	}

	var reg *prometheus.Registry
	if a.v.GetBool("metrics") {
		reg = prometheus.NewRegistry()
		col := telemetry.NewCollector(reg)
		opts = append(opts,
			plan.WithHeuristicOptions(col.HeuristicOptions()...),
			plan.WithOnCheckpoint(func(cp plan.Checkpoint) { col.ObserveSnapshot(cp.Snapshot) }),
		)
	}
	if a.v.GetBool("trace") {
		exp, err := stdouttrace.New(stdouttrace.WithWriter(a.errOut), stdouttrace.WithPrettyPrint())
		if err != nil {
			return fmt.Errorf("trace exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
		defer func() { _ = tp.Shutdown(cmd.Context()) }()
		opts = append(opts, plan.WithTracerProvider(tp))
	}

	runner, err := plan.NewRunner(inst, opts...)
	if err != nil {
		return err
	}
	if runs := a.v.GetInt("runs"); runs > 1 {
		batch, runErr := runner.RunBatch(cmd.Context(), p, runs, a.v.GetInt("parallel"))
		if batch != nil {
			if err = writeBatch(cmd.OutOrStdout(), output, p, batch); err != nil {
				return err
			}
		}
		if runErr != nil {
			return runErr
		}

		return writeMetrics(cmd.OutOrStdout(), reg)
	}
	res, runErr := runner.Run(cmd.Context(), p)
	if res != nil {
		if err = writeResult(cmd.OutOrStdout(), output, p, res); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}

	return writeMetrics(cmd.OutOrStdout(), reg)
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	if reg == nil {
		return nil
	}

	return telemetry.WriteText(w, reg)
}

// report is the YAML form of a run.
type report struct {
	RunID       string             `yaml:"run_id"`
	Plan        string             `yaml:"plan"`
	Fill        string             `yaml:"fill"`
	Seed        int64              `yaml:"seed"`
	Checkpoints []checkpointReport `yaml:"checkpoints"`
	Best        *solution.Summary  `yaml:"best,omitempty"`
}

type batchReport struct {
	Plan    string            `yaml:"plan"`
	Fill    string            `yaml:"fill"`
	Seed    int64             `yaml:"seed"`
	Runs    []runReport       `yaml:"runs"`
	BestRun int               `yaml:"best_run"`
	Best    *solution.Summary `yaml:"best,omitempty"`
}

type runReport struct {
	RunID string `yaml:"run_id"`
	Seed  int64  `yaml:"seed"`
	Score *int   `yaml:"score,omitempty"`
}

type checkpointReport struct {
	Step     int              `yaml:"step"`
	Improved bool             `yaml:"improved"`
	Solution solution.Summary `yaml:"solution"`
}

func writeResult(w io.Writer, format string, p *plan.Plan, res *plan.Result) error {
	if format == "yaml" {
		r := report{RunID: res.RunID.String(), Plan: res.Plan, Fill: p.Fill.String(), Seed: p.Seed}
		for _, cp := range res.Checkpoints {
			r.Checkpoints = append(r.Checkpoints, checkpointReport{Step: cp.Index, Improved: cp.Improved, Solution: cp.Snapshot.Summary()})
		}
		if res.Best != nil {
			sum := res.Best.Summary()
			r.Best = &sum
		}
		return encodeYAML(w, r)
	}

	fmt.Fprintf(w, "run %s (plan %s, fill %s, seed %d)\n", res.RunID, res.Plan, p.Fill, p.Seed)
	for _, cp := range res.Checkpoints {
		mark := ""
		if cp.Improved {
			mark = " *"
		}
		fmt.Fprintf(w, "\n--- checkpoint at step %d%s\n%s", cp.Index, mark, cp.Snapshot)
	}
	if res.Best != nil {
		fmt.Fprintf(w, "\n=== best\n%s", res.Best)
	}

	return nil
}

func writeBatch(w io.Writer, format string, p *plan.Plan, b *plan.Batch) error {
	if format == "yaml" {
		r := batchReport{Plan: p.Name, Fill: p.Fill.String(), Seed: p.Seed, BestRun: b.BestRun}
		for i, res := range b.Results {
			rr := runReport{Seed: b.Seeds[i]}
			if res != nil {
				rr.RunID = res.RunID.String()
				if res.Best != nil {
					score := res.Best.Score()
					rr.Score = &score
				}
			}
			r.Runs = append(r.Runs, rr)
		}
		if b.Best != nil {
			sum := b.Best.Summary()
			r.Best = &sum
		}

		return encodeYAML(w, r)
	}

	fmt.Fprintf(w, "batch of %d runs (plan %s, fill %s, seed %d)\n", len(b.Results), p.Name, p.Fill, p.Seed)
	for i, res := range b.Results {
		switch {
		case res == nil:
			fmt.Fprintf(w, "run %d: not started\n", i)
		case res.Best == nil:
			fmt.Fprintf(w, "run %d: seed %d, no checkpoint\n", i, b.Seeds[i])
		default:
			fmt.Fprintf(w, "run %d: seed %d, best %d\n", i, b.Seeds[i], res.Best.Score())
		}
	}
	if b.Best != nil {
		fmt.Fprintf(w, "\n=== best (run %d)\n%s", b.BestRun, b.Best)
	}

	return nil
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
