// SPDX-License-Identifier: MIT

// Package plan sequences heuristic moves into a run.
//
// A Plan is an ordered list of Steps plus the parameters the steps need
// (fill method, multi-remove settings, seed). It is usually read from YAML:
//
//	name: perturb-and-refill
//	fill: greedy
//	seed: 42
//	multi_remove: {remove: random, fraction: 0.75, random_count: true}
//	steps: [init, save, multi-remove, random-fill, save]
//
// A Runner executes a plan once, in order, against a fresh Builder. Every
// "save" step builds a snapshot and offers it to an Incumbent, which keeps
// the last and the best one. There are no loops, acceptance criteria or
// restarts; callers compose those around Run.
//
// Each step runs inside an OpenTelemetry span; the tracer defaults to the
// global provider (a no-op unless one is installed).
package plan
