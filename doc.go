// SPDX-License-Identifier: MIT

// Package knapsack is a toolkit for building and perturbing solutions of the
// multidimensional knapsack problem (MKP): choose a subset of items that
// maximizes total profit while every resource stays within its capacity.
//
// 🚀 What is inside?
//
//	• Instances: immutable items, resources and a validated weight matrix
//	• Solutions: an incremental builder (O(m) per include/exclude) that
//	  finalizes into immutable, penalty-scored snapshots
//	• Selection: a closed set of picking policies over ordered pools
//	• Heuristics: greedy/random fill, remove-random, remove-worst,
//	  multi-remove and single-item add moves
//	• Plans: YAML step lists executed by a traced runner that keeps the
//	  best snapshot
//	• OR-Library I/O, an LP-relaxation bound and Prometheus metrics
//
// ✨ Scoring in one line:
//
//	score = profit − overfilled × included × (maxProfit + 1)
//
// so every infeasible snapshot ranks below every feasible one.
//
// Packages:
//
//	instance/   Item, Resource, Instance and the usage kernels
//	selection/  Pool, Pick* operators, Policy table, RNG helpers
//	solution/   Builder and Snapshot
//	heuristic/  Library of composite moves with hooks
//	plan/       Plan, Runner, Incumbent
//	orlib/      mknapcb and LP-table readers
//	lpbound/    LP relaxation via gonum's simplex
//	telemetry/  Prometheus collector fed by heuristic hooks
//	cmd/mkp     the command-line front end
//
// Quick example (see solution and heuristic examples for runnable code):
//
//	inst, _ := orlib.LoadInstance("mknapcb1.txt", 0)
//	b, _ := solution.New(inst)
//	lib, _ := heuristic.New(b, heuristic.WithSeed(7))
//	_, _ = lib.GreedyFill()
//	snap, _ := b.Build()
//	fmt.Print(snap)
//
//	go install github.com/katalvlaran/knapsack/cmd/mkp@latest
package knapsack
