// SPDX-License-Identifier: MIT

// Package orlib reads the OR-Library multidimensional knapsack formats:
//
// Instance files (mknapcb*.txt):
//
//	K                      number of instances
//	n m opt                per instance: items, resources, best known (0 if unknown)
//	p_0 … p_{n-1}          profits, possibly wrapped over several lines
//	w_{0,0} … w_{0,n-1}    m blocks of n weights, one block per resource
//	…
//	c_0 … c_{m-1}          capacities
//
// Every block starts on a fresh line and may wrap; a line may not carry
// entries of two blocks.
//
// LP tables (mknapcb-lp-opt.txt):
//
//	K
//	m.n-NN value           LP-relaxation optimum of instance NN of size m×n
//
// Parse errors name the offending line.
package orlib
