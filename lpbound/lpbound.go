// SPDX-License-Identifier: MIT
// Package lpbound computes the LP-relaxation optimum of an MKP instance,
// the reference value for gap reporting when no LP table is available.
//
// The relaxation max pᵀx s.t. Wᵀx ≤ c, 0 ≤ x ≤ 1 is solved in standard
// form with gonum's simplex:
//
//	min −pᵀx  s.t.  [Wᵀ I_m 0  ] [x]   [c]
//	                [I_n 0  I_n] [s] = [1],   x, s, t ≥ 0
//	                             [t]
//
// The slack columns (s, t) form a feasible initial basis because c ≥ 0.
package lpbound

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/knapsack/instance"
)

// DefaultTolerance is the simplex pivot tolerance used by Optimum.
const DefaultTolerance = 1e-10

// ErrNonPositiveBound indicates a relaxation optimum ≤ 0 (e.g. all profits
// zero), which cannot serve as a gap reference.
var ErrNonPositiveBound = errors.New("lpbound: relaxation optimum is not positive")

// StandardForm returns (c, A, b) of the relaxation as described in the
// package documentation, together with the slack basis.
//
// Complexity: O((n+m)·(2n+m)) memory.
func StandardForm(inst *instance.Instance) (c []float64, a *mat.Dense, b []float64, basis []int) {
	n, m := inst.ItemCount(), inst.ResourceCount()
	rows, cols := m+n, 2*n+m

	c = make([]float64, cols)
	for i, it := range inst.Items() {
		c[i] = -float64(it.Profit)
	}

	w := inst.Weights()
	a = mat.NewDense(rows, cols, nil)
	b = make([]float64, rows)
	for r, res := range inst.Resources() {
		for i := 0; i < n; i++ {
			a.Set(r, i, float64(w[i][r]))
		}
		a.Set(r, n+r, 1)
		b[r] = float64(res.Capacity)
	}
	for i := 0; i < n; i++ {
		a.Set(m+i, i, 1)
		a.Set(m+i, n+m+i, 1)
		b[m+i] = 1
	}

	basis = make([]int, rows)
	for k := range basis {
		basis[k] = n + k
	}

	return c, a, b, basis
}

// Solution is the relaxation optimum and the fractional item vector.
type Solution struct {
	Value float64
	X     []float64 // len n, each in [0, 1]
}

// Solve runs the simplex on inst's relaxation.
func Solve(inst *instance.Instance, tol float64) (Solution, error) {
	c, a, b, basis := StandardForm(inst)
	opt, x, err := lp.Simplex(c, a, b, tol, basis)
	if err != nil {
		return Solution{}, fmt.Errorf("lpbound: simplex: %w", err)
	}

	return Solution{Value: -opt, X: x[:inst.ItemCount()]}, nil
}

// Optimum returns the relaxation optimum at DefaultTolerance.
func Optimum(inst *instance.Instance) (float64, error) {
	sol, err := Solve(inst, DefaultTolerance)
	if err != nil {
		return 0, err
	}

	return sol.Value, nil
}

// Attach returns a copy of inst carrying its computed relaxation optimum.
//
// Errors: simplex failures, ErrNonPositiveBound.
func Attach(inst *instance.Instance) (*instance.Instance, error) {
	v, err := Optimum(inst)
	if err != nil {
		return nil, err
	}
	if !(v > 0) {
		return nil, fmt.Errorf("%w: %g", ErrNonPositiveBound, v)
	}

	return inst.WithLPOptimum(v)
}
