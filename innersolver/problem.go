// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package innersolver implements the interior-point minimisers that the
// chunking trainer (gonum.org/v1/svm/chunking) delegates its box-constrained
// subproblems to: a log-barrier objective is formed over a working set's
// Lagrangian, and driven to its minimum either by preconditioned
// conjugate-gradient descent with a backtracking line search, or by a
// truncated-Newton step solved approximately with gonum's CG linear solver.
package innersolver // import "gonum.org/v1/svm/innersolver"

import "gonum.org/v1/svm/rowcache"

// Problem is the box-constrained quadratic Lagrangian
//
//	L(λ) = ½ λᵀ Q λ + Linear·λ,  0 < λ_i < C for every i,
//
// that the chunking trainer poses for its working set. Q is supplied as a
// rowcache.Operator (the Q_BB block action) rather than a dense matrix,
// since it is backed by prefetched, possibly evicted, Hessian rows.
type Problem struct {
	Dim    int
	C      float64
	Q      rowcache.Operator
	Linear []float64

	// DiagQ is the materialised diagonal of Q_BB, used by the Jacobi
	// preconditioner M(t,λ) = diag(1 / (t·DiagQ + diag(H_φ(λ)))).
	DiagQ []float64
}

// grad computes ∇L(λ) = Q*λ + Linear into dst.
func (p Problem) grad(dst, lambda []float64) {
	p.Q.Apply(dst, lambda)
	for i := range dst {
		dst[i] += p.Linear[i]
	}
}

// value returns L(λ).
func (p Problem) value(lambda []float64) float64 {
	qLambda := make([]float64, p.Dim)
	p.Q.Apply(qLambda, lambda)
	var quad, linear float64
	for i, li := range lambda {
		quad += li * qLambda[i]
		linear += p.Linear[i] * li
	}
	return 0.5*quad + linear
}

// Certificate is the result of an inner solve: Optimum is λ*, the point the
// minimiser converged to (or its best effort after exhausting its
// iteration budget); DualityGap and Multipliers are the feasibility
// certificate for the problem's 2·Dim box constraints, from the estimator
// of §4.4.
type Certificate struct {
	Optimum     []float64
	Multipliers []float64
	DualityGap  float64
	Iterations  int
	Converged   bool
}

// Options configures both inner-solver variants.
type Options struct {
	// GapTolerance bounds the duality gap at which the barrier schedule
	// stops increasing t. The chunking trainer sets it to Dim/1e8.
	GapTolerance float64

	// StepTolerance bounds LineSearch's step-size termination check:
	// ‖Δλ‖/Dim < StepTolerance. TruncatedNewton does not use it.
	//
	// GradTolerance bounds the infinity norm of each variant's termination
	// gradient: the preconditioned M·g for LineSearch, the raw ∇F_t for
	// TruncatedNewton (whose own Newton solve already applies the
	// preconditioner, inside the linear system rather than the check).
	StepTolerance float64
	GradTolerance float64

	// MaxCGIterations bounds each truncated-Newton system solve.
	MaxCGIterations int

	// MaxOuterIterations bounds the barrier schedule's outer loop, common
	// to both variants.
	MaxOuterIterations int
}

// DefaultOptions returns reasonable tolerances for a working set of size
// dim, following the gap bound of §4.4 (duality gap ≤ dim/1e8).
func DefaultOptions(dim int) Options {
	return Options{
		GapTolerance:       float64(dim) / 1e8,
		StepTolerance:      1e-6,
		GradTolerance:      1e-6,
		MaxCGIterations:    2 * dim,
		MaxOuterIterations: 50,
	}
}

// Minimizer drives a Problem to its constrained optimum from a feasible
// starting point. LineSearch and TruncatedNewton are the two
// implementations named in §4.4.
type Minimizer interface {
	Minimize(p Problem, lambda0 []float64, opts Options) Certificate
}

// barrier is the log-barrier for the box 0 < λ_i < C:
// φ(λ) = -Σ [log(λ_i) + log(C-λ_i)].
type barrier struct{ c float64 }

// grad computes ∇φ(λ)_i = -1/λ_i + 1/(C-λ_i) into dst.
func (b barrier) grad(dst, lambda []float64) {
	for i, li := range lambda {
		dst[i] = -1/li + 1/(b.c-li)
	}
}

// diagHessian computes the diagonal of H_φ(λ): 1/λ_i² + 1/(C-λ_i)².
func (b barrier) diagHessian(dst, lambda []float64) {
	for i, li := range lambda {
		d := b.c - li
		dst[i] = 1/(li*li) + 1/(d*d)
	}
}

// multipliers estimates the Lagrange multipliers μ for the 2·Dim box
// constraints at barrier parameter t: μ_i(t,λ) = 1/(t·λ_i) for i < Dim, and
// 1/(t·(C-λ_{i-Dim})) for the upper-bound constraints. These give the
// duality-gap certificate Dim·2/t that the barrier schedule drives down.
func (b barrier) multipliers(t float64, lambda []float64) []float64 {
	n := len(lambda)
	mu := make([]float64, 2*n)
	for i, li := range lambda {
		mu[i] = 1 / (t * li)
		mu[n+i] = 1 / (t * (b.c - li))
	}
	return mu
}

// dualityGap is the standard barrier-method gap bound: 2·Dim/t, the number
// of constraints divided by the barrier parameter.
func dualityGap(dim int, t float64) float64 {
	return 2 * float64(dim) / t
}

// clipInterior pulls lambda strictly inside (0, c), which floating-point
// rounding can otherwise push onto the boundary and make the barrier
// gradient diverge.
func clipInterior(lambda []float64, c float64) {
	const margin = 1e-10
	for i, li := range lambda {
		if li < margin {
			lambda[i] = margin
		} else if li > c-margin {
			lambda[i] = c - margin
		}
	}
}
