// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package innersolver

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/linsolve"
	"gonum.org/v1/gonum/mat"

	"gonum.org/v1/svm/floatvec"
	"gonum.org/v1/svm/rowcache"
)

// TruncatedNewton minimises the barrier objective F_t(λ) = t·L(λ) + φ(λ) at
// each barrier level by approximately solving the Newton system
// (t·H_L + H_φ)d = -(t·∇L + ∇φ) with gonum's preconditioned CG linear
// solver, then backtracking along d to stay strictly feasible. As with
// LineSearch, the barrier parameter t is increased geometrically between
// levels until the duality gap falls within tolerance.
type TruncatedNewton struct {
	// MaxInnerIterations bounds the Newton steps at each barrier level.
	// Zero defaults to 20.
	MaxInnerIterations int
}

// Minimize implements Minimizer.
func (m TruncatedNewton) Minimize(p Problem, lambda0 []float64, opts Options) Certificate {
	maxInner := m.MaxInnerIterations
	if maxInner <= 0 {
		maxInner = 20
	}

	bar := barrier{c: p.C}
	lambda := append([]float64(nil), lambda0...)
	clipInterior(lambda, p.C)

	t := 1.0
	totalIters := 0
	gap := dualityGap(p.Dim, t)
	converged := false

	for outer := 0; outer < opts.MaxOuterIterations; outer++ {
		totalIters += newtonLevel(p, bar, lambda, t, maxInner, opts)
		gap = dualityGap(p.Dim, t)
		if gap <= opts.GapTolerance {
			converged = true
			break
		}
		t *= 10
	}

	return Certificate{
		Optimum:     lambda,
		Multipliers: bar.multipliers(t, lambda),
		DualityGap:  gap,
		Iterations:  totalIters,
		Converged:   converged,
	}
}

// newtonSystem implements linsolve.MulVecToer for the Newton system matrix
// A = t·Q_BB + diag(hPhi). Q_BB is symmetric and H_φ is diagonal, so A is
// symmetric and the trans flag is irrelevant.
type newtonSystem struct {
	q    rowcache.Operator
	t    float64
	hPhi []float64
}

func (s *newtonSystem) MulVecTo(dst *mat.VecDense, _ bool, x mat.Vector) {
	n := len(s.hPhi)
	v := make([]float64, n)
	for i := range v {
		v[i] = x.AtVec(i)
	}
	qv := make([]float64, n)
	s.q.Apply(qv, v)
	for i := range v {
		dst.SetVec(i, s.t*qv[i]+s.hPhi[i]*v[i])
	}
}

// newtonLevel runs approximate Newton steps on F_t for up to maxInner
// iterations, or until the gradient tolerance of opts is met. It mutates
// lambda in place and returns the number of iterations performed.
func newtonLevel(p Problem, bar barrier, lambda []float64, t float64, maxInner int, opts Options) int {
	dim := p.Dim
	g := make([]float64, dim)
	gradL := make([]float64, dim)
	gPhi := make([]float64, dim)
	hPhi := make([]float64, dim)
	precond := make([]float64, dim)
	newLambda := make([]float64, dim)

	iter := 0
	for ; iter < maxInner; iter++ {
		p.grad(gradL, lambda)
		bar.grad(gPhi, lambda)
		for i := range g {
			g[i] = t*gradL[i] + gPhi[i]
		}
		if floatvec.InfNorm(g) < opts.GradTolerance {
			break
		}

		bar.diagHessian(hPhi, lambda)
		jacobi(precond, p.DiagQ, hPhi, t)

		rhs := mat.NewVecDense(dim, nil)
		for i, gi := range g {
			rhs.SetVec(i, -gi)
		}

		sys := &newtonSystem{q: p.Q, t: t, hPhi: hPhi}
		settings := &linsolve.Settings{
			Tolerance:     1e-6,
			MaxIterations: opts.MaxCGIterations,
			PreconSolve: func(dst *mat.VecDense, _ bool, rhs mat.Vector) error {
				for i, pc := range precond {
					dst.SetVec(i, pc*rhs.AtVec(i))
				}
				return nil
			},
		}
		res, err := linsolve.Iterative(sys, rhs, &linsolve.CG{}, settings)
		if err != nil && res == nil {
			break
		}

		d := make([]float64, dim)
		for i := range d {
			d[i] = res.X.AtVec(i)
		}

		step := maxFeasibleStep(lambda, d, p.C)
		if step <= 0 {
			break
		}
		fBase := t*p.value(lambda) + barrierValue(bar, lambda)
		slope := floats.Dot(g, d)
		for step > 1e-16 {
			for i := range newLambda {
				newLambda[i] = lambda[i] + step*d[i]
			}
			fNew := t*p.value(newLambda) + barrierValue(bar, newLambda)
			if fNew <= fBase+1e-4*step*slope {
				break
			}
			step *= 0.5
		}
		copy(lambda, newLambda)
		clipInterior(lambda, p.C)
	}
	return iter
}
