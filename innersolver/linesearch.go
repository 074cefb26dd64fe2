// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package innersolver

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"gonum.org/v1/svm/floatvec"
)

// LineSearch minimises the barrier objective F_t(λ) = t·L(λ) + φ(λ) at each
// barrier level by preconditioned nonlinear conjugate-gradient descent, with
// a backtracking Armijo line search that never lets λ touch the box
// boundary. The barrier parameter t is increased geometrically between
// levels until the duality-gap certificate falls within tolerance.
type LineSearch struct {
	// Decrease is the backtracking step multiplier, in (0,1). Zero
	// defaults to 0.5.
	Decrease float64

	// ArmijoConst is the Armijo sufficient-decrease constant, in (0,1).
	// Zero defaults to 1e-4.
	ArmijoConst float64

	// MaxInnerIterations bounds the CG iterations at each barrier level.
	// Zero defaults to 10*Dim.
	MaxInnerIterations int
}

// Minimize implements Minimizer.
func (m LineSearch) Minimize(p Problem, lambda0 []float64, opts Options) Certificate {
	decrease := m.Decrease
	if decrease <= 0 || decrease >= 1 {
		decrease = 0.5
	}
	armijo := m.ArmijoConst
	if armijo <= 0 || armijo >= 1 {
		armijo = 1e-4
	}
	maxInner := m.MaxInnerIterations
	if maxInner <= 0 {
		maxInner = 10 * p.Dim
	}

	bar := barrier{c: p.C}
	lambda := append([]float64(nil), lambda0...)
	clipInterior(lambda, p.C)

	t := 1.0
	totalIters := 0
	gap := dualityGap(p.Dim, t)
	converged := false

	for outer := 0; outer < opts.MaxOuterIterations; outer++ {
		totalIters += solveLevel(p, bar, lambda, t, armijo, decrease, maxInner, opts)
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

// solveLevel runs preconditioned nonlinear CG on F_t for up to maxInner
// iterations, or until the gradient/step tolerances of opts are met. It
// mutates lambda in place and returns the number of iterations performed.
func solveLevel(p Problem, bar barrier, lambda []float64, t, armijo, decrease float64, maxInner int, opts Options) int {
	dim := p.Dim
	g := make([]float64, dim)
	gradL := make([]float64, dim)
	gPhi := make([]float64, dim)
	hPhi := make([]float64, dim)
	precond := make([]float64, dim)
	mg := make([]float64, dim)
	prevMG := make([]float64, dim)
	d := make([]float64, dim)
	newLambda := make([]float64, dim)

	iter := 0
	for ; iter < maxInner; iter++ {
		p.grad(gradL, lambda)
		bar.grad(gPhi, lambda)
		for i := range g {
			g[i] = t*gradL[i] + gPhi[i]
		}

		bar.diagHessian(hPhi, lambda)
		jacobi(precond, p.DiagQ, hPhi, t)
		applyDiag(mg, precond, g)

		if floatvec.InfNorm(mg) < opts.GradTolerance {
			break
		}

		if iter == 0 {
			for i := range d {
				d[i] = -mg[i]
			}
		} else {
			beta := polakRibiere(mg, prevMG)
			for i := range d {
				d[i] = -mg[i] + beta*d[i]
			}
		}
		copy(prevMG, mg)

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
			if fNew <= fBase+armijo*step*slope {
				break
			}
			step *= decrease
		}

		var deltaNorm float64
		for i := range lambda {
			delta := newLambda[i] - lambda[i]
			deltaNorm += delta * delta
			lambda[i] = newLambda[i]
		}
		clipInterior(lambda, p.C)
		if math.Sqrt(deltaNorm)/float64(dim) < opts.StepTolerance {
			iter++
			break
		}
	}
	return iter
}

// polakRibiere returns the Polak-Ribiere nonlinear-CG momentum coefficient,
// restarting to plain steepest descent (beta = 0) whenever it would
// otherwise go negative.
func polakRibiere(mg, prevMG []float64) float64 {
	den := floats.Dot(prevMG, prevMG)
	if den == 0 {
		return 0
	}
	diff := make([]float64, len(mg))
	for i := range diff {
		diff[i] = mg[i] - prevMG[i]
	}
	beta := floats.Dot(mg, diff) / den
	if beta < 0 {
		return 0
	}
	return beta
}

// maxFeasibleStep returns the largest step ≥ 0 such that lambda+step*d
// stays strictly inside (0, c) componentwise, shrunk by a small safety
// margin so the result is never exactly on the boundary.
func maxFeasibleStep(lambda, d []float64, c float64) float64 {
	const margin = 0.995
	step := math.Inf(1)
	for i, li := range lambda {
		switch {
		case d[i] > 0:
			step = math.Min(step, (c-li)/d[i])
		case d[i] < 0:
			step = math.Min(step, -li/d[i])
		}
	}
	if math.IsInf(step, 1) {
		return 0
	}
	return margin * step
}

// barrierValue returns φ(λ) = -Σ [log(λ_i) + log(C-λ_i)].
func barrierValue(b barrier, lambda []float64) float64 {
	var sum float64
	for _, li := range lambda {
		sum -= math.Log(li) + math.Log(b.c-li)
	}
	return sum
}
