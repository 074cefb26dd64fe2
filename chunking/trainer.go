// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chunking

import (
	"gonum.org/v1/svm"
	"gonum.org/v1/svm/floatvec"
	"gonum.org/v1/svm/innersolver"
	"gonum.org/v1/svm/rowcache"
	"gonum.org/v1/svm/rowcreator"
)

// Trainer solves the SVM dual by chunking: each outer iteration selects a
// bounded working set of KKT-violating coordinates, poses the restricted
// subproblem over that set, and delegates it to an inner solver. It
// implements svm.Trainer[T].
type Trainer[T any] struct {
	Options Options

	// Solver minimises each working-set subproblem. A zero value defaults
	// to innersolver.LineSearch{}.
	Solver innersolver.Minimizer
}

// New returns a Trainer configured by opts, delegating subproblems to
// solver. A nil solver defaults to innersolver.LineSearch{}.
func New[T any](opts Options, solver innersolver.Minimizer) *Trainer[T] {
	if solver == nil {
		solver = innersolver.LineSearch{}
	}
	return &Trainer[T]{Options: opts, Solver: solver}
}

// Train implements svm.Trainer[T].
func (tr *Trainer[T]) Train(pairs []svm.TrainingPair[T], c float64, kernel svm.Kernel[T]) (svm.Result, error) {
	if kernel == nil {
		return svm.Result{}, svm.ErrNilKernel
	}
	if c <= 0 {
		return svm.Result{}, svm.ErrNonPositiveC
	}
	if len(pairs) == 0 {
		return svm.Result{}, svm.ErrEmptyTrainingSet
	}
	if pos, neg := svm.CountClasses(pairs); pos == 0 || neg == 0 {
		return svm.Result{}, svm.ErrSingleClass
	}

	opts := tr.Options.withDefaults()
	solver := tr.Solver
	if solver == nil {
		solver = innersolver.LineSearch{}
	}
	workers := opts.MaxProcessors

	// ActiveSubtensors already parallelises across the working set's rows
	// (up to workers goroutines), so the creator it calls on a cache miss
	// stays strictly serial per row: splitting each individual row across
	// workers as well would oversubscribe to workers² goroutines instead
	// of the single budget MaxProcessors documents.
	creator := rowcreator.NewSerial(pairs, kernel)
	// Concurrent: ActiveSubtensors prefetches the working set's rows in
	// parallel every outer iteration.
	cache := rowcache.NewConcurrent(creator, opts.CacheSize)
	diag := cache.Diagonal()

	n := len(pairs)
	alpha := make([]float64, n)
	g := make([]float64, n)
	floatvec.Fill(g, -1)

	var previousActive map[int]bool
	status := svm.StatusMaxIterations
	iterations := 0

loop:
	for ; iterations < opts.MaxIterations; iterations++ {
		b, nSet := selectWorkingSet(alpha, g, diag, c, opts.GradientThreshold, opts.MaxChunkSize)

		if len(b) == 0 || subsetOf(b, previousActive) {
			status = svm.StatusConverged
			break loop
		}

		for _, i := range b {
			if diag[i] <= 0 {
				status = svm.StatusDegenerateDiagonal
				break loop
			}
		}

		qbb, qbn, qa, diagBB := cache.ActiveSubtensors(b, nSet, workers)

		alphaN := make([]float64, len(nSet))
		for k, j := range nSet {
			alphaN[k] = alpha[j]
		}
		gc := make([]float64, len(b))
		qbn.Apply(gc, alphaN)
		for i := range gc {
			gc[i] -= 1
		}

		problem := innersolver.Problem{
			Dim:    len(b),
			C:      c,
			Q:      qbb,
			Linear: gc,
			DiagQ:  diagBB,
		}
		lambda0 := make([]float64, len(b))
		floatvec.Fill(lambda0, c/2)

		cert := solver.Minimize(problem, lambda0, innersolver.DefaultOptions(len(b)))

		delta := make([]float64, len(b))
		for k, i := range b {
			delta[k] = cert.Optimum[k] - alpha[i]
		}
		deltaG := make([]float64, n)
		qa.Apply(deltaG, delta)
		for j := range g {
			g[j] += deltaG[j]
		}
		for k, i := range b {
			alpha[i] = cert.Optimum[k]
		}

		previousActive = toSet(b)
	}

	return svm.Result{
		Alpha:               alpha,
		Status:              status,
		Iterations:          iterations,
		ConstraintThreshold: opts.ConstraintThreshold,
	}, nil
}
