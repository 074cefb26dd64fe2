// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coorddescent

import (
	"gonum.org/v1/svm"
	"gonum.org/v1/svm/floatvec"
	"gonum.org/v1/svm/rowcache"
	"gonum.org/v1/svm/rowcreator"
)

// Trainer solves the SVM dual by coordinate descent: repeatedly selecting
// the steepest KKT violator, taking a clipped 1-D Newton step on it, and
// maintaining the gradient incrementally, with periodic active-set
// shrinking. It implements svm.Trainer[T].
type Trainer[T any] struct {
	Options Options
}

// New returns a Trainer configured by opts. Non-positive numeric fields in
// opts are replaced by their documented defaults at Train time.
func New[T any](opts Options) *Trainer[T] {
	return &Trainer[T]{Options: opts}
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
	workers := opts.MaxProcessors

	var creator rowcache.Creator
	if workers > 1 {
		creator = rowcreator.NewStaticParallel(pairs, kernel, workers)
	} else {
		creator = rowcreator.NewSerial(pairs, kernel)
	}
	// Only the main goroutine ever calls cache.Row; parallel regions only
	// read the already-materialised row slice it returns, so the unlocked
	// Sequential cache is safe here even in the parallel variant.
	cache := rowcache.NewSequential(creator, opts.CacheSize)
	diag := cache.Diagonal()

	n := len(pairs)
	alpha := make([]float64, n)
	g := make([]float64, n)
	gs := make([]float64, n)
	floatvec.Fill(g, -1)

	active := allIndices(n)
	period := opts.ShrinkingPeriod
	ramping := false
	sinceShrink := 0

	status := svm.StatusMaxIterations
	iterations := 0

loop:
	for ; iterations < opts.MaxIterations; iterations++ {
		v := selectViolator(active, alpha, g, diag, c, opts.GradientThreshold, workers)
		if !v.found {
			if len(active) == n {
				status = svm.StatusConverged
				break loop
			}
			unshrink(&active, alpha, g, gs, cache, c, n, workers)
			period, ramping, sinceShrink = 2, true, 0
			continue
		}

		qii := diag[v.index]
		if qii <= 0 {
			status = svm.StatusDegenerateDiagonal
			break loop
		}

		row := cache.Row(v.index)
		oldAlpha := alpha[v.index]
		newAlpha := floatvec.Clip(oldAlpha-g[v.index]/qii, 0, c)
		delta := newAlpha - oldAlpha
		alpha[v.index] = newAlpha

		updateGradient(active, g, row, delta, workers)

		if opts.UseShrinking {
			if oldAlpha == c && newAlpha < c {
				floatvec.AddScaledRow(gs, -c, row)
			} else if oldAlpha < c && newAlpha == c {
				floatvec.AddScaledRow(gs, c, row)
			}

			sinceShrink++
			if sinceShrink >= period {
				active = shrinkActiveSet(active, alpha, g, c)
				sinceShrink = 0
			}
			if ramping {
				period += 4
				if period >= opts.ShrinkingPeriod {
					period = opts.ShrinkingPeriod
					ramping = false
				}
			}
		}
	}

	return svm.Result{
		Alpha:               alpha,
		Status:              status,
		Iterations:          iterations,
		ConstraintThreshold: opts.ConstraintThreshold,
	}, nil
}

// unshrink resets g to -1 and reconstructs it from the rows of every
// currently-active coordinate with an interior α, then adds the shrinking
// compensation gs, before restoring active to the full index range.
func unshrink(active *[]int, alpha, g, gs []float64, cache *rowcache.Sequential, c float64, n, workers int) {
	floatvec.Fill(g, -1)

	var weights []float64
	var rows [][]float32
	for _, j := range *active {
		if alpha[j] > 0 && alpha[j] < c {
			weights = append(weights, alpha[j])
			rows = append(rows, cache.Row(j))
		}
	}
	reconstructGradient(g, weights, rows, workers)

	for j := range g {
		g[j] += gs[j]
	}
	*active = allIndices(n)
}

// allIndices returns a freshly allocated []int{0, 1, ..., n-1}.
func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
