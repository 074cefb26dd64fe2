// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rowcreator computes signed-Gram rows Qᵢⱼ = yᵢ yⱼ K(xᵢ, xⱼ) on
// demand for gonum.org/v1/svm/rowcache. Three strategies are provided:
// Serial, StaticParallel (equal contiguous partitions) and WorkStealing
// (dynamic dispatch, for kernels whose per-pair cost varies).
package rowcreator // import "gonum.org/v1/svm/rowcreator"

import "gonum.org/v1/svm"

// rowOf computes Q[i][0:len(pairs)] into dst using a forked kernel
// evaluator that carries x_i as its single component, so that
// forked.ComputeSum(x_j) == K(x_i, x_j) (see svm.Kernel.ForkNew). dst must
// already have length len(pairs).
func rowOf[T any](dst []float32, pairs []svm.TrainingPair[T], kernel svm.Kernel[T], i, lo, hi int) {
	forked := kernel.ForkNew()
	yi := pairs[i].Sign()
	forked.AddComponent(1, pairs[i].Item)
	for j := lo; j < hi; j++ {
		dst[j] = float32(yi * pairs[j].Sign() * forked.ComputeSum(pairs[j].Item))
	}
}

// diagonalOf computes the diagonal Q[i][i] for every i using the same
// forked-evaluator discipline as rowOf.
func diagonalOf[T any](pairs []svm.TrainingPair[T], kernel svm.Kernel[T]) []float64 {
	diag := make([]float64, len(pairs))
	for i, p := range pairs {
		forked := kernel.ForkNew()
		forked.AddComponent(1, p.Item)
		diag[i] = forked.ComputeSum(p.Item)
	}
	return diag
}
