// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svm

// Result is the outcome of a training run: the dual variables α found by
// the solver, the Status at termination, and basic iteration statistics.
type Result struct {
	// Alpha holds one Lagrange multiplier per training pair, in the order
	// the pairs were supplied to Train. 0 ≤ Alpha[i] ≤ C for every i.
	Alpha []float64

	// Status reports whether the solver converged, ran out of iterations,
	// or hit a degenerate Hessian diagonal.
	Status Status

	// Iterations is the number of outer iterations performed.
	Iterations int

	// ConstraintThreshold (ε_c) is the α cutoff above which BinaryClassifier
	// keeps a training pair as a support vector. It is copied from the
	// Trainer's own Options so the classifier honours whatever threshold
	// the caller configured rather than a hardcoded default.
	ConstraintThreshold float64
}

// Trainer solves the SVM dual problem for a training set under a kernel,
// producing the Lagrange multipliers α. Two implementations are provided by
// this module: gonum.org/v1/svm/coorddescent.Trainer and
// gonum.org/v1/svm/chunking.Trainer.
type Trainer[T any] interface {
	Train(pairs []TrainingPair[T], c float64, kernel Kernel[T]) (Result, error)
}
