// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svm

import "errors"

// Argument violations. These are precondition failures: the caller is
// expected to check for them, or to let Train return early with one of
// these errors rather than produce a meaningless result.
var (
	// ErrNilKernel signifies that a nil Kernel was passed to a solver.
	ErrNilKernel = errors.New("svm: nil kernel")

	// ErrNonPositiveC signifies that the soft-margin penalty C was not
	// strictly positive.
	ErrNonPositiveC = errors.New("svm: C must be strictly positive")

	// ErrEmptyTrainingSet signifies that Train was called with no examples.
	ErrEmptyTrainingSet = errors.New("svm: empty training set")

	// ErrSingleClass signifies that the training set contains only positive
	// or only negative examples; a separating hyperplane cannot be posed.
	ErrSingleClass = errors.New("svm: training set must contain at least one positive and one negative example")
)

// Status reports the outcome of a training run. Non-convergence and
// numerical degeneracy are reported through Status rather than by returning
// an error, per the propagation policy: only precondition violations halt
// training.
type Status int

const (
	// StatusConverged indicates the KKT optimality conditions were met
	// within the configured tolerance.
	StatusConverged Status = iota

	// StatusMaxIterations indicates the solver exhausted its iteration
	// budget before converging. The returned α is the best effort reached.
	StatusMaxIterations

	// StatusDegenerateDiagonal indicates a zero or negative entry was
	// observed on the Hessian diagonal, which a strictly PSD kernel must
	// not produce. The returned α is the best effort reached at the point
	// the degeneracy was detected.
	StatusDegenerateDiagonal
)

func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "Converged"
	case StatusMaxIterations:
		return "MaxIterations"
	case StatusDegenerateDiagonal:
		return "DegenerateDiagonal"
	default:
		return "Status(unknown)"
	}
}
