// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chunking implements the chunking variant of the SVM dual solver:
// each outer iteration selects a bounded working set of the most KKT-stale
// coordinates, poses the restricted quadratic subproblem over that set as a
// log-barrier Lagrangian, and hands it to an interior-point inner solver
// (gonum.org/v1/svm/innersolver) before folding the result back into the
// full gradient.
package chunking // import "gonum.org/v1/svm/chunking"

// Default tolerances and limits, taken from the reference chunking solver
// this package follows.
const (
	DefaultMaxChunkSize        = 1000
	DefaultConstraintThreshold = 1e-3
	DefaultGradientThreshold   = 1e-3
	DefaultCacheSize           = 2048
	DefaultMaxIterations       = 10000
)

// Options configures a Trainer.
type Options struct {
	// MaxChunkSize bounds the size of the working set chosen each outer
	// iteration. Non-positive defaults to DefaultMaxChunkSize.
	MaxChunkSize int

	// ConstraintThreshold (ε_c) is the α cutoff above which a training pair
	// is kept as a support vector on exit. Non-positive defaults to
	// DefaultConstraintThreshold.
	ConstraintThreshold float64

	// GradientThreshold (ε_g) is the normalised-gradient tolerance that
	// decides whether a coordinate belongs in the working set. Non-positive
	// defaults to DefaultGradientThreshold.
	GradientThreshold float64

	// CacheSize bounds how many Hessian rows the trainer keeps resident at
	// once. Non-positive defaults to DefaultCacheSize.
	CacheSize int

	// MaxIterations bounds the number of outer iterations. Non-positive
	// defaults to DefaultMaxIterations.
	MaxIterations int

	// MaxProcessors is the number of workers used for the working set's
	// parallel row prefetch. Values ≤ 1 prefetch serially. Each individual
	// row is computed by the serial row creator whatever this value is.
	MaxProcessors int
}

// DefaultOptions returns the solver's default tuning, matching the
// reference chunking solver's constants.
func DefaultOptions() Options {
	return Options{
		MaxChunkSize:        DefaultMaxChunkSize,
		ConstraintThreshold: DefaultConstraintThreshold,
		GradientThreshold:   DefaultGradientThreshold,
		CacheSize:           DefaultCacheSize,
		MaxIterations:       DefaultMaxIterations,
		MaxProcessors:       1,
	}
}

func (o Options) withDefaults() Options {
	if o.MaxChunkSize <= 0 {
		o.MaxChunkSize = DefaultMaxChunkSize
	}
	if o.ConstraintThreshold <= 0 {
		o.ConstraintThreshold = DefaultConstraintThreshold
	}
	if o.GradientThreshold <= 0 {
		o.GradientThreshold = DefaultGradientThreshold
	}
	if o.CacheSize <= 0 {
		o.CacheSize = DefaultCacheSize
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.MaxProcessors < 1 {
		o.MaxProcessors = 1
	}
	return o
}
