// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coorddescent implements the coordinate-descent variant of the SVM
// dual solver: repeatedly picks the most KKT-violating coordinate, takes a
// clipped 1-D Newton step on it, and maintains the gradient incrementally.
// An active-set shrinking scheme periodically drops coordinates that have
// settled at a bound, reconstructing the full set only when no violator
// remains among the survivors.
package coorddescent // import "gonum.org/v1/svm/coorddescent"

// Default tolerances and limits, taken from the reference coordinate-descent
// solver this package follows.
const (
	DefaultConstraintThreshold = 1e-5
	DefaultGradientThreshold   = 2e-3
	DefaultShrinkingPeriod     = 1300
	DefaultMaxIterations       = 400000
	DefaultCacheSize           = 200
)

// Options configures a Trainer.
type Options struct {
	// CacheSize bounds how many Hessian rows the trainer keeps resident at
	// once. Non-positive defaults to DefaultCacheSize.
	CacheSize int

	// ConstraintThreshold (ε_c) is the α cutoff above which a training pair
	// is kept as a support vector on exit. Non-positive defaults to
	// DefaultConstraintThreshold.
	ConstraintThreshold float64

	// GradientThreshold (ε_g) is the normalised-gradient tolerance that
	// decides whether a coordinate is a KKT violator. Non-positive defaults
	// to DefaultGradientThreshold.
	GradientThreshold float64

	// ShrinkingPeriod is the (eventual, post-ramp) number of outer
	// iterations between active-set shrink attempts. Non-positive defaults
	// to DefaultShrinkingPeriod.
	ShrinkingPeriod int

	// UseShrinking enables active-set shrinking and unshrinking. Disabling
	// it keeps every coordinate active for the whole run, trading memory
	// and cache pressure for simpler iteration semantics.
	UseShrinking bool

	// MaxIterations bounds the number of outer iterations. Non-positive
	// defaults to DefaultMaxIterations.
	MaxIterations int

	// MaxProcessors is the number of workers used to partition the
	// violator-selection and gradient-update loops, and row computation on
	// a cache miss. Values ≤ 1 select the strictly serial path.
	MaxProcessors int
}

// DefaultOptions returns the solver's default tuning, matching the
// reference coordinate-descent solver's constants.
func DefaultOptions() Options {
	return Options{
		CacheSize:           DefaultCacheSize,
		ConstraintThreshold: DefaultConstraintThreshold,
		GradientThreshold:   DefaultGradientThreshold,
		ShrinkingPeriod:     DefaultShrinkingPeriod,
		UseShrinking:        true,
		MaxIterations:       DefaultMaxIterations,
		MaxProcessors:       1,
	}
}

// withDefaults returns a copy of o with every non-positive numeric field
// replaced by its default.
func (o Options) withDefaults() Options {
	if o.CacheSize <= 0 {
		o.CacheSize = DefaultCacheSize
	}
	if o.ConstraintThreshold <= 0 {
		o.ConstraintThreshold = DefaultConstraintThreshold
	}
	if o.GradientThreshold <= 0 {
		o.GradientThreshold = DefaultGradientThreshold
	}
	if o.ShrinkingPeriod <= 0 {
		o.ShrinkingPeriod = DefaultShrinkingPeriod
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.MaxProcessors < 1 {
		o.MaxProcessors = 1
	}
	return o
}
