// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rowcreator

import (
	"golang.org/x/sync/errgroup"

	"gonum.org/v1/svm"
	"gonum.org/v1/svm/internal/partition"
)

// StaticParallel computes a row by splitting the column range into
// Workers equal contiguous slices, one per worker, in the style of
// gonum's diff/fd.Jacobian concurrent dispatch. It suits kernels whose
// per-pair evaluation cost is roughly uniform.
type StaticParallel[T any] struct {
	pairs   []svm.TrainingPair[T]
	kernel  svm.Kernel[T]
	Workers int
}

// NewStaticParallel returns a StaticParallel row creator over pairs using
// kernel, splitting each row across workers goroutines. workers is clamped
// to at least 1.
func NewStaticParallel[T any](pairs []svm.TrainingPair[T], kernel svm.Kernel[T], workers int) *StaticParallel[T] {
	if workers < 1 {
		workers = 1
	}
	return &StaticParallel[T]{pairs: pairs, kernel: kernel, Workers: workers}
}

func (s *StaticParallel[T]) Len() int { return len(s.pairs) }

func (s *StaticParallel[T]) Diagonal() []float64 {
	return diagonalOf(s.pairs, s.kernel)
}

func (s *StaticParallel[T]) ComputeRow(i int) []float32 {
	row := make([]float32, len(s.pairs))
	if len(s.pairs) == 0 {
		return row
	}
	if s.Workers <= 1 {
		rowOf(row, s.pairs, s.kernel, i, 0, len(s.pairs))
		return row
	}

	ranges := partition.Static(0, len(s.pairs), s.Workers)
	var g errgroup.Group
	for _, r := range ranges {
		r := r
		g.Go(func() error {
			rowOf(row, s.pairs, s.kernel, i, r.Start, r.End)
			return nil
		})
	}
	g.Wait() // Writes are disjoint by column range; no aliasing across workers.
	return row
}
