// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rowcreator

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"gonum.org/v1/svm"
)

// defaultChunk is the number of columns each worker claims per steal; small
// enough to balance load across workers with uneven per-pair kernel cost,
// large enough to keep the atomic-increment overhead negligible.
const defaultChunk = 32

// WorkStealing computes a row by having Workers goroutines repeatedly claim
// the next unclaimed chunk of columns from a shared cursor, rather than a
// fixed static split. Prefer this over StaticParallel when the kernel's
// per-pair cost is not roughly uniform (e.g. variable-length sequence
// kernels), so that one slow pair does not stall an entire static
// partition while the others sit idle.
type WorkStealing[T any] struct {
	pairs   []svm.TrainingPair[T]
	kernel  svm.Kernel[T]
	Workers int
	Chunk   int
}

// NewWorkStealing returns a WorkStealing row creator over pairs using
// kernel, with workers goroutines claiming work in chunks of size chunk.
// workers is clamped to at least 1; a non-positive chunk defaults to
// defaultChunk.
func NewWorkStealing[T any](pairs []svm.TrainingPair[T], kernel svm.Kernel[T], workers, chunk int) *WorkStealing[T] {
	if workers < 1 {
		workers = 1
	}
	if chunk <= 0 {
		chunk = defaultChunk
	}
	return &WorkStealing[T]{pairs: pairs, kernel: kernel, Workers: workers, Chunk: chunk}
}

func (s *WorkStealing[T]) Len() int { return len(s.pairs) }

func (s *WorkStealing[T]) Diagonal() []float64 {
	return diagonalOf(s.pairs, s.kernel)
}

func (s *WorkStealing[T]) ComputeRow(i int) []float32 {
	row := make([]float32, len(s.pairs))
	n := len(s.pairs)
	if n == 0 {
		return row
	}
	if s.Workers <= 1 {
		rowOf(row, s.pairs, s.kernel, i, 0, n)
		return row
	}

	var cursor atomic.Int64
	var g errgroup.Group
	for w := 0; w < s.Workers; w++ {
		g.Go(func() error {
			for {
				lo := int(cursor.Add(int64(s.Chunk))) - s.Chunk
				if lo >= n {
					return nil
				}
				hi := lo + s.Chunk
				if hi > n {
					hi = n
				}
				rowOf(row, s.pairs, s.kernel, i, lo, hi)
			}
		})
	}
	g.Wait() // Each chunk [lo,hi) is claimed by exactly one worker; writes never overlap.
	return row
}
