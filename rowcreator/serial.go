// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rowcreator

import "gonum.org/v1/svm"

// Serial computes rows with a single for loop, no parallelism. It is the
// right choice for small training sets or cheap kernels, where the
// overhead of forking workers would dominate the kernel evaluations
// themselves.
type Serial[T any] struct {
	pairs  []svm.TrainingPair[T]
	kernel svm.Kernel[T]
}

// NewSerial returns a Serial row creator over pairs using kernel.
func NewSerial[T any](pairs []svm.TrainingPair[T], kernel svm.Kernel[T]) *Serial[T] {
	return &Serial[T]{pairs: pairs, kernel: kernel}
}

func (s *Serial[T]) Len() int { return len(s.pairs) }

func (s *Serial[T]) Diagonal() []float64 {
	return diagonalOf(s.pairs, s.kernel)
}

func (s *Serial[T]) ComputeRow(i int) []float32 {
	row := make([]float32, len(s.pairs))
	rowOf(row, s.pairs, s.kernel, i, 0, len(s.pairs))
	return row
}
