// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svm

// defaultSupportVectorThreshold is used when a Trainer implementation
// leaves Result.ConstraintThreshold unset (the zero value), so a foreign
// Trainer without an opinion on the cutoff still gets a sane one.
const defaultSupportVectorThreshold = 1e-5

// BinaryClassifier binds a Trainer to a Kernel: Train fits the dual
// variables and folds the resulting support vectors into the kernel's
// component accumulator, and Discriminate evaluates the resulting
// f(x) = Σᵢ αᵢ yᵢ K(xᵢ, x) + b by delegating to the kernel's ComputeSum.
//
// The bias b is not learned through an equality constraint on α; instead
// the kernel passed to the solvers is wrapped with Bias(kernel, 1.0), which
// the dual optimization treats as one more feature shared by every example.
type BinaryClassifier[T any] struct {
	kernel  Kernel[T]
	trainer Trainer[T]
	trained bool
}

// NewBinaryClassifier returns a classifier that trains with trainer and
// predicts through kernel. kernel must not be nil.
func NewBinaryClassifier[T any](kernel Kernel[T], trainer Trainer[T]) *BinaryClassifier[T] {
	if kernel == nil {
		panic(ErrNilKernel)
	}
	return &BinaryClassifier[T]{
		kernel:  Bias[T](kernel, 1.0),
		trainer: trainer,
	}
}

// Train fits the classifier on pairs with soft-margin penalty C. It clears
// any components accumulated by a previous call before training. Train
// requires at least one positive and one negative example; violating that
// precondition, or supplying a non-positive C, returns an error without
// mutating the classifier's state.
func (c *BinaryClassifier[T]) Train(pairs []TrainingPair[T], C float64) (Result, error) {
	if C <= 0 {
		return Result{}, ErrNonPositiveC
	}
	if len(pairs) == 0 {
		return Result{}, ErrEmptyTrainingSet
	}
	pos, neg := CountClasses(pairs)
	if pos == 0 || neg == 0 {
		return Result{}, ErrSingleClass
	}

	c.kernel.ClearComponents()
	result, err := c.trainer.Train(pairs, C, c.kernel)
	if err != nil {
		return Result{}, err
	}

	threshold := result.ConstraintThreshold
	if threshold <= 0 {
		threshold = defaultSupportVectorThreshold
	}
	for i, alpha := range result.Alpha {
		if alpha > threshold {
			c.kernel.AddComponent(alpha*pairs[i].Sign(), pairs[i].Item)
		}
	}
	c.trained = true
	return result, nil
}

// Discriminate returns f(x) = Σᵢ αᵢ yᵢ K(xᵢ, x) + b. Its sign is the
// predicted class label, +1 or -1. Discriminate returns 0 before Train has
// been called successfully.
func (c *BinaryClassifier[T]) Discriminate(x T) float64 {
	if !c.trained {
		return 0
	}
	return c.kernel.ComputeSum(x)
}

// IsTrained reports whether Train has completed successfully at least once.
func (c *BinaryClassifier[T]) IsTrained() bool {
	return c.trained
}
