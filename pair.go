// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svm

// TrainingPair is a single labeled training example. Class is canonically
// ±1 wherever it is used in arithmetic; Sign reports that canonical value
// regardless of how the caller populated the field.
type TrainingPair[T any] struct {
	Item  T
	Class float64
}

// Sign returns +1 if p is a positive example and -1 otherwise.
func (p TrainingPair[T]) Sign() float64 {
	if p.Class > 0 {
		return 1
	}
	return -1
}

// CountClasses returns the number of positive and negative examples in pairs.
func CountClasses[T any](pairs []TrainingPair[T]) (pos, neg int) {
	for _, p := range pairs {
		if p.Sign() > 0 {
			pos++
		} else {
			neg++
		}
	}
	return pos, neg
}
