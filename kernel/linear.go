// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernel provides example implementations of the svm.Kernel
// contract over []float64 feature vectors: Linear and Gaussian (RBF).
// These are external collaborators of the solvers in this module, kept
// separate exactly as the specification's kernel façade requires.
package kernel // import "gonum.org/v1/svm/kernel"

import (
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/svm"
)

// Linear implements svm.Kernel[[]float64] as the ordinary dot product
// K(x,y) = x·y.
type Linear struct {
	mu         sync.Mutex
	components []weightedVec
}

type weightedVec struct {
	weight float64
	x      []float64
}

// NewLinear returns a fresh Linear kernel with no accumulated components.
func NewLinear() *Linear {
	return &Linear{}
}

func (k *Linear) Compute(x, y []float64) float64 {
	return floats.Dot(x, y)
}

func (k *Linear) ComputeSum(x []float64) float64 {
	k.mu.Lock()
	defer k.mu.Unlock()
	var sum float64
	for _, c := range k.components {
		sum += c.weight * k.Compute(c.x, x)
	}
	return sum
}

func (k *Linear) AddComponent(weight float64, x []float64) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.components = append(k.components, weightedVec{weight: weight, x: x})
}

func (k *Linear) ClearComponents() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.components = k.components[:0]
}

func (k *Linear) HasComponents() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.components) > 0
}

// ForkNew returns a fresh Linear kernel with no components, suitable for
// use by another goroutine. Linear has no per-evaluation mutable state
// beyond the component accumulator, so forking is simply a fresh value.
func (k *Linear) ForkNew() svm.Kernel[[]float64] {
	return &Linear{}
}
