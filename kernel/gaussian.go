// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/svm"
)

// Gaussian implements svm.Kernel[[]float64] as the radial basis function
// K(x,y) = exp(-Gamma·‖x-y‖²).
type Gaussian struct {
	Gamma float64

	mu         sync.Mutex
	components []weightedVec
}

// NewGaussian returns a Gaussian kernel with the given Gamma and no
// accumulated components. NewGaussian panics if gamma is not positive.
func NewGaussian(gamma float64) *Gaussian {
	if gamma <= 0 {
		panic("kernel: gamma must be positive")
	}
	return &Gaussian{Gamma: gamma}
}

func (k *Gaussian) Compute(x, y []float64) float64 {
	d := floats.Distance(x, y, 2)
	return math.Exp(-k.Gamma * d * d)
}

func (k *Gaussian) ComputeSum(x []float64) float64 {
	k.mu.Lock()
	defer k.mu.Unlock()
	var sum float64
	for _, c := range k.components {
		sum += c.weight * k.Compute(c.x, x)
	}
	return sum
}

func (k *Gaussian) AddComponent(weight float64, x []float64) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.components = append(k.components, weightedVec{weight: weight, x: x})
}

func (k *Gaussian) ClearComponents() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.components = k.components[:0]
}

func (k *Gaussian) HasComponents() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.components) > 0
}

// ForkNew returns a fresh Gaussian kernel sharing Gamma but no components.
func (k *Gaussian) ForkNew() svm.Kernel[[]float64] {
	return &Gaussian{Gamma: k.Gamma}
}
