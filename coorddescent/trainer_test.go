// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coorddescent

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"gonum.org/v1/svm"
)

// dotKernel is a minimal svm.Kernel[[]float64] local to this package's
// tests, avoiding a dependency on gonum.org/v1/svm/kernel.
type dotKernel struct {
	components []struct {
		w float64
		x []float64
	}
}

func (k *dotKernel) Compute(x, y []float64) float64 { return floats.Dot(x, y) }

func (k *dotKernel) ComputeSum(x []float64) float64 {
	var sum float64
	for _, c := range k.components {
		sum += c.w * k.Compute(c.x, x)
	}
	return sum
}

func (k *dotKernel) AddComponent(w float64, x []float64) {
	k.components = append(k.components, struct {
		w float64
		x []float64
	}{w, x})
}

func (k *dotKernel) ClearComponents() { k.components = nil }
func (k *dotKernel) HasComponents() bool { return len(k.components) > 0 }
func (k *dotKernel) ForkNew() svm.Kernel[[]float64] { return &dotKernel{} }

func linearlySeparable() []svm.TrainingPair[[]float64] {
	return []svm.TrainingPair[[]float64]{
		{Item: []float64{2, 2}, Class: 1},
		{Item: []float64{3, 3}, Class: 1},
		{Item: []float64{-2, -2}, Class: -1},
		{Item: []float64{-3, -3}, Class: -1},
	}
}

// kktSatisfied checks the coordinate-descent termination condition of
// §4.1 directly against Q, rather than trusting the trainer's own gradient
// bookkeeping.
func kktSatisfied(t *testing.T, pairs []svm.TrainingPair[[]float64], alpha []float64, c, epsG float64) {
	t.Helper()
	n := len(pairs)
	for i := 0; i < n; i++ {
		var gi float64
		yi := pairs[i].Sign()
		for j := 0; j < n; j++ {
			qij := yi * pairs[j].Sign() * floats.Dot(pairs[i].Item, pairs[j].Item)
			gi += qij * alpha[j]
		}
		gi -= 1
		qii := floats.Dot(pairs[i].Item, pairs[i].Item)
		ratio := gi / qii

		switch {
		case alpha[i] == 0:
			require.GreaterOrEqual(t, ratio, -epsG-1e-6, "index %d at lower bound", i)
		case alpha[i] == c:
			require.LessOrEqual(t, ratio, epsG+1e-6, "index %d at upper bound", i)
		default:
			require.InDelta(t, 0, ratio, epsG+1e-6, "index %d interior", i)
		}
	}
}

func TestTrainConverges(t *testing.T) {
	pairs := linearlySeparable()
	tr := New[[]float64](DefaultOptions())

	result, err := tr.Train(pairs, 1.0, &dotKernel{})
	require.NoError(t, err)
	require.Equal(t, svm.StatusConverged, result.Status)
	require.Len(t, result.Alpha, len(pairs))

	for _, a := range result.Alpha {
		require.GreaterOrEqual(t, a, 0.0)
		require.LessOrEqual(t, a, 1.0)
	}
	kktSatisfied(t, pairs, result.Alpha, 1.0, DefaultGradientThreshold)
}

func TestTrainSerialAndParallelAgreeOnKKT(t *testing.T) {
	pairs := linearlySeparable()

	serial := New[[]float64](DefaultOptions())
	resSerial, err := serial.Train(pairs, 1.0, &dotKernel{})
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.MaxProcessors = 4
	parallel := New[[]float64](opts)
	resParallel, err := parallel.Train(pairs, 1.0, &dotKernel{})
	require.NoError(t, err)

	kktSatisfied(t, pairs, resSerial.Alpha, 1.0, DefaultGradientThreshold)
	kktSatisfied(t, pairs, resParallel.Alpha, 1.0, DefaultGradientThreshold)
}

func TestTrainRejectsDegenerateInputs(t *testing.T) {
	tr := New[[]float64](DefaultOptions())

	_, err := tr.Train(nil, 1.0, &dotKernel{})
	require.ErrorIs(t, err, svm.ErrEmptyTrainingSet)

	_, err = tr.Train(linearlySeparable(), 0, &dotKernel{})
	require.ErrorIs(t, err, svm.ErrNonPositiveC)

	_, err = tr.Train(linearlySeparable(), 1.0, nil)
	require.ErrorIs(t, err, svm.ErrNilKernel)

	onlyPositive := []svm.TrainingPair[[]float64]{
		{Item: []float64{1, 1}, Class: 1},
		{Item: []float64{2, 2}, Class: 1},
	}
	_, err = tr.Train(onlyPositive, 1.0, &dotKernel{})
	require.ErrorIs(t, err, svm.ErrSingleClass)
}

func TestUnshrinkReconstructsExactGradient(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 40
	pairs := make([]svm.TrainingPair[[]float64], n)
	for i := range pairs {
		x := []float64{rng.NormFloat64() + 2, rng.NormFloat64()}
		class := 1.0
		if i%2 == 1 {
			x = []float64{rng.NormFloat64() - 2, rng.NormFloat64()}
			class = -1.0
		}
		pairs[i] = svm.TrainingPair[[]float64]{Item: x, Class: class}
	}

	opts := DefaultOptions()
	opts.ShrinkingPeriod = 3 // force frequent shrink/unshrink cycling
	opts.MaxIterations = 2000
	tr := New[[]float64](opts)

	result, err := tr.Train(pairs, 1.0, &dotKernel{})
	require.NoError(t, err)
	kktSatisfied(t, pairs, result.Alpha, 1.0, opts.GradientThreshold)
}

func TestBoxFeasibilityHolds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	n := 30
	pairs := make([]svm.TrainingPair[[]float64], n)
	for i := range pairs {
		x := make([]float64, 3)
		for d := range x {
			x[d] = rng.NormFloat64()
		}
		class := 1.0
		if i%2 == 0 {
			class = -1.0
		}
		pairs[i] = svm.TrainingPair[[]float64]{Item: x, Class: class}
	}

	const c = 0.5
	tr := New[[]float64](DefaultOptions())
	result, err := tr.Train(pairs, c, &dotKernel{})
	require.NoError(t, err)

	for i, a := range result.Alpha {
		require.GreaterOrEqualf(t, a, 0.0, "alpha[%d]", i)
		require.LessOrEqualf(t, a, c+1e-9, "alpha[%d]", i)
	}
}

func TestDegenerateDiagonalReported(t *testing.T) {
	// A kernel that always returns 0 makes every diagonal entry 0, which
	// the trainer must detect rather than divide by it forever.
	pairs := []svm.TrainingPair[[]float64]{
		{Item: []float64{1}, Class: 1},
		{Item: []float64{1}, Class: -1},
	}
	tr := New[[]float64](DefaultOptions())
	result, err := tr.Train(pairs, 1.0, &zeroKernel{})
	require.NoError(t, err)
	require.Equal(t, svm.StatusDegenerateDiagonal, result.Status)
}

type zeroKernel struct{}

func (zeroKernel) Compute(x, y []float64) float64   { return 0 }
func (zeroKernel) ComputeSum(x []float64) float64   { return 0 }
func (zeroKernel) AddComponent(w float64, x []float64) {}
func (zeroKernel) ClearComponents()                 {}
func (zeroKernel) HasComponents() bool              { return false }
func (zeroKernel) ForkNew() svm.Kernel[[]float64]   { return zeroKernel{} }
