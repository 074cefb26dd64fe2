// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chunking

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"gonum.org/v1/svm"
	"gonum.org/v1/svm/innersolver"
)

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

func (k *dotKernel) ClearComponents()       { k.components = nil }
func (k *dotKernel) HasComponents() bool    { return len(k.components) > 0 }
func (k *dotKernel) ForkNew() svm.Kernel[[]float64] { return &dotKernel{} }

func linearlySeparable() []svm.TrainingPair[[]float64] {
	return []svm.TrainingPair[[]float64]{
		{Item: []float64{2, 2}, Class: 1},
		{Item: []float64{3, 3}, Class: 1},
		{Item: []float64{-2, -2}, Class: -1},
		{Item: []float64{-3, -3}, Class: -1},
	}
}

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
			require.GreaterOrEqual(t, ratio, -epsG-1e-3, "index %d at lower bound", i)
		case alpha[i] == c:
			require.LessOrEqual(t, ratio, epsG+1e-3, "index %d at upper bound", i)
		default:
			require.InDelta(t, 0, ratio, epsG+1e-3, "index %d interior", i)
		}
	}
}

func TestTrainConvergesWithLineSearch(t *testing.T) {
	pairs := linearlySeparable()
	tr := New[[]float64](DefaultOptions(), innersolver.LineSearch{})

	result, err := tr.Train(pairs, 1.0, &dotKernel{})
	require.NoError(t, err)
	require.Equal(t, svm.StatusConverged, result.Status)

	for _, a := range result.Alpha {
		require.GreaterOrEqual(t, a, -1e-9)
		require.LessOrEqual(t, a, 1.0+1e-9)
	}
	kktSatisfied(t, pairs, result.Alpha, 1.0, DefaultGradientThreshold)
}

func TestTrainConvergesWithTruncatedNewton(t *testing.T) {
	pairs := linearlySeparable()
	tr := New[[]float64](DefaultOptions(), innersolver.TruncatedNewton{})

	result, err := tr.Train(pairs, 1.0, &dotKernel{})
	require.NoError(t, err)
	require.Equal(t, svm.StatusConverged, result.Status)
	kktSatisfied(t, pairs, result.Alpha, 1.0, DefaultGradientThreshold)
}

func TestTrainRejectsDegenerateInputs(t *testing.T) {
	tr := New[[]float64](DefaultOptions(), nil)

	_, err := tr.Train(nil, 1.0, &dotKernel{})
	require.ErrorIs(t, err, svm.ErrEmptyTrainingSet)

	_, err = tr.Train(linearlySeparable(), 0, &dotKernel{})
	require.ErrorIs(t, err, svm.ErrNonPositiveC)

	_, err = tr.Train(linearlySeparable(), 1.0, nil)
	require.ErrorIs(t, err, svm.ErrNilKernel)
}

func TestLargerProblemConverges(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	n := 60
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
	opts.MaxChunkSize = 8
	tr := New[[]float64](opts, innersolver.LineSearch{})

	result, err := tr.Train(pairs, 1.0, &dotKernel{})
	require.NoError(t, err)
	kktSatisfied(t, pairs, result.Alpha, 1.0, opts.GradientThreshold)
}
