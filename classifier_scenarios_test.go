// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svm_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"gonum.org/v1/svm"
	"gonum.org/v1/svm/chunking"
	"gonum.org/v1/svm/coorddescent"
	"gonum.org/v1/svm/kernel"
)

// TestExactTwoPointToy is S1: with the bias folded into the kernel via
// Bias(k, 1.0) (the redesigned bias mechanism, rather than an equality
// constraint on α), the signed Gram matrix for x1=(1,0), y1=+1 and
// x2=(-1,0), y2=-1 is exactly diagonal (the off-diagonal +1/-1 terms
// cancel), so the dual decouples into two independent one-dimensional
// problems with closed-form optimum α_i = min(C, 1/Q_ii) = 0.5, and the
// discriminant's bias terms cancel by symmetry to leave f(x) = x[0].
func TestExactTwoPointToy(t *testing.T) {
	pairs := []svm.TrainingPair[[]float64]{
		{Item: []float64{1, 0}, Class: 1},
		{Item: []float64{-1, 0}, Class: -1},
	}

	trainer := coorddescent.New[[]float64](coorddescent.DefaultOptions())
	clf := svm.NewBinaryClassifier[[]float64](kernel.NewLinear(), trainer)

	result, err := clf.Train(pairs, 1.0)
	require.NoError(t, err)
	require.InDelta(t, 0.5, result.Alpha[0], 1e-3)
	require.InDelta(t, 0.5, result.Alpha[1], 1e-3)

	require.InDelta(t, 1.0, clf.Discriminate([]float64{1, 0}), 1e-3)
	require.InDelta(t, -1.0, clf.Discriminate([]float64{-1, 0}), 1e-3)
	require.InDelta(t, 0.0, clf.Discriminate([]float64{0, 0}), 1e-3)
}

// TestXORWithRBF is S2: the XOR pattern is not linearly separable, but the
// Gaussian/RBF kernel lifts it into a space where it is; every point ends
// up a support vector with equal α, and every point classifies with the
// correct sign.
func TestXORWithRBF(t *testing.T) {
	pairs := []svm.TrainingPair[[]float64]{
		{Item: []float64{0, 0}, Class: -1},
		{Item: []float64{1, 1}, Class: -1},
		{Item: []float64{1, 0}, Class: 1},
		{Item: []float64{0, 1}, Class: 1},
	}

	trainer := coorddescent.New[[]float64](coorddescent.DefaultOptions())
	clf := svm.NewBinaryClassifier[[]float64](kernel.NewGaussian(1.0), trainer)

	result, err := clf.Train(pairs, 10.0)
	require.NoError(t, err)

	for i, a := range result.Alpha {
		require.Greater(t, a, 0.0, "point %d should be a support vector", i)
		require.InDelta(t, result.Alpha[0], a, 1e-3, "point %d should share the common alpha", i)
	}

	for _, p := range pairs {
		got := clf.Discriminate(p.Item)
		require.Equal(t, p.Class, sign(got), "point %v", p.Item)
	}
}

// TestLargeCApproachesHardMargin is S4: as C grows large, the soft-margin
// solution approaches the hard margin, leaving only the handful of points
// that actually touch it as support vectors; as C shrinks, the penalty for
// margin violations vanishes and every point saturates at the upper bound.
func TestLargeCApproachesHardMargin(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 100
	pairs := make([]svm.TrainingPair[[]float64], n)
	for i := range pairs {
		if i%2 == 0 {
			pairs[i] = svm.TrainingPair[[]float64]{
				Item:  []float64{rng.NormFloat64()*0.3 + 5, rng.NormFloat64() * 0.3},
				Class: 1,
			}
		} else {
			pairs[i] = svm.TrainingPair[[]float64]{
				Item:  []float64{rng.NormFloat64()*0.3 - 5, rng.NormFloat64() * 0.3},
				Class: -1,
			}
		}
	}

	hardTrainer := coorddescent.New[[]float64](coorddescent.DefaultOptions())
	hardClf := svm.NewBinaryClassifier[[]float64](kernel.NewLinear(), hardTrainer)
	hardResult, err := hardClf.Train(pairs, 1e6)
	require.NoError(t, err)

	const svThreshold = 1e-3
	nSV := 0
	for _, a := range hardResult.Alpha {
		if a > svThreshold {
			nSV++
		}
	}
	require.LessOrEqual(t, nSV, 8, "a well-separated problem should need only a handful of support vectors")

	softTrainer := coorddescent.New[[]float64](coorddescent.DefaultOptions())
	softClf := svm.NewBinaryClassifier[[]float64](kernel.NewLinear(), softTrainer)
	softResult, err := softClf.Train(pairs, 1e-3)
	require.NoError(t, err)

	for i, a := range softResult.Alpha {
		require.InDelta(t, 1e-3, a, 1e-6, "point %d should saturate at the vanishing penalty C", i)
	}
}

// TestCoordDescentAgreesWithChunking is S6: the two trainers pose and solve
// the same dual problem by different algorithms; on a linearly separable
// problem they must agree almost everywhere, both on the training set and
// on an independent test set drawn from the same distribution.
func TestCoordDescentAgreesWithChunking(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	draw := func(n int) []svm.TrainingPair[[]float64] {
		pairs := make([]svm.TrainingPair[[]float64], n)
		for i := range pairs {
			if i%2 == 0 {
				pairs[i] = svm.TrainingPair[[]float64]{
					Item:  []float64{rng.NormFloat64() + 3, rng.NormFloat64()},
					Class: 1,
				}
			} else {
				pairs[i] = svm.TrainingPair[[]float64]{
					Item:  []float64{rng.NormFloat64() - 3, rng.NormFloat64()},
					Class: -1,
				}
			}
		}
		return pairs
	}

	train := draw(200)
	test := draw(200)

	cdClf := svm.NewBinaryClassifier[[]float64](kernel.NewLinear(), coorddescent.New[[]float64](coorddescent.DefaultOptions()))
	_, err := cdClf.Train(train, 1.0)
	require.NoError(t, err)

	chunkClf := svm.NewBinaryClassifier[[]float64](kernel.NewLinear(), chunking.New[[]float64](chunking.DefaultOptions(), nil))
	_, err = chunkClf.Train(train, 1.0)
	require.NoError(t, err)

	checkAgreement := func(pairs []svm.TrainingPair[[]float64]) {
		disagreements := 0
		for _, p := range pairs {
			if sign(cdClf.Discriminate(p.Item)) != sign(chunkClf.Discriminate(p.Item)) {
				disagreements++
			}
		}
		require.LessOrEqual(t, float64(disagreements)/float64(len(pairs)), 0.01)
	}
	checkAgreement(train)
	checkAgreement(test)
}
