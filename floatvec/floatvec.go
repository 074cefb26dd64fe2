// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package floatvec collects the small numeric helpers shared by the
// solvers in this module, mirroring the style of gonum.org/v1/gonum/floats
// but specialised to the mixed float64/float32 arithmetic that arises from
// keeping Hessian rows in 32-bit storage.
package floatvec // import "gonum.org/v1/svm/floatvec"

import "math"

// Clip returns v clamped to the closed interval [lo, hi].
func Clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AddScaledRow computes dst[i] += alpha*row[i] for every i, where row is
// stored in 32-bit float precision and dst in 64-bit.
func AddScaledRow(dst []float64, alpha float64, row []float32) {
	if len(dst) != len(row) {
		panic("floatvec: length mismatch")
	}
	if alpha == 0 {
		return
	}
	for i, r := range row {
		dst[i] += alpha * float64(r)
	}
}

// InfNorm returns the infinity norm (largest absolute value) of v, or 0 if
// v is empty.
func InfNorm(v []float64) float64 {
	var m float64
	for _, x := range v {
		if a := math.Abs(x); a > m {
			m = a
		}
	}
	return m
}

// Fill sets every element of dst to v.
func Fill(dst []float64, v float64) {
	for i := range dst {
		dst[i] = v
	}
}
