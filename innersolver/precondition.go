// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package innersolver

import "gonum.org/v1/gonum/floats"

// jacobi computes the Jacobi preconditioner diagonal
// M(t,λ) = 1 / (t·diagQ + diagHphi) into dst.
func jacobi(dst, diagQ, diagHphi []float64, t float64) {
	for i := range dst {
		dst[i] = 1 / (t*diagQ[i] + diagHphi[i])
	}
}

// applyDiag computes dst[i] = diag[i]*src[i].
func applyDiag(dst, diag, src []float64) {
	copy(dst, src)
	floats.Mul(dst, diag)
}
