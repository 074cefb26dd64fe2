// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chunking

import (
	"math"
	"sort"
)

// isCandidate reports whether coordinate i, with α_i and normalised
// gradient ratio = g_i/Q_ii, violates the KKT tolerance policy: an
// interior coordinate violates when |ratio| exceeds epsG; a coordinate
// pinned at 0 violates when ratio is too negative; one pinned at c
// violates when ratio is too positive.
func isCandidate(alphaI, ratio, c, epsG float64) bool {
	switch {
	case alphaI > 0 && alphaI < c:
		return math.Abs(ratio) > epsG
	case alphaI == 0:
		return ratio < -epsG
	default: // alphaI == c
		return ratio > epsG
	}
}

// selectWorkingSet collects every KKT-violating coordinate, orders them by
// |g_i/Q_ii| ascending, and returns up to maxChunkSize of them as the
// working set B, together with its complement N (every other index, in
// ascending order).
func selectWorkingSet(alpha, g, diag []float64, c, epsG float64, maxChunkSize int) (b, n []int) {
	type scored struct {
		idx   int
		score float64
	}
	var candidates []scored
	inB := make(map[int]bool)

	for i := range alpha {
		ratio := g[i] / diag[i]
		if isCandidate(alpha[i], ratio, c, epsG) {
			candidates = append(candidates, scored{idx: i, score: math.Abs(ratio)})
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].score < candidates[j].score })

	if len(candidates) > maxChunkSize {
		candidates = candidates[:maxChunkSize]
	}
	b = make([]int, len(candidates))
	for k, c := range candidates {
		b[k] = c.idx
		inB[c.idx] = true
	}

	n = make([]int, 0, len(alpha)-len(b))
	for i := range alpha {
		if !inB[i] {
			n = append(n, i)
		}
	}
	return b, n
}

// subsetOf reports whether every index in b also appears in prev.
func subsetOf(b []int, prev map[int]bool) bool {
	for _, i := range b {
		if !prev[i] {
			return false
		}
	}
	return true
}

// toSet builds a membership set from a sorted index slice.
func toSet(idx []int) map[int]bool {
	set := make(map[int]bool, len(idx))
	for _, i := range idx {
		set[i] = true
	}
	return set
}
