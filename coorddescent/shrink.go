// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coorddescent

// minShrinkRemoval is the smallest number of indices a shrink must remove
// to be worth applying; smaller shrinks are skipped to avoid rebuilding the
// active set for negligible benefit.
const minShrinkRemoval = 12

// eligible reports whether coordinate i belongs in the shrunk active set:
// it is either strictly interior, or sits at a bound with a gradient that
// points into the box (so it may still move). Coordinates settled at a
// bound, with a gradient pushing them outward or zero, are dropped.
func eligible(alphaI, gI, c float64) bool {
	switch {
	case alphaI > 0 && alphaI < c:
		return true
	case alphaI == 0 && gI < 0:
		return true
	case alphaI == c && gI > 0:
		return true
	default:
		return false
	}
}

// shrinkActiveSet rebuilds active to contain only eligible indices, unless
// doing so would remove fewer than minShrinkRemoval indices, in which case
// it returns active unchanged.
func shrinkActiveSet(active []int, alpha, g []float64, c float64) []int {
	kept := active[:0:0]
	for _, i := range active {
		if eligible(alpha[i], g[i], c) {
			kept = append(kept, i)
		}
	}
	if len(active)-len(kept) < minShrinkRemoval {
		return active
	}
	return kept
}
