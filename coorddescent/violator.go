// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coorddescent

import (
	"golang.org/x/sync/errgroup"

	"gonum.org/v1/svm/internal/partition"
)

// violator is the outcome of scanning a slice of the active set for the
// steepest KKT violator: index is its position in the original problem (not
// in the active-set slice), deltaG = g[index]*(g[index]/Q[index][index]),
// and found reports whether any violator was present in the scanned slice.
type violator struct {
	index  int
	deltaG float64
	found  bool
}

// isViolator reports whether coordinate i, with normalised gradient
// ratio = g[i]/Q[i][i], admits a feasible descent step under box [0, c].
func isViolator(alpha, ratio, c, epsG float64) bool {
	return (alpha < c && ratio < -epsG) || (alpha > 0 && ratio > epsG)
}

// scanRange finds the steepest violator among active[lo:hi].
func scanRange(active []int, lo, hi int, alpha, g, diag []float64, c, epsG float64) violator {
	var best violator
	for _, i := range active[lo:hi] {
		ratio := g[i] / diag[i]
		if !isViolator(alpha[i], ratio, c, epsG) {
			continue
		}
		dg := g[i] * ratio
		if !best.found || dg > best.deltaG {
			best = violator{index: i, deltaG: dg, found: true}
		}
	}
	return best
}

// selectViolator picks the steepest KKT violator among the indices in
// active, partitioning the scan across workers and merging the per-worker
// maxima. It returns found = false when active contains no violator.
func selectViolator(active []int, alpha, g, diag []float64, c, epsG float64, workers int) violator {
	if workers <= 1 || len(active) == 0 {
		return scanRange(active, 0, len(active), alpha, g, diag, c, epsG)
	}

	ranges := partition.Static(0, len(active), workers)
	results := make([]violator, len(ranges))
	var grp errgroup.Group
	for w, r := range ranges {
		w, r := w, r
		grp.Go(func() error {
			results[w] = scanRange(active, r.Start, r.End, alpha, g, diag, c, epsG)
			return nil
		})
	}
	grp.Wait() // Each worker writes its own results slot; no aliasing.

	var best violator
	for _, res := range results {
		if !res.found {
			continue
		}
		if !best.found || res.deltaG > best.deltaG {
			best = res
		}
	}
	return best
}
