// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coorddescent

// updateGradient applies a single coordinate's update to every active
// coordinate's gradient: g[j] += delta*row[j] for j in active. The scan is
// partitioned over the active-set slice; each worker writes only the
// positions it reads, so no synchronisation beyond the join is needed.
func updateGradient(active []int, g []float64, row []float32, delta float64, workers int) {
	if delta == 0 {
		return
	}
	forEachChunk(len(active), workers, func(lo, hi int) {
		for _, j := range active[lo:hi] {
			g[j] += delta * float64(row[j])
		}
	})
}

// reconstructGradient rebuilds g from scratch after an unshrink: g starts at
// -1 (the caller resets it), then for every (weight, row) pair supplied,
// g[j] += weight*row[j] for all j in [0, len(g)). The accumulation is
// partitioned over output columns rather than over the (weight, row) pairs,
// since multiple pairs contribute to every output position and partitioning
// by pair would race on the same g entries.
func reconstructGradient(g []float64, weights []float64, rows [][]float32, workers int) {
	forEachChunk(len(g), workers, func(lo, hi int) {
		for k, row := range rows {
			w := weights[k]
			if w == 0 {
				continue
			}
			for j := lo; j < hi; j++ {
				g[j] += w * float64(row[j])
			}
		}
	})
}
