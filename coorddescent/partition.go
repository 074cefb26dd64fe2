// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coorddescent

import (
	"golang.org/x/sync/errgroup"

	"gonum.org/v1/svm/internal/partition"
)

// forEachChunk splits [0, n) into workers contiguous ranges and runs f over
// each range concurrently, waiting for all of them to finish. With
// workers ≤ 1 (or n == 0) it calls f once, inline, over the whole range.
func forEachChunk(n, workers int, f func(lo, hi int)) {
	if workers <= 1 || n == 0 {
		f(0, n)
		return
	}
	ranges := partition.Static(0, n, workers)
	var g errgroup.Group
	for _, r := range ranges {
		r := r
		g.Go(func() error {
			f(r.Start, r.End)
			return nil
		})
	}
	g.Wait() // Every callback below writes a disjoint index range; no merge needed.
}
