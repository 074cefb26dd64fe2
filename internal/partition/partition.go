// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package partition provides deterministic contiguous partitioning of index
// ranges for fork-join parallel loops, in the style of the static-vs-dynamic
// worker dispatch used throughout gonum's own diff/fd package.
package partition // import "gonum.org/v1/svm/internal/partition"

// Range is a contiguous, half-open index range [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of indices in r.
func (r Range) Len() int { return r.End - r.Start }

// Static partitions [start, end) into n contiguous, non-overlapping ranges
// whose union is [start, end). n is clamped to the size of the interval, so
// the returned slice may have fewer than n entries and none are empty; it
// never has more entries than n. If n <= 0 or end <= start, Static panics.
//
// The split is as even as possible: the first (end-start) mod n ranges get
// one extra index, matching the common "leader gets the remainder" scheme
// so that no worker is starved while another idles.
func Static(start, end, n int) []Range {
	if end <= start {
		panic("partition: empty or inverted range")
	}
	if n <= 0 {
		panic("partition: non-positive partition count")
	}
	total := end - start
	if n > total {
		n = total
	}

	ranges := make([]Range, n)
	base := total / n
	rem := total % n
	cur := start
	for i := 0; i < n; i++ {
		size := base
		if i < rem {
			size++
		}
		ranges[i] = Range{Start: cur, End: cur + size}
		cur += size
	}
	return ranges
}
