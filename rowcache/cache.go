// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rowcache provides an MRU-indexed store of the signed-Gram rows
// Qᵢⱼ = yᵢ yⱼ K(xᵢ, xⱼ) that the SVM dual solvers consume. Rows are
// materialised lazily, one at a time, by a Creator supplied by the caller
// (see gonum.org/v1/svm/rowcreator for the Serial, StaticParallel and
// WorkStealing implementations); the cache itself never calls the kernel.
package rowcache // import "gonum.org/v1/svm/rowcache"

// Creator produces the Q row for a single index on demand. Implementations
// must be safe to call from multiple goroutines concurrently for distinct
// indices; the Concurrent cache variant relies on that.
type Creator interface {
	// ComputeRow returns Q[i][0:P] where Q[i][j] = y_i*y_j*K(x_i, x_j).
	ComputeRow(i int) []float32

	// Diagonal returns the precomputed diagonal Q[i][i] for every i.
	Diagonal() []float64

	// Len returns P, the number of training pairs.
	Len() int
}

// Statistics records cache activity since the last ResetStatistics call.
type Statistics struct {
	Hits  int // Requests satisfied without invoking the Creator.
	Total int // Total Row requests.
	Items int // Rows currently resident in the cache.
}

// Cache is a thread-safe or sequential MRU store of Hessian rows, keyed by
// row index. Any row returned by Row is identical to what
// Creator.ComputeRow would produce for that index, independent of eviction
// history.
type Cache interface {
	// Diagonal returns the cache's memoised copy of Creator.Diagonal,
	// computing it on the first call.
	Diagonal() []float64

	// Row returns the Q row for index i, computing and caching it on a
	// miss and evicting the least-recently-used row if the cache is full.
	// Touching a row (whether a hit or a miss) marks it most-recently-used.
	Row(i int) []float32

	// Statistics returns the cache's activity counters.
	Statistics() Statistics

	// ResetStatistics zeroes the Hits and Total counters.
	ResetStatistics()

	// Clear evicts every cached row.
	Clear()
}
