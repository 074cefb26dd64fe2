// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rowcache

import (
	"golang.org/x/sync/errgroup"

	"gonum.org/v1/svm/internal/partition"
)

// Operator is a linear operator represented as a matrix-vector action,
// following the "function-valued data as a tagged struct" design used
// throughout this module in place of captured closures in hot loops.
type Operator interface {
	// Apply computes dst = M*src for the operator's fixed matrix M. dst
	// must already be sized for the operator's output dimension; Apply
	// overwrites it, it does not accumulate into it.
	Apply(dst, src []float64)
}

// ActiveSubtensors prefetches the Q rows for every index in the working set
// b, using up to workers goroutines (workers ≤ 1 prefetches serially), and
// returns three operators over the resulting block:
//
//   - qbb applies the |b|×|b| block Q[b,b] to a vector indexed like b.
//   - qbn applies the |b|×|n| block Q[b,n] to a vector indexed like n,
//     producing a vector indexed like b.
//   - qa applies the full P×|b| block Q[:,b] to a vector indexed like b,
//     producing a vector of length P.
//
// diagBB is the materialised diagonal of Q[b,b]. The returned operators
// retain references to the prefetched rows, so they stay valid for the
// lifetime of the chunking subproblem even if the rows are evicted from
// the cache in the meantime.
func (c *Concurrent) ActiveSubtensors(b, n []int, workers int) (qbb, qbn, qa Operator, diagBB []float64) {
	return activeSubtensors(c, b, n, workers)
}

// ActiveSubtensors is the sequential-cache counterpart of
// Concurrent.ActiveSubtensors; row prefetch happens serially since the
// sequential cache orchestrates no internal concurrency of its own.
func (c *Sequential) ActiveSubtensors(b, n []int) (qbb, qbn, qa Operator, diagBB []float64) {
	rows := make([][]float32, len(b))
	for i, idx := range b {
		rows[i] = c.Row(idx)
	}
	return buildSubtensors(rows, b, n, c.Diagonal())
}

func activeSubtensors(c *Concurrent, b, n []int, workers int) (qbb, qbn, qa Operator, diagBB []float64) {
	rows := make([][]float32, len(b))
	if workers <= 1 || len(b) == 0 {
		for i, idx := range b {
			rows[i] = c.Row(idx)
		}
		return buildSubtensors(rows, b, n, c.Diagonal())
	}

	ranges := partition.Static(0, len(b), workers)
	var g errgroup.Group
	for _, r := range ranges {
		r := r
		g.Go(func() error {
			for i := r.Start; i < r.End; i++ {
				rows[i] = c.Row(b[i])
			}
			return nil
		})
	}
	g.Wait() // Every worker fills a disjoint range of rows; no merge needed.
	return buildSubtensors(rows, b, n, c.Diagonal())
}

func buildSubtensors(rows [][]float32, b, n []int, diag []float64) (qbb, qbn, qa Operator, diagBB []float64) {
	diagBB = make([]float64, len(b))
	for i, idx := range b {
		diagBB[i] = diag[idx]
	}
	qbb = &blockOperator{rows: rows, cols: b}
	qbn = &blockOperator{rows: rows, cols: n}
	qa = &fullRowOperator{rows: rows}
	return qbb, qbn, qa, diagBB
}

// blockOperator applies the block formed by a fixed set of prefetched rows
// restricted to a fixed set of columns: dst[i] = Σⱼ rows[i][cols[j]]*src[j].
type blockOperator struct {
	rows [][]float32
	cols []int
}

func (op *blockOperator) Apply(dst, src []float64) {
	if len(dst) != len(op.rows) || len(src) != len(op.cols) {
		panic("rowcache: operator dimension mismatch")
	}
	for i, row := range op.rows {
		var sum float64
		for j, col := range op.cols {
			sum += float64(row[col]) * src[j]
		}
		dst[i] = sum
	}
}

// fullRowOperator applies the full-length prefetched rows to a vector
// indexed like those rows, producing a vector of length P:
// dst[j] = Σᵢ rows[i][j]*src[i].
type fullRowOperator struct {
	rows [][]float32
}

func (op *fullRowOperator) Apply(dst, src []float64) {
	if len(src) != len(op.rows) {
		panic("rowcache: operator dimension mismatch")
	}
	for j := range dst {
		dst[j] = 0
	}
	for i, row := range op.rows {
		s := src[i]
		if s == 0 {
			continue
		}
		for j := range dst {
			dst[j] += float64(row[j]) * s
		}
	}
}
