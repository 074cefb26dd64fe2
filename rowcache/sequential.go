// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rowcache

import "container/list"

// Sequential is a single-threaded, unlocked MRU row cache. It is intended
// for solvers that orchestrate their own parallelism externally (the
// coordinate-descent trainer's parallel variant partitions the index range
// across workers but keeps a single owner for cache mutation).
type Sequential struct {
	creator  Creator
	maxCount int

	diag []float64

	order *list.List            // MRU at Front, LRU at Back.
	elems map[int]*list.Element // index -> element in order
	data  map[int][]float32

	stats Statistics
}

// NewSequential returns a Sequential cache backed by creator, holding at
// most maxCount rows at once. NewSequential panics if maxCount is not
// positive.
func NewSequential(creator Creator, maxCount int) *Sequential {
	if maxCount <= 0 {
		panic("rowcache: non-positive max count")
	}
	return &Sequential{
		creator:  creator,
		maxCount: maxCount,
		order:    list.New(),
		elems:    make(map[int]*list.Element),
		data:     make(map[int][]float32),
	}
}

func (c *Sequential) Diagonal() []float64 {
	if c.diag == nil {
		c.diag = c.creator.Diagonal()
	}
	return c.diag
}

func (c *Sequential) Row(i int) []float32 {
	c.stats.Total++
	if e, ok := c.elems[i]; ok {
		c.stats.Hits++
		c.order.MoveToFront(e)
		return c.data[i]
	}

	row := c.creator.ComputeRow(i)
	c.insert(i, row)
	return row
}

func (c *Sequential) insert(i int, row []float32) {
	if len(c.data) >= c.maxCount {
		c.evictLRU()
	}
	e := c.order.PushFront(i)
	c.elems[i] = e
	c.data[i] = row
	c.stats.Items = len(c.data)
}

func (c *Sequential) evictLRU() {
	back := c.order.Back()
	if back == nil {
		return
	}
	lru := back.Value.(int)
	c.order.Remove(back)
	delete(c.elems, lru)
	delete(c.data, lru)
}

func (c *Sequential) Statistics() Statistics {
	c.stats.Items = len(c.data)
	return c.stats
}

func (c *Sequential) ResetStatistics() {
	c.stats.Hits = 0
	c.stats.Total = 0
}

func (c *Sequential) Clear() {
	c.order = list.New()
	c.elems = make(map[int]*list.Element)
	c.data = make(map[int][]float32)
	c.stats.Items = 0
}
