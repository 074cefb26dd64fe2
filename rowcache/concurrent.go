// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rowcache

import (
	"container/list"
	"sync"
)

// Concurrent is a thread-safe MRU row cache. All mutation of the MRU order
// and the backing map is serialised behind a single mutex, the same
// discipline gonum's own optimize.minimizeGlobal uses for its stats
// combiner: one owner for shared state keeps the critical section short and
// avoids the need for finer-grained locking at the row-cache's modest
// contention levels.
//
// A row returned by Row remains valid even if it is later evicted from the
// cache: the caller holds its own reference to the returned slice.
type Concurrent struct {
	creator  Creator
	maxCount int

	mu    sync.Mutex
	order *list.List
	elems map[int]*list.Element
	data  map[int][]float32
	stats Statistics

	diagOnce sync.Once
	diag     []float64
}

// NewConcurrent returns a Concurrent cache backed by creator, holding at
// most maxCount rows at once. NewConcurrent panics if maxCount is not
// positive.
func NewConcurrent(creator Creator, maxCount int) *Concurrent {
	if maxCount <= 0 {
		panic("rowcache: non-positive max count")
	}
	return &Concurrent{
		creator:  creator,
		maxCount: maxCount,
		order:    list.New(),
		elems:    make(map[int]*list.Element),
		data:     make(map[int][]float32),
	}
}

func (c *Concurrent) Diagonal() []float64 {
	c.diagOnce.Do(func() {
		c.diag = c.creator.Diagonal()
	})
	return c.diag
}

// Row returns the cached row for i, computing it on a miss. The row
// creation itself happens outside the lock so that a cache miss does not
// block readers of unrelated rows; a second caller racing on the same miss
// may recompute the row rather than wait, which the cache contract
// explicitly allows since both results are equal by definition.
func (c *Concurrent) Row(i int) []float32 {
	c.mu.Lock()
	c.stats.Total++
	if e, ok := c.elems[i]; ok {
		c.stats.Hits++
		c.order.MoveToFront(e)
		row := c.data[i]
		c.mu.Unlock()
		return row
	}
	c.mu.Unlock()

	row := c.creator.ComputeRow(i)

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.elems[i]; ok {
		// Another goroutine already inserted this row while we computed
		// ours; keep the resident copy and discard the duplicate work.
		c.order.MoveToFront(e)
		return c.data[i]
	}
	c.insertLocked(i, row)
	return row
}

func (c *Concurrent) insertLocked(i int, row []float32) {
	if len(c.data) >= c.maxCount {
		c.evictLRULocked()
	}
	e := c.order.PushFront(i)
	c.elems[i] = e
	c.data[i] = row
	c.stats.Items = len(c.data)
}

func (c *Concurrent) evictLRULocked() {
	back := c.order.Back()
	if back == nil {
		return
	}
	lru := back.Value.(int)
	c.order.Remove(back)
	delete(c.elems, lru)
	delete(c.data, lru)
}

func (c *Concurrent) Statistics() Statistics {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.Items = len(c.data)
	return c.stats
}

func (c *Concurrent) ResetStatistics() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.Hits = 0
	c.stats.Total = 0
}

func (c *Concurrent) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order = list.New()
	c.elems = make(map[int]*list.Element)
	c.data = make(map[int][]float32)
	c.stats.Items = 0
}
