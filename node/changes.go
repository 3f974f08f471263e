// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import "sync"

// Changes is a queue of modified nodes with a generation counter.
// Nodes are marked when they are modified, and the renderer drains
// the queue to decide whether a new frame is needed. A node is queued
// once until the queue is drained.
type Changes struct {
	mu         sync.Mutex
	generation uint64
	pending    []*Node
	queued     map[*Node]struct{}
}

// Mark records that n was modified and advances the generation.
func (c *Changes) Mark(n *Node) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	if c.queued == nil {
		c.queued = map[*Node]struct{}{}
	}
	if _, ok := c.queued[n]; ok {
		return
	}
	c.queued[n] = struct{}{}
	c.pending = append(c.pending, n)
}

// Generation returns the number of changes recorded so far.
func (c *Changes) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Pending returns the number of queued nodes.
func (c *Changes) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Drain returns the queued nodes in the order they were first marked
// and empties the queue.
func (c *Changes) Drain() []*Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	res := c.pending
	c.pending = nil
	clear(c.queued)
	return res
}
