// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

// Traverser walks the graph of nodes depth first along the references
// of their SFNode and MFNode fields and exposedFields. Each node is
// visited once per call to [Traverser.Traverse], even if it is reachable
// along several paths or through cycles.
//
// A Traverser is not safe for concurrent use, but it can be reused
// after Traverse returns.
type Traverser struct {
	// OnEntering, if set, is called when a node is entered, before
	// its children are visited. Returning an error stops the traversal.
	OnEntering func(n *Node) error

	// OnLeaving, if set, is called when a node is left, after its
	// children are visited. Returning an error stops the traversal.
	OnLeaving func(n *Node) error

	visited map[*Node]struct{}
	halted  bool
}

// Traverse walks the graph from each of the given nodes in turn.
// It returns the first error returned by a callback. The traversal
// state is reset when Traverse returns, also when a callback panics.
func (t *Traverser) Traverse(nodes ...*Node) error {
	defer t.reset()
	t.visited = map[*Node]struct{}{}
	for _, n := range nodes {
		if t.halted {
			break
		}
		if err := t.traverse(n); err != nil {
			return err
		}
	}
	return nil
}

// Halt stops the traversal: no further nodes are entered, but
// OnLeaving is still called for the current node and its ancestors.
// It is typically called from OnEntering.
func (t *Traverser) Halt() {
	t.halted = true
}

// Halted returns whether [Traverser.Halt] was called in the current traversal.
func (t *Traverser) Halted() bool {
	return t.halted
}

func (t *Traverser) reset() {
	t.visited = nil
	t.halted = false
}

func (t *Traverser) traverse(n *Node) error {
	if n == nil {
		return nil
	}
	if _, ok := t.visited[n]; ok {
		return nil
	}
	t.visited[n] = struct{}{}
	if t.OnEntering != nil {
		if err := t.OnEntering(n); err != nil {
			return err
		}
	}
	for _, c := range n.ChildNodes() {
		if t.halted {
			break
		}
		if err := t.traverse(c); err != nil {
			return err
		}
	}
	if t.OnLeaving != nil {
		return t.OnLeaving(n)
	}
	return nil
}
