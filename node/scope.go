// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"maps"
	"runtime"
	"slices"
	"sync"
	"weak"
)

// Scope is a namespace mapping node names (DEF names) to nodes, used
// to resolve USE references within one document or PROTO definition.
// A scope does not keep its nodes alive: the name of a node is removed
// once the node is garbage collected.
type Scope struct {
	id     string
	parent *Scope

	mu    sync.Mutex
	nodes map[string]weak.Pointer[Node]
}

// NewScope returns a new scope with the given id, nested in parent,
// which may be nil.
func NewScope(id string, parent *Scope) *Scope {
	return &Scope{id: id, parent: parent, nodes: map[string]weak.Pointer[Node]{}}
}

// ID returns the id of the scope, typically a document URL or PROTO name.
func (s *Scope) ID() string { return s.id }

// Parent returns the enclosing scope, or nil.
func (s *Scope) Parent() *Scope { return s.parent }

// scopeEntry is the argument of the cleanup of a bound node.
type scopeEntry struct {
	name string
	ptr  weak.Pointer[Node]
}

// bind binds name to n.
func (s *Scope) bind(name string, n *Node) {
	wp := weak.Make(n)
	s.mu.Lock()
	s.nodes[name] = wp
	s.mu.Unlock()
	runtime.AddCleanup(n, s.cleanup, scopeEntry{name: name, ptr: wp})
}

// cleanup removes the entry for a collected node, unless the name
// has been bound to another node since.
func (s *Scope) cleanup(e scopeEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nodes[e.name] == e.ptr {
		delete(s.nodes, e.name)
	}
}

// remove removes the binding of name if it is bound to n.
func (s *Scope) remove(name string, n *Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if wp, ok := s.nodes[name]; ok && wp.Value() == n {
		delete(s.nodes, name)
	}
}

// Remove removes the binding of the given name. It returns whether
// the name was bound.
func (s *Scope) Remove(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.nodes[name]
	delete(s.nodes, name)
	return ok
}

// FindNode returns the node bound to the given name in this scope or,
// failing that, in the enclosing scopes. It returns nil if there is none.
func (s *Scope) FindNode(name string) *Node {
	for sc := s; sc != nil; sc = sc.parent {
		sc.mu.Lock()
		wp, ok := sc.nodes[name]
		sc.mu.Unlock()
		if ok {
			if n := wp.Value(); n != nil {
				return n
			}
		}
	}
	return nil
}

// Names returns the sorted names bound in this scope.
func (s *Scope) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Sorted(maps.Keys(s.nodes))
}
