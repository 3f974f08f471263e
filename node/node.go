// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package node provides the scene graph runtime: node interfaces and
// types, nodes with their fields and events, routes between nodes,
// node capabilities and graph traversal.
//
// Nodes are created by a [Type], which is produced by a [Metatype]
// describing a node implementation. Nodes reference each other
// through [field.SFNode] and [field.MFNode] values, and the resulting
// graph may contain cycles.
package node

import (
	"fmt"
	"sync"

	"cogentcore.org/vrml/base/keylist"
	"cogentcore.org/vrml/field"
)

// Node is an instance of a node [Type]. Its mutable state is guarded by
// a mutex that code changing fields from outside the event loop, such
// as script callbacks, must go through the Node methods to respect.
//
// The mutex is not reentrant. It is never held while hooks run: event
// handlers, OnEvent hooks, the metatype Init, Initialize and Shutdown
// hooks, and ModifiedFunc are all called unlocked, so they may call any
// Node method, and listeners are called without any node lock held.
type Node struct {
	typ   *Type
	scope *Scope

	// ModifiedFunc, if set, is ORed into [Node.Modified]. Nodes with
	// children use it to report modified children.
	ModifiedFunc func(n *Node) bool

	mu       sync.Mutex
	id       string
	scene    Scene
	modified bool

	// fields has the values of fields and exposedFields in
	// interface order.
	fields    *keylist.List[string, field.Value]
	exposed   map[string]exposedField
	eventIns  map[string]Listener
	eventOuts map[string]Emitter

	routes []*route
	caps   []any
}

func newNode(t *Type, scope *Scope) *Node {
	return &Node{
		typ:       t,
		scope:     scope,
		fields:    keylist.New[string, field.Value](),
		exposed:   map[string]exposedField{},
		eventIns:  map[string]Listener{},
		eventOuts: map[string]Emitter{},
	}
}

// Type returns the type of the node.
func (n *Node) Type() *Type { return n.typ }

// Scope returns the scope the node was created in, which may be nil.
func (n *Node) Scope() *Scope { return n.scope }

// ID returns the name of the node in its scope, which is empty for
// unnamed nodes.
func (n *Node) ID() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.id
}

// SetID names the node and binds the name to it in the node scope,
// replacing any node previously bound to that name. It returns an error
// if the node has no scope.
func (n *Node) SetID(id string) error {
	if n.scope == nil {
		return fmt.Errorf("node.SetID: node %s has no scope for name %q", n.typ.id, id)
	}
	n.mu.Lock()
	old := n.id
	n.id = id
	n.mu.Unlock()
	if old != "" && old != id {
		n.scope.remove(old, n)
	}
	n.scope.bind(id, n)
	return nil
}

// Scene returns the scene the node is initialized in, or nil.
func (n *Node) Scene() Scene {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.scene
}

// Browser returns the browser of the node metatype.
func (n *Node) Browser() Browser {
	return n.typ.metatype.browser
}

// Initialize associates the node with the given scene and initializes
// the nodes referenced by its fields. It does nothing if the node is
// already in a scene, so calling it again, or on a graph with cycles,
// initializes every node once.
func (n *Node) Initialize(scene Scene, ts float64) {
	if scene == nil {
		panic("node.Initialize: nil scene")
	}
	n.mu.Lock()
	if n.scene != nil {
		n.mu.Unlock()
		return
	}
	n.scene = scene
	n.mu.Unlock()
	if hook := n.typ.metatype.Initialize; hook != nil {
		hook(n, ts)
	}
	for _, c := range n.ChildNodes() {
		c.Initialize(scene, ts)
	}
}

// Shutdown removes the node from its scene and shuts down the nodes
// referenced by its fields. It does nothing if the node is not in a scene.
func (n *Node) Shutdown(ts float64) {
	n.mu.Lock()
	if n.scene == nil {
		n.mu.Unlock()
		return
	}
	n.scene = nil
	n.mu.Unlock()
	if hook := n.typ.metatype.Shutdown; hook != nil {
		hook(n, ts)
	}
	for _, c := range n.ChildNodes() {
		c.Shutdown(ts)
	}
}

// Modified returns whether the node has changed since it was last
// rendered, including the result of [Node.ModifiedFunc].
func (n *Node) Modified() bool {
	n.mu.Lock()
	m := n.modified
	n.mu.Unlock()
	if !m && n.ModifiedFunc != nil {
		return n.ModifiedFunc(n)
	}
	return m
}

// SetModified sets the modified flag. Setting it also records the node
// in the [Changes] of the browser.
func (n *Node) SetModified(modified bool) {
	n.mu.Lock()
	n.modified = modified
	n.mu.Unlock()
	if modified {
		if b := n.Browser(); b != nil {
			b.Changes().Mark(n)
		}
	}
}

// Field returns a copy of the value of the field or exposedField with
// the given id.
func (n *Node) Field(id string) (field.Value, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	v, ok := n.fields.AtTry(id)
	if !ok {
		return nil, unsupported(n.typ.id, Field, field.TypeInvalid, id, n.typ.interfaces)
	}
	return v.Clone(), nil
}

// SetField sets the value of the field or exposedField with the given
// id and marks the node modified. It is for node implementations: it
// does not emit events.
func (n *Node) SetField(id string, v field.Value) error {
	n.mu.Lock()
	cur, ok := n.fields.AtTry(id)
	if !ok {
		n.mu.Unlock()
		return unsupported(n.typ.id, Field, field.TypeOf(v), id, n.typ.interfaces)
	}
	err := cur.Assign(v)
	n.mu.Unlock()
	if err != nil {
		return fmt.Errorf("%s.%s: %w", n.typ.id, id, err)
	}
	n.SetModified(true)
	return nil
}

// EventListener returns the listener for the eventIn with the given id,
// which may be the implied set_<name> eventIn of an exposedField.
func (n *Node) EventListener(id string) (Listener, error) {
	if l, ok := n.eventIns[id]; ok {
		return l, nil
	}
	for i := range n.typ.interfaces.All() {
		if i.Kind == ExposedField && i.MatchesEventIn(id) {
			return n.exposed[i.ID], nil
		}
	}
	return nil, unsupported(n.typ.id, EventIn, field.TypeInvalid, id, n.typ.interfaces)
}

// EventEmitter returns the emitter for the eventOut with the given id,
// which may be the implied <name>_changed eventOut of an exposedField.
func (n *Node) EventEmitter(id string) (Emitter, error) {
	if e, ok := n.eventOuts[id]; ok {
		return e, nil
	}
	for i := range n.typ.interfaces.All() {
		if i.Kind == ExposedField && i.MatchesEventOut(id) {
			return n.exposed[i.ID], nil
		}
	}
	return nil, unsupported(n.typ.id, EventOut, field.TypeInvalid, id, n.typ.interfaces)
}

// ChildNodes returns the non-null nodes referenced by the SFNode and
// MFNode fields and exposedFields of the node, in interface order.
func (n *Node) ChildNodes() []*Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	var res []*Node
	for _, v := range n.fields.Values {
		if !v.Type().IsNode() {
			continue
		}
		for _, c := range field.Nodes(v) {
			if cn, ok := c.(*Node); ok && cn != nil {
				res = append(res, cn)
			}
		}
	}
	return res
}

// AddCapability adds a capability implementation to the node. It is
// called by the [Metatype.Init] hook. The capability bases of this
// package embedded in c are bound to the node.
func (n *Node) AddCapability(c any) {
	bindCapability(n, c)
	n.mu.Lock()
	defer n.mu.Unlock()
	n.caps = append(n.caps, c)
}

// Cast returns the capability of the node of type T, which is typically
// one of the capability interfaces such as [GroupingNode]. It returns
// false if the node is nil or has no such capability. Cast is the way
// to test nodes for capabilities.
func Cast[T any](n *Node) (T, bool) {
	var zero T
	if n == nil {
		return zero, false
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, c := range n.caps {
		if t, ok := c.(T); ok {
			return t, true
		}
	}
	return zero, false
}
