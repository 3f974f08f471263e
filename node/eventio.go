// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"fmt"

	"cogentcore.org/vrml/field"
)

// EventInListener is the listener of an eventIn interface of a node.
type EventInListener[T field.Value] struct {
	node  *Node
	id    string
	value T

	// Handler, if set, is called with every received value. A handler
	// that changes state visible on the node must mark the node modified.
	Handler func(n *Node, v T, ts float64)
}

func (l *EventInListener[T]) Node() *Node { return l.node }

// ID returns the eventIn id.
func (l *EventInListener[T]) ID() string { return l.id }

func (l *EventInListener[T]) FieldType() field.Type { return l.value.Type() }

// Value returns a copy of the last received value.
func (l *EventInListener[T]) Value() T {
	l.node.mu.Lock()
	defer l.node.mu.Unlock()
	return l.value.Clone().(T)
}

// ProcessEvent records v as the last received value and calls the handler.
func (l *EventInListener[T]) ProcessEvent(v T, ts float64) {
	l.node.mu.Lock()
	err := l.value.Assign(v)
	l.node.mu.Unlock()
	if err != nil {
		panic(err) // T is a single concrete type
	}
	if l.Handler != nil {
		l.Handler(l.node, v, ts)
	}
}

func (l *EventInListener[T]) ProcessValue(v field.Value, ts float64) error {
	return processValue[T](l, v, ts)
}

// EventOutEmitter is the emitter of an eventOut interface of a node.
type EventOutEmitter[T field.Value] struct {
	*FieldEmitter[T]
	id string
}

// ID returns the eventOut id.
func (e *EventOutEmitter[T]) ID() string { return e.id }

// Set sets the value of the eventOut and emits it with the given timestamp.
func (e *EventOutEmitter[T]) Set(v T, ts float64) {
	e.node.mu.Lock()
	err := e.value.Assign(v)
	e.node.mu.Unlock()
	if err != nil {
		panic(err)
	}
	e.Emit(ts)
}

// exposedField is implemented by every [ExposedFieldEvent].
type exposedField interface {
	Listener
	Emitter
}

// ExposedFieldEvent is the listener and emitter of an exposedField interface
// of a node. The value is the field value stored in the node.
type ExposedFieldEvent[T field.Value] struct {
	*FieldEmitter[T]
	id string

	// OnEvent, if set, is called with every received value after it
	// has been stored, before the node is marked modified and the
	// value is emitted.
	OnEvent func(n *Node, v T, ts float64)
}

// ID returns the exposedField id.
func (f *ExposedFieldEvent[T]) ID() string { return f.id }

// ProcessEvent stores v, calls the OnEvent hook, marks the node
// modified and emits the new value with the same timestamp, in that
// order. Routes from the field thus see the new value, and the node is
// already modified when they run.
func (f *ExposedFieldEvent[T]) ProcessEvent(v T, ts float64) {
	f.node.mu.Lock()
	err := f.value.Assign(v)
	f.node.mu.Unlock()
	if err != nil {
		panic(err)
	}
	if f.OnEvent != nil {
		f.OnEvent(f.node, v, ts)
	}
	f.node.SetModified(true)
	f.Emit(ts)
}

func (f *ExposedFieldEvent[T]) ProcessValue(v field.Value, ts float64) error {
	return processValue[T](f, v, ts)
}

// EventInOf returns the eventIn of n with the given id and value type,
// for installing its handler.
func EventInOf[T field.Value](n *Node, id string) (*EventInListener[T], error) {
	var zero T
	l, ok := n.eventIns[id]
	if !ok {
		return nil, unsupported(n.typ.id, EventIn, zero.Type(), id, n.typ.interfaces)
	}
	return typed[*EventInListener[T]](l, zero.Type(), id)
}

// EventOutOf returns the eventOut of n with the given id and value type.
func EventOutOf[T field.Value](n *Node, id string) (*EventOutEmitter[T], error) {
	var zero T
	e, ok := n.eventOuts[id]
	if !ok {
		return nil, unsupported(n.typ.id, EventOut, zero.Type(), id, n.typ.interfaces)
	}
	return typed[*EventOutEmitter[T]](e, zero.Type(), id)
}

// ExposedFieldOf returns the exposedField of n with the given id and
// value type, for installing its hook.
func ExposedFieldOf[T field.Value](n *Node, id string) (*ExposedFieldEvent[T], error) {
	var zero T
	f, ok := n.exposed[id]
	if !ok {
		return nil, unsupported(n.typ.id, ExposedField, zero.Type(), id, n.typ.interfaces)
	}
	return typed[*ExposedFieldEvent[T]](f, zero.Type(), id)
}

// typed converts the event object x to the concrete type E, whose
// values are of type want.
func typed[E any](x interface{ FieldType() field.Type }, want field.Type, id string) (E, error) {
	e, ok := x.(E)
	if !ok {
		return e, fmt.Errorf("%s: %w", id, &field.TypeMismatchError{Want: want, Got: x.FieldType()})
	}
	return e, nil
}
