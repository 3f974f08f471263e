// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"cogentcore.org/vrml/base/keylist"
	"cogentcore.org/vrml/field"
	"github.com/google/uuid"
)

// Listener receives events of one field type. Listeners are the
// eventIns and exposedFields of nodes.
type Listener interface {
	// Node returns the node the listener belongs to.
	Node() *Node

	// FieldType returns the type of the values the listener accepts.
	FieldType() field.Type

	// ProcessValue processes the given value as an event with the
	// given timestamp. It returns a [*field.TypeMismatchError]
	// without side effects if v has the wrong type.
	ProcessValue(v field.Value, ts float64) error
}

// FieldListener is a [Listener] for values of type T.
type FieldListener[T field.Value] interface {
	Listener

	// ProcessEvent processes the given value as an event with the
	// given timestamp. It must not keep or modify v.
	ProcessEvent(v T, ts float64)
}

// Emitter sends the value of one field to the listeners subscribed to
// it. Emitters are the eventOuts and exposedFields of nodes, and are
// created with [NewEmitter].
type Emitter interface {
	// Node returns the node the emitter belongs to, if any.
	Node() *Node

	// FieldType returns the type of the emitted value.
	FieldType() field.Type

	// Value returns the current value, which must not be modified.
	Value() field.Value

	// Emit sends the current value to all subscribed listeners.
	Emit(ts float64)

	// Len returns the number of subscribed listeners.
	Len() int

	// Listeners returns the subscribed listeners in subscription order.
	Listeners() []Listener

	// SubscribeListener subscribes the given listener. It returns
	// a [*field.TypeMismatchError] if the listener does not accept
	// values of the emitted type.
	SubscribeListener(l Listener) (Subscription, bool, error)

	// Unsubscribe removes the subscription. It returns whether the
	// subscription existed.
	Unsubscribe(s Subscription) bool
}

// Subscription identifies the subscription of a listener to an emitter.
// It is returned when subscribing and presented again to unsubscribe.
type Subscription uuid.UUID

func (s Subscription) String() string { return uuid.UUID(s).String() }

// FieldEmitter is an [Emitter] bound to a value of type T.
//
// Every Emit is delivered, including several with the same timestamp.
// Event loops formed by cyclic routes are broken within one cascade:
// an Emit with the timestamp of a delivery of the same emitter that is
// still in progress is dropped, since it can only have been caused by
// that delivery. The value itself is not affected, only the event.
type FieldEmitter[T field.Value] struct {
	node  *Node
	value T

	mu        sync.Mutex
	listeners *keylist.List[Subscription, FieldListener[T]]
	emitted   bool
	lastTime  float64

	// delivering is the number of deliveries in progress,
	// the innermost with timestamp deliverTime.
	delivering  int
	deliverTime float64
}

func newFieldEmitter[T field.Value](n *Node, v T) *FieldEmitter[T] {
	return &FieldEmitter[T]{node: n, value: v, listeners: keylist.New[Subscription, FieldListener[T]]()}
}

// NewEmitter returns a new emitter of the given value, with the
// concrete type for the value's type. It panics if v is nil.
func NewEmitter(v field.Value) Emitter {
	if v == nil {
		panic("node.NewEmitter: nil value")
	}
	return opsOf(v.Type()).emitter(nil, v)
}

func (e *FieldEmitter[T]) Node() *Node { return e.node }

func (e *FieldEmitter[T]) FieldType() field.Type { return e.value.Type() }

func (e *FieldEmitter[T]) Value() field.Value { return e.value }

// TypedValue returns the current value, which must not be modified.
func (e *FieldEmitter[T]) TypedValue() T { return e.value }

// Subscribe subscribes the given listener. It returns the subscription
// and whether the listener was newly subscribed. If it was already
// subscribed, its existing subscription is returned.
func (e *FieldEmitter[T]) Subscribe(l FieldListener[T]) (Subscription, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for s, o := range e.listeners.All() {
		if o == l {
			return s, false
		}
	}
	s := Subscription(uuid.New())
	e.listeners.Set(s, l)
	return s, true
}

func (e *FieldEmitter[T]) SubscribeListener(l Listener) (Subscription, bool, error) {
	fl, ok := l.(FieldListener[T])
	if !ok {
		return Subscription{}, false, &field.TypeMismatchError{Want: e.FieldType(), Got: l.FieldType()}
	}
	s, added := e.Subscribe(fl)
	return s, added, nil
}

func (e *FieldEmitter[T]) Unsubscribe(s Subscription) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.listeners.DeleteByKey(s)
}

// Remove unsubscribes the given listener. It returns whether
// the listener was subscribed.
func (e *FieldEmitter[T]) Remove(l FieldListener[T]) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for s, o := range e.listeners.All() {
		if o == l {
			return e.listeners.DeleteByKey(s)
		}
	}
	return false
}

// find returns the subscription of the given listener.
func (e *FieldEmitter[T]) find(l Listener) (Subscription, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for s, o := range e.listeners.All() {
		if Listener(o) == l {
			return s, true
		}
	}
	return Subscription{}, false
}

func (e *FieldEmitter[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.listeners.Len()
}

func (e *FieldEmitter[T]) Listeners() []Listener {
	e.mu.Lock()
	defer e.mu.Unlock()
	ls := make([]Listener, 0, e.listeners.Len())
	for _, l := range e.listeners.All() {
		ls = append(ls, l)
	}
	return ls
}

// Emit sends the current value to every subscribed listener with the
// given timestamp, unless it is called from within a delivery of this
// emitter with the same timestamp. The listeners are called without
// any lock held.
func (e *FieldEmitter[T]) Emit(ts float64) {
	e.mu.Lock()
	if e.delivering > 0 && e.deliverTime == ts {
		e.mu.Unlock()
		if e.node != nil {
			slog.Debug("node.Emit: loop", "node", e.node.typ.id, "type", e.FieldType(), "ts", ts)
		}
		return
	}
	outer := e.deliverTime
	e.delivering++
	e.deliverTime = ts
	e.emitted = true
	e.lastTime = ts
	ls := slices.Clone(e.listeners.Values)
	e.mu.Unlock()
	defer func() {
		e.mu.Lock()
		e.delivering--
		e.deliverTime = outer
		e.mu.Unlock()
	}()
	if e.node != nil {
		slog.Debug("node.Emit", "node", e.node.typ.id, "type", e.FieldType(), "listeners", len(ls), "ts", ts)
	}
	for _, l := range ls {
		l.ProcessEvent(e.value, ts)
	}
}

// LastTime returns the timestamp of the last emitted event,
// and whether any event was emitted.
func (e *FieldEmitter[T]) LastTime() (float64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastTime, e.emitted
}

// processValue converts v to T for delivery to l.
func processValue[T field.Value](l FieldListener[T], v field.Value, ts float64) error {
	tv, ok := v.(T)
	if !ok {
		return &field.TypeMismatchError{Want: l.FieldType(), Got: field.TypeOf(v)}
	}
	l.ProcessEvent(tv, ts)
	return nil
}

// finder is implemented by all emitters.
type finder interface {
	find(l Listener) (Subscription, bool)
}

// ops are the constructors of the event objects for one field type.
type ops struct {
	emitter      func(n *Node, v field.Value) Emitter
	eventIn      func(n *Node, id string) Listener
	eventOut     func(n *Node, id string, v field.Value) Emitter
	exposedField func(n *Node, id string, v field.Value) exposedField
}

func opsFor[T field.Value]() ops {
	return ops{
		emitter: func(n *Node, v field.Value) Emitter {
			return newFieldEmitter(n, v.(T))
		},
		eventIn: func(n *Node, id string) Listener {
			var zero T
			return &EventInListener[T]{node: n, id: id, value: field.New(zero.Type()).(T)}
		},
		eventOut: func(n *Node, id string, v field.Value) Emitter {
			return &EventOutEmitter[T]{FieldEmitter: newFieldEmitter(n, v.(T)), id: id}
		},
		exposedField: func(n *Node, id string, v field.Value) exposedField {
			return &ExposedFieldEvent[T]{FieldEmitter: newFieldEmitter(n, v.(T)), id: id}
		},
	}
}

// typeOps has the ops of every valid field type.
var typeOps = [field.TypeN]ops{
	field.TypeSFBool:      opsFor[*field.SFBool](),
	field.TypeSFColor:     opsFor[*field.SFColor](),
	field.TypeSFColorRGBA: opsFor[*field.SFColorRGBA](),
	field.TypeSFFloat:     opsFor[*field.SFFloat](),
	field.TypeSFDouble:    opsFor[*field.SFDouble](),
	field.TypeSFImage:     opsFor[*field.SFImage](),
	field.TypeSFInt32:     opsFor[*field.SFInt32](),
	field.TypeSFNode:      opsFor[*field.SFNode](),
	field.TypeSFRotation:  opsFor[*field.SFRotation](),
	field.TypeSFString:    opsFor[*field.SFString](),
	field.TypeSFTime:      opsFor[*field.SFTime](),
	field.TypeSFVec2f:     opsFor[*field.SFVec2f](),
	field.TypeSFVec2d:     opsFor[*field.SFVec2d](),
	field.TypeSFVec3f:     opsFor[*field.SFVec3f](),
	field.TypeSFVec3d:     opsFor[*field.SFVec3d](),
	field.TypeMFBool:      opsFor[*field.MFBool](),
	field.TypeMFColor:     opsFor[*field.MFColor](),
	field.TypeMFColorRGBA: opsFor[*field.MFColorRGBA](),
	field.TypeMFFloat:     opsFor[*field.MFFloat](),
	field.TypeMFDouble:    opsFor[*field.MFDouble](),
	field.TypeMFInt32:     opsFor[*field.MFInt32](),
	field.TypeMFNode:      opsFor[*field.MFNode](),
	field.TypeMFRotation:  opsFor[*field.MFRotation](),
	field.TypeMFString:    opsFor[*field.MFString](),
	field.TypeMFTime:      opsFor[*field.MFTime](),
	field.TypeMFVec2f:     opsFor[*field.MFVec2f](),
	field.TypeMFVec2d:     opsFor[*field.MFVec2d](),
	field.TypeMFVec3f:     opsFor[*field.MFVec3f](),
	field.TypeMFVec3d:     opsFor[*field.MFVec3d](),
}

// opsOf returns the ops for the given type. It panics if t is not
// a valid field type.
func opsOf(t field.Type) ops {
	if !t.IsValid() {
		panic(fmt.Sprintf("node: invalid field type %v", t))
	}
	return typeOps[t]
}
