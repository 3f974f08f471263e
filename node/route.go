// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"fmt"
	"slices"

	"cogentcore.org/vrml/base/errors"
	"cogentcore.org/vrml/field"
)

// Route describes a route from an eventOut of one node to an eventIn
// of another, with the interface ids it was added with.
type Route struct {
	From     *Node
	EventOut string
	To       *Node
	EventIn  string
}

func (r Route) String() string {
	return fmt.Sprintf("ROUTE %s.%s TO %s.%s", nodeName(r.From), r.EventOut, nodeName(r.To), r.EventIn)
}

// nodeName returns the name of n, or its type id if it is unnamed.
func nodeName(n *Node) string {
	if id := n.ID(); id != "" {
		return id
	}
	return n.typ.id
}

// route is a route added to its source node.
type route struct {
	Route
	emitter      Emitter
	listener     Listener
	subscription Subscription
}

// endpoints resolves the emitter and listener of a route.
func endpoints(from *Node, eventOut string, to *Node, eventIn string) (Emitter, Listener, error) {
	e, err := from.EventEmitter(eventOut)
	if err != nil {
		return nil, nil, err
	}
	l, err := to.EventListener(eventIn)
	if err != nil {
		return nil, nil, err
	}
	return e, l, nil
}

// AddRoute adds a route from the eventOut of from to the eventIn of to.
// It returns whether a new route was added, which is false if the same
// emitter and listener are already connected.
//
// It returns an [*UnsupportedInterfaceError] if either endpoint does not
// exist, and a [*field.TypeMismatchError] if the endpoints exist but
// have different field types. Nothing is changed on error.
func AddRoute(from *Node, eventOut string, to *Node, eventIn string) (bool, error) {
	e, l, err := endpoints(from, eventOut, to, eventIn)
	if err != nil {
		return false, err
	}
	if e.FieldType() != l.FieldType() {
		return false, &field.TypeMismatchError{Want: e.FieldType(), Got: l.FieldType()}
	}
	s, added, err := e.SubscribeListener(l)
	if err != nil || !added {
		return false, err
	}
	from.mu.Lock()
	from.routes = append(from.routes, &route{
		Route:        Route{From: from, EventOut: eventOut, To: to, EventIn: eventIn},
		emitter:      e,
		listener:     l,
		subscription: s,
	})
	from.mu.Unlock()
	return true, nil
}

// DeleteRoute removes the route from the eventOut of from to the eventIn
// of to. It returns whether a route was removed. Endpoints of different
// field types cannot be connected, so they are reported as no route
// rather than as an error. A missing endpoint is an
// [*UnsupportedInterfaceError].
func DeleteRoute(from *Node, eventOut string, to *Node, eventIn string) (bool, error) {
	e, l, err := endpoints(from, eventOut, to, eventIn)
	if err != nil {
		return false, err
	}
	if e.FieldType() != l.FieldType() {
		return false, nil
	}
	f, ok := e.(finder)
	if !ok {
		return false, nil
	}
	s, ok := f.find(l)
	if !ok {
		return false, nil
	}
	removed := e.Unsubscribe(s)
	from.mu.Lock()
	from.routes = slices.DeleteFunc(from.routes, func(r *route) bool {
		return r.subscription == s
	})
	from.mu.Unlock()
	return removed, nil
}

// Routes returns the routes from the eventOuts of the node.
func (n *Node) Routes() []Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	res := make([]Route, len(n.routes))
	for i, r := range n.routes {
		res[i] = r.Route
	}
	return res
}

// SendEvent delivers v to the eventIn of n with the given id as an
// event with timestamp ts. It is the entry point for events from
// outside the graph such as script bridges. It returns an
// [*UnsupportedInterfaceError] or a [*field.TypeMismatchError]
// without side effects if the event cannot be delivered.
func SendEvent(n *Node, eventIn string, v field.Value, ts float64) error {
	l, err := n.EventListener(eventIn)
	if err != nil {
		return err
	}
	if err := l.ProcessValue(v, ts); err != nil {
		return fmt.Errorf("%s.%s: %w", n.typ.id, eventIn, err)
	}
	return nil
}

// IsRecoverable returns whether err is an unsupported interface or a
// type mismatch, which leave the graph unchanged so that the caller can
// report them and continue.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrUnsupportedInterface) || errors.Is(err, field.ErrTypeMismatch)
}
