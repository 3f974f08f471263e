// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testdata

import (
	"sync"

	"cogentcore.org/vrml/base/errors"
	"cogentcore.org/vrml/field"
	"cogentcore.org/vrml/math32"
	"cogentcore.org/vrml/node"
)

// TouchSensor generates events for pointing at and clicking on its siblings.
func TouchSensor(b node.Browser) *node.Metatype {
	mt := newMetatype(b, "TouchSensor",
		exposedField(field.TypeSFBool, "enabled"),
		eventOut(field.TypeSFVec3f, "hitPoint_changed"),
		eventOut(field.TypeSFBool, "isActive"),
		eventOut(field.TypeSFBool, "isOver"),
		eventOut(field.TypeSFTime, "touchTime"),
	)
	mt.Defaults = map[string]field.Value{
		"enabled": &field.SFBool{Value: true},
	}
	mt.Init = func(n *node.Node) {
		n.AddCapability(&TouchSensorNode{
			node:     n,
			hitPoint: errors.Must1(node.EventOutOf[*field.SFVec3f](n, "hitPoint_changed")),
			isActive: errors.Must1(node.EventOutOf[*field.SFBool](n, "isActive")),
			isOver:   errors.Must1(node.EventOutOf[*field.SFBool](n, "isOver")),
			touch:    errors.Must1(node.EventOutOf[*field.SFTime](n, "touchTime")),
		})
	}
	return mt
}

// TouchSensorNode is the implementation of TouchSensor nodes.
type TouchSensorNode struct {
	node.PointingDeviceSensorBase
	node *node.Node

	hitPoint *node.EventOutEmitter[*field.SFVec3f]
	isActive *node.EventOutEmitter[*field.SFBool]
	isOver   *node.EventOutEmitter[*field.SFBool]
	touch    *node.EventOutEmitter[*field.SFTime]

	mu     sync.Mutex
	over   bool
	active bool

	// Activations is the number of times the sensor was activated.
	Activations int
}

// Activate updates the sensor from the pointing device state. A touch
// is a press and release of the device while it is over the geometry.
func (s *TouchSensorNode) Activate(ts float64, over, active bool, p math32.Vector3) {
	if !get[*field.SFBool](s.node, "enabled").Value {
		return
	}
	s.mu.Lock()
	s.Activations++
	overChanged := over != s.over
	activeChanged := active != s.active
	touched := activeChanged && !active && over
	s.over, s.active = over, active
	s.mu.Unlock()

	if overChanged {
		s.isOver.Set(&field.SFBool{Value: over}, ts)
	}
	if activeChanged {
		s.isActive.Set(&field.SFBool{Value: active}, ts)
	}
	if over {
		s.hitPoint.Set(&field.SFVec3f{Value: p}, ts)
	}
	if touched {
		s.touch.Set(&field.SFTime{Value: ts}, ts)
	}
}

// Counter counts events sent to its increment eventIn, and records
// how often it is initialized and shut down.
func Counter(b node.Browser) *node.Metatype {
	mt := newMetatype(b, "Counter",
		exposedField(field.TypeMFNode, "children"),
		exposedField(field.TypeSFInt32, "count"),
		eventIn(field.TypeSFBool, "increment"),
		eventIn(field.TypeSFTime, "reset"),
	)
	mt.Init = func(n *node.Node) {
		c := &CounterNode{node: n}
		n.AddCapability(c)
		errors.Must1(node.EventInOf[*field.SFBool](n, "increment")).Handler = c.increment
		errors.Must1(node.EventInOf[*field.SFTime](n, "reset")).Handler = c.reset
	}
	mt.Initialize = func(n *node.Node, ts float64) {
		if c, ok := node.Cast[*CounterNode](n); ok {
			c.mu.Lock()
			c.Initializations++
			c.mu.Unlock()
		}
	}
	mt.Shutdown = func(n *node.Node, ts float64) {
		if c, ok := node.Cast[*CounterNode](n); ok {
			c.mu.Lock()
			c.Shutdowns++
			c.mu.Unlock()
		}
	}
	return mt
}

// CounterNode is the implementation of Counter nodes.
type CounterNode struct {
	node *node.Node

	mu              sync.Mutex
	Initializations int
	Shutdowns       int
}

// Count returns the current count.
func (c *CounterNode) Count() int32 {
	return get[*field.SFInt32](c.node, "count").Value
}

func (c *CounterNode) increment(n *node.Node, v *field.SFBool, ts float64) {
	if v.Value {
		c.set(c.Count()+1, ts)
	}
}

func (c *CounterNode) reset(n *node.Node, v *field.SFTime, ts float64) {
	c.set(0, ts)
}

func (c *CounterNode) set(count int32, ts float64) {
	errors.Log(c.node.SetField("count", &field.SFInt32{Value: count}))
	errors.Must1(c.node.EventEmitter("count_changed")).Emit(ts)
}
