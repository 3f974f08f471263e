// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"

	"cogentcore.org/vrml/field"
	"cogentcore.org/vrml/math32"
	. "cogentcore.org/vrml/node"
	"cogentcore.org/vrml/node/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteRoundTrip(t *testing.T) {
	e := newEnv(t)
	a := e.create("Transform", nil)
	b := e.create("Transform", nil)

	added, err := AddRoute(a, "translation_changed", b, "set_translation")
	require.NoError(t, err)
	deleted, err := DeleteRoute(a, "translation_changed", b, "set_translation")
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, deleted)

	em, err := a.EventEmitter("translation_changed")
	require.NoError(t, err)
	assert.Equal(t, 0, em.Len())
	assert.Empty(t, a.Routes())

	deleted, err = DeleteRoute(a, "translation_changed", b, "set_translation")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestAddRouteTwice(t *testing.T) {
	e := newEnv(t)
	a := e.create("Transform", nil)
	b := e.create("Transform", nil)
	require.NoError(t, a.SetID("A"))

	first, err := AddRoute(a, "translation_changed", b, "set_translation")
	require.NoError(t, err)
	second, err := AddRoute(a, "translation_changed", b, "set_translation")
	require.NoError(t, err)
	assert.True(t, first)
	assert.False(t, second)

	// the same endpoints through other names of the same interfaces
	third, err := AddRoute(a, "translation", b, "translation")
	require.NoError(t, err)
	assert.False(t, third)

	em, err := a.EventEmitter("translation")
	require.NoError(t, err)
	assert.Equal(t, 1, em.Len())
	routes := a.Routes()
	require.Len(t, routes, 1)
	assert.Equal(t, "ROUTE A.translation_changed TO Transform.set_translation", routes[0].String())
}

func TestRouteTypeMismatch(t *testing.T) {
	e := newEnv(t)
	sensor := e.create("TouchSensor", nil)
	counter := e.create("Counter", nil)

	added, err := AddRoute(sensor, "isActive", counter, "set_count")
	assert.False(t, added)
	assert.ErrorIs(t, err, field.ErrTypeMismatch)
	assert.NotErrorIs(t, err, ErrUnsupportedInterface)
	var te *field.TypeMismatchError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, field.TypeSFBool, te.Want)
	assert.Equal(t, field.TypeSFInt32, te.Got)

	em, err := sensor.EventEmitter("isActive")
	require.NoError(t, err)
	assert.Equal(t, 0, em.Len())
	assert.Empty(t, sensor.Routes())

	deleted, err := DeleteRoute(sensor, "isActive", counter, "set_count")
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestRouteUnknownEndpoint(t *testing.T) {
	e := newEnv(t)
	sensor := e.create("TouchSensor", nil)
	counter := e.create("Counter", nil)

	_, err := AddRoute(sensor, "bogus", counter, "increment")
	assert.ErrorIs(t, err, ErrUnsupportedInterface)
	_, err = AddRoute(sensor, "isActive", counter, "bogus")
	assert.ErrorIs(t, err, ErrUnsupportedInterface)
	_, err = DeleteRoute(sensor, "isActive", counter, "bogus")
	assert.ErrorIs(t, err, ErrUnsupportedInterface)
	assert.Empty(t, sensor.Routes())
}

func TestRouteDelivery(t *testing.T) {
	e := newEnv(t)
	sensor := e.create("TouchSensor", nil)
	counter := e.create("Counter", nil)
	display := e.create("Counter", nil)

	_, err := AddRoute(sensor, "isActive", counter, "increment")
	require.NoError(t, err)
	_, err = AddRoute(counter, "count_changed", display, "set_count")
	require.NoError(t, err)

	s, ok := Cast[PointingDeviceSensorNode](sensor)
	require.True(t, ok)
	c, _ := Cast[*testdata.CounterNode](counter)
	d, _ := Cast[*testdata.CounterNode](display)

	s.Activate(1, true, true, math32.Vector3{})
	assert.Equal(t, int32(1), c.Count())
	assert.Equal(t, int32(1), d.Count())

	// releasing sends isActive FALSE, which does not count
	s.Activate(2, true, false, math32.Vector3{})
	assert.Equal(t, int32(1), c.Count())

	s.Activate(3, true, true, math32.Vector3{})
	assert.Equal(t, int32(2), c.Count())
	assert.Equal(t, int32(2), d.Count())
	assert.Equal(t, 3, s.(*testdata.TouchSensorNode).Activations)
}

func TestExposedFieldOrder(t *testing.T) {
	e := newEnv(t)
	a := e.create("Transform", nil)
	b := e.create("Transform", nil)
	_, err := AddRoute(a, "translation_changed", b, "set_translation")
	require.NoError(t, err)

	var hookValue *field.SFVec3f
	var hookModified bool
	f, err := ExposedFieldOf[*field.SFVec3f](a, "translation")
	require.NoError(t, err)
	hook := f.OnEvent
	f.OnEvent = func(n *Node, v *field.SFVec3f, ts float64) {
		cur, err := n.Field("translation")
		require.NoError(t, err)
		hookValue = cur.(*field.SFVec3f)
		hookModified = n.Modified()
		hook(n, v, ts)
	}

	var routedModified bool
	var routedValue field.Value
	bf, err := ExposedFieldOf[*field.SFVec3f](b, "translation")
	require.NoError(t, err)
	bhook := bf.OnEvent
	bf.OnEvent = func(n *Node, v *field.SFVec3f, ts float64) {
		routedModified = a.Modified()
		routedValue, _ = a.Field("translation")
		bhook(n, v, ts)
	}

	require.NoError(t, SendEvent(a, "set_translation", vec3(1, 2, 3), 1))

	assert.True(t, hookValue.Equal(vec3(1, 2, 3)), "stored before the hook")
	assert.False(t, hookModified, "modified after the hook")
	assert.True(t, routedModified, "modified before emitting")
	assert.True(t, routedValue.Equal(vec3(1, 2, 3)))

	assert.True(t, a.Modified())
	v, err := a.Field("translation")
	require.NoError(t, err)
	assert.True(t, v.Equal(vec3(1, 2, 3)))
	v, err = b.Field("translation")
	require.NoError(t, err)
	assert.True(t, v.Equal(vec3(1, 2, 3)))

	last, ok := f.LastTime()
	assert.True(t, ok)
	assert.Equal(t, 1.0, last)
}

func TestEmitLoop(t *testing.T) {
	e := newEnv(t)
	a := e.create("Transform", nil)
	b := e.create("Transform", nil)
	_, err := AddRoute(a, "translation_changed", b, "set_translation")
	require.NoError(t, err)
	_, err = AddRoute(b, "translation_changed", a, "set_translation")
	require.NoError(t, err)

	events := 0
	f, err := ExposedFieldOf[*field.SFVec3f](a, "translation")
	require.NoError(t, err)
	hook := f.OnEvent
	f.OnEvent = func(n *Node, v *field.SFVec3f, ts float64) {
		events++
		hook(n, v, ts)
	}

	require.NoError(t, SendEvent(a, "set_translation", vec3(1, 0, 0), 1))
	assert.Equal(t, 2, events, "the event comes back once and is not emitted again")
	require.NoError(t, SendEvent(a, "set_translation", vec3(2, 0, 0), 1))
	assert.Equal(t, 4, events, "a new cascade at the same time is delivered")
	v, err := b.Field("translation")
	require.NoError(t, err)
	assert.True(t, v.Equal(vec3(2, 0, 0)))
	require.NoError(t, SendEvent(a, "set_translation", vec3(3, 0, 0), 2))
	assert.Equal(t, 6, events)
	v, err = b.Field("translation")
	require.NoError(t, err)
	assert.True(t, v.Equal(vec3(3, 0, 0)))
}

func TestSameTimestampEvents(t *testing.T) {
	e := newEnv(t)
	a := e.create("Transform", nil)
	b := e.create("Transform", nil)
	_, err := AddRoute(a, "translation_changed", b, "set_translation")
	require.NoError(t, err)

	require.NoError(t, SendEvent(a, "set_translation", vec3(1, 0, 0), 1))
	require.NoError(t, SendEvent(a, "set_translation", vec3(2, 0, 0), 1))
	for _, n := range []*Node{a, b} {
		v, err := n.Field("translation")
		require.NoError(t, err)
		assert.True(t, v.Equal(vec3(2, 0, 0)), v.String())
	}

	sensor := e.create("TouchSensor", nil)
	counter := e.create("Counter", nil)
	_, err = AddRoute(sensor, "isActive", counter, "increment")
	require.NoError(t, err)
	inc, err := EventInOf[*field.SFBool](counter, "increment")
	require.NoError(t, err)
	var got []bool
	handler := inc.Handler
	inc.Handler = func(n *Node, v *field.SFBool, ts float64) {
		got = append(got, v.Value)
		handler(n, v, ts)
	}
	s, _ := Cast[PointingDeviceSensorNode](sensor)
	s.Activate(3, true, true, math32.Vector3{})
	s.Activate(3, true, false, math32.Vector3{})
	assert.Equal(t, []bool{true, false}, got)
	c, _ := Cast[*testdata.CounterNode](counter)
	assert.Equal(t, int32(1), c.Count())
}

func TestSendEvent(t *testing.T) {
	e := newEnv(t)
	counter := e.create("Counter", nil)
	c, _ := Cast[*testdata.CounterNode](counter)

	require.NoError(t, SendEvent(counter, "increment", &field.SFBool{Value: true}, 1))
	assert.Equal(t, int32(1), c.Count())

	l, err := EventInOf[*field.SFBool](counter, "increment")
	require.NoError(t, err)
	assert.True(t, l.Value().Value)
	assert.Equal(t, "increment", l.ID())

	err = SendEvent(counter, "increment", &field.SFInt32{Value: 1}, 2)
	assert.ErrorIs(t, err, field.ErrTypeMismatch)
	assert.True(t, IsRecoverable(err))
	assert.Equal(t, int32(1), c.Count())

	err = SendEvent(counter, "decrement", &field.SFBool{Value: true}, 3)
	assert.ErrorIs(t, err, ErrUnsupportedInterface)
	assert.True(t, IsRecoverable(err))

	require.NoError(t, SendEvent(counter, "reset", &field.SFTime{Value: 4}, 4))
	assert.Equal(t, int32(0), c.Count())
}

// listener is a FieldListener that records the events it receives.
type listener struct {
	n      *Node
	values []float64
	times  []float64

	// onEvent, if set, is called after recording each event.
	onEvent func(ts float64)
}

func (l *listener) Node() *Node           { return l.n }
func (l *listener) FieldType() field.Type { return field.TypeSFTime }

func (l *listener) ProcessValue(v field.Value, ts float64) error {
	t, ok := v.(*field.SFTime)
	if !ok {
		return &field.TypeMismatchError{Want: field.TypeSFTime, Got: field.TypeOf(v)}
	}
	l.ProcessEvent(t, ts)
	return nil
}

func (l *listener) ProcessEvent(v *field.SFTime, ts float64) {
	l.values = append(l.values, v.Value)
	l.times = append(l.times, ts)
	if l.onEvent != nil {
		l.onEvent(ts)
	}
}

func TestEmitter(t *testing.T) {
	v := &field.SFTime{Value: 5}
	em := NewEmitter(v)
	assert.Equal(t, field.TypeSFTime, em.FieldType())
	assert.Nil(t, em.Node())
	assert.Same(t, v, em.Value())

	fe, ok := em.(*FieldEmitter[*field.SFTime])
	require.True(t, ok)

	a, b := &listener{}, &listener{}
	sa, added := fe.Subscribe(a)
	assert.True(t, added)
	again, added := fe.Subscribe(a)
	assert.False(t, added)
	assert.Equal(t, sa, again)
	_, added, err := em.SubscribeListener(b)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, 2, em.Len())
	assert.Equal(t, []Listener{a, b}, em.Listeners())

	em.Emit(1)
	em.Emit(1)
	v.Value = 6
	em.Emit(2)
	assert.Equal(t, []float64{5, 5, 6}, a.values)
	assert.Equal(t, []float64{1, 1, 2}, b.times)
	last, emitted := fe.LastTime()
	assert.True(t, emitted)
	assert.Equal(t, 2.0, last)

	assert.True(t, fe.Remove(b))
	assert.False(t, fe.Remove(b))
	assert.True(t, em.Unsubscribe(sa))
	assert.False(t, em.Unsubscribe(sa))
	assert.Equal(t, 0, em.Len())

	e := newEnv(t)
	counter := e.create("Counter", nil)
	inc, err := counter.EventListener("increment")
	require.NoError(t, err)
	_, added, err = em.SubscribeListener(inc)
	assert.False(t, added)
	assert.ErrorIs(t, err, field.ErrTypeMismatch)

	assert.Panics(t, func() { NewEmitter(nil) })
}

func TestEmitterReentrant(t *testing.T) {
	v := &field.SFTime{Value: 1}
	em := NewEmitter(v).(*FieldEmitter[*field.SFTime])
	l := &listener{}
	l.onEvent = func(ts float64) {
		if len(l.times) > 3 {
			return
		}
		em.Emit(ts)
		em.Emit(ts + 1)
	}
	em.Subscribe(l)

	em.Emit(1)
	// 1 re-emits 1 (dropped) and 2, which re-emits 2 (dropped) and 3,
	// and so on until the listener stops.
	assert.Equal(t, []float64{1, 2, 3, 4}, l.times)
	em.Emit(1)
	assert.Equal(t, []float64{1, 2, 3, 4, 1}, l.times)
}

func TestNewEmitterTypes(t *testing.T) {
	for _, typ := range field.TypeValues() {
		if !typ.IsValid() {
			continue
		}
		em := NewEmitter(field.New(typ))
		assert.Equal(t, typ, em.FieldType(), typ.String())
	}
}
