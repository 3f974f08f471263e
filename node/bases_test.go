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
	"cogentcore.org/vrml/viewer"
	"cogentcore.org/vrml/viewer/viewertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCaching(t *testing.T) {
	e := newEnv(t)
	img, err := field.NewImage(2, 1, 3, nil)
	require.NoError(t, err)
	texture := e.create("PixelTexture", map[string]field.Value{"image": &field.SFImage{Value: img}})
	app := e.create("Appearance", map[string]field.Value{"texture": &field.SFNode{Value: texture}})
	box := e.create("Box", nil)
	shape := e.create("Shape", map[string]field.Value{
		"appearance": &field.SFNode{Value: app},
		"geometry":   &field.SFNode{Value: box},
	})
	e.scene.AddRoot(shape, 0)
	e.scene.Initialize(0)

	v := &viewertest.Recorder{}
	e.scene.Render(v)
	assert.Equal(t, []string{
		"SetMaterial",
		"InsertTexture 1 2x1x3",
		"InsertBox 2 (2, 2, 2)",
	}, v.Calls())
	assert.False(t, e.browser.Modified())

	v.Reset()
	e.scene.Render(v)
	assert.Equal(t, []string{
		"SetMaterial",
		"InsertTextureReference 1",
		"InsertReference 2",
	}, v.Calls())

	e.browser.SendEvent(box, "set_size", vec3(1, 1, 1), 1)
	assert.True(t, e.browser.Modified())
	v.Reset()
	e.scene.Render(v)
	assert.Equal(t, []string{
		"SetMaterial",
		"InsertTextureReference 1",
		"RemoveObject 2",
		"InsertBox 3 (1, 1, 1)",
	}, v.Calls())

	img2, err := field.NewImage(1, 1, 1, nil)
	require.NoError(t, err)
	require.True(t, e.browser.SendEvent(texture, "image", &field.SFImage{Value: img2}, 2))
	v.Reset()
	e.scene.Render(v)
	assert.Equal(t, 1, v.Count("RemoveTexture"))
	assert.Equal(t, 1, v.Count("InsertTexture"))
	assert.Equal(t, 1, v.Count("InsertReference"))
	assert.Contains(t, v.Calls(), "InsertTexture 4 1x1x1")
}

func TestRenderMaterial(t *testing.T) {
	e := newEnv(t)
	mat := e.create("Material", map[string]field.Value{
		"diffuseColor": &field.SFColor{Value: field.Color{R: 1}},
		"transparency": &field.SFFloat{Value: 0.5},
	})
	app := e.create("Appearance", map[string]field.Value{"material": &field.SFNode{Value: mat}})
	shape := e.create("Shape", map[string]field.Value{"appearance": &field.SFNode{Value: app}})
	v := &viewertest.Recorder{}
	sc, ok := Cast[ChildNode](shape)
	require.True(t, ok)
	sc.RenderChild(v, viewer.NewRenderingContext())
	assert.Equal(t, float32(0.2), v.Material.AmbientIntensity)
	assert.Equal(t, float32(0.5), v.Material.Transparency)

	// without an appearance the default material is used
	bare := e.create("Shape", nil)
	bc, _ := Cast[ChildNode](bare)
	bc.RenderChild(v, viewer.NewRenderingContext())
	assert.Equal(t, ViewerMaterial(&MaterialBase{}), v.Material)
	assert.Equal(t, []string{"SetMaterial", "SetMaterial"}, v.Calls())
}

func TestRenderTransform(t *testing.T) {
	e := newEnv(t)
	box := e.create("Box", nil)
	shape := e.create("Shape", map[string]field.Value{"geometry": &field.SFNode{Value: box}})
	tr := e.create("Transform", map[string]field.Value{
		"translation": vec3(1, 2, 3),
		"children":    nodes(shape),
	})
	e.browser.Config.DrawBoundingSpheres = true
	e.scene.AddRoot(tr, 0)
	v := &viewertest.Recorder{}
	e.scene.Render(v)
	assert.Equal(t, []string{
		"TransformMatrix",
		"SetMaterial",
		"InsertBox 1 (2, 2, 2)",
		"DrawBoundingSphere",
		"DrawBoundingSphere",
		"PopTransform",
	}, v.Calls())
	assert.Empty(t, v.Transforms)

	tn, ok := Cast[TransformNode](tr)
	require.True(t, ok)
	m := tn.Transform()
	assert.Equal(t, math32.Vec3(1, 2, 3), m.Translation())
}

func TestBoundingVolume(t *testing.T) {
	e := newEnv(t)
	box := e.create("Box", nil)
	shape := e.create("Shape", map[string]field.Value{"geometry": &field.SFNode{Value: box}})
	g := e.create("Group", map[string]field.Value{"children": nodes(shape)})
	tr := e.create("Transform", map[string]field.Value{
		"translation": vec3(1, 0, 0),
		"children":    nodes(g),
	})
	e.scene.AddRoot(tr, 0)

	bv := func(n *Node) BoundedVolumeNode {
		b, ok := Cast[BoundedVolumeNode](n)
		require.True(t, ok)
		return b
	}
	s := bv(tr).BoundingSphere()
	assert.Equal(t, math32.Vec3(1, 0, 0), s.Center)
	assert.InDelta(t, math32.Sqrt(12)/2, s.Radius, 1e-6)
	assert.True(t, bv(e.create("Group", nil)).BoundingSphere().IsEmpty())
	assert.True(t, bv(e.create("Shape", nil)).BoundingSphere().IsEmpty())

	for _, n := range []*Node{box, shape, g, tr} {
		assert.False(t, bv(n).BoundingVolumeDirty())
	}
	assert.False(t, e.browser.FlagsNeedUpdating())

	require.True(t, e.browser.SendEvent(box, "set_size", vec3(1, 1, 1), 1))
	assert.True(t, e.browser.FlagsNeedUpdating())
	assert.True(t, bv(tr).BoundingVolumeDirty())
	assert.False(t, e.browser.FlagsNeedUpdating())
	for _, n := range []*Node{box, shape, g, tr} {
		assert.True(t, bv(n).BoundingVolumeDirty())
	}
	assert.InDelta(t, math32.Sqrt(3)/2, bv(tr).BoundingSphere().Radius, 1e-6)

	for _, n := range []*Node{box, shape, g, tr} {
		bv(n).SetBoundingVolumeDirty(false)
	}
	bv(box).SetBoundingVolumeDirty(true)
	UpdateBoundingVolumeFlags(g)
	assert.True(t, bv(g).BoundingVolumeDirty())
	e.browser.UpdateFlags()
	assert.True(t, bv(tr).BoundingVolumeDirty())
}

func TestBoundingVolumeCycle(t *testing.T) {
	e := newEnv(t)
	a := e.create("Group", nil)
	b := e.create("Group", map[string]field.Value{"children": nodes(a)})
	require.NoError(t, a.SetField("children", nodes(b)))
	ba, _ := Cast[BoundedVolumeNode](a)
	bb, _ := Cast[BoundedVolumeNode](b)
	ba.SetBoundingVolumeDirty(true)
	UpdateBoundingVolumeFlags(b)
	assert.True(t, bb.BoundingVolumeDirty())
}

func TestActivatePointingDeviceSensors(t *testing.T) {
	e := newEnv(t)
	direct := e.create("TouchSensor", nil)
	nested := e.create("TouchSensor", nil)
	hidden := e.create("TouchSensor", nil)
	disabled := e.create("TouchSensor", map[string]field.Value{"enabled": &field.SFBool{}})

	inner := e.create("Transform", map[string]field.Value{"children": nodes(nested)})
	counter := e.create("Counter", map[string]field.Value{"children": nodes(hidden)})
	root := e.create("Group", map[string]field.Value{"children": nodes(direct, inner, counter, disabled)})
	// a cycle back to the root
	require.True(t, e.browser.SendEvent(inner, "addChildren", nodes(root), 0))

	g, ok := Cast[GroupingNode](root)
	require.True(t, ok)
	g.ActivatePointingDeviceSensors(1, true, false, math32.Vec3(0, 1, 0))

	activations := func(n *Node) int {
		s, ok := Cast[*testdata.TouchSensorNode](n)
		require.True(t, ok)
		return s.Activations
	}
	assert.Equal(t, 1, activations(direct))
	assert.Equal(t, 1, activations(nested))
	assert.Equal(t, 0, activations(hidden), "sensors below non-grouping nodes are not visited")
	assert.Equal(t, 0, activations(disabled))

	isOver, err := EventOutOf[*field.SFBool](direct, "isOver")
	require.NoError(t, err)
	assert.True(t, isOver.TypedValue().Value)
	hit, err := EventOutOf[*field.SFVec3f](nested, "hitPoint_changed")
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(0, 1, 0), hit.TypedValue().Value)
}

func TestTouchTime(t *testing.T) {
	e := newEnv(t)
	sensor := e.create("TouchSensor", nil)
	s, _ := Cast[PointingDeviceSensorNode](sensor)
	touch, err := EventOutOf[*field.SFTime](sensor, "touchTime")
	require.NoError(t, err)

	s.Activate(1, true, true, math32.Vector3{})
	_, emitted := touch.LastTime()
	assert.False(t, emitted)
	s.Activate(2, true, false, math32.Vector3{})
	assert.Equal(t, 2.0, touch.TypedValue().Value)

	// releasing outside the geometry is not a touch
	s.Activate(3, true, true, math32.Vector3{})
	s.Activate(4, false, false, math32.Vector3{})
	assert.Equal(t, 2.0, touch.TypedValue().Value)
}

func TestGroupChildren(t *testing.T) {
	e := newEnv(t)
	g := e.create("Group", nil)
	e.scene.AddRoot(g, 0)
	e.scene.Initialize(0)
	c := e.create("Counter", nil)
	cn, _ := Cast[*testdata.CounterNode](c)

	changed, err := EventOutOf[*field.MFNode](g, "children")
	assert.Error(t, err, "children is an exposedField")
	assert.Nil(t, changed)
	em, err := g.EventEmitter("children_changed")
	require.NoError(t, err)

	require.True(t, e.browser.SendEvent(g, "addChildren", nodes(c), 1))
	assert.Equal(t, 1, cn.Initializations)
	gn, _ := Cast[GroupingNode](g)
	assert.Equal(t, []*Node{c}, gn.Children())
	assert.True(t, em.Value().Equal(nodes(c)))

	// adding again changes nothing
	require.True(t, e.browser.SendEvent(g, "addChildren", nodes(c), 2))
	assert.Len(t, gn.Children(), 1)

	require.True(t, e.browser.SendEvent(g, "removeChildren", nodes(c), 3))
	assert.Empty(t, gn.Children())
	assert.Equal(t, 1, cn.Initializations)
}

func TestBaseDefaults(t *testing.T) {
	var bv BoundedVolumeBase
	assert.True(t, bv.BoundingSphere().IsInfinite())
	assert.False(t, bv.BoundingVolumeDirty())

	var m MaterialBase
	assert.Equal(t, float32(0.2), m.AmbientIntensity())
	assert.Equal(t, field.Color{R: 0.8, G: 0.8, B: 0.8}, m.DiffuseColor())

	var vp ViewpointBase
	assert.Equal(t, math32.Vec3(0, 0, 10), vp.Position())
	vm := vp.Transformation()
	assert.Equal(t, math32.Vec3(0, 0, 10), vm.Translation())

	var nav NavigationInfoBase
	assert.True(t, nav.Headlight())
	assert.Equal(t, []string{"WALK", "ANY"}, nav.NavigationTypes())

	var g GroupingBase
	assert.Empty(t, g.Children())
	var a AppearanceBase
	assert.Nil(t, a.Material())
	var s SoundSourceBase
	assert.Equal(t, -1.0, s.SoundDuration())
	var tb TransformBase
	assert.Equal(t, math32.Identity4(), tb.Transform())
}
