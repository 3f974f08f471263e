// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testdata

import (
	"slices"
	"sync/atomic"

	"cogentcore.org/vrml/base/errors"
	"cogentcore.org/vrml/field"
	"cogentcore.org/vrml/math32"
	"cogentcore.org/vrml/node"
	"cogentcore.org/vrml/viewer"
)

func groupInterfaces(extra ...node.Interface) []node.Interface {
	return append([]node.Interface{
		exposedField(field.TypeMFNode, "children"),
		eventIn(field.TypeMFNode, "addChildren"),
		eventIn(field.TypeMFNode, "removeChildren"),
	}, extra...)
}

// Group groups its children.
func Group(b node.Browser) *node.Metatype {
	mt := newMetatype(b, "Group", groupInterfaces()...)
	mt.Init = func(n *node.Node) {
		n.AddCapability(newGroupNode(n))
	}
	return mt
}

// GroupNode is the implementation of grouping nodes.
type GroupNode struct {
	node.GroupingBase
	node.ChildBase
	node.BoundedVolumeBase
	node *node.Node

	// checking is set while the children are asked whether they are
	// modified, so that a group reached again through a cycle reports false.
	checking atomic.Bool
}

func newGroupNode(n *node.Node) *GroupNode {
	g := &GroupNode{node: n}
	g.SphereFunc = g.childrenSphere
	n.ModifiedFunc = g.childModified
	children := errors.Must1(node.ExposedFieldOf[*field.MFNode](n, "children"))
	children.OnEvent = func(n *node.Node, v *field.MFNode, ts float64) {
		g.initializeChildren(ts)
		g.SetBoundingVolumeDirty(true)
	}
	errors.Must1(node.EventInOf[*field.MFNode](n, "addChildren")).Handler = g.addChildren
	errors.Must1(node.EventInOf[*field.MFNode](n, "removeChildren")).Handler = g.removeChildren
	return g
}

func (g *GroupNode) RenderChild(v viewer.Viewer, rc viewer.RenderingContext) {
	for _, c := range g.Children() {
		if ch, ok := node.Cast[node.ChildNode](c); ok {
			ch.RenderChild(v, rc)
		}
	}
	if rc.DrawBoundingSpheres {
		v.DrawBoundingSphere(g.BoundingSphere())
	}
}

func (g *GroupNode) childrenSphere() math32.Sphere {
	s := math32.EmptySphere()
	for _, c := range g.Children() {
		if bv, ok := node.Cast[node.BoundedVolumeNode](c); ok {
			s = s.ExpandBySphere(bv.BoundingSphere())
		}
	}
	return s
}

func (g *GroupNode) childModified(n *node.Node) bool {
	if !g.checking.CompareAndSwap(false, true) {
		return false
	}
	defer g.checking.Store(false)
	return slices.ContainsFunc(g.Children(), (*node.Node).Modified)
}

// initializeChildren initializes new children if the group is in a scene.
func (g *GroupNode) initializeChildren(ts float64) {
	scene := g.node.Scene()
	if scene == nil {
		return
	}
	for _, c := range g.Children() {
		c.Initialize(scene, ts)
	}
}

// setChildren sets the children and emits children_changed.
func (g *GroupNode) setChildren(children []*node.Node, ts float64) {
	v := &field.MFNode{Values: make([]field.Node, len(children))}
	for i, c := range children {
		v.Values[i] = c
	}
	errors.Log(g.node.SetField("children", v))
	g.initializeChildren(ts)
	g.SetBoundingVolumeDirty(true)
	errors.Must1(g.node.EventEmitter("children_changed")).Emit(ts)
}

func (g *GroupNode) addChildren(n *node.Node, v *field.MFNode, ts float64) {
	children := g.Children()
	added := false
	for _, c := range v.Values {
		cn, ok := c.(*node.Node)
		if ok && cn != nil && !slices.Contains(children, cn) {
			children = append(children, cn)
			added = true
		}
	}
	if added {
		g.setChildren(children, ts)
	}
}

func (g *GroupNode) removeChildren(n *node.Node, v *field.MFNode, ts float64) {
	children := g.Children()
	removed := false
	for _, c := range v.Values {
		cn, ok := c.(*node.Node)
		if !ok {
			continue
		}
		if i := slices.Index(children, cn); i >= 0 {
			children = slices.Delete(children, i, i+1)
			removed = true
		}
	}
	if removed {
		g.setChildren(children, ts)
	}
}

// Transform groups its children in a transformed coordinate system.
func Transform(b node.Browser) *node.Metatype {
	mt := newMetatype(b, "Transform", groupInterfaces(
		exposedField(field.TypeSFVec3f, "center"),
		exposedField(field.TypeSFRotation, "rotation"),
		exposedField(field.TypeSFVec3f, "scale"),
		exposedField(field.TypeSFVec3f, "translation"),
	)...)
	mt.Defaults = map[string]field.Value{
		"scale": &field.SFVec3f{Value: math32.Vec3(1, 1, 1)},
	}
	mt.Init = func(n *node.Node) {
		t := &TransformNode{GroupNode: newGroupNode(n)}
		t.SphereFunc = t.sphere
		n.AddCapability(t)
		for _, id := range []string{"center", "scale", "translation"} {
			errors.Must1(node.ExposedFieldOf[*field.SFVec3f](n, id)).OnEvent = t.transformChanged
		}
		errors.Must1(node.ExposedFieldOf[*field.SFRotation](n, "rotation")).OnEvent =
			func(n *node.Node, v *field.SFRotation, ts float64) { t.SetBoundingVolumeDirty(true) }
	}
	return mt
}

// TransformNode is the implementation of Transform nodes.
type TransformNode struct {
	*GroupNode
	node.TransformBase
}

// Transform returns the transformation of the children:
// translation * center * rotation * scale * -center.
func (t *TransformNode) Transform() math32.Matrix4 {
	n := t.node
	center := get[*field.SFVec3f](n, "center").Value
	m := math32.Translation(get[*field.SFVec3f](n, "translation").Value)
	m = m.Mul(math32.Translation(center))
	m = m.Mul(get[*field.SFRotation](n, "rotation").Value.Matrix())
	m = m.Mul(math32.Scaling(get[*field.SFVec3f](n, "scale").Value))
	return m.Mul(math32.Translation(center.MulScalar(-1)))
}

func (t *TransformNode) RenderChild(v viewer.Viewer, rc viewer.RenderingContext) {
	m := t.Transform()
	v.TransformMatrix(m)
	t.GroupNode.RenderChild(v, rc.Transformed(m))
	v.PopTransform()
}

func (t *TransformNode) sphere() math32.Sphere {
	s := t.childrenSphere()
	if s.IsEmpty() || s.IsInfinite() {
		return s
	}
	m := t.Transform()
	scale := get[*field.SFVec3f](t.node, "scale").Value
	maxScale := max(math32.Abs(scale.X), math32.Abs(scale.Y), math32.Abs(scale.Z))
	return math32.Sphere{Center: s.Center.MulMatrix4(&m), Radius: s.Radius * maxScale}
}

func (t *TransformNode) transformChanged(n *node.Node, v *field.SFVec3f, ts float64) {
	t.SetBoundingVolumeDirty(true)
}
