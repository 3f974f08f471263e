// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testdata provides a small catalog of node implementations
// for testing the node framework.
package testdata

import (
	"cogentcore.org/vrml/base/errors"
	"cogentcore.org/vrml/field"
	"cogentcore.org/vrml/math32"
	"cogentcore.org/vrml/node"
	"cogentcore.org/vrml/viewer"
)

// URNPrefix is the prefix of the metatype ids of the catalog.
const URNPrefix = "urn:x-vrml:node:"

// Catalog returns the metatypes of all the nodes of the catalog,
// owned by the given browser.
func Catalog(b node.Browser) []*node.Metatype {
	return []*node.Metatype{
		Appearance(b),
		Box(b),
		Counter(b),
		Group(b),
		Material(b),
		PixelTexture(b),
		Shape(b),
		TouchSensor(b),
		Transform(b),
	}
}

// CreateNode creates a node of the metatype with all supported
// interfaces, for tests. It panics on error.
func CreateNode(mt *node.Metatype, scope *node.Scope, initial map[string]field.Value) *node.Node {
	name := mt.ID().Base()[len(URNPrefix):]
	t := errors.Must1(mt.CreateSupportedType(name))
	return errors.Must1(t.CreateNode(scope, initial))
}

func newMetatype(b node.Browser, name string, ifaces ...node.Interface) *node.Metatype {
	id := node.MustParseMetatypeID(URNPrefix + name)
	return node.NewMetatype(id, b, node.MustInterfaceSet(ifaces...))
}

func exposedField(ft field.Type, id string) node.Interface {
	return node.Interface{Kind: node.ExposedField, FieldType: ft, ID: id}
}

func plainField(ft field.Type, id string) node.Interface {
	return node.Interface{Kind: node.Field, FieldType: ft, ID: id}
}

func eventIn(ft field.Type, id string) node.Interface {
	return node.Interface{Kind: node.EventIn, FieldType: ft, ID: id}
}

func eventOut(ft field.Type, id string) node.Interface {
	return node.Interface{Kind: node.EventOut, FieldType: ft, ID: id}
}

// get returns the value of the field of n with the given id.
// It panics if there is no such field of type T.
func get[T field.Value](n *node.Node, id string) T {
	return errors.Must1(n.Field(id)).(T)
}

// getNode returns the node of the SFNode field of n with the given id.
func getNode(n *node.Node, id string) *node.Node {
	c, _ := get[*field.SFNode](n, id).Value.(*node.Node)
	return c
}

// Box is a box centered at the origin.
func Box(b node.Browser) *node.Metatype {
	mt := newMetatype(b, "Box", exposedField(field.TypeSFVec3f, "size"))
	mt.Defaults = map[string]field.Value{
		"size": &field.SFVec3f{Value: math32.Vec3(2, 2, 2)},
	}
	mt.Init = func(n *node.Node) {
		box := &BoxNode{node: n}
		box.Render = box.render
		box.SphereFunc = box.sphere
		n.AddCapability(box)
		size := errors.Must1(node.ExposedFieldOf[*field.SFVec3f](n, "size"))
		size.OnEvent = func(n *node.Node, v *field.SFVec3f, ts float64) {
			box.SetBoundingVolumeDirty(true)
		}
	}
	return mt
}

// BoxNode is the geometry of a Box node.
type BoxNode struct {
	node.GeometryBase
	node.BoundedVolumeBase
	node *node.Node
}

// Size returns the size of the box.
func (b *BoxNode) Size() math32.Vector3 {
	return get[*field.SFVec3f](b.node, "size").Value
}

func (b *BoxNode) render(v viewer.Viewer, rc viewer.RenderingContext) viewer.Object {
	return v.InsertBox(b.Size())
}

func (b *BoxNode) sphere() math32.Sphere {
	return math32.SphereFromBox(math32.BoxFromSize(b.Size()))
}

// Shape combines an appearance and a geometry.
func Shape(b node.Browser) *node.Metatype {
	mt := newMetatype(b, "Shape",
		exposedField(field.TypeSFNode, "appearance"),
		exposedField(field.TypeSFNode, "geometry"),
	)
	mt.Init = func(n *node.Node) {
		s := &shapeNode{node: n}
		s.SphereFunc = s.sphere
		n.AddCapability(s)
	}
	return mt
}

type shapeNode struct {
	node.ChildBase
	node.BoundedVolumeBase
	node *node.Node
}

func (s *shapeNode) RenderChild(v viewer.Viewer, rc viewer.RenderingContext) {
	if a, ok := node.Cast[node.AppearanceNode](getNode(s.node, "appearance")); ok {
		a.RenderAppearance(v, rc)
	} else {
		v.SetMaterial(node.ViewerMaterial(&node.MaterialBase{}))
	}
	if g, ok := node.Cast[node.GeometryNode](getNode(s.node, "geometry")); ok {
		g.RenderGeometry(v, rc)
	}
	if rc.DrawBoundingSpheres {
		v.DrawBoundingSphere(s.BoundingSphere())
	}
}

func (s *shapeNode) sphere() math32.Sphere {
	if bv, ok := node.Cast[node.BoundedVolumeNode](getNode(s.node, "geometry")); ok {
		return bv.BoundingSphere()
	}
	return math32.EmptySphere()
}

// Appearance holds the material and texture of a Shape.
func Appearance(b node.Browser) *node.Metatype {
	mt := newMetatype(b, "Appearance",
		exposedField(field.TypeSFNode, "material"),
		exposedField(field.TypeSFNode, "texture"),
		exposedField(field.TypeSFNode, "textureTransform"),
	)
	mt.Init = func(n *node.Node) {
		n.AddCapability(&appearanceNode{node: n})
	}
	return mt
}

type appearanceNode struct {
	node.AppearanceBase
	node *node.Node
}

func (a *appearanceNode) Material() *node.Node         { return getNode(a.node, "material") }
func (a *appearanceNode) Texture() *node.Node          { return getNode(a.node, "texture") }
func (a *appearanceNode) TextureTransform() *node.Node { return getNode(a.node, "textureTransform") }

func (a *appearanceNode) RenderAppearance(v viewer.Viewer, rc viewer.RenderingContext) {
	var m node.MaterialNode = &node.MaterialBase{}
	if mn, ok := node.Cast[node.MaterialNode](a.Material()); ok {
		m = mn
	}
	v.SetMaterial(node.ViewerMaterial(m))
	if t, ok := node.Cast[node.TextureNode](a.Texture()); ok {
		t.RenderTexture(v)
	}
	if tt, ok := node.Cast[node.TextureTransformNode](a.TextureTransform()); ok {
		tt.RenderTextureTransform(v)
	}
}

// Material is the surface material of a Shape.
func Material(b node.Browser) *node.Metatype {
	mt := newMetatype(b, "Material",
		exposedField(field.TypeSFFloat, "ambientIntensity"),
		exposedField(field.TypeSFColor, "diffuseColor"),
		exposedField(field.TypeSFColor, "emissiveColor"),
		exposedField(field.TypeSFFloat, "shininess"),
		exposedField(field.TypeSFColor, "specularColor"),
		exposedField(field.TypeSFFloat, "transparency"),
	)
	mt.Defaults = map[string]field.Value{
		"ambientIntensity": &field.SFFloat{Value: 0.2},
		"diffuseColor":     &field.SFColor{Value: field.Color{R: 0.8, G: 0.8, B: 0.8}},
		"shininess":        &field.SFFloat{Value: 0.2},
	}
	mt.Init = func(n *node.Node) {
		n.AddCapability(&materialNode{node: n})
	}
	return mt
}

type materialNode struct {
	node *node.Node
}

func (m *materialNode) AmbientIntensity() float32 { return get[*field.SFFloat](m.node, "ambientIntensity").Value }
func (m *materialNode) DiffuseColor() field.Color  { return get[*field.SFColor](m.node, "diffuseColor").Value }
func (m *materialNode) EmissiveColor() field.Color { return get[*field.SFColor](m.node, "emissiveColor").Value }
func (m *materialNode) Shininess() float32         { return get[*field.SFFloat](m.node, "shininess").Value }
func (m *materialNode) SpecularColor() field.Color { return get[*field.SFColor](m.node, "specularColor").Value }
func (m *materialNode) Transparency() float32      { return get[*field.SFFloat](m.node, "transparency").Value }

// PixelTexture is a texture with an inline image.
func PixelTexture(b node.Browser) *node.Metatype {
	mt := newMetatype(b, "PixelTexture",
		exposedField(field.TypeSFImage, "image"),
		plainField(field.TypeSFBool, "repeatS"),
		plainField(field.TypeSFBool, "repeatT"),
	)
	mt.Defaults = map[string]field.Value{
		"repeatS": &field.SFBool{Value: true},
		"repeatT": &field.SFBool{Value: true},
	}
	mt.Init = func(n *node.Node) {
		t := &pixelTextureNode{node: n}
		t.Render = t.render
		n.AddCapability(t)
	}
	return mt
}

type pixelTextureNode struct {
	node.TextureBase
	node *node.Node
}

func (t *pixelTextureNode) TextureImage() field.Image { return get[*field.SFImage](t.node, "image").Value }
func (t *pixelTextureNode) RepeatS() bool             { return get[*field.SFBool](t.node, "repeatS").Value }
func (t *pixelTextureNode) RepeatT() bool             { return get[*field.SFBool](t.node, "repeatT").Value }

func (t *pixelTextureNode) render(v viewer.Viewer) viewer.TextureObject {
	return v.InsertTexture(t.TextureImage(), t.RepeatS(), t.RepeatT())
}
