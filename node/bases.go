// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"sync"

	"cogentcore.org/vrml/field"
	"cogentcore.org/vrml/math32"
	"cogentcore.org/vrml/viewer"
)

// bindCapability binds the bases embedded in c to n.
func bindCapability(n *Node, c any) {
	if b, ok := c.(interface{ bindBoundedVolume(n *Node) }); ok {
		b.bindBoundedVolume(n)
	}
	if b, ok := c.(interface{ bindGeometry(n *Node) }); ok {
		b.bindGeometry(n)
	}
	if b, ok := c.(interface{ bindGrouping(n *Node) }); ok {
		b.bindGrouping(n)
	}
	if b, ok := c.(interface{ bindTexture(n *Node) }); ok {
		b.bindTexture(n)
	}
}

// AppearanceBase is the default [AppearanceNode], which has no
// material or texture and renders nothing.
type AppearanceBase struct{}

func (a *AppearanceBase) RenderAppearance(v viewer.Viewer, rc viewer.RenderingContext) {}
func (a *AppearanceBase) Material() *Node                                               { return nil }
func (a *AppearanceBase) Texture() *Node                                                { return nil }
func (a *AppearanceBase) TextureTransform() *Node                                       { return nil }

// BoundedVolumeBase is the default [BoundedVolumeNode]. It caches
// whether the bounding volume of the node or of any node below it
// has changed. The bounding sphere is infinite unless SphereFunc is set.
type BoundedVolumeBase struct {
	// SphereFunc, if set, computes the bounding sphere.
	SphereFunc func() math32.Sphere

	node  *Node
	mu    sync.Mutex
	dirty bool
}

func (b *BoundedVolumeBase) bindBoundedVolume(n *Node)             { b.node = n }
func (b *BoundedVolumeBase) boundedVolumeBase() *BoundedVolumeBase { return b }

func (b *BoundedVolumeBase) BoundingSphere() math32.Sphere {
	if b.SphereFunc != nil {
		return b.SphereFunc()
	}
	return math32.InfiniteSphere()
}

// BoundingVolumeDirty returns whether the bounding volume has changed.
// If the browser flags need updating, they are recomputed first.
func (b *BoundedVolumeBase) BoundingVolumeDirty() bool {
	if br := b.browser(); br != nil && br.FlagsNeedUpdating() {
		br.UpdateFlags()
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dirty
}

// SetBoundingVolumeDirty sets whether the bounding volume has changed.
// Setting it tells the browser that the flags of the nodes above need
// to be recomputed.
func (b *BoundedVolumeBase) SetBoundingVolumeDirty(dirty bool) {
	b.setDirty(dirty)
	if dirty {
		if br := b.browser(); br != nil {
			br.SetFlagsNeedUpdating()
		}
	}
}

func (b *BoundedVolumeBase) setDirty(dirty bool) {
	b.mu.Lock()
	b.dirty = dirty
	b.mu.Unlock()
}

func (b *BoundedVolumeBase) isDirty() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dirty
}

func (b *BoundedVolumeBase) browser() Browser {
	if b.node == nil {
		return nil
	}
	return b.node.Browser()
}

// UpdateBoundingVolumeFlags marks the bounding volume of every bounded
// volume node reachable from roots as dirty if the bounding volume of
// any node below it is dirty. Browsers call it from [Browser.UpdateFlags].
func UpdateBoundingVolumeFlags(roots ...*Node) {
	done := map[*Node]bool{}
	var update func(n *Node) bool
	update = func(n *Node) bool {
		if dirty, ok := done[n]; ok {
			return dirty
		}
		done[n] = false
		bv, isBV := Cast[BoundedVolumeNode](n)
		dirty := isBV && bv.boundedVolumeBase().isDirty()
		for _, c := range n.ChildNodes() {
			if update(c) {
				dirty = true
			}
		}
		if isBV && dirty {
			bv.boundedVolumeBase().setDirty(true)
		}
		done[n] = dirty
		return dirty
	}
	for _, r := range roots {
		if r != nil {
			update(r)
		}
	}
}

// ChildBase is the default [ChildNode], which renders nothing.
type ChildBase struct{}

func (c *ChildBase) RenderChild(v viewer.Viewer, rc viewer.RenderingContext) {}

// ColorBase is the default [ColorNode], with no colors.
type ColorBase struct{}

func (c *ColorBase) Colors() []field.Color { return nil }

// ColorRGBABase is the default [ColorRGBANode], with no colors.
type ColorRGBABase struct{}

func (c *ColorRGBABase) ColorsRGBA() []field.ColorRGBA { return nil }

// CoordinateBase is the default [CoordinateNode], with no points.
type CoordinateBase struct{}

func (c *CoordinateBase) Points() []math32.Vector3 { return nil }

// FontStyleBase is the default [FontStyleNode], with the default
// values of the FontStyle node.
type FontStyleBase struct{}

func (f *FontStyleBase) Family() []string  { return []string{"SERIF"} }
func (f *FontStyleBase) Horizontal() bool  { return true }
func (f *FontStyleBase) Justify() []string { return []string{"BEGIN"} }
func (f *FontStyleBase) Language() string  { return "" }
func (f *FontStyleBase) LeftToRight() bool { return true }
func (f *FontStyleBase) FontSize() float32 { return 1 }
func (f *FontStyleBase) Spacing() float32  { return 1 }
func (f *FontStyleBase) FontStyle() string { return "PLAIN" }
func (f *FontStyleBase) TopToBottom() bool { return true }

// GeometryBase is the default [GeometryNode]. It keeps the object
// made by the Render hook and reuses it while the node is unmodified.
type GeometryBase struct {
	// Render, if set, uploads the geometry and returns its object.
	Render func(v viewer.Viewer, rc viewer.RenderingContext) viewer.Object

	node   *Node
	mu     sync.Mutex
	object viewer.Object
}

func (g *GeometryBase) bindGeometry(n *Node) { g.node = n }

// RenderGeometry renders the geometry. If the node is unmodified since
// the last call, the cached object is referenced again. Otherwise the
// cached object is removed, a new one is made with the Render hook and
// the node is marked unmodified.
func (g *GeometryBase) RenderGeometry(v viewer.Viewer, rc viewer.RenderingContext) viewer.Object {
	g.mu.Lock()
	obj := g.object
	g.mu.Unlock()
	if obj != 0 && !g.node.Modified() {
		v.InsertReference(obj)
		return obj
	}
	if obj != 0 {
		v.RemoveObject(obj)
		obj = 0
	}
	if g.Render != nil {
		obj = g.Render(v, rc)
	}
	g.mu.Lock()
	g.object = obj
	g.mu.Unlock()
	g.node.SetModified(false)
	return obj
}

func (g *GeometryBase) Emissive() bool { return false }

// GroupingBase is the default [GroupingNode], whose children are the
// nodes of the "children" field of the node, if any.
type GroupingBase struct {
	node *Node
}

func (g *GroupingBase) bindGrouping(n *Node)        { g.node = n }
func (g *GroupingBase) groupingBase() *GroupingBase { return g }

func (g *GroupingBase) Children() []*Node {
	if g.node == nil {
		return nil
	}
	v, err := g.node.Field("children")
	if err != nil {
		return nil
	}
	var res []*Node
	for _, c := range field.Nodes(v) {
		if cn, ok := c.(*Node); ok && cn != nil {
			res = append(res, cn)
		}
	}
	return res
}

// ActivatePointingDeviceSensors activates the children that are
// pointing device sensors, and recurses into the children that are
// grouping nodes. Sensors below other kinds of children are not visited.
func (g *GroupingBase) ActivatePointingDeviceSensors(ts float64, over, active bool, p math32.Vector3) {
	g.activate(ts, over, active, p, map[*GroupingBase]bool{})
}

func (g *GroupingBase) activate(ts float64, over, active bool, p math32.Vector3, visited map[*GroupingBase]bool) {
	if visited[g] {
		return
	}
	visited[g] = true
	for _, c := range g.Children() {
		if s, ok := Cast[PointingDeviceSensorNode](c); ok {
			s.Activate(ts, over, active, p)
		}
		if gr, ok := Cast[GroupingNode](c); ok {
			gr.groupingBase().activate(ts, over, active, p, visited)
		}
	}
}

// LightBase is the default [LightNode], an unlit white light.
type LightBase struct{}

func (l *LightBase) LightAmbientIntensity() float32     { return 0 }
func (l *LightBase) Intensity() float32                 { return 1 }
func (l *LightBase) On() bool                           { return true }
func (l *LightBase) LightColor() field.Color            { return field.Color{R: 1, G: 1, B: 1} }
func (l *LightBase) RenderNonScopedLight(v viewer.Viewer) {}

// MaterialBase is the default [MaterialNode], with the default values
// of the Material node.
type MaterialBase struct{}

func (m *MaterialBase) AmbientIntensity() float32 { return 0.2 }
func (m *MaterialBase) DiffuseColor() field.Color  { return field.Color{R: 0.8, G: 0.8, B: 0.8} }
func (m *MaterialBase) EmissiveColor() field.Color { return field.Color{} }
func (m *MaterialBase) Shininess() float32         { return 0.2 }
func (m *MaterialBase) SpecularColor() field.Color { return field.Color{} }
func (m *MaterialBase) Transparency() float32      { return 0 }

// ViewerMaterial returns the viewer material state for m.
func ViewerMaterial(m MaterialNode) viewer.Material {
	return viewer.Material{
		AmbientIntensity: m.AmbientIntensity(),
		DiffuseColor:     m.DiffuseColor(),
		EmissiveColor:    m.EmissiveColor(),
		Shininess:        m.Shininess(),
		SpecularColor:    m.SpecularColor(),
		Transparency:     m.Transparency(),
	}
}

// NavigationInfoBase is the default [NavigationInfoNode], with the
// default values of the NavigationInfo node.
type NavigationInfoBase struct{}

func (n *NavigationInfoBase) AvatarSize() []float32     { return []float32{0.25, 1.6, 0.75} }
func (n *NavigationInfoBase) Headlight() bool           { return true }
func (n *NavigationInfoBase) Speed() float32            { return 1 }
func (n *NavigationInfoBase) NavigationTypes() []string { return []string{"WALK", "ANY"} }
func (n *NavigationInfoBase) VisibilityLimit() float32  { return 0 }

// NormalBase is the default [NormalNode], with no vectors.
type NormalBase struct{}

func (n *NormalBase) Vectors() []math32.Vector3 { return nil }

// PointingDeviceSensorBase is the default [PointingDeviceSensorNode],
// which ignores activation.
type PointingDeviceSensorBase struct{}

func (s *PointingDeviceSensorBase) Activate(ts float64, over, active bool, p math32.Vector3) {}

// ScopedLightBase is the default [ScopedLightNode], which renders nothing.
type ScopedLightBase struct{}

func (l *ScopedLightBase) RenderScopedLight(v viewer.Viewer) {}

// SoundSourceBase is the default [SoundSourceNode], of unknown duration.
type SoundSourceBase struct{}

func (s *SoundSourceBase) SoundDuration() float64 { return -1 }

// TextureBase is the default [TextureNode]. Like [GeometryBase], it
// keeps the texture made by the Render hook and reuses it while the
// node is unmodified.
type TextureBase struct {
	// Render, if set, uploads the texture and returns its handle.
	Render func(v viewer.Viewer) viewer.TextureObject

	node    *Node
	mu      sync.Mutex
	texture viewer.TextureObject
}

func (t *TextureBase) bindTexture(n *Node) { t.node = n }

// RenderTexture renders the texture, referencing the cached texture
// again if the node is unmodified since the last call.
func (t *TextureBase) RenderTexture(v viewer.Viewer) viewer.TextureObject {
	t.mu.Lock()
	tex := t.texture
	t.mu.Unlock()
	if tex != 0 && !t.node.Modified() {
		v.InsertTextureReference(tex)
		return tex
	}
	if tex != 0 {
		v.RemoveTexture(tex)
		tex = 0
	}
	if t.Render != nil {
		tex = t.Render(v)
	}
	t.mu.Lock()
	t.texture = tex
	t.mu.Unlock()
	t.node.SetModified(false)
	return tex
}

func (t *TextureBase) TextureImage() field.Image { return field.Image{} }
func (t *TextureBase) RepeatS() bool             { return true }
func (t *TextureBase) RepeatT() bool             { return true }

// TextureCoordinateBase is the default [TextureCoordinateNode],
// with no coordinates.
type TextureCoordinateBase struct{}

func (t *TextureCoordinateBase) TexCoords() []math32.Vector2 { return nil }

// TextureTransformBase is the default [TextureTransformNode],
// which renders nothing.
type TextureTransformBase struct{}

func (t *TextureTransformBase) RenderTextureTransform(v viewer.Viewer) {}

// TimeDependentBase is the default [TimeDependentNode],
// which ignores time.
type TimeDependentBase struct{}

func (t *TimeDependentBase) UpdateTime(ts float64) {}

// TransformBase is the default [TransformNode], the identity.
type TransformBase struct{}

func (t *TransformBase) Transform() math32.Matrix4 { return math32.Identity4() }

// ViewpointBase is the default [ViewpointNode], with the default
// values of the Viewpoint node.
type ViewpointBase struct{}

func (v *ViewpointBase) Position() math32.Vector3    { return math32.Vec3(0, 0, 10) }
func (v *ViewpointBase) Orientation() field.Rotation { return field.Rotation{} }
func (v *ViewpointBase) FieldOfView() float32        { return math32.Pi / 4 }
func (v *ViewpointBase) Description() string         { return "" }

// Transformation returns the camera transformation of the viewpoint
// position and orientation.
func (v *ViewpointBase) Transformation() math32.Matrix4 {
	return math32.Translation(v.Position()).Mul(v.Orientation().Matrix())
}
