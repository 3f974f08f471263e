// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"cogentcore.org/vrml/field"
	"cogentcore.org/vrml/math32"
	"cogentcore.org/vrml/viewer"
)

// The capability interfaces describe what a node can do beyond holding
// fields and events. A node implementation opts into a capability by
// adding a value implementing it with [Node.AddCapability], typically
// a struct embedding the matching Base type, which provides neutral
// defaults. Use [Cast] to get the capabilities of a node.

// AppearanceNode is implemented by Appearance nodes.
type AppearanceNode interface {
	RenderAppearance(v viewer.Viewer, rc viewer.RenderingContext)
	Material() *Node
	Texture() *Node
	TextureTransform() *Node
}

// BoundedVolumeNode is implemented by nodes with a bounding volume.
type BoundedVolumeNode interface {
	BoundingSphere() math32.Sphere
	BoundingVolumeDirty() bool
	SetBoundingVolumeDirty(dirty bool)
	boundedVolumeBase() *BoundedVolumeBase
}

// ChildNode is implemented by nodes that can be children of grouping nodes.
type ChildNode interface {
	RenderChild(v viewer.Viewer, rc viewer.RenderingContext)
}

// ColorNode is implemented by Color nodes.
type ColorNode interface {
	Colors() []field.Color
}

// ColorRGBANode is implemented by ColorRGBA nodes.
type ColorRGBANode interface {
	ColorsRGBA() []field.ColorRGBA
}

// CoordinateNode is implemented by Coordinate nodes.
type CoordinateNode interface {
	Points() []math32.Vector3
}

// FontStyleNode is implemented by FontStyle nodes.
type FontStyleNode interface {
	Family() []string
	Horizontal() bool
	Justify() []string
	Language() string
	LeftToRight() bool
	FontSize() float32
	Spacing() float32
	FontStyle() string
	TopToBottom() bool
}

// GeometryNode is implemented by geometry nodes.
type GeometryNode interface {
	RenderGeometry(v viewer.Viewer, rc viewer.RenderingContext) viewer.Object
	Emissive() bool
}

// GroupingNode is implemented by nodes with children.
type GroupingNode interface {
	Children() []*Node
	ActivatePointingDeviceSensors(ts float64, over, active bool, p math32.Vector3)
	groupingBase() *GroupingBase
}

// LightNode is implemented by light nodes.
type LightNode interface {
	LightAmbientIntensity() float32
	Intensity() float32
	On() bool
	LightColor() field.Color
	RenderNonScopedLight(v viewer.Viewer)
}

// MaterialNode is implemented by Material nodes.
type MaterialNode interface {
	AmbientIntensity() float32
	DiffuseColor() field.Color
	EmissiveColor() field.Color
	Shininess() float32
	SpecularColor() field.Color
	Transparency() float32
}

// NavigationInfoNode is implemented by NavigationInfo nodes.
type NavigationInfoNode interface {
	AvatarSize() []float32
	Headlight() bool
	Speed() float32
	NavigationTypes() []string
	VisibilityLimit() float32
}

// NormalNode is implemented by Normal nodes.
type NormalNode interface {
	Vectors() []math32.Vector3
}

// PointingDeviceSensorNode is implemented by pointing device sensors
// such as TouchSensor.
type PointingDeviceSensorNode interface {
	Activate(ts float64, over, active bool, p math32.Vector3)
}

// ScopedLightNode is implemented by lights that affect only their siblings.
type ScopedLightNode interface {
	RenderScopedLight(v viewer.Viewer)
}

// SoundSourceNode is implemented by sound sources such as AudioClip.
type SoundSourceNode interface {
	SoundDuration() float64
}

// TextureNode is implemented by texture nodes.
type TextureNode interface {
	RenderTexture(v viewer.Viewer) viewer.TextureObject
	TextureImage() field.Image
	RepeatS() bool
	RepeatT() bool
}

// TextureCoordinateNode is implemented by TextureCoordinate nodes.
type TextureCoordinateNode interface {
	TexCoords() []math32.Vector2
}

// TextureTransformNode is implemented by TextureTransform nodes.
type TextureTransformNode interface {
	RenderTextureTransform(v viewer.Viewer)
}

// TimeDependentNode is implemented by nodes driven by the clock,
// such as TimeSensor.
type TimeDependentNode interface {
	UpdateTime(ts float64)
}

// TransformNode is implemented by nodes that transform their children.
type TransformNode interface {
	Transform() math32.Matrix4
}

// ViewpointNode is implemented by Viewpoint nodes.
type ViewpointNode interface {
	Position() math32.Vector3
	Orientation() field.Rotation
	FieldOfView() float32
	Description() string
	Transformation() math32.Matrix4
}
