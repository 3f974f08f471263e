// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer defines the interface of the rendering backend that
// scene graph nodes render into. The scene graph never interprets the
// handles a viewer returns beyond comparing them with zero.
package viewer

import (
	"cogentcore.org/vrml/field"
	"cogentcore.org/vrml/math32"
)

// Object is an opaque handle to geometry uploaded to a viewer.
// The zero Object is no object.
type Object uint64

// TextureObject is an opaque handle to a texture uploaded to a viewer.
// The zero TextureObject is no texture.
type TextureObject uint64

// Material is the material state used for subsequent geometry.
type Material struct {
	AmbientIntensity float32
	DiffuseColor     field.Color
	EmissiveColor    field.Color
	Shininess        float32
	SpecularColor    field.Color
	Transparency     float32
}

// Viewer is a rendering backend.
type Viewer interface {
	// InsertReference renders an existing object again.
	InsertReference(o Object)

	// RemoveObject releases an object.
	RemoveObject(o Object)

	// InsertTextureReference uses an existing texture again.
	InsertTextureReference(t TextureObject)

	// RemoveTexture releases a texture.
	RemoveTexture(t TextureObject)

	// InsertBox uploads a box of the given size centered at the origin.
	InsertBox(size math32.Vector3) Object

	// InsertSphere uploads a sphere of the given radius centered at the origin.
	InsertSphere(radius float32) Object

	// InsertTexture uploads a texture image.
	InsertTexture(img field.Image, repeatS, repeatT bool) TextureObject

	// SetMaterial sets the material of subsequent geometry.
	SetMaterial(m Material)

	// TransformMatrix pushes a transformation for subsequent geometry.
	TransformMatrix(m math32.Matrix4)

	// PopTransform undoes the last pushed transformation.
	PopTransform()

	// DrawBoundingSphere draws a bounding sphere for debugging.
	DrawBoundingSphere(s math32.Sphere)
}

// RenderingContext is the state passed down while rendering a scene.
type RenderingContext struct {
	// Matrix is the accumulated modelview transformation.
	Matrix math32.Matrix4

	// DrawBoundingSpheres is whether to draw bounding spheres.
	DrawBoundingSpheres bool

	// Cull is whether to skip geometry outside the view volume.
	Cull bool
}

// NewRenderingContext returns a context with the identity transformation.
func NewRenderingContext() RenderingContext {
	return RenderingContext{Matrix: math32.Identity4()}
}

// Transformed returns a copy of the context with m applied
// after the current transformation.
func (rc RenderingContext) Transformed(m math32.Matrix4) RenderingContext {
	rc.Matrix = rc.Matrix.Mul(m)
	return rc
}
