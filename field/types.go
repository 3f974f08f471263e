// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"fmt"

	"cogentcore.org/vrml/math32"
)

// Color is an RGB color with components in [0, 1].
type Color struct {
	R, G, B float32
}

// ColorRGBA is an RGBA color with components in [0, 1].
type ColorRGBA struct {
	R, G, B, A float32
}

// Vec2d is a 2D vector with float64 components.
type Vec2d struct {
	X, Y float64
}

// Vec3d is a 3D vector with float64 components.
type Vec3d struct {
	X, Y, Z float64
}

// Rotation is a rotation of Angle radians about a unit-length axis.
// The axis is kept normalized by every setter. The zero value is
// the identity rotation about the Z axis.
type Rotation struct {
	axis  math32.Vector3
	angle float32
}

// defaultAxis is reported for a zero axis.
var defaultAxis = math32.Vec3(0, 0, 1)

// NewRotation returns the rotation of angle radians about the axis
// (x, y, z). It panics if the axis is not unit length: passing an
// unnormalized axis is a programming error. Use [RotationFromAxis]
// to normalize an arbitrary axis.
func NewRotation(x, y, z, angle float32) Rotation {
	axis := math32.Vec3(x, y, z)
	if !axis.IsUnit() {
		panic(fmt.Sprintf("field.NewRotation: axis %v is not normalized", axis))
	}
	return Rotation{axis: axis, angle: angle}
}

// RotationFromAxis returns the rotation of angle radians about the
// normalized version of the given axis.
func RotationFromAxis(axis math32.Vector3, angle float32) Rotation {
	r := Rotation{angle: angle}
	r.SetAxis(axis)
	return r
}

// Axis returns the unit rotation axis.
func (r Rotation) Axis() math32.Vector3 {
	if r.axis == (math32.Vector3{}) {
		return defaultAxis
	}
	return r.axis
}

// X returns the x component of the axis.
func (r Rotation) X() float32 { return r.Axis().X }

// Y returns the y component of the axis.
func (r Rotation) Y() float32 { return r.Axis().Y }

// Z returns the z component of the axis.
func (r Rotation) Z() float32 { return r.Axis().Z }

// Angle returns the rotation angle in radians.
func (r Rotation) Angle() float32 { return r.angle }

// SetAxis sets the axis to the normalized version of the given vector.
// A zero vector resets the axis to the Z axis.
func (r *Rotation) SetAxis(axis math32.Vector3) {
	r.axis = axis.Normal()
}

// SetX sets the x component of the axis and normalizes the axis again.
func (r *Rotation) SetX(x float32) {
	a := r.Axis()
	a.X = x
	r.SetAxis(a)
}

// SetY sets the y component of the axis and normalizes the axis again.
func (r *Rotation) SetY(y float32) {
	a := r.Axis()
	a.Y = y
	r.SetAxis(a)
}

// SetZ sets the z component of the axis and normalizes the axis again.
func (r *Rotation) SetZ(z float32) {
	a := r.Axis()
	a.Z = z
	r.SetAxis(a)
}

// SetAngle sets the rotation angle in radians.
func (r *Rotation) SetAngle(angle float32) {
	r.angle = angle
}

// Equal returns whether both rotations have the same axis and angle.
func (r Rotation) Equal(o Rotation) bool {
	return r.Axis() == o.Axis() && r.angle == o.angle
}

// Matrix returns the rotation as a transformation matrix.
func (r Rotation) Matrix() math32.Matrix4 {
	return math32.RotationAxis(r.Axis(), r.angle)
}
