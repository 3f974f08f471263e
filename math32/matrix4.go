// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Matrix4 is 4x4 matrix organized internally as column matrix.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	m := Matrix4{}
	m.SetIdentity()
	return m
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	*m = Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// IsIdentity returns whether this matrix is the identity matrix.
func (m *Matrix4) IsIdentity() bool {
	return *m == Identity4()
}

// Mul returns this matrix times other matrix (this matrix is unchanged).
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var r Matrix4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += m[k*4+row] * other[c*4+k]
			}
			r[c*4+row] = s
		}
	}
	return r
}

// Translation returns a translation matrix from the given vector.
func Translation(v Vector3) Matrix4 {
	m := Identity4()
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
	return m
}

// Scaling returns a scaling matrix from the given vector.
func Scaling(v Vector3) Matrix4 {
	m := Identity4()
	m[0] = v.X
	m[5] = v.Y
	m[10] = v.Z
	return m
}

// RotationAxis returns a rotation matrix about the given unit axis
// by the given angle in radians.
func RotationAxis(axis Vector3, angle float32) Matrix4 {
	s, c := Sincos(angle)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z
	tx, ty := t*x, t*y
	return Matrix4{
		tx*x + c, tx*y + s*z, tx*z - s*y, 0,
		tx*y - s*z, ty*y + c, ty*z + s*x, 0,
		tx*z + s*y, ty*z - s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

// Translation returns the translation component of this matrix.
func (m *Matrix4) Translation() Vector3 {
	return Vec3(m[12], m[13], m[14])
}
