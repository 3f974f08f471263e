// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box3 is an axis-aligned box given by its minimum and maximum corners.
// A box with Max < Min on any axis is empty.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// B3 returns a new [Box3] from the given minimum and maximum x, y, and z coordinates.
func B3(x0, y0, z0, x1, y1, z1 float32) Box3 {
	return Box3{Vec3(x0, y0, z0), Vec3(x1, y1, z1)}
}

// BoxFromSize returns the box of the given size centered at the origin,
// which is how geometry nodes give their extent. A negative size on
// any axis gives an empty box.
func BoxFromSize(size Vector3) Box3 {
	return Box3{Min: size.MulScalar(-0.5), Max: size.MulScalar(0.5)}
}

// IsEmpty returns whether the box contains no point.
func (b Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// Center returns the center of the box.
func (b Box3) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size returns the vector from the minimum to the maximum corner.
func (b Box3) Size() Vector3 {
	return b.Max.Sub(b.Min)
}
