// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Sphere is a bounding sphere with a center and a radius.
// A negative radius marks an empty sphere and an infinite
// radius marks a sphere that contains everything.
type Sphere struct {
	Center Vector3
	Radius float32
}

// EmptySphere returns a [Sphere] that contains nothing.
func EmptySphere() Sphere {
	return Sphere{Radius: -1}
}

// InfiniteSphere returns a [Sphere] that contains everything.
// It is the default bounding volume of a node.
func InfiniteSphere() Sphere {
	return Sphere{Radius: Infinity}
}

// IsEmpty returns whether the sphere contains nothing.
func (s Sphere) IsEmpty() bool {
	return s.Radius < 0
}

// IsInfinite returns whether the sphere contains everything.
func (s Sphere) IsInfinite() bool {
	return IsInf(s.Radius, 1)
}

// SphereFromBox returns the sphere enclosing the given box.
func SphereFromBox(b Box3) Sphere {
	if b.IsEmpty() {
		return EmptySphere()
	}
	return Sphere{Center: b.Center(), Radius: b.Size().Length() / 2}
}

// ExpandBySphere returns the smallest sphere enclosing s and o.
func (s Sphere) ExpandBySphere(o Sphere) Sphere {
	switch {
	case s.IsInfinite() || o.IsEmpty():
		return s
	case o.IsInfinite() || s.IsEmpty():
		return o
	}
	d := o.Center.Sub(s.Center)
	dist := d.Length()
	if dist+o.Radius <= s.Radius {
		return s
	}
	if dist+s.Radius <= o.Radius {
		return o
	}
	r := (dist + s.Radius + o.Radius) / 2
	c := s.Center
	if dist > 0 {
		c = c.Add(d.MulScalar((r - s.Radius) / dist))
	}
	return Sphere{Center: c, Radius: r}
}

// ContainsPoint returns whether the sphere contains the given point.
func (s Sphere) ContainsPoint(p Vector3) bool {
	if s.IsEmpty() {
		return false
	}
	return s.IsInfinite() || p.DistanceTo(s.Center) <= s.Radius
}
