// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"io"

	"cogentcore.org/vrml/math32"
)

// SFBool is a boolean.
type SFBool struct {
	Value bool
}

func (x *SFBool) isValue() {}

func (x *SFBool) Type() Type { return TypeSFBool }

func (x *SFBool) Clone() Value { return &SFBool{Value: x.Value} }

func (x *SFBool) Assign(v Value) error {
	o, ok := v.(*SFBool)
	if !ok {
		return mismatch(TypeSFBool, v)
	}
	x.Value = o.Value
	return nil
}

func (x *SFBool) Equal(v Value) bool {
	o, ok := v.(*SFBool)
	return ok && x.Value == o.Value
}

func (x *SFBool) String() string { return formatBool(x.Value) }

func (x *SFBool) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// SFColor is an RGB color.
type SFColor struct {
	Value Color
}

func (x *SFColor) isValue() {}

func (x *SFColor) Type() Type { return TypeSFColor }

func (x *SFColor) Clone() Value { return &SFColor{Value: x.Value} }

func (x *SFColor) Assign(v Value) error {
	o, ok := v.(*SFColor)
	if !ok {
		return mismatch(TypeSFColor, v)
	}
	x.Value = o.Value
	return nil
}

func (x *SFColor) Equal(v Value) bool {
	o, ok := v.(*SFColor)
	return ok && x.Value == o.Value
}

func (x *SFColor) String() string { return formatColor(x.Value) }

func (x *SFColor) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// SFColorRGBA is an RGBA color.
type SFColorRGBA struct {
	Value ColorRGBA
}

func (x *SFColorRGBA) isValue() {}

func (x *SFColorRGBA) Type() Type { return TypeSFColorRGBA }

func (x *SFColorRGBA) Clone() Value { return &SFColorRGBA{Value: x.Value} }

func (x *SFColorRGBA) Assign(v Value) error {
	o, ok := v.(*SFColorRGBA)
	if !ok {
		return mismatch(TypeSFColorRGBA, v)
	}
	x.Value = o.Value
	return nil
}

func (x *SFColorRGBA) Equal(v Value) bool {
	o, ok := v.(*SFColorRGBA)
	return ok && x.Value == o.Value
}

func (x *SFColorRGBA) String() string { return formatColorRGBA(x.Value) }

func (x *SFColorRGBA) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// SFFloat is a single precision float.
type SFFloat struct {
	Value float32
}

func (x *SFFloat) isValue() {}

func (x *SFFloat) Type() Type { return TypeSFFloat }

func (x *SFFloat) Clone() Value { return &SFFloat{Value: x.Value} }

func (x *SFFloat) Assign(v Value) error {
	o, ok := v.(*SFFloat)
	if !ok {
		return mismatch(TypeSFFloat, v)
	}
	x.Value = o.Value
	return nil
}

func (x *SFFloat) Equal(v Value) bool {
	o, ok := v.(*SFFloat)
	return ok && x.Value == o.Value
}

func (x *SFFloat) String() string { return formatFloat(x.Value) }

func (x *SFFloat) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// SFDouble is a double precision float.
type SFDouble struct {
	Value float64
}

func (x *SFDouble) isValue() {}

func (x *SFDouble) Type() Type { return TypeSFDouble }

func (x *SFDouble) Clone() Value { return &SFDouble{Value: x.Value} }

func (x *SFDouble) Assign(v Value) error {
	o, ok := v.(*SFDouble)
	if !ok {
		return mismatch(TypeSFDouble, v)
	}
	x.Value = o.Value
	return nil
}

func (x *SFDouble) Equal(v Value) bool {
	o, ok := v.(*SFDouble)
	return ok && x.Value == o.Value
}

func (x *SFDouble) String() string { return formatDouble(x.Value) }

func (x *SFDouble) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// SFInt32 is a 32-bit integer.
type SFInt32 struct {
	Value int32
}

func (x *SFInt32) isValue() {}

func (x *SFInt32) Type() Type { return TypeSFInt32 }

func (x *SFInt32) Clone() Value { return &SFInt32{Value: x.Value} }

func (x *SFInt32) Assign(v Value) error {
	o, ok := v.(*SFInt32)
	if !ok {
		return mismatch(TypeSFInt32, v)
	}
	x.Value = o.Value
	return nil
}

func (x *SFInt32) Equal(v Value) bool {
	o, ok := v.(*SFInt32)
	return ok && x.Value == o.Value
}

func (x *SFInt32) String() string { return formatInt32(x.Value) }

func (x *SFInt32) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// SFNode is a possibly null node reference.
type SFNode struct {
	Value Node
}

func (x *SFNode) isValue() {}

func (x *SFNode) Type() Type { return TypeSFNode }

func (x *SFNode) Clone() Value { return &SFNode{Value: x.Value} }

func (x *SFNode) Assign(v Value) error {
	o, ok := v.(*SFNode)
	if !ok {
		return mismatch(TypeSFNode, v)
	}
	x.Value = o.Value
	return nil
}

func (x *SFNode) Equal(v Value) bool {
	o, ok := v.(*SFNode)
	return ok && x.Value == o.Value
}

func (x *SFNode) String() string { return formatNode(x.Value) }

func (x *SFNode) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// SFRotation is an axis-angle rotation.
type SFRotation struct {
	Value Rotation
}

func (x *SFRotation) isValue() {}

func (x *SFRotation) Type() Type { return TypeSFRotation }

func (x *SFRotation) Clone() Value { return &SFRotation{Value: x.Value} }

func (x *SFRotation) Assign(v Value) error {
	o, ok := v.(*SFRotation)
	if !ok {
		return mismatch(TypeSFRotation, v)
	}
	x.Value = o.Value
	return nil
}

func (x *SFRotation) Equal(v Value) bool {
	o, ok := v.(*SFRotation)
	return ok && x.Value.Equal(o.Value)
}

func (x *SFRotation) String() string { return formatRotation(x.Value) }

func (x *SFRotation) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// SFString is a string.
type SFString struct {
	Value string
}

func (x *SFString) isValue() {}

func (x *SFString) Type() Type { return TypeSFString }

func (x *SFString) Clone() Value { return &SFString{Value: x.Value} }

func (x *SFString) Assign(v Value) error {
	o, ok := v.(*SFString)
	if !ok {
		return mismatch(TypeSFString, v)
	}
	x.Value = o.Value
	return nil
}

func (x *SFString) Equal(v Value) bool {
	o, ok := v.(*SFString)
	return ok && x.Value == o.Value
}

func (x *SFString) String() string { return formatString(x.Value) }

func (x *SFString) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// SFTime is a time in seconds.
type SFTime struct {
	Value float64
}

func (x *SFTime) isValue() {}

func (x *SFTime) Type() Type { return TypeSFTime }

func (x *SFTime) Clone() Value { return &SFTime{Value: x.Value} }

func (x *SFTime) Assign(v Value) error {
	o, ok := v.(*SFTime)
	if !ok {
		return mismatch(TypeSFTime, v)
	}
	x.Value = o.Value
	return nil
}

func (x *SFTime) Equal(v Value) bool {
	o, ok := v.(*SFTime)
	return ok && x.Value == o.Value
}

func (x *SFTime) String() string { return formatDouble(x.Value) }

func (x *SFTime) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// SFVec2f is a single precision 2D vector.
type SFVec2f struct {
	Value math32.Vector2
}

func (x *SFVec2f) isValue() {}

func (x *SFVec2f) Type() Type { return TypeSFVec2f }

func (x *SFVec2f) Clone() Value { return &SFVec2f{Value: x.Value} }

func (x *SFVec2f) Assign(v Value) error {
	o, ok := v.(*SFVec2f)
	if !ok {
		return mismatch(TypeSFVec2f, v)
	}
	x.Value = o.Value
	return nil
}

func (x *SFVec2f) Equal(v Value) bool {
	o, ok := v.(*SFVec2f)
	return ok && x.Value == o.Value
}

func (x *SFVec2f) String() string { return formatVec2f(x.Value) }

func (x *SFVec2f) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// SFVec2d is a double precision 2D vector.
type SFVec2d struct {
	Value Vec2d
}

func (x *SFVec2d) isValue() {}

func (x *SFVec2d) Type() Type { return TypeSFVec2d }

func (x *SFVec2d) Clone() Value { return &SFVec2d{Value: x.Value} }

func (x *SFVec2d) Assign(v Value) error {
	o, ok := v.(*SFVec2d)
	if !ok {
		return mismatch(TypeSFVec2d, v)
	}
	x.Value = o.Value
	return nil
}

func (x *SFVec2d) Equal(v Value) bool {
	o, ok := v.(*SFVec2d)
	return ok && x.Value == o.Value
}

func (x *SFVec2d) String() string { return formatVec2d(x.Value) }

func (x *SFVec2d) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// SFVec3f is a single precision 3D vector.
type SFVec3f struct {
	Value math32.Vector3
}

func (x *SFVec3f) isValue() {}

func (x *SFVec3f) Type() Type { return TypeSFVec3f }

func (x *SFVec3f) Clone() Value { return &SFVec3f{Value: x.Value} }

func (x *SFVec3f) Assign(v Value) error {
	o, ok := v.(*SFVec3f)
	if !ok {
		return mismatch(TypeSFVec3f, v)
	}
	x.Value = o.Value
	return nil
}

func (x *SFVec3f) Equal(v Value) bool {
	o, ok := v.(*SFVec3f)
	return ok && x.Value == o.Value
}

func (x *SFVec3f) String() string { return formatVec3f(x.Value) }

func (x *SFVec3f) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// SFVec3d is a double precision 3D vector.
type SFVec3d struct {
	Value Vec3d
}

func (x *SFVec3d) isValue() {}

func (x *SFVec3d) Type() Type { return TypeSFVec3d }

func (x *SFVec3d) Clone() Value { return &SFVec3d{Value: x.Value} }

func (x *SFVec3d) Assign(v Value) error {
	o, ok := v.(*SFVec3d)
	if !ok {
		return mismatch(TypeSFVec3d, v)
	}
	x.Value = o.Value
	return nil
}

func (x *SFVec3d) Equal(v Value) bool {
	o, ok := v.(*SFVec3d)
	return ok && x.Value == o.Value
}

func (x *SFVec3d) String() string { return formatVec3d(x.Value) }

func (x *SFVec3d) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}
