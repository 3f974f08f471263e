// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"io"
	"slices"

	"cogentcore.org/vrml/math32"
)

// MFBool is an array of boolean values.
type MFBool struct {
	Values []bool
}

func (x *MFBool) isValue() {}

func (x *MFBool) Type() Type { return TypeMFBool }

func (x *MFBool) Clone() Value { return &MFBool{Values: slices.Clone(x.Values)} }

func (x *MFBool) Assign(v Value) error {
	o, ok := v.(*MFBool)
	if !ok {
		return mismatch(TypeMFBool, v)
	}
	x.Values = slices.Clone(o.Values)
	return nil
}

func (x *MFBool) Equal(v Value) bool {
	o, ok := v.(*MFBool)
	return ok && slices.Equal(x.Values, o.Values)
}

func (x *MFBool) String() string { return formatArray(x.Values, formatBool) }

func (x *MFBool) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// MFColor is an array of RGB color values.
type MFColor struct {
	Values []Color
}

func (x *MFColor) isValue() {}

func (x *MFColor) Type() Type { return TypeMFColor }

func (x *MFColor) Clone() Value { return &MFColor{Values: slices.Clone(x.Values)} }

func (x *MFColor) Assign(v Value) error {
	o, ok := v.(*MFColor)
	if !ok {
		return mismatch(TypeMFColor, v)
	}
	x.Values = slices.Clone(o.Values)
	return nil
}

func (x *MFColor) Equal(v Value) bool {
	o, ok := v.(*MFColor)
	return ok && slices.Equal(x.Values, o.Values)
}

func (x *MFColor) String() string { return formatArray(x.Values, formatColor) }

func (x *MFColor) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// MFColorRGBA is an array of RGBA color values.
type MFColorRGBA struct {
	Values []ColorRGBA
}

func (x *MFColorRGBA) isValue() {}

func (x *MFColorRGBA) Type() Type { return TypeMFColorRGBA }

func (x *MFColorRGBA) Clone() Value { return &MFColorRGBA{Values: slices.Clone(x.Values)} }

func (x *MFColorRGBA) Assign(v Value) error {
	o, ok := v.(*MFColorRGBA)
	if !ok {
		return mismatch(TypeMFColorRGBA, v)
	}
	x.Values = slices.Clone(o.Values)
	return nil
}

func (x *MFColorRGBA) Equal(v Value) bool {
	o, ok := v.(*MFColorRGBA)
	return ok && slices.Equal(x.Values, o.Values)
}

func (x *MFColorRGBA) String() string { return formatArray(x.Values, formatColorRGBA) }

func (x *MFColorRGBA) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// MFFloat is an array of single precision float values.
type MFFloat struct {
	Values []float32
}

func (x *MFFloat) isValue() {}

func (x *MFFloat) Type() Type { return TypeMFFloat }

func (x *MFFloat) Clone() Value { return &MFFloat{Values: slices.Clone(x.Values)} }

func (x *MFFloat) Assign(v Value) error {
	o, ok := v.(*MFFloat)
	if !ok {
		return mismatch(TypeMFFloat, v)
	}
	x.Values = slices.Clone(o.Values)
	return nil
}

func (x *MFFloat) Equal(v Value) bool {
	o, ok := v.(*MFFloat)
	return ok && slices.Equal(x.Values, o.Values)
}

func (x *MFFloat) String() string { return formatArray(x.Values, formatFloat) }

func (x *MFFloat) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// MFDouble is an array of double precision float values.
type MFDouble struct {
	Values []float64
}

func (x *MFDouble) isValue() {}

func (x *MFDouble) Type() Type { return TypeMFDouble }

func (x *MFDouble) Clone() Value { return &MFDouble{Values: slices.Clone(x.Values)} }

func (x *MFDouble) Assign(v Value) error {
	o, ok := v.(*MFDouble)
	if !ok {
		return mismatch(TypeMFDouble, v)
	}
	x.Values = slices.Clone(o.Values)
	return nil
}

func (x *MFDouble) Equal(v Value) bool {
	o, ok := v.(*MFDouble)
	return ok && slices.Equal(x.Values, o.Values)
}

func (x *MFDouble) String() string { return formatArray(x.Values, formatDouble) }

func (x *MFDouble) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// MFInt32 is an array of 32-bit integer values.
type MFInt32 struct {
	Values []int32
}

func (x *MFInt32) isValue() {}

func (x *MFInt32) Type() Type { return TypeMFInt32 }

func (x *MFInt32) Clone() Value { return &MFInt32{Values: slices.Clone(x.Values)} }

func (x *MFInt32) Assign(v Value) error {
	o, ok := v.(*MFInt32)
	if !ok {
		return mismatch(TypeMFInt32, v)
	}
	x.Values = slices.Clone(o.Values)
	return nil
}

func (x *MFInt32) Equal(v Value) bool {
	o, ok := v.(*MFInt32)
	return ok && slices.Equal(x.Values, o.Values)
}

func (x *MFInt32) String() string { return formatArray(x.Values, formatInt32) }

func (x *MFInt32) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// MFNode is an array of possibly null node reference values.
type MFNode struct {
	Values []Node
}

func (x *MFNode) isValue() {}

func (x *MFNode) Type() Type { return TypeMFNode }

func (x *MFNode) Clone() Value { return &MFNode{Values: slices.Clone(x.Values)} }

func (x *MFNode) Assign(v Value) error {
	o, ok := v.(*MFNode)
	if !ok {
		return mismatch(TypeMFNode, v)
	}
	x.Values = slices.Clone(o.Values)
	return nil
}

func (x *MFNode) Equal(v Value) bool {
	o, ok := v.(*MFNode)
	return ok && slices.Equal(x.Values, o.Values)
}

func (x *MFNode) String() string { return formatArray(x.Values, formatNode) }

func (x *MFNode) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// MFRotation is an array of axis-angle rotation values.
type MFRotation struct {
	Values []Rotation
}

func (x *MFRotation) isValue() {}

func (x *MFRotation) Type() Type { return TypeMFRotation }

func (x *MFRotation) Clone() Value { return &MFRotation{Values: slices.Clone(x.Values)} }

func (x *MFRotation) Assign(v Value) error {
	o, ok := v.(*MFRotation)
	if !ok {
		return mismatch(TypeMFRotation, v)
	}
	x.Values = slices.Clone(o.Values)
	return nil
}

func (x *MFRotation) Equal(v Value) bool {
	o, ok := v.(*MFRotation)
	return ok && slices.EqualFunc(x.Values, o.Values, Rotation.Equal)
}

func (x *MFRotation) String() string { return formatArray(x.Values, formatRotation) }

func (x *MFRotation) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// MFString is an array of string values.
type MFString struct {
	Values []string
}

func (x *MFString) isValue() {}

func (x *MFString) Type() Type { return TypeMFString }

func (x *MFString) Clone() Value { return &MFString{Values: slices.Clone(x.Values)} }

func (x *MFString) Assign(v Value) error {
	o, ok := v.(*MFString)
	if !ok {
		return mismatch(TypeMFString, v)
	}
	x.Values = slices.Clone(o.Values)
	return nil
}

func (x *MFString) Equal(v Value) bool {
	o, ok := v.(*MFString)
	return ok && slices.Equal(x.Values, o.Values)
}

func (x *MFString) String() string { return formatArray(x.Values, formatString) }

func (x *MFString) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// MFTime is an array of time values, in seconds.
type MFTime struct {
	Values []float64
}

func (x *MFTime) isValue() {}

func (x *MFTime) Type() Type { return TypeMFTime }

func (x *MFTime) Clone() Value { return &MFTime{Values: slices.Clone(x.Values)} }

func (x *MFTime) Assign(v Value) error {
	o, ok := v.(*MFTime)
	if !ok {
		return mismatch(TypeMFTime, v)
	}
	x.Values = slices.Clone(o.Values)
	return nil
}

func (x *MFTime) Equal(v Value) bool {
	o, ok := v.(*MFTime)
	return ok && slices.Equal(x.Values, o.Values)
}

func (x *MFTime) String() string { return formatArray(x.Values, formatDouble) }

func (x *MFTime) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// MFVec2f is an array of single precision 2D vector values.
type MFVec2f struct {
	Values []math32.Vector2
}

func (x *MFVec2f) isValue() {}

func (x *MFVec2f) Type() Type { return TypeMFVec2f }

func (x *MFVec2f) Clone() Value { return &MFVec2f{Values: slices.Clone(x.Values)} }

func (x *MFVec2f) Assign(v Value) error {
	o, ok := v.(*MFVec2f)
	if !ok {
		return mismatch(TypeMFVec2f, v)
	}
	x.Values = slices.Clone(o.Values)
	return nil
}

func (x *MFVec2f) Equal(v Value) bool {
	o, ok := v.(*MFVec2f)
	return ok && slices.Equal(x.Values, o.Values)
}

func (x *MFVec2f) String() string { return formatArray(x.Values, formatVec2f) }

func (x *MFVec2f) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// MFVec2d is an array of double precision 2D vector values.
type MFVec2d struct {
	Values []Vec2d
}

func (x *MFVec2d) isValue() {}

func (x *MFVec2d) Type() Type { return TypeMFVec2d }

func (x *MFVec2d) Clone() Value { return &MFVec2d{Values: slices.Clone(x.Values)} }

func (x *MFVec2d) Assign(v Value) error {
	o, ok := v.(*MFVec2d)
	if !ok {
		return mismatch(TypeMFVec2d, v)
	}
	x.Values = slices.Clone(o.Values)
	return nil
}

func (x *MFVec2d) Equal(v Value) bool {
	o, ok := v.(*MFVec2d)
	return ok && slices.Equal(x.Values, o.Values)
}

func (x *MFVec2d) String() string { return formatArray(x.Values, formatVec2d) }

func (x *MFVec2d) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// MFVec3f is an array of single precision 3D vector values.
type MFVec3f struct {
	Values []math32.Vector3
}

func (x *MFVec3f) isValue() {}

func (x *MFVec3f) Type() Type { return TypeMFVec3f }

func (x *MFVec3f) Clone() Value { return &MFVec3f{Values: slices.Clone(x.Values)} }

func (x *MFVec3f) Assign(v Value) error {
	o, ok := v.(*MFVec3f)
	if !ok {
		return mismatch(TypeMFVec3f, v)
	}
	x.Values = slices.Clone(o.Values)
	return nil
}

func (x *MFVec3f) Equal(v Value) bool {
	o, ok := v.(*MFVec3f)
	return ok && slices.Equal(x.Values, o.Values)
}

func (x *MFVec3f) String() string { return formatArray(x.Values, formatVec3f) }

func (x *MFVec3f) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

// MFVec3d is an array of double precision 3D vector values.
type MFVec3d struct {
	Values []Vec3d
}

func (x *MFVec3d) isValue() {}

func (x *MFVec3d) Type() Type { return TypeMFVec3d }

func (x *MFVec3d) Clone() Value { return &MFVec3d{Values: slices.Clone(x.Values)} }

func (x *MFVec3d) Assign(v Value) error {
	o, ok := v.(*MFVec3d)
	if !ok {
		return mismatch(TypeMFVec3d, v)
	}
	x.Values = slices.Clone(o.Values)
	return nil
}

func (x *MFVec3d) Equal(v Value) bool {
	o, ok := v.(*MFVec3d)
	return ok && slices.Equal(x.Values, o.Values)
}

func (x *MFVec3d) String() string { return formatArray(x.Values, formatVec3d) }

func (x *MFVec3d) Print(w io.Writer) error {
	_, err := io.WriteString(w, x.String())
	return err
}
