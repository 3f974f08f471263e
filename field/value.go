// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field provides the typed field values exchanged by scene
// graph nodes: a closed set of single (SF) and array (MF) value types,
// each identified by a [Type] tag.
//
// Values are value types: they are copied with [Value.Clone] and
// overwritten with [Value.Assign], which refuses values of another
// concrete type. The only shared payload is the node referenced by
// [SFNode] and [MFNode] values.
package field

import (
	"fmt"
	"io"

	"cogentcore.org/vrml/base/errors"
)

// Value is the interface implemented by all field values.
// The set of implementations is closed: it is exactly the
// types in this package, one per valid [Type].
type Value interface {
	fmt.Stringer

	// Type returns the constant type tag of the value.
	Type() Type

	// Clone returns a deep copy of the value with the same concrete type.
	Clone() Value

	// Assign copies the given value into this one. It returns a
	// [*TypeMismatchError] without modifying the receiver if the
	// given value is not of the same concrete type.
	Assign(v Value) error

	// Equal returns whether the given value has the same concrete
	// type and the same value. Node references compare by identity
	// and arrays compare elementwise.
	Equal(v Value) bool

	// Print writes the value in the textual encoding of the
	// content format.
	Print(w io.Writer) error

	isValue()
}

// Node is a scene graph node referenced by [SFNode] and [MFNode] values.
// A null reference is a nil Node interface value.
type Node interface {
	// Print writes the node in the textual encoding of the content format.
	Print(w io.Writer) error
}

// ErrTypeMismatch is the condition of a value, or a pair of event
// endpoints, having an incompatible concrete type.
var ErrTypeMismatch = errors.New("field value type mismatch")

// TypeMismatchError is returned when a value of one type is used
// where a value of another type is required.
type TypeMismatchError struct {
	// Want is the required type.
	Want Type

	// Got is the type that was supplied.
	Got Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field value type mismatch: want %v, got %v", e.Want, e.Got)
}

// Is makes [errors.Is] match [ErrTypeMismatch].
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// TypeOf returns the type of v, or [TypeInvalid] if v is nil.
func TypeOf(v Value) Type {
	if v == nil {
		return TypeInvalid
	}
	return v.Type()
}

func mismatch(want Type, got Value) error {
	return &TypeMismatchError{Want: want, Got: TypeOf(got)}
}

// New returns a new default value of the given type.
// It panics if t is not a valid type, since the set of
// types is closed and any other tag is a programming error.
func New(t Type) Value {
	switch t {
	case TypeSFBool:
		return &SFBool{}
	case TypeSFColor:
		return &SFColor{}
	case TypeSFColorRGBA:
		return &SFColorRGBA{}
	case TypeSFFloat:
		return &SFFloat{}
	case TypeSFDouble:
		return &SFDouble{}
	case TypeSFImage:
		return &SFImage{}
	case TypeSFInt32:
		return &SFInt32{}
	case TypeSFNode:
		return &SFNode{}
	case TypeSFRotation:
		return &SFRotation{}
	case TypeSFString:
		return &SFString{}
	case TypeSFTime:
		return &SFTime{}
	case TypeSFVec2f:
		return &SFVec2f{}
	case TypeSFVec2d:
		return &SFVec2d{}
	case TypeSFVec3f:
		return &SFVec3f{}
	case TypeSFVec3d:
		return &SFVec3d{}
	case TypeMFBool:
		return &MFBool{}
	case TypeMFColor:
		return &MFColor{}
	case TypeMFColorRGBA:
		return &MFColorRGBA{}
	case TypeMFFloat:
		return &MFFloat{}
	case TypeMFDouble:
		return &MFDouble{}
	case TypeMFInt32:
		return &MFInt32{}
	case TypeMFNode:
		return &MFNode{}
	case TypeMFRotation:
		return &MFRotation{}
	case TypeMFString:
		return &MFString{}
	case TypeMFTime:
		return &MFTime{}
	case TypeMFVec2f:
		return &MFVec2f{}
	case TypeMFVec2d:
		return &MFVec2d{}
	case TypeMFVec3f:
		return &MFVec3f{}
	case TypeMFVec3d:
		return &MFVec3d{}
	}
	panic(fmt.Sprintf("field.New: invalid field type %v", t))
}

// Nodes returns the non-null nodes referenced by v, which is empty
// unless v is an [SFNode] or [MFNode].
func Nodes(v Value) []Node {
	switch x := v.(type) {
	case *SFNode:
		if x.Value != nil {
			return []Node{x.Value}
		}
	case *MFNode:
		res := make([]Node, 0, len(x.Values))
		for _, n := range x.Values {
			if n != nil {
				res = append(res, n)
			}
		}
		return res
	}
	return nil
}
