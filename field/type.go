// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

//go:generate core generate

import (
	"fmt"
)

// Type is the type tag of a field value. Every concrete [Value]
// reports one constant Type, and the set of types is closed.
type Type int32 //enums:enum -trim-prefix Type

const (
	// TypeInvalid is the zero Type; it does not name a value type.
	TypeInvalid Type = iota

	// TypeSFBool is a single boolean.
	TypeSFBool

	// TypeSFColor is a single RGB color.
	TypeSFColor

	// TypeSFColorRGBA is a single RGBA color.
	TypeSFColorRGBA

	// TypeSFFloat is a single 32-bit float.
	TypeSFFloat

	// TypeSFDouble is a single 64-bit float.
	TypeSFDouble

	// TypeSFImage is a single pixel image.
	TypeSFImage

	// TypeSFInt32 is a single 32-bit integer.
	TypeSFInt32

	// TypeSFNode is a single node reference.
	TypeSFNode

	// TypeSFRotation is a single axis-angle rotation.
	TypeSFRotation

	// TypeSFString is a single string.
	TypeSFString

	// TypeSFTime is a single time in seconds.
	TypeSFTime

	// TypeSFVec2f is a single 2D float32 vector.
	TypeSFVec2f

	// TypeSFVec2d is a single 2D float64 vector.
	TypeSFVec2d

	// TypeSFVec3f is a single 3D float32 vector.
	TypeSFVec3f

	// TypeSFVec3d is a single 3D float64 vector.
	TypeSFVec3d

	// TypeMFBool is an array of booleans.
	TypeMFBool

	// TypeMFColor is an array of RGB colors.
	TypeMFColor

	// TypeMFColorRGBA is an array of RGBA colors.
	TypeMFColorRGBA

	// TypeMFFloat is an array of 32-bit floats.
	TypeMFFloat

	// TypeMFDouble is an array of 64-bit floats.
	TypeMFDouble

	// TypeMFInt32 is an array of 32-bit integers.
	TypeMFInt32

	// TypeMFNode is an array of node references.
	TypeMFNode

	// TypeMFRotation is an array of rotations.
	TypeMFRotation

	// TypeMFString is an array of strings.
	TypeMFString

	// TypeMFTime is an array of times.
	TypeMFTime

	// TypeMFVec2f is an array of 2D float32 vectors.
	TypeMFVec2f

	// TypeMFVec2d is an array of 2D float64 vectors.
	TypeMFVec2d

	// TypeMFVec3f is an array of 3D float32 vectors.
	TypeMFVec3f

	// TypeMFVec3d is an array of 3D float64 vectors.
	TypeMFVec3d
)

// ParseType returns the Type named by the given textual token,
// such as "SFBool". Matching is case-sensitive, and an unknown
// token (including "Invalid") returns an error.
func ParseType(token string) (Type, error) {
	var t Type
	if err := t.SetString(token); err != nil {
		return TypeInvalid, err
	}
	if t == TypeInvalid {
		return TypeInvalid, fmt.Errorf("%q is not a valid value for type Type", token)
	}
	return t, nil
}

// Scan implements [fmt.Scanner], reading one type token. A token that
// does not name a type is reported as a scan error and leaves t unchanged.
func (t *Type) Scan(state fmt.ScanState, verb rune) error {
	tok, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	pt, err := ParseType(string(tok))
	if err != nil {
		return err
	}
	*t = pt
	return nil
}

// IsValid returns whether t names a value type.
func (t Type) IsValid() bool {
	return t > TypeInvalid && t < TypeN
}

// IsMulti returns whether t is an array (MF) type.
func (t Type) IsMulti() bool {
	return t >= TypeMFBool && t < TypeN
}

// IsNode returns whether t is [TypeSFNode] or [TypeMFNode].
func (t Type) IsNode() bool {
	return t == TypeSFNode || t == TypeMFNode
}

// Multi returns the array type whose elements are of single type t,
// or [TypeInvalid] if there is none (SFImage has no array type).
func (t Type) Multi() Type {
	if mt, ok := singleToMulti[t]; ok {
		return mt
	}
	return TypeInvalid
}

// Single returns the element type of array type t,
// or [TypeInvalid] if t is not an array type.
func (t Type) Single() Type {
	for st, mt := range singleToMulti {
		if mt == t {
			return st
		}
	}
	return TypeInvalid
}

var singleToMulti = map[Type]Type{
	TypeSFBool:      TypeMFBool,
	TypeSFColor:     TypeMFColor,
	TypeSFColorRGBA: TypeMFColorRGBA,
	TypeSFFloat:     TypeMFFloat,
	TypeSFDouble:    TypeMFDouble,
	TypeSFInt32:     TypeMFInt32,
	TypeSFNode:      TypeMFNode,
	TypeSFRotation:  TypeMFRotation,
	TypeSFString:    TypeMFString,
	TypeSFTime:      TypeMFTime,
	TypeSFVec2f:     TypeMFVec2f,
	TypeSFVec2d:     TypeMFVec2d,
	TypeSFVec3f:     TypeMFVec3f,
	TypeSFVec3d:     TypeMFVec3d,
}
