// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums defines the [Enum] interface and provides the
// helper functions used by the generated enum methods (enumgen.go
// files) to implement it.
package enums

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Enum is the interface that all enum types satisfy.
// Enum types must be convertable to strings and int64s,
// must be able to return a description of their value,
// must be able to report if they are valid, and must
// be able to return all possible enum values for their type.
type Enum interface {
	fmt.Stringer

	// Int64 returns the enum value as an int64.
	Int64() int64

	// Desc returns the description of the enum value.
	Desc() string

	// Values returns all possible values this
	// enum type has.
	Values() []Enum
}

// EnumSetter is an expanded interface that all pointers
// to enum types satisfy. Pointers to enum types must
// satisfy all of the methods of [Enum], and must also
// be settable from strings and int64s.
type EnumSetter interface {
	Enum

	// SetString sets the enum value from its string representation,
	// and returns an error if the string is invalid.
	SetString(s string) error

	// SetInt64 sets the enum value from an int64.
	SetInt64(i int64)
}

// String returns the string representation of the given
// enum value with the given map.
func String[T constraints.Integer](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the given enum value from its string representation,
// the map from enum names to values, and the name of the enum type,
// which is used for the error message. Matching is case-sensitive.
func SetString[T constraints.Integer](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%q is not a valid value for type %s", s, typeName)
}

// Desc returns the description of the given enum value.
// If it has no description, it returns the string of the value.
func Desc[T constraints.Integer](i T, descMap map[T]string, nameMap map[T]string) string {
	if str, ok := descMap[i]; ok && str != "" {
		return str
	}
	return String(i, nameMap)
}

// Values returns the given values as [Enum]s.
func Values[T Enum](in []T) []Enum {
	res := make([]Enum, len(in))
	for i, v := range in {
		res[i] = v
	}
	return res
}

// UnmarshalText sets the given enum value from its text representation,
// returning an error naming the enum type if the text is invalid.
func UnmarshalText[T EnumSetter](i T, text []byte, typeName string) error {
	if err := i.SetString(string(text)); err != nil {
		return fmt.Errorf("%s.UnmarshalText: %w", typeName, err)
	}
	return nil
}
