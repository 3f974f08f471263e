// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides a set of helper functions for working
// with the reflect package, used mainly for configuration structs.
package reflectx

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"cogentcore.org/vrml/base/errors"
)

// NonPointerValue returns a non-pointer version of the given value.
func NonPointerValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v
}

// SetFromDefaultTags sets the values of fields in the given struct based on
// `default:` default value struct field tags. Nested struct fields are
// handled recursively. Fields without a default tag are left untouched.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return errors.New("reflectx.SetFromDefaultTags: object is nil")
	}
	v := NonPointerValue(reflect.ValueOf(obj))
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: object must be a struct, not %v", v.Kind())
	}
	return setFromDefaultTags(v)
}

func setFromDefaultTags(v reflect.Value) error {
	var errs []error
	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		if f.Type.Kind() == reflect.Struct {
			errs = append(errs, setFromDefaultTags(fv))
			continue
		}
		def, ok := f.Tag.Lookup("default")
		if !ok {
			continue
		}
		if err := SetString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("reflectx.SetFromDefaultTags: field %q: %w", f.Name, err))
		}
	}
	return errors.Join(errs...)
}

// SetString sets the given settable value from its string representation,
// handling basic kinds and types that implement [encoding.TextUnmarshaler].
func SetString(v reflect.Value, s string) error {
	if v.CanAddr() {
		if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return tu.UnmarshalText([]byte(s))
		}
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return fmt.Errorf("unsupported kind %v", v.Kind())
	}
	return nil
}
