// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"maps"
	"slices"

	"cogentcore.org/vrml/field"
)

// Type is a node type: a factory for nodes that share an id and an
// interface set, produced by a [Metatype].
type Type struct {
	metatype   *Metatype
	id         string
	interfaces InterfaceSet
}

// NewType returns a new node type of the given metatype. It is
// the default type made by [Metatype.CreateType], which should
// be used instead to check and cache the interfaces.
func NewType(mt *Metatype, id string, interfaces InterfaceSet) *Type {
	return &Type{metatype: mt, id: id, interfaces: interfaces}
}

// Metatype returns the metatype that produced the type.
func (t *Type) Metatype() *Metatype { return t.metatype }

// ID returns the id of the type, which is the node type name
// used in the content format.
func (t *Type) ID() string { return t.id }

// Interfaces returns the interfaces of the type.
func (t *Type) Interfaces() InterfaceSet { return t.interfaces }

// Equal returns whether both types have the same id and interfaces
// and were produced by metatypes with the same id.
func (t *Type) Equal(o *Type) bool {
	if t == o {
		return true
	}
	if t == nil || o == nil {
		return false
	}
	return t.id == o.id && t.metatype.id == o.metatype.id && t.interfaces.Equal(o.interfaces)
}

// fieldInterface returns the field or exposedField with the given id.
func (t *Type) fieldInterface(id string) (Interface, bool) {
	for i := range t.interfaces.All() {
		if i.MatchesField(id) || i.MatchesExposedField(id) {
			return i, true
		}
	}
	return Interface{}, false
}

// CreateNode returns a new node of this type bound to the given scope,
// which may be nil. Fields and exposedFields named in initial are set
// to clones of those values; the others get the metatype defaults.
//
// It returns an [*UnsupportedInterfaceError] if initial names anything
// but a field or exposedField of the type, and a
// [*field.TypeMismatchError] if a value has the wrong type. No node
// is created in either case.
func (t *Type) CreateNode(scope *Scope, initial map[string]field.Value) (*Node, error) {
	for _, id := range slices.Sorted(maps.Keys(initial)) {
		i, ok := t.fieldInterface(id)
		if !ok {
			return nil, unsupported(t.id, Field, field.TypeInvalid, id, t.interfaces)
		}
		if v := initial[id]; field.TypeOf(v) != i.FieldType {
			return nil, &field.TypeMismatchError{Want: i.FieldType, Got: field.TypeOf(v)}
		}
	}
	n := newNode(t, scope)
	for i := range t.interfaces.All() {
		o := opsOf(i.FieldType)
		switch i.Kind {
		case Field, ExposedField:
			var v field.Value
			if iv, ok := initial[i.ID]; ok {
				v = iv.Clone()
			} else {
				v = t.metatype.defaultValue(i)
			}
			n.fields.Set(i.ID, v)
			if i.Kind == ExposedField {
				n.exposed[i.ID] = o.exposedField(n, i.ID, v)
			}
		case EventIn:
			n.eventIns[i.ID] = o.eventIn(n, i.ID)
		case EventOut:
			n.eventOuts[i.ID] = o.eventOut(n, i.ID, t.metatype.defaultValue(i))
		}
	}
	if t.metatype.Init != nil {
		t.metatype.Init(n)
	}
	return n, nil
}
