// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"fmt"

	"cogentcore.org/vrml/field"
)

// InterfaceKind is the kind of a node [Interface].
type InterfaceKind int32 //enums:enum -transform lower-camel

const (
	// InvalidInterface is the zero InterfaceKind.
	InvalidInterface InterfaceKind = iota

	// EventIn is an input event endpoint.
	EventIn

	// EventOut is an output event endpoint.
	EventOut

	// ExposedField is a field that also implies an eventIn named
	// set_<id> and an eventOut named <id>_changed.
	ExposedField

	// Field is a field that can only be set at creation.
	Field
)

// Interface describes one typed slot of a node: a field, an eventIn,
// an eventOut or an exposedField. Interfaces are immutable values.
type Interface struct {
	Kind      InterfaceKind
	FieldType field.Type
	ID        string
}

// String returns the textual form of the interface,
// for example "exposedField SFVec3f translation".
func (i Interface) String() string {
	return fmt.Sprintf("%v %v %s", i.Kind, i.FieldType, i.ID)
}

// ParseInterface parses the textual form returned by [Interface.String].
func ParseInterface(s string) (Interface, error) {
	var i Interface
	if _, err := fmt.Sscan(s, &i); err != nil {
		return Interface{}, fmt.Errorf("node.ParseInterface: %q: %w", s, err)
	}
	return i, nil
}

// Scan implements [fmt.Scanner], reading the three tokens of an
// interface. On failure i is unchanged.
func (i *Interface) Scan(state fmt.ScanState, verb rune) error {
	var tok [3]string
	for k := range tok {
		b, err := state.Token(true, nil)
		if err != nil {
			return err
		}
		if len(b) == 0 {
			return fmt.Errorf("missing interface token")
		}
		tok[k] = string(b)
	}
	var kind InterfaceKind
	if err := kind.SetString(tok[0]); err != nil || kind == InvalidInterface {
		return fmt.Errorf("%q is not an interface kind", tok[0])
	}
	ft, err := field.ParseType(tok[1])
	if err != nil {
		return err
	}
	*i = Interface{Kind: kind, FieldType: ft, ID: tok[2]}
	return nil
}

// MatchesEventIn returns whether the interface can receive events
// sent to the given id: an eventIn with that id, or an exposedField
// named id or whose implied eventIn set_<name> is id.
func (i Interface) MatchesEventIn(id string) bool {
	switch i.Kind {
	case EventIn:
		return i.ID == id
	case ExposedField:
		return i.ID == id || "set_"+i.ID == id
	}
	return false
}

// MatchesEventOut returns whether the interface can emit events
// from the given id: an eventOut with that id, or an exposedField
// named id or whose implied eventOut <name>_changed is id.
func (i Interface) MatchesEventOut(id string) bool {
	switch i.Kind {
	case EventOut:
		return i.ID == id
	case ExposedField:
		return i.ID == id || i.ID+"_changed" == id
	}
	return false
}

// MatchesExposedField returns whether the interface is an exposedField
// with the given id.
func (i Interface) MatchesExposedField(id string) bool {
	return i.Kind == ExposedField && i.ID == id
}

// MatchesField returns whether the interface is a field with the given id.
func (i Interface) MatchesField(id string) bool {
	return i.Kind == Field && i.ID == id
}

// collides returns whether a and b cannot both be members of an
// [InterfaceSet].
func collides(a, b Interface) bool {
	return a.ID == b.ID || aliases(a, b.ID) || aliases(b, a.ID)
}

// aliases returns whether id is one of the implied event names
// of exposedField i.
func aliases(i Interface, id string) bool {
	return i.Kind == ExposedField && ("set_"+i.ID == id || i.ID+"_changed" == id)
}
