// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"cogentcore.org/vrml/field"
)

// MetatypeID identifies a [Metatype]. It is an absolute URI optionally
// followed by one or more #fragment segments, which name PROTO
// definitions nested inside the document at the URI.
type MetatypeID string

// ParseMetatypeID validates the given metatype id. It returns an error
// matching [ErrInvalidArgument] if s is not an absolute URI followed
// by zero or more nonempty fragments of URI fragment characters.
func ParseMetatypeID(s string) (MetatypeID, error) {
	parts := strings.Split(s, "#")
	u, err := url.Parse(parts[0])
	if err != nil || !u.IsAbs() || strings.ContainsAny(parts[0], " \t\r\n") {
		return "", fmt.Errorf("%w: %q is not an absolute URI", ErrInvalidArgument, parts[0])
	}
	for _, frag := range parts[1:] {
		if !isFragment(frag) {
			return "", fmt.Errorf("%w: %q has an invalid fragment %q", ErrInvalidArgument, s, frag)
		}
	}
	return MetatypeID(s), nil
}

// MustParseMetatypeID is like [ParseMetatypeID] but panics on error.
func MustParseMetatypeID(s string) MetatypeID {
	id, err := ParseMetatypeID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// isFragment returns whether s is a nonempty URI fragment (RFC 3986).
func isFragment(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		case strings.IndexByte("-._~!$&'()*+,;=:@/?", c) >= 0:
		case c == '%':
			if i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2]) {
				return false
			}
			i += 2
		default:
			return false
		}
	}
	return true
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// Base returns the URI part of the id, without fragments.
func (id MetatypeID) Base() string {
	base, _, _ := strings.Cut(string(id), "#")
	return base
}

// Fragments returns the fragment segments of the id.
func (id MetatypeID) Fragments() []string {
	parts := strings.Split(string(id), "#")
	return parts[1:]
}

// Child returns the id of the PROTO named fragment nested in id.
func (id MetatypeID) Child(fragment string) (MetatypeID, error) {
	return ParseMetatypeID(string(id) + "#" + fragment)
}

func (id MetatypeID) String() string { return string(id) }

// Metatype is a node class: it describes the interfaces a node
// implementation supports and produces the [Type]s that create nodes.
// A Metatype belongs to exactly one [Browser].
//
// The behavior of the nodes is installed by the hook fields, which
// should be set before the first node is created.
type Metatype struct {
	id      MetatypeID
	browser Browser

	// Supported is the set of all interfaces that nodes of this
	// metatype can have.
	Supported InterfaceSet

	// Defaults are the default values of fields and exposedFields,
	// keyed by interface id. Missing entries default to the zero
	// value of the field type.
	Defaults map[string]field.Value

	// Init, if set, is called on every new node after its fields are
	// set. It installs event handlers and capabilities.
	Init func(n *Node)

	// Initialize, if set, is called when a node is initialized,
	// before its child nodes are.
	Initialize func(n *Node, ts float64)

	// Shutdown, if set, is called when a node is shut down,
	// before its child nodes are.
	Shutdown func(n *Node, ts float64)

	// MakeType, if set, creates the [Type] for [Metatype.CreateType]
	// after the interfaces have been checked. Otherwise a default
	// [Type] is made.
	MakeType func(mt *Metatype, id string, interfaces InterfaceSet) (*Type, error)

	mu    sync.Mutex
	types map[string]*Type
}

// NewMetatype returns a new metatype with the given id, owned by the
// given browser and supporting the given interfaces.
func NewMetatype(id MetatypeID, browser Browser, supported InterfaceSet) *Metatype {
	return &Metatype{id: id, browser: browser, Supported: supported}
}

// ID returns the id of the metatype.
func (mt *Metatype) ID() MetatypeID { return mt.id }

// Browser returns the browser that owns the metatype.
func (mt *Metatype) Browser() Browser { return mt.browser }

// CreateType returns a node type with the given id and interfaces.
// Every interface must be supported by the metatype; otherwise an
// [*UnsupportedInterfaceError] naming the first offending interface
// is returned.
//
// Types are cached: repeated calls with the same id and interfaces
// return the same *Type.
func (mt *Metatype) CreateType(id string, interfaces InterfaceSet) (*Type, error) {
	for i := range interfaces.All() {
		if !mt.Supported.Contains(i) {
			return nil, unsupported(string(mt.id), i.Kind, i.FieldType, i.ID, mt.Supported)
		}
	}
	key := id + "\x00" + interfaces.String()
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if t, ok := mt.types[key]; ok {
		return t, nil
	}
	var t *Type
	if mt.MakeType != nil {
		var err error
		t, err = mt.MakeType(mt, id, interfaces)
		if err != nil {
			return nil, err
		}
	} else {
		t = NewType(mt, id, interfaces)
	}
	if mt.types == nil {
		mt.types = map[string]*Type{}
	}
	mt.types[key] = t
	return t, nil
}

// CreateSupportedType returns the type with the given id and all
// supported interfaces.
func (mt *Metatype) CreateSupportedType(id string) (*Type, error) {
	return mt.CreateType(id, mt.Supported)
}

// defaultValue returns a new value for the given field interface.
func (mt *Metatype) defaultValue(i Interface) field.Value {
	if v, ok := mt.Defaults[i.ID]; ok && v.Type() == i.FieldType {
		return v.Clone()
	}
	return field.New(i.FieldType)
}
