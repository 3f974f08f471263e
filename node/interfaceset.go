// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// InterfaceSet is a set of interfaces ordered by id. No two members
// collide: ids are unique, and an exposedField named zzz also reserves
// the names set_zzz and zzz_changed. The zero value is an empty set.
type InterfaceSet struct {
	list []Interface
}

// NewInterfaceSet returns a set holding the given interfaces.
// It returns an error if any two of them collide.
func NewInterfaceSet(ifaces ...Interface) (InterfaceSet, error) {
	var s InterfaceSet
	for _, i := range ifaces {
		if err := s.Add(i); err != nil {
			return InterfaceSet{}, err
		}
	}
	return s, nil
}

// MustInterfaceSet is like [NewInterfaceSet] but panics on a collision.
// It is intended for static node type declarations.
func MustInterfaceSet(ifaces ...Interface) InterfaceSet {
	s, err := NewInterfaceSet(ifaces...)
	if err != nil {
		panic(err)
	}
	return s
}

// Add adds the given interface to the set. It returns an error if the
// interface collides with a member, without modifying the set.
func (s *InterfaceSet) Add(i Interface) error {
	if i.Kind == InvalidInterface || !i.FieldType.IsValid() || i.ID == "" {
		return fmt.Errorf("node.InterfaceSet.Add: invalid interface %q", i)
	}
	for _, o := range s.list {
		if collides(o, i) {
			return fmt.Errorf("node.InterfaceSet.Add: interface %q conflicts with %q", i, o)
		}
	}
	idx, _ := slices.BinarySearchFunc(s.list, i.ID, func(e Interface, id string) int {
		return cmp.Compare(e.ID, id)
	})
	s.list = slices.Insert(slices.Clip(s.list), idx, i)
	return nil
}

// Len returns the number of interfaces in the set.
func (s InterfaceSet) Len() int {
	return len(s.list)
}

// All returns an iterator over the interfaces in id order.
func (s InterfaceSet) All() iter.Seq[Interface] {
	return slices.Values(s.list)
}

// Contains returns whether the set has a member equal to i.
func (s InterfaceSet) Contains(i Interface) bool {
	return slices.Contains(s.list, i)
}

// Equal returns whether both sets have the same members.
func (s InterfaceSet) Equal(o InterfaceSet) bool {
	return slices.Equal(s.list, o.list)
}

// IsSubsetOf returns whether every member of s is a member of o.
func (s InterfaceSet) IsSubsetOf(o InterfaceSet) bool {
	for _, i := range s.list {
		if !o.Contains(i) {
			return false
		}
	}
	return true
}

// IDs returns the ids of the interfaces in order.
func (s InterfaceSet) IDs() []string {
	ids := make([]string, len(s.list))
	for k, i := range s.list {
		ids[k] = i.ID
	}
	return ids
}

func (s InterfaceSet) String() string {
	strs := make([]string, len(s.list))
	for k, i := range s.list {
		strs[k] = i.String()
	}
	return "[" + strings.Join(strs, ", ") + "]"
}

// FindInterface returns the interface of the set that the given id
// refers to. An exact field or exposedField match is preferred; failing
// that, an eventIn match and then an eventOut match are attempted using
// the set_ and _changed naming conventions of exposedFields.
func FindInterface(s InterfaceSet, id string) (Interface, bool) {
	matchers := []func(Interface) bool{
		func(i Interface) bool { return i.MatchesField(id) || i.MatchesExposedField(id) },
		func(i Interface) bool { return i.MatchesEventIn(id) },
		func(i Interface) bool { return i.MatchesEventOut(id) },
	}
	for _, match := range matchers {
		if k := slices.IndexFunc(s.list, match); k >= 0 {
			return s.list[k], true
		}
	}
	return Interface{}, false
}
