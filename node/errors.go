// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"fmt"

	"cogentcore.org/vrml/base/errors"
	"cogentcore.org/vrml/field"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

var (
	// ErrUnsupportedInterface is the condition of a node or node type
	// not having a requested interface. It is matched by every
	// [*UnsupportedInterfaceError].
	ErrUnsupportedInterface = errors.New("unsupported interface")

	// ErrInvalidArgument is returned for malformed textual input
	// such as a bad [MetatypeID].
	ErrInvalidArgument = errors.New("invalid argument")
)

// suggestThreshold is the minimum similarity for [UnsupportedInterfaceError]
// to suggest an existing interface id.
const suggestThreshold = 0.6

// UnsupportedInterfaceError is returned when a node or node type does
// not have a requested interface.
type UnsupportedInterfaceError struct {
	// TypeID is the id of the node type, if known.
	TypeID string

	// Kind is the requested interface kind, or [InvalidInterface]
	// if any kind was acceptable.
	Kind InterfaceKind

	// FieldType is the requested field type, or [field.TypeInvalid]
	// if any type was acceptable.
	FieldType field.Type

	// ID is the requested interface id.
	ID string

	// Suggestion is a similar interface id that does exist, if any.
	Suggestion string
}

func (e *UnsupportedInterfaceError) Error() string {
	what := "interface"
	if e.Kind != InvalidInterface {
		what = e.Kind.String()
	}
	if e.FieldType != field.TypeInvalid {
		what += " " + e.FieldType.String()
	}
	msg := fmt.Sprintf("unsupported interface: %s %q", what, e.ID)
	if e.TypeID != "" {
		msg = fmt.Sprintf("unsupported interface: node type %s has no %s %q", e.TypeID, what, e.ID)
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// Is makes [errors.Is] match [ErrUnsupportedInterface].
func (e *UnsupportedInterfaceError) Is(target error) bool {
	return target == ErrUnsupportedInterface
}

// unsupported returns an [*UnsupportedInterfaceError] for the given
// request, suggesting the member of set whose id is most similar.
func unsupported(typeID string, kind InterfaceKind, ft field.Type, id string, set InterfaceSet) *UnsupportedInterfaceError {
	e := &UnsupportedInterfaceError{TypeID: typeID, Kind: kind, FieldType: ft, ID: id}
	lev := metrics.NewLevenshtein()
	best := suggestThreshold
	for i := range set.All() {
		if sim := strutil.Similarity(id, i.ID, lev); sim >= best {
			best = sim
			e.Suggestion = i.ID
		}
	}
	return e
}
