// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

// Browser is the host of the scene graph, which owns the metatypes
// and provides global services to the nodes.
type Browser interface {
	// Changes returns the queue of modified nodes.
	Changes() *Changes

	// FlagsNeedUpdating returns whether cached node flags such as
	// bounding volume dirtiness must be recomputed before being read.
	FlagsNeedUpdating() bool

	// SetFlagsNeedUpdating records that cached node flags must be
	// recomputed.
	SetFlagsNeedUpdating()

	// UpdateFlags recomputes the cached node flags of all scenes.
	UpdateFlags()
}

// Scene is a loaded world or PROTO instance, in which nodes are initialized.
type Scene interface {
	// Browser returns the browser of the scene.
	Browser() Browser

	// URL returns the URL the scene was loaded from.
	URL() string
}
