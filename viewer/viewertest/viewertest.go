// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewertest provides a [viewer.Viewer] that records calls,
// for testing node rendering.
package viewertest

import (
	"fmt"
	"sync"

	"cogentcore.org/vrml/field"
	"cogentcore.org/vrml/math32"
	"cogentcore.org/vrml/viewer"
)

var _ viewer.Viewer = (*Recorder)(nil)

// Recorder is a [viewer.Viewer] that records every call in order and
// hands out increasing handles for uploaded objects and textures.
type Recorder struct {
	mu       sync.Mutex
	calls    []string
	next     uint64
	Material viewer.Material

	// Transforms is the current transformation stack.
	Transforms []math32.Matrix4
}

// Calls returns the recorded calls, such as "InsertBox 1".
func (r *Recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// Count returns the number of recorded calls of the given method.
func (r *Recorder) Count(method string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		var m string
		fmt.Sscan(c, &m)
		if m == method {
			n++
		}
	}
	return n
}

// Reset clears the recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

func (r *Recorder) record(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *Recorder) handle() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	return r.next
}

func (r *Recorder) InsertReference(o viewer.Object) { r.record("InsertReference %d", o) }

func (r *Recorder) RemoveObject(o viewer.Object) { r.record("RemoveObject %d", o) }

func (r *Recorder) InsertTextureReference(t viewer.TextureObject) {
	r.record("InsertTextureReference %d", t)
}

func (r *Recorder) RemoveTexture(t viewer.TextureObject) { r.record("RemoveTexture %d", t) }

func (r *Recorder) InsertBox(size math32.Vector3) viewer.Object {
	o := viewer.Object(r.handle())
	r.record("InsertBox %d %v", o, size)
	return o
}

func (r *Recorder) InsertSphere(radius float32) viewer.Object {
	o := viewer.Object(r.handle())
	r.record("InsertSphere %d %g", o, radius)
	return o
}

func (r *Recorder) InsertTexture(img field.Image, repeatS, repeatT bool) viewer.TextureObject {
	t := viewer.TextureObject(r.handle())
	r.record("InsertTexture %d %dx%dx%d", t, img.Width, img.Height, img.Components)
	return t
}

func (r *Recorder) SetMaterial(m viewer.Material) {
	r.mu.Lock()
	r.Material = m
	r.mu.Unlock()
	r.record("SetMaterial")
}

func (r *Recorder) TransformMatrix(m math32.Matrix4) {
	r.mu.Lock()
	r.Transforms = append(r.Transforms, m)
	r.mu.Unlock()
	r.record("TransformMatrix")
}

func (r *Recorder) PopTransform() {
	r.mu.Lock()
	if len(r.Transforms) > 0 {
		r.Transforms = r.Transforms[:len(r.Transforms)-1]
	}
	r.mu.Unlock()
	r.record("PopTransform")
}

func (r *Recorder) DrawBoundingSphere(s math32.Sphere) { r.record("DrawBoundingSphere") }
