// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package browser

import (
	"fmt"
	"slices"
	"sync"

	"cogentcore.org/vrml/node"
	"cogentcore.org/vrml/viewer"
)

// Scene is a world loaded into a [Browser]. It implements [node.Scene].
type Scene struct {
	browser *Browser
	url     string
	version string
	scope   *node.Scope

	mu          sync.Mutex
	roots       []*node.Node
	initialized bool
}

// NewScene adds a new empty scene for content of the given version
// loaded from url. It returns an error if the browser does not support
// the version.
func (b *Browser) NewScene(url, version string) (*Scene, error) {
	ok, err := b.SupportsVersion(version)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("browser.NewScene: %s: version %s does not satisfy %q", url, version, b.Config.Versions)
	}
	s := &Scene{browser: b, url: url, version: version, scope: node.NewScope(url, nil)}
	b.mu.Lock()
	b.scenes = append(b.scenes, s)
	b.mu.Unlock()
	return s, nil
}

func (s *Scene) Browser() node.Browser { return s.browser }

func (s *Scene) URL() string { return s.url }

// Version returns the content version of the scene.
func (s *Scene) Version() string { return s.version }

// Scope returns the scope of the named nodes of the scene.
func (s *Scene) Scope() *node.Scope { return s.scope }

// AddRoot adds a root node to the scene. If the scene is initialized,
// the node is initialized too.
func (s *Scene) AddRoot(n *node.Node, ts float64) {
	s.mu.Lock()
	s.roots = append(s.roots, n)
	init := s.initialized
	s.mu.Unlock()
	if init {
		n.Initialize(s, ts)
	}
}

// Roots returns the root nodes of the scene.
func (s *Scene) Roots() []*node.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.roots)
}

// Initialize initializes the root nodes and all nodes they reference.
func (s *Scene) Initialize(ts float64) {
	s.mu.Lock()
	s.initialized = true
	s.mu.Unlock()
	for _, n := range s.Roots() {
		n.Initialize(s, ts)
	}
	s.browser.log(s).Info("browser: scene initialized", "roots", len(s.Roots()))
}

// Shutdown shuts down the root nodes and all nodes they reference,
// and removes the scene from the browser.
func (s *Scene) Shutdown(ts float64) {
	s.mu.Lock()
	s.initialized = false
	s.mu.Unlock()
	for _, n := range s.Roots() {
		n.Shutdown(ts)
	}
	b := s.browser
	b.mu.Lock()
	b.scenes = slices.DeleteFunc(b.scenes, func(o *Scene) bool { return o == s })
	b.mu.Unlock()
	b.log(s).Info("browser: scene shut down")
}

// Render renders the root nodes that are child nodes, and then
// clears the modified state of the browser.
func (s *Scene) Render(v viewer.Viewer) {
	cfg := s.browser.Config
	rc := viewer.NewRenderingContext()
	rc.DrawBoundingSpheres = cfg.DrawBoundingSpheres
	rc.Cull = cfg.Cull
	for _, n := range s.Roots() {
		if c, ok := node.Cast[node.ChildNode](n); ok {
			c.RenderChild(v, rc)
		}
	}
	s.browser.SetModified(false)
}
