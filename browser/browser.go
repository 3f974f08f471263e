// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package browser provides a minimal host for the scene graph:
// it owns the node metatypes and the loaded scenes, tracks modified
// nodes and recomputes cached node flags. It is also the diagnostic
// boundary for events from outside the graph.
package browser

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"cogentcore.org/vrml/base/errors"
	"cogentcore.org/vrml/base/keylist"
	"cogentcore.org/vrml/base/logx"
	"cogentcore.org/vrml/field"
	"cogentcore.org/vrml/node"
	"github.com/Masterminds/semver/v3"
)

// Browser is the host of a set of scenes. It implements [node.Browser].
type Browser struct {
	// Config is the configuration the browser was created with.
	Config *Config

	versions *semver.Constraints
	changes  node.Changes

	mu                sync.Mutex
	metatypes         *keylist.List[node.MetatypeID, *node.Metatype]
	scenes            []*Scene
	modified          bool
	flagsNeedUpdating bool
}

// New returns a new browser with the given config, or the default
// config if it is nil. It sets the log level and color of [logx]
// from the config.
func New(cfg *Config) (*Browser, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	versions, err := semver.NewConstraint(cfg.Versions)
	if err != nil {
		return nil, fmt.Errorf("browser.New: invalid Versions %q: %w", cfg.Versions, err)
	}
	logx.UserLevel = cfg.LogLevel
	logx.UseColor = cfg.Color
	return &Browser{
		Config:    cfg,
		versions:  versions,
		metatypes: keylist.New[node.MetatypeID, *node.Metatype](),
	}, nil
}

// AddMetatype registers the given metatype. It returns an error if a
// metatype with the same id is already registered.
func (b *Browser) AddMetatype(mt *node.Metatype) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.metatypes.Add(mt.ID(), mt); err != nil {
		return fmt.Errorf("browser.AddMetatype: %w", err)
	}
	return nil
}

// Metatype returns the metatype with the given id, or nil.
func (b *Browser) Metatype(id node.MetatypeID) *node.Metatype {
	b.mu.Lock()
	defer b.mu.Unlock()
	mt, _ := b.metatypes.AtTry(id)
	return mt
}

// HasMetatype returns whether a metatype with the given id is registered.
func (b *Browser) HasMetatype(id node.MetatypeID) bool {
	return b.Metatype(id) != nil
}

// Metatypes returns the registered metatypes in registration order.
func (b *Browser) Metatypes() []*node.Metatype {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.metatypes.Values)
}

// SupportsVersion returns whether content of the given version, such as
// "2.0" for VRML97 or "3.3" for X3D, satisfies [Config.Versions].
func (b *Browser) SupportsVersion(version string) (bool, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, fmt.Errorf("browser.SupportsVersion: %w", err)
	}
	return b.versions.Check(v), nil
}

// Changes returns the queue of modified nodes.
func (b *Browser) Changes() *node.Changes {
	return &b.changes
}

// Modified returns whether anything changed since the last render,
// which means that a new frame is needed.
func (b *Browser) Modified() bool {
	b.mu.Lock()
	m := b.modified
	b.mu.Unlock()
	return m || b.changes.Pending() > 0
}

// SetModified requests a new frame, or with false clears the changes
// once a frame has been rendered.
func (b *Browser) SetModified(modified bool) {
	b.mu.Lock()
	b.modified = modified
	b.mu.Unlock()
	if !modified {
		b.changes.Drain()
	}
}

// FlagsNeedUpdating returns whether [Browser.UpdateFlags] must be
// called before cached node flags are read.
func (b *Browser) FlagsNeedUpdating() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flagsNeedUpdating
}

func (b *Browser) SetFlagsNeedUpdating() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.flagsNeedUpdating = true
}

// UpdateFlags propagates the bounding volume flags of the nodes of all
// scenes to their ancestors.
func (b *Browser) UpdateFlags() {
	b.mu.Lock()
	b.flagsNeedUpdating = false
	scenes := slices.Clone(b.scenes)
	b.mu.Unlock()
	var roots []*node.Node
	for _, s := range scenes {
		roots = append(roots, s.Roots()...)
	}
	node.UpdateBoundingVolumeFlags(roots...)
}

// Scenes returns the scenes of the browser.
func (b *Browser) Scenes() []*Scene {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.scenes)
}

// SendEvent delivers v to the given eventIn of n. Events sent this way
// come from outside the graph, such as from scripts, so an event that
// cannot be delivered is logged and skipped. It returns whether the
// event was delivered.
func (b *Browser) SendEvent(n *node.Node, eventIn string, v field.Value, ts float64) bool {
	err := node.SendEvent(n, eventIn, v, ts)
	if err == nil {
		return true
	}
	if !node.IsRecoverable(err) {
		panic(err)
	}
	errors.Log(err)
	return false
}

// log returns the logger for the given scene.
func (b *Browser) log(s *Scene) *slog.Logger {
	return slog.With("url", s.url)
}
