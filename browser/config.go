// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package browser

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/vrml/base/errors"
	"cogentcore.org/vrml/base/iox/tomlx"
	"cogentcore.org/vrml/base/iox/yamlx"
	"cogentcore.org/vrml/base/reflectx"
	"github.com/jinzhu/copier"
	"github.com/mitchellh/go-homedir"
)

// Config is the configuration of a [Browser].
type Config struct {

	// LogLevel is the minimum level of log messages to show.
	LogLevel slog.Level `default:"WARN" yaml:"LogLevel"`

	// Color is whether to color log levels on terminals.
	Color bool `default:"true" yaml:"Color"`

	// Versions is the semantic version constraint that the versions
	// of loaded content must satisfy.
	Versions string `default:">= 2.0, < 4.0" yaml:"Versions"`

	// DrawBoundingSpheres is whether to draw the bounding spheres
	// of grouping nodes for debugging.
	DrawBoundingSpheres bool `yaml:"DrawBoundingSpheres"`

	// Cull is whether to skip rendering geometry outside of the view.
	Cull bool `default:"true" yaml:"Cull"`
}

// NewConfig returns a new config with default values.
func NewConfig() *Config {
	c := &Config{}
	errors.Log(reflectx.SetFromDefaultTags(c))
	return c
}

// OpenConfig returns the config in the given file, with defaults for
// the settings it does not have. The format is TOML or YAML according
// to the file extension. A leading ~ is expanded to the home directory.
func OpenConfig(filename string) (*Config, error) {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	c := NewConfig()
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".toml":
		err = tomlx.Open(c, fn)
	case ".yaml", ".yml":
		err = yamlx.Open(c, fn)
	default:
		return nil, fmt.Errorf("browser.OpenConfig: unknown config format %q", filepath.Ext(fn))
	}
	if err != nil {
		return nil, fmt.Errorf("browser.OpenConfig: %w", err)
	}
	return c, nil
}

// Save saves the config to the given file, in the format given by
// the file extension.
func (c *Config) Save(filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".toml":
		return tomlx.Save(c, fn)
	case ".yaml", ".yml":
		return yamlx.Save(c, fn)
	}
	return fmt.Errorf("browser.Config.Save: unknown config format %q", filepath.Ext(fn))
}

// Clone returns a copy of the config.
func (c *Config) Clone() *Config {
	cc := &Config{}
	errors.Log(copier.Copy(cc, c))
	return cc
}
