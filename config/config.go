// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config has the viewer startup configuration, loaded from
// an optional TOML file and command-line flags.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/polyview/polyview/base/errors"
	"github.com/polyview/polyview/view"
)

// Config is the viewer startup configuration.
type Config struct {
	// Title is the window title.
	Title string `toml:"title"`

	// Width and Height are the initial window size in screen
	// coordinates.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Sides is the initial number of polygon sides.
	Sides int `toml:"sides"`

	// Style is the initial shape, polygon or cube.
	Style string `toml:"style"`

	// Shader is the initial shader pipeline, main or challenge.
	Shader string `toml:"shader"`

	// Scale is the initial interface scale factor.
	Scale float32 `toml:"scale"`
}

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Title:  "Polyview",
		Width:  1360,
		Height: 768,
		Sides:  6,
		Style:  "polygon",
		Shader: view.ShaderMain,
		Scale:  1,
	}
}

// Open loads the configuration from the given TOML file over the
// defaults.
func Open(file string) (*Config, error) {
	cfg := Defaults()
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Log(err)
	}
	if err := toml.Unmarshal(b, cfg); err != nil {
		return nil, errors.Log(fmt.Errorf("config: %s: %w", file, err))
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Log(err)
	}
	return cfg, nil
}

// Validate returns an error for out-of-range values. Invalid
// configurations are rejected rather than silently clamped.
func (cfg *Config) Validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Sides < 3 {
		return fmt.Errorf("config: sides must be at least 3, got %d", cfg.Sides)
	}
	switch cfg.Style {
	case "polygon", "cube":
	default:
		return fmt.Errorf("config: unknown style %q", cfg.Style)
	}
	switch cfg.Shader {
	case view.ShaderMain, view.ShaderChallenge:
	default:
		return fmt.Errorf("config: unknown shader %q", cfg.Shader)
	}
	if cfg.Scale <= 0 {
		return fmt.Errorf("config: scale must be positive, got %g", cfg.Scale)
	}
	return nil
}

// State returns the initial viewer state for this configuration.
func (cfg *Config) State() view.State {
	st := view.State{
		Shape:  view.Polygon,
		Sides:  cfg.Sides,
		Shader: cfg.Shader,
		Scale:  cfg.Scale,
	}
	if cfg.Style == "cube" {
		st.Shape = view.Cube
	}
	return st
}
