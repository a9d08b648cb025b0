// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/polyview/polyview/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.NoError(t, cfg.Validate())
	st := cfg.State()
	assert.Equal(t, view.DefaultState(), st)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "polyview.toml")
	data := `
title = "My Shapes"
sides = 8
style = "cube"
shader = "challenge"
scale = 1.5
`
	require.NoError(t, os.WriteFile(file, []byte(data), 0o666))

	cfg, err := Open(file)
	require.NoError(t, err)
	assert.Equal(t, "My Shapes", cfg.Title)
	assert.Equal(t, 8, cfg.Sides)
	// unset fields keep their defaults
	assert.Equal(t, 1360, cfg.Width)

	st := cfg.State()
	assert.Equal(t, view.Cube, st.Shape)
	assert.Equal(t, view.ShaderChallenge, st.Shader)
	assert.InDelta(t, 1.5, float64(st.Scale), 1e-6)
	assert.NoError(t, st.Validate())
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidateRejects(t *testing.T) {
	bad := []func(*Config){
		func(c *Config) { c.Sides = 2 },
		func(c *Config) { c.Scale = 0 },
		func(c *Config) { c.Scale = -1 },
		func(c *Config) { c.Style = "sphere" },
		func(c *Config) { c.Shader = "neon" },
		func(c *Config) { c.Width = 0 },
	}
	for _, mod := range bad {
		cfg := Defaults()
		mod(cfg)
		assert.Error(t, cfg.Validate())
	}
}

func TestOpenInvalid(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "polyview.toml")
	require.NoError(t, os.WriteFile(file, []byte("sides = 2\n"), 0o666))
	_, err := Open(file)
	assert.Error(t, err)
}
