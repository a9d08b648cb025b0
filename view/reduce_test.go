// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"image"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestReduceQuit(t *testing.T) {
	st := DefaultState()
	_, eff := Reduce(LoopState{}, st, CloseRequest{})
	assert.True(t, eff.Quit)

	_, eff = Reduce(LoopState{}, st, KeyPress{Key: glfw.KeyEscape})
	assert.True(t, eff.Quit)

	_, eff = Reduce(LoopState{}, st, KeyPress{Key: glfw.KeyA})
	assert.False(t, eff.Quit)
	assert.False(t, eff.Draw)
}

func TestReduceModifiers(t *testing.T) {
	st := DefaultState()
	ls, eff := Reduce(LoopState{}, st, ModifiersChanged{Mods: glfw.ModShift})
	assert.Equal(t, glfw.ModShift, ls.Mods)
	assert.Equal(t, Effects{}, eff)

	ls, _ = Reduce(ls, st, ModifiersChanged{})
	assert.Equal(t, glfw.ModifierKey(0), ls.Mods)
}

func TestReduceResize(t *testing.T) {
	st := DefaultState()
	_, eff := Reduce(LoopState{}, st, Resize{Size: image.Point{800, 600}})
	if assert.NotNil(t, eff.Reconfigure) {
		assert.Equal(t, image.Point{800, 600}, *eff.Reconfigure)
	}
	assert.False(t, eff.Quit)

	// minimized windows must not reconfigure to a degenerate surface
	_, eff = Reduce(LoopState{}, st, Resize{Size: image.Point{0, 0}})
	assert.Nil(t, eff.Reconfigure)
}

func TestReduceRegenerateOncePerChange(t *testing.T) {
	ls := LoopState{}
	st := DefaultState()

	// first frame always generates
	ls, eff := Reduce(ls, st, RedrawRequest{})
	assert.True(t, eff.Draw)
	assert.True(t, eff.Regenerate)

	// steady state: no regeneration
	for range 10 {
		ls, eff = Reduce(ls, st, RedrawRequest{})
		assert.True(t, eff.Draw)
		assert.False(t, eff.Regenerate)
	}

	// switching to the cube regenerates exactly once
	st.Shape = Cube
	ls, eff = Reduce(ls, st, RedrawRequest{})
	assert.True(t, eff.Regenerate)
	for range 10 {
		ls, eff = Reduce(ls, st, RedrawRequest{})
		assert.False(t, eff.Regenerate)
	}

	// sides changes are ignored while the cube is shown
	st.Sides = 9
	ls, eff = Reduce(ls, st, RedrawRequest{})
	assert.False(t, eff.Regenerate)

	// back to a polygon picks up the new side count, once
	st.Shape = Polygon
	ls, eff = Reduce(ls, st, RedrawRequest{})
	assert.True(t, eff.Regenerate)
	ls, eff = Reduce(ls, st, RedrawRequest{})
	assert.False(t, eff.Regenerate)

	// changing sides regenerates
	st.Sides = 10
	_, eff = Reduce(ls, st, RedrawRequest{})
	assert.True(t, eff.Regenerate)
}

func TestReduceShaderChangeNoRegen(t *testing.T) {
	ls := LoopState{}
	st := DefaultState()
	ls, _ = Reduce(ls, st, RedrawRequest{})

	st.Shader = ShaderChallenge
	_, eff := Reduce(ls, st, RedrawRequest{})
	assert.True(t, eff.Draw)
	assert.False(t, eff.Regenerate)
}
