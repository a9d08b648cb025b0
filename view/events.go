// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Event is a window or input event fed into the viewer loop.
type Event interface {
	isEvent()
}

// CloseRequest is sent when the window close button is pressed.
type CloseRequest struct{}

// KeyPress is a key press with the currently held modifiers.
type KeyPress struct {
	Key  glfw.Key
	Mods glfw.ModifierKey
}

// ModifiersChanged tracks the currently held modifier keys.
type ModifiersChanged struct {
	Mods glfw.ModifierKey
}

// Resize is a framebuffer size change.
type Resize struct {
	Size image.Point
}

// RedrawRequest asks for a new frame to be drawn. The loop sends one
// per tick for continuous redraw.
type RedrawRequest struct{}

func (CloseRequest) isEvent()     {}
func (KeyPress) isEvent()         {}
func (ModifiersChanged) isEvent() {}
func (Resize) isEvent()           {}
func (RedrawRequest) isEvent()    {}

// Effects is what the loop must do in response to an event.
type Effects struct {
	// Quit ends the viewer loop.
	Quit bool

	// Reconfigure is the new surface size to configure, nil if the
	// surface is unchanged.
	Reconfigure *image.Point

	// Draw renders a frame.
	Draw bool

	// Regenerate rebuilds the shape mesh before drawing.
	Regenerate bool
}

// LoopState is the loop-internal bookkeeping threaded through Reduce.
type LoopState struct {
	// LastUsed is the state whose geometry is currently uploaded.
	LastUsed State

	// Generated is whether any geometry has been uploaded yet.
	Generated bool

	// Mods is the currently held set of modifier keys.
	Mods glfw.ModifierKey
}

// Reduce is the viewer loop transition function: given the loop
// bookkeeping, the current interface state, and one event, it returns
// the updated bookkeeping and the effects the loop must carry out.
// It is pure so that the loop logic is testable without a window.
func Reduce(ls LoopState, cur State, ev Event) (LoopState, Effects) {
	var eff Effects
	switch ev := ev.(type) {
	case CloseRequest:
		eff.Quit = true
	case KeyPress:
		if ev.Key == glfw.KeyEscape {
			eff.Quit = true
		}
	case ModifiersChanged:
		ls.Mods = ev.Mods
	case Resize:
		if ev.Size.X > 0 && ev.Size.Y > 0 {
			sz := ev.Size
			eff.Reconfigure = &sz
		}
	case RedrawRequest:
		eff.Draw = true
		if !ls.Generated || !cur.GeometryEqual(ls.LastUsed) {
			eff.Regenerate = true
			ls.LastUsed = cur
			ls.Generated = true
		}
	}
	return ls, eff
}
