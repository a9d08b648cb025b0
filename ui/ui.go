// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ui draws the 2D control panel for the viewer as an RGBA
// image, using immediate-mode widgets rasterized with gg. The image
// is composited over the 3D scene by the overlay drawer.
package ui

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/polyview/polyview/base/errors"
	"github.com/polyview/polyview/view"
)

// Slider and panel ranges.
const (
	MinSides = 3
	MaxSides = 12
	MinScale = 0.5
	MaxScale = 3.0
)

// PointerState is the current pointer position and button state,
// in framebuffer pixels.
type PointerState struct {
	Pos     image.Point
	Pressed bool
}

// Manager runs the control panel: it owns the widget interaction
// state and rasterizes the panel each frame, mutating the viewer
// state in place as widgets are used.
type Manager struct {
	state  *view.State
	source *text.FontSource

	ctx      *gg.Context
	size     image.Point
	face     text.Face
	faceSize float64

	pointer     PointerState
	prevPressed bool
	active      string
}

// NewManager returns a Manager controlling the given state.
func NewManager(st *view.State) (*Manager, error) {
	src, err := text.NewFontSource(lmsans10regular.TTF)
	if err != nil {
		return nil, errors.Log(err)
	}
	return &Manager{state: st, source: src}, nil
}

// SetPointer updates the pointer position and button state, in
// framebuffer pixels. Call from the window cursor and mouse button
// callbacks.
func (m *Manager) SetPointer(x, y float64, pressed bool) {
	m.pointer.Pos = image.Point{int(x), int(y)}
	m.pointer.Pressed = pressed
}

// clicked reports a fresh press this frame inside the given rect.
func (m *Manager) clicked(r rect) bool {
	return m.pointer.Pressed && !m.prevPressed && r.contains(m.pointer.Pos)
}

// slider runs one slider: it captures the pointer on a press inside
// the track and reports the dragged value while captured.
func (m *Manager) slider(id string, track rect, cur, min, max float64) float64 {
	if m.pointer.Pressed && !m.prevPressed && track.contains(m.pointer.Pos) {
		m.active = id
	}
	if !m.pointer.Pressed && m.active == id {
		m.active = ""
	}
	if m.active != id {
		return cur
	}
	return sliderValue(track, float64(m.pointer.Pos.X), min, max)
}

// Frame handles this frame's interactions and rasterizes the panel,
// returning the image to composite over the scene. The size is the
// framebuffer size; pixelsPerPoint is the platform content scale
// multiplied by the state's interface scale factor.
func (m *Manager) Frame(size image.Point, pixelsPerPoint float32) *image.RGBA {
	scale := float64(pixelsPerPoint)
	if scale <= 0 {
		scale = 1
	}
	ly := makeLayout(scale)

	m.update(ly)
	img := m.draw(size, scale, ly)
	m.prevPressed = m.pointer.Pressed
	return img
}

// update applies this frame's pointer interactions to the state.
// The state is written only while a widget is actually being used,
// so values configured outside the slider quantization (a scale of
// 1.25, say) survive frames with no interaction.
func (m *Manager) update(ly layout) {
	sides := m.slider("sides", ly.sidesTrack, float64(m.state.Sides), MinSides, MaxSides)
	if m.active == "sides" {
		m.state.Sides = int(math.Round(sides))
	}

	if m.clicked(ly.shapePolygon) {
		m.state.Shape = view.Polygon
	}
	if m.clicked(ly.shapeCube) {
		m.state.Shape = view.Cube
	}
	if m.clicked(ly.shaderMain) {
		m.state.Shader = view.ShaderMain
	}
	if m.clicked(ly.shaderChallenge) {
		m.state.Shader = view.ShaderChallenge
	}

	sc := m.slider("scale", ly.scaleTrack, float64(m.state.Scale), MinScale, MaxScale)
	if m.active == "scale" {
		m.state.Scale = float32(math.Round(sc*10) / 10)
	}
}

func (m *Manager) draw(size image.Point, scale float64, ly layout) *image.RGBA {
	if m.ctx == nil || m.size != size {
		m.ctx = gg.NewContext(size.X, size.Y)
		m.size = size
	}
	if m.face == nil || m.faceSize != 13*scale {
		m.faceSize = 13 * scale
		m.face = m.source.Face(m.faceSize)
	}
	dc := m.ctx
	dc.SetRGBA(0, 0, 0, 0)
	dc.Clear()
	dc.SetFont(m.face)

	// panel background
	dc.SetRGBA(0.12, 0.12, 0.14, 0.85)
	dc.DrawRoundedRectangle(ly.panel.X, ly.panel.Y, ly.panel.W, ly.panel.H, 6*scale)
	dc.Fill()

	dc.SetRGBA(0.92, 0.92, 0.92, 1)
	dc.DrawString(fmt.Sprintf("Sides: %d", m.state.Sides), ly.sidesLabel.X, ly.sidesLabel.Y+ly.sidesLabel.H-4*scale)
	m.drawSlider(ly.sidesTrack, sliderFrac(float64(m.state.Sides), MinSides, MaxSides), scale)

	m.drawButton(ly.shapePolygon, "Polygon", m.state.Shape == view.Polygon, scale)
	m.drawButton(ly.shapeCube, "Cube", m.state.Shape == view.Cube, scale)

	m.drawButton(ly.shaderMain, "Main", m.state.Shader == view.ShaderMain, scale)
	m.drawButton(ly.shaderChallenge, "Challenge", m.state.Shader == view.ShaderChallenge, scale)

	dc.SetRGBA(0.92, 0.92, 0.92, 1)
	dc.DrawString(fmt.Sprintf("UI Scale: %.1f", m.state.Scale), ly.scaleLabel.X, ly.scaleLabel.Y+ly.scaleLabel.H-4*scale)
	m.drawSlider(ly.scaleTrack, sliderFrac(float64(m.state.Scale), MinScale, MaxScale), scale)

	return toRGBA(dc.Image())
}

func (m *Manager) drawSlider(track rect, frac, scale float64) {
	dc := m.ctx
	dc.SetRGBA(0.3, 0.3, 0.34, 1)
	dc.DrawRoundedRectangle(track.X, track.Y+track.H/2-3*scale, track.W, 6*scale, 3*scale)
	dc.Fill()
	dc.SetRGBA(0.55, 0.7, 0.95, 1)
	dc.DrawCircle(track.X+frac*track.W, track.Y+track.H/2, 7*scale)
	dc.Fill()
}

func (m *Manager) drawButton(r rect, label string, selected bool, scale float64) {
	dc := m.ctx
	if selected {
		dc.SetRGBA(0.25, 0.45, 0.75, 1)
	} else {
		dc.SetRGBA(0.3, 0.3, 0.34, 1)
	}
	dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, 4*scale)
	dc.Fill()
	dc.SetRGBA(0.95, 0.95, 0.95, 1)
	dc.DrawStringAnchored(label, r.X+r.W/2, r.Y+r.H/2, 0.5, 0.5)
}

// toRGBA returns the image as *image.RGBA, converting if the backing
// store has another format.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	return rgba
}
