// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import "image"

// rect is an axis-aligned rectangle in framebuffer pixels.
type rect struct {
	X, Y, W, H float64
}

func (r rect) contains(p image.Point) bool {
	x, y := float64(p.X), float64(p.Y)
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// layout has the widget rectangles for one frame, all scaled by the
// effective pixels-per-point factor.
type layout struct {
	panel rect

	sidesLabel rect
	sidesTrack rect

	shapePolygon rect
	shapeCube    rect

	shaderMain      rect
	shaderChallenge rect

	scaleLabel rect
	scaleTrack rect
}

// makeLayout computes the widget layout for the given scale factor.
// The panel is anchored to the top-left corner of the window.
func makeLayout(scale float64) layout {
	s := func(v float64) float64 { return v * scale }
	var ly layout
	ly.panel = rect{X: s(12), Y: s(12), W: s(240), H: s(196)}

	x := ly.panel.X + s(12)
	w := ly.panel.W - s(24)
	y := ly.panel.Y + s(12)

	ly.sidesLabel = rect{X: x, Y: y, W: w, H: s(18)}
	y += s(20)
	ly.sidesTrack = rect{X: x, Y: y, W: w, H: s(16)}
	y += s(26)

	half := (w - s(8)) / 2
	ly.shapePolygon = rect{X: x, Y: y, W: half, H: s(24)}
	ly.shapeCube = rect{X: x + half + s(8), Y: y, W: half, H: s(24)}
	y += s(32)

	ly.shaderMain = rect{X: x, Y: y, W: half, H: s(24)}
	ly.shaderChallenge = rect{X: x + half + s(8), Y: y, W: half, H: s(24)}
	y += s(32)

	ly.scaleLabel = rect{X: x, Y: y, W: w, H: s(18)}
	y += s(20)
	ly.scaleTrack = rect{X: x, Y: y, W: w, H: s(16)}
	return ly
}

// sliderValue maps an x pixel position on the track to a value in
// [min, max], clamping outside the track.
func sliderValue(track rect, x, min, max float64) float64 {
	if track.W <= 0 {
		return min
	}
	t := (x - track.X) / track.W
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return min + t*(max-min)
}

// sliderFrac maps a value in [min, max] to the [0, 1] position of the
// slider knob on its track.
func sliderFrac(v, min, max float64) float64 {
	if max <= min {
		return 0
	}
	t := (v - min) / (max - min)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t
}
