// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import (
	"image"
	"testing"

	"github.com/polyview/polyview/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutScales(t *testing.T) {
	a := makeLayout(1)
	b := makeLayout(2)
	assert.InDelta(t, a.panel.W*2, b.panel.W, 1e-9)
	assert.InDelta(t, a.sidesTrack.X*2, b.sidesTrack.X, 1e-9)
	// buttons do not overlap
	assert.Less(t, a.shapePolygon.X+a.shapePolygon.W, a.shapeCube.X)
}

func TestSliderValue(t *testing.T) {
	track := rect{X: 100, Y: 0, W: 200, H: 16}
	assert.Equal(t, 3.0, sliderValue(track, 100, 3, 12))
	assert.Equal(t, 12.0, sliderValue(track, 300, 3, 12))
	assert.InDelta(t, 7.5, sliderValue(track, 200, 3, 12), 1e-9)
	// clamped outside the track
	assert.Equal(t, 3.0, sliderValue(track, -50, 3, 12))
	assert.Equal(t, 12.0, sliderValue(track, 1000, 3, 12))
}

func TestSliderFrac(t *testing.T) {
	assert.Equal(t, 0.0, sliderFrac(3, 3, 12))
	assert.Equal(t, 1.0, sliderFrac(12, 3, 12))
	assert.Equal(t, 0.5, sliderFrac(7.5, 3, 12))
	assert.Equal(t, 0.0, sliderFrac(2, 3, 12))
	assert.Equal(t, 1.0, sliderFrac(99, 3, 12))
}

func center(r rect) (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

func TestButtonsSwitchState(t *testing.T) {
	st := view.DefaultState()
	m, err := NewManager(&st)
	require.NoError(t, err)

	size := image.Point{640, 480}
	ly := makeLayout(1)

	// click the Cube button
	x, y := center(ly.shapeCube)
	m.SetPointer(x, y, true)
	m.Frame(size, 1)
	assert.Equal(t, view.Cube, st.Shape)

	// holding does not toggle anything else
	m.Frame(size, 1)
	assert.Equal(t, view.Cube, st.Shape)
	m.SetPointer(x, y, false)
	m.Frame(size, 1)

	// click the Challenge shader button
	x, y = center(ly.shaderChallenge)
	m.SetPointer(x, y, true)
	m.Frame(size, 1)
	assert.Equal(t, view.ShaderChallenge, st.Shader)
	m.SetPointer(x, y, false)
	m.Frame(size, 1)

	x, y = center(ly.shapePolygon)
	m.SetPointer(x, y, true)
	m.Frame(size, 1)
	assert.Equal(t, view.Polygon, st.Shape)
}

func TestSidesSliderBounds(t *testing.T) {
	st := view.DefaultState()
	m, err := NewManager(&st)
	require.NoError(t, err)

	size := image.Point{640, 480}
	ly := makeLayout(1)

	// drag to the far left end of the track
	_, y := center(ly.sidesTrack)
	m.SetPointer(ly.sidesTrack.X+1, y, true)
	m.Frame(size, 1)
	m.SetPointer(ly.sidesTrack.X-500, y, true)
	m.Frame(size, 1)
	assert.Equal(t, MinSides, st.Sides)

	// drag past the right end
	m.SetPointer(ly.sidesTrack.X+ly.sidesTrack.W+500, y, true)
	m.Frame(size, 1)
	assert.Equal(t, MaxSides, st.Sides)
	m.SetPointer(0, 0, false)
	m.Frame(size, 1)
}

func TestScaleSliderStaysPositive(t *testing.T) {
	st := view.DefaultState()
	m, err := NewManager(&st)
	require.NoError(t, err)

	size := image.Point{640, 480}
	ly := makeLayout(1)

	_, y := center(ly.scaleTrack)
	m.SetPointer(ly.scaleTrack.X+1, y, true)
	m.Frame(size, 1)
	m.SetPointer(ly.scaleTrack.X-500, y, true)
	m.Frame(size, 1)
	assert.InDelta(t, MinScale, float64(st.Scale), 1e-6)
	assert.Positive(t, st.Scale)
	assert.NoError(t, st.Validate())
}

func TestNoInteractionLeavesStateUntouched(t *testing.T) {
	st := view.DefaultState()
	st.Scale = 1.25
	st.Sides = 7
	m, err := NewManager(&st)
	require.NoError(t, err)

	size := image.Point{640, 480}

	// frames with no pointer interaction must not rewrite the state,
	// even to slider-quantized values
	for range 3 {
		m.Frame(size, 1)
	}
	assert.InDelta(t, 1.25, float64(st.Scale), 1e-6)
	assert.Equal(t, 7, st.Sides)

	// a click on a button leaves the sliders' values alone too
	ly := makeLayout(1)
	x, y := center(ly.shapeCube)
	m.SetPointer(x, y, true)
	m.Frame(size, 1)
	m.SetPointer(x, y, false)
	m.Frame(size, 1)
	assert.Equal(t, view.Cube, st.Shape)
	assert.InDelta(t, 1.25, float64(st.Scale), 1e-6)
	assert.Equal(t, 7, st.Sides)
}

func TestFrameImage(t *testing.T) {
	st := view.DefaultState()
	m, err := NewManager(&st)
	require.NoError(t, err)

	size := image.Point{320, 240}
	img := m.Frame(size, 1)
	require.NotNil(t, img)
	assert.Equal(t, size, img.Rect.Size())

	// panel pixels are drawn, corners away from the panel are clear
	ly := makeLayout(1)
	px, py := center(ly.panel)
	_, _, _, a := img.At(int(px), int(py)).RGBA()
	assert.NotZero(t, a)
	_, _, _, a = img.At(310, 230).RGBA()
	assert.Zero(t, a)

	// resize recreates the backing image at the new size
	img = m.Frame(image.Point{640, 480}, 1)
	assert.Equal(t, image.Point{640, 480}, img.Rect.Size())
}
