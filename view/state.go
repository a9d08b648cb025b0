// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view runs the interactive shape viewer: it owns the viewer
// state, the event reduction logic, and the WebGPU rendering of the
// selected shape with the selected shader.
package view

import "fmt"

// ShapeKind is the kind of shape being displayed.
type ShapeKind int32

const (
	// Polygon is a flat regular polygon with Sides sides.
	Polygon ShapeKind = iota

	// Cube is a unit cube.
	Cube
)

func (sk ShapeKind) String() string {
	switch sk {
	case Polygon:
		return "polygon"
	case Cube:
		return "cube"
	}
	return fmt.Sprintf("ShapeKind(%d)", int32(sk))
}

// Shader pipeline names selectable in the interface.
const (
	ShaderMain      = "main"
	ShaderChallenge = "challenge"
)

// State is what the viewer is currently displaying, as controlled
// by the interface.
type State struct {
	// Shape is the kind of shape displayed.
	Shape ShapeKind

	// Sides is the number of polygon sides, at least 3.
	// It is ignored when Shape is Cube.
	Sides int

	// Shader is the name of the shader pipeline used for the shape.
	Shader string

	// Scale is the interface scale factor, multiplying the platform
	// content scale. It must be positive.
	Scale float32
}

// DefaultState returns the state shown at startup.
func DefaultState() State {
	return State{Shape: Polygon, Sides: 6, Shader: ShaderMain, Scale: 1}
}

// GeometryEqual reports whether the two states describe the same
// geometry, so that no mesh regeneration is needed between them.
// Cube geometry does not depend on Sides.
func (st State) GeometryEqual(o State) bool {
	if st.Shape != o.Shape {
		return false
	}
	if st.Shape == Cube {
		return true
	}
	return st.Sides == o.Sides
}

// Validate returns an error if the state is out of range.
func (st State) Validate() error {
	if st.Sides < 3 {
		return fmt.Errorf("view.State: Sides must be at least 3, got %d", st.Sides)
	}
	if st.Scale <= 0 {
		return fmt.Errorf("view.State: Scale must be positive, got %g", st.Scale)
	}
	switch st.Shader {
	case ShaderMain, ShaderChallenge:
	default:
		return fmt.Errorf("view.State: unknown shader %q", st.Shader)
	}
	return nil
}
