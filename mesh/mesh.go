// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh generates the triangulated geometry rendered by the
// viewer: regular polygons and a unit cube. All generators are pure
// and deterministic, so identical arguments always produce identical
// vertex and index data.
package mesh

import (
	"errors"
	"fmt"
)

// Vertex is one point of a triangulated shape: a position and a
// per-vertex color consumed by the shaders. Vertices have no identity
// beyond their position in the mesh arrays.
type Vertex struct {
	Pos   [3]float32
	Color [3]float32
}

// Mesh holds vertex and index data describing a triangulated shape.
// Indices reference vertices in groups of three, one triangle each.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

var (
	// ErrInvalidSides is returned for polygons with fewer than 3 sides.
	ErrInvalidSides = errors.New("mesh: polygon must have at least 3 sides")

	// ErrInvalidRadius is returned for polygons with non-positive radius.
	ErrInvalidRadius = errors.New("mesh: polygon radius must be greater than 0")
)

// NumTriangles returns the number of triangles formed by the indices.
func (m *Mesh) NumTriangles() int {
	return len(m.Indices) / 3
}

// Validate checks the mesh invariants: the index count is a multiple
// of 3, and every index references an existing vertex.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh: index count %d is not a multiple of 3", len(m.Indices))
	}
	nv := len(m.Vertices)
	for i, ix := range m.Indices {
		if int(ix) >= nv {
			return fmt.Errorf("mesh: index %d at position %d out of range for %d vertices", ix, i, nv)
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the mesh vertices
// as min and max corners. A mesh with no vertices returns zeros.
func (m *Mesh) Bounds() (min, max [3]float32) {
	if len(m.Vertices) == 0 {
		return
	}
	min = m.Vertices[0].Pos
	max = m.Vertices[0].Pos
	for _, v := range m.Vertices[1:] {
		for d := 0; d < 3; d++ {
			if v.Pos[d] < min[d] {
				min[d] = v.Pos[d]
			}
			if v.Pos[d] > max[d] {
				max[d] = v.Pos[d]
			}
		}
	}
	return
}
