// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/chewxy/math32"

// Polygon returns a regular polygon with the given number of sides,
// inscribed in a circle of the given radius in the z=0 plane.
// Vertex i sits at angle 2*pi*i/sides on the circle; the indices
// triangulate the polygon as a fan anchored at vertex 0, with
// triangle (0, i, i+1) for i in [1, sides-1].
// sides < 3 or radius <= 0 is rejected with an error, never clamped.
func Polygon(sides int, radius float32) (Mesh, error) {
	if sides < 3 {
		return Mesh{}, ErrInvalidSides
	}
	if radius <= 0 {
		return Mesh{}, ErrInvalidRadius
	}
	vtx := make([]Vertex, sides)
	for i := range vtx {
		ang := 2 * math32.Pi * float32(i) / float32(sides)
		cos, sin := math32.Cos(ang), math32.Sin(ang)
		vtx[i] = Vertex{
			Pos:   [3]float32{radius * cos, radius * sin, 0},
			Color: [3]float32{0.5 + 0.5*cos, 0.5 + 0.5*sin, 0.5},
		}
	}
	idx := make([]uint16, 0, 3*(sides-2))
	for i := 1; i < sides-1; i++ {
		idx = append(idx, 0, uint16(i), uint16(i+1))
	}
	return Mesh{Vertices: vtx, Indices: idx}, nil
}
