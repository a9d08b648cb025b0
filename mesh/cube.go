// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// Cube returns a unit cube spanning [-0.5, 0.5] on each axis, with
// 8 corner vertices and 36 indices forming 12 triangles, 2 per face.
// Corners 0-3 are the z=-0.5 face, 4-7 the z=+0.5 face, both ordered
// counter-clockwise starting from (-x, -y). All triangles wind
// counter-clockwise when viewed from outside the cube.
func Cube() Mesh {
	const h = 0.5
	vtx := []Vertex{
		{Pos: [3]float32{-h, -h, -h}, Color: [3]float32{1, 0, 0}},
		{Pos: [3]float32{h, -h, -h}, Color: [3]float32{0, 1, 0}},
		{Pos: [3]float32{h, h, -h}, Color: [3]float32{0, 0, 1}},
		{Pos: [3]float32{-h, h, -h}, Color: [3]float32{1, 1, 0}},
		{Pos: [3]float32{-h, -h, h}, Color: [3]float32{1, 0, 1}},
		{Pos: [3]float32{h, -h, h}, Color: [3]float32{0, 1, 1}},
		{Pos: [3]float32{h, h, h}, Color: [3]float32{1, 1, 1}},
		{Pos: [3]float32{-h, h, h}, Color: [3]float32{0.2, 0.2, 0.2}},
	}
	idx := []uint16{
		4, 5, 6, 6, 7, 4, // +z
		1, 0, 3, 3, 2, 1, // -z
		5, 1, 2, 2, 6, 5, // +x
		0, 4, 7, 7, 3, 0, // -x
		3, 7, 6, 6, 2, 3, // +y
		0, 1, 5, 5, 4, 0, // -y
	}
	return Mesh{Vertices: vtx, Indices: idx}
}
