// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestPolygonCounts(t *testing.T) {
	for _, sides := range []int{3, 4, 5, 6, 7, 12, 64, 360, 10000} {
		t.Run(fmt.Sprintf("sides=%d", sides), func(t *testing.T) {
			m, err := Polygon(sides, 1)
			assert.NoError(t, err)
			assert.Equal(t, sides, len(m.Vertices))
			assert.Equal(t, 3*(sides-2), len(m.Indices))
			assert.Equal(t, sides-2, m.NumTriangles())
			assert.NoError(t, m.Validate())
			for _, ix := range m.Indices {
				assert.Less(t, int(ix), sides)
			}
		})
	}
}

func TestPolygonRadius(t *testing.T) {
	const radius = 0.75
	m, err := Polygon(17, radius)
	assert.NoError(t, err)
	for i, v := range m.Vertices {
		d := math32.Sqrt(v.Pos[0]*v.Pos[0] + v.Pos[1]*v.Pos[1])
		assert.InDelta(t, radius, d, 1e-5, "vertex %d", i)
		assert.Equal(t, float32(0), v.Pos[2], "vertex %d must lie in z=0", i)
	}
}

func TestPolygonInvalid(t *testing.T) {
	for _, sides := range []int{-1, 0, 1, 2} {
		_, err := Polygon(sides, 1)
		assert.ErrorIs(t, err, ErrInvalidSides, "sides=%d", sides)
	}
	_, err := Polygon(4, 0)
	assert.ErrorIs(t, err, ErrInvalidRadius)
	_, err = Polygon(4, -1)
	assert.ErrorIs(t, err, ErrInvalidRadius)
}

func TestPolygonIdempotent(t *testing.T) {
	a, err := Polygon(9, 0.5)
	assert.NoError(t, err)
	b, err := Polygon(9, 0.5)
	assert.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPolygonSquare(t *testing.T) {
	m, err := Polygon(4, 0.5)
	assert.NoError(t, err)
	assert.Equal(t, 4, len(m.Vertices))

	dist := func(a, b Vertex) float32 {
		dx := a.Pos[0] - b.Pos[0]
		dy := a.Pos[1] - b.Pos[1]
		return math32.Sqrt(dx*dx + dy*dy)
	}
	d02 := dist(m.Vertices[0], m.Vertices[2])
	d13 := dist(m.Vertices[1], m.Vertices[3])
	assert.InDelta(t, d02, d13, 1e-6, "square diagonals must be equal")
	assert.InDelta(t, 1.0, d02, 1e-6, "diagonal of a square inscribed in r=0.5")
}

func TestCube(t *testing.T) {
	m := Cube()
	assert.Equal(t, 8, len(m.Vertices))
	assert.Equal(t, 36, len(m.Indices))
	assert.Equal(t, 12, m.NumTriangles())
	assert.NoError(t, m.Validate())

	min, max := m.Bounds()
	assert.Equal(t, [3]float32{-0.5, -0.5, -0.5}, min)
	assert.Equal(t, [3]float32{0.5, 0.5, 0.5}, max)
}

func TestCubeWinding(t *testing.T) {
	m := Cube()
	// Every triangle's outward normal must point away from the origin,
	// which is what counter-clockwise winding viewed from outside means
	// for a shape centered on the origin.
	for i := 0; i < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]].Pos
		b := m.Vertices[m.Indices[i+1]].Pos
		c := m.Vertices[m.Indices[i+2]].Pos
		ab := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
		ac := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
		n := [3]float32{
			ab[1]*ac[2] - ab[2]*ac[1],
			ab[2]*ac[0] - ab[0]*ac[2],
			ab[0]*ac[1] - ab[1]*ac[0],
		}
		center := [3]float32{
			(a[0] + b[0] + c[0]) / 3,
			(a[1] + b[1] + c[1]) / 3,
			(a[2] + b[2] + c[2]) / 3,
		}
		dot := n[0]*center[0] + n[1]*center[1] + n[2]*center[2]
		assert.Greater(t, dot, float32(0), "triangle %d winds clockwise", i/3)
	}
}

func TestValidate(t *testing.T) {
	m := Mesh{
		Vertices: []Vertex{{}, {}, {}},
		Indices:  []uint16{0, 1, 2},
	}
	assert.NoError(t, m.Validate())

	m.Indices = []uint16{0, 1}
	assert.Error(t, m.Validate())

	m.Indices = []uint16{0, 1, 3}
	assert.Error(t, m.Validate())
}
