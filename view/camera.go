// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CameraUniform is the camera data uploaded to the shader uniform
// buffer, with the matrices in shader layout.
type CameraUniform struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// Camera is a fixed perspective camera looking at the origin.
type Camera struct {
	// Eye is the camera position.
	Eye mgl32.Vec3

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Near and Far are the clip distances.
	Near, Far float32

	aspect float32
}

// NewCamera returns the standard viewer camera for the given aspect
// ratio: at (0, 0, 2) looking at the origin with a 45 degree field
// of view.
func NewCamera(aspect float32) *Camera {
	return &Camera{
		Eye:    mgl32.Vec3{0, 0, 2},
		FOV:    45,
		Near:   0.01,
		Far:    100,
		aspect: aspect,
	}
}

// SetAspect updates the aspect ratio, after a window resize.
func (cm *Camera) SetAspect(aspect float32) {
	cm.aspect = aspect
}

// Uniform returns the current camera matrices for upload.
func (cm *Camera) Uniform() CameraUniform {
	return CameraUniform{
		View:       mgl32.LookAtV(cm.Eye, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}),
		Projection: mgl32.Perspective(mgl32.DegToRad(cm.FOV), cm.aspect, cm.Near, cm.Far),
	}
}
