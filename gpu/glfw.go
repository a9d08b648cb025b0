// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

package gpu

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/polyview/polyview/base/errors"
)

// note: this file contains the glfw dependencies, for desktop platform builds.

// Init initializes the windowing system, using glfw.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	return errors.Log(glfw.Init())
}

// Terminate shuts down the windowing system.
// Call as the last thing before quitting.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// GLFWCreateWindow makes a new glfw window of the given size and title,
// with no client graphics API so WebGPU can own the surface, and
// returns the window along with its WebGPU surface.
func GLFWCreateWindow(gp *GPU, size image.Point, title string) (*glfw.Window, *wgpu.Surface, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		return nil, nil, errors.Log(err)
	}
	surface := gp.Instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))
	return window, surface, nil
}
