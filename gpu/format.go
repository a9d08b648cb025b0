// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// TextureFormat describes the size and WebGPU format of a texture
// or presentable surface.
type TextureFormat struct {
	// Size of the texture in pixels.
	Size image.Point

	// Format is the WebGPU texture format; RGBA8UnormSrgb is default.
	Format wgpu.TextureFormat
}

func (tf *TextureFormat) Defaults() {
	tf.Format = wgpu.TextureFormatRGBA8UnormSrgb
}

// String returns a human-readable version of the format.
func (tf *TextureFormat) String() string {
	return fmt.Sprintf("Size: %v  Format: %d", tf.Size, tf.Format)
}

// Set sets the width, height and format.
func (tf *TextureFormat) Set(w, h int, ft wgpu.TextureFormat) {
	tf.Size = image.Point{X: w, Y: h}
	tf.Format = ft
}

// Size32 returns the size as uint32 values.
func (tf *TextureFormat) Size32() (width, height uint32) {
	return uint32(tf.Size.X), uint32(tf.Size.Y)
}

// Aspect returns the aspect ratio X / Y.
func (tf *TextureFormat) Aspect() float32 {
	if tf.Size.Y > 0 {
		return float32(tf.Size.X) / float32(tf.Size.Y)
	}
	return 1
}

// Bounds returns the rectangle defining this texture: 0,0,w,h.
func (tf *TextureFormat) Bounds() image.Rectangle {
	return image.Rectangle{Max: tf.Size}
}

// Extent3D returns the WebGPU extent for this format.
func (tf *TextureFormat) Extent3D() wgpu.Extent3D {
	return wgpu.Extent3D{
		Width:              uint32(tf.Size.X),
		Height:             uint32(tf.Size.Y),
		DepthOrArrayLayers: 1,
	}
}
