// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image/color"

	"github.com/cogentcore/webgpu/wgpu"
)

// DefaultClearColor is the dark slate background used when no other
// clear color is configured.
var DefaultClearColor = color.RGBA{R: 26, G: 51, B: 77, A: 255}

// Render manages the render pass parameters for drawing to a surface:
// the clear color and the pass descriptors.
type Render struct {
	// ClearColor is the color the frame is cleared to at the start
	// of each render pass.
	ClearColor color.Color
}

// NewRender returns a Render with the given clear color.
func NewRender(clear color.Color) *Render {
	return &Render{ClearColor: clear}
}

// clearValue returns the WebGPU clear color for the current ClearColor.
func (rd *Render) clearValue() wgpu.Color {
	if rd.ClearColor == nil {
		return wgpu.Color{A: 1}
	}
	r, g, b, a := rd.ClearColor.RGBA()
	return wgpu.Color{
		R: float64(r) / 0xffff,
		G: float64(g) / 0xffff,
		B: float64(b) / 0xffff,
		A: float64(a) / 0xffff,
	}
}

// ClearRenderPass returns a render pass descriptor that clears the
// target view to ClearColor before drawing.
func (rd *Render) ClearRenderPass(view *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	return &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			ClearValue: rd.clearValue(),
			StoreOp:    wgpu.StoreOpStore,
		}},
	}
}

// LoadRenderPass returns a render pass descriptor that loads the
// previous contents of the target view, carrying them over.
func (rd *Render) LoadRenderPass(view *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	return &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:    view,
			LoadOp:  wgpu.LoadOpLoad,
			StoreOp: wgpu.StoreOpStore,
		}},
	}
}

// BeginRenderPass starts a clearing render pass on the given encoder
// and target view.
func (rd *Render) BeginRenderPass(cmd *wgpu.CommandEncoder, view *wgpu.TextureView) *wgpu.RenderPassEncoder {
	return cmd.BeginRenderPass(rd.ClearRenderPass(view))
}

// BeginRenderPassNoClear starts a render pass that does not clear
// the target first, so prior output is preserved.
func (rd *Render) BeginRenderPassNoClear(cmd *wgpu.CommandEncoder, view *wgpu.TextureView) *wgpu.RenderPassEncoder {
	return cmd.BeginRenderPass(rd.LoadRenderPass(view))
}
