// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package overlay composites a CPU-rendered RGBA image over the
// current frame, as a full-screen textured quad with alpha blending.
// It is used for drawing the 2D interface on top of the 3D scene.
package overlay

import (
	_ "embed"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/polyview/polyview/base/errors"
	"github.com/polyview/polyview/gpu"
)

//go:embed overlay.wgsl
var overlayShader string

// quadVertex is one corner of the full-screen quad, in NDC position
// and texture coordinates.
type quadVertex struct {
	Pos [2]float32
	UV  [2]float32
}

var quadVertices = []quadVertex{
	{Pos: [2]float32{-1, -1}, UV: [2]float32{0, 1}},
	{Pos: [2]float32{1, -1}, UV: [2]float32{1, 1}},
	{Pos: [2]float32{1, 1}, UV: [2]float32{1, 0}},
	{Pos: [2]float32{-1, 1}, UV: [2]float32{0, 0}},
}

var quadIndices = []uint16{0, 1, 2, 2, 3, 0}

// Drawer draws an RGBA image over the frame. Feed it a new image with
// SetImage each frame, then call Draw inside the render pass, after
// the scene has been drawn.
type Drawer struct {
	gpu      *gpu.GPU
	pipeline *gpu.GraphicsPipeline
	texture  *gpu.Texture
	sampler  *wgpu.Sampler
	bgl      *wgpu.BindGroupLayout
	bg       *wgpu.BindGroup
	vtx      *gpu.Buffer
	idx      *gpu.Buffer
}

// NewDrawer returns a Drawer rendering to targets of the given format.
func NewDrawer(gp *gpu.GPU, format wgpu.TextureFormat) (*Drawer, error) {
	dw := &Drawer{gpu: gp}
	dw.texture = gpu.NewTexture(gp, "overlay-texture")

	var err error
	dw.sampler, err = gp.Device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "overlay-sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		MaxAnisotropy: 1,
	})
	if err != nil {
		return nil, errors.Log(err)
	}

	dw.bgl, err = gp.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "overlay-bind-layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					ViewDimension: wgpu.TextureViewDimension2D,
					SampleType:    wgpu.TextureSampleTypeFloat,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	})
	if err != nil {
		return nil, errors.Log(err)
	}

	dw.vtx = gpu.NewBuffer(gp, "overlay-vertices", wgpu.BufferUsageVertex)
	if err := gpu.SetBufferFrom(dw.vtx, quadVertices); err != nil {
		return nil, err
	}
	dw.idx = gpu.NewBuffer(gp, "overlay-indices", wgpu.BufferUsageIndex)
	if err := gpu.SetBufferFrom(dw.idx, quadIndices); err != nil {
		return nil, err
	}

	pl := gpu.NewGraphicsPipeline(gp, "overlay", format)
	if err := pl.SetShaderCode(overlayShader); err != nil {
		return nil, err
	}
	pl.SetVertexLayout(wgpu.VertexBufferLayout{
		ArrayStride: 4 * 4,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
		},
	})
	pl.SetAlphaBlend()
	pl.SetBindGroupLayouts(dw.bgl)
	if err := pl.Config(); err != nil {
		return nil, err
	}
	dw.pipeline = pl
	return dw, nil
}

// SetImage uploads the given image as the overlay contents for the
// next Draw. When the size changes, the texture and its bind group
// are recreated.
func (dw *Drawer) SetImage(img *image.RGBA) error {
	sz := img.Rect.Size()
	recreate := dw.bg == nil || dw.texture.Format.Size != sz
	if err := dw.texture.SetFromGoImage(img); err != nil {
		return err
	}
	if !recreate {
		return nil
	}
	if dw.bg != nil {
		dw.bg.Release()
		dw.bg = nil
	}
	bg, err := dw.gpu.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "overlay-bind-group",
		Layout: dw.bgl,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: dw.texture.View()},
			{Binding: 1, Sampler: dw.sampler},
		},
	})
	if err != nil {
		return errors.Log(err)
	}
	dw.bg = bg
	return nil
}

// Draw records the overlay quad into the given render pass.
// SetImage must have been called at least once first.
func (dw *Drawer) Draw(rp *wgpu.RenderPassEncoder) error {
	if dw.bg == nil {
		return errors.Log(errors.New("overlay.Drawer: Draw called before SetImage"))
	}
	if err := dw.pipeline.BindPipeline(rp); err != nil {
		return err
	}
	rp.SetBindGroup(0, dw.bg, nil)
	rp.SetVertexBuffer(0, dw.vtx.Buf(), 0, wgpu.WholeSize)
	rp.SetIndexBuffer(dw.idx.Buf(), wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
	rp.DrawIndexed(uint32(dw.idx.N), 1, 0, 0, 0)
	return nil
}

// Release releases all WebGPU resources held by the drawer.
func (dw *Drawer) Release() {
	if dw.bg != nil {
		dw.bg.Release()
		dw.bg = nil
	}
	if dw.bgl != nil {
		dw.bgl.Release()
		dw.bgl = nil
	}
	if dw.sampler != nil {
		dw.sampler.Release()
		dw.sampler = nil
	}
	if dw.texture != nil {
		dw.texture.Release()
	}
	if dw.vtx != nil {
		dw.vtx.Release()
	}
	if dw.idx != nil {
		dw.idx.Release()
	}
	if dw.pipeline != nil {
		dw.pipeline.Release()
	}
}
