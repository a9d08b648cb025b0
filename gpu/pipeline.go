// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/polyview/polyview/base/errors"
)

// GraphicsPipeline wraps a WebGPU render pipeline along with its shader
// module and fixed-function configuration. Configure with the Set*
// methods and then call Config, or let BindPipeline configure lazily.
type GraphicsPipeline struct {
	// Name is used as the label on the WebGPU objects, for debugging.
	Name string

	// Primitive has the topology, winding, and culling configuration.
	Primitive wgpu.PrimitiveState

	// Multisample has the multisampling configuration.
	Multisample wgpu.MultisampleState

	gpu            *GPU
	format         wgpu.TextureFormat
	shader         *wgpu.ShaderModule
	vertexEntry    string
	fragmentEntry  string
	vertexLayout   []wgpu.VertexBufferLayout
	blend          *wgpu.BlendState
	bindLayouts    []*wgpu.BindGroupLayout
	layout         *wgpu.PipelineLayout
	renderPipeline *wgpu.RenderPipeline
}

// NewGraphicsPipeline returns a new pipeline targeting the given
// color format, with triangle-list topology, counterclockwise front
// faces, no culling, and no multisampling.
func NewGraphicsPipeline(gp *GPU, name string, format wgpu.TextureFormat) *GraphicsPipeline {
	pl := &GraphicsPipeline{
		Name:   name,
		gpu:    gp,
		format: format,
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		vertexEntry:   "vs_main",
		fragmentEntry: "fs_main",
		blend:         &wgpu.BlendStateReplace,
	}
	return pl
}

// SetShaderCode compiles the given WGSL source into the pipeline's
// shader module, replacing any existing one.
func (pl *GraphicsPipeline) SetShaderCode(code string) error {
	if pl.shader != nil {
		pl.shader.Release()
		pl.shader = nil
	}
	sh, err := pl.gpu.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          pl.Name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: code},
	})
	if err != nil {
		return errors.Log(err)
	}
	pl.shader = sh
	return nil
}

// SetEntries sets the vertex and fragment entry point names.
// The defaults are vs_main and fs_main.
func (pl *GraphicsPipeline) SetEntries(vertex, fragment string) *GraphicsPipeline {
	pl.vertexEntry = vertex
	pl.fragmentEntry = fragment
	return pl
}

// SetVertexLayout sets the vertex buffer layouts consumed by the
// vertex shader.
func (pl *GraphicsPipeline) SetVertexLayout(layouts ...wgpu.VertexBufferLayout) *GraphicsPipeline {
	pl.vertexLayout = layouts
	return pl
}

// SetCullMode sets the face culling mode.
func (pl *GraphicsPipeline) SetCullMode(cm wgpu.CullMode) *GraphicsPipeline {
	pl.Primitive.CullMode = cm
	return pl
}

// SetAlphaBlend enables standard premultiplied-style alpha blending
// on the color target, instead of the default replace blend.
func (pl *GraphicsPipeline) SetAlphaBlend() *GraphicsPipeline {
	pl.blend = &wgpu.BlendState{
		Color: wgpu.BlendComponent{
			SrcFactor: wgpu.BlendFactorSrcAlpha,
			DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
			Operation: wgpu.BlendOperationAdd,
		},
		Alpha: wgpu.BlendComponent{
			SrcFactor: wgpu.BlendFactorOne,
			DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
			Operation: wgpu.BlendOperationAdd,
		},
	}
	return pl
}

// SetBindGroupLayouts sets the bind group layouts for the pipeline
// layout, in group index order.
func (pl *GraphicsPipeline) SetBindGroupLayouts(bgls ...*wgpu.BindGroupLayout) *GraphicsPipeline {
	pl.bindLayouts = bgls
	return pl
}

// Config creates the pipeline layout and render pipeline from the
// current configuration. SetShaderCode must have been called first.
func (pl *GraphicsPipeline) Config() error {
	if pl.shader == nil {
		return errors.Log(errors.New("gpu.GraphicsPipeline: no shader set for " + pl.Name))
	}
	lay, err := pl.gpu.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            pl.Name,
		BindGroupLayouts: pl.bindLayouts,
	})
	if err != nil {
		return errors.Log(err)
	}
	pl.layout = lay
	rp, err := pl.gpu.Device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  pl.Name,
		Layout: pl.layout,
		Vertex: wgpu.VertexState{
			Module:     pl.shader,
			EntryPoint: pl.vertexEntry,
			Buffers:    pl.vertexLayout,
		},
		Primitive:   pl.Primitive,
		Multisample: pl.Multisample,
		Fragment: &wgpu.FragmentState{
			Module:     pl.shader,
			EntryPoint: pl.fragmentEntry,
			Targets: []wgpu.ColorTargetState{{
				Format:    pl.format,
				Blend:     pl.blend,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
	})
	if err != nil {
		return errors.Log(err)
	}
	pl.renderPipeline = rp
	return nil
}

// BindPipeline binds this pipeline on the given render pass,
// configuring it first if that has not been done yet.
func (pl *GraphicsPipeline) BindPipeline(rp *wgpu.RenderPassEncoder) error {
	if pl.renderPipeline == nil {
		if err := pl.Config(); err != nil {
			return err
		}
	}
	rp.SetPipeline(pl.renderPipeline)
	return nil
}

// Release releases the WebGPU resources held by the pipeline.
func (pl *GraphicsPipeline) Release() {
	if pl.renderPipeline != nil {
		pl.renderPipeline.Release()
		pl.renderPipeline = nil
	}
	if pl.layout != nil {
		pl.layout.Release()
		pl.layout = nil
	}
	if pl.shader != nil {
		pl.shader.Release()
		pl.shader = nil
	}
}
