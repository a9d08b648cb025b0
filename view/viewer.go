// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"embed"
	"image"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/polyview/polyview/base/errors"
	"github.com/polyview/polyview/gpu"
	"github.com/polyview/polyview/gpu/overlay"
	"github.com/polyview/polyview/mesh"
)

//go:embed shaders/*.wgsl
var shaders embed.FS

// Viewer renders the selected shape to a window surface, switching
// between shader pipelines and regenerating geometry as the state
// changes.
type Viewer struct {
	GPU     *gpu.GPU
	Surface *gpu.Surface
	Render  *gpu.Render
	Camera  *Camera
	Overlay *overlay.Drawer

	pipelines map[string]*gpu.GraphicsPipeline
	camBuf    *gpu.Buffer
	camBGL    *wgpu.BindGroupLayout
	camBG     *wgpu.BindGroup
	vtx       *gpu.Buffer
	idx       *gpu.Buffer
	loop      LoopState
	warned    map[string]bool
}

// polygonRadius is the circumradius of the displayed polygon.
const polygonRadius = 0.5

// vertexLayout describes [mesh.Vertex] to the shader pipelines.
var vertexLayout = wgpu.VertexBufferLayout{
	ArrayStride: 6 * 4,
	StepMode:    wgpu.VertexStepModeVertex,
	Attributes: []wgpu.VertexAttribute{
		{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
		{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
	},
}

// NewViewer returns a Viewer rendering to the given surface, with the
// main and challenge pipelines compiled and the camera uniform set up.
func NewViewer(gp *gpu.GPU, sf *gpu.Surface) (*Viewer, error) {
	vw := &Viewer{
		GPU:     gp,
		Surface: sf,
		Render:  gpu.NewRender(gpu.DefaultClearColor),
		Camera:  NewCamera(sf.Format.Aspect()),
		warned:  map[string]bool{},
	}

	vw.camBuf = gpu.NewBuffer(gp, "camera", wgpu.BufferUsageUniform|wgpu.BufferUsageCopyDst)
	if err := gpu.SetBufferFrom(vw.camBuf, []CameraUniform{vw.Camera.Uniform()}); err != nil {
		return nil, err
	}

	bgl, err := gp.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "camera-bind-layout",
		Entries: []wgpu.BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: wgpu.ShaderStageVertex,
			Buffer: wgpu.BufferBindingLayout{
				Type: wgpu.BufferBindingTypeUniform,
			},
		}},
	})
	if err != nil {
		return nil, errors.Log(err)
	}
	vw.camBGL = bgl

	bg, err := gp.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "camera-bind-group",
		Layout: bgl,
		Entries: []wgpu.BindGroupEntry{{
			Binding: 0,
			Buffer:  vw.camBuf.Buf(),
			Offset:  0,
			Size:    wgpu.WholeSize,
		}},
	})
	if err != nil {
		return nil, errors.Log(err)
	}
	vw.camBG = bg

	// geometry buffers are replaced on regeneration, never written
	// in place, so they do not carry CopyDst
	vw.vtx = gpu.NewBuffer(gp, "shape-vertices", wgpu.BufferUsageVertex)
	vw.idx = gpu.NewBuffer(gp, "shape-indices", wgpu.BufferUsageIndex)

	vw.pipelines = map[string]*gpu.GraphicsPipeline{}
	for _, name := range []string{ShaderMain, ShaderChallenge} {
		pl, err := vw.makePipeline(name)
		if err != nil {
			return nil, err
		}
		vw.pipelines[name] = pl
	}

	vw.Overlay, err = overlay.NewDrawer(gp, sf.Format.Format)
	if err != nil {
		return nil, err
	}
	return vw, nil
}

func (vw *Viewer) makePipeline(name string) (*gpu.GraphicsPipeline, error) {
	code, err := shaders.ReadFile("shaders/" + name + ".wgsl")
	if err != nil {
		return nil, errors.Log(err)
	}
	pl := gpu.NewGraphicsPipeline(vw.GPU, name, vw.Surface.Format.Format)
	if err := pl.SetShaderCode(string(code)); err != nil {
		return nil, err
	}
	pl.SetEntries("vs_main", "fs_main")
	pl.SetCullMode(wgpu.CullModeNone)
	pl.SetVertexLayout(vertexLayout)
	pl.SetBindGroupLayouts(vw.camBGL)
	if err := pl.Config(); err != nil {
		return nil, err
	}
	return pl, nil
}

// PipelineFor returns the pipeline for the given shader name, falling
// back to the main pipeline for unknown names with a one-time warning.
func (vw *Viewer) PipelineFor(name string) *gpu.GraphicsPipeline {
	if pl, ok := vw.pipelines[name]; ok {
		return pl
	}
	if !vw.warned[name] {
		slog.Warn("view: unknown shader, using main", "shader", name)
		vw.warned[name] = true
	}
	return vw.pipelines[ShaderMain]
}

// SetSize reconfigures the surface and camera for a new framebuffer
// size, re-uploading the camera uniform.
func (vw *Viewer) SetSize(size image.Point) error {
	vw.Surface.SetSize(size)
	vw.Camera.SetAspect(vw.Surface.Format.Aspect())
	return gpu.UpdateBufferFrom(vw.camBuf, []CameraUniform{vw.Camera.Uniform()})
}

// regenerate rebuilds the shape mesh for the given state and uploads
// it to the vertex and index buffers.
func (vw *Viewer) regenerate(st State) error {
	var ms mesh.Mesh
	switch st.Shape {
	case Cube:
		ms = mesh.Cube()
	default:
		var err error
		ms, err = mesh.Polygon(st.Sides, polygonRadius)
		if err != nil {
			return err
		}
	}
	if err := gpu.SetBufferFrom(vw.vtx, ms.Vertices); err != nil {
		return err
	}
	return gpu.SetBufferFrom(vw.idx, ms.Indices)
}

// Frame renders one frame of the given state, compositing the given
// interface image over the scene when it is non-nil. Geometry is
// regenerated only when the state's geometry differs from the last
// frame's.
func (vw *Viewer) Frame(st State, uiImg *image.RGBA) error {
	var eff Effects
	vw.loop, eff = Reduce(vw.loop, st, RedrawRequest{})
	if eff.Regenerate {
		if err := vw.regenerate(st); err != nil {
			return err
		}
	}

	view, err := vw.Surface.GetCurrentTexture()
	if err != nil {
		return err
	}
	cmd, err := vw.GPU.Device.CreateCommandEncoder(nil)
	if err != nil {
		return errors.Log(err)
	}

	// scene pass clears, the overlay pass loads over it
	rp := vw.Render.BeginRenderPass(cmd, view)
	pl := vw.PipelineFor(st.Shader)
	err = pl.BindPipeline(rp)
	if err == nil {
		rp.SetBindGroup(0, vw.camBG, nil)
		rp.SetVertexBuffer(0, vw.vtx.Buf(), 0, wgpu.WholeSize)
		rp.SetIndexBuffer(vw.idx.Buf(), wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
		rp.DrawIndexed(uint32(vw.idx.N), 1, 0, 0, 0)
	}
	rp.End()
	rp.Release()
	if err != nil {
		return err
	}

	if uiImg != nil {
		if err := vw.Overlay.SetImage(uiImg); err != nil {
			return err
		}
		rp = vw.Render.BeginRenderPassNoClear(cmd, view)
		err = vw.Overlay.Draw(rp)
		rp.End()
		rp.Release()
		if err != nil {
			return err
		}
	}

	cmdBuf, err := cmd.Finish(nil)
	if err != nil {
		return errors.Log(err)
	}
	vw.GPU.Queue.Submit(cmdBuf)
	cmdBuf.Release()
	cmd.Release()
	vw.Surface.Present()
	return nil
}

// Release releases all WebGPU resources held by the viewer.
func (vw *Viewer) Release() {
	if vw.Overlay != nil {
		vw.Overlay.Release()
		vw.Overlay = nil
	}
	for _, pl := range vw.pipelines {
		pl.Release()
	}
	vw.pipelines = nil
	if vw.camBG != nil {
		vw.camBG.Release()
		vw.camBG = nil
	}
	if vw.camBGL != nil {
		vw.camBGL.Release()
		vw.camBGL = nil
	}
	if vw.camBuf != nil {
		vw.camBuf.Release()
	}
	if vw.vtx != nil {
		vw.vtx.Release()
	}
	if vw.idx != nil {
		vw.idx.Release()
	}
	if vw.Surface != nil {
		vw.Surface.Release()
	}
}
