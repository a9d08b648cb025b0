// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/polyview/polyview/base/errors"
)

// Surface manages the window's presentable textures: it owns the
// WebGPU surface configuration and hands out one texture view per
// frame, which must be presented with [Surface.Present].
type Surface struct {
	// Format has the current surface format and size.
	Format TextureFormat

	surface *wgpu.Surface
	config  wgpu.SurfaceConfiguration
	gpu     *GPU

	// texture acquired for the current frame, released on Present.
	curTexture *wgpu.Texture
	curView    *wgpu.TextureView
}

// NewSurface configures the given window surface for presentation at
// the given size, preferring the BGRA8UnormSrgb format with vsync.
// WebGPU has no internal mechanism for tracking window resizes, so
// [Surface.SetSize] must be driven from window events.
func NewSurface(gp *GPU, sp *wgpu.Surface, size image.Point) *Surface {
	sf := &Surface{gpu: gp, surface: sp}
	caps := sp.GetCapabilities(gp.Adapter)
	format := caps.Formats[0]
	for _, f := range caps.Formats {
		if f == wgpu.TextureFormatBGRA8UnormSrgb {
			format = f
			break
		}
	}
	sf.Format.Set(size.X, size.Y, format)
	sf.config = wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       uint32(size.X),
		Height:      uint32(size.Y),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	}
	sf.surface.Configure(gp.Adapter, gp.Device, &sf.config)
	if Debug {
		slog.Info("gpu: surface configured", "format", sf.Format.String())
	}
	return sf
}

// SetSize reconfigures the surface for a new window size,
// doing nothing if the size is unchanged or degenerate.
func (sf *Surface) SetSize(size image.Point) {
	if size.X <= 0 || size.Y <= 0 || size == sf.Format.Size {
		return
	}
	sf.Format.Size = size
	sf.reconfigure()
}

func (sf *Surface) reconfigure() {
	sf.config.Width = uint32(sf.Format.Size.X)
	sf.config.Height = uint32(sf.Format.Size.Y)
	sf.surface.Configure(sf.gpu.Adapter, sf.gpu.Device, &sf.config)
}

// GetCurrentTexture returns a view of the next presentable texture.
// On acquisition failure it reconfigures the surface and retries once,
// which covers transient swapchain loss around resizes; a second
// failure is returned and should be treated as fatal.
func (sf *Surface) GetCurrentTexture() (*wgpu.TextureView, error) {
	tex, err := sf.surface.GetCurrentTexture()
	if err != nil {
		slog.Error("gpu: surface texture acquisition failed, reconfiguring", "err", err)
		sf.reconfigure()
		tex, err = sf.surface.GetCurrentTexture()
		if err != nil {
			return nil, errors.Log(fmt.Errorf("gpu: failed to acquire surface texture: %w", err))
		}
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, errors.Log(fmt.Errorf("gpu: failed to create surface view: %w", err))
	}
	sf.curTexture = tex
	sf.curView = view
	return view, nil
}

// Present presents the current frame to the window and releases the
// texture acquired by [Surface.GetCurrentTexture].
func (sf *Surface) Present() {
	sf.surface.Present()
	if sf.curView != nil {
		sf.curView.Release()
		sf.curView = nil
	}
	if sf.curTexture != nil {
		sf.curTexture.Release()
		sf.curTexture = nil
	}
}

// Release releases the surface. The window owns the underlying
// platform surface, so only the configuration is dropped here.
func (sf *Surface) Release() {
	if sf.surface != nil {
		sf.surface.Release()
		sf.surface = nil
	}
}
