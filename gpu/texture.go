// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/polyview/polyview/base/errors"
)

// Texture is a sampled 2D texture that can be filled from a Go image.
type Texture struct {
	// Name is used as the label on the WebGPU texture.
	Name string

	// Format has the size and pixel format of the texture.
	Format TextureFormat

	gpu     *GPU
	texture *wgpu.Texture
	view    *wgpu.TextureView
}

// NewTexture returns a new texture with no allocated storage.
// SetFromGoImage allocates and uploads.
func NewTexture(gp *GPU, name string) *Texture {
	tx := &Texture{Name: name, gpu: gp}
	tx.Format.Defaults()
	return tx
}

// View returns the texture view, nil before the first upload.
func (tx *Texture) View() *wgpu.TextureView {
	return tx.view
}

// SetFromGoImage uploads the given image to the texture, creating or
// recreating the texture when the size changes. The image format is
// always RGBA.
func (tx *Texture) SetFromGoImage(img *image.RGBA) error {
	sz := img.Rect.Size()
	if tx.texture == nil || tx.Format.Size != sz {
		tx.release()
		tx.Format.Size = sz
		tx.Format.Format = wgpu.TextureFormatRGBA8UnormSrgb
		t, err := tx.gpu.Device.CreateTexture(&wgpu.TextureDescriptor{
			Label:         tx.Name,
			Size:          tx.Format.Extent3D(),
			MipLevelCount: 1,
			SampleCount:   1,
			Dimension:     wgpu.TextureDimension2D,
			Format:        tx.Format.Format,
			Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		})
		if err != nil {
			return errors.Log(err)
		}
		tx.texture = t
		tx.view, err = t.CreateView(nil)
		if err != nil {
			return errors.Log(err)
		}
	}
	ext := tx.Format.Extent3D()
	tx.gpu.Queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Aspect:   wgpu.TextureAspectAll,
			Texture:  tx.texture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
		},
		img.Pix,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(img.Stride),
			RowsPerImage: uint32(sz.Y),
		},
		&ext,
	)
	return nil
}

func (tx *Texture) release() {
	if tx.view != nil {
		tx.view.Release()
		tx.view = nil
	}
	if tx.texture != nil {
		tx.texture.Release()
		tx.texture = nil
	}
}

// Release releases the WebGPU resources held by the texture.
func (tx *Texture) Release() {
	tx.release()
}
