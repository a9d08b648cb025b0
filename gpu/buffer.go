// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/polyview/polyview/base/errors"
)

// Buffer is a GPU buffer with a name and usage. Geometry buffers are
// replaced wholesale with [SetBufferFrom]; uniforms that change value
// but not shape are written in place with [UpdateBufferFrom].
type Buffer struct {
	// Name is used as the label on the WebGPU buffer.
	Name string

	// Usage has the buffer usage flags. It must include CopyDst for
	// [UpdateBufferFrom] to work.
	Usage wgpu.BufferUsage

	// N is the number of elements last uploaded.
	N int

	gpu       *GPU
	buffer    *wgpu.Buffer
	allocSize int
}

// NewBuffer returns a new empty buffer with the given name and usage.
// The underlying GPU buffer is created on first upload.
func NewBuffer(gp *GPU, name string, usage wgpu.BufferUsage) *Buffer {
	return &Buffer{Name: name, Usage: usage, gpu: gp}
}

// Buf returns the underlying WebGPU buffer, nil before first upload.
func (bf *Buffer) Buf() *wgpu.Buffer {
	return bf.buffer
}

// SetBufferFrom uploads the given slice to the buffer, always
// dropping any existing buffer and creating a new one. Geometry
// buffers are replaced, never mutated, so a stale buffer can never
// alias new contents, even when the byte sizes happen to match
// (a cube and an 8-sided polygon have the same vertex byte size).
func SetBufferFrom[E any](bf *Buffer, from []E) error {
	bts := wgpu.ToBytes(from)
	if bf.buffer != nil {
		bf.buffer.Release()
		bf.buffer = nil
	}
	buf, err := bf.gpu.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    bf.Name,
		Contents: bts,
		Usage:    bf.Usage,
	})
	if err != nil {
		return errors.Log(err)
	}
	bf.buffer = buf
	bf.allocSize = len(bts)
	bf.N = len(from)
	return nil
}

// UpdateBufferFrom writes the given slice into the existing buffer in
// place, for uniforms whose values change but whose shape does not.
// Usage must include CopyDst. When no buffer exists yet or the byte
// size differs, it falls back to creating a new one.
func UpdateBufferFrom[E any](bf *Buffer, from []E) error {
	bts := wgpu.ToBytes(from)
	if bf.buffer == nil || bf.allocSize != len(bts) {
		return SetBufferFrom(bf, from)
	}
	if err := bf.gpu.Queue.WriteBuffer(bf.buffer, 0, bts); err != nil {
		return errors.Log(err)
	}
	bf.N = len(from)
	return nil
}

// Release releases the underlying WebGPU buffer.
func (bf *Buffer) Release() {
	if bf.buffer != nil {
		bf.buffer.Release()
		bf.buffer = nil
	}
	bf.allocSize = 0
	bf.N = 0
}
