// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu provides a thin layer over WebGPU for the viewer:
// device setup, surface presentation, render pipelines, and
// vertex / index / uniform buffers.
package gpu

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/polyview/polyview/base/errors"
)

// Debug enables additional logging of GPU configuration steps.
var Debug = false

// GPU represents the WebGPU instance, the adapter selected from it,
// and the logical device and queue created on the adapter.
// All rendering objects in this package hang off one GPU.
type GPU struct {
	// Instance represents the WebGPU system overall.
	Instance *wgpu.Instance

	// Adapter is the physical GPU selected for rendering.
	Adapter *wgpu.Adapter

	// Device is the logical device, which we own and release.
	Device *wgpu.Device

	// Queue is the command queue for the device.
	Queue *wgpu.Queue
}

// NewGPU returns a new GPU with the WebGPU instance created.
// Call [GPU.Config] once a surface is available to complete setup.
func NewGPU() *GPU {
	gp := &GPU{}
	gp.Instance = wgpu.CreateInstance(nil)
	return gp
}

// Config requests an adapter compatible with the given surface and
// creates the logical device and queue. Failures here mean no usable
// GPU exists and must be treated as fatal by the caller.
func (gp *GPU) Config(label string, surface *wgpu.Surface) error {
	adapter, err := gp.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
	})
	if err != nil {
		return errors.Log(fmt.Errorf("gpu: no suitable adapter: %w", err))
	}
	gp.Adapter = adapter

	device, err := adapter.RequestDevice(nil)
	if err != nil {
		return errors.Log(fmt.Errorf("gpu: failed to create device: %w", err))
	}
	gp.Device = device
	gp.Queue = device.GetQueue()
	if Debug {
		slog.Info("gpu: device configured", "label", label)
	}
	return nil
}

// WaitDone blocks until the device is done with all submitted work.
func (gp *GPU) WaitDone() {
	if gp.Device != nil {
		gp.Device.Poll(true, nil)
	}
}

// Release releases the device and adapter, in reverse order of
// creation. Call as the last GPU operation before exiting.
func (gp *GPU) Release() {
	if gp.Device != nil {
		gp.WaitDone()
		gp.Device.Release()
		gp.Device = nil
		gp.Queue = nil
	}
	if gp.Adapter != nil {
		gp.Adapter.Release()
		gp.Adapter = nil
	}
	if gp.Instance != nil {
		gp.Instance.Release()
		gp.Instance = nil
	}
}
