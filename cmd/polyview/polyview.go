// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Polyview is an interactive shape viewer: it displays a regular
// polygon or a cube under one of two shader pipelines, with a 2D
// control panel composited over the scene.
package main

import (
	"flag"
	"image"
	"log"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/polyview/polyview/config"
	"github.com/polyview/polyview/gpu"
	"github.com/polyview/polyview/ui"
	"github.com/polyview/polyview/view"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	cfgFile := flag.String("config", "", "TOML configuration file")
	width := flag.Int("width", 0, "window width, overriding the configuration")
	height := flag.Int("height", 0, "window height, overriding the configuration")
	debug := flag.Bool("debug", false, "enable gpu debug logging")
	flag.Parse()

	cfg := config.Defaults()
	file := *cfgFile
	if file == "" {
		if _, err := os.Stat("polyview.toml"); err == nil {
			file = "polyview.toml"
		}
	}
	if file != "" {
		var err error
		cfg, err = config.Open(file)
		if err != nil {
			os.Exit(1)
		}
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	gpu.Debug = *debug

	if err := gpu.Init(); err != nil {
		log.Fatal(err)
	}

	gp := gpu.NewGPU()
	window, sp, err := gpu.GLFWCreateWindow(gp, image.Point{cfg.Width, cfg.Height}, cfg.Title)
	if err != nil {
		log.Fatal(err)
	}
	if err := gp.Config("polyview", sp); err != nil {
		log.Fatal(err)
	}

	fbw, fbh := window.GetFramebufferSize()
	sf := gpu.NewSurface(gp, sp, image.Point{fbw, fbh})
	vw, err := view.NewViewer(gp, sf)
	if err != nil {
		log.Fatal(err)
	}

	state := cfg.State()
	uiman, err := ui.NewManager(&state)
	if err != nil {
		log.Fatal(err)
	}

	var events []view.Event
	window.SetCloseCallback(func(w *glfw.Window) {
		events = append(events, view.CloseRequest{})
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		events = append(events, view.ModifiersChanged{Mods: mods})
		if action == glfw.Press {
			events = append(events, view.KeyPress{Key: key, Mods: mods})
		}
	})
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		events = append(events, view.Resize{Size: image.Point{width, height}})
	})
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		// cursor positions are in screen coordinates, the ui works
		// in framebuffer pixels
		px, py, pressed := cursorState(w)
		uiman.SetPointer(px, py, pressed)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		px, py, _ := cursorState(w)
		uiman.SetPointer(px, py, action == glfw.Press)
	})

	destroy := func() {
		vw.Release()
		gp.Release()
		window.Destroy()
		gpu.Terminate()
	}

	var loop view.LoopState
	fpsTicker := time.NewTicker(time.Second / 60)
	defer fpsTicker.Stop()
	for range fpsTicker.C {
		glfw.PollEvents()

		quit := false
		for _, ev := range events {
			var eff view.Effects
			loop, eff = view.Reduce(loop, state, ev)
			if eff.Quit {
				quit = true
			}
			if eff.Reconfigure != nil {
				if err := vw.SetSize(*eff.Reconfigure); err != nil {
					slog.Error("polyview: resize failed", "err", err)
				}
			}
		}
		events = events[:0]
		if quit {
			break
		}

		csx, _ := window.GetContentScale()
		fbw, fbh := window.GetFramebufferSize()
		uiImg := uiman.Frame(image.Point{fbw, fbh}, csx*state.Scale)

		if err := vw.Frame(state, uiImg); err != nil {
			slog.Error("polyview: frame failed", "err", err)
			break
		}
	}
	destroy()
}

// cursorState returns the cursor position in framebuffer pixels and
// whether the left button is held.
func cursorState(w *glfw.Window) (x, y float64, pressed bool) {
	cx, cy := w.GetCursorPos()
	csx, csy := w.GetContentScale()
	return cx * float64(csx), cy * float64(csy),
		w.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
}
