// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package window integrates stage with gogpu windowing.
//
// A Window supplies the render context with what it needs at build time
// only: initial surface dimensions and the host device provider. The
// scene/entity core never touches it.
package window

import (
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/stage"
)

// Config describes the initial window.
type Config struct {
	// Title is the window title. Defaults to "stage".
	Title string

	// Width, Height are the initial surface dimensions in pixels.
	// Defaults: 800x600.
	Width  int
	Height int
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = "stage"
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	return c
}

// Window wraps a gogpu application window.
//
// Window is not safe for concurrent use; Run must be called from the
// main goroutine on platforms that require it.
type Window struct {
	app    *gogpu.App
	width  int
	height int
}

// New creates a window with the given configuration. The window becomes
// visible when Run is called.
func New(cfg Config) *Window {
	cfg = cfg.withDefaults()
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(cfg.Width, cfg.Height))
	return &Window{
		app:    app,
		width:  cfg.Width,
		height: cfg.Height,
	}
}

// Size returns the initial surface dimensions.
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// Provider returns the host GPU device provider, suitable for
// render.ContextBuilder.DeviceProvider. gogpu creates the device
// lazily, so the provider may be nil before the first frame.
func (w *Window) Provider() gpucontext.DeviceProvider {
	return w.app.GPUContextProvider()
}

// App returns the underlying gogpu application for integrations that
// need direct access (input events, animation tokens).
func (w *Window) App() *gogpu.App {
	return w.app
}

// Frame is one draw callback invocation.
type Frame struct {
	win *Window
	dc  *gogpu.Context
}

// Size returns the current surface dimensions.
func (f *Frame) Size() (width, height int) {
	return f.dc.Width(), f.dc.Height()
}

// Window returns the window this frame belongs to.
func (f *Frame) Window() *Window {
	return f.win
}

// Run drives the event loop, invoking frame once per draw. It blocks
// until the window closes and returns the loop's error, if any.
func (w *Window) Run(frame func(*Frame)) error {
	w.app.OnDraw(func(dc *gogpu.Context) {
		if width, height := dc.Width(), dc.Height(); width > 0 && height > 0 {
			w.width, w.height = width, height
		}
		frame(&Frame{win: w, dc: dc})
	})
	stage.Logger().Info("window: entering event loop")
	return w.app.Run()
}
