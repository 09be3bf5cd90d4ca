// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/stage"
)

// Screen is the frame submission boundary. A windowing integration
// implements Screen on top of its swapchain; the Context only ever
// acquires, clears and presents through it, so stage stays independent
// of any particular presentation library.
type Screen interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height uint32)

	// Format returns the surface texture format.
	Format() gputypes.TextureFormat

	// Acquire returns the next frame to render into.
	Acquire() (Frame, error)
}

// Frame is one acquired swapchain image.
type Frame interface {
	// Clear records a full-surface clear with the given color.
	Clear(c stage.Color) error

	// Present submits the frame to the screen.
	Present()
}

// NullScreen is a Screen that discards every frame. It serves headless
// operation and tests, mirroring NullDeviceHandle.
type NullScreen struct {
	// W, H are the dimensions Size reports.
	W, H uint32
}

// Size returns the configured dimensions.
func (s NullScreen) Size() (uint32, uint32) { return s.W, s.H }

// Format returns an undefined format for the null screen.
func (s NullScreen) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Acquire returns a frame that accepts and discards all operations.
func (s NullScreen) Acquire() (Frame, error) { return nullFrame{}, nil }

type nullFrame struct{}

func (nullFrame) Clear(stage.Color) error { return nil }
func (nullFrame) Present()                {}

// Ensure NullScreen implements Screen.
var _ Screen = NullScreen{}
