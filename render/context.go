// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gogpu/gpu"
	"github.com/gogpu/gogpu/gpu/types"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/stage"
)

// Errors returned by context construction and rendering.
var (
	// ErrNoGPUBackend is returned when no GPU backend or adapter is
	// available. Startup cannot proceed past it.
	ErrNoGPUBackend = errors.New("render: no GPU backend available")

	// ErrDeviceCreationFailed is returned when the logical device could
	// not be created from the selected adapter.
	ErrDeviceCreationFailed = errors.New("render: device creation failed")

	// ErrNoScreen is returned by RenderScreen when the context was built
	// without a screen.
	ErrNoScreen = errors.New("render: no screen is configured")

	// ErrClosed is returned when operations are attempted on a closed
	// context.
	ErrClosed = errors.New("render: context is closed")

	// ErrNilScene is returned by RenderScreen for a nil scene.
	ErrNilScene = errors.New("render: nil scene")
)

// Context owns the GPU session: a device either adopted from a host
// application or created through the gogpu backend, plus the optional
// screen frames are submitted to.
//
// A Context is built once at startup via NewContext and released with
// Close. It is not safe for concurrent use.
type Context struct {
	// gogpu-owned resources; zero when the device was adopted.
	gpuBackend gpu.Backend
	instance   types.Instance
	adapter    types.Adapter
	device     types.Device
	queue      types.Queue

	// provider is the host device handle; nil when stage created the
	// device itself.
	provider DeviceHandle

	screen Screen
	closed bool
}

// ContextBuilder accumulates configuration for a Context. Obtain one
// from NewContext, chain configuration calls, finish with Build.
type ContextBuilder struct {
	screen      Screen
	provider    DeviceHandle
	powerHungry bool
}

// NewContext returns a builder for a Context.
func NewContext() *ContextBuilder {
	return &ContextBuilder{}
}

// Screen attaches the surface frames will be presented to. Without a
// screen the context is headless and RenderScreen fails.
func (b *ContextBuilder) Screen(s Screen) *ContextBuilder {
	b.screen = s
	return b
}

// PowerHungry selects the high-performance GPU adapter instead of the
// low-power one. The default is low power.
func (b *ContextBuilder) PowerHungry(hungry bool) *ContextBuilder {
	b.powerHungry = hungry
	return b
}

// DeviceProvider adopts an existing device from the host application
// instead of creating one. When set, the gogpu init path and the power
// preference are skipped entirely, and Close leaves the device to its
// host.
func (b *ContextBuilder) DeviceProvider(h DeviceHandle) *ContextBuilder {
	b.provider = h
	return b
}

// Build performs the one-shot GPU setup and returns the context.
//
// With a device provider, the host device is adopted as-is. Otherwise
// the gogpu backend is initialized and walked through instance, adapter,
// device and queue. Acquisition failure is fatal to startup: the error
// is returned and there is no retry.
func (b *ContextBuilder) Build() (*Context, error) {
	c := &Context{
		provider: b.provider,
		screen:   b.screen,
	}

	if b.provider != nil {
		stage.Logger().Info("render: adopted host GPU device")
		return c, nil
	}

	gpuBackend := gpu.GetBackend()
	if gpuBackend == nil {
		if err := gpu.InitDefaultBackend(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoGPUBackend, err)
		}
		gpuBackend = gpu.GetBackend()
	}
	if gpuBackend == nil {
		return nil, ErrNoGPUBackend
	}
	c.gpuBackend = gpuBackend

	instance, err := gpuBackend.CreateInstance()
	if err != nil {
		return nil, fmt.Errorf("render: instance creation failed: %w", err)
	}
	c.instance = instance

	power := gputypes.PowerPreferenceLowPower
	if b.powerHungry {
		power = gputypes.PowerPreferenceHighPerformance
	}
	adapter, err := gpuBackend.RequestAdapter(instance, &types.AdapterOptions{
		PowerPreference: power,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoGPUBackend, err)
	}
	c.adapter = adapter

	device, err := gpuBackend.RequestDevice(adapter, &types.DeviceOptions{
		Label: "stage-device",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeviceCreationFailed, err)
	}
	c.device = device
	c.queue = gpuBackend.GetQueue(device)

	stage.Logger().Info("render: GPU context initialized",
		"backend", gpuBackend.Name())
	return c, nil
}

// RenderScreen submits one frame: the screen's next frame is cleared
// with the scene's background color and presented. Call once per frame.
//
// The background is read as-is from the scene; no validation is
// performed on it.
func (c *Context) RenderScreen(s *stage.Scene) error {
	if c.closed {
		return ErrClosed
	}
	if s == nil {
		return ErrNilScene
	}
	if c.screen == nil {
		return ErrNoScreen
	}

	frame, err := c.screen.Acquire()
	if err != nil {
		return fmt.Errorf("render: frame acquisition failed: %w", err)
	}
	if err := frame.Clear(s.Background); err != nil {
		return fmt.Errorf("render: clear failed: %w", err)
	}
	frame.Present()
	return nil
}

// Screen returns the screen the context presents to, or nil for a
// headless context.
func (c *Context) Screen() Screen {
	if c.closed {
		return nil
	}
	return c.screen
}

// Provider returns the host device handle, or nil when stage created
// the device itself.
func (c *Context) Provider() DeviceHandle {
	return c.provider
}

// Device returns the gogpu device handle. It is zero when the device
// was adopted from a host provider.
func (c *Context) Device() types.Device {
	return c.device
}

// Queue returns the gogpu queue handle. It is zero when the device was
// adopted from a host provider.
func (c *Context) Queue() types.Queue {
	return c.queue
}

// Close releases the GPU session. Teardown is explicit rather than left
// to garbage collection: handles stage created through the gogpu
// backend are dropped here, while a device adopted via DeviceProvider
// stays with its host untouched.
//
// Close is idempotent and always returns nil today; the error return is
// part of the contract for backends whose release can fail.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	if c.provider != nil {
		// Host owns the device; dropping our reference is enough.
		c.provider = nil
		stage.Logger().Info("render: context closed (host device retained)")
		return nil
	}

	// Handles are managed by the gogpu backend; zeroing severs them.
	c.device = 0
	c.adapter = 0
	c.instance = 0
	c.queue = 0
	c.gpuBackend = nil

	stage.Logger().Info("render: context closed")
	return nil
}
