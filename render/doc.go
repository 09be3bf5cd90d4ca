// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render owns the GPU session for stage.
//
// A Context is built once at startup. It either adopts a device from a
// host application (via a gpucontext.DeviceProvider) or creates its own
// through the gogpu backend: instance, adapter, device, queue. Frame
// submission goes through the Screen interface, implemented by the
// windowing integration; the context itself only clears with the scene
// background and presents.
//
// GPU setup is the one asynchronous boundary in stage and it is
// one-shot: an adapter or device acquisition failure is fatal to
// startup, with no retry or timeout policy.
package render
