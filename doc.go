// Package stage is a minimal real-time rendering scaffold for the GoGPU
// ecosystem.
//
// # Overview
//
// stage pairs a small scene graph with an entity-component store. A Scene
// owns an append-only list of transform nodes, a typed component world
// and a background color; fluent builders attach new nodes and entities
// to it. The GPU device and surface live in the render subpackage, which
// either adopts a device from a host application or creates one through
// the gogpu backend.
//
// # Quick Start
//
//	import "github.com/gogpu/stage"
//
//	scene := stage.NewScene()
//	scene.Background = stage.NewColor(0.1, 0.2, 0.3, 1)
//
//	// A bare transform node:
//	anchor := scene.Node().
//	    Position(mgl32.Vec3{0, 1, 0}).
//	    Build()
//
//	// An entity parented to it, carrying a Color component:
//	sprite, err := scene.Entity().
//	    Parent(anchor).
//	    Position(mgl32.Vec3{2, 0, 0}).
//	    Component(stage.ColorRed).
//	    Build()
//
// Every entity carries a stage.NodeRef component locating it in the
// transform hierarchy, injected automatically by the builder.
//
// # Architecture
//
// The library is organized into:
//   - Root package: Scene, Node, NodeRef, Transform, Color, builders
//   - ecs: the type-erased entity-component store
//   - render: GPU context, device boundary, screen submission
//   - window: gogpu windowing integration
//
// # Concurrency
//
// A Scene and its builders are single-threaded: no internal locking is
// performed and concurrent mutation is not supported. The
// only asynchronous boundary is the one-shot GPU setup in render.
package stage

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
