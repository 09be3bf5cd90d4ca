package stage

import "github.com/gogpu/stage/ecs"

// Scene is the owning aggregate for one rendering session: the node
// store, the entity world and the background color. It is the sole
// entry point for constructing graph content — use the Node and Entity
// builders to add to it.
//
// Scene is not safe for concurrent use. A builder mutates its scene
// directly; run one builder at a time.
//
// Example:
//
//	scene := NewScene()
//	anchor := scene.Node().Position(mgl32.Vec3{0, 1, 0}).Build()
//	_, err := scene.Entity().
//	    Parent(anchor).
//	    Component(ColorRed).
//	    Build()
type Scene struct {
	nodes NodeList
	world *ecs.World

	// Background is the clear color consumed by render.Context once per
	// frame. It may be mutated freely; no validation is applied.
	Background Color
}

// NewScene returns an empty scene: no nodes, no entities, opaque black
// background.
func NewScene() *Scene {
	return &Scene{
		world:      ecs.NewWorld(),
		Background: ColorBlack,
	}
}

// Node returns a builder for a bare transform node, without components.
func (s *Scene) Node() *NodeBuilder {
	return &NodeBuilder{
		scene: s,
		node:  Node{Local: IdentityTransform()},
	}
}

// Entity returns a builder for an entity: a transform node plus an
// accumulating component bundle.
func (s *Scene) Entity() *ObjectBuilder {
	return &ObjectBuilder{
		scene:  s,
		node:   Node{Local: IdentityTransform()},
		bundle: ecs.NewBundle(),
	}
}

// Nodes returns the scene's node store.
func (s *Scene) Nodes() *NodeList {
	return &s.nodes
}

// World returns the scene's entity store.
func (s *Scene) World() *ecs.World {
	return s.world
}
