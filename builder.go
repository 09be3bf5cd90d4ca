package stage

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/stage/ecs"
)

// NodeBuilder accumulates a transform node for a scene. It is created
// by Scene.Node, configured by chained calls and consumed exactly once
// by Build. A builder must not be reused after Build.
//
// The builder performs no validation: a zero scale or a non-normalized
// orientation is committed as given.
type NodeBuilder struct {
	scene *Scene
	node  Node
}

// Parent sets the parent reference of the node under construction.
// The default is the root reference.
func (b *NodeBuilder) Parent(parent NodeRef) *NodeBuilder {
	b.node.Parent = parent
	return b
}

// Position sets the local position.
func (b *NodeBuilder) Position(position mgl32.Vec3) *NodeBuilder {
	b.node.Local.Position = position
	return b
}

// Scale sets the local uniform scale.
func (b *NodeBuilder) Scale(scale float32) *NodeBuilder {
	b.node.Local.Scale = scale
	return b
}

// Orientation sets the local orientation.
func (b *NodeBuilder) Orientation(orientation mgl32.Quat) *NodeBuilder {
	b.node.Local.Orientation = orientation
	return b
}

// Build commits the accumulated node and returns its reference. If the
// transform is still the identity, nothing is stored and the parent
// reference is returned unchanged (see NodeList.Commit).
func (b *NodeBuilder) Build() NodeRef {
	return b.scene.nodes.Commit(b.node)
}

// ObjectBuilder accumulates a transform node plus a component bundle
// and spawns an entity on Build. It is created by Scene.Entity,
// configured by chained calls and consumed exactly once by Build.
type ObjectBuilder struct {
	scene  *Scene
	node   Node
	bundle *ecs.Bundle
}

// Parent sets the parent reference of the node under construction.
func (b *ObjectBuilder) Parent(parent NodeRef) *ObjectBuilder {
	b.node.Parent = parent
	return b
}

// Position sets the local position.
func (b *ObjectBuilder) Position(position mgl32.Vec3) *ObjectBuilder {
	b.node.Local.Position = position
	return b
}

// Scale sets the local uniform scale.
func (b *ObjectBuilder) Scale(scale float32) *ObjectBuilder {
	b.node.Local.Scale = scale
	return b
}

// Orientation sets the local orientation.
func (b *ObjectBuilder) Orientation(orientation mgl32.Quat) *ObjectBuilder {
	b.node.Local.Orientation = orientation
	return b
}

// Component appends one typed component value to the entity under
// construction. At most one component per concrete type is allowed;
// a violation is reported by Build.
//
// Components recognized by the library itself:
//   - [Color]
func (b *ObjectBuilder) Component(value any) *ObjectBuilder {
	b.bundle.Add(value)
	return b
}

// Build commits the accumulated node (subject to the identity dedup
// rule), injects the resulting NodeRef into the bundle as an implicit
// component, and spawns the entity.
//
// Every spawned entity therefore carries exactly one NodeRef component,
// even when no new node was allocated — resolving an entity's world
// transform later only takes following parent links from that ref.
//
// Errors from the entity store, such as a duplicate component type,
// abort the build and are returned as-is.
func (b *ObjectBuilder) Build() (ecs.Entity, error) {
	ref := b.scene.nodes.Commit(b.node)
	return b.scene.world.Spawn(b.bundle.Add(ref))
}
