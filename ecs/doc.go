// Package ecs provides the entity-component store behind stage scenes.
//
// The store is type-erased: components are arbitrary Go values, kept in
// one column per concrete type and keyed by the entity that owns them.
// The world never needs component types declared up front, which is what
// lets the scene builder accept heterogeneous values through a single
// Component call.
//
// Usage:
//
//	world := ecs.NewWorld()
//	e, err := world.Spawn(ecs.NewBundle().
//	    Add(Health{100}).
//	    Add(Position{1, 2, 3}))
//	if err != nil {
//	    // duplicate component type in the bundle
//	}
//	hp, ok := ecs.Get[Health](world, e)
//
// A World is not safe for concurrent use.
package ecs
