package ecs

import (
	"errors"
	"reflect"
)

// ErrNilBundle is returned by Spawn when given a nil bundle.
var ErrNilBundle = errors.New("ecs: nil bundle")

// Entity is an opaque identifier issued by a World on spawn. Entities
// are only ever constructed by the world; the zero value never names a
// live entity.
type Entity struct {
	id uint32
}

// IsZero reports whether e is the zero Entity.
func (e Entity) IsZero() bool {
	return e.id == 0
}

// World associates entities with heterogeneous sets of typed
// components. Component storage is one column per concrete type, keyed
// by reflect.Type, so the world never enumerates component types.
//
// World is not safe for concurrent use.
type World struct {
	nextID  uint32
	columns map[reflect.Type]map[Entity]any
	counts  map[Entity]int
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{
		columns: make(map[reflect.Type]map[Entity]any),
		counts:  make(map[Entity]int),
	}
}

// Spawn stores the bundle's components as one unit and returns a fresh,
// unique entity. The bundle is validated before anything is stored: on
// error no column is touched and no partial entity is observable.
func (w *World) Spawn(b *Bundle) (Entity, error) {
	if b == nil {
		return Entity{}, ErrNilBundle
	}
	if b.err != nil {
		return Entity{}, b.err
	}

	w.nextID++
	e := Entity{id: w.nextID}
	for _, c := range b.components {
		col := w.columns[c.typ]
		if col == nil {
			col = make(map[Entity]any)
			w.columns[c.typ] = col
		}
		col[e] = c.value
	}
	w.counts[e] = len(b.components)
	return e, nil
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.counts)
}

// Contains reports whether e was spawned by this world.
func (w *World) Contains(e Entity) bool {
	_, ok := w.counts[e]
	return ok
}

// ComponentCount returns how many components e carries, or 0 for an
// unknown entity.
func (w *World) ComponentCount(e Entity) int {
	return w.counts[e]
}

// Get returns the component of concrete type T attached to e.
func Get[T any](w *World, e Entity) (T, bool) {
	col := w.columns[reflect.TypeFor[T]()]
	if col == nil {
		var zero T
		return zero, false
	}
	v, ok := col[e]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Has reports whether e carries a component of concrete type T.
func Has[T any](w *World, e Entity) bool {
	_, ok := Get[T](w, e)
	return ok
}
