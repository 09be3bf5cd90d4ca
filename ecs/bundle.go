package ecs

import (
	"errors"
	"fmt"
	"reflect"
)

// Bundle construction errors.
var (
	// ErrDuplicateComponent is returned (wrapped) when a bundle holds two
	// components of the same concrete type.
	ErrDuplicateComponent = errors.New("ecs: duplicate component type in bundle")

	// ErrNilComponent is returned when a nil component value was added.
	ErrNilComponent = errors.New("ecs: nil component value")
)

type component struct {
	typ   reflect.Type
	value any
}

// Bundle accumulates typed component values destined for one entity.
// Values keep the order they were added in. A bundle is consumed by
// World.Spawn and must not be reused afterwards.
type Bundle struct {
	components []component
	seen       map[reflect.Type]struct{}
	err        error
}

// NewBundle returns an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{seen: make(map[reflect.Type]struct{})}
}

// Add appends one component value and returns the bundle for chaining.
//
// At most one component per concrete type is allowed. Violations are
// recorded and surfaced by World.Spawn rather than here, so chained
// construction never has to stop to check an error.
func (b *Bundle) Add(value any) *Bundle {
	if value == nil {
		if b.err == nil {
			b.err = ErrNilComponent
		}
		return b
	}
	t := reflect.TypeOf(value)
	if _, dup := b.seen[t]; dup {
		if b.err == nil {
			b.err = fmt.Errorf("%w: %s", ErrDuplicateComponent, t)
		}
		return b
	}
	b.seen[t] = struct{}{}
	b.components = append(b.components, component{typ: t, value: value})
	return b
}

// Len returns the number of components accumulated so far.
func (b *Bundle) Len() int {
	return len(b.components)
}

// Err returns the first construction error, or nil.
func (b *Bundle) Err() error {
	return b.err
}
