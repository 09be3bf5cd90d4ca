package stage

import "github.com/go-gl/mathgl/mgl32"

// Transform describes an object's placement relative to its parent
// ("local space"): position, uniform scale and orientation.
//
// Values are stored as given: a zero or negative scale and a non-unit
// orientation are accepted without validation. Normalizing quaternions
// is the caller's responsibility.
type Transform struct {
	Position    mgl32.Vec3
	Scale       float32
	Orientation mgl32.Quat
}

// IdentityTransform returns the identity placement: zero position, unit
// scale, identity orientation.
func IdentityTransform() Transform {
	return Transform{
		Scale:       1,
		Orientation: mgl32.QuatIdent(),
	}
}

// IsIdentity reports whether t equals the identity transform exactly.
// Equality is structural — no epsilon is applied.
func (t Transform) IsIdentity() bool {
	return t == IdentityTransform()
}
