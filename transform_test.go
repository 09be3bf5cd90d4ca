package stage

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIdentityTransform_Default(t *testing.T) {
	got := IdentityTransform()
	want := Transform{
		Position:    mgl32.Vec3{0, 0, 0},
		Scale:       1,
		Orientation: mgl32.Quat{W: 1, V: mgl32.Vec3{0, 0, 0}},
	}
	if got != want {
		t.Errorf("IdentityTransform() = %+v, want %+v", got, want)
	}
	if !got.IsIdentity() {
		t.Error("IdentityTransform().IsIdentity() = false")
	}
}

func TestTransform_IsIdentity(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Transform)
		want   bool
	}{
		{"untouched", func(*Transform) {}, true},
		{"position", func(tr *Transform) { tr.Position = mgl32.Vec3{1, 0, 0} }, false},
		{"scale", func(tr *Transform) { tr.Scale = 2 }, false},
		{"zero scale", func(tr *Transform) { tr.Scale = 0 }, false},
		{"orientation", func(tr *Transform) {
			tr.Orientation = mgl32.QuatRotate(1, mgl32.Vec3{0, 1, 0})
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := IdentityTransform()
			tt.mutate(&tr)
			if got := tr.IsIdentity(); got != tt.want {
				t.Errorf("IsIdentity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransform_NoValidation(t *testing.T) {
	// Degenerate values are stored exactly as given.
	tr := Transform{
		Scale:       -3,
		Orientation: mgl32.Quat{W: 2, V: mgl32.Vec3{5, 0, 0}}, // non-unit
	}
	if tr.Scale != -3 {
		t.Errorf("Scale = %v, want -3", tr.Scale)
	}
	if tr.Orientation.W != 2 {
		t.Errorf("Orientation.W = %v, want 2 (not normalized)", tr.Orientation.W)
	}
}
