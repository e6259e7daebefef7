package camera

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func almostEqual(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < eps
}

func TestSettersLastWriteWins(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 5}, DefaultNearClip, DefaultFarClip, DefaultFov)

	c.SetNearClip(0.5)
	c.SetNearClip(2.0)
	if c.NearClip() != 2.0 {
		t.Errorf("near clip = %v, want 2.0", c.NearClip())
	}

	c.SetFarClip(100)
	c.SetFarClip(50)
	if c.FarClip() != 50 {
		t.Errorf("far clip = %v, want 50", c.FarClip())
	}
}

func TestNearMayExceedFar(t *testing.T) {
	// The setters deliberately perform no cross-field validation.
	c := New(mgl32.Vec3{}, DefaultNearClip, DefaultFarClip, DefaultFov)
	c.SetNearClip(90)
	c.SetFarClip(10)

	if c.NearClip() != 90 || c.FarClip() != 10 {
		t.Errorf("setters rejected inverted frustum: near=%v far=%v",
			c.NearClip(), c.FarClip())
	}
}

func TestFovDegreeRoundTrip(t *testing.T) {
	c := New(mgl32.Vec3{}, DefaultNearClip, DefaultFarClip, DefaultFov)

	for _, deg := range []float32{0.01, 1, 45, 60, 90, 120, 179.5, 180} {
		c.SetFov(mgl32.DegToRad(deg))
		got := mgl32.RadToDeg(c.Fov())
		if !almostEqual(got, deg) {
			t.Errorf("fov round trip: set %v deg, got %v deg", deg, got)
		}
	}
}

func TestViewMatrixLooksDownNegativeZ(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 10}, DefaultNearClip, DefaultFarClip, DefaultFov)

	// A point in front of the camera ends up on the negative view-space
	// Z axis at the right distance.
	v := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !almostEqual(v.X(), 0) || !almostEqual(v.Y(), 0) || !almostEqual(v.Z(), -10) {
		t.Errorf("view-space origin = %v, want (0, 0, -10)", v)
	}
}

func TestProjectionRespectsClipPlanes(t *testing.T) {
	c := New(mgl32.Vec3{}, 1, 100, mgl32.DegToRad(90))
	proj := c.ProjectionMatrix(1)

	// Point on the near plane maps to NDC z = -1.
	near := proj.Mul4x1(mgl32.Vec4{0, 0, -1, 1})
	if !almostEqual(near.Z()/near.W(), -1) {
		t.Errorf("near plane NDC z = %v, want -1", near.Z()/near.W())
	}

	// Point on the far plane maps to NDC z = +1.
	far := proj.Mul4x1(mgl32.Vec4{0, 0, -100, 1})
	if !almostEqual(far.Z()/far.W(), 1) {
		t.Errorf("far plane NDC z = %v, want 1", far.Z()/far.W())
	}
}

func TestLookAt(t *testing.T) {
	tests := []struct {
		name   string
		pos    mgl32.Vec3
		target mgl32.Vec3
	}{
		{"down -Z", mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 0}},
		{"elevated front", mgl32.Vec3{0, 2.5, 6}, mgl32.Vec3{0, 0.75, 0}},
		{"off axis", mgl32.Vec3{3, 2, 5}, mgl32.Vec3{0, 0.75, 0}},
		{"behind and below", mgl32.Vec3{-4, -1, -3}, mgl32.Vec3{0, 0.5, 0}},
		{"side on", mgl32.Vec3{5, 0, 0}, mgl32.Vec3{0, 0, 0}},
	}

	for _, tt := range tests {
		c := New(tt.pos, DefaultNearClip, DefaultFarClip, DefaultFov)
		c.LookAt(tt.target)

		want := tt.target.Sub(tt.pos).Normalize()
		fwd := c.Transform().Forward()
		for i := 0; i < 3; i++ {
			if !almostEqual(fwd[i], want[i]) {
				t.Errorf("%s: forward = %v, want %v", tt.name, fwd, want)
				break
			}
		}

		// Zero roll keeps the camera upright.
		if up := c.Transform().Up(); up.Y() <= 0 {
			t.Errorf("%s: up = %v, camera rolled past horizontal", tt.name, up)
		}
	}
}

func TestLookAtPitchesDownFromAbove(t *testing.T) {
	c := New(mgl32.Vec3{0, 2.5, 6}, DefaultNearClip, DefaultFarClip, DefaultFov)
	c.LookAt(mgl32.Vec3{0, 0.75, 0})

	if fwd := c.Transform().Forward(); fwd.Y() >= 0 {
		t.Errorf("forward = %v, want negative Y when target is below", fwd)
	}

	// The target ends up centered on the view-space -Z axis.
	v := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0.75, 0, 1})
	if !almostEqual(v.X(), 0) || !almostEqual(v.Y(), 0) || v.Z() >= 0 {
		t.Errorf("target in view space = %v, want (0, 0, -dist)", v)
	}
}

func TestLookAtIgnoresOwnPosition(t *testing.T) {
	c := New(mgl32.Vec3{1, 2, 3}, DefaultNearClip, DefaultFarClip, DefaultFov)
	before := c.Transform().Rotation()
	c.LookAt(mgl32.Vec3{1, 2, 3})
	if c.Transform().Rotation() != before {
		t.Error("LookAt at own position should not change rotation")
	}
}
