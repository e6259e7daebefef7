package transform

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func almostEqual(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < eps
}

func vecAlmostEqual(a, b mgl32.Vec3) bool {
	return almostEqual(a.X(), b.X()) && almostEqual(a.Y(), b.Y()) && almostEqual(a.Z(), b.Z())
}

func TestNewDefaults(t *testing.T) {
	tr := New()

	if !vecAlmostEqual(tr.Position(), mgl32.Vec3{}) {
		t.Errorf("new transform position = %v, want origin", tr.Position())
	}
	if !vecAlmostEqual(tr.Scale(), mgl32.Vec3{1, 1, 1}) {
		t.Errorf("new transform scale = %v, want unit", tr.Scale())
	}
	p, y, r := tr.PitchYawRoll()
	if !almostEqual(p, 0) || !almostEqual(y, 0) || !almostEqual(r, 0) {
		t.Errorf("new transform euler = (%v, %v, %v), want zero", p, y, r)
	}
}

func TestPitchYawRollRoundTrip(t *testing.T) {
	tests := []struct {
		name             string
		pitch, yaw, roll float32
	}{
		{"zero", 0, 0, 0},
		{"pitch only", 0.5, 0, 0},
		{"yaw only", 0, 1.2, 0},
		{"roll only", 0, 0, -0.7},
		{"combined", 0.3, -0.9, 0.25},
		{"negative pitch", -1.1, 0.4, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New()
			tr.SetPitchYawRoll(tt.pitch, tt.yaw, tt.roll)
			p, y, r := tr.PitchYawRoll()

			if !almostEqual(p, tt.pitch) || !almostEqual(y, tt.yaw) || !almostEqual(r, tt.roll) {
				t.Errorf("round trip = (%v, %v, %v), want (%v, %v, %v)",
					p, y, r, tt.pitch, tt.yaw, tt.roll)
			}
		})
	}
}

func TestSetPitchYawRollIsAbsolute(t *testing.T) {
	tr := New()
	tr.SetPitchYawRoll(0.4, 0.8, 0.2)
	tr.SetPitchYawRoll(0.1, 0, 0)

	p, y, r := tr.PitchYawRoll()
	if !almostEqual(p, 0.1) || !almostEqual(y, 0) || !almostEqual(r, 0) {
		t.Errorf("second set leaked prior rotation: (%v, %v, %v)", p, y, r)
	}
}

func TestYawRotatesForward(t *testing.T) {
	tr := New()
	// 90 degree yaw turns -Z forward into -X.
	tr.SetPitchYawRoll(0, gomath.Pi/2, 0)

	fwd := tr.Forward()
	if !vecAlmostEqual(fwd, mgl32.Vec3{-1, 0, 0}) {
		t.Errorf("forward after 90deg yaw = %v, want (-1, 0, 0)", fwd)
	}
}

func TestMatrixAppliesScaleThenRotationThenTranslation(t *testing.T) {
	tr := New()
	tr.SetPosition(mgl32.Vec3{10, 0, 0})
	tr.SetScale(mgl32.Vec3{2, 2, 2})
	tr.SetPitchYawRoll(0, gomath.Pi/2, 0)

	// Local +X (1,0,0): scaled to (2,0,0), yawed 90deg to (0,0,-2),
	// then translated to (10,0,-2).
	v := tr.Matrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	got := mgl32.Vec3{v.X(), v.Y(), v.Z()}
	if !vecAlmostEqual(got, mgl32.Vec3{10, 0, -2}) {
		t.Errorf("transformed point = %v, want (10, 0, -2)", got)
	}
}

func TestRotateComposes(t *testing.T) {
	tr := New()
	q := mgl32.QuatRotate(gomath.Pi/4, mgl32.Vec3{0, 1, 0})
	tr.Rotate(q)
	tr.Rotate(q)

	_, yaw, _ := tr.PitchYawRoll()
	if !almostEqual(yaw, gomath.Pi/2) {
		t.Errorf("two 45deg yaw rotations = %v, want pi/2", yaw)
	}
}

func TestTranslate(t *testing.T) {
	tr := New()
	tr.Translate(mgl32.Vec3{1, 2, 3})
	tr.Translate(mgl32.Vec3{1, 0, -1})

	if !vecAlmostEqual(tr.Position(), mgl32.Vec3{2, 2, 2}) {
		t.Errorf("position = %v, want (2, 2, 2)", tr.Position())
	}
}
