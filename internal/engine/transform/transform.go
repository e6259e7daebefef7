// Package transform provides position/rotation/scale state for scene objects.
package transform

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Transform holds an object's placement in world space. Rotation is stored
// as a quaternion; the pitch/yaw/roll accessors are a lossy projection for
// editing and must not be treated as stored state.
type Transform struct {
	position mgl32.Vec3
	rotation mgl32.Quat
	scale    mgl32.Vec3
}

// New returns a transform at the origin with identity rotation and unit scale.
func New() *Transform {
	return &Transform{
		rotation: mgl32.QuatIdent(),
		scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Position returns the world-space position.
func (t *Transform) Position() mgl32.Vec3 { return t.position }

// Scale returns the per-axis scale.
func (t *Transform) Scale() mgl32.Vec3 { return t.scale }

// Rotation returns the rotation quaternion.
func (t *Transform) Rotation() mgl32.Quat { return t.rotation }

// SetPosition sets the world-space position.
func (t *Transform) SetPosition(p mgl32.Vec3) { t.position = p }

// SetScale sets the per-axis scale.
func (t *Transform) SetScale(s mgl32.Vec3) { t.scale = s }

// SetRotation sets the rotation quaternion directly.
func (t *Transform) SetRotation(q mgl32.Quat) { t.rotation = q.Normalize() }

// SetPitchYawRoll rebuilds the rotation from Euler angles in radians,
// composed as yaw (Y), then pitch (X), then roll (Z). The quaternion is
// replaced outright rather than incrementally updated; repeated
// edit-read-edit cycles through PitchYawRoll drift near the poles, which
// is an accepted limitation of Euler editing.
func (t *Transform) SetPitchYawRoll(pitch, yaw, roll float32) {
	qy := mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0})
	qx := mgl32.QuatRotate(pitch, mgl32.Vec3{1, 0, 0})
	qz := mgl32.QuatRotate(roll, mgl32.Vec3{0, 0, 1})
	t.rotation = qy.Mul(qx).Mul(qz).Normalize()
}

// PitchYawRoll derives Euler angles (radians) from the current quaternion
// using the same Y-X-Z convention as SetPitchYawRoll.
func (t *Transform) PitchYawRoll() (pitch, yaw, roll float32) {
	m := t.rotation.Mat4()

	// Column-major: element (row r, col c) = m[c*4+r].
	r02, r12, r22 := m[8], m[9], m[10]
	r10, r11 := m[1], m[5]
	r00, r20 := m[0], m[2]

	sx := -r12
	if sx > 1 {
		sx = 1
	} else if sx < -1 {
		sx = -1
	}
	pitch = float32(gomath.Asin(float64(sx)))

	// Gimbal lock: pitch at +-90 degrees collapses yaw and roll.
	if gomath.Abs(float64(sx)) > 0.9999 {
		yaw = float32(gomath.Atan2(float64(-r20), float64(r00)))
		roll = 0
		return pitch, yaw, roll
	}

	yaw = float32(gomath.Atan2(float64(r02), float64(r22)))
	roll = float32(gomath.Atan2(float64(r10), float64(r11)))
	return pitch, yaw, roll
}

// Rotate applies an additional rotation on top of the current one.
func (t *Transform) Rotate(q mgl32.Quat) {
	t.rotation = q.Mul(t.rotation).Normalize()
}

// Translate offsets the position.
func (t *Transform) Translate(d mgl32.Vec3) {
	t.position = t.position.Add(d)
}

// Forward returns the local -Z axis in world space.
func (t *Transform) Forward() mgl32.Vec3 {
	return t.rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// Up returns the local +Y axis in world space.
func (t *Transform) Up() mgl32.Vec3 {
	return t.rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

// Right returns the local +X axis in world space.
func (t *Transform) Right() mgl32.Vec3 {
	return t.rotation.Rotate(mgl32.Vec3{1, 0, 0})
}

// Matrix composes the world matrix as translation * rotation * scale.
func (t *Transform) Matrix() mgl32.Mat4 {
	trans := mgl32.Translate3D(t.position.X(), t.position.Y(), t.position.Z())
	rot := t.rotation.Mat4()
	scale := mgl32.Scale3D(t.scale.X(), t.scale.Y(), t.scale.Z())
	return trans.Mul4(rot).Mul4(scale)
}
