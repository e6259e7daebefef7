// Package camera provides the scene camera for 3D rendering.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lunarforge/glint/internal/engine/transform"
)

// Default projection parameters. The field of view is in radians.
const (
	DefaultNearClip = 0.01
	DefaultFarClip  = 500.0
	DefaultFov      = float32(3.14159265 / 4.0)
)

// Camera owns a transform plus perspective projection parameters.
// The field of view is stored in radians; near and far clip are stored as
// given. Near < far is not enforced by the setters: the inspector clamps
// each field independently and an inverted frustum simply renders nothing.
type Camera struct {
	transform *transform.Transform

	nearClip float32
	farClip  float32
	fov      float32 // radians
}

// New creates a camera at the given position looking down -Z.
func New(position mgl32.Vec3, nearClip, farClip, fov float32) *Camera {
	c := &Camera{
		transform: transform.New(),
		nearClip:  nearClip,
		farClip:   farClip,
		fov:       fov,
	}
	c.transform.SetPosition(position)
	return c
}

// Transform returns the camera's transform for direct editing.
func (c *Camera) Transform() *transform.Transform { return c.transform }

// NearClip returns the near clip plane distance.
func (c *Camera) NearClip() float32 { return c.nearClip }

// FarClip returns the far clip plane distance.
func (c *Camera) FarClip() float32 { return c.farClip }

// Fov returns the vertical field of view in radians.
func (c *Camera) Fov() float32 { return c.fov }

// SetNearClip sets the near clip plane distance.
func (c *Camera) SetNearClip(v float32) { c.nearClip = v }

// SetFarClip sets the far clip plane distance.
func (c *Camera) SetFarClip(v float32) { c.farClip = v }

// SetFov sets the vertical field of view in radians.
func (c *Camera) SetFov(v float32) { c.fov = v }

// ViewMatrix returns the view matrix derived from the transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	pos := c.transform.Position()
	return mgl32.LookAtV(pos, pos.Add(c.transform.Forward()), c.transform.Up())
}

// ProjectionMatrix returns the perspective projection for the given aspect
// ratio (width / height).
func (c *Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(c.fov, aspect, c.nearClip, c.farClip)
}

// LookAt rotates the camera transform so its forward axis points at
// target, with zero roll. A target at the camera position is ignored.
func (c *Camera) LookAt(target mgl32.Vec3) {
	dir := target.Sub(c.transform.Position())
	if dir.Len() < 1e-6 {
		return
	}
	dir = dir.Normalize()

	// Forward with roll 0 is (-sin yaw * cos pitch, sin pitch,
	// -cos yaw * cos pitch); invert for pitch and yaw.
	pitch := float32(math.Asin(float64(mgl32.Clamp(dir.Y(), -1, 1))))
	yaw := float32(math.Atan2(float64(-dir.X()), float64(-dir.Z())))
	c.transform.SetPitchYawRoll(pitch, yaw, 0)
}
