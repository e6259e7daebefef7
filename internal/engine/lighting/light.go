// Package lighting provides light value types and GPU-upload packing.
package lighting

import "github.com/go-gl/mathgl/mgl32"

// Type identifies how a light illuminates the scene.
type Type int32

const (
	Directional Type = 0
	Point       Type = 1
	Spot        Type = 2
)

// MaxLights is the light array capacity in the shaders.
const MaxLights = 8

// Light is a plain value struct consumed by the fragment shader. Direction
// is used by directional and spot lights, Position and Range by point and
// spot lights.
type Light struct {
	Type      Type
	Direction mgl32.Vec3
	Position  mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
	Range     float32
}

// NewDirectional creates a directional light.
func NewDirectional(direction, color mgl32.Vec3, intensity float32) Light {
	return Light{
		Type:      Directional,
		Direction: direction.Normalize(),
		Color:     color,
		Intensity: intensity,
	}
}

// NewPoint creates a point light.
func NewPoint(position, color mgl32.Vec3, intensity, rng float32) Light {
	return Light{
		Type:      Point,
		Position:  position,
		Color:     color,
		Intensity: intensity,
		Range:     rng,
	}
}
