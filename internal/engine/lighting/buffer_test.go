package lighting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAddRespectsCapacity(t *testing.T) {
	b := NewBuffer()

	for i := 0; i < MaxLights; i++ {
		if !b.Add(NewPoint(mgl32.Vec3{float32(i), 0, 0}, mgl32.Vec3{1, 1, 1}, 1, 10)) {
			t.Fatalf("add %d rejected below capacity", i)
		}
	}
	if b.Add(NewPoint(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, 1, 10)) {
		t.Error("add beyond capacity should return false")
	}
	if b.Count() != MaxLights {
		t.Errorf("count = %d, want %d", b.Count(), MaxLights)
	}
}

func TestSetLightsTruncates(t *testing.T) {
	b := NewBuffer()
	lights := make([]Light, MaxLights+5)
	b.SetLights(lights)

	if b.Count() != MaxLights {
		t.Errorf("count = %d, want %d", b.Count(), MaxLights)
	}
}

func TestPackedSlicesFixedSize(t *testing.T) {
	b := NewBuffer()
	b.Add(NewDirectional(mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0.9, 0.8}, 1.5))
	b.Add(NewPoint(mgl32.Vec3{2, 3, 4}, mgl32.Vec3{0, 1, 0}, 2, 25))

	if got := len(b.Directions()); got != MaxLights*3 {
		t.Errorf("directions length = %d, want %d", got, MaxLights*3)
	}
	if got := len(b.Intensities()); got != MaxLights {
		t.Errorf("intensities length = %d, want %d", got, MaxLights)
	}

	pos := b.Positions()
	if pos[3] != 2 || pos[4] != 3 || pos[5] != 4 {
		t.Errorf("second light position packed as (%v, %v, %v)", pos[3], pos[4], pos[5])
	}

	types := b.Types()
	if Type(types[0]) != Directional || Type(types[1]) != Point {
		t.Errorf("types packed as %v", types[:2])
	}

	rng := b.Ranges()
	if rng[1] != 25 {
		t.Errorf("second light range = %v, want 25", rng[1])
	}
}

func TestNewDirectionalNormalizes(t *testing.T) {
	l := NewDirectional(mgl32.Vec3{0, -10, 0}, mgl32.Vec3{1, 1, 1}, 1)
	if d := l.Direction; d.Y() != -1 || d.X() != 0 || d.Z() != 0 {
		t.Errorf("direction = %v, want (0, -1, 0)", d)
	}
}

func TestClear(t *testing.T) {
	b := NewBuffer()
	b.Add(NewDirectional(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 1, 1}, 1))
	b.Clear()

	if b.Count() != 0 {
		t.Errorf("count after clear = %d", b.Count())
	}
	if dirs := b.Directions(); dirs[0] != 0 {
		t.Error("cleared buffer should pack zeros")
	}
}
