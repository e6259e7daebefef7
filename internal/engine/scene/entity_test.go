package scene

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lunarforge/glint/internal/engine/material"
)

func TestEntitiesShareMaterialButOwnTransforms(t *testing.T) {
	shared := material.New("shared", nil)

	entities := make([]*Entity, 5)
	for i := range entities {
		entities[i] = NewEntity(fmt.Sprintf("entity-%d", i), nil, shared)
	}

	// Mutate entity 2's transform only.
	entities[2].Transform().SetPosition(mgl32.Vec3{7, 8, 9})
	entities[2].Transform().SetScale(mgl32.Vec3{2, 2, 2})

	for i, e := range entities {
		if i == 2 {
			continue
		}
		if e.Transform().Position() != (mgl32.Vec3{}) {
			t.Errorf("entity %d position mutated: %v", i, e.Transform().Position())
		}
		if e.Transform().Scale() != (mgl32.Vec3{1, 1, 1}) {
			t.Errorf("entity %d scale mutated: %v", i, e.Transform().Scale())
		}
	}

	// The material reference is identical across entities.
	for i, e := range entities {
		if e.Material() != shared {
			t.Errorf("entity %d material not shared", i)
		}
	}

	// Mutating the shared material is visible through every entity.
	shared.SetRoughness(0.9)
	for i, e := range entities {
		if e.Material().Roughness() != 0.9 {
			t.Errorf("entity %d does not see shared material change", i)
		}
	}
}

func TestSetMeshAndMaterial(t *testing.T) {
	e := NewEntity("swap", nil, nil)

	m := material.New("new", nil)
	e.SetMaterial(m)
	if e.Material() != m {
		t.Error("SetMaterial did not replace reference")
	}
	if e.Name() != "swap" {
		t.Errorf("name = %q", e.Name())
	}
}
