// Package scene composes meshes, materials and transforms into drawables.
package scene

import (
	"github.com/lunarforge/glint/internal/engine/material"
	"github.com/lunarforge/glint/internal/engine/model"
	"github.com/lunarforge/glint/internal/engine/transform"
)

// Entity is a drawable scene object: an owned transform plus shared,
// read-only references to one mesh and one material. Any number of
// entities may share the same mesh and material.
type Entity struct {
	name      string
	transform *transform.Transform
	mesh      *model.Mesh
	material  *material.Material
}

// NewEntity creates an entity at the origin.
func NewEntity(name string, mesh *model.Mesh, mat *material.Material) *Entity {
	return &Entity{
		name:      name,
		transform: transform.New(),
		mesh:      mesh,
		material:  mat,
	}
}

// Name returns the entity name.
func (e *Entity) Name() string { return e.name }

// Transform returns the entity's transform for direct editing.
func (e *Entity) Transform() *transform.Transform { return e.transform }

// Mesh returns the shared mesh.
func (e *Entity) Mesh() *model.Mesh { return e.mesh }

// Material returns the shared material.
func (e *Entity) Material() *material.Material { return e.material }

// SetMesh replaces the mesh reference.
func (e *Entity) SetMesh(m *model.Mesh) { e.mesh = m }

// SetMaterial replaces the material reference.
func (e *Entity) SetMaterial(m *material.Material) { e.material = m }
