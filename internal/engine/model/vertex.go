// Package model provides mesh data loading, generation and GPU upload.
package model

// Vertex is one interleaved vertex: position, normal, texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// floatsPerVertex is the interleaved stride in float32 units.
const floatsPerVertex = 8

// MeshData is CPU-side geometry ready for GPU upload.
type MeshData struct {
	Vertices []Vertex
	Indices  []uint32
}

// IndexCount returns the number of indices.
func (d *MeshData) IndexCount() int {
	return len(d.Indices)
}

// interleave flattens vertices into the layout the shaders expect:
// vec3 position, vec3 normal, vec2 uv.
func (d *MeshData) interleave() []float32 {
	out := make([]float32, 0, len(d.Vertices)*floatsPerVertex)
	for _, v := range d.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.TexCoord[0], v.TexCoord[1],
		)
	}
	return out
}
