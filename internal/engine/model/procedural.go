package model

import (
	gomath "math"
)

// Cube generates a unit-ish cube centered at the origin with per-face
// normals and UVs.
func Cube(size float32) *MeshData {
	h := size / 2

	faces := []struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		// +Z
		{[3]float32{0, 0, 1}, [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		// -Z
		{[3]float32{0, 0, -1}, [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		// +X
		{[3]float32{1, 0, 0}, [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		// -X
		{[3]float32{-1, 0, 0}, [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		// +Y
		{[3]float32{0, 1, 0}, [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		// -Y
		{[3]float32{0, -1, 0}, [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
	}

	uvQuad := [4][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

	data := &MeshData{}
	for _, f := range faces {
		base := uint32(len(data.Vertices))
		for i := 0; i < 4; i++ {
			data.Vertices = append(data.Vertices, Vertex{
				Position: f.corners[i],
				Normal:   f.normal,
				TexCoord: uvQuad[i],
			})
		}
		data.Indices = append(data.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return data
}

// Sphere generates a UV sphere with the given radius. segments is the
// longitudinal resolution, rings the latitudinal one; both are clamped to
// a sane minimum.
func Sphere(radius float32, segments, rings int) *MeshData {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	data := &MeshData{}

	for ring := 0; ring <= rings; ring++ {
		phi := gomath.Pi * float64(ring) / float64(rings)
		y := float32(gomath.Cos(phi))
		r := float32(gomath.Sin(phi))

		for seg := 0; seg <= segments; seg++ {
			theta := 2 * gomath.Pi * float64(seg) / float64(segments)
			x := r * float32(gomath.Cos(theta))
			z := r * float32(gomath.Sin(theta))

			data.Vertices = append(data.Vertices, Vertex{
				Position: [3]float32{x * radius, y * radius, z * radius},
				Normal:   [3]float32{x, y, z},
				TexCoord: [2]float32{
					float32(seg) / float32(segments),
					float32(ring) / float32(rings),
				},
			})
		}
	}

	stride := uint32(segments + 1)
	for ring := uint32(0); ring < uint32(rings); ring++ {
		for seg := uint32(0); seg < uint32(segments); seg++ {
			a := ring*stride + seg
			b := a + stride
			data.Indices = append(data.Indices,
				a, a+1, b,
				a+1, b+1, b,
			)
		}
	}
	return data
}

// Plane generates a flat quad on the XZ plane facing +Y, with UVs tiled
// by the given repeat factor.
func Plane(size, uvRepeat float32) *MeshData {
	h := size / 2
	data := &MeshData{
		Vertices: []Vertex{
			{Position: [3]float32{-h, 0, -h}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{0, 0}},
			{Position: [3]float32{h, 0, -h}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{uvRepeat, 0}},
			{Position: [3]float32{h, 0, h}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{uvRepeat, uvRepeat}},
			{Position: [3]float32{-h, 0, h}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{0, uvRepeat}},
		},
		Indices: []uint32{0, 2, 1, 0, 3, 2},
	}
	return data
}
