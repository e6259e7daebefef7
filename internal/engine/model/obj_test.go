package model

import (
	gomath "math"
	"strings"
	"testing"
)

const cubeFaceOBJ = `
# one quad with uvs and normals
v -1.0 -1.0 1.0
v 1.0 -1.0 1.0
v 1.0 1.0 1.0
v -1.0 1.0 1.0
vt 0.0 0.0
vt 1.0 0.0
vt 1.0 1.0
vt 0.0 1.0
vn 0.0 0.0 1.0
f 1/1/1 2/2/1 3/3/1 4/4/1
`

const triNoUVOBJ = `
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1
`

func TestParseOBJQuadSplitsIntoTwoTriangles(t *testing.T) {
	data, err := ParseOBJ(strings.NewReader(cubeFaceOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}

	if len(data.Vertices) != 6 {
		t.Errorf("vertex count = %d, want 6", len(data.Vertices))
	}
	if data.IndexCount() != 6 {
		t.Errorf("index count = %d, want 6", data.IndexCount())
	}
}

func TestParseOBJFlipsHandedness(t *testing.T) {
	data, err := ParseOBJ(strings.NewReader(cubeFaceOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}

	for _, v := range data.Vertices {
		// Source Z was +1 for every position, normal Z was +1.
		if v.Position[2] != -1.0 {
			t.Errorf("position z = %v, want -1 after handedness flip", v.Position[2])
		}
		if v.Normal[2] != -1.0 {
			t.Errorf("normal z = %v, want -1 after handedness flip", v.Normal[2])
		}
	}
}

func TestParseOBJFlipsUVVertically(t *testing.T) {
	data, err := ParseOBJ(strings.NewReader(cubeFaceOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}

	// First corner had vt (0, 0); V must be flipped to 1.
	if got := data.Vertices[0].TexCoord; got[0] != 0 || got[1] != 1 {
		t.Errorf("first uv = %v, want (0, 1)", got)
	}
}

func TestParseOBJWithoutUVs(t *testing.T) {
	data, err := ParseOBJ(strings.NewReader(triNoUVOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}

	if len(data.Vertices) != 3 {
		t.Fatalf("vertex count = %d, want 3", len(data.Vertices))
	}
	// The v//vn form has no uv; the loader substitutes (0, 0), which the
	// V flip turns into (0, 1).
	for _, v := range data.Vertices {
		if v.TexCoord[0] != 0 || v.TexCoord[1] != 1 {
			t.Errorf("uv = %v, want (0, 1) fallback", v.TexCoord)
		}
	}
}

func TestParseOBJRejectsGarbage(t *testing.T) {
	cases := []string{
		"",
		"v 1 2",                        // short vertex
		"v 1 2 3\nvn 0 0 1\nf 1//2",    // face too small and bad normal index
		"v 1 2 3\nvn 0 0 1\nf 9//1 1//1 1//1", // position index out of range
	}
	for _, src := range cases {
		if _, err := ParseOBJ(strings.NewReader(src)); err == nil {
			t.Errorf("ParseOBJ(%q) succeeded, want error", src)
		}
	}
}

func TestCubeGeometry(t *testing.T) {
	data := Cube(2)

	if len(data.Vertices) != 24 {
		t.Errorf("cube vertex count = %d, want 24", len(data.Vertices))
	}
	if data.IndexCount() != 36 {
		t.Errorf("cube index count = %d, want 36", data.IndexCount())
	}

	for i, v := range data.Vertices {
		for axis := 0; axis < 3; axis++ {
			if gomath.Abs(float64(v.Position[axis])) > 1.0001 {
				t.Errorf("vertex %d position %v outside half-extent", i, v.Position)
			}
		}
	}
}

func TestSphereNormalsAreUnitRadial(t *testing.T) {
	data := Sphere(3, 16, 8)

	for i, v := range data.Vertices {
		// Normal must be unit length.
		n := gomath.Sqrt(float64(v.Normal[0]*v.Normal[0] +
			v.Normal[1]*v.Normal[1] + v.Normal[2]*v.Normal[2]))
		if gomath.Abs(n-1) > 1e-4 {
			t.Fatalf("vertex %d normal length = %v", i, n)
		}

		// Position must be normal * radius.
		for axis := 0; axis < 3; axis++ {
			if gomath.Abs(float64(v.Position[axis]-3*v.Normal[axis])) > 1e-4 {
				t.Fatalf("vertex %d position %v not radial", i, v.Position)
			}
		}
	}
}

func TestSphereClampsResolution(t *testing.T) {
	data := Sphere(1, 1, 1)
	if data.IndexCount() == 0 {
		t.Error("degenerate resolution should still produce triangles")
	}
}

func TestPlaneUVRepeat(t *testing.T) {
	data := Plane(10, 4)

	if len(data.Vertices) != 4 || data.IndexCount() != 6 {
		t.Fatalf("plane geometry = %d verts / %d indices",
			len(data.Vertices), data.IndexCount())
	}

	var maxU float32
	for _, v := range data.Vertices {
		if v.TexCoord[0] > maxU {
			maxU = v.TexCoord[0]
		}
	}
	if maxU != 4 {
		t.Errorf("max U = %v, want 4", maxU)
	}
}

func TestInterleaveLayout(t *testing.T) {
	data := &MeshData{
		Vertices: []Vertex{{
			Position: [3]float32{1, 2, 3},
			Normal:   [3]float32{0, 1, 0},
			TexCoord: [2]float32{0.5, 0.25},
		}},
		Indices: []uint32{0},
	}

	flat := data.interleave()
	want := []float32{1, 2, 3, 0, 1, 0, 0.5, 0.25}
	if len(flat) != len(want) {
		t.Fatalf("interleaved length = %d, want %d", len(flat), len(want))
	}
	for i := range want {
		if flat[i] != want[i] {
			t.Errorf("interleave[%d] = %v, want %v", i, flat[i], want[i])
		}
	}
}
