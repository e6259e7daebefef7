package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadOBJ parses a Wavefront OBJ file from disk.
func LoadOBJ(path string) (*MeshData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj %s: %w", path, err)
	}
	defer f.Close()

	data, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("parse obj %s: %w", path, err)
	}
	return data, nil
}

// ParseOBJ reads OBJ geometry supporting positions, texture coordinates and
// normals, with triangle and quad faces. Models are assumed right-handed;
// they are converted to our left-handed convention: Z positions and normals
// are negated, UV V is flipped, and the winding order is reversed.
// Faces without texture coordinates (v//vn) get a (0, 0) UV.
func ParseOBJ(r io.Reader) (*MeshData, error) {
	var (
		positions [][3]float32
		normals   [][3]float32
		uvs       [][2]float32
	)

	data := &MeshData{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseFloat3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			positions = append(positions, p)

		case "vn":
			n, err := parseFloat3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNo, err)
			}
			normals = append(normals, n)

		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: uv needs 2 components", lineNo)
			}
			u, err1 := parseFloat(fields[1])
			v, err2 := parseFloat(fields[2])
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("line %d: bad uv", lineNo)
			}
			uvs = append(uvs, [2]float32{u, v})

		case "f":
			if err := parseFace(data, fields[1:], positions, uvs, normals); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	if len(data.Vertices) == 0 {
		return nil, fmt.Errorf("obj contains no faces")
	}

	return data, nil
}

// parseFace appends a triangle or quad face. OBJ indices are 1-based.
func parseFace(data *MeshData, refs []string, positions [][3]float32, uvs [][2]float32, normals [][3]float32) error {
	if len(refs) != 3 && len(refs) != 4 {
		return fmt.Errorf("face with %d vertices (triangles and quads only)", len(refs))
	}

	corners := make([]Vertex, len(refs))
	for i, ref := range refs {
		v, err := resolveFaceVertex(ref, positions, uvs, normals)
		if err != nil {
			return err
		}
		corners[i] = v
	}

	// Reverse winding for the handedness flip.
	data.addTriangle(corners[0], corners[2], corners[1])
	if len(corners) == 4 {
		data.addTriangle(corners[0], corners[3], corners[2])
	}
	return nil
}

// resolveFaceVertex looks up one v/vt/vn (or v//vn) reference and applies
// the coordinate-system conversion.
func resolveFaceVertex(ref string, positions [][3]float32, uvs [][2]float32, normals [][3]float32) (Vertex, error) {
	parts := strings.Split(ref, "/")
	if len(parts) != 3 {
		return Vertex{}, fmt.Errorf("face vertex %q: want v/vt/vn or v//vn", ref)
	}

	pi, err := strconv.Atoi(parts[0])
	if err != nil || pi < 1 || pi > len(positions) {
		return Vertex{}, fmt.Errorf("face vertex %q: bad position index", ref)
	}
	ni, err := strconv.Atoi(parts[2])
	if err != nil || ni < 1 || ni > len(normals) {
		return Vertex{}, fmt.Errorf("face vertex %q: bad normal index", ref)
	}

	var uv [2]float32
	if parts[1] != "" {
		ti, err := strconv.Atoi(parts[1])
		if err != nil || ti < 1 || ti > len(uvs) {
			return Vertex{}, fmt.Errorf("face vertex %q: bad uv index", ref)
		}
		uv = uvs[ti-1]
	}

	pos := positions[pi-1]
	norm := normals[ni-1]

	return Vertex{
		Position: [3]float32{pos[0], pos[1], -pos[2]},
		Normal:   [3]float32{norm[0], norm[1], -norm[2]},
		TexCoord: [2]float32{uv[0], 1 - uv[1]},
	}, nil
}

func (d *MeshData) addTriangle(a, b, c Vertex) {
	base := uint32(len(d.Vertices))
	d.Vertices = append(d.Vertices, a, b, c)
	d.Indices = append(d.Indices, base, base+1, base+2)
}

func parseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	return float32(v), err
}

func parseFloat3(fields []string) ([3]float32, error) {
	if len(fields) < 3 {
		return [3]float32{}, fmt.Errorf("need 3 components, got %d", len(fields))
	}
	var out [3]float32
	for i := 0; i < 3; i++ {
		v, err := parseFloat(fields[i])
		if err != nil {
			return out, fmt.Errorf("bad float %q", fields[i])
		}
		out[i] = v
	}
	return out, nil
}
