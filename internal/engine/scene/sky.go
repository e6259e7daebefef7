package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lunarforge/glint/internal/engine/model"
	"github.com/lunarforge/glint/internal/engine/shader"
)

// Sky renders a cubemap skybox. It is drawn after the opaque scene with a
// LEQUAL depth test so it fills only the untouched background.
type Sky struct {
	mesh    *model.Mesh
	program *shader.Program
	cubemap uint32
}

// NewSky creates a skybox from a dedicated program and a cubemap texture.
// The program and cubemap are owned by the caller; the internal cube mesh
// is owned by the Sky.
func NewSky(program *shader.Program, cubemap uint32) (*Sky, error) {
	mesh, err := model.Upload(model.Cube(2))
	if err != nil {
		return nil, fmt.Errorf("sky cube: %w", err)
	}
	return &Sky{
		mesh:    mesh,
		program: program,
		cubemap: cubemap,
	}, nil
}

// SetCubemap swaps the cubemap texture.
func (s *Sky) SetCubemap(tex uint32) { s.cubemap = tex }

// Draw renders the skybox. The view matrix is stripped of translation so
// the box stays centered on the camera.
func (s *Sky) Draw(view, projection mgl32.Mat4) {
	rotOnly := view.Mat3().Mat4()

	gl.DepthFunc(gl.LEQUAL)
	gl.CullFace(gl.FRONT)

	s.program.Use()
	s.program.SetMat4("uView", rotOnly)
	s.program.SetMat4("uProjection", projection)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, s.cubemap)
	gl.BindSampler(0, 0)
	s.program.SetInt("uSkybox", 0)

	s.mesh.Draw()

	gl.CullFace(gl.BACK)
	gl.DepthFunc(gl.LESS)
}

// Delete releases the internal cube mesh.
func (s *Sky) Delete() {
	if s.mesh != nil {
		s.mesh.Delete()
		s.mesh = nil
	}
}
