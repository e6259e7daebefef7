package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Viewport is an offscreen framebuffer the scene renders into; its color
// texture is displayed inside an ImGui window.
type Viewport struct {
	fbo          uint32
	colorTexture uint32
	depthRBO     uint32
	width        int32
	height       int32

	// Saved state between Bind and Unbind.
	prevFBO      int32
	prevViewport [4]int32
}

// NewViewport creates a framebuffer with a color texture and depth buffer.
func NewViewport(width, height int32) (*Viewport, error) {
	v := &Viewport{}
	if err := v.create(width, height); err != nil {
		v.Delete()
		return nil, err
	}
	return v, nil
}

func (v *Viewport) create(width, height int32) error {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.width, v.height = width, height

	gl.GenFramebuffers(1, &v.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, v.fbo)

	gl.GenTextures(1, &v.colorTexture)
	gl.BindTexture(gl.TEXTURE_2D, v.colorTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, width, height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, v.colorTexture, 0)

	gl.GenRenderbuffers(1, &v.depthRBO)
	gl.BindRenderbuffer(gl.RENDERBUFFER, v.depthRBO)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, width, height)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, v.depthRBO)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		return fmt.Errorf("viewport framebuffer incomplete: 0x%x", status)
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return nil
}

// Size returns the viewport dimensions in pixels.
func (v *Viewport) Size() (int32, int32) { return v.width, v.height }

// TextureID returns the color texture GL name for ImGui display.
func (v *Viewport) TextureID() uint32 { return v.colorTexture }

// Resize recreates the framebuffer attachments at a new size. No-op when
// the size is unchanged.
func (v *Viewport) Resize(width, height int32) error {
	if width == v.width && height == v.height {
		return nil
	}
	v.Delete()
	return v.create(width, height)
}

// Bind redirects rendering into the viewport, saving the previous
// framebuffer and viewport state.
func (v *Viewport) Bind() {
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &v.prevFBO)
	gl.GetIntegerv(gl.VIEWPORT, &v.prevViewport[0])

	gl.BindFramebuffer(gl.FRAMEBUFFER, v.fbo)
	gl.Viewport(0, 0, v.width, v.height)
}

// Unbind restores the framebuffer and viewport saved by Bind.
func (v *Viewport) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(v.prevFBO))
	gl.Viewport(v.prevViewport[0], v.prevViewport[1], v.prevViewport[2], v.prevViewport[3])
}

// Delete releases the framebuffer resources.
func (v *Viewport) Delete() {
	if v.fbo != 0 {
		gl.DeleteFramebuffers(1, &v.fbo)
		v.fbo = 0
	}
	if v.colorTexture != 0 {
		gl.DeleteTextures(1, &v.colorTexture)
		v.colorTexture = 0
	}
	if v.depthRBO != 0 {
		gl.DeleteRenderbuffers(1, &v.depthRBO)
		v.depthRBO = 0
	}
}
