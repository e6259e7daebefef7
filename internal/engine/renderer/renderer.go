// Package renderer provides frame-level GL state management and the
// offscreen viewport used by the inspector.
package renderer

import "github.com/go-gl/gl/v4.1-core/gl"

// Setup applies the fixed pipeline state used for every frame.
func Setup() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
}

// Clear clears the current framebuffer to the given color.
func Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Resize updates the GL viewport to the given pixel dimensions.
func Resize(width, height int32) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	gl.Viewport(0, 0, width, height)
}
