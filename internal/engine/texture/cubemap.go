package texture

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// cubemap face targets in +X -X +Y -Y +Z -Z order.
var cubeFaceTargets = [6]uint32{
	gl.TEXTURE_CUBE_MAP_POSITIVE_X,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_X,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Y,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_Y,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Z,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_Z,
}

// LoadCubemap loads six face images (+X -X +Y -Y +Z -Z) into a cubemap.
func LoadCubemap(paths [6]string) (uint32, error) {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, tex)

	for i, path := range paths {
		img, err := decode(path)
		if err != nil {
			gl.DeleteTextures(1, &tex)
			return 0, fmt.Errorf("cubemap face %d: %w", i, err)
		}
		rgba := toRGBA(img)
		gl.TexImage2D(cubeFaceTargets[i], 0, gl.RGBA8,
			int32(rgba.Rect.Dx()), int32(rgba.Rect.Dy()), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	}

	setCubemapParams()
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return tex, nil
}

// GradientCubemap generates a vertical sky gradient cubemap, used when no
// skybox images are configured.
func GradientCubemap(size int, top, horizon, bottom color.RGBA) uint32 {
	if size < 2 {
		size = 2
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, tex)

	for i, target := range cubeFaceTargets {
		img := image.NewRGBA(image.Rect(0, 0, size, size))
		for y := 0; y < size; y++ {
			var c color.RGBA
			switch i {
			case 2: // +Y
				c = top
			case 3: // -Y
				c = bottom
			default:
				t := float64(y) / float64(size-1)
				if t < 0.5 {
					c = lerpColor(top, horizon, t*2)
				} else {
					c = lerpColor(horizon, bottom, (t-0.5)*2)
				}
			}
			for x := 0; x < size; x++ {
				img.SetRGBA(x, y, c)
			}
		}
		gl.TexImage2D(target, 0, gl.RGBA8, int32(size), int32(size), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	}

	setCubemapParams()
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return tex
}

func setCubemapParams() {
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), 255}
}
