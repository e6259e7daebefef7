package texture

import "github.com/go-gl/gl/v4.1-core/gl"

// SamplerSpec describes filtering and wrapping for a sampler object.
type SamplerSpec struct {
	MinFilter int32
	MagFilter int32
	WrapS     int32
	WrapT     int32
}

// TrilinearRepeat is the default sampler for material textures.
func TrilinearRepeat() SamplerSpec {
	return SamplerSpec{
		MinFilter: gl.LINEAR_MIPMAP_LINEAR,
		MagFilter: gl.LINEAR,
		WrapS:     gl.REPEAT,
		WrapT:     gl.REPEAT,
	}
}

// NearestClamp is useful for debug/data textures.
func NearestClamp() SamplerSpec {
	return SamplerSpec{
		MinFilter: gl.NEAREST,
		MagFilter: gl.NEAREST,
		WrapS:     gl.CLAMP_TO_EDGE,
		WrapT:     gl.CLAMP_TO_EDGE,
	}
}

// NewSampler creates a GL sampler object from the spec.
func NewSampler(spec SamplerSpec) uint32 {
	var s uint32
	gl.GenSamplers(1, &s)
	gl.SamplerParameteri(s, gl.TEXTURE_MIN_FILTER, spec.MinFilter)
	gl.SamplerParameteri(s, gl.TEXTURE_MAG_FILTER, spec.MagFilter)
	gl.SamplerParameteri(s, gl.TEXTURE_WRAP_S, spec.WrapS)
	gl.SamplerParameteri(s, gl.TEXTURE_WRAP_T, spec.WrapT)
	return s
}

// DeleteSampler releases a sampler object.
func DeleteSampler(s uint32) {
	if s != 0 {
		gl.DeleteSamplers(1, &s)
	}
}
