// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PBRVertex is the vertex shader for lit PBR geometry.
//
//go:embed pbr.vert
var PBRVertex string

// PBRFragment is the fragment shader for lit PBR geometry.
//
//go:embed pbr.frag
var PBRFragment string

// SkyVertex is the skybox vertex shader.
//
//go:embed sky.vert
var SkyVertex string

// SkyFragment is the skybox fragment shader.
//
//go:embed sky.frag
var SkyFragment string
