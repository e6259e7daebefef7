// Package material binds shader parameters and textures for drawing.
package material

import (
	"sort"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lunarforge/glint/internal/engine/shader"
)

// Semantic texture slot names. These match the sampler uniforms declared
// by the PBR fragment shader.
const (
	SlotAlbedo    = "Albedo"
	SlotNormalMap = "NormalMap"
	SlotRoughness = "Roughness"
	SlotMetallic  = "Metallic"
)

// DefaultSampler is the sampler key applied to every texture unit that has
// no slot-specific sampler registered.
const DefaultSampler = "Default"

// pbrSlotOrder fixes the unit assignment for the semantic slots; extra
// slots are bound after these in name order.
var pbrSlotOrder = []string{SlotAlbedo, SlotNormalMap, SlotRoughness, SlotMetallic}

// Material holds the shader program, scalar PBR parameters and texture
// bindings that determine an entity's appearance. Materials are shared
// across entities and mutated live by the inspector; none of the setters
// can fail, and a zero texture name is accepted silently (it draws as
// whatever is bound to the unit, a visual artifact rather than an error).
type Material struct {
	name    string
	program *shader.Program

	colorTint     mgl32.Vec4
	roughness     float32
	metallic      float32
	textureScale  float32
	textureOffset mgl32.Vec2

	textures map[string]uint32
	samplers map[string]uint32
}

// New creates a material with the given program and default parameters:
// white tint, zero roughness/metallic, identity UV transform.
func New(name string, program *shader.Program) *Material {
	return &Material{
		name:         name,
		program:      program,
		colorTint:    mgl32.Vec4{1, 1, 1, 1},
		textureScale: 1,
		textures:     make(map[string]uint32),
		samplers:     make(map[string]uint32),
	}
}

// Name returns the material name.
func (m *Material) Name() string { return m.name }

// Program returns the shared shader program.
func (m *Material) Program() *shader.Program { return m.program }

// ColorTint returns the color tint.
func (m *Material) ColorTint() mgl32.Vec4 { return m.colorTint }

// Roughness returns the roughness scalar.
func (m *Material) Roughness() float32 { return m.roughness }

// Metallic returns the metallic scalar.
func (m *Material) Metallic() float32 { return m.metallic }

// TextureScale returns the UV scale.
func (m *Material) TextureScale() float32 { return m.textureScale }

// TextureOffset returns the UV offset.
func (m *Material) TextureOffset() mgl32.Vec2 { return m.textureOffset }

// Texture returns the texture bound to a semantic slot, zero if unset.
func (m *Material) Texture(slot string) uint32 { return m.textures[slot] }

// SetName sets the material name.
func (m *Material) SetName(name string) { m.name = name }

// SetProgram replaces the shader program.
func (m *Material) SetProgram(p *shader.Program) { m.program = p }

// SetColorTint sets the color tint.
func (m *Material) SetColorTint(c mgl32.Vec4) { m.colorTint = c }

// SetRoughness sets the roughness scalar. Values are not clamped.
func (m *Material) SetRoughness(v float32) { m.roughness = v }

// SetMetallic sets the metallic scalar. Values are not clamped.
func (m *Material) SetMetallic(v float32) { m.metallic = v }

// SetTextureScale sets the UV scale.
func (m *Material) SetTextureScale(v float32) { m.textureScale = v }

// SetTextureOffset sets the UV offset.
func (m *Material) SetTextureOffset(v mgl32.Vec2) { m.textureOffset = v }

// SetTexture binds a texture to an arbitrary slot name, replacing any
// previous binding.
func (m *Material) SetTexture(slot string, tex uint32) { m.textures[slot] = tex }

// SetAlbedo binds the albedo texture.
func (m *Material) SetAlbedo(tex uint32) { m.textures[SlotAlbedo] = tex }

// SetNormalMap binds the normal map texture.
func (m *Material) SetNormalMap(tex uint32) { m.textures[SlotNormalMap] = tex }

// SetRoughnessMap binds the roughness texture.
func (m *Material) SetRoughnessMap(tex uint32) { m.textures[SlotRoughness] = tex }

// SetMetallicMap binds the metallic texture.
func (m *Material) SetMetallicMap(tex uint32) { m.textures[SlotMetallic] = tex }

// SetAllPbrTextures binds the four PBR slots in fixed positional order:
// albedo, normal, roughness, metallic.
func (m *Material) SetAllPbrTextures(albedo, normal, roughness, metallic uint32) {
	m.SetAlbedo(albedo)
	m.SetNormalMap(normal)
	m.SetRoughnessMap(roughness)
	m.SetMetallicMap(metallic)
}

// AddSampler registers a sampler object under a slot name, replacing any
// previous one. Use DefaultSampler to cover every slot without a
// specific sampler.
func (m *Material) AddSampler(slot string, sampler uint32) { m.samplers[slot] = sampler }

// Sampler returns the sampler registered for a slot, zero if unset.
func (m *Material) Sampler(slot string) uint32 { return m.samplers[slot] }

// Prepare synchronizes the material's parameters and texture bindings to
// the GL pipeline. The material's program must already be active. Call
// once per draw, before issuing the draw call; it mutates GL state only,
// never the material itself.
func (m *Material) Prepare() {
	p := m.program

	p.SetVec4("uColorTint", m.colorTint)
	p.SetFloat("uRoughness", m.roughness)
	p.SetFloat("uMetallic", m.metallic)
	p.SetFloat("uTextureScale", m.textureScale)
	p.SetVec2("uTextureOffset", m.textureOffset)

	for unit, slot := range m.bindOrder() {
		u := uint32(unit)
		gl.ActiveTexture(gl.TEXTURE0 + u)
		gl.BindTexture(gl.TEXTURE_2D, m.textures[slot])
		p.SetInt(slot, int32(unit))

		if s, ok := m.samplers[slot]; ok {
			gl.BindSampler(u, s)
		} else if s, ok := m.samplers[DefaultSampler]; ok {
			gl.BindSampler(u, s)
		} else {
			gl.BindSampler(u, 0)
		}
	}
	gl.ActiveTexture(gl.TEXTURE0)
}

// bindOrder returns the texture slots in deterministic unit order: the
// four PBR slots first, any extra slots sorted by name after them.
func (m *Material) bindOrder() []string {
	order := make([]string, 0, len(m.textures))
	seen := make(map[string]bool, len(m.textures))

	for _, slot := range pbrSlotOrder {
		if _, ok := m.textures[slot]; ok {
			order = append(order, slot)
			seen[slot] = true
		}
	}

	var extra []string
	for slot := range m.textures {
		if !seen[slot] {
			extra = append(extra, slot)
		}
	}
	sort.Strings(extra)

	return append(order, extra...)
}
