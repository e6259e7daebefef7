// Package game assembles the demo scene and drives rendering.
package game

import (
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lunarforge/glint/internal/config"
	"github.com/lunarforge/glint/internal/engine/camera"
	"github.com/lunarforge/glint/internal/engine/lighting"
	"github.com/lunarforge/glint/internal/engine/material"
	"github.com/lunarforge/glint/internal/engine/model"
	"github.com/lunarforge/glint/internal/engine/renderer"
	"github.com/lunarforge/glint/internal/engine/renderer/shaders"
	"github.com/lunarforge/glint/internal/engine/scene"
	"github.com/lunarforge/glint/internal/engine/shader"
	"github.com/lunarforge/glint/internal/engine/texture"
	"github.com/lunarforge/glint/internal/logger"
)

// Game owns the scene graph, camera, lights and GPU resources.
type Game struct {
	cfg *config.Config

	camera  *camera.Camera
	pbr     *shader.Program
	sky     *scene.Sky
	lights  *lighting.Buffer
	ambient mgl32.Vec3

	meshes    []*model.Mesh
	materials []*material.Material
	entities  []*scene.Entity

	textures []uint32
	samplers []uint32
}

// New creates a game in its pre-GL state. Init must run after a GL
// context exists.
func New(cfg *config.Config) *Game {
	return &Game{
		cfg:     cfg,
		lights:  lighting.NewBuffer(),
		ambient: mgl32.Vec3{0.03, 0.03, 0.04},
	}
}

// Init compiles shaders, uploads geometry and textures, and builds the
// demo scene. Requires a current GL context.
func (g *Game) Init() error {
	renderer.Setup()

	var err error
	g.pbr, err = shader.New(shaders.PBRVertex, shaders.PBRFragment)
	if err != nil {
		return fmt.Errorf("compile pbr program: %w", err)
	}

	if err := g.buildSky(); err != nil {
		return err
	}

	sampler := texture.NewSampler(texture.TrilinearRepeat())
	g.samplers = append(g.samplers, sampler)

	albedo := g.loadOrCheckerboard(g.cfg.Scene.AlbedoTexture,
		color.RGBA{200, 200, 205, 255}, color.RGBA{90, 90, 100, 255})
	normal := g.loadOrSolid(g.cfg.Scene.NormalTexture, color.RGBA{128, 128, 255, 255})
	rough := g.loadOrSolid(g.cfg.Scene.RoughnessTexture, color.RGBA{255, 255, 255, 255})
	metal := g.loadOrSolid(g.cfg.Scene.MetallicTexture, color.RGBA{255, 255, 255, 255})

	g.buildMaterials(sampler, albedo, normal, rough, metal)
	if err := g.buildEntities(); err != nil {
		return err
	}
	g.buildLights()

	g.camera = camera.New(mgl32.Vec3{0, 2.5, 6},
		camera.DefaultNearClip, camera.DefaultFarClip, camera.DefaultFov)
	g.camera.LookAt(mgl32.Vec3{0, 0.75, 0})

	logger.Sugar.Infow("scene initialized",
		"entities", len(g.entities),
		"materials", len(g.materials),
		"lights", g.lights.Count(),
	)
	return nil
}

func (g *Game) buildSky() error {
	skyProg, err := shader.New(shaders.SkyVertex, shaders.SkyFragment)
	if err != nil {
		return fmt.Errorf("compile sky program: %w", err)
	}

	var cubemap uint32
	if len(g.cfg.Scene.SkyboxFaces) == 6 {
		var faces [6]string
		copy(faces[:], g.cfg.Scene.SkyboxFaces)
		cubemap, err = texture.LoadCubemap(faces)
		if err != nil {
			logger.Sugar.Warnw("skybox load failed, using gradient", "error", err)
			cubemap = 0
		}
	}
	if cubemap == 0 {
		cubemap = texture.GradientCubemap(64,
			color.RGBA{40, 70, 130, 255},
			color.RGBA{170, 190, 215, 255},
			color.RGBA{55, 50, 45, 255})
	}

	g.sky, err = scene.NewSky(skyProg, cubemap)
	if err != nil {
		return fmt.Errorf("create sky: %w", err)
	}
	return nil
}

func (g *Game) buildMaterials(sampler, albedo, normal, rough, metal uint32) {
	brushed := material.New("BrushedMetal", g.pbr)
	brushed.SetAllPbrTextures(albedo, normal, rough, metal)
	brushed.AddSampler(material.DefaultSampler, sampler)
	brushed.SetColorTint(mgl32.Vec4{0.95, 0.93, 0.88, 1})
	brushed.SetRoughness(0.35)
	brushed.SetMetallic(0.9)

	plastic := material.New("MattePlastic", g.pbr)
	plastic.SetAllPbrTextures(albedo, normal, rough, metal)
	plastic.AddSampler(material.DefaultSampler, sampler)
	plastic.SetColorTint(mgl32.Vec4{0.8, 0.25, 0.2, 1})
	plastic.SetRoughness(0.85)
	plastic.SetMetallic(0.0)

	floor := material.New("Floor", g.pbr)
	floor.SetAllPbrTextures(albedo, normal, rough, metal)
	floor.AddSampler(material.DefaultSampler, sampler)
	floor.SetColorTint(mgl32.Vec4{0.6, 0.6, 0.62, 1})
	floor.SetRoughness(0.7)
	floor.SetMetallic(0.05)
	floor.SetTextureScale(4)

	g.materials = append(g.materials, brushed, plastic, floor)
	g.textures = append(g.textures, albedo, normal, rough, metal)
}

func (g *Game) buildEntities() error {
	ground, err := model.Upload(model.Plane(20, 4))
	if err != nil {
		return fmt.Errorf("upload ground: %w", err)
	}
	cube, err := model.Upload(model.Cube(1))
	if err != nil {
		return fmt.Errorf("upload cube: %w", err)
	}
	sphere, err := model.Upload(model.Sphere(0.6, 32, 16))
	if err != nil {
		return fmt.Errorf("upload sphere: %w", err)
	}
	g.meshes = append(g.meshes, ground, cube, sphere)

	brushed, plastic, floor := g.materials[0], g.materials[1], g.materials[2]

	floorEnt := scene.NewEntity("Ground", ground, floor)
	g.entities = append(g.entities, floorEnt)

	cubeEnt := scene.NewEntity("Cube", cube, brushed)
	cubeEnt.Transform().SetPosition(mgl32.Vec3{-1.5, 0.5, 0})
	g.entities = append(g.entities, cubeEnt)

	sphereEnt := scene.NewEntity("Sphere", sphere, plastic)
	sphereEnt.Transform().SetPosition(mgl32.Vec3{1.5, 0.6, 0})
	g.entities = append(g.entities, sphereEnt)

	// OBJ models from configuration line up behind the built-ins.
	for i, path := range g.cfg.Scene.Models {
		data, err := model.LoadOBJ(path)
		if err != nil {
			logger.Sugar.Warnw("skipping model", "path", path, "error", err)
			continue
		}
		mesh, err := model.Upload(data)
		if err != nil {
			return fmt.Errorf("upload %s: %w", filepath.Base(path), err)
		}
		g.meshes = append(g.meshes, mesh)

		name := filepath.Base(path)
		ent := scene.NewEntity(name, mesh, brushed)
		ent.Transform().SetPosition(mgl32.Vec3{float32(i)*2 - 1, 0.5, -2.5})
		g.entities = append(g.entities, ent)
		logger.Sugar.Infow("model loaded", "path", path, "indices", mesh.IndexCount())
	}

	return nil
}

func (g *Game) buildLights() {
	g.lights.Add(lighting.NewDirectional(
		mgl32.Vec3{-0.4, -1, -0.3}, mgl32.Vec3{1, 0.96, 0.9}, 2.4))
	g.lights.Add(lighting.NewPoint(
		mgl32.Vec3{-3, 2, 2}, mgl32.Vec3{0.9, 0.4, 0.2}, 6, 12))
	g.lights.Add(lighting.NewPoint(
		mgl32.Vec3{3, 1.5, -2}, mgl32.Vec3{0.2, 0.45, 0.9}, 5, 10))
}

// Update advances the scene by dt seconds.
func (g *Game) Update(dt float32) {
	for _, e := range g.entities {
		if e.Name() == "Ground" {
			continue
		}
		e.Transform().Rotate(mgl32.QuatRotate(dt*0.4, mgl32.Vec3{0, 1, 0}))
	}
}

// Draw renders the scene into the currently bound framebuffer at the
// given pixel size.
func (g *Game) Draw(width, height int32) {
	if height <= 0 {
		return
	}
	renderer.Resize(width, height)
	renderer.Clear(0.05, 0.05, 0.07, 1)

	aspect := float32(width) / float32(height)
	view := g.camera.ViewMatrix()
	proj := g.camera.ProjectionMatrix(aspect)

	g.pbr.Use()
	g.pbr.SetMat4("uView", view)
	g.pbr.SetMat4("uProjection", proj)
	g.pbr.SetVec3("uCameraPos", g.camera.Transform().Position())
	g.pbr.SetVec3("uAmbientColor", g.ambient)

	g.pbr.SetInt("uLightCount", g.lights.Count())
	g.pbr.SetIntSlice("uLightTypes", g.lights.Types())
	g.pbr.SetVec3Slice("uLightDirections", g.lights.Directions())
	g.pbr.SetVec3Slice("uLightPositions", g.lights.Positions())
	g.pbr.SetVec3Slice("uLightColors", g.lights.Colors())
	g.pbr.SetFloatSlice("uLightIntensities", g.lights.Intensities())
	g.pbr.SetFloatSlice("uLightRanges", g.lights.Ranges())

	for _, e := range g.entities {
		mesh, mat := e.Mesh(), e.Material()
		if mesh == nil || mat == nil {
			continue
		}
		g.pbr.SetMat4("uModel", e.Transform().Matrix())
		mat.Prepare()
		mesh.Draw()
	}

	g.sky.Draw(view, proj)
}

// Camera returns the scene camera.
func (g *Game) Camera() *camera.Camera { return g.camera }

// Entities returns the scene entities in draw order.
func (g *Game) Entities() []*scene.Entity { return g.entities }

// Lights returns the light buffer.
func (g *Game) Lights() *lighting.Buffer { return g.lights }

// Close releases all GPU resources.
func (g *Game) Close() {
	for _, m := range g.meshes {
		m.Delete()
	}
	for _, t := range g.textures {
		texture.Delete(t)
	}
	for _, s := range g.samplers {
		texture.DeleteSampler(s)
	}
	if g.sky != nil {
		g.sky.Delete()
	}
	if g.pbr != nil {
		g.pbr.Delete()
	}
}

func (g *Game) loadOrCheckerboard(path string, a, b color.RGBA) uint32 {
	if path != "" {
		tex, err := texture.Load(path)
		if err == nil {
			return tex
		}
		logger.Sugar.Warnw("texture load failed, using checkerboard", "path", path, "error", err)
	}
	return texture.Checkerboard(256, 8, a, b)
}

func (g *Game) loadOrSolid(path string, c color.RGBA) uint32 {
	if path != "" {
		tex, err := texture.Load(path)
		if err == nil {
			return tex
		}
		logger.Sugar.Warnw("texture load failed, using solid", "path", path, "error", err)
	}
	return texture.Solid(c)
}
