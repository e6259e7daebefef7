// Glint is a small scene viewer with a live ImGui inspector.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/lunarforge/glint/internal/config"
	"github.com/lunarforge/glint/internal/engine/audio"
	"github.com/lunarforge/glint/internal/engine/renderer"
	engineui "github.com/lunarforge/glint/internal/engine/ui"
	"github.com/lunarforge/glint/internal/game"
	gameui "github.com/lunarforge/glint/internal/game/ui"
	"github.com/lunarforge/glint/internal/logger"
)

func main() {
	runtime.LockOSThread()

	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	app, err := newApp(cfg)
	if err != nil {
		logger.Sugar.Fatalw("startup failed", "error", err)
	}
	defer app.Close()

	app.Run()
}

// App wires the backend, scene and panels together.
type App struct {
	cfg      *config.Config
	backend  *engineui.Backend
	game     *game.Game
	viewport *renderer.Viewport
	audio    *audio.Manager
	uiState  *gameui.State

	lastFrame time.Time
}

func newApp(cfg *config.Config) (*App, error) {
	app := &App{
		cfg:     cfg,
		uiState: gameui.NewState(),
	}

	var err error
	app.backend, err = engineui.NewBackend("Glint",
		int32(cfg.Graphics.Width), int32(cfg.Graphics.Height))
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	app.game = game.New(cfg)
	if err := app.game.Init(); err != nil {
		return nil, fmt.Errorf("init scene: %w", err)
	}

	app.viewport, err = renderer.NewViewport(
		int32(cfg.Graphics.Width), int32(cfg.Graphics.Height))
	if err != nil {
		return nil, fmt.Errorf("create viewport: %w", err)
	}

	app.audio = audio.New()
	if err := app.audio.Init(); err != nil {
		logger.Sugar.Warnw("audio unavailable", "error", err)
	} else {
		app.audio.SetVolume(cfg.Audio.MusicVolume)
		app.audio.SetMuted(cfg.Audio.Muted)
		if cfg.Audio.MusicPath != "" {
			if err := app.audio.PlayMusic(cfg.Audio.MusicPath); err != nil {
				logger.Sugar.Warnw("music playback failed", "error", err)
			}
		}
	}

	app.lastFrame = time.Now()
	return app, nil
}

// Run enters the backend's render loop and blocks until the window closes.
func (app *App) Run() {
	app.backend.Run(app.render)
}

// render runs once per frame inside the ImGui frame.
func (app *App) render() {
	now := time.Now()
	dt := float32(now.Sub(app.lastFrame).Seconds())
	app.lastFrame = now
	if dt > 0.25 {
		dt = 0.25 // ignore pauses from window drags
	}

	app.game.Update(dt)

	// Panels mutate scene state, so they run before the scene draw and
	// their edits land in the same frame.
	gameui.ShowStats(app.uiState, app.audio)
	gameui.ShowInspector(app.uiState, app.game.Camera(), app.game.Entities())
	app.renderViewportWindow()
}

// renderViewportWindow draws the 3D scene into the offscreen framebuffer
// and shows it as an image inside an ImGui window.
func (app *App) renderViewportWindow() {
	imgui.SetNextWindowSizeV(imgui.NewVec2(820, 640), imgui.CondFirstUseEver)
	if imgui.BeginV("Viewport", nil, imgui.WindowFlagsNone) {
		avail := imgui.ContentRegionAvail()
		w, h := int32(avail.X), int32(avail.Y)
		if w > 0 && h > 0 {
			vw, vh := app.viewport.Size()
			if vw != w || vh != h {
				if err := app.viewport.Resize(w, h); err != nil {
					logger.Sugar.Errorw("viewport resize failed", "error", err)
				}
			}

			app.viewport.Bind()
			app.game.Draw(w, h)
			app.viewport.Unbind()

			texRef := imgui.NewTextureRefTextureID(imgui.TextureID(app.viewport.TextureID()))
			imgui.ImageWithBgV(
				*texRef,
				imgui.NewVec2(float32(w), float32(h)),
				imgui.NewVec2(0, 1), // UV flipped for OpenGL
				imgui.NewVec2(1, 0),
				imgui.NewVec4(0.05, 0.05, 0.07, 1.0),
				imgui.NewVec4(1, 1, 1, 1),
			)
		}
	}
	imgui.End()
}

// Close releases the scene, viewport and audio resources.
func (app *App) Close() {
	if app.audio != nil {
		app.audio.Close()
	}
	if app.viewport != nil {
		app.viewport.Delete()
	}
	if app.game != nil {
		app.game.Close()
	}
}
