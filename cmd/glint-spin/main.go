// Glint-spin renders the demo scene fullscreen with an orbiting camera
// and no inspector UI. Useful for quick smoke tests of the render path.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lunarforge/glint/internal/config"
	"github.com/lunarforge/glint/internal/engine/window"
	"github.com/lunarforge/glint/internal/game"
	"github.com/lunarforge/glint/internal/logger"
)

const (
	orbitRadius = 7.0
	orbitHeight = 3.0
	orbitSpeed  = 0.3 // radians per second
)

func main() {
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

	if err := run(cfg); err != nil {
		logger.Sugar.Fatalw("run failed", "error", err)
	}
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      "Glint Spin",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Close()

	g := game.New(cfg)
	if err := g.Init(); err != nil {
		return fmt.Errorf("init scene: %w", err)
	}
	defer g.Close()

	last := window.Ticks()
	var angle float32

	for !win.PollQuit() {
		now := window.Ticks()
		dt := float32(now-last) / 1000
		last = now

		angle += dt * orbitSpeed
		orbit(g, angle)
		g.Update(dt)

		w, h := win.Size()
		g.Draw(w, h)
		win.Swap()
	}

	return nil
}

// orbit places the camera on a circle around the scene origin.
func orbit(g *game.Game, angle float32) {
	cam := g.Camera()
	pos := mgl32.Vec3{
		orbitRadius * float32(math.Cos(float64(angle))),
		orbitHeight,
		orbitRadius * float32(math.Sin(float64(angle))),
	}
	cam.Transform().SetPosition(pos)
	cam.LookAt(mgl32.Vec3{0, 0.75, 0})
}
