package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("default window size = %dx%d, want 1280x720",
			cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("vsync should default to true")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Audio.Muted {
		t.Error("audio should not be muted by default")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glint.yaml")

	cfg := Default()
	cfg.Graphics.Width = 1920
	cfg.Graphics.Height = 1080
	cfg.Scene.Models = []string{"models/helmet.obj", "models/sphere.obj"}
	cfg.Scene.AlbedoTexture = "textures/bronze_albedo.png"
	cfg.Audio.MusicVolume = 0.25
	cfg.Logging.Level = "debug"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if loaded.Graphics.Width != 1920 || loaded.Graphics.Height != 1080 {
		t.Errorf("loaded size = %dx%d, want 1920x1080",
			loaded.Graphics.Width, loaded.Graphics.Height)
	}
	if len(loaded.Scene.Models) != 2 || loaded.Scene.Models[0] != "models/helmet.obj" {
		t.Errorf("loaded models = %v", loaded.Scene.Models)
	}
	if loaded.Scene.AlbedoTexture != "textures/bronze_albedo.png" {
		t.Errorf("loaded albedo texture = %q", loaded.Scene.AlbedoTexture)
	}
	if loaded.Audio.MusicVolume != 0.25 {
		t.Errorf("loaded music volume = %v, want 0.25", loaded.Audio.MusicVolume)
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("loaded log level = %q, want debug", loaded.Logging.Level)
	}
}

func TestPartialFileMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glint.yaml")

	// Only graphics.width set; everything else should keep defaults.
	partial := "graphics:\n  width: 800\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatalf("write partial config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if cfg.Graphics.Width != 800 {
		t.Errorf("width = %d, want 800", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("height = %d, want default 720", cfg.Graphics.Height)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("level = %q, want default info", cfg.Logging.Level)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/glint.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("graphics: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
