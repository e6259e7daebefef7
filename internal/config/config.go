// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SceneConfig holds scene content settings.
type SceneConfig struct {
	// Models are OBJ files added to the demo scene alongside the
	// built-in procedural geometry.
	Models []string `yaml:"models"`

	// Texture paths per PBR slot. Empty entries fall back to a
	// generated checkerboard.
	AlbedoTexture    string `yaml:"albedo_texture"`
	NormalTexture    string `yaml:"normal_texture"`
	RoughnessTexture string `yaml:"roughness_texture"`
	MetallicTexture  string `yaml:"metallic_texture"`

	// Skybox cubemap faces in +X -X +Y -Y +Z -Z order. Fewer than six
	// entries selects the generated gradient sky.
	SkyboxFaces []string `yaml:"skybox_faces"`
}

// AudioConfig holds background music settings.
type AudioConfig struct {
	MusicPath   string  `yaml:"music_path"`
	MusicVolume float64 `yaml:"music_volume"`
	Muted       bool    `yaml:"muted"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{},
		Audio: AudioConfig{
			MusicVolume: 0.6,
			Muted:       false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
