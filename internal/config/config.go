package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"globe3d/internal/control"
	"globe3d/internal/globe"
)

// Config holds the globe3d configuration.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Globe    GlobeConfig    `yaml:"globe"`
	Controls ControlsConfig `yaml:"controls"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds canvas and presentation settings.
type WindowConfig struct {
	Width  int    `yaml:"width" env:"GLOBE_WIDTH"`
	Height int    `yaml:"height" env:"GLOBE_HEIGHT"`
	Title  string `yaml:"title" env:"GLOBE_TITLE"`
	FPS    int    `yaml:"fps" env:"GLOBE_FPS"`
}

// GlobeConfig holds point generation and zoom settings.
type GlobeConfig struct {
	BaseRadius   float64 `yaml:"base_radius" env:"GLOBE_BASE_RADIUS"`
	CloudOffset  float64 `yaml:"cloud_offset" env:"GLOBE_CLOUD_OFFSET"`
	LandCount    int     `yaml:"land_count" env:"GLOBE_LAND_COUNT"`
	CloudCount   int     `yaml:"cloud_count" env:"GLOBE_CLOUD_COUNT"`
	LandSizeMin  int     `yaml:"land_size_min"`
	LandSizeMax  int     `yaml:"land_size_max"`
	CloudSizeMin int     `yaml:"cloud_size_min"`
	CloudSizeMax int     `yaml:"cloud_size_max"`
	Sampling     string  `yaml:"sampling" env:"GLOBE_SAMPLING"` // polar (default), uniform
	Seed         uint64  `yaml:"seed" env:"GLOBE_SEED"`         // 0 = time based
	MinZoom      float64 `yaml:"min_zoom"`
	MaxZoom      float64 `yaml:"max_zoom"`
}

// ControlsConfig holds input sensitivity.
type ControlsConfig struct {
	RotateSensitivity float64 `yaml:"rotate_sensitivity"`
	ZoomIn            float64 `yaml:"zoom_in"`
	ZoomOut           float64 `yaml:"zoom_out"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Env   string `yaml:"env" env:"GLOBE_ENV"`         // local, dev, prod
	Level string `yaml:"level" env:"GLOBE_LOG_LEVEL"` // debug, info, warn, error
}

// Load reads the YAML file at path (if path is non-empty), applies
// GLOBE_* environment overrides, fills defaults and validates.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	g := globe.DefaultOptions()
	ctl := control.DefaultSettings()

	if c.Window.Width == 0 {
		c.Window.Width = g.Width
	}
	if c.Window.Height == 0 {
		c.Window.Height = g.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = "Interactive 3D Earth"
	}
	if c.Window.FPS <= 0 {
		c.Window.FPS = 60
	}
	if c.Globe.BaseRadius == 0 {
		c.Globe.BaseRadius = g.BaseRadius
	}
	if c.Globe.CloudOffset == 0 {
		c.Globe.CloudOffset = g.CloudOffset
	}
	if c.Globe.LandCount == 0 {
		c.Globe.LandCount = g.LandCount
	}
	if c.Globe.CloudCount == 0 {
		c.Globe.CloudCount = g.CloudCount
	}
	if c.Globe.LandSizeMin == 0 && c.Globe.LandSizeMax == 0 {
		c.Globe.LandSizeMin, c.Globe.LandSizeMax = g.LandSizeMin, g.LandSizeMax
	}
	if c.Globe.CloudSizeMin == 0 && c.Globe.CloudSizeMax == 0 {
		c.Globe.CloudSizeMin, c.Globe.CloudSizeMax = g.CloudSizeMin, g.CloudSizeMax
	}
	if c.Globe.Sampling == "" {
		c.Globe.Sampling = string(globe.SamplingPolar)
	}
	if c.Globe.MinZoom == 0 {
		c.Globe.MinZoom = g.MinZoom
	}
	if c.Globe.MaxZoom == 0 {
		c.Globe.MaxZoom = g.MaxZoom
	}
	if c.Controls.RotateSensitivity == 0 {
		c.Controls.RotateSensitivity = ctl.RotateSensitivity
	}
	if c.Controls.ZoomIn == 0 {
		c.Controls.ZoomIn = ctl.ZoomIn
	}
	if c.Controls.ZoomOut == 0 {
		c.Controls.ZoomOut = ctl.ZoomOut
	}
	if c.Logging.Env == "" {
		c.Logging.Env = "local"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Controls.ZoomIn <= 1 {
		return fmt.Errorf("controls.zoom_in must be greater than 1, got %v", c.Controls.ZoomIn)
	}
	if c.Controls.ZoomOut <= 0 || c.Controls.ZoomOut >= 1 {
		return fmt.Errorf("controls.zoom_out must be in (0, 1), got %v", c.Controls.ZoomOut)
	}
	switch c.Logging.Env {
	case "local", "dev", "prod":
		// ok
	default:
		return fmt.Errorf("logging.env must be local, dev or prod, got %q", c.Logging.Env)
	}
	if err := c.GlobeOptions().Validate(); err != nil {
		return fmt.Errorf("globe: %w", err)
	}
	return nil
}

// GlobeOptions converts the config into globe construction options.
func (c *Config) GlobeOptions() globe.Options {
	return globe.Options{
		Width:        c.Window.Width,
		Height:       c.Window.Height,
		BaseRadius:   c.Globe.BaseRadius,
		CloudOffset:  c.Globe.CloudOffset,
		LandCount:    c.Globe.LandCount,
		CloudCount:   c.Globe.CloudCount,
		LandSizeMin:  c.Globe.LandSizeMin,
		LandSizeMax:  c.Globe.LandSizeMax,
		CloudSizeMin: c.Globe.CloudSizeMin,
		CloudSizeMax: c.Globe.CloudSizeMax,
		Sampling:     globe.Sampling(c.Globe.Sampling),
		MinZoom:      c.Globe.MinZoom,
		MaxZoom:      c.Globe.MaxZoom,
	}
}

// ControlSettings converts the config into controller settings.
func (c *Config) ControlSettings() control.Settings {
	return control.Settings{
		RotateSensitivity: c.Controls.RotateSensitivity,
		ZoomIn:            c.Controls.ZoomIn,
		ZoomOut:           c.Controls.ZoomOut,
	}
}
