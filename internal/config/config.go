package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTitle         = "flowfield"
	DefaultWidth         = 800
	DefaultHeight        = 600
	DefaultTPS           = 60
	DefaultScreenshotDir = "screenshots"
	DefaultFrames        = 300
	DefaultGIFDelay      = 2
)

// Config holds host settings. The field itself has no tunables.
type Config struct {
	Title         string       `yaml:"title"`
	Width         int          `yaml:"width"`
	Height        int          `yaml:"height"`
	TPS           int          `yaml:"tps"`
	ShowFPS       bool         `yaml:"show_fps"`
	Debug         bool         `yaml:"debug"`
	ScreenshotDir string       `yaml:"screenshot_dir"`
	Render        RenderConfig `yaml:"render"`
}

// RenderConfig controls headless rendering.
type RenderConfig struct {
	Frames   int          `yaml:"frames"`
	StepMs   float64      `yaml:"step_ms"`
	Output   string       `yaml:"output"`
	GIFDelay int          `yaml:"gif_delay"`
	Cursor   CursorConfig `yaml:"cursor"`
}

type CursorConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func DefaultConfig() *Config {
	return &Config{
		Title:         DefaultTitle,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		TPS:           DefaultTPS,
		ScreenshotDir: DefaultScreenshotDir,
		Render: RenderConfig{
			Frames:   DefaultFrames,
			StepMs:   1000.0 / 60.0,
			Output:   "flowfield.gif",
			GIFDelay: DefaultGIFDelay,
			Cursor:   CursorConfig{X: DefaultWidth / 2, Y: DefaultHeight / 2},
		},
	}
}

// Load reads a yaml file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings no host can run with.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.TPS < 0 {
		return fmt.Errorf("invalid tps %d", c.TPS)
	}
	if c.Render.Frames < 0 {
		return fmt.Errorf("invalid render frames %d", c.Render.Frames)
	}
	if c.Render.StepMs < 0 {
		return fmt.Errorf("invalid render step_ms %v", c.Render.StepMs)
	}
	if c.Render.GIFDelay < 0 {
		return fmt.Errorf("invalid render gif_delay %d", c.Render.GIFDelay)
	}
	return nil
}
