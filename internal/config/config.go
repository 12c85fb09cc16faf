// Package config handles tool configuration loading and management.
package config

import (
	"fmt"

	"github.com/ajgray/polynest"
)

// Config holds all settings for one invocation.
type Config struct {
	Animation AnimationConfig `yaml:"animation"`
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// AnimationConfig holds the geometric animation parameters.
type AnimationConfig struct {
	Sides       int    `yaml:"sides"`
	Frames      int    `yaml:"frames"`
	MaxPolygons int    `yaml:"max_polygons"`
	ColorA      string `yaml:"color_a"`
	ColorB      string `yaml:"color_b"`
}

// OutputConfig holds export and preview settings.
type OutputConfig struct {
	File    string `yaml:"file"`     // .gif, video extension, or directory for PNG frames
	Width   int    `yaml:"width"`    // frame width in pixels
	Height  int    `yaml:"height"`   // frame height in pixels
	DelayMS int    `yaml:"delay_ms"` // inter-frame delay for GIF and preview
	FPS     int    `yaml:"fps"`      // playback frame rate for video output
	Workers int    `yaml:"workers"`  // render workers; 0 means NumCPU
	Preview bool   `yaml:"preview"`  // open a window instead of exporting
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Animation: AnimationConfig{
			Sides:       6,
			Frames:      100,
			MaxPolygons: 1000,
			ColorA:      "C0",
			ColorB:      "C1",
		},
		Output: OutputConfig{
			File:    "polygons.gif",
			Width:   1600,
			Height:  1600,
			DelayMS: 20,
			FPS:     30,
			Workers: 0,
			Preview: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// ToAnimation resolves the animation section into a validated core config.
func (c *Config) ToAnimation() (polynest.Config, error) {
	colorA, err := polynest.ParseColor(c.Animation.ColorA)
	if err != nil {
		return polynest.Config{}, fmt.Errorf("color_a: %w", err)
	}
	colorB, err := polynest.ParseColor(c.Animation.ColorB)
	if err != nil {
		return polynest.Config{}, fmt.Errorf("color_b: %w", err)
	}

	cfg := polynest.Config{
		Sides:       c.Animation.Sides,
		Frames:      c.Animation.Frames,
		MaxPolygons: c.Animation.MaxPolygons,
		ColorA:      colorA,
		ColorB:      colorB,
	}
	if err := cfg.Validate(); err != nil {
		return polynest.Config{}, err
	}
	return cfg, nil
}
