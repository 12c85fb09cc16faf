package config

import (
	"flag"
	"strings"
)

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagSides   = flag.Int("sides", 0, "Number of sides of the polygon")
	flagOut     = flag.String("out", "", "Output file (.gif, a video extension, or a directory for PNG frames)")
	flagFrames  = flag.Int("frames", 0, "Number of frames for the animation")
	flagColors  = flag.String("colors", "", "Two fill colors, comma separated (e.g. C0,C1)")
	flagMaxPoly = flag.Int("max-polygons", 0, "Maximum number of polygons to draw")
	flagDelay   = flag.Int("delay", 0, "Delay between frames in ms")
	flagFPS     = flag.Int("fps", 0, "Video playback frame rate")
	flagSize    = flag.Int("size", 0, "Output frame size in pixels (square)")
	flagPreview = flag.Bool("preview", false, "Open an interactive preview window instead of exporting")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSides > 0 {
		cfg.Animation.Sides = *flagSides
	}
	if *flagOut != "" {
		cfg.Output.File = *flagOut
	}
	if *flagFrames > 0 {
		cfg.Animation.Frames = *flagFrames
	}
	if *flagColors != "" {
		parts := strings.SplitN(*flagColors, ",", 2)
		cfg.Animation.ColorA = strings.TrimSpace(parts[0])
		if len(parts) == 2 {
			cfg.Animation.ColorB = strings.TrimSpace(parts[1])
		}
	}
	if *flagMaxPoly > 0 {
		cfg.Animation.MaxPolygons = *flagMaxPoly
	}
	if *flagDelay > 0 {
		cfg.Output.DelayMS = *flagDelay
	}
	if *flagFPS > 0 {
		cfg.Output.FPS = *flagFPS
	}
	if *flagSize > 0 {
		cfg.Output.Width = *flagSize
		cfg.Output.Height = *flagSize
	}
	if *flagPreview {
		cfg.Output.Preview = true
	}
}
