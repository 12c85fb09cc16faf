package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test animation defaults
	if cfg.Animation.Sides != 6 {
		t.Errorf("expected sides 6, got %d", cfg.Animation.Sides)
	}
	if cfg.Animation.Frames != 100 {
		t.Errorf("expected frames 100, got %d", cfg.Animation.Frames)
	}
	if cfg.Animation.MaxPolygons != 1000 {
		t.Errorf("expected max polygons 1000, got %d", cfg.Animation.MaxPolygons)
	}
	if cfg.Animation.ColorA != "C0" || cfg.Animation.ColorB != "C1" {
		t.Errorf("expected colors C0/C1, got %s/%s", cfg.Animation.ColorA, cfg.Animation.ColorB)
	}

	// Test output defaults
	if cfg.Output.File != "polygons.gif" {
		t.Errorf("expected output file polygons.gif, got %s", cfg.Output.File)
	}
	if cfg.Output.Width != 1600 || cfg.Output.Height != 1600 {
		t.Errorf("expected 1600x1600, got %dx%d", cfg.Output.Width, cfg.Output.Height)
	}
	if cfg.Output.DelayMS != 20 {
		t.Errorf("expected delay 20ms, got %d", cfg.Output.DelayMS)
	}
	if cfg.Output.FPS != 30 {
		t.Errorf("expected fps 30, got %d", cfg.Output.FPS)
	}
	if cfg.Output.Preview {
		t.Error("expected preview to be false by default")
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
animation:
  sides: 8
  frames: 250
  max_polygons: 40
  color_a: "#ff0000"
  color_b: "C3"

output:
  file: "spiral.mp4"
  width: 1080
  height: 1080
  delay_ms: 40
  fps: 60
  workers: 4
  preview: true

logging:
  level: "debug"
  log_file: "polynest.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Animation.Sides != 8 {
		t.Errorf("expected sides 8, got %d", cfg.Animation.Sides)
	}
	if cfg.Animation.Frames != 250 {
		t.Errorf("expected frames 250, got %d", cfg.Animation.Frames)
	}
	if cfg.Animation.MaxPolygons != 40 {
		t.Errorf("expected max polygons 40, got %d", cfg.Animation.MaxPolygons)
	}
	if cfg.Animation.ColorA != "#ff0000" {
		t.Errorf("expected color_a #ff0000, got %s", cfg.Animation.ColorA)
	}
	if cfg.Animation.ColorB != "C3" {
		t.Errorf("expected color_b C3, got %s", cfg.Animation.ColorB)
	}

	if cfg.Output.File != "spiral.mp4" {
		t.Errorf("expected output file spiral.mp4, got %s", cfg.Output.File)
	}
	if cfg.Output.Width != 1080 || cfg.Output.Height != 1080 {
		t.Errorf("expected 1080x1080, got %dx%d", cfg.Output.Width, cfg.Output.Height)
	}
	if cfg.Output.DelayMS != 40 {
		t.Errorf("expected delay 40ms, got %d", cfg.Output.DelayMS)
	}
	if cfg.Output.FPS != 60 {
		t.Errorf("expected fps 60, got %d", cfg.Output.FPS)
	}
	if cfg.Output.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.Output.Workers)
	}
	if !cfg.Output.Preview {
		t.Error("expected preview to be true")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "polynest.log" {
		t.Errorf("expected log file 'polynest.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
animation:
  sides: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create polynest.yaml in current directory
	configPath := filepath.Join(tmpDir, "polynest.yaml")
	if err := os.WriteFile(configPath, []byte("animation:\n  sides: 5\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find polynest.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config) error
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) error {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				return nil
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "sides flag",
			setup: func() {
				*flagSides = 9
			},
			verify: func(cfg *Config) error {
				if cfg.Animation.Sides != 9 {
					t.Errorf("expected sides 9, got %d", cfg.Animation.Sides)
				}
				return nil
			},
			teardown: func() {
				*flagSides = 0
			},
		},
		{
			name: "out flag",
			setup: func() {
				*flagOut = "custom.gif"
			},
			verify: func(cfg *Config) error {
				if cfg.Output.File != "custom.gif" {
					t.Errorf("expected output file custom.gif, got %s", cfg.Output.File)
				}
				return nil
			},
			teardown: func() {
				*flagOut = ""
			},
		},
		{
			name: "colors flag",
			setup: func() {
				*flagColors = "red, #00ff00"
			},
			verify: func(cfg *Config) error {
				if cfg.Animation.ColorA != "red" {
					t.Errorf("expected color_a 'red', got %s", cfg.Animation.ColorA)
				}
				if cfg.Animation.ColorB != "#00ff00" {
					t.Errorf("expected color_b '#00ff00', got %s", cfg.Animation.ColorB)
				}
				return nil
			},
			teardown: func() {
				*flagColors = ""
			},
		},
		{
			name: "single color flag keeps second default",
			setup: func() {
				*flagColors = "C4"
			},
			verify: func(cfg *Config) error {
				if cfg.Animation.ColorA != "C4" {
					t.Errorf("expected color_a C4, got %s", cfg.Animation.ColorA)
				}
				if cfg.Animation.ColorB != "C1" {
					t.Errorf("expected color_b to stay C1, got %s", cfg.Animation.ColorB)
				}
				return nil
			},
			teardown: func() {
				*flagColors = ""
			},
		},
		{
			name: "size flag sets both dimensions",
			setup: func() {
				*flagSize = 512
			},
			verify: func(cfg *Config) error {
				if cfg.Output.Width != 512 || cfg.Output.Height != 512 {
					t.Errorf("expected 512x512, got %dx%d", cfg.Output.Width, cfg.Output.Height)
				}
				return nil
			},
			teardown: func() {
				*flagSize = 0
			},
		},
		{
			name: "preview flag",
			setup: func() {
				*flagPreview = true
			},
			verify: func(cfg *Config) error {
				if !cfg.Output.Preview {
					t.Error("expected preview to be enabled")
				}
				return nil
			},
			teardown: func() {
				*flagPreview = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
animation:
  sides: 8
  frames: 50
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagSides = 12
	defer func() {
		*flagConfig = ""
		*flagSides = 0
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Sides should be from flag (12), not file (8)
	if cfg.Animation.Sides != 12 {
		t.Errorf("expected sides 12 from flag, got %d", cfg.Animation.Sides)
	}

	// Frames should be from file (50) since no flag override
	if cfg.Animation.Frames != 50 {
		t.Errorf("expected frames 50 from file, got %d", cfg.Animation.Frames)
	}
}

func TestToAnimation(t *testing.T) {
	cfg := Default()
	anim, err := cfg.ToAnimation()
	if err != nil {
		t.Fatalf("ToAnimation on defaults: %v", err)
	}
	if anim.Sides != 6 || anim.Frames != 100 || anim.MaxPolygons != 1000 {
		t.Errorf("unexpected animation config %+v", anim)
	}
}

func TestToAnimationBadColor(t *testing.T) {
	cfg := Default()
	cfg.Animation.ColorA = "not-a-color"
	if _, err := cfg.ToAnimation(); err == nil {
		t.Error("expected error for unknown color name")
	}
}

func TestToAnimationInvalidSides(t *testing.T) {
	cfg := Default()
	cfg.Animation.Sides = 2
	if _, err := cfg.ToAnimation(); err == nil {
		t.Error("expected error for 2-sided polygon")
	}
}
