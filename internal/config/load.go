package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/ElliotMtb/battlefield-hexagons/internal/board"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the standard locations
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks settings that would otherwise fail deep inside scene
// construction.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.ShadowMap < 0 {
		errs = append(errs, fmt.Errorf("graphics.shadow_map_size %d must be non-negative", c.Graphics.ShadowMap))
	}
	if !(c.Board.TileRadius > 0) || math.IsInf(c.Board.TileRadius, 1) {
		errs = append(errs, fmt.Errorf("board.tile_radius %v must be positive and finite", c.Board.TileRadius))
	}
	if c.Board.Rings < 0 || c.Board.Rings > board.MaxRings {
		errs = append(errs, fmt.Errorf("board.rings %d must be in [0, %d]", c.Board.Rings, board.MaxRings))
	}
	if c.Scene.CameraFOV <= 0 || c.Scene.CameraFOV >= 180 {
		errs = append(errs, fmt.Errorf("scene.camera_fov %v must be in (0, 180)", c.Scene.CameraFOV))
	}
	if c.Scene.CameraNear <= 0 || c.Scene.CameraFar <= c.Scene.CameraNear {
		errs = append(errs, fmt.Errorf("scene camera planes near=%v far=%v are out of order", c.Scene.CameraNear, c.Scene.CameraFar))
	}
	for name := range c.Assets.Textures {
		if _, err := board.ParseKind(name); err != nil {
			errs = append(errs, fmt.Errorf("assets.textures: %w", err))
		}
	}
	return errors.Join(errs...)
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "BattlefieldHexagons")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "BattlefieldHexagons")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "battlefield-hexagons")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "battlefield-hexagons")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
