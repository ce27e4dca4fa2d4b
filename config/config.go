// Package config manages slitherforge configuration: editor defaults
// and grid-size policy, loaded from a YAML file when one exists.
//
// The default location is ~/.slitherforge/config.yaml, overridable with
// the SLITHERFORGE_CONFIG environment variable. A missing file means
// defaults; a malformed file is an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"slitherforge/editor"
	"slitherforge/level"
)

// Config holds the editor settings.
type Config struct {
	// DefaultWidth and DefaultHeight size freshly created levels.
	DefaultWidth  int `yaml:"default_width"`
	DefaultHeight int `yaml:"default_height"`

	// MinGridSize and MaxGridSize bound what the editing tools accept
	// for a resize. Files outside this range still load.
	MinGridSize int `yaml:"min_grid_size"`
	MaxGridSize int `yaml:"max_grid_size"`

	// DefaultColor is the palette name painting starts with.
	DefaultColor string `yaml:"default_color"`

	// Audio toggles the gesture feedback tones.
	Audio bool `yaml:"audio"`

	// LogFile receives structured logs while the full-screen editor owns
	// the terminal. Empty disables file logging.
	LogFile string `yaml:"log_file"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DefaultWidth:  level.DefaultWidth,
		DefaultHeight: level.DefaultHeight,
		MinGridSize:   editor.DefaultMinGridSize,
		MaxGridSize:   editor.DefaultMaxGridSize,
		DefaultColor:  level.Red.String(),
		Audio:         true,
	}
}

// Path returns the config file location, honoring SLITHERFORGE_CONFIG.
func Path() (string, error) {
	if p := os.Getenv("SLITHERFORGE_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".slitherforge", "config.yaml"), nil
}

// Load reads the config at path, layered over defaults. A missing file
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.MinGridSize < 1 || c.MaxGridSize < c.MinGridSize {
		return fmt.Errorf("grid size policy [%d,%d] is not a valid range", c.MinGridSize, c.MaxGridSize)
	}
	if c.DefaultWidth < c.MinGridSize || c.DefaultWidth > c.MaxGridSize ||
		c.DefaultHeight < c.MinGridSize || c.DefaultHeight > c.MaxGridSize {
		return fmt.Errorf("default grid %dx%d outside policy [%d,%d]",
			c.DefaultWidth, c.DefaultHeight, c.MinGridSize, c.MaxGridSize)
	}
	if _, err := level.ParseColor(c.DefaultColor); err != nil {
		return err
	}
	return nil
}

// Color resolves the configured default color.
func (c *Config) Color() level.Color {
	col, err := level.ParseColor(c.DefaultColor)
	if err != nil {
		return level.Red
	}
	return col
}
