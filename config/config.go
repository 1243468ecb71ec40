// Package config loads the editor's TOML settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/worlded/logging"
)

// ErrInvalid indicates a setting outside its allowed range.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds worlded configuration.
type Config struct {
	Editor Editor         `toml:"editor"`
	Map    Map            `toml:"map"`
	Log    logging.Config `toml:"log"`
}

// Editor controls grid and hit-testing geometry.
type Editor struct {
	GridSize     int     `toml:"grid_size"`
	VertexRadius int     `toml:"vertex_radius"`
	VertexHitTol float64 `toml:"vertex_hit_tolerance"` // 0 means 2 × VertexRadius
	LineHitTol   float64 `toml:"line_hit_tolerance"`
	CanvasWidth  int     `toml:"canvas_width"`
	CanvasHeight int     `toml:"canvas_height"`
	DefaultExt   string  `toml:"default_extension"`
}

// Map controls loading of map files.
type Map struct {
	StrictLoad bool `toml:"strict_load"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Editor: Editor{
			GridSize:     20,
			VertexRadius: 3,
			LineHitTol:   5,
			CanvasWidth:  900,
			CanvasHeight: 600,
			DefaultExt:   ".json",
		},
		Map: Map{StrictLoad: true},
	}
}

// VertexTolerance returns the half-side of the vertex hit-box.
func (e Editor) VertexTolerance() float64 {
	if e.VertexHitTol > 0 {
		return e.VertexHitTol
	}
	return float64(2 * e.VertexRadius)
}

// Validate rejects settings the editor cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.Editor.GridSize <= 0:
		return fmt.Errorf("%w: grid_size must be positive, got %d", ErrInvalid, c.Editor.GridSize)
	case c.Editor.VertexTolerance() <= 0:
		return fmt.Errorf("%w: vertex hit tolerance must be positive", ErrInvalid)
	case c.Editor.LineHitTol <= 0:
		return fmt.Errorf("%w: line_hit_tolerance must be positive, got %v", ErrInvalid, c.Editor.LineHitTol)
	case c.Log.MaxSize < 0 || c.Log.MaxAge < 0:
		return fmt.Errorf("%w: log size and age must not be negative", ErrInvalid)
	}
	return nil
}

// Dir returns the worlded config directory path.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "worlded")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads path over the defaults. A missing file yields the defaults;
// a file that fails to parse or validate is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
