// Package config holds the runtime settings shared by every frontend.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v2"
)

// Config includes settings for a game session.
type Config struct {
	// in pixels
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`
	TileSize     int `yaml:"tile_size"`

	// frames per second for the render loop
	FPS int `yaml:"fps"`

	// directory holding level files and images
	DataDir string `yaml:"data_dir"`

	// sprite offset from the cell center, in pixels
	PlayerOffsetX float64 `yaml:"player_offset_x"`
	PlayerOffsetY float64 `yaml:"player_offset_y"`

	Assets AssetNames `yaml:"assets"`

	// glyph set for the terminal frontends
	Theme string `yaml:"theme"`

	Title string `yaml:"title"`
}

// AssetNames are image file names inside DataDir.
type AssetNames struct {
	Wall       string `yaml:"wall"`
	Empty      string `yaml:"empty"`
	Player     string `yaml:"player"`
	Background string `yaml:"background"`
}

// Default returns a config with default settings.
func Default() *Config {
	return &Config{
		ScreenWidth:   550,
		ScreenHeight:  550,
		TileSize:      50,
		FPS:           50,
		DataDir:       "data",
		PlayerOffsetX: -12.5,
		PlayerOffsetY: -20,
		Assets: AssetNames{
			Wall:       "box.png",
			Empty:      "grass.png",
			Player:     "mario.png",
			Background: "fon.jpg",
		},
		Theme: "meadow",
		Title: "Torus Walker",
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	p, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand config path %q: %w", path, err)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", p, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", p, err)
	}
	return cfg, nil
}

// Validate rejects settings no frontend can run with.
func (c *Config) Validate() error {
	var errs []error
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight))
	}
	if c.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("tile_size must be positive, got %d", c.TileSize))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	if c.DataDir == "" {
		errs = append(errs, errors.New("data_dir must not be empty"))
	}
	return errors.Join(errs...)
}

// ExpandedDataDir returns DataDir with a leading ~ resolved.
func (c *Config) ExpandedDataDir() (string, error) {
	return homedir.Expand(c.DataDir)
}
