package game

import (
	"fmt"
	"math/rand"

	"torus-walker/internal/config"
	"torus-walker/internal/generate"
	"torus-walker/internal/level"
	"torus-walker/internal/world"
)

// worldOptions builds world.Options from the session config.
func worldOptions(cfg *config.Config) world.Options {
	return world.Options{
		TileSize:      cfg.TileSize,
		PlayerOffsetX: cfg.PlayerOffsetX,
		PlayerOffsetY: cfg.PlayerOffsetY,
	}
}

// LoadWorld reads the level at path and generates its world.
func LoadWorld(cfg *config.Config, path string) (*world.World, error) {
	grid, err := level.Load(path)
	if err != nil {
		return nil, err
	}
	w, err := world.Generate(grid, worldOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return w, nil
}

// RandomWorld generates a fresh width x height level from seed.
func RandomWorld(cfg *config.Config, width, height int, seed int64) (*world.World, error) {
	if width < 8 || height < 8 {
		return nil, fmt.Errorf("random level %dx%d: need at least 8x8", width, height)
	}
	gen := generate.DefaultConfig(width, height, rand.New(rand.NewSource(seed)))
	grid, _ := generate.Generate(gen)
	w, err := world.Generate(grid, worldOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("random level (seed %d): %w", seed, err)
	}
	return w, nil
}
