// Package world builds the playable level from a loaded map and owns every
// entity in it.
package world

import (
	"errors"
	"fmt"
	"strings"

	"torus-walker/internal/entities"
	"torus-walker/internal/gamemap"
	"torus-walker/internal/level"
)

var (
	// ErrNoSpawn is returned when the map has no spawn marker.
	ErrNoSpawn = errors.New("level has no player spawn")
	// ErrMultipleSpawns is returned when the map has more than one spawn marker.
	ErrMultipleSpawns = errors.New("level has more than one player spawn")
)

// Options controls the pixel geometry of generated entities.
type Options struct {
	TileSize      int
	PlayerOffsetX float64
	PlayerOffsetY float64
}

// World owns the collision map, the tile records and the player.
type World struct {
	Map      *gamemap.GameMap
	Grid     level.Grid
	Tiles    []entities.Tile
	Player   *entities.Player
	TileSize int
}

// Generate scans grid row by row and builds the world. The spawn cell is
// rewritten to level.Empty in grid, which stays the collision source.
// A grid without exactly one spawn marker is rejected.
func Generate(grid level.Grid, opts Options) (*World, error) {
	if opts.TileSize <= 0 {
		return nil, fmt.Errorf("generate level: tile size must be positive, got %d", opts.TileSize)
	}
	w, h := grid.Width(), grid.Height()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("generate level: %w", level.ErrEmpty)
	}

	var spawns [][2]int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if grid.At(x, y) == level.Spawn {
				spawns = append(spawns, [2]int{x, y})
			}
		}
	}
	switch {
	case len(spawns) == 0:
		return nil, ErrNoSpawn
	case len(spawns) > 1:
		coords := make([]string, len(spawns))
		for i, s := range spawns {
			coords[i] = fmt.Sprintf("(%d,%d)", s[0], s[1])
		}
		return nil, fmt.Errorf("%w: found at %s", ErrMultipleSpawns, strings.Join(coords, " "))
	}

	world := &World{
		Map:      gamemap.New(w, h),
		Grid:     grid,
		Tiles:    make([]entities.Tile, 0, w*h),
		TileSize: opts.TileSize,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch grid.At(x, y) {
			case level.Wall:
				world.Map.Set(x, y, gamemap.MakeWall())
				world.Tiles = append(world.Tiles, entities.NewTile(gamemap.TileWall, x, y, opts.TileSize))
			case level.Spawn:
				world.Tiles = append(world.Tiles, entities.NewTile(gamemap.TileEmpty, x, y, opts.TileSize))
				world.Player = entities.NewPlayer(x, y, opts.TileSize, opts.PlayerOffsetX, opts.PlayerOffsetY)
				grid.Set(x, y, level.Empty)
			default:
				// Filler and unrecognized characters are open ground.
				world.Tiles = append(world.Tiles, entities.NewTile(gamemap.TileEmpty, x, y, opts.TileSize))
			}
		}
	}
	return world, nil
}

// Width returns the map width in tiles.
func (w *World) Width() int { return w.Map.Width }

// Height returns the map height in tiles.
func (w *World) Height() int { return w.Map.Height }

// PixelSize returns the world extent in pixels.
func (w *World) PixelSize() (float64, float64) {
	return float64(w.Map.Width * w.TileSize), float64(w.Map.Height * w.TileSize)
}
