package entities

import "torus-walker/internal/gamemap"

// Tile is one drawable map cell. It never changes after level generation.
type Tile struct {
	Kind           gamemap.TileKind
	X, Y           int
	WorldX, WorldY float64
}

// NewTile places a tile of the given kind at grid (x, y).
func NewTile(kind gamemap.TileKind, x, y, tileSize int) Tile {
	return Tile{
		Kind:   kind,
		X:      x,
		Y:      y,
		WorldX: float64(x * tileSize),
		WorldY: float64(y * tileSize),
	}
}
