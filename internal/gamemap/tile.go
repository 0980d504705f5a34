package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileEmpty TileKind = iota
	TileWall
)

// String returns the kind's name as used in asset and config keys.
func (k TileKind) String() string {
	switch k {
	case TileWall:
		return "wall"
	default:
		return "empty"
	}
}

// Tile holds the kind and passability of one map cell.
type Tile struct {
	Kind     TileKind
	Walkable bool
}

// MakeWall returns a blocking wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall, Walkable: false}
}

// MakeEmpty returns a passable empty tile.
func MakeEmpty() Tile {
	return Tile{Kind: TileEmpty, Walkable: true}
}
