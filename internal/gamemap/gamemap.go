package gamemap

// GameMap holds the collision grid for one level. The grid is a torus:
// every coordinate is taken modulo the map size before lookup.
type GameMap struct {
	Width, Height int
	Tiles         [][]Tile
}

// New creates a GameMap filled with empty tiles.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeEmpty()
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Wrap maps any (x, y) onto the torus.
func (m *GameMap) Wrap(x, y int) (int, int) {
	return mod(x, m.Width), mod(y, m.Height)
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// IsWalkable reports whether the wrapped cell (x, y) can be entered.
func (m *GameMap) IsWalkable(x, y int) bool {
	if m.Width == 0 || m.Height == 0 {
		return false
	}
	x, y = m.Wrap(x, y)
	return m.Tiles[y][x].Walkable
}

// IsWall reports whether the wrapped cell (x, y) is a wall.
func (m *GameMap) IsWall(x, y int) bool {
	if m.Width == 0 || m.Height == 0 {
		return true
	}
	x, y = m.Wrap(x, y)
	return m.Tiles[y][x].Kind == TileWall
}

// mod is the Euclidean remainder; the result is always in [0, n).
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
