package entities

// Player is the controllable entity. WorldX/WorldY are derived from the grid
// position and must only change through SetPos.
type Player struct {
	PosX, PosY       int
	OffsetX, OffsetY float64
	WorldX, WorldY   float64

	tileSize int
}

// NewPlayer creates a player at grid (x, y). The offset shifts the sprite
// from the cell center so a smaller image sits inside the cell.
func NewPlayer(x, y, tileSize int, offsetX, offsetY float64) *Player {
	p := &Player{OffsetX: offsetX, OffsetY: offsetY, tileSize: tileSize}
	p.SetPos(x, y)
	return p
}

// SetPos moves the player to grid (x, y) and recomputes its world position.
func (p *Player) SetPos(x, y int) {
	p.PosX, p.PosY = x, y
	half := float64(p.tileSize / 2)
	p.WorldX = float64(x*p.tileSize) + half + p.OffsetX
	p.WorldY = float64(y*p.tileSize) + half + p.OffsetY
}

// TileSize returns the cell size the world position is computed with.
func (p *Player) TileSize() int { return p.tileSize }
