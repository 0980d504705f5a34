// Package generate builds random level maps by binary space partitioning.
// The output is an ordinary level grid, so generated maps go through the
// same world generation as maps loaded from disk.
package generate

import (
	"math/rand"

	"torus-walker/internal/level"
)

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// Rect is an axis-aligned rectangle used for rooms (inclusive edges).
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Config drives procedural generation.
type Config struct {
	Width, Height int
	MinLeafSize   int
	MaxLeafSize   int
	MinRoomSize   int
	RoomPadding   int
	CorridorStyle CorridorStyle
	// WrapTunnels digs one row and one column clean through the map so the
	// player can walk off an edge and come back on the other side.
	WrapTunnels bool
	Rand        *rand.Rand
}

// DefaultConfig returns a config for a width x height map.
func DefaultConfig(width, height int, rng *rand.Rand) *Config {
	return &Config{
		Width:         width,
		Height:        height,
		MinLeafSize:   6,
		MaxLeafSize:   16,
		MinRoomSize:   3,
		RoomPadding:   1,
		CorridorStyle: CorridorLShaped,
		WrapTunnels:   true,
		Rand:          rng,
	}
}

// bspLeaf is a node in the BSP tree.
type bspLeaf struct {
	X, Y, W, H  int
	left, right *bspLeaf
	room        *Rect
}

// split divides the leaf into two children, returning false when leaf is too small.
func (l *bspLeaf) split(cfg *Config) bool {
	if l.left != nil || l.right != nil {
		return false
	}
	// Horizontal when taller, vertical when wider.
	splitH := cfg.Rand.Intn(2) == 0
	if l.W > l.H && float64(l.W)/float64(l.H) >= 1.25 {
		splitH = false
	} else if l.H > l.W && float64(l.H)/float64(l.W) >= 1.25 {
		splitH = true
	}

	maxSize := l.H
	if !splitH {
		maxSize = l.W
	}
	if maxSize <= cfg.MinLeafSize*2 {
		return false
	}

	lo := cfg.MinLeafSize
	hi := maxSize - cfg.MinLeafSize
	if lo >= hi {
		return false
	}
	split := lo + cfg.Rand.Intn(hi-lo+1)

	if splitH {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: l.W, H: split}
		l.right = &bspLeaf{X: l.X, Y: l.Y + split, W: l.W, H: l.H - split}
	} else {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: split, H: l.H}
		l.right = &bspLeaf{X: l.X + split, Y: l.Y, W: l.W - split, H: l.H}
	}
	return true
}

// createRooms recursively carves rooms inside terminal leaves.
func (l *bspLeaf) createRooms(grid level.Grid, cfg *Config, rooms *[]Rect) {
	if l.left != nil || l.right != nil {
		if l.left != nil {
			l.left.createRooms(grid, cfg, rooms)
		}
		if l.right != nil {
			l.right.createRooms(grid, cfg, rooms)
		}
		return
	}
	pad := cfg.RoomPadding
	minSize := cfg.MinRoomSize

	availW := max(l.W-2*pad, minSize)
	availH := max(l.H-2*pad, minSize)

	rw := minSize + cfg.Rand.Intn(max(1, availW-minSize+1))
	rh := minSize + cfg.Rand.Intn(max(1, availH-minSize+1))
	rw = max(min(rw, l.W-2*pad), 3)
	rh = max(min(rh, l.H-2*pad), 3)

	rx := l.X + pad + cfg.Rand.Intn(max(1, l.W-rw-2*pad+1))
	ry := l.Y + pad + cfg.Rand.Intn(max(1, l.H-rh-2*pad+1))

	// Keep a one-tile border so rooms never merge across the wrap seam.
	rx = max(rx, 1)
	ry = max(ry, 1)
	if rx+rw >= cfg.Width {
		rw = cfg.Width - rx - 1
	}
	if ry+rh >= cfg.Height {
		rh = cfg.Height - ry - 1
	}
	if rw < 3 || rh < 3 {
		return
	}

	room := Rect{X1: rx, Y1: ry, X2: rx + rw - 1, Y2: ry + rh - 1}
	l.room = &room
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			grid.Set(x, y, level.Empty)
		}
	}
	*rooms = append(*rooms, room)
}

// getRoom returns a room from this leaf or its descendants.
func (l *bspLeaf) getRoom() *Rect {
	if l.room != nil {
		return l.room
	}
	if l.left != nil {
		if r := l.left.getRoom(); r != nil {
			return r
		}
	}
	if l.right != nil {
		return l.right.getRoom()
	}
	return nil
}

// connectChildren carves corridors between the two children of a split leaf.
func (l *bspLeaf) connectChildren(grid level.Grid, cfg *Config) {
	if l.left == nil || l.right == nil {
		return
	}
	l.left.connectChildren(grid, cfg)
	l.right.connectChildren(grid, cfg)

	lRoom := l.left.getRoom()
	rRoom := l.right.getRoom()
	if lRoom == nil || rRoom == nil {
		return
	}
	lCX, lCY := lRoom.Center()
	rCX, rCY := rRoom.Center()
	carveCorridor(grid, lCX, lCY, rCX, rCY, cfg)
}

// Generate returns a walled map with connected rooms and a single spawn
// marker in the center of the first room. It also returns the rooms.
func Generate(cfg *Config) (level.Grid, []Rect) {
	grid := make(level.Grid, cfg.Height)
	for y := range grid {
		grid[y] = make([]rune, cfg.Width)
		for x := range grid[y] {
			grid[y][x] = level.Wall
		}
	}

	root := &bspLeaf{X: 0, Y: 0, W: cfg.Width, H: cfg.Height}
	leaves := []*bspLeaf{root}
	splitAny := true
	for splitAny {
		splitAny = false
		var next []*bspLeaf
		for _, leaf := range leaves {
			if leaf.left != nil || leaf.right != nil {
				next = append(next, leaf.left, leaf.right)
				continue
			}
			if leaf.W > cfg.MaxLeafSize || leaf.H > cfg.MaxLeafSize ||
				cfg.Rand.Float64() > 0.25 {
				if leaf.split(cfg) {
					next = append(next, leaf.left, leaf.right)
					splitAny = true
					continue
				}
			}
			next = append(next, leaf)
		}
		leaves = next
	}

	var rooms []Rect
	root.createRooms(grid, cfg, &rooms)
	root.connectChildren(grid, cfg)

	px, py := 1, 1
	if len(rooms) > 0 {
		px, py = rooms[0].Center()
	}
	if cfg.WrapTunnels {
		carveH(grid, 0, cfg.Width-1, py)
		carveV(grid, 0, cfg.Height-1, px)
	}
	grid.Set(px, py, level.Spawn)
	return grid, rooms
}
