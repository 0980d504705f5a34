package system

import (
	"torus-walker/internal/entities"
	"torus-walker/internal/world"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall, no player, or not a unit step
)

func (r MoveResult) String() string {
	if r == MoveOK {
		return "ok"
	}
	return "blocked"
}

// TryMove steps the player one cell in dir. Both axes wrap around the map
// edges. A move into a wall leaves the player untouched.
func TryMove(w *world.World, dir entities.Direction) MoveResult {
	p := w.Player
	if p == nil {
		return MoveBlocked
	}
	dx, dy := entities.DirDelta(dir)
	if dx == 0 && dy == 0 {
		return MoveBlocked
	}

	nx, ny := w.Map.Wrap(p.PosX+dx, p.PosY+dy)
	if w.Map.IsWall(nx, ny) {
		return MoveBlocked
	}
	p.SetPos(nx, ny)
	return MoveOK
}
