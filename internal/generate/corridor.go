package generate

import "torus-walker/internal/level"

// carveCorridor digs a tunnel between (x1,y1) and (x2,y2).
func carveCorridor(grid level.Grid, x1, y1, x2, y2 int, cfg *Config) {
	switch cfg.CorridorStyle {
	case CorridorZShaped:
		carveZShaped(grid, x1, y1, x2, y2)
	case CorridorStraight:
		carveH(grid, x1, x2, y1)
		carveV(grid, y1, y2, x2)
	default: // LShaped
		if cfg.Rand.Intn(2) == 0 {
			carveH(grid, x1, x2, y1)
			carveV(grid, y1, y2, x2)
		} else {
			carveV(grid, y1, y2, x1)
			carveH(grid, x1, x2, y2)
		}
	}
}

func inBounds(grid level.Grid, x, y int) bool {
	return y >= 0 && y < grid.Height() && x >= 0 && x < grid.Width()
}

func carveH(grid level.Grid, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if inBounds(grid, x, y) {
			grid.Set(x, y, level.Empty)
		}
	}
}

func carveV(grid level.Grid, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if inBounds(grid, x, y) {
			grid.Set(x, y, level.Empty)
		}
	}
}

func carveZShaped(grid level.Grid, x1, y1, x2, y2 int) {
	midY := (y1 + y2) / 2
	carveV(grid, y1, midY, x1)
	carveH(grid, x1, x2, midY)
	carveV(grid, midY, y2, x2)
}
