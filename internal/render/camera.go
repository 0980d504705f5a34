package render

import "math"

// Camera pins a target's world position to a fixed screen anchor. Apply
// wraps its result over the world extent, so the toroidal level scrolls
// without seams instead of ending at the map edges.
type Camera struct {
	AnchorX, AnchorY float64 // screen point the target is drawn at
	DX, DY           float64
	WorldW, WorldH   float64 // wrap extent, in world units
}

// NewCamera creates a camera whose anchor is the middle of a screenW x screenH
// view over a world of worldW x worldH units.
func NewCamera(screenW, screenH int, worldW, worldH float64) *Camera {
	return &Camera{
		AnchorX: float64(screenW / 2),
		AnchorY: float64(screenH / 2),
		WorldW:  worldW,
		WorldH:  worldH,
	}
}

// Update recomputes the offset so that (tx, ty) lands on the anchor.
func (c *Camera) Update(tx, ty float64) {
	c.DX = c.AnchorX - tx
	c.DY = c.AnchorY - ty
}

// Apply converts a world position to a screen position. The result is
// wrapped into the extent-sized window centered on the anchor, which keeps
// the target exactly on the anchor and lays the world out around it.
func (c *Camera) Apply(wx, wy float64) (sx, sy float64) {
	return wrapAround(wx+c.DX, c.AnchorX, c.WorldW), wrapAround(wy+c.DY, c.AnchorY, c.WorldH)
}

// Visible reports whether a size x size sprite drawn at (sx, sy) overlaps
// a screenW x screenH view.
func (c *Camera) Visible(sx, sy, size float64, screenW, screenH int) bool {
	return sx+size > 0 && sy+size > 0 && sx < float64(screenW) && sy < float64(screenH)
}

func wrapAround(v, anchor, extent float64) float64 {
	if extent <= 0 {
		return v
	}
	lo := anchor - extent/2
	r := math.Mod(v-lo, extent)
	if r < 0 {
		r += extent
	}
	return lo + r
}
