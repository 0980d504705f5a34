package render

import (
	"fmt"

	"torus-walker/internal/gamemap"
	"torus-walker/internal/world"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	// cellCols is the terminal width of one map tile; emoji are two columns.
	cellCols = 2
	hudRows  = 1
)

// Renderer draws the world onto a tcell screen, one tile per glyph.
type Renderer struct {
	screen tcell.Screen
	theme  Theme
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, theme Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Camera returns the camera used for the last frame, or nil before the
// first DrawFrame.
func (r *Renderer) Camera() *Camera { return r.camera }

// ViewSize returns the map viewport in tiles.
func (r *Renderer) ViewSize() (int, int) {
	w, h := r.screen.Size()
	viewH := h - hudRows
	if viewH < 1 {
		viewH = 1
	}
	return w / cellCols, viewH
}

// DrawFrame renders the tiles, the player and the status line. The camera
// works in tile units here: one world unit is one tile.
func (r *Renderer) DrawFrame(w *world.World) {
	r.screen.Clear()
	viewW, viewH := r.ViewSize()
	if r.camera == nil || r.camera.WorldW != float64(w.Width()) || r.camera.WorldH != float64(w.Height()) ||
		r.camera.AnchorX != float64(viewW/2) || r.camera.AnchorY != float64(viewH/2) {
		r.camera = NewCamera(viewW, viewH, float64(w.Width()), float64(w.Height()))
	}
	if w.Player != nil {
		r.camera.Update(float64(w.Player.PosX), float64(w.Player.PosY))
	}

	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	for _, tile := range w.Tiles {
		sx, sy := r.camera.Apply(float64(tile.X), float64(tile.Y))
		if !r.camera.Visible(sx, sy, 1, viewW, viewH) {
			continue
		}
		glyph := r.theme.Empty
		if tile.Kind == gamemap.TileWall {
			glyph = r.theme.Wall
		}
		r.putGlyph(int(sx)*cellCols, int(sy), glyph, style)
	}

	if p := w.Player; p != nil {
		sx, sy := r.camera.Apply(float64(p.PosX), float64(p.PosY))
		r.putGlyph(int(sx)*cellCols, int(sy), r.theme.Player, style.Foreground(tcell.ColorYellow))
		r.drawStatus(fmt.Sprintf("(%d,%d)  %dx%d  arrows/hjkl move  esc quits", p.PosX, p.PosY, w.Width(), w.Height()))
	}
	r.screen.Show()
}

// DrawIntro renders the splash screen: lines stacked from the top-left.
func (r *Renderer) DrawIntro(lines []string) {
	r.screen.Clear()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	y := 2
	for _, line := range lines {
		r.drawText(2, y, line, style)
		y++
	}
	r.screen.Show()
}

func (r *Renderer) drawStatus(text string) {
	_, h := r.screen.Size()
	r.drawText(0, h-1, text, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) < cellCols {
		// Pad narrow glyphs so every tile spans the same columns.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
