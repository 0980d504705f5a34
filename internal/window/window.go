// Package window runs the game in a desktop window using ebiten.
package window

import (
	"image/color"

	"torus-walker/assets"
	"torus-walker/internal/game"
	"torus-walker/internal/gamemap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	introLeft       = 10
	introTop        = 50
	introLineHeight = 24
)

// Window adapts a game.Game to ebiten.Game.
type Window struct {
	game    *game.Game
	sprites *assets.Sprites

	wall, empty, player, background *ebiten.Image

	keys []ebiten.Key
}

// New wraps g. Sprites are uploaded on the first Draw.
func New(g *game.Game, s *assets.Sprites) *Window {
	return &Window{game: g, sprites: s}
}

// Run opens the window and blocks until the game terminates or the window
// is closed.
func Run(g *game.Game, s *assets.Sprites) error {
	cfg := g.Config()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetTPS(cfg.FPS)
	return ebiten.RunGame(New(g, s))
}

func (w *Window) Update() error {
	for _, a := range w.pollActions() {
		w.game.Handle(a)
	}
	if w.game.State() == game.StateTerminated {
		return ebiten.Termination
	}
	w.game.Tick()
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.ensureImages()
	switch w.game.State() {
	case game.StateIntro:
		w.drawIntro(screen)
	case game.StateRunning:
		w.drawWorld(screen)
	}
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	cfg := w.game.Config()
	return cfg.ScreenWidth, cfg.ScreenHeight
}

// pollActions collects this tick's key and mouse presses. Each key-down
// yields one action; held keys do not repeat.
func (w *Window) pollActions() []game.Action {
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	actions := make([]game.Action, 0, len(w.keys)+1)
	for _, k := range w.keys {
		actions = append(actions, keyToAction(k))
	}
	for _, b := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight, ebiten.MouseButtonMiddle} {
		if inpututil.IsMouseButtonJustPressed(b) {
			actions = append(actions, game.ActionAdvance)
			break
		}
	}
	return actions
}

// keyToAction maps an ebiten key to a game action.
func keyToAction(k ebiten.Key) game.Action {
	switch k {
	case ebiten.KeyArrowUp:
		return game.ActionMoveN
	case ebiten.KeyArrowDown:
		return game.ActionMoveS
	case ebiten.KeyArrowRight:
		return game.ActionMoveE
	case ebiten.KeyArrowLeft:
		return game.ActionMoveW
	case ebiten.KeyEscape:
		return game.ActionQuit
	}
	return game.ActionAdvance
}

func (w *Window) ensureImages() {
	if w.wall != nil {
		return
	}
	w.wall = ebiten.NewImageFromImage(w.sprites.Wall)
	w.empty = ebiten.NewImageFromImage(w.sprites.Empty)
	w.player = ebiten.NewImageFromImage(w.sprites.Player)
	w.background = ebiten.NewImageFromImage(w.sprites.Background)
}

func (w *Window) drawIntro(screen *ebiten.Image) {
	screen.DrawImage(w.background, &ebiten.DrawImageOptions{})
	y := introTop
	for _, line := range w.game.IntroLines() {
		y += introLineHeight
		text.Draw(screen, line, basicfont.Face7x13, introLeft, y, color.Black)
	}
}

func (w *Window) drawWorld(screen *ebiten.Image) {
	screen.Fill(color.Black)

	cfg := w.game.Config()
	cam := w.game.Camera()
	world := w.game.World()
	size := float64(world.TileSize)

	for _, t := range world.Tiles {
		sx, sy := cam.Apply(t.WorldX, t.WorldY)
		if !cam.Visible(sx, sy, size, cfg.ScreenWidth, cfg.ScreenHeight) {
			continue
		}
		img := w.empty
		if t.Kind == gamemap.TileWall {
			img = w.wall
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(sx, sy)
		screen.DrawImage(img, op)
	}

	if p := world.Player; p != nil {
		sx, sy := cam.Apply(p.WorldX, p.WorldY)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(sx, sy)
		screen.DrawImage(w.player, op)
	}
}
