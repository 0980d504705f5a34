package window

import (
	"testing"

	"torus-walker/internal/config"
	"torus-walker/internal/game"
	"torus-walker/internal/level"
	"torus-walker/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestKeyToAction(t *testing.T) {
	cases := []struct {
		name string
		key  ebiten.Key
		want game.Action
	}{
		{"up", ebiten.KeyArrowUp, game.ActionMoveN},
		{"down", ebiten.KeyArrowDown, game.ActionMoveS},
		{"right", ebiten.KeyArrowRight, game.ActionMoveE},
		{"left", ebiten.KeyArrowLeft, game.ActionMoveW},
		{"escape", ebiten.KeyEscape, game.ActionQuit},
		{"space", ebiten.KeySpace, game.ActionAdvance},
		{"letter", ebiten.KeyA, game.ActionAdvance},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := keyToAction(tc.key); got != tc.want {
				t.Fatalf("keyToAction(%v) = %v, want %v", tc.key, got, tc.want)
			}
		})
	}
}

func TestLayoutIsFixedScreenSize(t *testing.T) {
	cfg := config.Default()
	cfg.ScreenWidth, cfg.ScreenHeight = 640, 480
	grid, err := level.FromStrings("@.#")
	if err != nil {
		t.Fatal(err)
	}
	wld, err := world.Generate(grid, world.Options{TileSize: cfg.TileSize})
	if err != nil {
		t.Fatal(err)
	}
	w := New(game.New(cfg, wld), nil)

	for _, outside := range [][2]int{{0, 0}, {1920, 1080}} {
		gotW, gotH := w.Layout(outside[0], outside[1])
		if gotW != 640 || gotH != 480 {
			t.Fatalf("Layout(%d,%d) = %dx%d, want 640x480", outside[0], outside[1], gotW, gotH)
		}
	}
}
