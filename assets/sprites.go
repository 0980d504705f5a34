// Package assets loads the images drawn by the window frontend.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	"torus-walker/internal/config"

	"github.com/nfnt/resize"
)

// playerMargin is how much smaller than a tile an oversized player sprite
// is scaled to.
const playerMargin = 10

// ErrNotFound is returned when an image file is missing.
var ErrNotFound = errors.New("image asset not found")

// Sprites are the decoded and scaled images for one session.
type Sprites struct {
	Wall       image.Image
	Empty      image.Image
	Player     image.Image
	Background image.Image
}

// Load reads every configured image from cfg.DataDir and scales it for
// cfg's tile and screen sizes.
func Load(cfg *config.Config) (*Sprites, error) {
	dir, err := cfg.ExpandedDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	load := func(name string) (image.Image, error) {
		return LoadImage(filepath.Join(dir, name))
	}

	wall, err := load(cfg.Assets.Wall)
	if err != nil {
		return nil, err
	}
	empty, err := load(cfg.Assets.Empty)
	if err != nil {
		return nil, err
	}
	player, err := load(cfg.Assets.Player)
	if err != nil {
		return nil, err
	}
	bg, err := load(cfg.Assets.Background)
	if err != nil {
		return nil, err
	}

	return &Sprites{
		Wall:       FitTile(wall, cfg.TileSize),
		Empty:      FitTile(empty, cfg.TileSize),
		Player:     FitPlayer(player, cfg.TileSize),
		Background: resize.Resize(uint(cfg.ScreenWidth), uint(cfg.ScreenHeight), bg, resize.Lanczos3),
	}, nil
}

// LoadImage decodes a PNG or JPEG file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

// FitTile scales img to exactly tileSize x tileSize, if it isn't already.
func FitTile(img image.Image, tileSize int) image.Image {
	b := img.Bounds()
	if b.Dx() == tileSize && b.Dy() == tileSize {
		return img
	}
	return resize.Resize(uint(tileSize), uint(tileSize), img, resize.Lanczos3)
}

// FitPlayer shrinks a player sprite that does not fit inside a tile to a
// square slightly smaller than the tile. Sprites that fit are kept as is.
func FitPlayer(img image.Image, tileSize int) image.Image {
	b := img.Bounds()
	if b.Dx() <= tileSize && b.Dy() <= tileSize {
		return img
	}
	side := tileSize - playerMargin
	if side < 1 {
		side = 1
	}
	return resize.Resize(uint(side), uint(side), img, resize.Lanczos3)
}
