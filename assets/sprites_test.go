package assets

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"torus-walker/internal/config"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 40, G: 160, B: 40, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func writeJPEG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h)), nil); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	writePNG(t, filepath.Join(cfg.DataDir, cfg.Assets.Wall), 50, 50)
	writePNG(t, filepath.Join(cfg.DataDir, cfg.Assets.Empty), 64, 64)
	writePNG(t, filepath.Join(cfg.DataDir, cfg.Assets.Player), 80, 100)
	writeJPEG(t, filepath.Join(cfg.DataDir, cfg.Assets.Background), 100, 60)
	return cfg
}

func size(img image.Image) (int, int) {
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestLoadScalesSprites(t *testing.T) {
	cfg := testConfig(t)
	s, err := Load(cfg)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cases := []struct {
		name  string
		img   image.Image
		wantW int
		wantH int
	}{
		{"wall kept", s.Wall, 50, 50},
		{"empty scaled to tile", s.Empty, 50, 50},
		{"oversized player shrunk", s.Player, 40, 40},
		{"background fills screen", s.Background, 550, 550},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, h := size(tc.img)
			if w != tc.wantW || h != tc.wantH {
				t.Fatalf("size = %dx%d, want %dx%d", w, h, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestLoadMissingAsset(t *testing.T) {
	cfg := testConfig(t)
	if err := os.Remove(filepath.Join(cfg.DataDir, cfg.Assets.Player)); err != nil {
		t.Fatal(err)
	}
	_, err := Load(cfg)
	if err == nil {
		t.Fatal("expected an error for a missing player sprite")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLoadImageRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadImage(path); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFitPlayerKeepsSmallSprite(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 30, 45))
	if got := FitPlayer(img, 50); got != image.Image(img) {
		t.Fatal("sprite that fits should be returned unchanged")
	}
}
