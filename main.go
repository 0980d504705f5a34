package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"torus-walker/assets"
	"torus-walker/internal/config"
	"torus-walker/internal/game"
	"torus-walker/internal/level"
	"torus-walker/internal/render"
	"torus-walker/internal/window"
	"torus-walker/internal/world"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
)

const desc = `Walk a wrap-around tile world. Levels are plain text: '#' wall, '.' floor, '@' start.`

var cli struct {
	Level    string `short:"l" help:"Level file name, relative to the data dir. Asked for on the console when omitted."`
	Random   bool   `short:"r" help:"Play a randomly generated level instead of a file."`
	Seed     int64  `help:"Seed for --random (0 picks one from the clock)."`
	Width    int    `default:"40" help:"Width of a random level in tiles."`
	Height   int    `default:"30" help:"Height of a random level in tiles."`
	Frontend string `short:"f" enum:"window,terminal" default:"window" help:"Where to play: window or terminal."`
	Config   string `short:"c" help:"YAML config file."`
	DataDir  string `help:"Directory holding levels and images (overrides config)."`
	Theme    string `help:"Terminal glyph theme (overrides config)."`
	Debug    bool   `help:"Enable debug logging."`
}

func main() {
	kong.Parse(&cli, kong.Name("torus-walker"), kong.Description(desc))
	if cli.Debug {
		log.SetLevel(log.DebugLevel)
	}
	if err := run(); err != nil {
		log.Fatal("torus-walker", "err", err)
	}
}

func run() error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	if cli.DataDir != "" {
		cfg.DataDir = cli.DataDir
	}
	if cli.Theme != "" {
		cfg.Theme = cli.Theme
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	w, err := loadWorld(cfg)
	if err != nil {
		return err
	}

	g := game.New(cfg, w)
	switch cli.Frontend {
	case "terminal":
		return runTerminal(g)
	default:
		sprites, err := assets.Load(cfg)
		if err != nil {
			return err
		}
		return window.Run(g, sprites)
	}
}

func loadWorld(cfg *config.Config) (*world.World, error) {
	if cli.Random {
		seed := cli.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		w, err := game.RandomWorld(cfg, cli.Width, cli.Height, seed)
		if err != nil {
			return nil, err
		}
		log.Debug("level generated", "seed", seed, "width", w.Width(), "height", w.Height())
		return w, nil
	}

	name := cli.Level
	if name == "" {
		var err error
		name, err = promptLevel(os.Stdin, os.Stdout)
		if err != nil {
			return nil, err
		}
	}
	path, err := level.Resolve(cfg.DataDir, name)
	if err != nil {
		return nil, err
	}
	w, err := game.LoadWorld(cfg, path)
	if err != nil {
		return nil, err
	}
	log.Debug("level loaded", "path", path, "width", w.Width(), "height", w.Height())
	return w, nil
}

func runTerminal(g *game.Game) error {
	theme, err := render.LookupTheme(g.Config().Theme)
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g.RunTerminal(ctx, screen, theme)
	return nil
}

// promptLevel asks for a level file name on the console.
func promptLevel(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter level name (map1.txt, map2.txt, ...): ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read level name: %w", err)
	}
	name := strings.TrimSpace(line)
	if name == "" {
		return "", fmt.Errorf("%w: no level name given", level.ErrNotFound)
	}
	return name, nil
}
