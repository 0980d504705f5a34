package game

import (
	"torus-walker/internal/config"
	"torus-walker/internal/render"
	"torus-walker/internal/system"
	"torus-walker/internal/world"
)

// State tracks the main state machine.
type State uint8

const (
	StateIntro State = iota
	StateRunning
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateIntro:
		return "intro"
	case StateRunning:
		return "running"
	default:
		return "terminated"
	}
}

// Game is the top-level orchestrator. It owns the world and the camera;
// frontends feed it actions and draw what it exposes.
type Game struct {
	cfg    *config.Config
	world  *world.World
	camera *render.Camera
	state  State
	moves  int
}

// New creates a Game in the intro state.
func New(cfg *config.Config, w *world.World) *Game {
	pw, ph := w.PixelSize()
	g := &Game{
		cfg:    cfg,
		world:  w,
		camera: render.NewCamera(cfg.ScreenWidth, cfg.ScreenHeight, pw, ph),
		state:  StateIntro,
	}
	g.Tick()
	return g
}

// State returns the current state.
func (g *Game) State() State { return g.state }

// World returns the world being played.
func (g *Game) World() *world.World { return g.world }

// Camera returns the pixel-space camera used by the window frontend.
func (g *Game) Camera() *render.Camera { return g.camera }

// Config returns the session config.
func (g *Game) Config() *config.Config { return g.cfg }

// Moves returns the number of committed player steps.
func (g *Game) Moves() int { return g.moves }

// Handle applies one action. In the intro any key or click starts the
// game; while running only movement and quit have an effect.
func (g *Game) Handle(a Action) {
	if a == ActionNone || g.state == StateTerminated {
		return
	}
	if a == ActionQuit {
		g.state = StateTerminated
		return
	}

	switch g.state {
	case StateIntro:
		g.state = StateRunning
	case StateRunning:
		dir := actionToDirection(a)
		if system.TryMove(g.world, dir) == system.MoveOK {
			g.moves++
		}
	}
}

// Tick recomputes the camera from the player's world position.
func (g *Game) Tick() {
	if p := g.world.Player; p != nil {
		g.camera.Update(p.WorldX, p.WorldY)
	}
}

// IntroLines is the text shown on the splash screen.
func (g *Game) IntroLines() []string {
	return []string{
		g.cfg.Title,
		"",
		"The world wraps around at every edge.",
		"Use the arrow keys to walk.",
		"",
		"Press any key to start.",
	}
}
