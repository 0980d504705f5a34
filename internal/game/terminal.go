package game

import (
	"context"
	"time"

	"torus-walker/internal/render"

	"github.com/gdamore/tcell/v2"
)

// RunTerminal drives the game on screen until the player quits, the event
// stream ends or ctx is done. Input is handled as it arrives; the frame is
// redrawn at the configured rate. The caller owns screen and must Fini it,
// which also stops the event reader.
func (g *Game) RunTerminal(ctx context.Context, screen tcell.Screen, theme render.Theme) {
	screen.EnableMouse()
	r := render.NewRenderer(screen, theme)

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.FPS))
	defer ticker.Stop()

	g.drawTerminal(r)
	for g.state != StateTerminated {
		select {
		case <-ctx.Done():
			g.state = StateTerminated
		case ev, ok := <-events:
			if !ok {
				g.state = StateTerminated
				break
			}
			g.handleTerminalEvent(screen, ev)
		case <-ticker.C:
			g.Tick()
			g.drawTerminal(r)
		}
	}
}

func (g *Game) handleTerminalEvent(screen tcell.Screen, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		screen.Sync()
	case *tcell.EventKey:
		g.Handle(keyToAction(ev))
	case *tcell.EventMouse:
		g.Handle(mouseToAction(ev))
	}
}

func (g *Game) drawTerminal(r *render.Renderer) {
	switch g.state {
	case StateIntro:
		r.DrawIntro(g.IntroLines())
	case StateRunning:
		r.DrawFrame(g.world)
	}
}
