// torus-walker-server serves the game over SSH. Every connection plays its
// own copy of the level. Build:
//
//	go build -o torus-walker-server ./cmd/server
//
// Usage:
//
//	./torus-walker-server --level data/map1.txt [--port 2222] [--key server_host_key]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"
	"unicode"
	"unicode/utf8"

	"torus-walker/internal/config"
	"torus-walker/internal/game"
	"torus-walker/internal/level"
	"torus-walker/internal/render"
	internalssh "torus-walker/internal/ssh"
	"torus-walker/internal/world"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

const desc = `Serves torus-walker to SSH clients; each session walks its own copy of the level.`

var cli struct {
	Level  string `short:"l" required:"" help:"Level file played by every session."`
	Port   int    `default:"2222" help:"SSH server port."`
	Key    string `default:"server_host_key" help:"Path to the PEM-encoded host key (generated if absent)."`
	Config string `short:"c" help:"YAML config file."`
	Theme  string `help:"Terminal glyph theme (overrides config)."`
	Debug  bool   `help:"Enable debug logging."`
}

// maxNameBytes caps user names in log lines.
const maxNameBytes = 16

// allowedTerms are the TERM values accepted from clients. Anything else
// falls back to defaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

const defaultTerm = "xterm-256color"

func main() {
	kong.Parse(&cli, kong.Name("torus-walker-server"), kong.Description(desc))
	if cli.Debug {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		log.Fatal("load config", "err", err)
	}
	if cli.Theme != "" {
		cfg.Theme = cli.Theme
	}
	theme, err := render.LookupTheme(cfg.Theme)
	if err != nil {
		log.Fatal("select theme", "err", err)
	}

	// Load and validate once so a bad level fails at startup, not per session.
	grid, err := level.Load(cli.Level)
	if err != nil {
		log.Fatal("load level", "err", err)
	}
	opts := world.Options{TileSize: cfg.TileSize, PlayerOffsetX: cfg.PlayerOffsetX, PlayerOffsetY: cfg.PlayerOffsetY}
	if _, err := world.Generate(grid.Clone(), opts); err != nil {
		log.Fatal("generate level", "level", cli.Level, "err", err)
	}

	h := &handler{cfg: cfg, theme: theme, grid: grid, opts: opts}
	srv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", cli.Port),
		Handler:     h.handleSession,
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{loadOrCreateHostKey(cli.Key)},
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	log.Info("listening", "port", cli.Port, "level", cli.Level, "size", fmt.Sprintf("%dx%d", grid.Width(), grid.Height()))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
			log.Error("serve", "err", err)
			done <- nil
		}
	}()

	<-done
	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		log.Error("shutdown", "err", err)
	}
}

// handler starts one independent game per SSH session.
type handler struct {
	cfg   *config.Config
	theme render.Theme
	grid  level.Grid
	opts  world.Options
}

// handleSession blocks for the duration of the connection.
func (h *handler) handleSession(s gossh.Session) {
	name := sanitizeName(s.User())
	logger := log.With("user", name, "remote", s.RemoteAddr().String())

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p <port> <host>")
		return
	}

	w, err := world.Generate(h.grid.Clone(), h.opts)
	if err != nil {
		logger.Error("generate level", "err", err)
		fmt.Fprintf(s, "Level setup failed: %v\n", err)
		return
	}

	term := pty.Term
	if !allowedTerms[term] {
		logger.Debug("unsupported TERM, using default", "term", term, "default", defaultTerm)
		term = defaultTerm
	}

	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	logger.Info("session started")
	g := game.New(h.cfg, w)
	g.RunTerminal(s.Context(), screen, h.theme)
	screen.Fini()
	logger.Info("session ended", "moves", g.Moves())
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// sanitizeName strips control characters and truncates to maxNameBytes
// without splitting a rune.
func sanitizeName(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if sb.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info("loaded host key", "path", path)
			return signer
		}
	}

	log.Info("generating new ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatal("generate host key", "err", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatal("create signer", "err", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "torus-walker server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
			log.Warn("could not save host key", "path", path, "err", err)
		}
	}
	return signer
}
