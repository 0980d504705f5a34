// Package level reads ASCII level maps into rectangular character grids.
package level

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/mitchellh/go-homedir"
)

// Map characters.
const (
	Empty = '.'
	Wall  = '#'
	Spawn = '@'

	// Filler pads short rows; it reads as empty space.
	Filler = Empty
)

var (
	// ErrNotFound is returned when the level file does not exist or cannot be read.
	ErrNotFound = errors.New("level file not found")
	// ErrEmpty is returned for a map with no lines at all.
	ErrEmpty = errors.New("level map is empty")
)

// Grid is a rectangular level map indexed as Grid[y][x].
type Grid [][]rune

// Width returns the number of columns.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows.
func (g Grid) Height() int { return len(g) }

// At returns the character at (x, y).
func (g Grid) At(x, y int) rune { return g[y][x] }

// Set overwrites the character at (x, y).
func (g Grid) Set(x, y int, c rune) { g[y][x] = c }

// Clone returns a deep copy, so a generated world can rewrite its spawn
// cell without touching the original.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for y, row := range g {
		c[y] = append([]rune(nil), row...)
	}
	return c
}

// String renders the grid one row per line.
func (g Grid) String() string {
	var sb strings.Builder
	for i, row := range g {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}

// Load reads the map at path. Trailing whitespace is stripped from every
// line and short lines are right-padded with Filler to the longest line.
func Load(path string) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open level %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	return g, nil
}

// Parse reads a map from r. See Load.
func Parse(r io.Reader) (Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)

	var lines [][]rune
	maxWidth := 0
	for sc.Scan() {
		line := []rune(strings.TrimRightFunc(sc.Text(), unicode.IsSpace))
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmpty
	}

	grid := make(Grid, len(lines))
	for y, line := range lines {
		row := make([]rune, maxWidth)
		copy(row, line)
		for x := len(line); x < maxWidth; x++ {
			row[x] = Filler
		}
		grid[y] = row
	}
	return grid, nil
}

// FromStrings builds a padded grid from in-memory rows.
func FromStrings(rows ...string) (Grid, error) {
	return Parse(strings.NewReader(strings.Join(rows, "\n")))
}

// Resolve turns a level name typed by the user into a file path. Absolute
// paths and paths starting with ~ are used as given; anything else is
// looked up in dir.
func Resolve(dir, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: no level name given", ErrNotFound)
	}
	expanded, err := homedir.Expand(name)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", name, err)
	}
	if filepath.IsAbs(expanded) {
		return expanded, nil
	}
	base, err := homedir.Expand(dir)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", dir, err)
	}
	return filepath.Join(base, expanded), nil
}
