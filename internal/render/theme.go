package render

import (
	"fmt"
	"sort"
)

// Theme holds the emoji glyphs used to draw a level in the terminal.
// Emoji carry their own colors, so each theme is just a glyph set.
type Theme struct {
	Wall   string
	Empty  string
	Player string
}

// Themes maps theme names to glyph sets.
var Themes = map[string]Theme{
	// Default: walled garden.
	"meadow": {
		Wall:   "🧱",
		Empty:  "🟩",
		Player: "🧙",
	},
	"frost": {
		Wall:   "🧊",
		Empty:  "⬜",
		Player: "🧙",
	},
	"cavern": {
		Wall:   "🪨",
		Empty:  "🟫",
		Player: "🧙",
	},
	// Plain ASCII for terminals without emoji fonts.
	"ascii": {
		Wall:   "#",
		Empty:  ".",
		Player: "@",
	},
}

// DefaultTheme is used when no theme is configured.
const DefaultTheme = "meadow"

// LookupTheme returns the named theme.
func LookupTheme(name string) (Theme, error) {
	if name == "" {
		name = DefaultTheme
	}
	t, ok := Themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (have %v)", name, ThemeNames())
	}
	return t, nil
}

// ThemeNames lists the available themes in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for n := range Themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
