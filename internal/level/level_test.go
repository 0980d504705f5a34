package level

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePadsShortRows(t *testing.T) {
	g, err := Parse(strings.NewReader("#####\n#@\n#..#\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 5, g.Width())
	for y, row := range g {
		assert.Len(t, row, 5, "row %d", y)
	}
	assert.Equal(t, "#####\n#@...\n#..#.", g.String())
}

func TestParseStripsTrailingWhitespace(t *testing.T) {
	g, err := Parse(strings.NewReader("#@  \t\r\n###\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, "#@.\n###", g.String())
}

func TestParseRectangularMapUnchanged(t *testing.T) {
	g, err := FromStrings("###", "#@#", "###")
	require.NoError(t, err)
	assert.Equal(t, "###\n#@#\n###", g.String())
}

func TestParseKeepsInteriorBlankLines(t *testing.T) {
	g, err := Parse(strings.NewReader("#.#\n\n@"))
	require.NoError(t, err)

	require.Equal(t, 3, g.Height())
	assert.Equal(t, "...", string(g[1]))
	assert.Equal(t, "@..", string(g[2]))
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map1.txt")
	require.NoError(t, os.WriteFile(path, []byte("..#\n.@\n"), 0o644))

	g, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "..#\n.@.", g.String())
}

func TestSetAndAt(t *testing.T) {
	g, err := FromStrings("@..")
	require.NoError(t, err)

	g.Set(0, 0, Empty)
	assert.Equal(t, Empty, g.At(0, 0))
}

func TestResolve(t *testing.T) {
	cases := []struct {
		name string
		dir  string
		in   string
		want string
	}{
		{"relative name joins data dir", "data", "map1.txt", filepath.Join("data", "map1.txt")},
		{"surrounding spaces trimmed", "data", "  map2.txt\n", filepath.Join("data", "map2.txt")},
		{"absolute path kept", "data", "/tmp/levels/x.txt", "/tmp/levels/x.txt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Resolve(tc.dir, tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveEmptyName(t *testing.T) {
	_, err := Resolve("data", "   ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := FromStrings("#@.")
	require.NoError(t, err)

	c := g.Clone()
	c.Set(1, 0, Empty)
	assert.Equal(t, Spawn, g.At(1, 0))
	assert.Equal(t, "#..", c.String())
}
