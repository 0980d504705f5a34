package gamemap

import "testing"

func TestInBounds(t *testing.T) {
	m := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := m.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestWrap(t *testing.T) {
	m := New(3, 2)
	cases := []struct {
		name         string
		x, y         int
		wantX, wantY int
	}{
		{"inside", 1, 1, 1, 1},
		{"left edge", -1, 0, 2, 0},
		{"right edge", 3, 0, 0, 0},
		{"top edge", 0, -1, 0, 1},
		{"bottom edge", 0, 2, 0, 0},
		{"far negative", -7, -5, 2, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, y := m.Wrap(tc.x, tc.y)
			if x != tc.wantX || y != tc.wantY {
				t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", tc.x, tc.y, x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestIsWalkableWraps(t *testing.T) {
	m := New(5, 5)
	m.Set(4, 2, MakeWall())

	if m.IsWalkable(4, 2) {
		t.Error("wall tile should not be walkable")
	}
	// (-1, 2) wraps onto the wall at (4, 2).
	if m.IsWalkable(-1, 2) {
		t.Error("wrapped coordinate should hit the wall")
	}
	if !m.IsWall(-1, 7) {
		t.Error("IsWall(-1,7) should wrap to (4,2)")
	}
	if !m.IsWalkable(5, 2) {
		t.Error("(5,2) wraps to an empty tile")
	}
}

func TestAt(t *testing.T) {
	m := New(5, 5)
	if m.At(2, 3).Kind != TileEmpty {
		t.Fatal("expected TileEmpty at (2,3) before any Set")
	}
	m.Set(2, 3, MakeWall())
	if m.At(2, 3).Kind != TileWall {
		t.Fatal("Set should be reflected by subsequent At")
	}
}

func TestZeroSizedMapBlocksEverything(t *testing.T) {
	m := New(0, 0)
	if m.IsWalkable(0, 0) {
		t.Error("empty map must not be walkable")
	}
	if !m.IsWall(0, 0) {
		t.Error("empty map reads as wall")
	}
}

func TestTileKindString(t *testing.T) {
	if TileWall.String() != "wall" || TileEmpty.String() != "empty" {
		t.Fatalf("unexpected names %q %q", TileWall, TileEmpty)
	}
}
