package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"torus-walker/internal/level"
)

func TestPromptLevel(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "map1.txt\n", "map1.txt"},
		{"no trailing newline", "map2.txt", "map2.txt"},
		{"surrounding spaces", "  map3.txt \r\n", "map3.txt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := promptLevel(strings.NewReader(tc.input), &out)
			if err != nil {
				t.Fatalf("promptLevel: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
			if !strings.Contains(out.String(), "level name") {
				t.Fatalf("prompt not written: %q", out.String())
			}
		})
	}
}

func TestPromptLevelEmpty(t *testing.T) {
	_, err := promptLevel(strings.NewReader("\n"), &bytes.Buffer{})
	if !errors.Is(err, level.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
