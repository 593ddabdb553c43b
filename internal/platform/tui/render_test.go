package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.SetColored(0, 0, '@', core.ColorBrightGreen)
	s.SetColored(1, 0, '#', core.ColorGray)
	s.SetColored(2, 0, '#', core.ColorGray)
	s.DrawText(0, 1, "ok")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"@", "##", "ok"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
