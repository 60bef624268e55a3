package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/citywalk/internal/core"
	"github.com/vovakirdan/citywalk/internal/scene"
)

func TestRenderScreenShape(t *testing.T) {
	s := scene.New().RenderScene(scene.State{FrameIndex: 2, ScrollOffset: 7}, 60, 15)
	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 15 {
		t.Fatalf("got %d lines, expected 15", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 60 {
			t.Errorf("line %d width = %d, expected 60", i, w)
		}
	}
}

func TestRenderScreenKeepsGlyphs(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.SetCell(2, 0, core.Cell{Rune: '█', Fg: core.ColorNavy, Bg: core.ColorSlate})
	s.SetCell(0, 1, core.Cell{Rune: '▪', Fg: core.ColorBrightYellow, Bg: core.ColorSlate})

	out := RenderScreen(s)
	for _, want := range []string{"a", "b", "█", "▪"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q is missing %q", out, want)
		}
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if out := RenderScreen(core.NewScreen(0, 0)); out != "" {
		t.Errorf("empty screen rendered %q", out)
	}
}

func TestCellStyleDefaultIsPlain(t *testing.T) {
	style := cellStyle(colorPair{fg: core.ColorDefault, bg: core.ColorDefault})
	if got := style.Render("x"); got != "x" {
		t.Errorf("default style rendered %q, expected plain text", got)
	}
}
