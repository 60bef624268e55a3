package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/citywalk/internal/core"
)

// colorPair is the style key of a run of cells.
type colorPair struct {
	fg, bg core.Color
}

// cellStyle returns the lipgloss style for a foreground/background pair.
// ColorDefault leaves the terminal's own color in place.
func cellStyle(p colorPair) lipgloss.Style {
	style := lipgloss.NewStyle()
	if p.fg != core.ColorDefault {
		style = style.Foreground(lipgloss.Color(strconv.Itoa(p.fg.ANSI())))
	}
	if p.bg != core.ColorDefault {
		style = style.Background(lipgloss.Color(strconv.Itoa(p.bg.ANSI())))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(map[colorPair]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			pair := colorPair{fg: cell.Fg, bg: cell.Bg}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != pair.fg || cell.Bg != pair.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[pair]
			if !ok {
				style = cellStyle(pair)
				styles[pair] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
