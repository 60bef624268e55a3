package tcellterm

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/citywalk/internal/core"
)

// Color converts a core color to a tcell palette color.
func Color(c core.Color) tcell.Color {
	n := c.ANSI()
	if n < 0 {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(n)
}

// Style returns the tcell style for a cell.
func Style(c core.Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(Color(c.Fg)).
		Background(Color(c.Bg))
}

// MapKey translates a tcell key event to an action.
func MapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return core.ActionQuit
		case 'p', ' ':
			return core.ActionPause
		}
	}
	return core.ActionNone
}
