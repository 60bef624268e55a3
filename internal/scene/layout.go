package scene

import (
	"github.com/vovakirdan/citywalk/internal/core"
	"github.com/vovakirdan/citywalk/internal/frames"
)

// Screen size limits and fixed row counts.
const (
	MinWidth   = 20
	MinHeight  = 4
	GroundRows = 2
	HelpRows   = 1
)

// Layout splits the screen into the regions the compositor paints.
//
//	+------------------------+
//	| sky                    |
//	|        +--------+      |
//	|        | figure |      |  figure band overlaps the bottom of the sky
//	+--------+--------+------+
//	| ground (2 rows)        |
//	+------------------------+
//	| help (1 row)           |
//	+------------------------+
type Layout struct {
	Sky    core.Rect
	Figure core.Rect
	Ground core.Rect
	Help   core.Rect
}

// ComputeLayout returns the layout for a w×h screen. ok is false when the
// screen is below MinWidth×MinHeight and nothing should be drawn.
func ComputeLayout(w, h int) (layout Layout, ok bool) {
	if w < MinWidth || h < MinHeight {
		return Layout{}, false
	}

	groundY := h - GroundRows - HelpRows
	layout.Sky = core.NewRect(0, 0, w, groundY)
	layout.Ground = core.NewRect(0, groundY, w, GroundRows)
	layout.Help = core.NewRect(0, h-HelpRows, w, HelpRows)
	layout.Figure = core.NewRect(FigureX(w), groundY-frames.Height, frames.Width, frames.Height)
	return layout, true
}

// FigureX returns the leftmost column of a figure centered in width w,
// kept on screen whenever the figure fits.
func FigureX(w int) int {
	return core.Clamp(w/2-frames.Width/2, 0, w-frames.Width)
}

// Resize resizes dst to w×h. Content survives while a scene still fits;
// below MinWidth×MinHeight dst is blanked so no clipped copy of the last
// frame lingers.
func Resize(dst *core.Screen, w, h int) {
	dst.Resize(w, h)
	if _, ok := ComputeLayout(w, h); !ok {
		dst.Clear()
	}
}
