package skyline

import (
	"fmt"
	"strings"
)

// Skyline is an immutable, validated repeat unit of buildings.
type Skyline struct {
	buildings    []Building
	patternWidth int
}

// New validates the building list and computes the pattern width.
func New(buildings []Building) (*Skyline, error) {
	if len(buildings) == 0 {
		return nil, ErrNoBuildings
	}

	s := &Skyline{buildings: make([]Building, len(buildings))}
	for i, b := range buildings {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("skyline: building %d: %w", i, err)
		}
		s.buildings[i] = b
		s.patternWidth += b.Width + Gap
	}
	return s, nil
}

var defaultSkyline = mustNew(DefaultBuildings())

func mustNew(buildings []Building) *Skyline {
	s, err := New(buildings)
	if err != nil {
		panic(err)
	}
	return s
}

// Default returns the skyline built from DefaultBuildings.
func Default() *Skyline {
	return defaultSkyline
}

// PatternWidth returns the width of one repeat unit including gaps.
func (s *Skyline) PatternWidth() int {
	return s.patternWidth
}

// Buildings returns a copy of the building list.
func (s *Skyline) Buildings() []Building {
	out := make([]Building, len(s.buildings))
	copy(out, s.buildings)
	return out
}

// Render draws the window of the pattern seen at the given scroll offset.
// The result has skyHeight rows of width runes; buildings stand on the
// bottom row and are clipped from the top when taller than skyHeight.
//
// Each pattern column is drawn at most once per call, so a screen wider than
// PatternWidth shows open sky to the right of the last building rather than
// a second copy of the pattern.
func (s *Skyline) Render(width, skyHeight int, offset uint) Grid {
	if width <= 0 || skyHeight <= 0 {
		return nil
	}

	grid := newGrid(width, skyHeight)
	pw := uint(s.patternWidth)
	shift := offset % pw

	colInPattern := 0
	for _, b := range s.buildings {
		h := min(b.Height, skyHeight)

		for localCol := 0; localCol < b.Width; localCol++ {
			patCol := uint(colInPattern + localCol)
			// shift < pw, so adding pw first keeps the subtraction non-negative.
			screenCol := (patCol + pw - shift) % pw
			if screenCol >= uint(width) {
				continue
			}

			for rowFromBottom := 0; rowFromBottom < h; rowFromBottom++ {
				row := skyHeight - 1 - rowFromBottom
				grid[row][screenCol] = glyphFor(b, localCol, rowFromBottom, h)
			}
		}
		colInPattern += b.Width + Gap
	}

	return grid
}

// Grid is a rectangular block of runes, rows top to bottom.
type Grid [][]rune

func newGrid(width, height int) Grid {
	g := make(Grid, height)
	for y := range g {
		row := make([]rune, width)
		for x := range row {
			row[x] = GlyphSky
		}
		g[y] = row
	}
	return g
}

// Width returns the number of columns.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// At returns the rune at (x, y), or the sky glyph outside the grid.
func (g Grid) At(x, y int) rune {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		return GlyphSky
	}
	return g[y][x]
}

// Rows returns every row as a string.
func (g Grid) Rows() []string {
	out := make([]string, len(g))
	for y, row := range g {
		out[y] = string(row)
	}
	return out
}

// String joins the rows with newlines.
func (g Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// Equal reports whether both grids hold the same runes.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for y := range g {
		if string(g[y]) != string(other[y]) {
			return false
		}
	}
	return true
}
