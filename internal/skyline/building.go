// Package skyline generates the scrolling city backdrop.
//
// A fixed list of buildings, each followed by a two-column gap, forms one
// repeat unit of an infinite horizontal pattern. Render draws the window of
// that pattern selected by a scroll offset into a rune grid.
package skyline

import (
	"errors"
	"fmt"
)

// Gap is the number of empty columns after every building.
const Gap = 2

// Style selects how a building's body is textured.
type Style int

const (
	StylePlain Style = iota
	StyleWindowed
	StyleTower
)

// String returns the name of the style.
func (s Style) String() string {
	switch s {
	case StylePlain:
		return "plain"
	case StyleWindowed:
		return "windowed"
	case StyleTower:
		return "tower"
	default:
		return "unknown"
	}
}

// Building describes one block of the skyline in columns and rows.
type Building struct {
	Width  int
	Height int
	Style  Style
}

// Validate checks that the building can be drawn.
func (b Building) Validate() error {
	if b.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", b.Width)
	}
	if b.Height <= 0 {
		return fmt.Errorf("height must be positive, got %d", b.Height)
	}
	switch b.Style {
	case StylePlain, StyleWindowed, StyleTower:
		return nil
	default:
		return fmt.Errorf("unknown style %d", int(b.Style))
	}
}

// ErrNoBuildings is returned by New for an empty building list.
var ErrNoBuildings = errors.New("skyline: no buildings")

// cityBlock is the repeat unit of the default skyline.
var cityBlock = [...]Building{
	{Width: 8, Height: 6, Style: StyleWindowed},
	{Width: 4, Height: 3, Style: StylePlain},
	{Width: 6, Height: 9, Style: StyleTower},
	{Width: 10, Height: 5, Style: StyleWindowed},
	{Width: 3, Height: 2, Style: StylePlain},
	{Width: 7, Height: 7, Style: StyleWindowed},
	{Width: 5, Height: 4, Style: StylePlain},
	{Width: 9, Height: 10, Style: StyleTower},
	{Width: 6, Height: 3, Style: StylePlain},
	{Width: 8, Height: 6, Style: StyleWindowed},
	{Width: 4, Height: 8, Style: StyleTower},
	{Width: 7, Height: 4, Style: StylePlain},
	{Width: 5, Height: 5, Style: StyleWindowed},
	{Width: 11, Height: 7, Style: StyleTower},
	{Width: 6, Height: 3, Style: StylePlain},
	{Width: 8, Height: 5, Style: StyleWindowed},
}

// DefaultBuildings returns a copy of the built-in city block.
func DefaultBuildings() []Building {
	out := make([]Building, len(cityBlock))
	copy(out, cityBlock[:])
	return out
}
