package core

import (
	"fmt"
	"strings"
)

// Color represents the foreground or background color of a screen cell.
// Values map onto ANSI 256-color codes in the platform layer.
type Color uint8

// Predefined colors for scene elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorNavy
	ColorSlate
	ColorBrown
	colorCount // Sentinel value for iteration
)

var colorNames = [...]string{
	ColorDefault:       "default",
	ColorBlack:         "black",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "bright-red",
	ColorBrightGreen:   "bright-green",
	ColorBrightYellow:  "bright-yellow",
	ColorBrightBlue:    "bright-blue",
	ColorBrightMagenta: "bright-magenta",
	ColorBrightCyan:    "bright-cyan",
	ColorBrightWhite:   "bright-white",
	ColorOrange:        "orange",
	ColorGray:          "gray",
	ColorDarkGray:      "dark-gray",
	ColorNavy:          "navy",
	ColorSlate:         "slate",
	ColorBrown:         "brown",
}

// ansiCodes holds the 256-color palette index for each color.
// ColorDefault has no code and means "terminal default".
var ansiCodes = [...]int{
	ColorDefault:       -1,
	ColorBlack:         0,
	ColorRed:           1,
	ColorGreen:         2,
	ColorYellow:        3,
	ColorBlue:          4,
	ColorMagenta:       5,
	ColorCyan:          6,
	ColorWhite:         7,
	ColorBrightRed:     9,
	ColorBrightGreen:   10,
	ColorBrightYellow:  11,
	ColorBrightBlue:    12,
	ColorBrightMagenta: 13,
	ColorBrightCyan:    14,
	ColorBrightWhite:   15,
	ColorOrange:        208,
	ColorGray:          245,
	ColorDarkGray:      238,
	ColorNavy:          17,
	ColorSlate:         60,
	ColorBrown:         94,
}

// String returns the config name of the color.
func (c Color) String() string {
	if c >= colorCount {
		return "unknown"
	}
	return colorNames[c]
}

// ANSI returns the 256-color palette index, or -1 for the terminal default.
func (c Color) ANSI() int {
	if c >= colorCount {
		return -1
	}
	return ansiCodes[c]
}

// ParseColor converts a config name ("navy", "bright-green", ...) to a Color.
// Matching is case-insensitive and accepts underscores in place of dashes.
func ParseColor(s string) (Color, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	all := AllColors()
	for _, c := range all {
		if colorNames[c] == name {
			return c, nil
		}
	}

	valid := make([]string, len(all))
	for i, c := range all {
		valid[i] = c.String()
	}
	return ColorDefault, fmt.Errorf("core: unknown color %q (expected one of %s)", s, strings.Join(valid, ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so colors can be
// written by name in YAML config files.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// AllColors returns every named color in declaration order.
func AllColors() []Color {
	out := make([]Color, 0, colorCount)
	for c := ColorDefault; c < colorCount; c++ {
		out = append(out, c)
	}
	return out
}
