// Package frames holds the walk cycle of the stick figure: a fixed, ordered
// catalog of ASCII poses that the scene steps through one per tick.
package frames

// Frame dimensions. Every pose in the catalog is exactly this size,
// right-padded with spaces.
const (
	Width  = 6
	Height = 4
)

// Frame is one pose of the walking figure, rows top to bottom.
// Frames are values; the catalog hands out copies.
type Frame [Height]string

// At returns the glyph at column x of row y, or a space outside the frame.
// Poses are ASCII, so columns are byte offsets.
func (f Frame) At(x, y int) rune {
	if y < 0 || y >= Height || x < 0 || x >= len(f[y]) {
		return ' '
	}
	return rune(f[y][x])
}

// String joins the rows with newlines.
func (f Frame) String() string {
	out := f[0]
	for _, row := range f[1:] {
		out += "\n" + row
	}
	return out
}

// walkCycle is one full step: right foot forward, legs together, left foot
// forward, and back again.
var walkCycle = [...]Frame{
	{ // standing, right foot forward
		`   O  `,
		`  /|\ `,
		`  / \ `,
		` /   \`,
	},
	{ // mid-step right
		`   O  `,
		`  /|\ `,
		`   |  `,
		`  / \ `,
	},
	{ // legs together
		`   O  `,
		`  /|\ `,
		`   |  `,
		`   |  `,
	},
	{ // mid-step left
		`   O  `,
		`  /|\ `,
		`   |  `,
		`  \ / `,
	},
	{ // left foot forward
		`   O  `,
		`  /|\ `,
		`  \ / `,
		` \   /`,
	},
	{ // mid-step back
		`   O  `,
		`  /|\ `,
		`   |  `,
		`  \ / `,
	},
	{ // legs together again
		`   O  `,
		`  /|\ `,
		`   |  `,
		`   |  `,
	},
	{ // mid-step right again
		`   O  `,
		`  /|\ `,
		`   |  `,
		`  / \ `,
	},
}

// Len returns the number of frames in the walk cycle.
func Len() int {
	return len(walkCycle)
}

// Get returns frame i. The index is reduced modulo Len, so any int is valid.
func Get(i int) Frame {
	n := len(walkCycle)
	i %= n
	if i < 0 {
		i += n
	}
	return walkCycle[i]
}
