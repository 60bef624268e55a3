package scene

import "github.com/vovakirdan/citywalk/internal/frames"

// State is the per-tick input to rendering. It is owned by the tick driver
// and passed by value; the compositor never keeps it.
type State struct {
	FrameIndex   int  // Index into the walk cycle, in [0, frames.Len())
	ScrollOffset uint // Columns the skyline has scrolled; wraps at the uint width
}

// AdvanceFrame returns (i + 1) mod n, always in [0, n). A non-positive n
// yields 0.
func AdvanceFrame(i, n int) int {
	if n <= 0 {
		return 0
	}
	next := (i + 1) % n
	if next < 0 {
		next += n
	}
	return next
}

// AdvanceScroll returns o + 1, wrapping at the native uint width.
func AdvanceScroll(o uint) uint {
	return o + 1
}

// Next returns the state for the following tick.
func (s State) Next() State {
	return State{
		FrameIndex:   AdvanceFrame(s.FrameIndex, frames.Len()),
		ScrollOffset: AdvanceScroll(s.ScrollOffset),
	}
}
