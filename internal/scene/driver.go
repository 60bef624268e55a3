package scene

import "github.com/vovakirdan/citywalk/internal/core"

// Driver carries the loop state between ticks for a backend. Backends
// collect key presses into an InputFrame and call Step once per tick.
type Driver struct {
	state  State
	paused bool
	ticks  uint64
}

// NewDriver creates a driver at frame 0, offset 0.
func NewDriver() *Driver {
	return &Driver{}
}

// Step applies the input collected since the last tick and advances the
// walk unless paused. Quit is left to the backend.
func (d *Driver) Step(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		d.paused = !d.paused
	}
	if d.paused {
		return
	}
	d.state = d.state.Next()
	d.ticks++
}

// State returns the state to render.
func (d *Driver) State() State {
	return d.state
}

// Paused reports whether the walk is frozen.
func (d *Driver) Paused() bool {
	return d.paused
}

// Ticks returns how many times the walk has advanced.
func (d *Driver) Ticks() uint64 {
	return d.ticks
}
