package core

import "time"

// RuntimeConfig contains the terminal and timing parameters a backend runs with.
type RuntimeConfig struct {
	ScreenW int           // Screen width in characters
	ScreenH int           // Screen height in characters
	Tick    time.Duration // Interval between frame/scroll advances
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Tick:    200 * time.Millisecond,
	}
}

// TickInterval returns the configured tick, falling back to the default
// when the value is not positive.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.Tick <= 0 {
		return DefaultConfig().Tick
	}
	return c.Tick
}
