// Package tcellterm runs the city walk directly on a tcell screen. It is the
// lower-level alternative to the Bubble Tea backend: a ticker and an event
// goroutine feed one select loop, and every cell is written with SetContent.
package tcellterm

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/citywalk/internal/core"
	"github.com/vovakirdan/citywalk/internal/registry"
	"github.com/vovakirdan/citywalk/internal/scene"
)

// eventBuffer is the capacity of the channel between PollEvent and the loop.
const eventBuffer = 64

// Runner draws the animation on an initialized tcell screen. The caller
// owns the screen and must call Fini after Run returns.
type Runner struct {
	screen     tcell.Screen
	compositor *scene.Compositor
	driver     *scene.Driver
	buf        *core.Screen
	interval   time.Duration
	logger     *log.Logger
}

// NewRunner creates a runner for screen.
func NewRunner(screen tcell.Screen, opts registry.Options) *Runner {
	compositor := opts.Scene
	if compositor == nil {
		compositor = scene.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w, h := screen.Size()
	return &Runner{
		screen:     screen,
		compositor: compositor,
		driver:     scene.NewDriver(),
		buf:        core.NewScreen(w, h),
		interval:   opts.Runtime.TickInterval(),
		logger:     logger,
	}
}

// Run draws the first frame and loops until quit or ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, eventBuffer)
	go r.pollEvents(events, done)

	input := core.NewInputFrame()
	r.draw()

	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("stopped by context", "err", ctx.Err())
			return nil

		case ev := <-events:
			if r.handleEvent(ev, &input) {
				return nil
			}

		case <-ticker.C:
			r.step(input)
			input.Clear()
			r.draw()
		}
	}
}

// pollEvents forwards terminal events until the screen is finalized
// (PollEvent returns nil) or the loop has exited.
func (r *Runner) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent applies one terminal event. It returns true when the user
// asked to quit.
func (r *Runner) handleEvent(ev tcell.Event, input *core.InputFrame) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch action := MapKey(ev); action {
		case core.ActionQuit:
			r.logger.Debug("quit requested", "key", ev.Name())
			return true
		case core.ActionNone:
		default:
			input.Set(action)
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		r.logger.Debug("resize", "width", w, "height", h)
		r.screen.Sync()
		r.draw()
	}
	return false
}

// step advances the animation by one tick.
func (r *Runner) step(input core.InputFrame) {
	wasPaused := r.driver.Paused()
	r.driver.Step(input)
	if r.driver.Paused() != wasPaused {
		r.logger.Debug("pause toggled", "paused", r.driver.Paused(), "ticks", r.driver.Ticks())
	}
}

// draw composes the current state and copies it to the terminal.
func (r *Runner) draw() {
	w, h := r.screen.Size()
	if w != r.buf.Width() || h != r.buf.Height() {
		scene.Resize(r.buf, w, h)
	}
	r.compositor.Render(r.buf, r.driver.State())

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := r.buf.GetCell(x, y)
			r.screen.SetContent(x, y, c.Rune, nil, Style(c))
		}
	}
	r.screen.Show()
}

// State returns the animation state of the last drawn frame.
func (r *Runner) State() scene.State {
	return r.driver.State()
}

// Paused reports whether the walk is frozen.
func (r *Runner) Paused() bool {
	return r.driver.Paused()
}
