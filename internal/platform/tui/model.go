package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/citywalk/internal/core"
	"github.com/vovakirdan/citywalk/internal/registry"
	"github.com/vovakirdan/citywalk/internal/scene"
)

// Model is the Bubble Tea model for the city walk.
type Model struct {
	driver     *scene.Driver
	compositor *scene.Compositor
	screen     *core.Screen
	keys       KeyMap
	inputFrame core.InputFrame
	interval   time.Duration
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a model at frame 0, offset 0, sized from opts.Runtime
// until the first WindowSizeMsg arrives.
func NewModel(opts registry.Options) Model {
	compositor := opts.Scene
	if compositor == nil {
		compositor = scene.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		driver:     scene.NewDriver(),
		compositor: compositor,
		screen:     core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keys:       DefaultKeyMap(),
		inputFrame: core.NewInputFrame(),
		interval:   opts.Runtime.TickInterval(),
		logger:     logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Quit is immediate; everything else
// is applied on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.logger.Debug("quit requested", "key", msg.String())
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize resizes the screen buffer. Animation state is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)
	scene.Resize(m.screen, msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the animation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasPaused := m.driver.Paused()
	m.driver.Step(m.inputFrame)
	if m.driver.Paused() != wasPaused {
		m.logger.Debug("pause toggled", "paused", m.driver.Paused(), "ticks", m.driver.Ticks())
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.interval)
}

// State returns the animation state that the next View will draw.
func (m Model) State() scene.State {
	return m.driver.State()
}

// Paused reports whether the walk is frozen.
func (m Model) Paused() bool {
	return m.driver.Paused()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.compositor.Render(m.screen, m.driver.State())
	return RenderScreen(m.screen)
}
