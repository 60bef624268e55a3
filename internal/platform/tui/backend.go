package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/citywalk/internal/registry"
)

// BackendID is the registry ID of the Bubble Tea backend.
const BackendID = "bubbletea"

func init() {
	registry.Register(BackendID, func() registry.Backend { return &Backend{} })
}

// Backend runs the animation as a Bubble Tea program on the alternate screen.
type Backend struct{}

// ID implements registry.Backend.
func (b *Backend) ID() string { return BackendID }

// Title implements registry.Backend.
func (b *Backend) Title() string { return "Bubble Tea (lipgloss styled)" }

// Run starts the Bubble Tea program and blocks until quit. Bubble Tea
// restores the terminal on exit, including after a cancelled context.
func (b *Backend) Run(ctx context.Context, opts registry.Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		model.logger.Debug("program stopped by context", "err", ctx.Err())
		return nil
	}
	return err
}
