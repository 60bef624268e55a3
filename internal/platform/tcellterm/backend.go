package tcellterm

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/citywalk/internal/registry"
)

// BackendID is the registry ID of the tcell backend.
const BackendID = "tcell"

func init() {
	registry.Register(BackendID, func() registry.Backend { return &Backend{} })
}

// Backend runs the animation on a tcell screen.
type Backend struct{}

// ID implements registry.Backend.
func (b *Backend) ID() string { return BackendID }

// Title implements registry.Backend.
func (b *Backend) Title() string { return "tcell (direct cell writes)" }

// Run takes over the terminal, runs the animation and restores the
// terminal with Fini on every return path.
func (b *Backend) Run(ctx context.Context, opts registry.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell: init screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()

	return NewRunner(screen, opts).Run(ctx)
}
