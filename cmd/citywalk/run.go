package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/citywalk/internal/config"
	"github.com/vovakirdan/citywalk/internal/core"
	"github.com/vovakirdan/citywalk/internal/platform/tui"
	"github.com/vovakirdan/citywalk/internal/registry"
	"github.com/vovakirdan/citywalk/internal/scene"
)

// newLogger builds the process logger. Full-screen commands must not write
// to the terminal they draw on, so their logs are discarded unless
// --log-file is set. The returned close func is never nil.
func newLogger(fullscreen bool, stderr io.Writer) (*log.Logger, func() error, error) {
	var w io.Writer = stderr
	closeFn := func() error { return nil }

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	case fullscreen:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "citywalk",
		Level:           log.WarnLevel,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadSceneConfig loads the config and applies flag overrides.
func loadSceneConfig(logger *log.Logger) (config.SceneConfig, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.SceneConfig{}, err
	}
	logger.Debug("config loaded", "source", source)

	if flagTick != 0 {
		cfg.Tick = flagTick
		if err := cfg.Validate(); err != nil {
			return config.SceneConfig{}, fmt.Errorf("--tick: %w", err)
		}
	}
	return cfg, nil
}

// newCompositor builds the scene compositor for cfg. An empty help text is
// replaced by a line generated from the key bindings.
func newCompositor(cfg config.SceneConfig) *scene.Compositor {
	helpText := cfg.HelpText
	if helpText == "" {
		helpText = tui.HelpLine(tui.DefaultKeyMap())
	}
	return scene.New(
		scene.WithPalette(cfg.Palette),
		scene.WithHelpText(helpText),
	)
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (width, height int) {
	defaults := core.DefaultConfig()
	width, height = defaults.ScreenW, defaults.ScreenH
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		width, height = w, h
	}
	return width, height
}

func runWalk(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagBackend) {
		return fmt.Errorf("unknown backend %q (run 'citywalk backends' to list them)", flagBackend)
	}

	logger, closeLog, err := newLogger(true, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadSceneConfig(logger)
	if err != nil {
		return err
	}

	width, height := terminalSize()
	rc := core.RuntimeConfig{ScreenW: width, ScreenH: height, Tick: cfg.Tick}

	backend, err := registry.Create(flagBackend)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "backend", backend.ID(), "width", width, "height", height, "tick", rc.TickInterval())
	err = backend.Run(ctx, registry.Options{
		Runtime: rc,
		Scene:   newCompositor(cfg),
		Logger:  logger,
	})
	if err != nil {
		logger.Error("backend failed", "backend", backend.ID(), "err", err)
		return fmt.Errorf("%s backend: %w", backend.ID(), err)
	}
	logger.Info("stopped", "backend", backend.ID())
	return nil
}

// cmdContext returns the command's context, falling back to Background for
// commands executed without one.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
