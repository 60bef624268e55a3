// Package registry provides a global registry of terminal backends.
// Backends register themselves in init() functions, so the CLI can list and
// start them without importing a terminal library directly.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/citywalk/internal/core"
	"github.com/vovakirdan/citywalk/internal/scene"
)

// Backend drives the animation on a real terminal.
// It owns the tick loop, key handling and terminal setup/teardown, and
// delegates every frame to the scene compositor.
type Backend interface {
	// ID returns a unique identifier used by --backend (e.g., "bubbletea").
	ID() string

	// Title returns a human-readable name for listings.
	Title() string

	// Run blocks until the user quits or ctx is cancelled. The terminal
	// must be restored before Run returns, on every path.
	Run(ctx context.Context, opts Options) error
}

// Options is everything a backend needs to run the animation.
type Options struct {
	Runtime core.RuntimeConfig
	Scene   *scene.Compositor
	Logger  *log.Logger
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new backend instance.
type Factory func() Backend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a backend factory to the registry.
// Panics if a backend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered backends, sorted by ID.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, BackendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a backend by its ID.
func Create(id string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", id)
	}

	return f(), nil
}

// Exists checks if a backend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// unregister removes a backend. Used by tests to keep the global registry clean.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()

	delete(factories, id)
	delete(titles, id)
}
