// Package registry provides a global registry for demo factories.
// Demos register themselves in init() functions, so the platform can discover
// and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/mini2d/internal/core"
)

// Demo is the interface every interactive demo implements.
// Demos contain pure logic with no terminal dependencies; the platform handles
// input mapping, timing, and rendering.
type Demo interface {
	// ID returns a unique identifier (e.g., "balls"), used by the CLI and
	// score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the demo state. Called once at start and
	// again when restarting.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current demo state.
	State() core.GameState
}

// Options carries per-run settings from the CLI to a demo factory.
type Options struct {
	ConfigPath string // Explicit YAML config; empty uses the search path
	Difficulty string // Difficulty preset name; empty means normal
}

// Info contains metadata about a registered demo.
type Info struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new demo instance. It fails when the demo's
// configuration cannot be loaded.
type Factory func(opts Options) (Demo, error)

type entry struct {
	info    Info
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a demo factory to the registry.
// Typically called from a demo's init() function.
// Panics if a demo with the same ID is already registered.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: demo %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns information about all registered demos, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new demo by its ID.
func Create(id string, opts Options) (Demo, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown demo %q", id)
	}

	d, err := e.factory(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return d, nil
}

// Exists checks if a demo with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// unregister removes a demo. Only tests use it.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(entries, id)
}
