// Package registry provides a global registry for design factories.
// Designs register themselves in init() functions, allowing the machine and
// the commands to discover and instantiate them without hardcoded imports.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/vga-pong/internal/core"
)

// Design is the interface a clocked design implements so the machine can
// drive it. Designs contain pure logic with no external dependencies.
type Design interface {
	// ID returns a unique identifier for this design (e.g., "pong").
	// Used for CLI commands and run storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset puts the design into its power-on state.
	Reset()

	// Step evaluates one system tick with the given input levels and commits
	// the new state atomically.
	Step(in core.Inputs) core.StepResult

	// Pixel resolves the color driven for raster coordinate (h, v) from the
	// current state.
	Pixel(h, v int) core.Color

	// Snapshot returns an immutable copy of the current state for viewers.
	Snapshot() core.Snapshot
}

// DesignInfo contains metadata about a registered design.
type DesignInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a design.
type Factory func() Design

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a design factory to the registry.
// Typically called from a design's init() function.
// Panics if a design with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: design %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered designs, sorted by ID.
func List() []DesignInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DesignInfo, 0, len(factories))
	for id := range factories {
		result = append(result, DesignInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new design by its ID, already in its power-on state.
// Returns an error if the design ID is not registered.
func Create(id string) (Design, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown design %q", id)
	}

	d := f()
	d.Reset()
	return d, nil
}

// Exists checks if a design with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
