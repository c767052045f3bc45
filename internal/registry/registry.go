// Package registry provides a global registry of named board presets.
// Presets register themselves in init() functions, so front ends can list
// and look them up without hardcoding sizes.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Preset is a named board size.
type Preset struct {
	ID     string // Unique identifier used on the command line (e.g., "classic")
	Title  string // Human-readable name
	Width  int    // Columns
	Height int    // Rows
}

var (
	presets = make(map[string]Preset)
	mu      sync.RWMutex
)

// Register adds a preset to the registry.
// Typically called from an init() function.
// Panics if a preset with the same ID is already registered or the
// dimensions are not positive.
func Register(p Preset) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := presets[p.ID]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", p.ID))
	}
	if p.Width < 1 || p.Height < 1 {
		panic(fmt.Sprintf("registry: preset %q has invalid size %dx%d", p.ID, p.Width, p.Height))
	}

	presets[p.ID] = p
}

// List returns all registered presets, sorted by ID.
func List() []Preset {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Preset, 0, len(presets))
	for _, p := range presets {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the preset with the given ID.
// Returns an error if the ID is not registered.
func Lookup(id string) (Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("registry: unknown preset %q", id)
	}

	return p, nil
}
