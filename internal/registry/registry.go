// Package registry provides a global registry for program factories.
// Bundled programs register themselves in init() functions, allowing the
// platform to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/playcell/internal/runner"
)

// Info contains metadata about a registered program.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a program.
type Factory func() runner.Program

type entry struct {
	factory Factory
	title   string
}

var (
	programs = make(map[string]entry)
	mu       sync.RWMutex
)

// Register adds a program factory to the registry.
// Typically called from a program package's init() function.
// Panics if a program with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := programs[id]; exists {
		panic(fmt.Sprintf("registry: program %q already registered", id))
	}
	programs[id] = entry{factory: f, title: title}
}

// List returns information about all registered programs, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(programs))
	for id, e := range programs {
		result = append(result, Info{ID: id, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new program by its ID.
// Returns an error if the program ID is not registered.
func Create(id string) (runner.Program, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := programs[id]
	if !ok {
		return runner.Program{}, fmt.Errorf("registry: unknown program %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a program with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := programs[id]
	return ok
}
