// Package registry provides a global registry for display sink factories.
// Sinks register themselves in init() functions, allowing the CLI to
// discover and open them by name without hardcoded dependencies.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mousetris/internal/config"
	"github.com/vovakirdan/mousetris/internal/engine"
	"github.com/vovakirdan/mousetris/internal/haptics"
)

// Output is an opened display target.
type Output struct {
	// Sink receives every packed frame.
	Sink engine.Sink

	// Vibrator is set when the target can vibrate.
	Vibrator haptics.Vibrator

	// Close releases the target. May be nil.
	Close func(ctx context.Context) error
}

// Shutdown calls Close if set.
func (o Output) Shutdown(ctx context.Context) error {
	if o.Close == nil {
		return nil
	}
	return o.Close(ctx)
}

// Deps are handed to a factory when a sink is opened.
type Deps struct {
	Config config.Config
	Logger *log.Logger
}

// Factory opens a sink.
type Factory func(ctx context.Context, deps Deps) (Output, error)

// SinkInfo contains metadata about a registered sink.
type SinkInfo struct {
	Name        string
	Description string
}

// ErrUnknownSink is returned by Create for names nobody registered.
var ErrUnknownSink = errors.New("registry: unknown sink")

type entry struct {
	description string
	factory     Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a sink factory to the registry.
// Typically called from an init() function.
// Panics if a sink with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[name]; exists {
		panic(fmt.Sprintf("registry: sink %q already registered", name))
	}
	entries[name] = entry{description: description, factory: f}
}

// List returns information about all registered sinks, sorted by name.
func List() []SinkInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SinkInfo, 0, len(entries))
	for name, e := range entries {
		result = append(result, SinkInfo{Name: name, Description: e.description})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create opens the sink registered under name.
func Create(ctx context.Context, name string, deps Deps) (Output, error) {
	mu.RLock()
	e, ok := entries[name]
	mu.RUnlock()

	if !ok {
		return Output{}, fmt.Errorf("%w %q", ErrUnknownSink, name)
	}
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}

	out, err := e.factory(ctx, deps)
	if err != nil {
		return Output{}, fmt.Errorf("registry: open %s: %w", name, err)
	}
	if out.Sink == nil {
		out.Sink = engine.Discard
	}
	return out, nil
}

// Exists checks if a sink with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[name]
	return ok
}
