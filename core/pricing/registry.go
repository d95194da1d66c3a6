// Package pricing - Strategy registry
// The registry is the factory: it resolves mode names to strategies
// without exposing construction details to callers.
package pricing

import (
	"sort"
	"sync"

	"shipcost/core/types"
	"shipcost/internal/errors"
)

// Registry manages strategy registration and resolution
type Registry struct {
	mu         sync.RWMutex
	strategies map[types.Mode]Strategy
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		strategies: make(map[types.Mode]Strategy),
	}
}

// NewDefaultRegistry creates a registry with the stock modes registered
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	// Stock tariff: Ground and Air
	_ = r.Register(NewGround())
	_ = r.Register(NewAir())
	return r
}

// Register adds a strategy to the registry
func (r *Registry) Register(s Strategy) error {
	if s == nil {
		return errors.Input("cannot register nil strategy")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.strategies[s.Mode()]; exists {
		return errors.Newf(errors.TypeInput, "strategy already registered: %s", s.Mode())
	}

	r.strategies[s.Mode()] = s
	return nil
}

// Resolve returns the strategy for a mode.
// Unknown modes fail with an INVALID_MODE error; no side effects.
func (r *Registry) Resolve(mode types.Mode) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.strategies[mode]
	if !ok {
		return nil, errors.InvalidMode(string(mode))
	}
	return s, nil
}

// Modes returns all registered modes in sorted order
func (r *Registry) Modes() []types.Mode {
	r.mu.RLock()
	defer r.mu.RUnlock()

	modes := make([]types.Mode, 0, len(r.strategies))
	for m := range r.strategies {
		modes = append(modes, m)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}

// Global default registry
var defaultRegistry = NewDefaultRegistry()

// GetDefaultRegistry returns the default registry
func GetDefaultRegistry() *Registry {
	return defaultRegistry
}

// Resolve resolves a mode against the default registry
func Resolve(mode types.Mode) (Strategy, error) {
	return defaultRegistry.Resolve(mode)
}

// Register adds a strategy to the default registry
func Register(s Strategy) error {
	return defaultRegistry.Register(s)
}

// Modes returns all modes registered in the default registry
func Modes() []types.Mode {
	return defaultRegistry.Modes()
}
