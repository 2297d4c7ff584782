// Package registry provides a named registry for contract providers.
// Providers are registered once at composition time; consumers never
// touch the registry, they only receive the provider bound to them.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrNotFound is returned when no provider is registered under a name.
	ErrNotFound = errors.New("provider not found")

	// ErrAlreadyRegistered is returned when a name is registered twice.
	ErrAlreadyRegistered = errors.New("provider already registered")
)

// Registry holds named providers for a single contract.
type Registry[T any] struct {
	mu        sync.RWMutex
	contract  string
	providers map[string]T
}

// New creates an empty registry for the given contract name. The
// contract name only appears in error messages and introspection output.
func New[T any](contract string) *Registry[T] {
	return &Registry[T]{
		contract:  contract,
		providers: make(map[string]T),
	}
}

// Contract returns the contract name this registry serves.
func (r *Registry[T]) Contract() string {
	return r.contract
}

// Register registers a provider under a name.
func (r *Registry[T]) Register(name string, provider T) error {
	if name == "" {
		return fmt.Errorf("%s: provider name cannot be empty", r.contract)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("%s: %q: %w", r.contract, name, ErrAlreadyRegistered)
	}

	r.providers[name] = provider
	return nil
}

// Get retrieves a provider by name.
func (r *Registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	if !exists {
		var zero T
		return zero, fmt.Errorf("%s: %q: %w", r.contract, name, ErrNotFound)
	}

	return provider, nil
}

// Names returns all registered provider names, sorted.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Len returns the number of registered providers.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.providers)
}
