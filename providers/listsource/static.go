// Package listsource contains the providers implementing the ListSource
// contract: a fixed in-memory list plus Postgres- and Redis-backed
// variants. All variants are interchangeable behind the same contract.
package listsource

import (
	"context"

	"github.com/upb/solid-lab/contracts"
)

// Static serves a fixed sequence captured at construction time.
type Static struct {
	name  string
	items []string
}

var _ contracts.ListSource = (*Static)(nil)

// NewStatic creates a static source with the given name and sequence.
// The sequence is copied so later mutation of the argument cannot change
// what the provider serves.
func NewStatic(name string, items []string) *Static {
	copied := make([]string, len(items))
	copy(copied, items)

	return &Static{
		name:  name,
		items: copied,
	}
}

// NewEmployees returns the built-in employee directory source.
func NewEmployees() *Static {
	return NewStatic("employees", []string{"Josh", "Kathy"})
}

// NewProducts returns the built-in product catalog source.
func NewProducts() *Static {
	return NewStatic("products", []string{"Widget", "Gadget"})
}

// Name returns the provider name.
func (s *Static) Name() string {
	return s.name
}

// Items returns the fixed sequence in its original order.
func (s *Static) Items(_ context.Context) ([]string, error) {
	items := make([]string, len(s.items))
	copy(items, s.items)
	return items, nil
}
