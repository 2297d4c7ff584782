package contracts

import "context"

// ListSource is the contract for providers that expose an ordered
// sequence of items.
//
// The sequence and its order are entirely provider-defined. Consumers
// must hand the sequence through verbatim: no filtering, no reordering.
// Implementations backed by external stores must honor ctx cancellation.
type ListSource interface {
	// Name returns the provider name used for registry lookups and
	// metric labels (e.g. "employees", "postgres", "redis").
	Name() string

	// Items returns the provider's sequence in provider order.
	Items(ctx context.Context) ([]string, error)
}
