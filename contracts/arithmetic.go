package contracts

// Arithmetic is the contract for two-operand numeric operations.
//
// The contract fixes the shape of each operation, not its meaning: what
// "Add" actually computes is left to the provider. Implementations are
// expected to:
//   - accept only finite operands and reject NaN and ±Inf with an InputError
//   - be deterministic: identical inputs always yield the identical result
//   - perform no I/O and hold no mutable state across calls
type Arithmetic interface {
	// Name returns the provider name used for registry lookups and
	// metric labels (e.g. "sensible", "inverted").
	Name() string

	// Add combines two finite operands into a single result.
	Add(x, y float64) (float64, error)

	// Multiply combines two finite operands into a single result.
	Multiply(x, y float64) (float64, error)
}
