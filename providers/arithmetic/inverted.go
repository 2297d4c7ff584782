package arithmetic

import "github.com/upb/solid-lab/contracts"

// Inverted implements the Arithmetic contract with deliberately
// unconventional semantics: Add returns the difference and Multiply the
// quotient. It exists to demonstrate that the contract constrains the
// shape of an operation, not its meaning — a consumer bound to Inverted
// keeps working unchanged, it just observes different results.
type Inverted struct{}

var _ contracts.Arithmetic = (*Inverted)(nil)

// NewInverted creates the inverted arithmetic provider.
func NewInverted() *Inverted {
	return &Inverted{}
}

// Name returns the provider name.
func (*Inverted) Name() string {
	return "inverted"
}

// Add returns x - y.
func (p *Inverted) Add(x, y float64) (float64, error) {
	if err := checkOperands(p.Name(), "add", x, y); err != nil {
		return 0, err
	}
	return x - y, nil
}

// Multiply returns x / y. A zero divisor is outside this provider's
// input domain: the result would be non-finite, and the contract
// requires an InvalidInput error over a silently wrong value.
func (p *Inverted) Multiply(x, y float64) (float64, error) {
	if err := checkOperands(p.Name(), "multiply", x, y); err != nil {
		return 0, err
	}
	if y == 0 {
		return 0, contracts.NewInputError(p.Name(), "multiply", "operand y must be non-zero")
	}
	return x / y, nil
}
