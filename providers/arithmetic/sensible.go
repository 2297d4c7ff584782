package arithmetic

import "github.com/upb/solid-lab/contracts"

// Sensible implements the Arithmetic contract with conventional
// semantics: Add returns the sum, Multiply returns the product.
type Sensible struct{}

// compile-time contract check
var _ contracts.Arithmetic = (*Sensible)(nil)

// NewSensible creates the conventional arithmetic provider.
func NewSensible() *Sensible {
	return &Sensible{}
}

// Name returns the provider name.
func (*Sensible) Name() string {
	return "sensible"
}

// Add returns x + y.
func (p *Sensible) Add(x, y float64) (float64, error) {
	if err := checkOperands(p.Name(), "add", x, y); err != nil {
		return 0, err
	}
	return x + y, nil
}

// Multiply returns x * y.
func (p *Sensible) Multiply(x, y float64) (float64, error) {
	if err := checkOperands(p.Name(), "multiply", x, y); err != nil {
		return 0, err
	}
	return x * y, nil
}
