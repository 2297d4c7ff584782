// Package arithmetic contains the providers implementing the Arithmetic
// contract. Variants differ only in behavior, never in interface.
package arithmetic

import (
	"fmt"
	"math"

	"github.com/upb/solid-lab/contracts"
)

// checkOperands enforces the contract's input domain: both operands must
// be finite.
func checkOperands(provider, op string, x, y float64) error {
	if !isFinite(x) {
		return contracts.NewInputError(provider, op, fmt.Sprintf("operand x must be finite, got %v", x))
	}
	if !isFinite(y) {
		return contracts.NewInputError(provider, op, fmt.Sprintf("operand y must be finite, got %v", y))
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
