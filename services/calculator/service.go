// Package calculator contains the consumer of the Arithmetic contract.
package calculator

import (
	"time"

	"github.com/upb/solid-lab/contracts"
	"github.com/upb/solid-lab/observability"
	"go.uber.org/zap"
)

const contractName = "arithmetic"

// Service is a consumer of the Arithmetic contract. It holds exactly one
// bound provider, only ever calls contract operations, and never
// inspects which concrete provider it was given. Swapping the provider
// is purely a composition-time decision.
type Service struct {
	provider contracts.Arithmetic
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewService creates a calculator bound to the given provider for the
// lifetime of the service.
func NewService(provider contracts.Arithmetic, metrics *observability.Metrics, logger *zap.Logger) *Service {
	return &Service{
		provider: provider,
		metrics:  metrics,
		logger:   logger,
	}
}

// ProviderName returns the bound provider's name for response metadata
// and introspection.
func (s *Service) ProviderName() string {
	return s.provider.Name()
}

// Add invokes the bound provider's Add operation.
func (s *Service) Add(x, y float64) (float64, error) {
	return s.invoke("add", x, y, s.provider.Add)
}

// Multiply invokes the bound provider's Multiply operation.
func (s *Service) Multiply(x, y float64) (float64, error) {
	return s.invoke("multiply", x, y, s.provider.Multiply)
}

func (s *Service) invoke(operation string, x, y float64, op func(float64, float64) (float64, error)) (float64, error) {
	start := time.Now()

	result, err := op(x, y)
	s.metrics.ObserveOperation(contractName, s.provider.Name(), operation, statusOf(err), time.Since(start).Seconds())

	if err != nil {
		// contract errors surface unchanged to the caller
		s.logger.Debug("operation rejected",
			zap.String("operation", operation),
			zap.Error(err))
		return 0, err
	}

	s.logger.Debug("operation completed",
		zap.String("operation", operation),
		zap.Float64("x", x),
		zap.Float64("y", y),
		zap.Float64("result", result))

	return result, nil
}

func statusOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case contracts.IsInvalidInput(err):
		return "invalid_input"
	default:
		return "error"
	}
}
