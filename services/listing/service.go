// Package listing contains the consumer of the ListSource contract.
package listing

import (
	"context"
	"time"

	"github.com/upb/solid-lab/contracts"
	"github.com/upb/solid-lab/observability"
	"github.com/upb/solid-lab/services"
	"go.uber.org/zap"
)

const contractName = "listsource"

// Service is a consumer of the ListSource contract. It holds exactly one
// bound provider and returns that provider's sequence verbatim: no
// filtering, no reordering, no inspection of the concrete type behind
// the contract.
type Service struct {
	provider contracts.ListSource
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewService creates a listing service bound to the given provider for
// the lifetime of the service.
func NewService(provider contracts.ListSource, metrics *observability.Metrics, logger *zap.Logger) *Service {
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

// Items returns the bound provider's sequence in provider order.
// Contract-level InvalidInput errors surface unchanged; anything else
// from an I/O-backed provider is classified as a backing store failure.
func (s *Service) Items(ctx context.Context) ([]string, error) {
	start := time.Now()

	items, err := s.provider.Items(ctx)
	status := "ok"
	if err != nil {
		status = "error"
	}
	s.metrics.ObserveOperation(contractName, s.provider.Name(), "items", status, time.Since(start).Seconds())

	if err != nil {
		if contracts.IsInvalidInput(err) {
			return nil, err
		}
		s.logger.Error("list source failed",
			zap.String("provider", s.provider.Name()),
			zap.Error(err))
		return nil, services.WrapExternal("list source unavailable", err)
	}

	s.logger.Debug("items loaded",
		zap.String("provider", s.provider.Name()),
		zap.Int("count", len(items)))

	return items, nil
}
