package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upb/solid-lab/contracts"
	"github.com/upb/solid-lab/providers/arithmetic"
	"go.uber.org/zap"
)

func newService(p contracts.Arithmetic) *Service {
	return NewService(p, nil, zap.NewNop())
}

func TestService_Add(t *testing.T) {
	svc := newService(arithmetic.NewSensible())

	result, err := svc.Add(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 5.0, result)
}

func TestService_Multiply(t *testing.T) {
	svc := newService(arithmetic.NewSensible())

	result, err := svc.Multiply(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 6.0, result)
}

// The service's own code is identical regardless of which provider it is
// composed with; only the observed results differ.
func TestService_Substitutability(t *testing.T) {
	exercise := func(svc *Service) (float64, float64) {
		add, err := svc.Add(2, 3)
		require.NoError(t, err)

		mul, err := svc.Multiply(2, 3)
		require.NoError(t, err)

		return add, mul
	}

	add, mul := exercise(newService(arithmetic.NewSensible()))
	assert.Equal(t, 5.0, add)
	assert.Equal(t, 6.0, mul)

	add, mul = exercise(newService(arithmetic.NewInverted()))
	assert.Equal(t, -1.0, add)
	assert.InDelta(t, 2.0/3.0, mul, 1e-12)
}

func TestService_InvalidInputSurfacesUnchanged(t *testing.T) {
	svc := newService(arithmetic.NewSensible())

	_, err := svc.Add(math.NaN(), 1)
	require.Error(t, err)
	assert.True(t, contracts.IsInvalidInput(err))

	var inputErr *contracts.InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "sensible", inputErr.Provider)
	assert.Equal(t, "add", inputErr.Op)
}

func TestService_ProviderName(t *testing.T) {
	assert.Equal(t, "sensible", newService(arithmetic.NewSensible()).ProviderName())
	assert.Equal(t, "inverted", newService(arithmetic.NewInverted()).ProviderName())
}

// stubProvider proves the consumer depends only on the contract, not on
// any concrete provider type from the providers package.
type stubProvider struct{}

func (stubProvider) Name() string                           { return "stub" }
func (stubProvider) Add(x, y float64) (float64, error)      { return 42, nil }
func (stubProvider) Multiply(x, y float64) (float64, error) { return 42, nil }

func TestService_AcceptsAnyContractImplementation(t *testing.T) {
	svc := newService(stubProvider{})

	result, err := svc.Add(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 42.0, result)
	assert.Equal(t, "stub", svc.ProviderName())
}
