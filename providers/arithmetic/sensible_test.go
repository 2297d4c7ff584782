package arithmetic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upb/solid-lab/contracts"
)

func TestSensible_Add(t *testing.T) {
	p := NewSensible()

	tests := []struct {
		name        string
		x, y        float64
		want        float64
		expectError bool
	}{
		{
			name: "positive operands",
			x:    2, y: 3,
			want: 5,
		},
		{
			name: "negative operands",
			x:    -2, y: -3,
			want: -5,
		},
		{
			name: "zero operands",
			x:    0, y: 0,
			want: 0,
		},
		{
			name: "NaN operand",
			x:    math.NaN(), y: 3,
			expectError: true,
		},
		{
			name: "positive infinity operand",
			x:    2, y: math.Inf(1),
			expectError: true,
		},
		{
			name: "negative infinity operand",
			x:    math.Inf(-1), y: 3,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Add(tt.x, tt.y)

			if tt.expectError {
				require.Error(t, err)
				assert.True(t, contracts.IsInvalidInput(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSensible_Multiply(t *testing.T) {
	p := NewSensible()

	tests := []struct {
		name        string
		x, y        float64
		want        float64
		expectError bool
	}{
		{
			name: "positive operands",
			x:    2, y: 3,
			want: 6,
		},
		{
			name: "by zero",
			x:    2, y: 0,
			want: 0,
		},
		{
			name: "NaN operand",
			x:    2, y: math.NaN(),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Multiply(tt.x, tt.y)

			if tt.expectError {
				require.Error(t, err)
				assert.True(t, contracts.IsInvalidInput(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSensible_Name(t *testing.T) {
	assert.Equal(t, "sensible", NewSensible().Name())
}

// Repeated invocation with identical inputs must yield identical results.
func TestSensible_Deterministic(t *testing.T) {
	p := NewSensible()

	first, err := p.Add(1.5, 2.25)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		got, err := p.Add(1.5, 2.25)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}
