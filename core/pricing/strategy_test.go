package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"shipcost/core/types"
)

func TestLinearStrategy_Cost(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
		weightKg string
		expected string
	}{
		{
			name:     "Ground 10kg",
			strategy: NewGround(),
			weightKg: "10",
			expected: "15",
		},
		{
			name:     "Air 10kg",
			strategy: NewAir(),
			weightKg: "10",
			expected: "30",
		},
		{
			name:     "Ground zero weight",
			strategy: NewGround(),
			weightKg: "0",
			expected: "0",
		},
		{
			name:     "Air fractional weight",
			strategy: NewAir(),
			weightKg: "2.5",
			expected: "7.5",
		},
		{
			name:     "Ground fractional weight",
			strategy: NewGround(),
			weightKg: "0.4",
			expected: "0.6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weight := decimal.RequireFromString(tt.weightKg)
			got := tt.strategy.Cost(weight)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestLinearStrategy_Deterministic(t *testing.T) {
	s := NewGround()
	weight := decimal.RequireFromString("7.25")

	first := s.Cost(weight)
	for i := 0; i < 10; i++ {
		assert.True(t, s.Cost(weight).Equal(first), "cost must be identical across calls")
	}
}

func TestLinearStrategy_Metadata(t *testing.T) {
	ground := NewGround()
	assert.Equal(t, types.ModeGround, ground.Mode())
	assert.Equal(t, "1.5", ground.RatePerKg().String())
	assert.Equal(t, "weight_kg * 1.5/kg", ground.Formula())

	air := NewAir()
	assert.Equal(t, types.ModeAir, air.Mode())
	assert.Equal(t, "3", air.RatePerKg().String())
}
