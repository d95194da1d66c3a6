// Package pricing provides shipping mode pricing strategies.
// Strategies are pure: same mode and weight always produce the same cost.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"shipcost/core/types"
)

// Strategy prices a package weight for one shipping mode
type Strategy interface {
	// Mode returns the shipping mode this strategy prices
	Mode() types.Mode

	// RatePerKg returns the unit price per kilogram
	RatePerKg() decimal.Decimal

	// Cost returns the price for the given weight in kilograms.
	// Pure and deterministic; weight is assumed non-negative (caller contract).
	Cost(weightKg decimal.Decimal) decimal.Decimal
}

// LinearStrategy prices weight at a fixed rate per kilogram.
// Immutable once constructed.
type LinearStrategy struct {
	mode      types.Mode
	ratePerKg decimal.Decimal
}

// NewLinear creates a linear pricing strategy for a mode
func NewLinear(mode types.Mode, ratePerKg decimal.Decimal) *LinearStrategy {
	return &LinearStrategy{
		mode:      mode,
		ratePerKg: ratePerKg,
	}
}

// NewGround creates the standard ground strategy (1.5 per kg)
func NewGround() *LinearStrategy {
	return NewLinear(types.ModeGround, decimal.RequireFromString("1.5"))
}

// NewAir creates the expedited air strategy (3.0 per kg)
func NewAir() *LinearStrategy {
	return NewLinear(types.ModeAir, decimal.RequireFromString("3.0"))
}

// Mode returns the shipping mode
func (s *LinearStrategy) Mode() types.Mode {
	return s.mode
}

// RatePerKg returns the unit price
func (s *LinearStrategy) RatePerKg() decimal.Decimal {
	return s.ratePerKg
}

// Cost returns weight * rate
func (s *LinearStrategy) Cost(weightKg decimal.Decimal) decimal.Decimal {
	return weightKg.Mul(s.ratePerKg)
}

// Formula describes the calculation for lineage tracking
func (s *LinearStrategy) Formula() string {
	return fmt.Sprintf("weight_kg * %s/kg", s.ratePerKg.String())
}
