// Package calculator provides the quoting context.
// A Calculator holds exactly one active pricing strategy and applies it
// to package weights. The active strategy can be swapped at any time.
package calculator

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shipcost/core/pricing"
	"shipcost/core/types"
	"shipcost/internal/errors"
)

// errInitialStrategyRequired rejects construction without a strategy
var errInitialStrategyRequired = errors.Input("calculator requires an initial pricing strategy")

// Calculator applies the active pricing strategy to package weights.
//
// Not safe for concurrent use: a host that shares a Calculator across
// goroutines must serialize SetStrategy and Calculate externally.
type Calculator struct {
	strategy pricing.Strategy
	currency types.Currency
}

// New creates a calculator with an initial strategy and USD currency.
// The strategy is required; after construction it is never nil.
func New(s pricing.Strategy) (*Calculator, error) {
	return NewWithCurrency(s, types.CurrencyUSD)
}

// NewWithCurrency creates a calculator quoting in the given currency
func NewWithCurrency(s pricing.Strategy, currency types.Currency) (*Calculator, error) {
	if s == nil {
		return nil, errInitialStrategyRequired
	}
	return &Calculator{
		strategy: s,
		currency: currency,
	}, nil
}

// SetStrategy replaces the active strategy, effective for subsequent
// calculations. A nil strategy is ignored so the calculator always has
// exactly one active strategy.
func (c *Calculator) SetStrategy(s pricing.Strategy) {
	if s == nil {
		return
	}
	c.strategy = s
}

// Strategy returns the active strategy
func (c *Calculator) Strategy() pricing.Strategy {
	return c.strategy
}

// Calculate returns the cost of the given weight under the active strategy.
// Weight is assumed non-negative (caller contract). Results already
// returned are unaffected by later strategy swaps.
func (c *Calculator) Calculate(weightKg decimal.Decimal) decimal.Decimal {
	return c.strategy.Cost(weightKg)
}

// Quote prices each weight under the active strategy and returns the
// complete quote record with lineage.
func (c *Calculator) Quote(weightsKg ...decimal.Decimal) *types.Quote {
	quote := &types.Quote{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Currency:  c.currency,
	}

	for _, w := range weightsKg {
		amount := c.strategy.Cost(w)
		quote.Lines = append(quote.Lines, types.QuoteLine{
			Mode:      c.strategy.Mode(),
			WeightKg:  w,
			RatePerKg: c.strategy.RatePerKg(),
			Amount:    amount,
			Currency:  c.currency,
			Formula:   formulaFor(c.strategy),
		})
		quote.Total = quote.Total.Add(amount)
	}

	return quote
}

// formulaFor returns the lineage formula for a strategy
func formulaFor(s pricing.Strategy) string {
	if f, ok := s.(interface{ Formula() string }); ok {
		return f.Formula()
	}
	return "weight_kg * " + s.RatePerKg().String() + "/kg"
}
