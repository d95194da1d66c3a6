// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Mode identifies a shipping mode
type Mode string

const (
	// ModeGround is standard ground shipping
	ModeGround Mode = "Ground"

	// ModeAir is expedited air shipping
	ModeAir Mode = "Air"
)

// String returns the string representation
func (m Mode) String() string {
	return string(m)
}

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// QuoteLine represents a single priced package
type QuoteLine struct {
	// Mode is the shipping mode that priced this line
	Mode Mode `json:"mode"`

	// WeightKg is the package weight in kilograms
	WeightKg decimal.Decimal `json:"weight_kg"`

	// RatePerKg is the unit price applied
	RatePerKg decimal.Decimal `json:"rate_per_kg"`

	// Amount is the calculated cost (WeightKg * RatePerKg)
	Amount decimal.Decimal `json:"amount"`

	// Currency is the cost currency
	Currency Currency `json:"currency"`

	// Formula describes how the cost was calculated
	Formula string `json:"formula"`
}

// Quote is the complete output of a quoting run
type Quote struct {
	// ID uniquely identifies this quote
	ID string `json:"id"`

	// Timestamp is when the quote was produced
	Timestamp time.Time `json:"timestamp"`

	// Lines are the priced packages
	Lines []QuoteLine `json:"lines"`

	// Total is the sum of all line amounts
	Total decimal.Decimal `json:"total"`

	// Currency is the quote currency
	Currency Currency `json:"currency"`
}
