// Package model defines the core domain types for the checkout service.
package model

import "github.com/shopspring/decimal"

// MoneyScale is the number of decimal places kept on finalized monetary values.
const MoneyScale int32 = 2

// Money is an exact decimal amount in the store currency.
type Money = decimal.Decimal

// Zero is the zero amount.
var Zero = decimal.Zero

// RoundMoney rounds an amount to two decimal places, half-up.
// Finalized values in this domain are never negative, so rounding half away
// from zero is equivalent.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// MustMoney parses a decimal literal and panics on malformed input.
// Intended for constants and tests.
func MustMoney(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// MoneyPtr returns a pointer to the parsed decimal literal.
func MoneyPtr(s string) *decimal.Decimal {
	d := MustMoney(s)
	return &d
}
