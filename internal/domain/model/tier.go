package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CustomerTier is the loyalty level of a customer.
type CustomerTier string

const (
	// TierGold waives freight entirely.
	TierGold CustomerTier = "GOLD"
	// TierSilver halves freight.
	TierSilver CustomerTier = "SILVER"
	// TierBronze pays full freight.
	TierBronze CustomerTier = "BRONZE"
)

var tierFactors = map[CustomerTier]decimal.Decimal{
	TierGold:   decimal.Zero,
	TierSilver: decimal.RequireFromString("0.50"),
	TierBronze: decimal.NewFromInt(1),
}

// Tiers lists every known tier in a stable order.
func Tiers() []CustomerTier {
	return []CustomerTier{TierGold, TierSilver, TierBronze}
}

// Valid reports whether t is one of the known tiers.
func (t CustomerTier) Valid() bool {
	_, ok := tierFactors[t]
	return ok
}

// ShippingFactor returns the multiplier applied to freight for the tier.
func (t CustomerTier) ShippingFactor() (decimal.Decimal, bool) {
	f, ok := tierFactors[t]
	return f, ok
}

// ParseTier parses a tier name, case-insensitively.
func ParseTier(s string) (CustomerTier, error) {
	t := CustomerTier(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown customer tier %q", s)
	}
	return t, nil
}
