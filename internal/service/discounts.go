package service

import (
	"sort"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

var (
	valueTierHighThreshold = decimal.RequireFromString("1000.00")
	valueTierLowThreshold  = decimal.RequireFromString("500.00")
	valueTierHighRate      = decimal.RequireFromString("0.20")
	valueTierLowRate       = decimal.RequireFromString("0.10")
)

// categoryVolumeRates maps minimum quantity per category to its discount rate.
// Ordered from the highest threshold down.
var categoryVolumeRates = []struct {
	minQuantity int64
	rate        decimal.Decimal
}{
	{8, decimal.RequireFromString("0.15")},
	{5, decimal.RequireFromString("0.10")},
	{3, decimal.RequireFromString("0.05")},
}

type categoryTotals struct {
	quantity int64
	subtotal decimal.Decimal
}

// subtotal sums price x quantity over all items at full precision.
func subtotal(items []model.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(item.Quantity)))
	}
	return total
}

// categoryVolumeRate returns the discount rate earned by a category quantity.
func categoryVolumeRate(quantity int64) decimal.Decimal {
	for _, tier := range categoryVolumeRates {
		if quantity >= tier.minQuantity {
			return tier.rate
		}
	}
	return decimal.Zero
}

// categoryDiscount applies the volume rate to each category's own subtotal.
func categoryDiscount(items []model.LineItem) decimal.Decimal {
	byCategory := make(map[model.ProductCategory]*categoryTotals)
	for _, item := range items {
		totals, ok := byCategory[item.Product.Category]
		if !ok {
			totals = &categoryTotals{subtotal: decimal.Zero}
			byCategory[item.Product.Category] = totals
		}
		totals.quantity += item.Quantity
		totals.subtotal = totals.subtotal.Add(item.Product.Price.Mul(decimal.NewFromInt(item.Quantity)))
	}

	categories := make([]model.ProductCategory, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	discount := decimal.Zero
	for _, c := range categories {
		totals := byCategory[c]
		discount = discount.Add(totals.subtotal.Mul(categoryVolumeRate(totals.quantity)))
	}
	return discount
}

// valueTierRate returns the order-level discount rate for an amount.
// The thresholds are strict: exactly 500.00 or 1000.00 takes the lower tier.
func valueTierRate(amount decimal.Decimal) decimal.Decimal {
	switch {
	case amount.GreaterThan(valueTierHighThreshold):
		return valueTierHighRate
	case amount.GreaterThan(valueTierLowThreshold):
		return valueTierLowRate
	default:
		return decimal.Zero
	}
}
