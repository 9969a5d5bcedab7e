package service

import (
	"fmt"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// validateCart checks every pricing precondition and returns the first violation.
func validateCart(cart *model.Cart, region model.Region, tier model.CustomerTier) error {
	if cart == nil || len(cart.Items) == 0 {
		return newValidationError("items", "cart must contain at least one item")
	}
	if region == "" {
		return newValidationError("region", "is required")
	}
	if !region.Valid() {
		return newValidationError("region", "unknown region %q", region)
	}
	if tier == "" {
		return newValidationError("tier", "is required")
	}
	if !tier.Valid() {
		return newValidationError("tier", "unknown customer tier %q", tier)
	}

	for i, item := range cart.Items {
		if err := validateLineItem(i, item); err != nil {
			return err
		}
	}
	return nil
}

func validateLineItem(i int, item model.LineItem) error {
	field := func(name string) string {
		return fmt.Sprintf("items[%d].%s", i, name)
	}

	if item.Quantity <= 0 {
		return newValidationError(field("quantity"), "must be a positive integer")
	}

	p := item.Product
	if p.Price == nil {
		return newValidationError(field("product.price"), "is required")
	}
	if p.Price.IsNegative() {
		return newValidationError(field("product.price"), "must not be negative")
	}
	if p.Weight == nil {
		return newValidationError(field("product.weight"), "is required")
	}
	if p.Weight.IsNegative() {
		return newValidationError(field("product.weight"), "must not be negative")
	}

	dims := []struct {
		name  string
		value *decimal.Decimal
	}{
		{"length", p.Length},
		{"width", p.Width},
		{"height", p.Height},
	}
	for _, d := range dims {
		if d.value != nil && d.value.IsNegative() {
			return newValidationError(field("product."+d.name), "must not be negative")
		}
	}

	if !p.Category.Valid() {
		return newValidationError(field("product.category"), "unknown category %q", p.Category)
	}
	return nil
}
