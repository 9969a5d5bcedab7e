// Package service contains the business logic for the checkout service.
package service

import (
	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// PricingEngine computes what a customer owes for a cart.
// Implementations are pure and safe for concurrent use.
type PricingEngine interface {
	// ComputeTotal returns the discounted subtotal plus shipping, rounded to cents.
	ComputeTotal(cart *model.Cart, region model.Region, tier model.CustomerTier) (decimal.Decimal, error)
	// Quote returns the full breakdown behind ComputeTotal.
	Quote(cart *model.Cart, region model.Region, tier model.CustomerTier) (model.Quote, error)
}

// PricingEngineImpl implements PricingEngine.
type PricingEngineImpl struct{}

// NewPricingEngine creates a new pricing engine.
func NewPricingEngine() PricingEngine {
	return &PricingEngineImpl{}
}

// ComputeTotal implements PricingEngine.
func (e *PricingEngineImpl) ComputeTotal(cart *model.Cart, region model.Region, tier model.CustomerTier) (decimal.Decimal, error) {
	q, err := e.Quote(cart, region, tier)
	if err != nil {
		return decimal.Zero, err
	}
	return q.Total, nil
}

// Quote implements PricingEngine.
func (e *PricingEngineImpl) Quote(cart *model.Cart, region model.Region, tier model.CustomerTier) (model.Quote, error) {
	if err := validateCart(cart, region, tier); err != nil {
		return model.Quote{}, err
	}

	sub := subtotal(cart.Items)
	catDiscount := categoryDiscount(cart.Items)
	afterCategory := sub.Sub(catDiscount)
	valDiscount := afterCategory.Mul(valueTierRate(afterCategory))
	discounted := afterCategory.Sub(valDiscount)

	freight := shipping(cart.Items, region, tier)

	return model.Quote{
		Region:             region,
		Tier:               tier,
		Subtotal:           sub,
		CategoryDiscount:   catDiscount,
		ValueDiscount:      valDiscount,
		DiscountedSubtotal: discounted,
		Shipping:           freight,
		Total:              model.RoundMoney(discounted.Add(freight.Total)),
	}, nil
}
