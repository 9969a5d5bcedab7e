package service

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/metrics"
)

// QuoteService prices carts without side effects.
type QuoteService interface {
	// Quote prices an ad-hoc cart for the given region and tier.
	Quote(cart *model.Cart, region model.Region, tier model.CustomerTier) (model.Quote, error)
	// QuoteStoredCart prices a stored cart with its owner's region and tier.
	QuoteStoredCart(ctx context.Context, cartID, customerID string) (model.Quote, error)
}

// QuoteServiceImpl implements QuoteService.
type QuoteServiceImpl struct {
	pricing   PricingEngine
	customers CustomerLookup
	carts     CartLookup
}

// NewQuoteService creates a new quote service. customers and carts may be nil,
// in which case only ad-hoc quotes are supported.
func NewQuoteService(pricing PricingEngine, customers CustomerLookup, carts CartLookup) QuoteService {
	return &QuoteServiceImpl{pricing: pricing, customers: customers, carts: carts}
}

// Quote implements QuoteService.
func (s *QuoteServiceImpl) Quote(cart *model.Cart, region model.Region, tier model.CustomerTier) (model.Quote, error) {
	start := time.Now()
	q, err := s.pricing.Quote(cart, region, tier)
	observePricing(start, err)
	return q, err
}

// observePricing records the duration and outcome of one pricing run.
func observePricing(start time.Time, err error) {
	status := "success"
	if err != nil {
		status = ErrorKind(err)
	}
	metrics.RecordPricing(time.Since(start), status)
}

// QuoteStoredCart implements QuoteService.
func (s *QuoteServiceImpl) QuoteStoredCart(ctx context.Context, cartID, customerID string) (model.Quote, error) {
	if s.customers == nil || s.carts == nil {
		return model.Quote{}, fmt.Errorf("stored carts: %w", ErrNotFound)
	}

	customer, err := s.customers.FindCustomer(ctx, customerID)
	if err != nil {
		return model.Quote{}, fmt.Errorf("%s: %w", stepResolveCustomer, err)
	}
	if customer == nil {
		return model.Quote{}, &CheckoutError{Kind: ErrNotFound, Step: stepResolveCustomer, Err: fmt.Errorf("customer %q", customerID)}
	}

	cart, err := s.carts.FindCart(ctx, cartID)
	if err != nil {
		return model.Quote{}, fmt.Errorf("%s: %w", stepResolveCart, err)
	}
	if cart == nil || cart.CustomerID != customer.ID {
		return model.Quote{}, &CheckoutError{Kind: ErrNotFound, Step: stepResolveCart, Err: fmt.Errorf("cart %q", cartID)}
	}

	return s.Quote(cart, customer.Region, customer.Tier)
}
