package service

import (
	"context"

	"github.com/guttosm/checkout-service/internal/cache"
	"github.com/guttosm/checkout-service/internal/domain/model"
)

// CachedCustomerLookup serves customers from a TTL cache before hitting the
// underlying lookup. Missing customers and errors are not cached.
type CachedCustomerLookup struct {
	next  CustomerLookup
	cache cache.Cache[string, model.Customer]
}

// NewCachedCustomerLookup wraps next with c.
func NewCachedCustomerLookup(next CustomerLookup, c cache.Cache[string, model.Customer]) *CachedCustomerLookup {
	return &CachedCustomerLookup{next: next, cache: c}
}

// FindCustomer implements CustomerLookup.
func (l *CachedCustomerLookup) FindCustomer(ctx context.Context, customerID string) (*model.Customer, error) {
	if c, ok := l.cache.Get(customerID); ok {
		return &c, nil
	}

	customer, err := l.next.FindCustomer(ctx, customerID)
	if err != nil || customer == nil {
		return customer, err
	}
	l.cache.Set(customerID, *customer)
	return customer, nil
}

// Invalidate drops a cached customer, e.g. after its tier changed.
func (l *CachedCustomerLookup) Invalidate(customerID string) {
	l.cache.Invalidate(customerID)
}
