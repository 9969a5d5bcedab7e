// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/guttosm/checkout-service/internal/domain/model"
)

// CustomerRepositoryInterface defines customer storage operations.
type CustomerRepositoryInterface interface {
	FindCustomer(ctx context.Context, customerID string) (*model.Customer, error)
	Save(ctx context.Context, customer *model.Customer) error
}

// CartRepositoryInterface defines cart storage operations.
type CartRepositoryInterface interface {
	FindCart(ctx context.Context, cartID string) (*model.Cart, error)
	Save(ctx context.Context, cart *model.Cart) error
	ListByCustomer(ctx context.Context, customerID string, limit int) ([]*model.Cart, error)
}

// StockRepositoryInterface defines stock level operations.
type StockRepositoryInterface interface {
	SetAvailable(ctx context.Context, productID string, available int64) error
	Available(ctx context.Context, productID string) (int64, bool, error)
	HasStock(ctx context.Context, productIDs []string, quantities []int64) (bool, error)
	Decrement(ctx context.Context, productIDs []string, quantities []int64) (bool, error)
}

// CheckoutRepositoryInterface defines checkout audit operations.
type CheckoutRepositoryInterface interface {
	Record(ctx context.Context, record *model.CheckoutRecord) error
	ListByCart(ctx context.Context, cartID string, limit int) ([]*model.CheckoutRecord, error)
	ListPendingReconciliation(ctx context.Context, limit int) ([]*model.CheckoutRecord, error)
}

var (
	_ CustomerRepositoryInterface = (*CustomerRepository)(nil)
	_ CartRepositoryInterface     = (*CartRepository)(nil)
	_ StockRepositoryInterface    = (*StockRepository)(nil)
	_ CheckoutRepositoryInterface = (*CheckoutRepository)(nil)

	_ CustomerRepositoryInterface = (*CustomerRepositoryWithCircuitBreaker)(nil)
	_ CartRepositoryInterface     = (*CartRepositoryWithCircuitBreaker)(nil)
	_ StockRepositoryInterface    = (*StockRepositoryWithCircuitBreaker)(nil)
	_ CheckoutRepositoryInterface = (*CheckoutRepositoryWithCircuitBreaker)(nil)
)
