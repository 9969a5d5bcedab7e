package repository

import (
	"context"
	"errors"

	"github.com/guttosm/checkout-service/internal/circuitbreaker"
	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/rs/zerolog/log"
)

// execute runs fn through cb and returns its result.
func execute[T any](ctx context.Context, cb *circuitbreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	var result T
	err := cb.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = fn()
		return cbErr
	})
	return result, err
}

// CustomerRepositoryWithCircuitBreaker wraps a customer repository with circuit breaker protection.
type CustomerRepositoryWithCircuitBreaker struct {
	repo           CustomerRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCustomerRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewCustomerRepositoryWithCircuitBreaker(repo CustomerRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *CustomerRepositoryWithCircuitBreaker {
	return &CustomerRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// FindCustomer finds a customer with circuit breaker protection.
func (r *CustomerRepositoryWithCircuitBreaker) FindCustomer(ctx context.Context, customerID string) (*model.Customer, error) {
	return execute(ctx, r.circuitBreaker, func() (*model.Customer, error) {
		return r.repo.FindCustomer(ctx, customerID)
	})
}

// Save stores a customer with circuit breaker protection.
func (r *CustomerRepositoryWithCircuitBreaker) Save(ctx context.Context, customer *model.Customer) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Save(ctx, customer)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CustomerRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// CartRepositoryWithCircuitBreaker wraps a cart repository with circuit breaker protection.
type CartRepositoryWithCircuitBreaker struct {
	repo           CartRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCartRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewCartRepositoryWithCircuitBreaker(repo CartRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *CartRepositoryWithCircuitBreaker {
	return &CartRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// FindCart finds a cart with circuit breaker protection.
func (r *CartRepositoryWithCircuitBreaker) FindCart(ctx context.Context, cartID string) (*model.Cart, error) {
	return execute(ctx, r.circuitBreaker, func() (*model.Cart, error) {
		return r.repo.FindCart(ctx, cartID)
	})
}

// Save stores a cart with circuit breaker protection.
func (r *CartRepositoryWithCircuitBreaker) Save(ctx context.Context, cart *model.Cart) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Save(ctx, cart)
	})
}

// ListByCustomer lists carts with circuit breaker protection.
func (r *CartRepositoryWithCircuitBreaker) ListByCustomer(ctx context.Context, customerID string, limit int) ([]*model.Cart, error) {
	return execute(ctx, r.circuitBreaker, func() ([]*model.Cart, error) {
		return r.repo.ListByCustomer(ctx, customerID, limit)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CartRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// StockRepositoryWithCircuitBreaker wraps a stock repository with circuit breaker protection.
type StockRepositoryWithCircuitBreaker struct {
	repo           StockRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewStockRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewStockRepositoryWithCircuitBreaker(repo StockRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *StockRepositoryWithCircuitBreaker {
	return &StockRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// SetAvailable sets a stock level with circuit breaker protection.
func (r *StockRepositoryWithCircuitBreaker) SetAvailable(ctx context.Context, productID string, available int64) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.SetAvailable(ctx, productID, available)
	})
}

// Available reads a stock level with circuit breaker protection.
func (r *StockRepositoryWithCircuitBreaker) Available(ctx context.Context, productID string) (int64, bool, error) {
	var (
		available int64
		found     bool
	)
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		available, found, cbErr = r.repo.Available(ctx, productID)
		return cbErr
	})
	return available, found, err
}

// HasStock checks stock levels with circuit breaker protection.
func (r *StockRepositoryWithCircuitBreaker) HasStock(ctx context.Context, productIDs []string, quantities []int64) (bool, error) {
	return execute(ctx, r.circuitBreaker, func() (bool, error) {
		return r.repo.HasStock(ctx, productIDs, quantities)
	})
}

// Decrement removes stock with circuit breaker protection.
func (r *StockRepositoryWithCircuitBreaker) Decrement(ctx context.Context, productIDs []string, quantities []int64) (bool, error) {
	return execute(ctx, r.circuitBreaker, func() (bool, error) {
		return r.repo.Decrement(ctx, productIDs, quantities)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *StockRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// CheckoutRepositoryWithCircuitBreaker wraps a checkout repository with circuit breaker protection.
type CheckoutRepositoryWithCircuitBreaker struct {
	repo           CheckoutRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCheckoutRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewCheckoutRepositoryWithCircuitBreaker(repo CheckoutRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *CheckoutRepositoryWithCircuitBreaker {
	return &CheckoutRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// Record stores a checkout attempt with circuit breaker protection.
// If the circuit is open the record is dropped; auditing never blocks a checkout.
func (r *CheckoutRepositoryWithCircuitBreaker) Record(ctx context.Context, record *model.CheckoutRecord) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Record(ctx, record)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		log.Warn().
			Str("cart_id", record.CartID).
			Str("state", string(record.State)).
			Str("compensation", string(record.Compensation)).
			Msg("Checkout audit record dropped: circuit open")
		return nil
	}
	return err
}

// ListByCart lists attempts with circuit breaker protection.
func (r *CheckoutRepositoryWithCircuitBreaker) ListByCart(ctx context.Context, cartID string, limit int) ([]*model.CheckoutRecord, error) {
	return execute(ctx, r.circuitBreaker, func() ([]*model.CheckoutRecord, error) {
		return r.repo.ListByCart(ctx, cartID, limit)
	})
}

// ListPendingReconciliation lists failed or unknown compensations with circuit breaker protection.
func (r *CheckoutRepositoryWithCircuitBreaker) ListPendingReconciliation(ctx context.Context, limit int) ([]*model.CheckoutRecord, error) {
	return execute(ctx, r.circuitBreaker, func() ([]*model.CheckoutRecord, error) {
		return r.repo.ListPendingReconciliation(ctx, limit)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CheckoutRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
