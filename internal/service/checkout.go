package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/metrics"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	stepResolveCustomer   = "resolve_customer"
	stepResolveCart       = "resolve_cart"
	stepCheckAvailability = "check_availability"
	stepPrice             = "price"
	stepAuthorizePayment  = "authorize_payment"
	stepDecrementStock    = "decrement_stock"

	checkoutSuccessMessage = "Checkout completed successfully"
)

// CustomerLookup resolves customers. A missing customer is (nil, nil).
type CustomerLookup interface {
	FindCustomer(ctx context.Context, customerID string) (*model.Customer, error)
}

// CartLookup resolves carts. A missing cart is (nil, nil).
type CartLookup interface {
	FindCart(ctx context.Context, cartID string) (*model.Cart, error)
}

// InventoryGateway is the stock system. productIDs and quantities are aligned by index.
type InventoryGateway interface {
	CheckAvailability(ctx context.Context, productIDs []string, quantities []int64) (model.Availability, error)
	DecrementStock(ctx context.Context, productIDs []string, quantities []int64) (model.StockDecrement, error)
}

// PaymentGateway is the payment provider.
type PaymentGateway interface {
	AuthorizePayment(ctx context.Context, customerID string, amount decimal.Decimal) (model.PaymentAuthorization, error)
	CancelPayment(ctx context.Context, customerID, transactionID string) error
}

// CheckoutRecorder persists the audit trail of checkout attempts.
type CheckoutRecorder interface {
	Record(ctx context.Context, record *model.CheckoutRecord) error
}

// CheckoutService runs the checkout transaction for a stored cart.
type CheckoutService interface {
	Checkout(ctx context.Context, cartID, customerID string) (model.CheckoutResult, error)
}

// CheckoutOption configures a CheckoutServiceImpl.
type CheckoutOption func(*CheckoutServiceImpl)

// WithCheckoutRecorder enables persisting an audit record per attempt.
func WithCheckoutRecorder(r CheckoutRecorder) CheckoutOption {
	return func(s *CheckoutServiceImpl) {
		s.recorder = r
	}
}

// WithClock overrides the time source used for audit records.
func WithClock(now func() time.Time) CheckoutOption {
	return func(s *CheckoutServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

// CheckoutServiceImpl implements CheckoutService.
type CheckoutServiceImpl struct {
	customers CustomerLookup
	carts     CartLookup
	pricing   PricingEngine
	inventory InventoryGateway
	payments  PaymentGateway
	recorder  CheckoutRecorder
	now       func() time.Time
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	customers CustomerLookup,
	carts CartLookup,
	pricing PricingEngine,
	inventory InventoryGateway,
	payments PaymentGateway,
	opts ...CheckoutOption,
) CheckoutService {
	s := &CheckoutServiceImpl{
		customers: customers,
		carts:     carts,
		pricing:   pricing,
		inventory: inventory,
		payments:  payments,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// checkoutRun holds the state of a single attempt.
type checkoutRun struct {
	cart     *model.Cart
	customer *model.Customer
	amount   decimal.Decimal
	txID     string
	record   model.CheckoutRecord
}

// Checkout implements CheckoutService.
func (s *CheckoutServiceImpl) Checkout(ctx context.Context, cartID, customerID string) (model.CheckoutResult, error) {
	start := time.Now()
	run := &checkoutRun{
		record: model.CheckoutRecord{
			CartID:     cartID,
			CustomerID: customerID,
			State:      model.StateStart,
			RequestID:  RequestIDFromContext(ctx),
			StartedAt:  s.now(),
		},
	}

	result, err := s.checkout(ctx, run)

	outcome := "success"
	if err != nil {
		outcome = ErrorKind(err)
	}
	metrics.RecordCheckout(time.Since(start), outcome)
	s.record(ctx, run, err)

	return result, err
}

func (s *CheckoutServiceImpl) checkout(ctx context.Context, run *checkoutRun) (model.CheckoutResult, error) {
	logger := log.With().
		Str("request_id", run.record.RequestID).
		Str("cart_id", run.record.CartID).
		Str("customer_id", run.record.CustomerID).
		Logger()

	if err := s.resolve(ctx, run); err != nil {
		return model.CheckoutResult{}, err
	}

	productIDs := run.cart.ProductIDs()
	quantities := run.cart.Quantities()

	steps := []sagaStep{
		{
			name: stepCheckAvailability,
			action: func(ctx context.Context) error {
				availability, err := s.inventory.CheckAvailability(ctx, productIDs, quantities)
				if err != nil {
					return &CheckoutError{Kind: ErrUnavailable, Step: stepCheckAvailability, Err: err}
				}
				if !availability.Available {
					return &CheckoutError{Kind: ErrUnavailable, Step: stepCheckAvailability}
				}
				run.record.State = model.StateAvailabilityChecked
				return nil
			},
		},
		{
			name: stepPrice,
			action: func(context.Context) error {
				start := time.Now()
				amount, err := s.pricing.ComputeTotal(run.cart, run.customer.Region, run.customer.Tier)
				observePricing(start, err)
				if err != nil {
					return err
				}
				run.amount = amount
				run.record.Amount = &amount
				run.record.State = model.StatePriced
				return nil
			},
		},
		{
			name: stepAuthorizePayment,
			action: func(ctx context.Context) error {
				auth, err := s.payments.AuthorizePayment(ctx, run.customer.ID, run.amount)
				if err != nil {
					if errors.Is(err, ErrPaymentOutcomeUnknown) {
						s.flagUnknownPayment(run, err)
					}
					return &CheckoutError{Kind: ErrPaymentDeclined, Step: stepAuthorizePayment, Err: err}
				}
				if !auth.Authorized {
					return &CheckoutError{Kind: ErrPaymentDeclined, Step: stepAuthorizePayment}
				}
				run.txID = auth.TransactionID
				run.record.TransactionID = auth.TransactionID
				run.record.State = model.StatePaymentAuthorized
				return nil
			},
			compensate: func(ctx context.Context) error {
				if err := s.payments.CancelPayment(ctx, run.customer.ID, run.txID); err != nil {
					return fmt.Errorf("cancel payment %s: %w", run.txID, err)
				}
				run.record.State = model.StatePaymentCancelled
				return nil
			},
		},
		{
			name: stepDecrementStock,
			action: func(ctx context.Context) error {
				dec, err := s.inventory.DecrementStock(ctx, productIDs, quantities)
				if err != nil {
					return &CheckoutError{Kind: ErrStockDecrement, Step: stepDecrementStock, Err: err}
				}
				if !dec.Success {
					return &CheckoutError{Kind: ErrStockDecrement, Step: stepDecrementStock}
				}
				run.record.State = model.StateStockDecremented
				return nil
			},
		},
	}

	res := runSaga(ctx, steps)
	if res.err != nil {
		s.handleCompensation(run, res)
		logger.Warn().
			Err(res.err).
			Str("step", res.failedStep).
			Str("transaction_id", run.txID).
			Msg("Checkout failed")
		return model.CheckoutResult{}, res.err
	}

	logger.Info().
		Str("transaction_id", run.txID).
		Str("amount", run.amount.StringFixed(2)).
		Msg("Checkout completed")

	return model.CheckoutResult{
		Success:       true,
		TransactionID: run.txID,
		Message:       checkoutSuccessMessage,
		Amount:        run.amount,
	}, nil
}

// resolve loads the customer and the cart, which must belong to the customer.
func (s *CheckoutServiceImpl) resolve(ctx context.Context, run *checkoutRun) error {
	customer, err := s.customers.FindCustomer(ctx, run.record.CustomerID)
	if err != nil {
		return fmt.Errorf("%s: %w", stepResolveCustomer, err)
	}
	if customer == nil {
		return &CheckoutError{Kind: ErrNotFound, Step: stepResolveCustomer, Err: fmt.Errorf("customer %q", run.record.CustomerID)}
	}

	cart, err := s.carts.FindCart(ctx, run.record.CartID)
	if err != nil {
		return fmt.Errorf("%s: %w", stepResolveCart, err)
	}
	if cart == nil || cart.CustomerID != customer.ID {
		return &CheckoutError{Kind: ErrNotFound, Step: stepResolveCart, Err: fmt.Errorf("cart %q", run.record.CartID)}
	}

	run.customer = customer
	run.cart = cart
	return nil
}

// flagUnknownPayment reports an authorization that may have succeeded without
// a transaction id to cancel. It goes to the same channels as a failed cancellation.
func (s *CheckoutServiceImpl) flagUnknownPayment(run *checkoutRun, err error) {
	metrics.RecordCompensation("unknown")
	run.record.Compensation = model.CompensationUnknown
	run.record.CompensationError = err.Error()
	log.Error().
		Str("cart_id", run.record.CartID).
		Str("customer_id", run.record.CustomerID).
		Str("amount", run.amount.StringFixed(2)).
		Err(err).
		Msg("Payment authorization outcome unknown; manual reconciliation required")
}

// handleCompensation reflects undo outcomes on the error and the audit record.
// A failed cancellation is surfaced through logs, metrics and the audit record;
// the error kind returned to the caller stays the one of the failed step.
func (s *CheckoutServiceImpl) handleCompensation(run *checkoutRun, res sagaResult) {
	if len(res.compensated) == 0 && len(res.failures) == 0 {
		return
	}

	if len(res.failures) > 0 {
		metrics.RecordCompensation("failure")
		run.record.Compensation = model.CompensationFailed
		run.record.CompensationError = joinFailures(res.failures).Error()
		log.Error().
			Str("cart_id", run.record.CartID).
			Str("customer_id", run.record.CustomerID).
			Str("transaction_id", run.txID).
			Str("compensation_error", run.record.CompensationError).
			Msg("Payment authorization could not be cancelled; manual reconciliation required")
		return
	}

	metrics.RecordCompensation("success")
	run.record.Compensation = model.CompensationSucceeded
	var ce *CheckoutError
	if errors.As(res.err, &ce) {
		ce.Compensated = true
	}
}

// record persists the audit trail. State keeps the last stage reached.
// Failures to persist are logged only.
func (s *CheckoutServiceImpl) record(ctx context.Context, run *checkoutRun, err error) {
	if s.recorder == nil {
		return
	}
	if err != nil {
		run.record.ErrorKind = ErrorKind(err)
		run.record.ErrorMessage = err.Error()
	}
	run.record.FinishedAt = s.now()

	if recErr := s.recorder.Record(context.WithoutCancel(ctx), &run.record); recErr != nil {
		log.Warn().Err(recErr).Str("cart_id", run.record.CartID).Msg("Failed to record checkout attempt")
	}
}
