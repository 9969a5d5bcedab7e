package service

import (
	"errors"
	"fmt"
)

// Checkout error kinds. Use errors.Is to classify a returned error.
var (
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrUnavailable     = errors.New("items unavailable")
	ErrPaymentDeclined = errors.New("payment declined")
	ErrStockDecrement  = errors.New("stock decrement failed")
)

// ErrPaymentOutcomeUnknown marks a payment provider answer that may hide a
// successful authorization, such as a 2xx with an unreadable body. Checkout
// still fails as a decline but flags the attempt for manual reconciliation.
var ErrPaymentOutcomeUnknown = errors.New("payment outcome unknown")

// ValidationError reports the first invalid field found in a pricing input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Is makes every ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// CheckoutError is a failure of one checkout step, classified by Kind.
type CheckoutError struct {
	Kind error
	Step string
	// Err is the underlying cause, nil when the collaborator answered negatively.
	Err error
	// Compensated is true when a compensating action ran to completion.
	Compensated bool
}

func (e *CheckoutError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Step, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Step, e.Kind)
}

// Is matches the error kind.
func (e *CheckoutError) Is(target error) bool {
	return target == e.Kind
}

func (e *CheckoutError) Unwrap() error {
	return e.Err
}

// ErrorKind returns a stable name for the kind of err, or "internal".
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	case errors.Is(err, ErrPaymentDeclined):
		return "payment_declined"
	case errors.Is(err, ErrStockDecrement):
		return "stock_decrement"
	default:
		return "internal"
	}
}

// IsCustomerNotFound reports whether err is a not-found failure of the
// customer lookup, as opposed to a missing cart.
func IsCustomerNotFound(err error) bool {
	var ce *CheckoutError
	return errors.As(err, &ce) && ce.Kind == ErrNotFound && ce.Step == stepResolveCustomer
}
