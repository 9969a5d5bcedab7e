package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Availability is the inventory answer to an availability check.
type Availability struct {
	Available bool `json:"available"`
}

// StockDecrement is the inventory answer to a stock decrement.
type StockDecrement struct {
	Success bool `json:"success"`
}

// PaymentAuthorization is the payment provider answer to an authorization request.
type PaymentAuthorization struct {
	Authorized    bool   `json:"authorized"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// CheckoutResult is returned by a successful checkout.
type CheckoutResult struct {
	Success       bool            `json:"success"`
	TransactionID string          `json:"transaction_id"`
	Message       string          `json:"message"`
	Amount        decimal.Decimal `json:"amount"`
}

// CheckoutState is a stage reached by a checkout attempt.
type CheckoutState string

const (
	StateStart               CheckoutState = "START"
	StateAvailabilityChecked CheckoutState = "AVAILABILITY_CHECKED"
	StatePriced              CheckoutState = "PRICED"
	StatePaymentAuthorized   CheckoutState = "PAYMENT_AUTHORIZED"
	StateStockDecremented    CheckoutState = "STOCK_DECREMENTED"
	StatePaymentCancelled    CheckoutState = "PAYMENT_CANCELLED"
)

// CompensationOutcome describes what happened to the compensating action of a checkout.
type CompensationOutcome string

const (
	CompensationNone      CompensationOutcome = ""
	CompensationSucceeded CompensationOutcome = "succeeded"
	CompensationFailed    CompensationOutcome = "failed"
	// CompensationUnknown means the payment may have been authorized but no
	// transaction id is known to cancel it.
	CompensationUnknown CompensationOutcome = "unknown"
)

// CheckoutRecord is the audit trail of a single checkout attempt.
type CheckoutRecord struct {
	CartID            string              `json:"cart_id"`
	CustomerID        string              `json:"customer_id"`
	State             CheckoutState       `json:"state"`
	Amount            *decimal.Decimal    `json:"amount,omitempty"`
	TransactionID     string              `json:"transaction_id,omitempty"`
	ErrorKind         string              `json:"error_kind,omitempty"`
	ErrorMessage      string              `json:"error_message,omitempty"`
	Compensation      CompensationOutcome `json:"compensation,omitempty"`
	CompensationError string              `json:"compensation_error,omitempty"`
	RequestID         string              `json:"request_id,omitempty"`
	StartedAt         time.Time           `json:"started_at"`
	FinishedAt        time.Time           `json:"finished_at"`
}

// Succeeded reports whether the checkout reached the final state.
func (r CheckoutRecord) Succeeded() bool {
	return r.State == StateStockDecremented
}
