package dto

import (
	"net/http"
	"time"
)

// Error codes carried in ErrorResponse.Error.
const (
	ErrCodeInvalidRequest  = "invalid_request"
	ErrCodeInternal        = "internal_error"
	ErrCodeUnauthorized    = "unauthorized"
	ErrCodeForbidden       = "forbidden"
	ErrCodeNotFound        = "not_found"
	ErrCodeRateLimit       = "rate_limit_exceeded"
	ErrCodeConflict        = "conflict"
	ErrCodeTimeout         = "timeout"
	ErrCodePaymentDeclined = "payment_declined"
	ErrCodeUnavailable     = "service_unavailable"
)

var statusErrCodes = map[int]string{
	http.StatusBadRequest:          ErrCodeInvalidRequest,
	http.StatusUnprocessableEntity: ErrCodeInvalidRequest,
	http.StatusUnauthorized:        ErrCodeUnauthorized,
	http.StatusPaymentRequired:     ErrCodePaymentDeclined,
	http.StatusForbidden:           ErrCodeForbidden,
	http.StatusNotFound:            ErrCodeNotFound,
	http.StatusConflict:            ErrCodeConflict,
	http.StatusTooManyRequests:     ErrCodeRateLimit,
	http.StatusRequestTimeout:      ErrCodeTimeout,
	http.StatusGatewayTimeout:      ErrCodeTimeout,
	http.StatusServiceUnavailable:  ErrCodeUnavailable,
}

// SuccessResponse is the envelope of every 2xx body.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data is a QuoteResponse or a CheckoutResponse.
	Data      interface{} `json:"data" swaggertype:"object"`
	RequestID string      `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time   `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse is the envelope of every error body.
// Checkout failures put the failure kind under Details["kind"].
// @Description Standardized error response
type ErrorResponse struct {
	Error     string            `json:"error" example:"payment_declined"`
	Message   string            `json:"message,omitempty" example:"Payment was not authorized"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates an ErrorResponse stamped with the current time.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Error: code, Message: message, Timestamp: time.Now()}
}

// WithRequestID returns a copy of e tagged with requestID.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus maps an HTTP status to its error code.
// Unlisted statuses are internal errors.
func ErrCodeFromStatus(status int) string {
	if code, ok := statusErrCodes[status]; ok {
		return code
	}
	return ErrCodeInternal
}
