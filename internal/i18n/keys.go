// Package i18n provides internationalization support for the checkout service.
package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyForbidden          = "error.forbidden"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyInvalidToken       = "error.invalid_token"
	ErrKeyTokenRequired      = "error.token_required"
	ErrKeyTimeout            = "error.timeout"
	ErrKeyServiceUnavailable = "error.service_unavailable"

	// ErrKeyValidationCart reports a cart, region or tier rejected by pricing.
	ErrKeyValidationCart = "error.validation.cart"
	// ErrKeyCustomerMismatch reports a token whose customer differs from the request.
	ErrKeyCustomerMismatch   = "error.customer_mismatch"
	ErrKeyCustomerNotFound   = "error.customer_not_found"
	ErrKeyCartNotFound       = "error.cart_not_found"
	ErrKeyItemsUnavailable   = "error.items_unavailable"
	ErrKeyPaymentDeclined    = "error.payment_declined"
	ErrKeyStockDecrement     = "error.stock_decrement"
	ErrKeyStockUncompensated = "error.stock_decrement_uncompensated"
)

// Success message translation keys.
const (
	SuccessKeyCheckoutCompleted = "success.checkout_completed"
)
