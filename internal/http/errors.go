package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/checkout-service/internal/circuitbreaker"
	"github.com/guttosm/checkout-service/internal/i18n"
	"github.com/guttosm/checkout-service/internal/service"
)

// writeServiceError maps a quote or checkout error to its HTTP response.
// Every response carries the error kind in details["kind"].
func writeServiceError(builder *ResponseBuilder, err error) {
	details := map[string]string{"kind": service.ErrorKind(err)}

	var ce *service.CheckoutError
	isCheckoutErr := errors.As(err, &ce)

	switch {
	case errors.Is(err, service.ErrValidation):
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			details["field"] = ve.Field
			details["reason"] = ve.Message
		}
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyValidationCart, details, nil)

	case errors.Is(err, service.ErrNotFound):
		key := i18n.ErrKeyCartNotFound
		if service.IsCustomerNotFound(err) {
			key = i18n.ErrKeyCustomerNotFound
		}
		builder.ErrorWithDetails(http.StatusNotFound, key, details, nil)

	case errors.Is(err, service.ErrUnavailable):
		builder.ErrorWithDetails(http.StatusConflict, i18n.ErrKeyItemsUnavailable, details, err)

	case errors.Is(err, service.ErrPaymentDeclined):
		builder.ErrorWithDetails(http.StatusPaymentRequired, i18n.ErrKeyPaymentDeclined, details, nil)

	case errors.Is(err, service.ErrStockDecrement):
		compensated := isCheckoutErr && ce.Compensated
		details["compensated"] = strconv.FormatBool(compensated)
		key := i18n.ErrKeyStockDecrement
		if !compensated {
			key = i18n.ErrKeyStockUncompensated
		}
		builder.ErrorWithDetails(http.StatusConflict, key, details, err)

	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		builder.ErrorWithDetails(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, details, err)

	case errors.Is(err, context.DeadlineExceeded):
		builder.ErrorWithDetails(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, details, err)

	default:
		builder.ErrorWithDetails(http.StatusInternalServerError, i18n.ErrKeyInternalError, details, err)
	}
}

// writeBindError reports a malformed request body.
func writeBindError(c *gin.Context, err error) {
	NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
}
