package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/checkout-service/internal/domain/dto"
	"github.com/guttosm/checkout-service/internal/i18n"
	"github.com/guttosm/checkout-service/internal/middleware"
	"github.com/guttosm/checkout-service/internal/service"
)

// CheckoutHandler runs checkouts of stored carts.
type CheckoutHandler struct {
	checkout service.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkout service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// Checkout handles POST /api/checkout requests.
//
// @Summary      Check out a stored cart
// @Description  Checks availability, prices the cart, authorizes the payment and decrements stock. When the stock decrement fails the payment authorization is cancelled. Supports idempotency via Idempotency-Key header.
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        Authorization header string false "Bearer customer token (required if configured)"
// @Param        request body dto.CheckoutRequest true "Cart and customer"
// @Success      200 {object} dto.SuccessResponse{data=dto.CheckoutResponse} "Checkout completed"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or cart"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid credentials"
// @Failure      402 {object} dto.ErrorResponse "Payment declined"
// @Failure      403 {object} dto.ErrorResponse "Token belongs to another customer"
// @Failure      404 {object} dto.ErrorResponse "Customer or cart not found"
// @Failure      409 {object} dto.ErrorResponse "Items unavailable or stock decrement failed"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Dependency unavailable"
// @Failure      504 {object} dto.ErrorResponse "Request timed out"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CheckoutRequest](c)
	if err != nil {
		var ve *dto.ValidationError
		if errors.As(err, &ve) {
			builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest,
				map[string]string{"field": ve.Field, "reason": ve.Message}, nil)
			return
		}
		writeBindError(c, err)
		return
	}

	if !middleware.CanActFor(c, req.CustomerID) {
		builder.Error(http.StatusForbidden, i18n.ErrKeyCustomerMismatch, nil)
		return
	}

	ctx := service.ContextWithRequestID(c.Request.Context(), middleware.GetRequestID(c))
	result, err := h.checkout.Checkout(ctx, req.CartID, req.CustomerID)
	if err != nil {
		writeServiceError(builder, err)
		return
	}

	resp := dto.NewCheckoutResponse(result)
	resp.Message = i18n.GetTranslator().Translate(i18n.SuccessKeyCheckoutCompleted, i18n.GetLocale(c))
	builder.SuccessOK(resp)
}
