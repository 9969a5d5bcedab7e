package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/checkout-service/internal/domain/dto"
	"github.com/guttosm/checkout-service/internal/i18n"
	"github.com/guttosm/checkout-service/internal/middleware"
	"github.com/guttosm/checkout-service/internal/service"
)

// QuoteHandler serves price quotes.
type QuoteHandler struct {
	quotes service.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(quotes service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

// CreateQuote handles POST /api/quotes requests.
//
// @Summary      Quote an ad-hoc cart
// @Description  Prices the given items for a region and customer tier: subtotal, category and value discounts, shipping and total. Nothing is persisted and no external system is contacted.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        request body dto.QuoteRequest true "Cart to price"
// @Success      200 {object} dto.SuccessResponse{data=dto.QuoteResponse} "Price breakdown"
// @Failure      400 {object} dto.ErrorResponse "Invalid cart, region or tier"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	req, err := BuildRequest[dto.QuoteRequest](c)
	if err != nil {
		writeBindError(c, err)
		return
	}

	builder := NewResponseBuilder(c)
	quote, err := h.quotes.Quote(req.Cart(), req.RegionValue(), req.TierValue())
	if err != nil {
		writeServiceError(builder, err)
		return
	}

	builder.SuccessOK(dto.NewQuoteResponse(quote))
}

// QuoteStoredCart handles GET /api/customers/{customerId}/carts/{cartId}/quote requests.
//
// @Summary      Quote a stored cart
// @Description  Prices a stored cart with its owner's region and tier. The cart must belong to the customer.
// @Tags         Quotes
// @Produce      json
// @Param        customerId path string true "Customer ID"
// @Param        cartId path string true "Cart ID"
// @Param        Authorization header string false "Bearer customer token (required if configured)"
// @Success      200 {object} dto.SuccessResponse{data=dto.QuoteResponse} "Price breakdown"
// @Failure      400 {object} dto.ErrorResponse "Cart cannot be priced"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid credentials"
// @Failure      403 {object} dto.ErrorResponse "Token belongs to another customer"
// @Failure      404 {object} dto.ErrorResponse "Customer or cart not found"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/customers/{customerId}/carts/{cartId}/quote [get]
func (h *QuoteHandler) QuoteStoredCart(c *gin.Context) {
	builder := NewResponseBuilder(c)
	customerID := c.Param("customerId")
	if !middleware.CanActFor(c, customerID) {
		builder.Error(http.StatusForbidden, i18n.ErrKeyCustomerMismatch, nil)
		return
	}

	quote, err := h.quotes.QuoteStoredCart(c.Request.Context(), c.Param("cartId"), customerID)
	if err != nil {
		writeServiceError(builder, err)
		return
	}

	builder.SuccessOK(dto.NewQuoteResponse(quote))
}
