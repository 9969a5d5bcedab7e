package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// QuoteRoutes registers the quote endpoints.
type QuoteRoutes struct {
	handler *QuoteHandler
}

// NewQuoteRoutes creates a new QuoteRoutes instance.
func NewQuoteRoutes(handler *QuoteHandler) *QuoteRoutes {
	return &QuoteRoutes{handler: handler}
}

// RegisterRoutes registers POST /quotes and, when stored carts are
// available, the stored cart quote behind the customer middleware.
func (r *QuoteRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.POST("/quotes", r.handler.CreateQuote)

	if !cfg.StoredCarts {
		return
	}
	handlers := append(cfg.customerMiddleware(), r.handler.QuoteStoredCart)
	rg.GET("/customers/:customerId/carts/:cartId/quote", handlers...)
}

// CheckoutRoutes registers the checkout endpoint.
type CheckoutRoutes struct {
	handler *CheckoutHandler
}

// NewCheckoutRoutes creates a new CheckoutRoutes instance.
func NewCheckoutRoutes(handler *CheckoutHandler) *CheckoutRoutes {
	return &CheckoutRoutes{handler: handler}
}

// RegisterRoutes registers POST /checkout. Idempotency runs after customer
// authentication so the replay key includes the authenticated customer.
func (r *CheckoutRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	handlers := cfg.customerMiddleware()
	if cfg.idempotency != nil {
		handlers = append(handlers, cfg.idempotency)
	}
	handlers = append(handlers, r.handler.Checkout)
	rg.POST("/checkout", handlers...)
}
