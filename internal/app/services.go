// Package app provides service initialization.
package app

import (
	"github.com/guttosm/checkout-service/config"
	"github.com/guttosm/checkout-service/internal/cache"
	"github.com/guttosm/checkout-service/internal/circuitbreaker"
	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/gateway"
	"github.com/guttosm/checkout-service/internal/service"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Pricing service.PricingEngine
	Quotes  service.QuoteService
	// Checkout is nil unless both MongoDB and a payment provider are configured.
	Checkout service.CheckoutService
	// Tokens is nil unless a JWT secret is configured.
	Tokens   service.TokenService
	Payments *gateway.HTTPPaymentClient

	// StoredCarts is true when customers and carts are read from MongoDB.
	StoredCarts bool

	customerCache cache.Cache[string, model.Customer]
}

// Stop releases background resources held by the services.
func (s *ServiceComponents) Stop() {
	if s.customerCache != nil {
		s.customerCache.Stop()
	}
}

// InitializeServices initializes business logic services. db may be nil.
func InitializeServices(cfg config.Config, db *DatabaseComponents) *ServiceComponents {
	pricing := service.NewPricingEngine()
	components := &ServiceComponents{Pricing: pricing}

	if cfg.Auth.JWTSecretKey != "" {
		components.Tokens = service.NewTokenService(service.TokenConfig{
			SecretKey: cfg.Auth.JWTSecretKey,
			TTL:       cfg.Auth.TokenTTL,
		})
	}

	if db == nil {
		components.Quotes = service.NewQuoteService(pricing, nil, nil)
		return components
	}

	var customers service.CustomerLookup = db.Customers
	if cfg.Cache.CustomerSize > 0 {
		components.customerCache = cache.NewTTLCache[string, model.Customer]("customers", cfg.Cache.CustomerSize, cfg.Cache.CustomerTTL)
		customers = service.NewCachedCustomerLookup(db.Customers, components.customerCache)
	}
	components.StoredCarts = true
	components.Quotes = service.NewQuoteService(pricing, customers, db.Carts)

	if !cfg.Payment.Enabled() {
		log.Warn().Msg("Payment provider not configured - checkout disabled")
		return components
	}

	components.Payments = gateway.NewHTTPPaymentClient(
		gateway.PaymentClientConfig{
			BaseURL: cfg.Payment.BaseURL,
			APIKey:  cfg.Payment.APIKey,
			Timeout: cfg.Payment.Timeout,
		},
		gateway.WithCircuitBreaker(circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: cfg.Database.CircuitBreakerFailureThreshold,
			SuccessThreshold: cfg.Database.CircuitBreakerSuccessThreshold,
			Timeout:          cfg.Database.CircuitBreakerTimeout,
			Name:             "payment-provider",
		})),
	)

	components.Checkout = service.NewCheckoutService(
		customers,
		db.Carts,
		pricing,
		gateway.NewStockInventory(db.Stock),
		components.Payments,
		service.WithCheckoutRecorder(db.Checkouts),
	)

	return components
}
