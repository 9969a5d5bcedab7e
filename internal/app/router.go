// Package app provides router configuration.
package app

import (
	"github.com/guttosm/checkout-service/config"
	"github.com/guttosm/checkout-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes the health handler and router configuration.
// db may be nil.
func InitializeRouter(services *ServiceComponents, db *DatabaseComponents, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	if db != nil {
		healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(db.DB.HealthCheck))
		for name, cb := range db.CircuitBreakers() {
			healthHandler.RegisterCircuitBreaker(name, cb)
		}
	}
	if services.Payments != nil {
		healthHandler.RegisterCircuitBreaker("payment_provider", services.Payments.GetCircuitBreaker())
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		IdempotencyTTL:    cfg.Server.IdempotencyTTL,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		Quotes:            services.Quotes,
		Checkout:          services.Checkout,
		Tokens:            services.Tokens,
		StoredCarts:       services.StoredCarts,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
