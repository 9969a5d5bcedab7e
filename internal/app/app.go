// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/checkout-service/config"
	"github.com/guttosm/checkout-service/internal/http"
	"github.com/rs/zerolog/log"
)

// Application is the wired service: its router and the resources to release
// on shutdown.
type Application struct {
	Router   *gin.Engine
	services *ServiceComponents
	db       *DatabaseComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *Application {
	InitializeLogger(cfg.Log)

	dbComponents := InitializeDatabase(cfg.Database)
	serviceComponents := InitializeServices(cfg, dbComponents)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	log.Info().
		Bool("stored_carts", serviceComponents.StoredCarts).
		Bool("checkout", serviceComponents.Checkout != nil).
		Bool("customer_tokens", serviceComponents.Tokens != nil).
		Bool("api_keys", cfg.Auth.Enabled).
		Msg("Application initialized")

	return &Application{
		Router:   http.NewRouter(routerComponents.HealthHandler, routerComponents.Config),
		services: serviceComponents,
		db:       dbComponents,
	}
}

// Close releases caches and the database connection.
func (a *Application) Close(ctx context.Context) error {
	a.services.Stop()
	if a.db == nil {
		return nil
	}
	return a.db.Close(ctx)
}
