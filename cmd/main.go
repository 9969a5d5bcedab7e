// Package main is the entry point for the checkout-service application.
//
// @title           Checkout Service API
// @version         1.0.0
// @description     Prices shopping carts and runs checkouts of stored carts.
//
//	Quotes apply category and value discounts, dimensional-weight freight,
//	regional and tier factors. A checkout checks stock, authorizes the
//	payment and decrements stock, cancelling the payment when stock fails.
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/checkout-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Customer token as "Bearer <token>". Required on customer routes when JWT_SECRET_KEY is set.
//
// @tag.name        Quotes
// @tag.description Cart pricing
//
// @tag.name        Checkout
// @tag.description Checkout of stored carts
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"os"

	_ "github.com/guttosm/checkout-service/docs" // swagger docs

	"github.com/guttosm/checkout-service/config"
	"github.com/guttosm/checkout-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("Invalid configuration")
		os.Exit(1)
	}

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server.Port,
		app.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
		app.WithShutdownHook(application.Close),
	)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
