// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/checkout-service/config"
	"github.com/guttosm/checkout-service/internal/circuitbreaker"
	"github.com/guttosm/checkout-service/internal/repository"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components. Every repository is
// guarded by its own circuit breaker.
type DatabaseComponents struct {
	DB        *repository.MongoDB
	Customers *repository.CustomerRepositoryWithCircuitBreaker
	Carts     *repository.CartRepositoryWithCircuitBreaker
	Stock     *repository.StockRepositoryWithCircuitBreaker
	Checkouts *repository.CheckoutRepositoryWithCircuitBreaker
}

// CircuitBreakers returns the repository breakers keyed by health check name.
func (d *DatabaseComponents) CircuitBreakers() map[string]*circuitbreaker.CircuitBreaker {
	return map[string]*circuitbreaker.CircuitBreaker{
		"mongodb_customers": d.Customers.GetCircuitBreaker(),
		"mongodb_carts":     d.Carts.GetCircuitBreaker(),
		"mongodb_stock":     d.Stock.GetCircuitBreaker(),
		"mongodb_checkouts": d.Checkouts.GetCircuitBreaker(),
	}
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	return d.DB.Close(ctx)
}

// InitializeDatabase connects to MongoDB and creates the repositories.
// Returns nil if the database is disabled or the connection fails; the
// service then only serves ad-hoc quotes.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	if cfg.CheckoutsTTL > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		ttlDays := int(cfg.CheckoutsTTL.Hours() / 24)
		if err := db.SetCheckoutsTTL(ctx, ttlDays); err != nil {
			log.Warn().Err(err).Msg("Failed to set checkouts TTL index (may already exist)")
		}
		cancel()
	}

	return newDatabaseComponents(db, cfg)
}

func newDatabaseComponents(db *repository.MongoDB, cfg config.DatabaseConfig) *DatabaseComponents {
	return &DatabaseComponents{
		DB:        db,
		Customers: repository.NewCustomerRepositoryWithCircuitBreaker(repository.NewCustomerRepository(db), newBreaker(cfg, "mongodb-customers")),
		Carts:     repository.NewCartRepositoryWithCircuitBreaker(repository.NewCartRepository(db), newBreaker(cfg, "mongodb-carts")),
		Stock:     repository.NewStockRepositoryWithCircuitBreaker(repository.NewStockRepository(db), newBreaker(cfg, "mongodb-stock")),
		Checkouts: repository.NewCheckoutRepositoryWithCircuitBreaker(repository.NewCheckoutRepository(db), newBreaker(cfg, "mongodb-checkouts")),
	}
}

func newBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
	})
}
