//go:build integration

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/checkout-service/config"
	"github.com/guttosm/checkout-service/internal/testutil"
)

func integrationDatabaseConfig(t *testing.T) config.DatabaseConfig {
	uri, name := testutil.MongoTarget(t)
	return config.DatabaseConfig{
		URI:                            uri,
		DatabaseName:                   name,
		CheckoutsTTL:                   30 * 24 * time.Hour,
		Enabled:                        true,
		CircuitBreakerFailureThreshold: 5,
		CircuitBreakerSuccessThreshold: 2,
		CircuitBreakerTimeout:          30 * time.Second,
	}
}

func TestInitializeApp_Integration(t *testing.T) {
	t.Parallel()

	t.Run("with MongoDB and payment provider", func(t *testing.T) {
		t.Parallel()
		cfg := config.Config{
			Server:   config.ServerConfig{Port: "8080", RateLimit: 100, RateWindow: time.Minute},
			Cache:    config.CacheConfig{CustomerSize: 100, CustomerTTL: time.Minute},
			Database: integrationDatabaseConfig(t),
			Payment:  config.PaymentConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second},
		}

		application := InitializeApp(cfg)
		defer func() {
			assert.NoError(t, application.Close(context.Background()))
		}()

		w := httptest.NewRecorder()
		application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "mongodb")
		assert.Contains(t, w.Body.String(), "payment_provider_circuit")

		w = httptest.NewRecorder()
		application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/customers/nobody/carts/none/quote", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("with MongoDB disabled", func(t *testing.T) {
		t.Parallel()
		application := InitializeApp(config.Config{Server: config.ServerConfig{Port: "8080"}})
		require.NotNil(t, application.Router)
		assert.NoError(t, application.Close(context.Background()))
	})
}
