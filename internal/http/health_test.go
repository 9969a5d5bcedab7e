package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/checkout-service/internal/circuitbreaker"
)

type readinessBody struct {
	Status string                 `json:"status"`
	Checks map[string]interface{} `json:"checks"`
}

func openBreaker(t *testing.T, name string) *circuitbreaker.CircuitBreaker {
	t.Helper()
	cb := circuitbreaker.New(circuitbreaker.Config{Name: name, FailureThreshold: 1, Timeout: time.Minute})
	_ = cb.Execute(context.Background(), func() error { return errors.New("boom") })
	require.True(t, cb.IsOpen())
	return cb
}

func TestHealthHandler_Readiness(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		setupHandler   func(t *testing.T) *HealthHandler
		expectedStatus int
		expectedChecks map[string]interface{}
	}{
		{
			name:           "no checkers",
			setupHandler:   func(*testing.T) *HealthHandler { return NewHealthHandler() },
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]interface{}{"service": "ok"},
		},
		{
			name: "healthy database and closed breaker",
			setupHandler: func(*testing.T) *HealthHandler {
				h := NewHealthHandler()
				h.RegisterChecker("mongodb", HealthCheckFunc(func(context.Context) error { return nil }))
				h.RegisterCircuitBreaker("payment", circuitbreaker.New(circuitbreaker.DefaultConfig()))
				return h
			},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]interface{}{"mongodb": "ok", "payment_circuit": "closed"},
		},
		{
			name: "failing database",
			setupHandler: func(*testing.T) *HealthHandler {
				h := NewHealthHandler()
				h.RegisterChecker("mongodb", HealthCheckFunc(func(context.Context) error { return errors.New("connection refused") }))
				return h
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedChecks: map[string]interface{}{"mongodb": "connection refused"},
		},
		{
			name: "open payment breaker",
			setupHandler: func(t *testing.T) *HealthHandler {
				h := NewHealthHandler()
				h.RegisterCircuitBreaker("payment", openBreaker(t, "payment"))
				return h
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedChecks: map[string]interface{}{"payment_circuit": "open"},
		},
		{
			name: "nil registrations are ignored",
			setupHandler: func(*testing.T) *HealthHandler {
				h := NewHealthHandler()
				h.RegisterChecker("mongodb", nil)
				h.RegisterCircuitBreaker("payment", nil)
				return h
			},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]interface{}{"service": "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			tt.setupHandler(t).Register(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			var body readinessBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedChecks, body.Checks)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "ok", body.Status)
			} else {
				assert.Equal(t, "degraded", body.Status)
			}
		})
	}
}

func TestHealthHandler_CheckerGetsDeadline(t *testing.T) {
	h := NewHealthHandler()
	h.RegisterChecker("mongodb", HealthCheckFunc(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		return nil
	}))

	router := gin.New()
	h.Register(router)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthHandler_Liveness(t *testing.T) {
	router := gin.New()
	NewHealthHandler().Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
