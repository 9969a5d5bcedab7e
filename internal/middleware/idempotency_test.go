package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/checkout-service/internal/cache"
)

func newIdempotentRouter(t *testing.T, status *int, calls *int32) *gin.Engine {
	t.Helper()
	cfg := NewIdempotencyConfig(100, time.Minute)
	t.Cleanup(cfg.Cache.Stop)

	router := gin.New()
	router.Use(RequestID(), Idempotency(cfg))
	handler := func(c *gin.Context) {
		n := atomic.AddInt32(calls, 1)
		c.JSON(*status, gin.H{"call": n})
	}
	router.POST("/api/checkout", handler)
	router.GET("/api/checkout", handler)
	return router
}

func sendCheckout(router *gin.Engine, method, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/checkout", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)
	body := `{"cart_id":"cart-1","customer_id":"customer-1"}`

	tests := []struct {
		name         string
		status       int
		method       string
		firstKey     string
		secondKey    string
		secondBody   string
		wantCalls    int32
		wantReplayed bool
	}{
		{
			name:         "replays a successful checkout with the same key",
			status:       http.StatusOK,
			method:       http.MethodPost,
			firstKey:     "key-1",
			secondKey:    "key-1",
			secondBody:   body,
			wantCalls:    1,
			wantReplayed: true,
		},
		{
			name:         "replays a declined payment",
			status:       http.StatusPaymentRequired,
			method:       http.MethodPost,
			firstKey:     "key-1",
			secondKey:    "key-1",
			secondBody:   body,
			wantCalls:    1,
			wantReplayed: true,
		},
		{
			name:       "server errors are not stored",
			status:     http.StatusServiceUnavailable,
			method:     http.MethodPost,
			firstKey:   "key-1",
			secondKey:  "key-1",
			secondBody: body,
			wantCalls:  2,
		},
		{
			name:       "different key runs again",
			status:     http.StatusOK,
			method:     http.MethodPost,
			firstKey:   "key-1",
			secondKey:  "key-2",
			secondBody: body,
			wantCalls:  2,
		},
		{
			name:       "same key with different body runs again",
			status:     http.StatusOK,
			method:     http.MethodPost,
			firstKey:   "key-1",
			secondKey:  "key-1",
			secondBody: `{"cart_id":"cart-2","customer_id":"customer-1"}`,
			wantCalls:  2,
		},
		{
			name:       "requests without key are not deduplicated",
			status:     http.StatusOK,
			method:     http.MethodPost,
			secondBody: body,
			wantCalls:  2,
		},
		{
			name:       "GET is never deduplicated",
			status:     http.StatusOK,
			method:     http.MethodGet,
			firstKey:   "key-1",
			secondKey:  "key-1",
			secondBody: body,
			wantCalls:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := tt.status
			var calls int32
			router := newIdempotentRouter(t, &status, &calls)

			first := sendCheckout(router, tt.method, tt.firstKey, body)
			second := sendCheckout(router, tt.method, tt.secondKey, tt.secondBody)

			assert.Equal(t, tt.status, first.Code)
			assert.Equal(t, tt.status, second.Code)
			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(&calls))
			if tt.wantReplayed {
				assert.Equal(t, "true", second.Header().Get(IdempotencyReplayedHeader))
				assert.Equal(t, first.Body.String(), second.Body.String())
				assert.Contains(t, second.Header().Get("Content-Type"), "application/json")
			} else {
				assert.Empty(t, second.Header().Get(IdempotencyReplayedHeader))
			}
		})
	}
}

func TestIdempotency_HandlerSeesBody(t *testing.T) {
	cfg := NewIdempotencyConfig(10, time.Minute)
	defer cfg.Cache.Stop()

	router := gin.New()
	router.Use(Idempotency(cfg))
	router.POST("/echo", func(c *gin.Context) {
		var payload map[string]string
		require.NoError(t, c.ShouldBindJSON(&payload))
		c.JSON(http.StatusOK, payload)
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"cart_id":"cart-9"}`))
	req.Header.Set(IdempotencyKeyHeader, "k")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"cart_id":"cart-9"}`, w.Body.String())
}

func TestIdempotency_ConcurrentDuplicateIsRejected(t *testing.T) {
	cfg := NewIdempotencyConfig(10, time.Minute)
	defer cfg.Cache.Stop()

	entered := make(chan struct{})
	release := make(chan struct{})
	router := gin.New()
	router.Use(RequestID(), Idempotency(cfg))
	router.POST("/api/checkout", func(c *gin.Context) {
		close(entered)
		<-release
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	done := make(chan *httptest.ResponseRecorder)
	go func() {
		done <- sendCheckout(router, http.MethodPost, "key-1", "{}")
	}()
	<-entered

	duplicate := sendCheckout(router, http.MethodPost, "key-1", "{}")
	assert.Equal(t, http.StatusConflict, duplicate.Code)
	assert.Contains(t, duplicate.Body.String(), `"error":"conflict"`)

	close(release)
	assert.Equal(t, http.StatusOK, (<-done).Code)

	replay := sendCheckout(router, http.MethodPost, "key-1", "{}")
	assert.Equal(t, "true", replay.Header().Get(IdempotencyReplayedHeader))
}

func TestIdempotency_KeyTooLong(t *testing.T) {
	cfg := NewIdempotencyConfig(10, time.Minute)
	defer cfg.Cache.Stop()

	router := gin.New()
	router.Use(Idempotency(cfg))
	router.POST("/api/checkout", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := sendCheckout(router, http.MethodPost, strings.Repeat("k", maxIdempotencyKeyLength+1), "{}")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIdempotency_Disabled(t *testing.T) {
	var calls int32
	router := gin.New()
	router.Use(Idempotency(IdempotencyConfig{Enabled: false}))
	router.POST("/api/checkout", func(c *gin.Context) {
		atomic.AddInt32(&calls, 1)
		c.Status(http.StatusOK)
	})

	sendCheckout(router, http.MethodPost, "key-1", "{}")
	sendCheckout(router, http.MethodPost, "key-1", "{}")
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestNewIdempotencyConfig(t *testing.T) {
	cfg := NewIdempotencyConfig(IdempotencyCapacity, IdempotencyKeyTTL)
	defer cfg.Cache.Stop()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, IdempotencyKeyTTL, cfg.TTL)

	store, ok := cfg.Cache.(*cache.TTLCache[string, cachedResponse])
	require.True(t, ok)
	assert.Equal(t, IdempotencyCapacity, store.Metrics().Capacity)
	assert.Equal(t, "X-Idempotency-Replayed", IdempotencyReplayedHeader)
}
