package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/checkout-service/internal/cache"
	"github.com/guttosm/checkout-service/internal/i18n"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the idempotency cache.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is the default TTL for cached responses.
	IdempotencyKeyTTL = 24 * time.Hour

	// IdempotencyCapacity is the default number of responses kept for replay.
	IdempotencyCapacity = 10000

	maxIdempotencyKeyLength = 255
)

// cachedResponse is a response stored for replay.
type cachedResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Cache   cache.Cache[string, cachedResponse]
	TTL     time.Duration
	Enabled bool
}

// NewIdempotencyConfig returns a config whose cache holds capacity responses for ttl.
func NewIdempotencyConfig(capacity int, ttl time.Duration) IdempotencyConfig {
	return IdempotencyConfig{
		Cache:   cache.NewTTLCache[string, cachedResponse]("idempotency", capacity, ttl),
		TTL:     ttl,
		Enabled: true,
	}
}

// Idempotency returns a middleware that replays the response of a previous
// POST, PUT or PATCH carrying the same Idempotency-Key, path, body and caller.
// Responses below 500 are stored; server errors may be retried. A request
// arriving while the same key is still being processed gets 409.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	var (
		mu       sync.Mutex
		inFlight = make(map[string]struct{})
	)

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLength {
			abortWithError(c, http.StatusBadRequest, i18n.ErrKeyInvalidRequest)
			return
		}

		cacheKey, err := idempotencyCacheKey(key, c)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody)
			return
		}

		if cached, ok := cfg.Cache.Get(cacheKey); ok {
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(cached.StatusCode, cached.ContentType, cached.Body)
			c.Abort()
			return
		}

		mu.Lock()
		if _, busy := inFlight[cacheKey]; busy {
			mu.Unlock()
			abortWithError(c, http.StatusConflict, i18n.ErrKeyConflict)
			return
		}
		inFlight[cacheKey] = struct{}{}
		mu.Unlock()
		defer func() {
			mu.Lock()
			delete(inFlight, cacheKey)
			mu.Unlock()
		}()

		writer := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status < http.StatusInternalServerError {
			cfg.Cache.Set(cacheKey, cachedResponse{
				StatusCode:  status,
				ContentType: writer.Header().Get("Content-Type"),
				Body:        bytes.Clone(writer.body.Bytes()),
			})
		}
	}
}

// idempotencyCacheKey hashes the key with the method, path, body and caller.
// The body is restored for the handler.
func idempotencyCacheKey(key string, c *gin.Context) (string, error) {
	h := sha256.New()
	for _, part := range []string{key, c.Request.Method, c.Request.URL.Path} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	if id, ok := GetCustomerID(c); ok {
		h.Write([]byte(id))
	}
	h.Write([]byte{0})

	if c.Request.Body != nil {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			return "", err
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		h.Write(body)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// captureWriter copies the response body while writing it through.
type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
