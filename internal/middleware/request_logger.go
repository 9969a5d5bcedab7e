package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/checkout-service/internal/logger"
)

// RequestLogger returns a middleware that logs one structured line per request,
// at error level for 5xx, warn for 4xx and info otherwise.
func RequestLogger(skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		statusCode := c.Writer.Status()
		if _, ok := skip[path]; ok && statusCode < 400 {
			return
		}

		ctx := logger.WithRequestID(GetRequestID(c)).With().
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status_code", statusCode).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Int("response_size", c.Writer.Size()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent())
		if customerID, ok := GetCustomerID(c); ok {
			ctx = ctx.Str("customer_id", customerID)
		}
		if len(c.Errors) > 0 {
			ctx = ctx.Str("errors", c.Errors.String())
		}
		log := ctx.Logger()

		switch {
		case statusCode >= 500:
			log.Error().Msg("HTTP request")
		case statusCode >= 400:
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}
	}
}
