package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/checkout-service/internal/i18n"
	"github.com/guttosm/checkout-service/internal/logger"
)

// Recovery turns a panic in a later handler into a translated 500 body.
// A panic after the body was written only aborts the chain.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			log := logger.WithRequestID(GetRequestID(c))
			log.Error().
				Interface("panic", rec).
				Str("method", c.Request.Method).
				Str("route", c.FullPath()).
				Msg("Recovered from panic")

			if c.Writer.Written() {
				c.Abort()
				return
			}
			abortWithError(c, http.StatusInternalServerError, i18n.ErrKeyInternalError)
		}()
		c.Next()
	}
}
