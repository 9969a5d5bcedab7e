package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/checkout-service/internal/domain/dto"
	"github.com/guttosm/checkout-service/internal/i18n"
	"github.com/guttosm/checkout-service/internal/logger"
)

// ErrorHandler returns a middleware that logs errors attached to the gin context
// and renders a 500 when the handler did not write a response itself.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)
		log := logger.WithRequestID(requestID)
		log.Error().
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			abortWithError(c, http.StatusInternalServerError, i18n.ErrKeyInternalError)
		}
	}
}

// abortWithError renders a translated error body with the status's error code.
func abortWithError(c *gin.Context, status int, key string) {
	message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
	c.AbortWithStatusJSON(status, dto.NewError(dto.ErrCodeFromStatus(status), message).
		WithRequestID(GetRequestID(c)))
}
