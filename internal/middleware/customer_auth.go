package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/checkout-service/internal/i18n"
	"github.com/guttosm/checkout-service/internal/service"
)

// CustomerIDKey is the context key holding the customer id of a validated bearer token.
const CustomerIDKey ContextKey = "customer_id"

// CustomerAuth returns a middleware that requires a customer bearer token.
// The customer id from the token is stored in the context; handlers compare it
// with the customer named in the request through CanActFor.
// A nil token service disables the check.
func CustomerAuth(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokens == nil {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyTokenRequired)
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyInvalidToken)
			return
		}
		tokenString = strings.TrimSpace(tokenString)
		if tokenString == "" {
			abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyTokenRequired)
			return
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyInvalidToken)
			return
		}

		c.Set(string(CustomerIDKey), claims.CustomerID)
		c.Next()
	}
}

// GetCustomerID returns the authenticated customer id, if any.
func GetCustomerID(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(CustomerIDKey)); exists {
		if id, ok := v.(string); ok && id != "" {
			return id, true
		}
	}
	return "", false
}

// CanActFor reports whether the caller may act for customerID.
// Requests that went through no customer authentication may act for anyone.
func CanActFor(c *gin.Context, customerID string) bool {
	authenticated, ok := GetCustomerID(c)
	if !ok {
		return true
	}
	return authenticated == customerID
}
