package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/checkout-service/internal/metrics"
	"github.com/guttosm/checkout-service/internal/middleware"
	"github.com/guttosm/checkout-service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	APIKeys           map[string]bool
	EnableAuth        bool
	EnableIdempotency bool
	IdempotencyTTL    time.Duration
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string

	// Quotes is required. Checkout and Tokens are optional.
	Quotes   service.QuoteService
	Checkout service.CheckoutService
	Tokens   service.TokenService
	// StoredCarts enables the stored cart quote endpoint.
	StoredCarts bool

	customerAuth  gin.HandlerFunc
	customerLimit gin.HandlerFunc
	idempotency   gin.HandlerFunc
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:         100,
		RateWindow:        time.Minute,
		RequestTimeout:    middleware.DefaultRequestTimeout,
		EnableIdempotency: true,
		IdempotencyTTL:    middleware.IdempotencyKeyTTL,
	}
}

// customerMiddleware returns the handlers guarding routes that act for a customer.
func (cfg *RouterConfig) customerMiddleware() []gin.HandlerFunc {
	var handlers []gin.HandlerFunc
	if cfg.customerAuth != nil {
		handlers = append(handlers, cfg.customerAuth)
	}
	if cfg.customerLimit != nil {
		handlers = append(handlers, cfg.customerLimit)
	}
	return handlers
}

// NewRouter creates and configures the Gin router for the checkout service.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)

	for _, group := range routeGroups(&cfg) {
		group.RegisterRoutes(api, &cfg)
	}

	return router
}

// routeGroups returns the business route groups enabled by cfg.
func routeGroups(cfg *RouterConfig) []RouteGroup {
	var groups []RouteGroup
	if cfg.Quotes != nil {
		groups = append(groups, NewQuoteRoutes(NewQuoteHandler(cfg.Quotes)))
	}
	if cfg.Checkout != nil {
		groups = append(groups, NewCheckoutRoutes(NewCheckoutHandler(cfg.Checkout)))
	}
	return groups
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Authorization", "Accept", "X-API-Key", "Idempotency-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After", middleware.IdempotencyReplayedHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression("/metrics"),
		middleware.RequestLogger("/healthz", "/readyz", "/metrics"),
		middleware.ErrorHandler(),
	)

	if cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	if cfg.RateLimit > 0 {
		router.Use(middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow).RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group and prepares
// the per-customer handlers used by route groups.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.EnableAuth && len(cfg.APIKeys) > 0 {
		api.Use(middleware.APIKeyAuth(cfg.APIKeys))
	}

	if cfg.Tokens != nil {
		cfg.customerAuth = middleware.CustomerAuth(cfg.Tokens)
	}
	if cfg.RateLimit > 0 {
		cfg.customerLimit = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow).CustomerRateLimit()
	}
	if cfg.EnableIdempotency {
		ttl := cfg.IdempotencyTTL
		if ttl <= 0 {
			ttl = middleware.IdempotencyKeyTTL
		}
		cfg.idempotency = middleware.Idempotency(middleware.NewIdempotencyConfig(middleware.IdempotencyCapacity, ttl))
	}
}
