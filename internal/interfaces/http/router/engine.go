package router

import (
	"github.com/gin-gonic/gin"
	"github.com/mkboutique/backend/internal/infrastructure/auth"
	"github.com/mkboutique/backend/internal/infrastructure/config"
	"github.com/mkboutique/backend/internal/infrastructure/logger"
	"github.com/mkboutique/backend/internal/interfaces/http/handler"
	"github.com/mkboutique/backend/internal/interfaces/http/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// EngineOptions carries everything NewEngine wires together
type EngineOptions struct {
	Logger         *zap.Logger
	HTTP           config.HTTPConfig
	Swagger        config.SwaggerConfig
	Tracing        middleware.TracingConfig
	Metrics        *middleware.HTTPMetrics // nil disables /metrics
	MetricsPath    string
	RateLimiter    *middleware.RateLimiter // nil disables rate limiting
	JWTService     *auth.JWTService
	TokenBlacklist auth.TokenBlacklist
	System         *handler.SystemHandler
	Handlers       Handlers
}

// NewEngine builds the gin engine with the global middleware chain and all routes.
//
// Global order: request id, recovery, access log, tracing, span annotation,
// metrics, security headers, CORS, body limit, rate limit. Routes under /api
// other than login and refresh additionally require a valid token carrying
// a societe.
func NewEngine(opts EngineOptions) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(opts.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(opts.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.TracingWithConfig(opts.Tracing))
	engine.Use(middleware.SpanAnnotator())
	if opts.Metrics != nil {
		engine.Use(opts.Metrics.Middleware())
	}
	engine.Use(middleware.SecureWithConfig(middleware.DefaultSecurityConfig()))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = opts.HTTP.CORSAllowOrigins
	if len(opts.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = opts.HTTP.CORSAllowMethods
	}
	if len(opts.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = opts.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	if opts.HTTP.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(opts.HTTP.MaxBodySize))
	}
	if opts.RateLimiter != nil {
		engine.Use(middleware.RateLimit(opts.RateLimiter))
	}

	if opts.System != nil {
		engine.GET("/health", opts.System.Health)
	}
	metricsPath := opts.MetricsPath
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	if opts.Metrics != nil {
		engine.GET(metricsPath, gin.WrapH(opts.Metrics.Handler()))
	}
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:    opts.Swagger.Enabled,
			AllowedIPs: opts.Swagger.AllowedIPs,
		}),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	jwtConfig := middleware.DefaultJWTConfig(opts.JWTService)
	jwtConfig.TokenBlacklist = opts.TokenBlacklist
	jwtConfig.Logger = log

	r := NewRouter(engine)
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig), middleware.TenantRequired(log))
	RegisterAPI(r, opts.Handlers)
	r.Setup()

	return engine
}
