package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/mkboutique/backend/internal/application/catalog"
	identityapp "github.com/mkboutique/backend/internal/application/identity"
	partnerapp "github.com/mkboutique/backend/internal/application/partner"
	rentalapp "github.com/mkboutique/backend/internal/application/rental"
	settingsapp "github.com/mkboutique/backend/internal/application/settings"
	"github.com/mkboutique/backend/internal/infrastructure/auth"
	"github.com/mkboutique/backend/internal/infrastructure/config"
	"github.com/mkboutique/backend/internal/infrastructure/logger"
	"github.com/mkboutique/backend/internal/infrastructure/persistence"
	"github.com/mkboutique/backend/internal/infrastructure/telemetry"
	"github.com/mkboutique/backend/internal/interfaces/http/handler"
	"github.com/mkboutique/backend/internal/interfaces/http/middleware"
	"github.com/mkboutique/backend/internal/interfaces/http/router"
	"go.uber.org/zap"

	_ "github.com/mkboutique/backend/docs"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			MK Boutique API
//	@version		1.0
//	@description	Back-office API for a caftan rental boutique: catalog, clients, reservations and paiements, isolated per societe.

//	@contact.name	MK Boutique
//	@contact.email	contact@mkboutique.ma

//	@host		localhost:8080
//	@BasePath	/api

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	ctx := context.Background()

	// The OTLP log bridge must exist before the logger so it can tee into it.
	logsProvider, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.Enabled && cfg.Telemetry.LogsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
	})
	if err != nil {
		panic("Failed to initialize log export: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}, logger.WithCore(logsProvider.Core(logger.ParseLevel(cfg.Log.Level))))
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting MK Boutique backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh),
	)
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	if cfg.Database.Driver == config.DriverSQLite {
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Failed to create sqlite schema", zap.Error(err))
		}
	}

	dbTracing := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
		DBSystem:        cfg.Database.Driver,
	}, log)
	if err := dbTracing.Register(db.DB); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	var httpMetrics *middleware.HTTPMetrics
	if cfg.Metrics.Enabled {
		httpMetrics = middleware.NewHTTPMetrics("mkboutique")
		dbMetrics, err := telemetry.NewDBMetrics(httpMetrics.Registry(), "mkboutique", cfg.Database.DBName,
			cfg.Telemetry.DBSlowQueryThresh, log)
		if err != nil {
			log.Fatal("Failed to create database metrics", zap.Error(err))
		}
		if err := dbMetrics.Register(db.DB, httpMetrics.Registry()); err != nil {
			log.Fatal("Failed to register database metrics", zap.Error(err))
		}
	}

	// Repositories
	societeRepo := persistence.NewGormSocieteRepository(db.DB)
	roleRepo := persistence.NewGormRoleRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	categorieRepo := persistence.NewGormCategorieRepository(db.DB)
	tailleRepo := persistence.NewGormTailleRepository(db.DB)
	articleRepo := persistence.NewGormArticleRepository(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	reservationRepo := persistence.NewGormReservationRepository(db.DB)
	paiementRepo := persistence.NewGormPaiementRepository(db.DB)
	configurationRepo := persistence.NewGormConfigurationRepository(db.DB)

	bootstrap := identityapp.NewBootstrapService(persistence.NewIdentityUnitOfWork(db.DB), identityapp.BootstrapAdmin{
		Login:    cfg.Bootstrap.AdminLogin,
		Password: cfg.Bootstrap.AdminPassword,
		Name:     cfg.Bootstrap.AdminName,
	}, log)
	if err := bootstrap.InitializeDefaultRoles(ctx); err != nil {
		log.Fatal("Failed to initialize default data", zap.Error(err))
	}

	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisRevocations(ctx, cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() { _ = redisBlacklist.Close() }()
		blacklist = redisBlacklist
		log.Info("Token blacklist backed by Redis")
	} else {
		blacklist = auth.NewMemoryRevocations()
		log.Warn("Token blacklist kept in memory; revocations are lost on restart")
	}
	jwtService := auth.NewJWTService(cfg.JWT)

	clientScope, err := partnerapp.ParseUniqueScope(cfg.Business.ClientUniqueScope)
	if err != nil {
		log.Fatal("Invalid business configuration", zap.Error(err))
	}

	// Services and handlers
	handlers := router.Handlers{
		Auth:       handler.NewAuthHandler(identityapp.NewAuthService(userRepo, jwtService, blacklist, log)),
		Articles:   handler.NewArticleHandler(catalogapp.NewArticleService(articleRepo, categorieRepo, tailleRepo)),
		Categories: handler.NewCategorieHandler(catalogapp.NewCategorieService(categorieRepo, articleRepo)),
		Tailles:    handler.NewTailleHandler(catalogapp.NewTailleService(tailleRepo)),
		Clients:    handler.NewClientHandler(partnerapp.NewClientService(clientRepo, clientScope, log)),
		Reservations: handler.NewReservationHandler(
			rentalapp.NewReservationService(reservationRepo, paiementRepo, clientRepo, log),
		),
		Paiements: handler.NewPaiementHandler(
			rentalapp.NewPaiementService(paiementRepo, persistence.NewRentalUnitOfWork(db.DB), log),
		),
		Configurations: handler.NewConfigurationHandler(settingsapp.NewConfigurationService(configurationRepo, log)),
		Roles:          handler.NewRoleHandler(identityapp.NewRoleService(roleRepo, userRepo, log)),
		Users: handler.NewUserHandler(
			identityapp.NewUserService(userRepo, roleRepo, log).WithRevocation(blacklist, cfg.JWT.RefreshTokenExpiration),
		),
		Societes: handler.NewSocieteHandler(identityapp.NewSocieteService(societeRepo, log)),
	}

	var rateLimiter *middleware.RateLimiter
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		defer rateLimiter.Stop()
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := router.NewEngine(router.EngineOptions{
		Logger:  log,
		HTTP:    cfg.HTTP,
		Swagger: cfg.Swagger,
		Tracing: middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     cfg.Telemetry.Enabled,
		},
		Metrics:        httpMetrics,
		MetricsPath:    cfg.Metrics.Path,
		RateLimiter:    rateLimiter,
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		System:         handler.NewSystemHandler(db, version),
		Handlers:       handlers,
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownTimeout := cfg.HTTP.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		log.Error("Error closing database", zap.Error(err))
	}
	telemetry.LogShutdownError(log, "tracer", tracerProvider.Shutdown(shutdownCtx))
	telemetry.LogShutdownError(log, "logs", logsProvider.Shutdown(shutdownCtx))

	log.Info("Server exited gracefully")
}
