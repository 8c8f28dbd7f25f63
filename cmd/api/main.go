package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/packstack/docs/swagger"
	"github.com/ghuser/packstack/pkg/app"
	"github.com/ghuser/packstack/pkg/auth"
	"github.com/ghuser/packstack/pkg/cache"
	"github.com/ghuser/packstack/pkg/config"
	"github.com/ghuser/packstack/pkg/database"
	"github.com/ghuser/packstack/pkg/errhttp"
	"github.com/ghuser/packstack/pkg/events"
	"github.com/ghuser/packstack/pkg/httpx"
	"github.com/ghuser/packstack/pkg/logger"
	"github.com/ghuser/packstack/pkg/telemetry"
	"github.com/ghuser/packstack/pkg/workflows"
	catalogApi "github.com/ghuser/packstack/services/catalog/application/api"
	catalogsvcs "github.com/ghuser/packstack/services/catalog/application/services"
	itemApi "github.com/ghuser/packstack/services/inventory/application/api"
	itemsvcs "github.com/ghuser/packstack/services/inventory/application/services"
	recApi "github.com/ghuser/packstack/services/recommendation/application/api"
	recsvcs "github.com/ghuser/packstack/services/recommendation/application/services"
	tripApi "github.com/ghuser/packstack/services/trip/application/api"
	tripsvcs "github.com/ghuser/packstack/services/trip/application/services"
)

// @title						Packstack API
// @version					1.0
// @description				Outdoor gear inventory, trip meal planning, catalog search and gear recommendations.
// @license.name				MIT
// @license.url				https://opensource.org/licenses/MIT
// @host						localhost:8080
// @BasePath					/api
// @schemes					http https
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)
	errhttp.HideInternalErrors(cfg.Environment == config.EnvProduction)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBusWithForwarder(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	if err := eventBus.StartForwarder(ctx); err != nil {
		log.Error("failed to start event forwarder", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	var temporalClient *workflows.TemporalClient
	if cfg.TemporalEnabled {
		temporalClient, err = workflows.NewTemporalClient(ctx, cfg, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure
		}
		defer temporalClient.Close()
	}

	sessionStore := auth.NewSessionStore(
		redisClient.Client(),
		[]byte(cfg.SessionAuthKey),
		[]byte(cfg.SessionEncryptionKey),
		cfg.Environment == config.EnvProduction,
	)
	log.Info("session store initialized", "backend", "redis")

	appConfig := &app.Application{
		Config:         cfg,
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		TemporalClient: temporalClient,
		SessionStore:   sessionStore,
	}

	serverCfg := httpx.ServerConfig{
		ServiceName:        cfg.ServiceName,
		IsDevelopment:      cfg.Environment == config.EnvDevelopment,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RequestsPerMinute:  cfg.RequestsPerMinute,
		HandlerTimeout:     cfg.HandlerTimeout(),
	}
	r := httpx.NewRouter(serverCfg, httpx.Middlewares{
		Recovery: logger.Recovery(log),
		Sentry:   telemetry.SentryMiddleware(),
		Tracing:  otelhttp.NewMiddleware(cfg.ServiceName),
		Logger:   logger.Middleware(log),
	})

	checks := httpx.HealthChecks{
		Database: pool,
		Redis:    redisClient,
		EventBus: eventBus,
		Providers: map[string]bool{
			"amazon":  cfg.AmazonEnabled(),
			"walmart": cfg.WalmartEnabled(),
			"llm":     cfg.LLMEnabled(),
		},
	}
	if temporalClient != nil {
		checks.Temporal = temporalClient
	}
	r.Get("/health", httpx.HealthHandler(checks))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.RequireAuth(sessionStore, auth.NewTokenVerifier(cfg.JWTSecret), log))
		createSession, endSession := auth.SessionRoutes(sessionStore)
		r.Post("/session", createSession)
		r.Delete("/session", endSession)
		registerRoutes(r, appConfig)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r, serverCfg)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
// Trip planning and recommendations read the owner's inventory through the
// inventory item service.
func registerRoutes(r chi.Router, a *app.Application) {
	inventory := itemsvcs.New(a)

	itemApi.ItemRoutes(r, inventory)
	tripApi.PlanRoutes(r, tripsvcs.New(a, inventory.Item))
	catalogApi.CatalogRoutes(r, catalogsvcs.New(a))
	recApi.RecommendationRoutes(r, recsvcs.New(a, inventory.Item))
}
