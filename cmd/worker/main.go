package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ghuser/packstack/pkg/app"
	"github.com/ghuser/packstack/pkg/cache"
	"github.com/ghuser/packstack/pkg/config"
	"github.com/ghuser/packstack/pkg/database"
	"github.com/ghuser/packstack/pkg/events"
	"github.com/ghuser/packstack/pkg/logger"
	"github.com/ghuser/packstack/pkg/telemetry"
	"github.com/ghuser/packstack/pkg/workflows"
	recsvcs "github.com/ghuser/packstack/services/recommendation/application/services"
	recworkflows "github.com/ghuser/packstack/services/recommendation/application/workflows"
)

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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	var temporalClient *workflows.TemporalClient
	if cfg.TemporalEnabled {
		temporalClient, err = workflows.NewTemporalClient(ctx, cfg, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer temporalClient.Close()
	}

	appConfig := &app.Application{
		Config:         cfg,
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		TemporalClient: temporalClient,
	}

	registerSubscribers(appConfig)
	busDone := make(chan error, 1)
	go func() { busDone <- eventBus.Run(ctx) }()

	workerDone := make(chan error, 1)
	if temporalClient != nil {
		w := temporalClient.NewWorker(cfg.TemporalTaskQueue)
		recworkflows.Register(w, recsvcs.NewActivities(appConfig))
		go func() { workerDone <- temporalClient.RunWorker(ctx, w, cfg.TemporalTaskQueue) }()
	} else {
		log.Info("temporal disabled, recommendations run inline in the api process")
		close(workerDone)
	}

	<-ctx.Done()
	log.Info("shutting down worker...")

	if err := <-workerDone; err != nil {
		log.Error("temporal worker failed", "error", err)
	}
	if err := <-busDone; err != nil {
		log.Error("event router failed", "error", err)
	}

	log.Info("worker stopped")
}
