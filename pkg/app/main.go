package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/packstack/pkg/cache"
	"github.com/ghuser/packstack/pkg/config"
	"github.com/ghuser/packstack/pkg/database"
	"github.com/ghuser/packstack/pkg/events"
	"github.com/ghuser/packstack/pkg/logger"
	"github.com/ghuser/packstack/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all services.
// Each bounded context builds its service container from it during startup.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "item created", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config         *config.Config
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	TemporalClient *workflows.TemporalClient // nil when TEMPORAL_ENABLED=false
	SessionStore   sessions.Store            // nil in worker process
}
