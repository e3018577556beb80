package app

import (
	"github.com/ghuser/linentrack/pkg/auth"
	"github.com/ghuser/linentrack/pkg/cache"
	"github.com/ghuser/linentrack/pkg/database"
	"github.com/ghuser/linentrack/pkg/events"
	"github.com/ghuser/linentrack/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service route-registration calls during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "upserting cart log", "cart_log_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient
	Tokens   *auth.TokenIssuer // signs access tokens; nil in worker process
}
