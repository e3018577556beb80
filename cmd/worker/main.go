package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/linentrack/pkg/app"
	"github.com/ghuser/linentrack/pkg/cache"
	"github.com/ghuser/linentrack/pkg/config"
	"github.com/ghuser/linentrack/pkg/database"
	"github.com/ghuser/linentrack/pkg/events"
	"github.com/ghuser/linentrack/pkg/logger"
	"github.com/ghuser/linentrack/pkg/telemetry"
	cartlogEvents "github.com/ghuser/linentrack/services/cartlog/domain/events"
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

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

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

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := map[string]func(context.Context, *message.Message) error{
		cartlogEvents.TopicCartLogUpserted: handleCartLogUpserted(a),
		cartlogEvents.TopicCartLogDeleted:  handleCartLogDeleted(a),
	}

	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error",
					"topic", topic,
					"error", err,
				)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered",
		"topics", []string{cartlogEvents.TopicCartLogUpserted, cartlogEvents.TopicCartLogDeleted})
	return nil
}

// handleCartLogUpserted returns a handler for cartlog.upserted events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Drops the stale cached view so the next GetByID rebuilds it from Postgres,
// and writes an audit line for the weigh event.
func handleCartLogUpserted(a *app.Application) func(context.Context, *message.Message) error {
	viewCache := cache.NewCartLogCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt cartlogEvents.CartLogUpsertedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := viewCache.Delete(ctx, evt.CartLogID); err != nil {
			// Invalidation is best-effort; the entry expires by TTL anyway.
			a.Logger.WarnContext(ctx, "cache invalidation failed for cartlog.upserted",
				"cart_log_id", evt.CartLogID, "error", err)
		}

		a.Logger.InfoContext(ctx, "cart log upserted",
			"cart_log_id", evt.CartLogID,
			"employee_id", evt.EmployeeID,
			"created", evt.Created,
			"occurred_at", evt.OccurredAt,
		)
		return nil
	}
}

// handleCartLogDeleted returns a handler for cartlog.deleted events.
func handleCartLogDeleted(a *app.Application) func(context.Context, *message.Message) error {
	viewCache := cache.NewCartLogCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt cartlogEvents.CartLogDeletedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := viewCache.Delete(ctx, evt.CartLogID); err != nil {
			a.Logger.WarnContext(ctx, "cache invalidation failed for cartlog.deleted",
				"cart_log_id", evt.CartLogID, "error", err)
		}

		a.Logger.InfoContext(ctx, "cart log deleted",
			"cart_log_id", evt.CartLogID,
			"employee_id", evt.EmployeeID,
			"occurred_at", evt.OccurredAt,
		)
		return nil
	}
}
