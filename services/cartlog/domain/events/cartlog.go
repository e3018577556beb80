package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicCartLogUpserted is the Watermill topic published after a cart log is
// created or updated.
const TopicCartLogUpserted = "cartlog.upserted"

// TopicCartLogDeleted is the Watermill topic published after a cart log and
// its line items are deleted.
const TopicCartLogDeleted = "cartlog.deleted"

// CartLogUpsertedEvent is published within the upsert transaction.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicCartLogUpserted).
type CartLogUpsertedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	CartLogID  int64     `json:"cart_log_id"`
	EmployeeID int64     `json:"employee_id"`
	Created    bool      `json:"created"` // true on insert, false on update
	OccurredAt time.Time `json:"occurred_at"`
}

// CartLogDeletedEvent is published within the delete transaction.
type CartLogDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	CartLogID  int64     `json:"cart_log_id"`
	EmployeeID int64     `json:"employee_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
