package repositories

import (
	"context"

	"github.com/ghuser/linentrack/services/cartlog/domain/models"
)

// Filter narrows List queries. Zero values mean "no filter". A supplied
// filter only matches cart logs whose corresponding catalog reference
// exists and matches; a dangling reference never fails the query.
type Filter struct {
	CartType     string
	LocationName string
	EmployeeID   int64
}

// CartLogRepository is the persistence interface for the CartLog aggregate.
// The domain layer owns this interface; infrastructure implements it.
type CartLogRepository interface {
	// GetHeader loads a cart log with its line items (no catalog joins).
	// Returns ErrCartLogNotFound if no row exists.
	GetHeader(ctx context.Context, id int64) (*models.CartLog, error)

	// Upsert persists the aggregate atomically: insert or update the
	// header, resolve each line item's linen reference (creating catalog
	// rows on unknown ids), and insert or update each line item. Generated
	// ids are written back into the returned aggregate. Line items present
	// in storage but absent from log.LineItems are left untouched.
	Upsert(ctx context.Context, log *models.CartLog) (*models.CartLog, error)

	// Delete removes the cart log, its line items, and any linen catalog
	// rows those line items referenced that no remaining line item still
	// references, all in one transaction.
	Delete(ctx context.Context, id int64) error

	// GetView builds the joined read projection for one cart log.
	// Returns ErrCartLogNotFound if no header row exists.
	GetView(ctx context.Context, id int64) (*models.CartLogView, error)

	// ListViews returns projections matching the filter, ordered by
	// DateWeighed descending, id ascending on ties. Empty result is an
	// empty slice, not an error.
	ListViews(ctx context.Context, f Filter) ([]*models.CartLogView, error)
}
