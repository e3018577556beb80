package repositories

import (
	"context"

	"github.com/ghuser/linentrack/services/cartlog/domain/models"
)

// CatalogRepository exposes the flat lookup tables the reconciliation
// engine validates foreign keys against. Each Find returns the matching
// domain sentinel error when the row is absent.
type CatalogRepository interface {
	FindCart(ctx context.Context, id int64) (*models.Cart, error)
	FindLocation(ctx context.Context, id int64) (*models.Location, error)
	FindEmployee(ctx context.Context, id int64) (*models.EmployeeRef, error)
}
