package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/linentrack/pkg/database"
	cartlogdomain "github.com/ghuser/linentrack/services/cartlog/domain"
	"github.com/ghuser/linentrack/services/cartlog/domain/models"
)

// CatalogRepository implements repositories.CatalogRepository against
// PostgreSQL. Carts, locations, and linens are flat reference tables;
// employees are read from the auth service's table.
type CatalogRepository struct {
	db *database.Database
}

// NewCatalogRepository returns a CatalogRepository backed by the given pool.
func NewCatalogRepository(db *database.Database) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// FindCart returns the cart with the given id, or ErrCartNotFound.
func (r *CatalogRepository) FindCart(ctx context.Context, id int64) (*models.Cart, error) {
	var c models.Cart
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT cart_id, COALESCE(name, 'Unknown'), COALESCE(weight, 0), COALESCE(type, 'Unknown')
		 FROM carts WHERE cart_id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Weight, &c.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cartlogdomain.ErrCartNotFound
		}
		return nil, fmt.Errorf("query cart: %w", err)
	}
	return &c, nil
}

// FindLocation returns the location with the given id, or ErrLocationNotFound.
func (r *CatalogRepository) FindLocation(ctx context.Context, id int64) (*models.Location, error) {
	var l models.Location
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT location_id, COALESCE(name, 'Unknown'), COALESCE(type, 'Unknown')
		 FROM locations WHERE location_id = $1`, id,
	).Scan(&l.ID, &l.Name, &l.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cartlogdomain.ErrLocationNotFound
		}
		return nil, fmt.Errorf("query location: %w", err)
	}
	return &l, nil
}

// FindEmployee returns the employee reference with the given id, or
// ErrEmployeeNotFound.
func (r *CatalogRepository) FindEmployee(ctx context.Context, id int64) (*models.EmployeeRef, error) {
	var e models.EmployeeRef
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT employee_id, COALESCE(name, 'Unknown') FROM employees WHERE employee_id = $1`, id,
	).Scan(&e.ID, &e.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cartlogdomain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("query employee: %w", err)
	}
	return &e, nil
}

// FindOrCreateLinen resolves a line item's linen reference inside the
// caller's transaction. An id of 0 or an id with no backing row creates a
// new linen from the submitted name (weight 0); an existing row gets its
// name refreshed. Returns the resolved linen id.
func (r *CatalogRepository) FindOrCreateLinen(ctx context.Context, tx *sql.Tx, id int64, name string) (int64, error) {
	if id != 0 {
		if name != "" {
			res, err := tx.ExecContext(ctx,
				`UPDATE linens SET name = $2 WHERE linen_id = $1`, id, name)
			if err != nil {
				return 0, fmt.Errorf("update linen: %w", err)
			}
			if n, err := res.RowsAffected(); err == nil && n > 0 {
				return id, nil
			}
		} else {
			var existing int64
			err := tx.QueryRowContext(ctx,
				`SELECT linen_id FROM linens WHERE linen_id = $1`, id).Scan(&existing)
			if err == nil {
				return existing, nil
			}
			if !errors.Is(err, sql.ErrNoRows) {
				return 0, fmt.Errorf("query linen: %w", err)
			}
		}
	}

	var newID int64
	if err := tx.QueryRowContext(ctx,
		`INSERT INTO linens (name, weight) VALUES ($1, 0) RETURNING linen_id`, name,
	).Scan(&newID); err != nil {
		return 0, fmt.Errorf("insert linen: %w", err)
	}
	return newID, nil
}
