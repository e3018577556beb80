package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/linentrack/pkg/database"
	authdomain "github.com/ghuser/linentrack/services/auth/domain"
	"github.com/ghuser/linentrack/services/auth/domain/models"
)

// EmployeeRepository implements repositories.EmployeeRepository against
// PostgreSQL.
type EmployeeRepository struct {
	db *database.Database
}

// NewEmployeeRepository returns an EmployeeRepository backed by the given pool.
func NewEmployeeRepository(db *database.Database) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

const employeeSelect = `
	SELECT employee_id, name, email, password_hash, refresh_token
	FROM employees`

// GetByEmail returns the employee with the given email.
func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*models.Employee, error) {
	return r.scanOne(r.db.DB().QueryRowContext(ctx, employeeSelect+` WHERE email = $1`, email))
}

// GetByRefreshToken returns the employee holding the given refresh token.
func (r *EmployeeRepository) GetByRefreshToken(ctx context.Context, token string) (*models.Employee, error) {
	return r.scanOne(r.db.DB().QueryRowContext(ctx, employeeSelect+` WHERE refresh_token = $1`, token))
}

// SetRefreshToken stores or clears the employee's active refresh token.
func (r *EmployeeRepository) SetRefreshToken(ctx context.Context, employeeID int64, token *string) error {
	res, err := r.db.DB().ExecContext(ctx,
		`UPDATE employees SET refresh_token = $2 WHERE employee_id = $1`, employeeID, token)
	if err != nil {
		return fmt.Errorf("update refresh token: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return authdomain.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) scanOne(row *sql.Row) (*models.Employee, error) {
	var (
		e     models.Employee
		token sql.NullString
	)
	if err := row.Scan(&e.ID, &e.Name, &e.Email, &e.PasswordHash, &token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authdomain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("query employee: %w", err)
	}
	if token.Valid {
		e.RefreshToken = &token.String
	}
	return &e, nil
}
