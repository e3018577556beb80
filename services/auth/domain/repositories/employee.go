package repositories

import (
	"context"

	"github.com/ghuser/linentrack/services/auth/domain/models"
)

// EmployeeRepository is the persistence interface for employee accounts.
// The domain layer owns this interface; infrastructure implements it.
type EmployeeRepository interface {
	// GetByEmail returns the employee with the given email, or
	// ErrEmployeeNotFound.
	GetByEmail(ctx context.Context, email string) (*models.Employee, error)

	// GetByRefreshToken returns the employee holding the given refresh
	// token, or ErrEmployeeNotFound.
	GetByRefreshToken(ctx context.Context, token string) (*models.Employee, error)

	// SetRefreshToken stores the employee's active refresh token,
	// replacing any prior one. nil clears it (logout).
	SetRefreshToken(ctx context.Context, employeeID int64, token *string) error
}
