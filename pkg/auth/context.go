package auth

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const employeeIDKey contextKey = "employee_id"

// ErrEmployeeIDNotFound is returned when no employee ID exists in the request
// context. Handlers should return 401 when this error occurs.
var ErrEmployeeIDNotFound = errors.New("employee_id not found in context")

// EmployeeIDFromCtx extracts the authenticated employee ID from the request
// context. Returns 0 and ErrEmployeeIDNotFound if none is set
// (unauthenticated request).
func EmployeeIDFromCtx(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(employeeIDKey).(int64)
	if !ok || id == 0 {
		return 0, ErrEmployeeIDNotFound
	}
	return id, nil
}

// WithEmployeeID returns a new context with the given employee ID attached.
// Used by the bearer-token middleware after validating the access token.
func WithEmployeeID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, employeeIDKey, id)
}
