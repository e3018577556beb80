package domain

import "errors"

// Sentinel errors for the auth domain. Use errors.Is() to check these.
var (
	// ErrInvalidCredentials covers unknown email, wrong password, and
	// unknown or revoked refresh tokens. Callers never learn which.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmployeeNotFound indicates the employee row is absent.
	ErrEmployeeNotFound = errors.New("employee not found")
)
