package domain

import "errors"

// Sentinel errors for the cart-log domain. Use errors.Is() to check these.
var (
	// ErrCartLogNotFound indicates the requested cart log does not exist.
	ErrCartLogNotFound = errors.New("cart log not found")

	// ErrNotOwner indicates the caller is not the employee who recorded the
	// cart log. Mutations are permitted only to the owning employee.
	ErrNotOwner = errors.New("cart log belongs to another employee")

	// ErrValidation indicates a missing or malformed required field on a
	// submitted cart log or one of its line items.
	ErrValidation = errors.New("invalid cart log")

	// ErrCartNotFound indicates the referenced cart catalog row is absent.
	ErrCartNotFound = errors.New("cart not found")

	// ErrLocationNotFound indicates the referenced location catalog row is absent.
	ErrLocationNotFound = errors.New("location not found")

	// ErrEmployeeNotFound indicates the referenced employee is absent.
	ErrEmployeeNotFound = errors.New("employee not found")
)
