package models

// Catalog reference data. These are flat lookup rows with no behavior;
// cart logs reference them by id.

// Cart is a physical linen cart.
type Cart struct {
	ID     int64
	Name   string
	Weight float64
	Type   string
}

// SoiledCartType marks carts whose line items are suppressed in the
// single-log read view.
const SoiledCartType = "Soiled"

// Location is a place a cart is weighed at.
type Location struct {
	ID   int64
	Name string
	Type string
}

// Linen is a named linen category (e.g. "Sheet") referenced by line items.
// Rows are created implicitly when a line item references an unknown id.
type Linen struct {
	ID     int64
	Name   string
	Weight float64
}

// EmployeeRef is the slice of an employee visible to the cart-log context.
// Credentials live in the auth service.
type EmployeeRef struct {
	ID   int64
	Name string
}
