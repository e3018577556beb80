package models

import "time"

// UnknownName is substituted for null catalog names and types in read views.
const UnknownName = "Unknown"

// CartLogView is the read-side projection of a cart log joined to its
// catalog references. A nil Cart, Location, or Employee means the referenced
// catalog row no longer exists; the projection never fails because of a
// dangling reference.
type CartLogView struct {
	ID             int64
	ReceiptNumber  string
	ReportedWeight float64
	ActualWeight   float64
	Comments       string
	DateWeighed    time.Time
	Cart           *Cart
	Location       *Location
	Employee       *EmployeeRef
	LineItems      []LineItemView
}

// LineItemView is a line item joined to its linen catalog name.
type LineItemView struct {
	ID      int64
	LinenID int64
	Name    string
	Count   int
}
