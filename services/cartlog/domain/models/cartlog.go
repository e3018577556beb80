package models

import "time"

// DefaultComments is substituted when a cart log is submitted or stored
// without comments.
const DefaultComments = "No comments"

// CartLog is the aggregate root: one weigh event linking a cart, a location,
// and the employee who recorded it, plus the linen line items counted on
// that cart. ID 0 means "not yet persisted".
type CartLog struct {
	ID             int64
	ReceiptNumber  string
	ReportedWeight float64
	ActualWeight   float64
	Comments       string
	DateWeighed    time.Time
	CartID         int64
	LocationID     int64
	EmployeeID     int64
	LineItems      []LineItem
}

// IsNew reports whether the cart log has not been persisted yet.
func (c *CartLog) IsNew() bool {
	return c.ID == 0
}

// Normalize applies storage defaults before validation: empty comments
// become DefaultComments.
func (c *CartLog) Normalize() {
	if c.Comments == "" {
		c.Comments = DefaultComments
	}
}

// LineItem is a (linen type, quantity) entry owned by exactly one CartLog.
// ID 0 means "not yet persisted". LinenID 0 (or a LinenID with no catalog
// row) triggers creation of a linen catalog entry from LinenName.
type LineItem struct {
	ID        int64
	CartLogID int64
	LinenID   int64
	LinenName string
	Count     int
}

// IsNew reports whether the line item has not been persisted yet.
func (l *LineItem) IsNew() bool {
	return l.ID == 0
}
