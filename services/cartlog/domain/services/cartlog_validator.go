// Package services contains stateless domain services for the cart-log
// bounded context. Domain services enforce business rules that operate
// purely on domain types and have zero external dependencies beyond stdlib
// and the domain layer.
package services

import (
	"fmt"

	"github.com/ghuser/linentrack/services/cartlog/domain/models"
)

// ValidateForUpsert checks the structural preconditions of an upsert:
// required header fields present and every line item well-formed. It does
// not check catalog references' existence; that is the application
// service's job.
func ValidateForUpsert(log *models.CartLog) error {
	if log == nil {
		return fmt.Errorf("cart log cannot be nil")
	}
	if log.ReceiptNumber == "" {
		return fmt.Errorf("receipt number is required")
	}
	if log.ActualWeight < 0 {
		return fmt.Errorf("actual weight must not be negative")
	}
	if log.DateWeighed.IsZero() {
		return fmt.Errorf("date weighed is required")
	}
	if log.CartID == 0 {
		return fmt.Errorf("cart id is required")
	}
	if log.LocationID == 0 {
		return fmt.Errorf("location id is required")
	}
	if log.EmployeeID == 0 {
		return fmt.Errorf("employee id is required")
	}
	for i := range log.LineItems {
		if err := validateLineItem(&log.LineItems[i]); err != nil {
			return fmt.Errorf("line item %d: %w", i, err)
		}
	}
	return nil
}

func validateLineItem(item *models.LineItem) error {
	if item.Count < 0 {
		return fmt.Errorf("count must not be negative")
	}
	// A new or dangling linen reference needs a name to create the catalog
	// row from.
	if item.LinenID == 0 && item.LinenName == "" {
		return fmt.Errorf("linen name is required when no linen id is given")
	}
	return nil
}
