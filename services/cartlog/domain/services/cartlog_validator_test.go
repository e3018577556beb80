package services

import (
	"testing"
	"time"

	"github.com/ghuser/linentrack/services/cartlog/domain/models"
)

func baseLog() *models.CartLog {
	return &models.CartLog{
		ReceiptNumber: "R-1",
		ActualWeight:  10,
		DateWeighed:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CartID:        1,
		LocationID:    1,
		EmployeeID:    1,
	}
}

func TestValidateForUpsert(t *testing.T) {
	t.Run("nil log", func(t *testing.T) {
		if err := ValidateForUpsert(nil); err == nil {
			t.Error("expected error for nil log")
		}
	})

	t.Run("valid minimal log", func(t *testing.T) {
		if err := ValidateForUpsert(baseLog()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("zero actual weight is allowed", func(t *testing.T) {
		log := baseLog()
		log.ActualWeight = 0
		if err := ValidateForUpsert(log); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("zero count is allowed", func(t *testing.T) {
		log := baseLog()
		log.LineItems = []models.LineItem{{LinenName: "Sheet", Count: 0}}
		if err := ValidateForUpsert(log); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("existing linen id without name is allowed", func(t *testing.T) {
		log := baseLog()
		log.LineItems = []models.LineItem{{LinenID: 7, Count: 1}}
		if err := ValidateForUpsert(log); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	invalid := []struct {
		name   string
		mutate func(*models.CartLog)
	}{
		{"empty receipt number", func(l *models.CartLog) { l.ReceiptNumber = "" }},
		{"negative actual weight", func(l *models.CartLog) { l.ActualWeight = -0.1 }},
		{"zero date weighed", func(l *models.CartLog) { l.DateWeighed = time.Time{} }},
		{"zero cart id", func(l *models.CartLog) { l.CartID = 0 }},
		{"zero location id", func(l *models.CartLog) { l.LocationID = 0 }},
		{"zero employee id", func(l *models.CartLog) { l.EmployeeID = 0 }},
		{"negative line item count", func(l *models.CartLog) {
			l.LineItems = []models.LineItem{{LinenName: "Sheet", Count: -1}}
		}},
		{"new linen without name", func(l *models.CartLog) {
			l.LineItems = []models.LineItem{{Count: 1}}
		}},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			log := baseLog()
			tc.mutate(log)
			if err := ValidateForUpsert(log); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	log := baseLog()
	log.Comments = ""
	log.Normalize()
	if log.Comments != models.DefaultComments {
		t.Errorf("expected %q, got %q", models.DefaultComments, log.Comments)
	}

	log.Comments = "left wheel sticking"
	log.Normalize()
	if log.Comments != "left wheel sticking" {
		t.Errorf("existing comments must not be replaced, got %q", log.Comments)
	}
}
