package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction represents an expense recorded against a category.
type Transaction struct {
	DefaultModel
	UserID   uuid.UUID       `json:"userId"`
	Date     time.Time       `json:"date"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Note     string          `json:"note"`
}

// BeforeSave sets the timezone for the Date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	t.Category = strings.TrimSpace(t.Category)
	t.Note = strings.TrimSpace(t.Note)

	return nil
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
func (t *Transaction) AfterFind(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	return nil
}
