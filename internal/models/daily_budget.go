package models

import (
	"strings"
	"time"

	"github.com/budgetwise/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DayStatus describes how a day's total spend compares to its total plan.
type DayStatus string

const (
	DayStatusOK      DayStatus = "ok"
	DayStatusWarning DayStatus = "warning"
	DayStatusOver    DayStatus = "over"

	// DayStatusNoPlan is the sentinel for days without any records. It is
	// returned by evaluations, never persisted.
	DayStatusNoPlan DayStatus = "no_plan"
)

// DailyBudget is the day record: the budget planned and spent for one
// category of one user on one calendar day.
type DailyBudget struct {
	DefaultModel
	UserID        uuid.UUID       `json:"userId" gorm:"uniqueIndex:daily_budget_user_date_category"`
	Date          time.Time       `json:"date" gorm:"uniqueIndex:daily_budget_user_date_category"`
	Category      string          `json:"category" gorm:"uniqueIndex:daily_budget_user_date_category"`
	PlannedAmount decimal.Decimal `json:"plannedAmount" gorm:"type:DECIMAL(20,8)"`
	SpentAmount   decimal.Decimal `json:"spentAmount" gorm:"type:DECIMAL(20,8)"`
	Status        DayStatus       `json:"status"`
}

// Midnight normalizes a point in time to 00:00 UTC on its calendar day.
func Midnight(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// BeforeSave normalizes the date so that all day records of a calendar day
// compare equal, no matter the time of day they were recorded with.
func (d *DailyBudget) BeforeSave(_ *gorm.DB) error {
	d.Category = strings.TrimSpace(d.Category)

	if !d.Date.IsZero() {
		d.Date = Midnight(d.Date)
	}

	if d.Status == "" {
		d.Status = DayStatusOK
	}

	return nil
}

func (d *DailyBudget) AfterSave(_ *gorm.DB) error {
	if d.PlannedAmount.IsNegative() || d.SpentAmount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

// DailyBudgetsForMonth returns all day records of a user for a month.
//
// Records are sorted by date and creation time so that every caller sees
// the same deterministic order.
func DailyBudgetsForMonth(db *gorm.DB, userID uuid.UUID, month types.Month) ([]DailyBudget, error) {
	var records []DailyBudget

	err := db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, month.First(), month.Next()).
		Order("date ASC, created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

// DailyBudgetsForDay returns all day records of a user for one calendar day.
func DailyBudgetsForDay(db *gorm.DB, userID uuid.UUID, day time.Time) ([]DailyBudget, error) {
	var records []DailyBudget

	day = Midnight(day)
	err := db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, day, day.AddDate(0, 0, 1)).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}
