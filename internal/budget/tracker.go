package budget

import (
	"github.com/budgetwise/backend/internal/models"
	"github.com/budgetwise/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Tracker aggregates a user's day records for one month per category.
//
// It only reads; categories without records for the month are absent from
// the returned maps.
type Tracker struct {
	db     *gorm.DB
	userID uuid.UUID
	month  types.Month
}

// NewTracker returns a Tracker for the user and month.
func NewTracker(db *gorm.DB, userID uuid.UUID, month types.Month) Tracker {
	return Tracker{
		db:     db,
		userID: userID,
		month:  month,
	}
}

// Spent returns the total spent amount per category.
func (t Tracker) Spent() (map[string]decimal.Decimal, error) {
	return t.sums("SUM(spent_amount)")
}

// Planned returns the total planned amount per category.
func (t Tracker) Planned() (map[string]decimal.Decimal, error) {
	return t.sums("SUM(planned_amount)")
}

// Remaining returns the planned minus the spent amount per category.
// The value is negative for categories that are over budget.
func (t Tracker) Remaining() (map[string]decimal.Decimal, error) {
	return t.sums("SUM(planned_amount) - SUM(spent_amount)")
}

func (t Tracker) sums(expression string) (map[string]decimal.Decimal, error) {
	var totals []struct {
		Category string
		Total    decimal.NullDecimal
	}

	err := t.db.Model(&models.DailyBudget{}).
		Select("category, " + expression + " AS total").
		Where("user_id = ? AND date >= ? AND date < ?", t.userID, t.month.First(), t.month.Next()).
		Group("category").
		Find(&totals).Error
	if err != nil {
		return nil, err
	}

	sums := make(map[string]decimal.Decimal, len(totals))
	for _, total := range totals {
		sums[total.Category] = total.Total.Decimal
	}

	return sums, nil
}
