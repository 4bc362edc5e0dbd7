package budget

import (
	"time"

	"github.com/budgetwise/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// warningThreshold is the amount in currency units a day may be overspent
// before its status changes from "warning" to "over".
var warningThreshold = decimal.NewFromInt(10)

// DayEvaluation is the result of evaluating one user-day.
type DayEvaluation struct {
	Status    models.DayStatus `json:"status" example:"warning"` // Status of the day
	Overspent decimal.Decimal  `json:"overspent" example:"8.5"`  // Amount spent above the day's plan
	Date      time.Time        `json:"date"`                     // The day that was evaluated
}

// UpdateDayStatus evaluates all of a user's day records for one calendar day
// and writes the resulting status back to every record of that day.
//
// A day without records yields the no_plan status and no error, so callers
// can tell an untracked day apart from an on-budget one.
func (s *Service) UpdateDayStatus(userID uuid.UUID, day time.Time) (DayEvaluation, error) {
	day = models.Midnight(day)

	records, err := models.DailyBudgetsForDay(s.db, userID, day)
	if err != nil {
		return DayEvaluation{}, err
	}

	if len(records) == 0 {
		return DayEvaluation{
			Status:    models.DayStatusNoPlan,
			Overspent: decimal.Zero,
			Date:      day,
		}, nil
	}

	planned := decimal.Zero
	spent := decimal.Zero
	for _, record := range records {
		planned = planned.Add(record.PlannedAmount)
		spent = spent.Add(record.SpentAmount)
	}

	delta := spent.Sub(planned)

	status := models.DayStatusOK
	switch {
	case delta.GreaterThan(warningThreshold):
		status = models.DayStatusOver
	case delta.IsPositive():
		status = models.DayStatusWarning
	}

	// All records of a day share one status value
	err = s.db.Model(&models.DailyBudget{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, day, day.AddDate(0, 0, 1)).
		Update("status", status).Error
	if err != nil {
		return DayEvaluation{}, err
	}

	overspent := decimal.Zero
	if delta.IsPositive() {
		overspent = delta.Round(2)
	}

	return DayEvaluation{
		Status:    status,
		Overspent: overspent,
		Date:      day,
	}, nil
}
