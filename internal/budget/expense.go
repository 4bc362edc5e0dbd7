package budget

import (
	"time"

	"github.com/budgetwise/backend/internal/models"
	"github.com/budgetwise/backend/internal/types"
	"gorm.io/gorm"
)

// RecordExpense stores a transaction, applies its amount to the matching
// day record and re-evaluates the day's status.
//
// If the user has no day record for the transaction's day and category yet,
// one is created with a planned amount of zero, so untracked spending still
// shows up in the month's aggregates.
func (s *Service) RecordExpense(transaction *models.Transaction) (DayEvaluation, error) {
	// The model's BeforeSave hook applies the same fallback, but the lock
	// has to cover the month the transaction is actually written to.
	if transaction.Date.IsZero() {
		transaction.Date = time.Now().In(time.UTC)
	}

	unlock := s.locks.Acquire(transaction.UserID, types.MonthOf(transaction.Date))
	defer unlock()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return err
		}

		var record models.DailyBudget
		err := tx.Where(&models.DailyBudget{
			UserID:   transaction.UserID,
			Date:     models.Midnight(transaction.Date),
			Category: transaction.Category,
		}).FirstOrCreate(&record).Error
		if err != nil {
			return err
		}

		record.SpentAmount = record.SpentAmount.Add(transaction.Amount)
		return tx.Model(&record).Update("spent_amount", record.SpentAmount).Error
	})
	if err != nil {
		return DayEvaluation{}, err
	}

	return s.UpdateDayStatus(transaction.UserID, transaction.Date)
}
