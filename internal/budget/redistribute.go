package budget

import (
	"time"

	"github.com/budgetwise/backend/internal/models"
	"github.com/budgetwise/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// epsilon is the band around zero within which a category's month delta
// counts as balanced. Deltas this small are decimal noise, not budget.
var epsilon = decimal.New(1, -2)

// RedistributionStatus is the status value of a completed redistribution.
const RedistributionStatus = "redistributed"

// Transfer is one entry of the redistribution log: an amount moved from a
// donor category's day record into a deficit category.
type Transfer struct {
	From    string          `json:"from" example:"groceries"` // Category the amount was taken from
	To      string          `json:"to" example:"rent"`        // Category the amount was given to
	Amount  decimal.Decimal `json:"amount" example:"50"`      // Amount moved, rounded to cents
	FromDay time.Time       `json:"fromDay"`                  // Date of the donor day record
}

// Redistribution is the result of one redistribution run.
type Redistribution struct {
	Status string     `json:"status" example:"redistributed"`
	Log    []Transfer `json:"log"` // Ordered list of transfers
}

// Redistribute moves unused planned budget of a user's month from
// under-spent categories into over-spent ones.
//
// Surplus and deficit are computed per category over the whole month.
// Donors are drawn down day record by day record, earliest date first, and
// a donor's planned amount never drops below its spent amount. The total
// collected for a deficit category lands on that category's earliest day
// record. The sum of planned amounts over the month is unchanged.
//
// All mutations happen in one transaction; on error nothing is committed.
// Runs for the same user and month are serialized.
func (s *Service) Redistribute(userID uuid.UUID, month types.Month) (Redistribution, error) {
	unlock := s.locks.Acquire(userID, month)
	defer unlock()

	result := Redistribution{
		Status: RedistributionStatus,
		Log:    make([]Transfer, 0),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		records, err := models.DailyBudgetsForMonth(tx, userID, month)
		if err != nil {
			return err
		}

		// Group the records by category. The records are sorted by date, so
		// both the per-category record lists and the category discovery
		// order are deterministic. Discovery order is the processing order
		// for donors and receivers; there is no magnitude priority.
		categories := make([]string, 0)
		recordsFor := make(map[string][]*models.DailyBudget)
		deltas := make(map[string]decimal.Decimal)

		for i := range records {
			record := &records[i]
			if _, ok := recordsFor[record.Category]; !ok {
				categories = append(categories, record.Category)
				deltas[record.Category] = decimal.Zero
			}

			recordsFor[record.Category] = append(recordsFor[record.Category], record)
			deltas[record.Category] = deltas[record.Category].Add(record.PlannedAmount.Sub(record.SpentAmount))
		}

		donors := make([]string, 0, len(categories))
		receivers := make([]string, 0, len(categories))
		surplus := make(map[string]decimal.Decimal)

		for _, category := range categories {
			delta := deltas[category]
			switch {
			case delta.GreaterThan(epsilon):
				donors = append(donors, category)
				surplus[category] = delta
			case delta.LessThan(epsilon.Neg()):
				receivers = append(receivers, category)
			}
		}

		for _, receiver := range receivers {
			deficit := deltas[receiver].Neg()
			transferred := decimal.Zero

			for _, donor := range donors {
				if donor == receiver {
					continue
				}

				available := surplus[donor]
				if !available.IsPositive() {
					continue
				}

				transfer := decimal.Min(available, deficit.Sub(transferred))
				if !transfer.IsPositive() {
					continue
				}

				// Draw the transfer from the donor's day records, earliest
				// date first, never below a record's spent amount.
				for _, record := range recordsFor[donor] {
					daySurplus := record.PlannedAmount.Sub(record.SpentAmount)
					take := decimal.Min(daySurplus, transfer)
					if !take.IsPositive() {
						continue
					}

					record.PlannedAmount = record.PlannedAmount.Sub(take)
					err := tx.Model(record).Update("planned_amount", record.PlannedAmount).Error
					if err != nil {
						return err
					}

					available = available.Sub(take)
					transfer = transfer.Sub(take)
					transferred = transferred.Add(take)

					result.Log = append(result.Log, Transfer{
						From:    donor,
						To:      receiver,
						Amount:  take.Round(2),
						FromDay: record.Date,
					})

					if !transfer.IsPositive() {
						break
					}
				}

				surplus[donor] = available
			}

			if transferred.IsPositive() {
				err := applyAggregatedRelief(tx, recordsFor[receiver], transferred)
				if err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return Redistribution{}, err
	}

	log.Debug().
		Str("user", userID.String()).
		Str("month", month.String()).
		Int("transfers", len(result.Log)).
		Msg("redistribution complete")

	return result, nil
}

// applyAggregatedRelief credits the whole collected amount to the
// receiver's earliest day record.
//
// Concentrating the relief on a single day is the current placement policy.
// A policy that spreads the amount across the receiver's days only needs to
// replace this step, the surplus discovery above stays untouched.
func applyAggregatedRelief(tx *gorm.DB, records []*models.DailyBudget, amount decimal.Decimal) error {
	earliest := records[0]
	earliest.PlannedAmount = earliest.PlannedAmount.Add(amount)
	return tx.Model(earliest).Update("planned_amount", earliest.PlannedAmount).Error
}
