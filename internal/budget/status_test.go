package budget_test

import (
	"testing"

	"github.com/budgetwise/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestUpdateDayStatus() {
	tests := []struct {
		name      string
		planned   float64
		spent     float64
		status    models.DayStatus
		overspent float64
	}{
		{"On budget", 100, 100, models.DayStatusOK, 0},
		{"Under budget", 100, 40, models.DayStatusOK, 0},
		{"Slightly over budget", 100, 108, models.DayStatusWarning, 8},
		{"On the warning boundary", 100, 110, models.DayStatusWarning, 10},
		{"Over budget", 100, 115, models.DayStatusOver, 15},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			userID := uuid.New()

			record := suite.createTestDailyBudget(models.DailyBudget{
				UserID:        userID,
				Date:          day("2024-03-05"),
				Category:      "groceries",
				PlannedAmount: amount(tt.planned),
				SpentAmount:   amount(tt.spent),
			})

			evaluation, err := suite.service.UpdateDayStatus(userID, day("2024-03-05"))
			require.Nil(t, err)

			assert.Equal(t, tt.status, evaluation.Status)
			assert.True(t, evaluation.Overspent.Equal(amount(tt.overspent)), "Overspent is %s, not %v", evaluation.Overspent, tt.overspent)
			assert.True(t, evaluation.Date.Equal(day("2024-03-05")))

			var reloaded models.DailyBudget
			require.Nil(t, models.DB.First(&reloaded, record.ID).Error)
			assert.Equal(t, tt.status, reloaded.Status)
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateDayStatusSumsAllCategories() {
	userID := uuid.New()

	// 130 planned, 145 spent over two categories: the day is 15 over
	first := suite.createTestDailyBudget(models.DailyBudget{
		UserID:        userID,
		Date:          day("2024-03-05"),
		Category:      "groceries",
		PlannedAmount: amount(100),
		SpentAmount:   amount(60),
	})

	second := suite.createTestDailyBudget(models.DailyBudget{
		UserID:        userID,
		Date:          day("2024-03-05"),
		Category:      "dining",
		PlannedAmount: amount(30),
		SpentAmount:   amount(85),
	})

	evaluation, err := suite.service.UpdateDayStatus(userID, day("2024-03-05"))
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), models.DayStatusOver, evaluation.Status)
	assert.True(suite.T(), evaluation.Overspent.Equal(amount(15)), "Overspent is %s, not 15", evaluation.Overspent)

	// Both records of the day share the status
	for _, id := range []uuid.UUID{first.ID, second.ID} {
		var reloaded models.DailyBudget
		require.Nil(suite.T(), models.DB.First(&reloaded, id).Error)
		assert.Equal(suite.T(), models.DayStatusOver, reloaded.Status)
	}
}

func (suite *TestSuiteStandard) TestUpdateDayStatusNoPlan() {
	evaluation, err := suite.service.UpdateDayStatus(uuid.New(), day("2024-03-05"))
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), models.DayStatusNoPlan, evaluation.Status)
	assert.True(suite.T(), evaluation.Overspent.Equal(decimal.Zero))
	assert.True(suite.T(), evaluation.Date.Equal(day("2024-03-05")))
}

func (suite *TestSuiteStandard) TestUpdateDayStatusIgnoresOtherDays() {
	userID := uuid.New()

	other := suite.createTestDailyBudget(models.DailyBudget{
		UserID:        userID,
		Date:          day("2024-03-06"),
		Category:      "groceries",
		PlannedAmount: amount(10),
		SpentAmount:   amount(100),
	})

	suite.createTestDailyBudget(models.DailyBudget{
		UserID:        userID,
		Date:          day("2024-03-05"),
		Category:      "groceries",
		PlannedAmount: amount(100),
		SpentAmount:   amount(10),
	})

	evaluation, err := suite.service.UpdateDayStatus(userID, day("2024-03-05"))
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), models.DayStatusOK, evaluation.Status)

	var reloaded models.DailyBudget
	require.Nil(suite.T(), models.DB.First(&reloaded, other.ID).Error)
	assert.Equal(suite.T(), models.DayStatusOK, reloaded.Status, "Untouched day must keep its stored status")
}
