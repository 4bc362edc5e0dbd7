package budget_test

import (
	"github.com/budgetwise/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRecordExpense() {
	userID := uuid.New()

	suite.createTestDailyBudget(models.DailyBudget{
		UserID:        userID,
		Date:          day("2024-03-05"),
		Category:      "groceries",
		PlannedAmount: amount(100),
		SpentAmount:   amount(20),
	})

	transaction := models.Transaction{
		UserID:   userID,
		Date:     day("2024-03-05"),
		Category: "groceries",
		Amount:   amount(30),
		Note:     "Weekly shopping",
	}

	evaluation, err := suite.service.RecordExpense(&transaction)
	require.Nil(suite.T(), err)

	assert.NotEqual(suite.T(), uuid.Nil, transaction.ID, "Transaction was not persisted")
	assert.Equal(suite.T(), models.DayStatusOK, evaluation.Status)

	var record models.DailyBudget
	require.Nil(suite.T(), models.DB.Where(&models.DailyBudget{
		UserID:   userID,
		Date:     day("2024-03-05"),
		Category: "groceries",
	}).First(&record).Error)

	assert.True(suite.T(), record.SpentAmount.Equal(amount(50)), "Spent amount is %s, not 50", record.SpentAmount)
}

func (suite *TestSuiteStandard) TestRecordExpenseCreatesDayRecord() {
	userID := uuid.New()

	transaction := models.Transaction{
		UserID:   userID,
		Date:     day("2024-03-05"),
		Category: "dining",
		Amount:   amount(42),
	}

	evaluation, err := suite.service.RecordExpense(&transaction)
	require.Nil(suite.T(), err)

	// Unplanned spending of 42 puts the day over its plan of zero
	assert.Equal(suite.T(), models.DayStatusOver, evaluation.Status)
	assert.True(suite.T(), evaluation.Overspent.Equal(amount(42)), "Overspent is %s, not 42", evaluation.Overspent)

	var record models.DailyBudget
	require.Nil(suite.T(), models.DB.Where(&models.DailyBudget{
		UserID:   userID,
		Date:     day("2024-03-05"),
		Category: "dining",
	}).First(&record).Error)

	assert.True(suite.T(), record.PlannedAmount.IsZero(), "Planned amount is %s, not 0", record.PlannedAmount)
	assert.True(suite.T(), record.SpentAmount.Equal(amount(42)), "Spent amount is %s, not 42", record.SpentAmount)
	assert.Equal(suite.T(), models.DayStatusOver, record.Status)
}

// TestRecordExpenseWithoutDate verifies that a transaction posted without a
// date is booked for today, so it is applied and serialized under the month
// it is actually written to.
func (suite *TestSuiteStandard) TestRecordExpenseWithoutDate() {
	userID := uuid.New()

	transaction := models.Transaction{
		UserID:   userID,
		Category: "dining",
		Amount:   amount(5),
	}

	evaluation, err := suite.service.RecordExpense(&transaction)
	require.Nil(suite.T(), err)

	require.False(suite.T(), transaction.Date.IsZero())
	assert.True(suite.T(), evaluation.Date.Equal(models.Midnight(transaction.Date)), "Evaluated day %s does not match the transaction date %s", evaluation.Date, transaction.Date)

	var record models.DailyBudget
	require.Nil(suite.T(), models.DB.Where(&models.DailyBudget{
		UserID:   userID,
		Date:     models.Midnight(transaction.Date),
		Category: "dining",
	}).First(&record).Error)

	assert.True(suite.T(), record.SpentAmount.Equal(amount(5)))
}

func (suite *TestSuiteStandard) TestRecordExpenseUpdatesStatus() {
	userID := uuid.New()

	suite.createTestDailyBudget(models.DailyBudget{
		UserID:        userID,
		Date:          day("2024-03-05"),
		Category:      "groceries",
		PlannedAmount: amount(100),
		SpentAmount:   amount(95),
	})

	evaluation, err := suite.service.RecordExpense(&models.Transaction{
		UserID:   userID,
		Date:     day("2024-03-05"),
		Category: "groceries",
		Amount:   amount(13),
	})
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), models.DayStatusWarning, evaluation.Status)
	assert.True(suite.T(), evaluation.Overspent.Equal(amount(8)), "Overspent is %s, not 8", evaluation.Overspent)
}
