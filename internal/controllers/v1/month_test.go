package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/budgetwise/backend/internal/budget"
	v1 "github.com/budgetwise/backend/internal/controllers/v1"
	"github.com/budgetwise/backend/internal/models"
	"github.com/budgetwise/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestMonthsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/months", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/months/redistribution", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/days/status", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestMonthsGet() {
	userID := uuid.New()

	createTestDailyBudget(suite.T(), v1.DailyBudgetEditable{UserID: userID, Date: day("2024-03-05"), Category: "groceries", PlannedAmount: amount(100), SpentAmount: amount(40)})
	createTestDailyBudget(suite.T(), v1.DailyBudgetEditable{UserID: userID, Date: day("2024-03-12"), Category: "groceries", PlannedAmount: amount(50), SpentAmount: amount(30)})
	createTestDailyBudget(suite.T(), v1.DailyBudgetEditable{UserID: userID, Date: day("2024-03-10"), Category: "dining", PlannedAmount: amount(20), SpentAmount: amount(35)})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/months?user=%s&month=2024-03", userID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	data := *response.Data

	assert.Equal(suite.T(), userID, data.UserID)
	assert.True(suite.T(), data.Planned.Equal(amount(170)), "Planned is %s, not 170", data.Planned)
	assert.True(suite.T(), data.Spent.Equal(amount(105)), "Spent is %s, not 105", data.Spent)
	assert.True(suite.T(), data.Remaining.Equal(amount(65)), "Remaining is %s, not 65", data.Remaining)

	// Categories are sorted alphabetically
	require.Len(suite.T(), data.Categories, 2)
	assert.Equal(suite.T(), "dining", data.Categories[0].Category)
	assert.True(suite.T(), data.Categories[0].Remaining.Equal(amount(-15)), "dining remaining is %s, not -15", data.Categories[0].Remaining)
	assert.Equal(suite.T(), "groceries", data.Categories[1].Category)
	assert.True(suite.T(), data.Categories[1].Planned.Equal(amount(150)), "groceries planned is %s, not 150", data.Categories[1].Planned)
}

func (suite *TestSuiteStandard) TestMonthsGetEmpty() {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/months?user=%s&month=2024-03", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Empty(suite.T(), response.Data.Categories)
	assert.True(suite.T(), response.Data.Planned.IsZero())
}

func (suite *TestSuiteStandard) TestMonthsGetInvalidQuery() {
	tests := []struct {
		name  string
		query string
	}{
		{"No user", "month=2024-03"},
		{"No month", fmt.Sprintf("user=%s", uuid.New())},
		{"Invalid user", "user=NotAUUID&month=2024-03"},
		{"Invalid month", fmt.Sprintf("user=%s&month=March", uuid.New())},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/months?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestMonthsRedistribute() {
	userID := uuid.New()

	createTestDailyBudget(suite.T(), v1.DailyBudgetEditable{UserID: userID, Date: day("2024-03-03"), Category: "groceries", PlannedAmount: amount(100), SpentAmount: amount(50)})
	createTestDailyBudget(suite.T(), v1.DailyBudgetEditable{UserID: userID, Date: day("2024-03-05"), Category: "rent", PlannedAmount: amount(100), SpentAmount: amount(150)})

	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/months/redistribution?user=%s&month=2024-03", userID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RedistributionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), budget.RedistributionStatus, response.Data.Status)

	require.Len(suite.T(), response.Data.Log, 1)
	transfer := response.Data.Log[0]
	assert.Equal(suite.T(), "groceries", transfer.From)
	assert.Equal(suite.T(), "rent", transfer.To)
	assert.True(suite.T(), transfer.Amount.Equal(amount(50)), "Transfer amount is %s, not 50", transfer.Amount)

	// The donor's planned amount is reduced in the database
	var donor models.DailyBudget
	require.Nil(suite.T(), models.DB.Where(&models.DailyBudget{
		UserID:   userID,
		Date:     day("2024-03-03"),
		Category: "groceries",
	}).First(&donor).Error)
	assert.True(suite.T(), donor.PlannedAmount.Equal(amount(50)), "Donor planned amount is %s, not 50", donor.PlannedAmount)
}

func (suite *TestSuiteStandard) TestMonthsRedistributeInvalidQuery() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/months/redistribution?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDayStatusUpdate() {
	userID := uuid.New()

	createTestDailyBudget(suite.T(), v1.DailyBudgetEditable{UserID: userID, Date: day("2024-03-05"), Category: "groceries", PlannedAmount: amount(100), SpentAmount: amount(108)})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/days/status", v1.DayStatusEditable{
		UserID: userID,
		Date:   day("2024-03-05"),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DayStatusResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), models.DayStatusWarning, response.Data.Status)
	assert.True(suite.T(), response.Data.Overspent.Equal(amount(8)), "Overspent is %s, not 8", response.Data.Overspent)
}

func (suite *TestSuiteStandard) TestDayStatusNoPlan() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/days/status", v1.DayStatusEditable{
		UserID: uuid.New(),
		Date:   day("2024-03-05"),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DayStatusResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), models.DayStatusNoPlan, response.Data.Status)
}

func (suite *TestSuiteStandard) TestDayStatusInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/days/status", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Missing date
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/days/status", v1.DayStatusEditable{UserID: uuid.New()})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.DayStatusResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "the date must be set", *response.Error)
}
