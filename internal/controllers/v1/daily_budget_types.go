package v1

import (
	"fmt"
	"time"

	"github.com/budgetwise/backend/internal/httputil"
	"github.com/budgetwise/backend/internal/models"
	"github.com/budgetwise/backend/internal/types"
	bw_uuid "github.com/budgetwise/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyBudgetEditable represents all user configurable parameters of a day record
type DailyBudgetEditable struct {
	UserID        uuid.UUID       `json:"userId" example:"d537395a-d9ca-4bba-b60c-6e28add2b690"` // ID of the user the day record belongs to
	Date          time.Time       `json:"date" example:"2024-03-05T00:00:00Z"`                   // Calendar day the record is for
	Category      string          `json:"category" example:"groceries"`                          // Category the budget is planned for
	PlannedAmount decimal.Decimal `json:"plannedAmount" example:"25"`                            // Budget planned for this category on this day
	SpentAmount   decimal.Decimal `json:"spentAmount" example:"12.5"`                            // Amount already spent
}

func (editable DailyBudgetEditable) model() models.DailyBudget {
	return models.DailyBudget{
		UserID:        editable.UserID,
		Date:          editable.Date,
		Category:      editable.Category,
		PlannedAmount: editable.PlannedAmount,
		SpentAmount:   editable.SpentAmount,
	}
}

type DailyBudgetLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/daily-budgets/3b1ea324-d438-4419-882a-2fc91d71772f"` // The day record itself
}

type DailyBudget struct {
	models.DefaultModel
	DailyBudgetEditable
	Status models.DayStatus `json:"status" example:"ok"` // Status of the day, derived
	Links  DailyBudgetLinks `json:"links"`
}

func newDailyBudget(c *gin.Context, model models.DailyBudget) DailyBudget {
	url := httputil.URL(c)

	return DailyBudget{
		DefaultModel: model.DefaultModel,
		DailyBudgetEditable: DailyBudgetEditable{
			UserID:        model.UserID,
			Date:          model.Date,
			Category:      model.Category,
			PlannedAmount: model.PlannedAmount,
			SpentAmount:   model.SpentAmount,
		},
		Status: model.Status,
		Links: DailyBudgetLinks{
			Self: fmt.Sprintf("%s/v1/daily-budgets/%s", url, model.ID),
		},
	}
}

type DailyBudgetListResponse struct {
	Data       []DailyBudget `json:"data"`                                                // List of day records
	Error      *string       `json:"error" example:"the user query parameter must be set"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                          // Pagination information
}

type DailyBudgetCreateResponse struct {
	Data  []DailyBudgetResponse `json:"data"`  // List of the created day records or their respective error
	Error *string               `json:"error"` // The error, if any occurred
}

func (r *DailyBudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, DailyBudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type DailyBudgetResponse struct {
	Data  *DailyBudget `json:"data"`  // Data for the day record
	Error *string      `json:"error"` // The error, if any occurred
}

type DailyBudgetQueryFilter struct {
	UserID   bw_uuid.UUID `form:"user"`                       // By ID of the user
	Month    string       `form:"month"`                      // By month in YYYY-MM format
	Category string       `form:"category"`                   // By category
	Status   string       `form:"status"`                     // By status
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first record returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of records to return. Defaults to 50.
}

func (f DailyBudgetQueryFilter) parseMonth() (types.Month, error) {
	if f.Month == "" {
		return types.Month{}, nil
	}

	return types.ParseMonth(f.Month)
}
