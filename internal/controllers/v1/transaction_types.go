package v1

import (
	"fmt"
	"time"

	"github.com/budgetwise/backend/internal/budget"
	"github.com/budgetwise/backend/internal/httputil"
	"github.com/budgetwise/backend/internal/models"
	bw_uuid "github.com/budgetwise/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters of a transaction
type TransactionEditable struct {
	UserID   uuid.UUID       `json:"userId" example:"d537395a-d9ca-4bba-b60c-6e28add2b690"` // ID of the user the transaction belongs to
	Date     time.Time       `json:"date" example:"2024-03-05T14:03:00Z"`                   // Date of the transaction
	Category string          `json:"category" example:"groceries"`                          // Category the amount was spent on
	Amount   decimal.Decimal `json:"amount" example:"14.5"`                                 // The amount spent
	Note     string          `json:"note" example:"Weekly groceries"`                       // A note about the transaction
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		UserID:   editable.UserID,
		Date:     editable.Date,
		Category: editable.Category,
		Amount:   editable.Amount,
		Note:     editable.Note,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`

	// Day is the evaluation of the transaction's day after the amount was
	// applied. Only set when the transaction was just created.
	Day *budget.DayEvaluation `json:"day,omitempty"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := httputil.URL(c)

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			UserID:   model.UserID,
			Date:     model.Date,
			Category: model.Category,
			Amount:   model.Amount,
			Note:     model.Note,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`       // List of transactions
	Error      *string       `json:"error"`      // The error, if any occurred
	Pagination *Pagination   `json:"pagination"` // Pagination information
}

type TransactionCreateResponse struct {
	Data  []TransactionResponse `json:"data"`  // List of the created transactions or their respective error
	Error *string               `json:"error"` // The error, if any occurred
}

func (r *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, TransactionResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`  // Data for the transaction
	Error *string      `json:"error"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	UserID   bw_uuid.UUID `form:"user"`                       // By ID of the user
	Month    string       `form:"month"`                      // By month in YYYY-MM format
	Category string       `form:"category"`                   // By category
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first transaction returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of transactions to return. Defaults to 50.
}
