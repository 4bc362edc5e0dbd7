package v1

import (
	"net/http"
	"sort"
	"time"

	"github.com/budgetwise/backend/internal/budget"
	"github.com/budgetwise/backend/internal/httputil"
	"github.com/budgetwise/backend/internal/models"
	"github.com/budgetwise/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MonthResponse struct {
	Data  *Month  `json:"data"`  // Data for the month
	Error *string `json:"error"` // The error, if any occurred
}

type Month struct {
	UserID     uuid.UUID       `json:"userId" example:"d537395a-d9ca-4bba-b60c-6e28add2b690"` // The ID of the user
	Month      types.Month     `json:"month" example:"2024-03-01T00:00:00Z"`                  // The month
	Planned    decimal.Decimal `json:"planned" example:"750"`                                 // Sum of all planned amounts of the month
	Spent      decimal.Decimal `json:"spent" example:"623.4"`                                 // Sum of all spent amounts of the month
	Remaining  decimal.Decimal `json:"remaining" example:"126.6"`                             // Planned minus spent over the whole month
	Categories []MonthCategory `json:"categories"`                                            // Per-category totals
}

type MonthCategory struct {
	Category  string          `json:"category" example:"groceries"` // The category
	Planned   decimal.Decimal `json:"planned" example:"250"`        // Planned amount for the month
	Spent     decimal.Decimal `json:"spent" example:"123.4"`        // Spent amount for the month
	Remaining decimal.Decimal `json:"remaining" example:"126.6"`    // Planned minus spent; negative when over budget
}

type RedistributionResponse struct {
	Data  *budget.Redistribution `json:"data"`  // The redistribution result with its transfer log
	Error *string                `json:"error"` // The error, if any occurred
}

type DayStatusResponse struct {
	Data  *budget.DayEvaluation `json:"data"`  // The evaluation of the day
	Error *string               `json:"error"` // The error, if any occurred
}

// DayStatusEditable is the request body for a day status evaluation.
type DayStatusEditable struct {
	UserID uuid.UUID `json:"userId" example:"d537395a-d9ca-4bba-b60c-6e28add2b690"` // ID of the user
	Date   time.Time `json:"date" example:"2024-03-05T00:00:00Z"`                   // The day to evaluate
}

func (api API) RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMonth)
	r.GET("", api.GetMonth)
	r.POST("/redistribution", api.RedistributeMonth)
	r.OPTIONS("/redistribution", OptionsRedistribution)
}

func (api API) RegisterDayRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/status", OptionsDayStatus)
	r.POST("/status", api.UpdateDayStatus)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months/redistribution [options]
func OptionsRedistribution(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Days
// @Success		204
// @Router			/v1/days/status [options]
func OptionsDayStatus(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get data about a month
// @Description	Returns the per-category and total planned, spent and remaining amounts for a user's month
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			user	query		string	true	"ID formatted as string"
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/months [get]
func (api API) GetMonth(c *gin.Context) {
	userID, month, err := parseMonthQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	tracker := budget.NewTracker(models.DB, userID, month)

	planned, err := tracker.Planned()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	spent, err := tracker.Spent()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	result := Month{
		UserID:     userID,
		Month:      month,
		Planned:    decimal.Zero,
		Spent:      decimal.Zero,
		Remaining:  decimal.Zero,
		Categories: make([]MonthCategory, 0, len(planned)),
	}

	// Every day record has both amounts, so the planned map covers all
	// categories of the month
	categories := make([]string, 0, len(planned))
	for category := range planned {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		plannedAmount := planned[category]
		spentAmount := spent[category]
		remaining := plannedAmount.Sub(spentAmount)

		result.Planned = result.Planned.Add(plannedAmount)
		result.Spent = result.Spent.Add(spentAmount)
		result.Remaining = result.Remaining.Add(remaining)

		result.Categories = append(result.Categories, MonthCategory{
			Category:  category,
			Planned:   plannedAmount,
			Spent:     spentAmount,
			Remaining: remaining,
		})
	}

	c.JSON(http.StatusOK, MonthResponse{Data: &result})
}

// @Summary		Redistribute a month's budget
// @Description	Moves unused planned budget of the month from under-spent categories into over-spent ones and returns the transfer log
// @Tags			Months
// @Produce		json
// @Success		200		{object}	RedistributionResponse
// @Failure		400		{object}	RedistributionResponse
// @Failure		500		{object}	RedistributionResponse
// @Param			user	query		string	true	"ID formatted as string"
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/redistribution [post]
func (api API) RedistributeMonth(c *gin.Context) {
	userID, month, err := parseMonthQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RedistributionResponse{
			Error: &s,
		})
		return
	}

	redistribution, err := api.service.Redistribute(userID, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RedistributionResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, RedistributionResponse{Data: &redistribution})
}

// @Summary		Evaluate a day
// @Description	Evaluates all of a user's day records for one calendar day, writes the resulting status back and returns it. Days without records yield the no_plan status.
// @Tags			Days
// @Accept			json
// @Produce		json
// @Success		200	{object}	DayStatusResponse
// @Failure		400	{object}	DayStatusResponse
// @Failure		500	{object}	DayStatusResponse
// @Param			day	body		DayStatusEditable	true	"Day"
// @Router			/v1/days/status [post]
func (api API) UpdateDayStatus(c *gin.Context) {
	var data DayStatusEditable

	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DayStatusResponse{
			Error: &s,
		})
		return
	}

	if data.Date.IsZero() {
		s := errDateNotSet.Error()
		c.JSON(http.StatusBadRequest, DayStatusResponse{
			Error: &s,
		})
		return
	}

	evaluation, err := api.service.UpdateDayStatus(data.UserID, data.Date)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DayStatusResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, DayStatusResponse{Data: &evaluation})
}

// parseMonthQuery parses the user and month query parameters.
func parseMonthQuery(c *gin.Context) (uuid.UUID, types.Month, error) {
	var query struct {
		User  string `form:"user" example:"d537395a-d9ca-4bba-b60c-6e28add2b690"`
		Month string `form:"month" example:"2024-03"`
	}

	if err := c.BindQuery(&query); err != nil {
		return uuid.Nil, types.Month{}, err
	}

	if query.User == "" {
		return uuid.Nil, types.Month{}, errUserNotSetInQuery
	}

	if query.Month == "" {
		return uuid.Nil, types.Month{}, errMonthNotSetInQuery
	}

	userID, err := uuid.Parse(query.User)
	if err != nil {
		return uuid.Nil, types.Month{}, err
	}

	month, err := types.ParseMonth(query.Month)
	if err != nil {
		return uuid.Nil, types.Month{}, err
	}

	return userID, month, nil
}
