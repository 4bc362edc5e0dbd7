package v1

import (
	"net/http"

	"github.com/budgetwise/backend/internal/httputil"
	"github.com/budgetwise/backend/internal/models"
	bw_uuid "github.com/budgetwise/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

func RegisterDailyBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsDailyBudgets)
		r.GET("", GetDailyBudgets)
		r.POST("", CreateDailyBudgets)
	}
	{
		r.OPTIONS("/:id", OptionsDailyBudgetDetail)
		r.GET("/:id", GetDailyBudget)
		r.PATCH("/:id", UpdateDailyBudget)
		r.DELETE("/:id", DeleteDailyBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			DailyBudgets
// @Success		204
// @Router			/v1/daily-budgets [options]
func OptionsDailyBudgets(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			DailyBudgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Router			/v1/daily-budgets/{id} [options]
func OptionsDailyBudgetDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.DailyBudget{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create day records
// @Description	Creates new day records
// @Tags			DailyBudgets
// @Produce		json
// @Success		201				{object}	DailyBudgetCreateResponse
// @Failure		400				{object}	DailyBudgetCreateResponse
// @Failure		500				{object}	DailyBudgetCreateResponse
// @Param			dailyBudgets	body		[]DailyBudgetEditable	true	"Day records"
// @Router			/v1/daily-budgets [post]
func CreateDailyBudgets(c *gin.Context) {
	var editables []DailyBudgetEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyBudgetCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	s := http.StatusCreated
	r := DailyBudgetCreateResponse{}

	for _, editable := range editables {
		dailyBudget := editable.model()
		err := models.DB.Create(&dailyBudget).Error
		if err != nil {
			s = r.appendError(err, s)
			continue
		}

		apiResource := newDailyBudget(c, dailyBudget)
		r.Data = append(r.Data, DailyBudgetResponse{Data: &apiResource})
	}

	c.JSON(s, r)
}

// @Summary		Get day records
// @Description	Returns a list of day records
// @Tags			DailyBudgets
// @Produce		json
// @Success		200	{object}	DailyBudgetListResponse
// @Failure		400	{object}	DailyBudgetListResponse
// @Failure		500	{object}	DailyBudgetListResponse
// @Router			/v1/daily-budgets [get]
// @Param			user		query	string	false	"Filter by user ID"
// @Param			month		query	string	false	"Month of the day records in YYYY-MM format"
// @Param			category	query	string	false	"Filter by category"
// @Param			status		query	string	false	"Filter by status"
// @Param			offset		query	uint	false	"The offset of the first record returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of records to return. Defaults to 50."
func GetDailyBudgets(c *gin.Context) {
	var filter DailyBudgetQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DailyBudgetListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.Model(&models.DailyBudget{}).Order("date ASC, category ASC")

	if filter.UserID != bw_uuid.Nil {
		q = q.Where("user_id = ?", filter.UserID.UUID)
	}

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	month, err := filter.parseMonth()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DailyBudgetListResponse{
			Error: &s,
		})
		return
	}

	if !month.IsZero() {
		q = q.Where("date >= ? AND date < ?", month.First(), month.Next())
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 day records and set the limit
	limit := 50
	if filter.Limit != 0 {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var dailyBudgets []models.DailyBudget
	err = q.Find(&dailyBudgets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DailyBudgetListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DailyBudgetListResponse{
			Error: &s,
		})
		return
	}

	data := make([]DailyBudget, 0, len(dailyBudgets))
	for _, dailyBudget := range dailyBudgets {
		data = append(data, newDailyBudget(c, dailyBudget))
	}

	c.JSON(http.StatusOK, DailyBudgetListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get day record
// @Description	Returns a specific day record
// @Tags			DailyBudgets
// @Produce		json
// @Success		200	{object}	DailyBudgetResponse
// @Failure		400	{object}	DailyBudgetResponse
// @Failure		404	{object}	DailyBudgetResponse
// @Router			/v1/daily-budgets/{id} [get]
func GetDailyBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyBudgetResponse{
			Error: &e,
		})
		return
	}

	var dailyBudget models.DailyBudget
	err = models.DB.First(&dailyBudget, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyBudgetResponse{
			Error: &e,
		})
		return
	}

	apiResource := newDailyBudget(c, dailyBudget)
	c.JSON(http.StatusOK, DailyBudgetResponse{Data: &apiResource})
}

// @Summary		Update day record
// @Description	Updates an existing day record
// @Tags			DailyBudgets
// @Accept			json
// @Produce		json
// @Success		200			{object}	DailyBudgetResponse
// @Failure		400			{object}	DailyBudgetResponse
// @Failure		404			{object}	DailyBudgetResponse
// @Param			dailyBudget	body		DailyBudgetEditable	true	"Day record"
// @Router			/v1/daily-budgets/{id} [patch]
func UpdateDailyBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyBudgetResponse{
			Error: &e,
		})
		return
	}

	var dailyBudget models.DailyBudget
	err = models.DB.First(&dailyBudget, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyBudgetResponse{
			Error: &e,
		})
		return
	}

	var data DailyBudgetEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyBudgetResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&dailyBudget).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyBudgetResponse{
			Error: &e,
		})
		return
	}

	apiResource := newDailyBudget(c, dailyBudget)
	c.JSON(http.StatusOK, DailyBudgetResponse{Data: &apiResource})
}

// @Summary		Delete day record
// @Description	Deletes a day record
// @Tags			DailyBudgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Router			/v1/daily-budgets/{id} [delete]
func DeleteDailyBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var dailyBudget models.DailyBudget
	err = models.DB.First(&dailyBudget, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&dailyBudget).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
