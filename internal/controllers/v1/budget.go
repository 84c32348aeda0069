package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", GetBudgets)
		r.POST("", CreateBudgets)
	}
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", GetBudget)
		r.PATCH("/:id", UpdateBudget)
		r.DELETE("/:id", DeleteBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	resourceOptionsDetail[models.Budget](c)
}

// @Summary		Create budgets
// @Description	Creates new budgets
// @Tags			Budgets
// @Produce		json
// @Success		201		{object}	BudgetCreateResponse
// @Failure		400		{object}	BudgetCreateResponse
// @Failure		404		{object}	BudgetCreateResponse
// @Failure		500		{object}	BudgetCreateResponse
// @Param			budgets	body		[]BudgetEditable	true	"Budgets"
// @Router			/v1/budgets [post]
func CreateBudgets(c *gin.Context) {
	var budgets []BudgetEditable

	err := httputil.BindData(c, &budgets)
	if err != nil {
		c.JSON(status(err), BudgetCreateResponse{ResponseError: newResponseError(err)})
		return
	}

	s := http.StatusCreated
	r := BudgetCreateResponse{}

	for _, create := range budgets {
		budget := create.model(userID(c))

		err = models.DB.Create(&budget).Error
		if err != nil {
			s = highestStatus(err, s)
			r.Data = append(r.Data, BudgetResponse{ResponseError: newResponseError(err)})
			continue
		}

		apiResource, err := newBudget(c, models.DB, budget)
		if err != nil {
			s = highestStatus(err, s)
			r.Data = append(r.Data, BudgetResponse{ResponseError: newResponseError(err)})
			continue
		}

		r.Data = append(r.Data, BudgetResponse{Data: &apiResource})
	}

	c.JSON(s, r)
}

// @Summary		Get budgets
// @Description	Returns a list of budgets, newest month first
// @Tags			Budgets
// @Produce		json
// @Success		200			{object}	BudgetListResponse
// @Failure		400			{object}	BudgetListResponse
// @Failure		500			{object}	BudgetListResponse
// @Router			/v1/budgets [get]
// @Param			category	query	string	false	"Filter by category ID"
// @Param			month		query	string	false	"Filter by month, YYYY-MM"
// @Param			offset		query	uint	false	"The offset of the first budget returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of budgets to return. Defaults to 50."
func GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, BudgetListResponse{ResponseError: newResponseError(err)})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where, err := filter.model(userID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, BudgetListResponse{ResponseError: newResponseError(err)})
		return
	}

	q := models.DB.
		Order("month DESC, created_at ASC").
		Where(&where, append([]any{"UserID"}, queryFields...)...)

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var budgets []models.Budget
	err = q.Find(&budgets).Error
	if err != nil {
		c.JSON(status(err), BudgetListResponse{ResponseError: newResponseError(err)})
		return
	}

	total, err := count(q)
	if err != nil {
		c.JSON(status(err), BudgetListResponse{ResponseError: newResponseError(err)})
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		apiResource, err := newBudget(c, models.DB, budget)
		if err != nil {
			c.JSON(status(err), BudgetListResponse{ResponseError: newResponseError(err)})
			return
		}
		data = append(data, apiResource)
	}

	c.JSON(http.StatusOK, BudgetListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get budget
// @Description	Returns a specific budget with the amount spent and left
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [get]
func GetBudget(c *gin.Context) {
	budget, err := getResource[models.Budget](c, models.DB)
	if err != nil {
		c.JSON(status(err), BudgetResponse{ResponseError: newResponseError(err)})
		return
	}

	apiResource, err := newBudget(c, models.DB, budget)
	if err != nil {
		c.JSON(status(err), BudgetResponse{ResponseError: newResponseError(err)})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &apiResource})
}

// @Summary		Update budget
// @Description	Updates an existing budget. Only values to be updated need to be specified.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [patch]
func UpdateBudget(c *gin.Context) {
	budget, err := getResource[models.Budget](c, models.DB)
	if err != nil {
		c.JSON(status(err), BudgetResponse{ResponseError: newResponseError(err)})
		return
	}

	data := BudgetEditable{
		CategoryID:   budget.CategoryID,
		Month:        budget.Month,
		MonthlyLimit: budget.MonthlyLimit,
	}
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), BudgetResponse{ResponseError: newResponseError(err)})
		return
	}

	update := data.model(budget.UserID)
	update.DefaultModel = budget.DefaultModel

	err = models.DB.Save(&update).Error
	if err != nil {
		c.JSON(status(err), BudgetResponse{ResponseError: newResponseError(err)})
		return
	}

	apiResource, err := newBudget(c, models.DB, update)
	if err != nil {
		c.JSON(status(err), BudgetResponse{ResponseError: newResponseError(err)})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &apiResource})
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	deleteResource[models.Budget](c)
}
