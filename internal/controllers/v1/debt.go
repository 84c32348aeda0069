package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterDebtRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsDebtList)
		r.GET("", GetDebts)
		r.POST("", CreateDebts)
	}
	{
		r.OPTIONS("/:id", OptionsDebtDetail)
		r.GET("/:id", GetDebt)
		r.PATCH("/:id", UpdateDebt)
		r.DELETE("/:id", DeleteDebt)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Router			/v1/debts [options]
func OptionsDebtList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id} [options]
func OptionsDebtDetail(c *gin.Context) {
	resourceOptionsDetail[models.Debt](c)
}

// @Summary		Create debts
// @Description	Creates new debts
// @Tags			Debts
// @Produce		json
// @Success		201		{object}	DebtCreateResponse
// @Failure		400		{object}	DebtCreateResponse
// @Failure		500		{object}	DebtCreateResponse
// @Param			debts	body		[]DebtEditable	true	"Debts"
// @Router			/v1/debts [post]
func CreateDebts(c *gin.Context) {
	var debts []DebtEditable

	err := httputil.BindData(c, &debts)
	if err != nil {
		c.JSON(status(err), DebtCreateResponse{ResponseError: newResponseError(err)})
		return
	}

	s := http.StatusCreated
	r := DebtCreateResponse{}

	for _, create := range debts {
		debt := create.model(userID(c))

		err = models.DB.Create(&debt).Error
		if err != nil {
			s = highestStatus(err, s)
			r.Data = append(r.Data, DebtResponse{ResponseError: newResponseError(err)})
			continue
		}

		apiResource := newDebt(c, debt)
		r.Data = append(r.Data, DebtResponse{Data: &apiResource})
	}

	c.JSON(s, r)
}

// @Summary		Get debts
// @Description	Returns a list of debts, most recent first
// @Tags			Debts
// @Produce		json
// @Success		200			{object}	DebtListResponse
// @Failure		400			{object}	DebtListResponse
// @Failure		500			{object}	DebtListResponse
// @Router			/v1/debts [get]
// @Param			title		query	string	false	"Filter by title"
// @Param			debtType	query	string	false	"Filter by type"
// @Param			note		query	string	false	"Filter by note"
// @Param			search		query	string	false	"Search for this text in title and note"
// @Param			offset		query	uint	false	"The offset of the first debt returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of debts to return. Defaults to 50."
func GetDebts(c *gin.Context) {
	var filter DebtQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, DebtListResponse{ResponseError: newResponseError(err)})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model(userID(c))
	q := models.DB.
		Order("start_date DESC, created_at DESC").
		Where(&where, append([]any{"UserID"}, queryFields...)...)

	q = stringFilter(q, setFields, "Title", "title", filter.Title)
	q = stringFilter(q, setFields, "Note", "note", filter.Note)
	q = searchFilter(models.DB, q, filter.Search, "title", "note")
	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var debts []models.Debt
	err := q.Find(&debts).Error
	if err != nil {
		c.JSON(status(err), DebtListResponse{ResponseError: newResponseError(err)})
		return
	}

	total, err := count(q)
	if err != nil {
		c.JSON(status(err), DebtListResponse{ResponseError: newResponseError(err)})
		return
	}

	data := make([]Debt, 0, len(debts))
	for _, debt := range debts {
		data = append(data, newDebt(c, debt))
	}

	c.JSON(http.StatusOK, DebtListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get debt
// @Description	Returns a specific debt
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	DebtResponse
// @Failure		400	{object}	DebtResponse
// @Failure		404	{object}	DebtResponse
// @Failure		500	{object}	DebtResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id} [get]
func GetDebt(c *gin.Context) {
	debt, err := getResource[models.Debt](c, models.DB)
	if err != nil {
		c.JSON(status(err), DebtResponse{ResponseError: newResponseError(err)})
		return
	}

	apiResource := newDebt(c, debt)
	c.JSON(http.StatusOK, DebtResponse{Data: &apiResource})
}

// @Summary		Update debt
// @Description	Updates an existing debt. Only values to be updated need to be specified.
// @Tags			Debts
// @Accept			json
// @Produce		json
// @Success		200		{object}	DebtResponse
// @Failure		400		{object}	DebtResponse
// @Failure		404		{object}	DebtResponse
// @Failure		500		{object}	DebtResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			debt	body		DebtEditable	true	"Debt"
// @Router			/v1/debts/{id} [patch]
func UpdateDebt(c *gin.Context) {
	debt, err := getResource[models.Debt](c, models.DB)
	if err != nil {
		c.JSON(status(err), DebtResponse{ResponseError: newResponseError(err)})
		return
	}

	data := newDebt(c, debt).DebtEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), DebtResponse{ResponseError: newResponseError(err)})
		return
	}

	update := data.model(debt.UserID)
	update.DefaultModel = debt.DefaultModel

	err = models.DB.Save(&update).Error
	if err != nil {
		c.JSON(status(err), DebtResponse{ResponseError: newResponseError(err)})
		return
	}

	apiResource := newDebt(c, update)
	c.JSON(http.StatusOK, DebtResponse{Data: &apiResource})
}

// @Summary		Delete debt
// @Description	Deletes a debt
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id} [delete]
func DeleteDebt(c *gin.Context) {
	deleteResource[models.Debt](c)
}
