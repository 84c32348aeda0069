package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterCategoryRuleRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCategoryRuleList)
		r.GET("", GetCategoryRules)
		r.POST("", CreateCategoryRules)
	}
	{
		r.OPTIONS("/:id", OptionsCategoryRuleDetail)
		r.GET("/:id", GetCategoryRule)
		r.PATCH("/:id", UpdateCategoryRule)
		r.DELETE("/:id", DeleteCategoryRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Category Rules
// @Success		204
// @Router			/v1/category-rules [options]
func OptionsCategoryRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Category Rules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-rules/{id} [options]
func OptionsCategoryRuleDetail(c *gin.Context) {
	resourceOptionsDetail[models.CategoryRule](c)
}

// @Summary		Create category rules
// @Description	Creates new category rules
// @Tags			Category Rules
// @Produce		json
// @Success		201		{object}	CategoryRuleCreateResponse
// @Failure		400		{object}	CategoryRuleCreateResponse
// @Failure		404		{object}	CategoryRuleCreateResponse
// @Failure		500		{object}	CategoryRuleCreateResponse
// @Param			rules	body		[]CategoryRuleEditable	true	"Category rules"
// @Router			/v1/category-rules [post]
func CreateCategoryRules(c *gin.Context) {
	var rules []CategoryRuleEditable

	err := httputil.BindData(c, &rules)
	if err != nil {
		c.JSON(status(err), CategoryRuleCreateResponse{ResponseError: newResponseError(err)})
		return
	}

	s := http.StatusCreated
	r := CategoryRuleCreateResponse{}

	for _, create := range rules {
		rule := create.model(userID(c))

		err = models.DB.Create(&rule).Error
		if err != nil {
			s = highestStatus(err, s)
			r.Data = append(r.Data, CategoryRuleResponse{ResponseError: newResponseError(err)})
			continue
		}

		apiResource := newCategoryRule(c, rule)
		r.Data = append(r.Data, CategoryRuleResponse{Data: &apiResource})
	}

	c.JSON(s, r)
}

// @Summary		Get category rules
// @Description	Returns a list of category rules in the order they are matched
// @Tags			Category Rules
// @Produce		json
// @Success		200			{object}	CategoryRuleListResponse
// @Failure		400			{object}	CategoryRuleListResponse
// @Failure		500			{object}	CategoryRuleListResponse
// @Router			/v1/category-rules [get]
// @Param			category	query	string	false	"Filter by category ID"
// @Param			priority	query	uint	false	"Filter by priority"
// @Param			match		query	string	false	"Filter by pattern"
// @Param			offset		query	uint	false	"The offset of the first rule returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of rules to return. Defaults to 50."
func GetCategoryRules(c *gin.Context) {
	var filter CategoryRuleQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, CategoryRuleListResponse{ResponseError: newResponseError(err)})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model(userID(c))
	q := models.DB.
		Order("priority ASC, created_at ASC").
		Where(&where, append([]any{"UserID"}, queryFields...)...)

	q = stringFilter(q, setFields, "Match", "match", filter.Match)
	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var rules []models.CategoryRule
	err := q.Find(&rules).Error
	if err != nil {
		c.JSON(status(err), CategoryRuleListResponse{ResponseError: newResponseError(err)})
		return
	}

	total, err := count(q)
	if err != nil {
		c.JSON(status(err), CategoryRuleListResponse{ResponseError: newResponseError(err)})
		return
	}

	data := make([]CategoryRule, 0, len(rules))
	for _, rule := range rules {
		data = append(data, newCategoryRule(c, rule))
	}

	c.JSON(http.StatusOK, CategoryRuleListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get category rule
// @Description	Returns a specific category rule
// @Tags			Category Rules
// @Produce		json
// @Success		200	{object}	CategoryRuleResponse
// @Failure		400	{object}	CategoryRuleResponse
// @Failure		404	{object}	CategoryRuleResponse
// @Failure		500	{object}	CategoryRuleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-rules/{id} [get]
func GetCategoryRule(c *gin.Context) {
	rule, err := getResource[models.CategoryRule](c, models.DB)
	if err != nil {
		c.JSON(status(err), CategoryRuleResponse{ResponseError: newResponseError(err)})
		return
	}

	apiResource := newCategoryRule(c, rule)
	c.JSON(http.StatusOK, CategoryRuleResponse{Data: &apiResource})
}

// @Summary		Update category rule
// @Description	Updates an existing category rule. Only values to be updated need to be specified.
// @Tags			Category Rules
// @Accept			json
// @Produce		json
// @Success		200		{object}	CategoryRuleResponse
// @Failure		400		{object}	CategoryRuleResponse
// @Failure		404		{object}	CategoryRuleResponse
// @Failure		500		{object}	CategoryRuleResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			rule	body		CategoryRuleEditable	true	"Category rule"
// @Router			/v1/category-rules/{id} [patch]
func UpdateCategoryRule(c *gin.Context) {
	rule, err := getResource[models.CategoryRule](c, models.DB)
	if err != nil {
		c.JSON(status(err), CategoryRuleResponse{ResponseError: newResponseError(err)})
		return
	}

	data := newCategoryRule(c, rule).CategoryRuleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), CategoryRuleResponse{ResponseError: newResponseError(err)})
		return
	}

	update := data.model(rule.UserID)
	update.DefaultModel = rule.DefaultModel

	err = models.DB.Save(&update).Error
	if err != nil {
		c.JSON(status(err), CategoryRuleResponse{ResponseError: newResponseError(err)})
		return
	}

	apiResource := newCategoryRule(c, update)
	c.JSON(http.StatusOK, CategoryRuleResponse{Data: &apiResource})
}

// @Summary		Delete category rule
// @Description	Deletes a category rule
// @Tags			Category Rules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-rules/{id} [delete]
func DeleteCategoryRule(c *gin.Context) {
	deleteResource[models.CategoryRule](c)
}
