package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategories)
	}
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", GetCategory)
		r.PATCH("/:id", UpdateCategory)
		r.DELETE("/:id", DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	resourceOptionsDetail[models.Category](c)
}

// @Summary		Create categories
// @Description	Creates new categories
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CategoryCreateResponse
// @Failure		400			{object}	CategoryCreateResponse
// @Failure		500			{object}	CategoryCreateResponse
// @Param			categories	body		[]CategoryEditable	true	"Categories"
// @Router			/v1/categories [post]
func CreateCategories(c *gin.Context) {
	var categories []CategoryEditable

	err := httputil.BindData(c, &categories)
	if err != nil {
		c.JSON(status(err), CategoryCreateResponse{ResponseError: newResponseError(err)})
		return
	}

	// The final http status. Will be modified when errors occur
	s := http.StatusCreated
	r := CategoryCreateResponse{}

	for _, create := range categories {
		category := create.model(userID(c))

		err = models.DB.Create(&category).Error
		if err != nil {
			s = highestStatus(err, s)
			r.Data = append(r.Data, CategoryResponse{ResponseError: newResponseError(err)})
			continue
		}

		apiResource := newCategory(c, category)
		r.Data = append(r.Data, CategoryResponse{Data: &apiResource})
	}

	c.JSON(s, r)
}

// @Summary		Get categories
// @Description	Returns a list of categories
// @Tags			Categories
// @Produce		json
// @Success		200				{object}	CategoryListResponse
// @Failure		400				{object}	CategoryListResponse
// @Failure		500				{object}	CategoryListResponse
// @Router			/v1/categories [get]
// @Param			name			query	string	false	"Filter by name"
// @Param			categoryType	query	string	false	"Filter by type"
// @Param			offset			query	uint	false	"The offset of the first category returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of categories to return. Defaults to 50."
func GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, CategoryListResponse{ResponseError: newResponseError(err)})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model(userID(c))
	q := models.DB.
		Order("category_type ASC, name ASC").
		Where(&where, append([]any{"UserID"}, queryFields...)...)

	q = stringFilter(q, setFields, "Name", "name", filter.Name)
	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var categories []models.Category
	err := q.Find(&categories).Error
	if err != nil {
		c.JSON(status(err), CategoryListResponse{ResponseError: newResponseError(err)})
		return
	}

	total, err := count(q)
	if err != nil {
		c.JSON(status(err), CategoryListResponse{ResponseError: newResponseError(err)})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Failure		500	{object}	CategoryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [get]
func GetCategory(c *gin.Context) {
	category, err := getResource[models.Category](c, models.DB)
	if err != nil {
		c.JSON(status(err), CategoryResponse{ResponseError: newResponseError(err)})
		return
	}

	apiResource := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &apiResource})
}

// @Summary		Update category
// @Description	Updates an existing category. Only values to be updated need to be specified.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	category, err := getResource[models.Category](c, models.DB)
	if err != nil {
		c.JSON(status(err), CategoryResponse{ResponseError: newResponseError(err)})
		return
	}

	data := newCategory(c, category).CategoryEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), CategoryResponse{ResponseError: newResponseError(err)})
		return
	}

	update := data.model(category.UserID)
	update.DefaultModel = category.DefaultModel

	err = models.DB.Save(&update).Error
	if err != nil {
		c.JSON(status(err), CategoryResponse{ResponseError: newResponseError(err)})
		return
	}

	apiResource := newCategory(c, update)
	c.JSON(http.StatusOK, CategoryResponse{Data: &apiResource})
}

// @Summary		Delete category
// @Description	Deletes a category. Transactions and budgets of the category are kept without a category.
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	deleteResource[models.Category](c)
}
