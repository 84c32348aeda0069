package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func RegisterGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsGoalList)
		r.GET("", GetGoals)
		r.POST("", CreateGoals)
	}
	{
		r.OPTIONS("/:id", OptionsGoalDetail)
		r.GET("/:id", GetGoal)
		r.PATCH("/:id", UpdateGoal)
		r.DELETE("/:id", DeleteGoal)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Router			/v1/goals [options]
func OptionsGoalList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [options]
func OptionsGoalDetail(c *gin.Context) {
	resourceOptionsDetail[models.Goal](c)
}

// createGoal creates a goal and allocates its current amount from the
// source balance of the profile.
func createGoal(c *gin.Context, input GoalInput) (models.Goal, error) {
	tx := models.DB.Begin()
	defer tx.Rollback()

	profile, err := models.ProfileFor(tx, userID(c))
	if err != nil {
		return models.Goal{}, err
	}

	goal := input.model(profile.UserID)
	err = tx.Create(&goal).Error
	if err != nil {
		return models.Goal{}, err
	}

	if !input.CurrentAmount.IsZero() {
		source := input.Source
		if source == "" {
			source = profile.Schema.DefaultSource()
		}

		err = models.Allocate(tx, &profile, &goal, input.CurrentAmount, source)
		if err != nil {
			return models.Goal{}, err
		}
	}

	return goal, tx.Commit().Error
}

// @Summary		Create goals
// @Description	Creates new goals. The current amount of each goal is allocated from the source balance.
// @Tags			Goals
// @Produce		json
// @Success		201		{object}	GoalCreateResponse
// @Failure		400		{object}	GoalCreateResponse
// @Failure		500		{object}	GoalCreateResponse
// @Param			goals	body		[]GoalInput	true	"Goals"
// @Router			/v1/goals [post]
func CreateGoals(c *gin.Context) {
	var goals []GoalInput

	err := httputil.BindData(c, &goals)
	if err != nil {
		c.JSON(status(err), GoalCreateResponse{ResponseError: newResponseError(err)})
		return
	}

	s := http.StatusCreated
	r := GoalCreateResponse{}

	for _, create := range goals {
		goal, err := createGoal(c, create)
		if err != nil {
			s = highestStatus(err, s)
			r.Data = append(r.Data, GoalResponse{ResponseError: newResponseError(err)})
			continue
		}

		apiResource := newGoal(c, goal)
		r.Data = append(r.Data, GoalResponse{Data: &apiResource})
	}

	c.JSON(s, r)
}

// @Summary		Get goals
// @Description	Returns a list of goals, newest first
// @Tags			Goals
// @Produce		json
// @Success		200			{object}	GoalListResponse
// @Failure		400			{object}	GoalListResponse
// @Failure		500			{object}	GoalListResponse
// @Router			/v1/goals [get]
// @Param			title		query	string	false	"Filter by title"
// @Param			goalType	query	string	false	"Filter by type"
// @Param			offset		query	uint	false	"The offset of the first goal returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of goals to return. Defaults to 50."
func GetGoals(c *gin.Context) {
	var filter GoalQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, GoalListResponse{ResponseError: newResponseError(err)})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model(userID(c))
	q := models.DB.
		Order("created_at DESC").
		Where(&where, append([]any{"UserID"}, queryFields...)...)

	q = stringFilter(q, setFields, "Title", "title", filter.Title)
	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var goals []models.Goal
	err := q.Find(&goals).Error
	if err != nil {
		c.JSON(status(err), GoalListResponse{ResponseError: newResponseError(err)})
		return
	}

	total, err := count(q)
	if err != nil {
		c.JSON(status(err), GoalListResponse{ResponseError: newResponseError(err)})
		return
	}

	data := make([]Goal, 0, len(goals))
	for _, goal := range goals {
		data = append(data, newGoal(c, goal))
	}

	c.JSON(http.StatusOK, GoalListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get goal
// @Description	Returns a specific goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	GoalResponse
// @Failure		404	{object}	GoalResponse
// @Failure		500	{object}	GoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [get]
func GetGoal(c *gin.Context) {
	goal, err := getResource[models.Goal](c, models.DB)
	if err != nil {
		c.JSON(status(err), GoalResponse{ResponseError: newResponseError(err)})
		return
	}

	apiResource := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &apiResource})
}

// @Summary		Update goal
// @Description	Updates an existing goal. Only values to be updated need to be specified.
// @Description	An increase of the current amount is allocated from the source balance, a decrease does not return funds.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			id		path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			goal	body		GoalInput	true	"Goal"
// @Router			/v1/goals/{id} [patch]
func UpdateGoal(c *gin.Context) {
	goal, err := getResource[models.Goal](c, models.DB)
	if err != nil {
		c.JSON(status(err), GoalResponse{ResponseError: newResponseError(err)})
		return
	}

	data := GoalInput{GoalEditable: newGoal(c, goal).GoalEditable}
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), GoalResponse{ResponseError: newResponseError(err)})
		return
	}

	update := data.model(goal.UserID)
	update.ID = goal.ID

	// The current amount is only changed when the request changed it
	var funded *decimal.Decimal
	if !data.CurrentAmount.Equal(goal.CurrentAmount) {
		funded = &data.CurrentAmount
	}

	update, err = models.UpdateGoal(models.DB, update, funded, data.Source)
	if err != nil {
		c.JSON(status(err), GoalResponse{ResponseError: newResponseError(err)})
		return
	}

	apiResource := newGoal(c, update)
	c.JSON(http.StatusOK, GoalResponse{Data: &apiResource})
}

// @Summary		Delete goal
// @Description	Deletes a goal. Funds allocated to the goal are not returned.
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [delete]
func DeleteGoal(c *gin.Context) {
	deleteResource[models.Goal](c)
}
