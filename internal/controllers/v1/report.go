package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterReportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsReportList)
		r.GET("", GetReports)
		r.POST("", CreateReports)
	}
	{
		r.OPTIONS("/:id", OptionsReportDetail)
		r.GET("/:id", GetReport)
		r.PATCH("/:id", UpdateReport)
		r.DELETE("/:id", DeleteReport)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports [options]
func OptionsReportList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/reports/{id} [options]
func OptionsReportDetail(c *gin.Context) {
	resourceOptionsDetail[models.Report](c)
}

// @Summary		Create reports
// @Description	Creates new reports
// @Tags			Reports
// @Produce		json
// @Success		201		{object}	ReportCreateResponse
// @Failure		400		{object}	ReportCreateResponse
// @Failure		500		{object}	ReportCreateResponse
// @Param			reports	body		[]ReportEditable	true	"Reports"
// @Router			/v1/reports [post]
func CreateReports(c *gin.Context) {
	var reports []ReportEditable

	err := httputil.BindData(c, &reports)
	if err != nil {
		c.JSON(status(err), ReportCreateResponse{ResponseError: newResponseError(err)})
		return
	}

	s := http.StatusCreated
	r := ReportCreateResponse{}

	for _, create := range reports {
		report := create.model(userID(c))

		err = models.DB.Create(&report).Error
		if err != nil {
			s = highestStatus(err, s)
			r.Data = append(r.Data, ReportResponse{ResponseError: newResponseError(err)})
			continue
		}

		apiResource := newReport(c, report)
		r.Data = append(r.Data, ReportResponse{Data: &apiResource})
	}

	c.JSON(s, r)
}

// @Summary		Get reports
// @Description	Returns a list of reports, newest first. Use the single report endpoint for the summary.
// @Tags			Reports
// @Produce		json
// @Success		200			{object}	ReportListResponse
// @Failure		400			{object}	ReportListResponse
// @Failure		500			{object}	ReportListResponse
// @Router			/v1/reports [get]
// @Param			reportType	query	string	false	"Filter by type"
// @Param			offset		query	uint	false	"The offset of the first report returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of reports to return. Defaults to 50."
func GetReports(c *gin.Context) {
	var filter ReportQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, ReportListResponse{ResponseError: newResponseError(err)})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model(userID(c))
	q := models.DB.
		Order("start_date DESC, created_at DESC").
		Where(&where, append([]any{"UserID"}, queryFields...)...)

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var reports []models.Report
	err := q.Find(&reports).Error
	if err != nil {
		c.JSON(status(err), ReportListResponse{ResponseError: newResponseError(err)})
		return
	}

	total, err := count(q)
	if err != nil {
		c.JSON(status(err), ReportListResponse{ResponseError: newResponseError(err)})
		return
	}

	data := make([]Report, 0, len(reports))
	for _, report := range reports {
		data = append(data, newReport(c, report))
	}

	c.JSON(http.StatusOK, ReportListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get report
// @Description	Returns a specific report with its summary
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	ReportResponse
// @Failure		400	{object}	ReportResponse
// @Failure		404	{object}	ReportResponse
// @Failure		500	{object}	ReportResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/reports/{id} [get]
func GetReport(c *gin.Context) {
	report, err := getResource[models.Report](c, models.DB)
	if err != nil {
		c.JSON(status(err), ReportResponse{ResponseError: newResponseError(err)})
		return
	}

	summary, err := report.Summary(models.DB)
	if err != nil {
		c.JSON(status(err), ReportResponse{ResponseError: newResponseError(err)})
		return
	}

	apiResource := newReport(c, report)
	apiResource.Summary = &summary
	c.JSON(http.StatusOK, ReportResponse{Data: &apiResource})
}

// @Summary		Update report
// @Description	Updates an existing report. Only values to be updated need to be specified.
// @Tags			Reports
// @Accept			json
// @Produce		json
// @Success		200		{object}	ReportResponse
// @Failure		400		{object}	ReportResponse
// @Failure		404		{object}	ReportResponse
// @Failure		500		{object}	ReportResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			report	body		ReportEditable	true	"Report"
// @Router			/v1/reports/{id} [patch]
func UpdateReport(c *gin.Context) {
	report, err := getResource[models.Report](c, models.DB)
	if err != nil {
		c.JSON(status(err), ReportResponse{ResponseError: newResponseError(err)})
		return
	}

	data := newReport(c, report).ReportEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), ReportResponse{ResponseError: newResponseError(err)})
		return
	}

	update := data.model(report.UserID)
	update.DefaultModel = report.DefaultModel

	err = models.DB.Save(&update).Error
	if err != nil {
		c.JSON(status(err), ReportResponse{ResponseError: newResponseError(err)})
		return
	}

	apiResource := newReport(c, update)
	c.JSON(http.StatusOK, ReportResponse{Data: &apiResource})
}

// @Summary		Delete report
// @Description	Deletes a report
// @Tags			Reports
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/reports/{id} [delete]
func DeleteReport(c *gin.Context) {
	deleteResource[models.Report](c)
}
