package v1

import (
	"fmt"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// ReportEditable represents all user configurable parameters
type ReportEditable struct {
	ReportType models.ReportType `json:"reportType" example:"monthly" default:""` // One of 'monthly', 'yearly', 'category' or 'debt'
	StartDate  types.Date        `json:"startDate" example:"2024-05-01"`          // First day of the report
	EndDate    types.Date        `json:"endDate" example:"2024-05-31"`            // Last day of the report
}

func (editable ReportEditable) model(userID string) models.Report {
	return models.Report{
		UserID:     userID,
		ReportType: editable.ReportType,
		StartDate:  editable.StartDate,
		EndDate:    editable.EndDate,
	}
}

type ReportLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/reports/2b8bd5e6-5a1f-4c33-a0a9-3a4b0b7f2a10"`                  // The report itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?fromDate=2024-05-01&untilDate=2024-05-31"` // Transactions in the date range of the report
}

type Report struct {
	models.DefaultModel
	ReportEditable
	DisplayName string                `json:"displayName" example:"Monthly"` // Display name of the report type
	Links       ReportLinks           `json:"links"`
	Summary     *models.ReportSummary `json:"summary,omitempty"` // Figures for the date range. Only set for single reports.
}

func newReport(c *gin.Context, model models.Report) Report {
	url := baseURL(c)

	return Report{
		DefaultModel: model.DefaultModel,
		ReportEditable: ReportEditable{
			ReportType: model.ReportType,
			StartDate:  model.StartDate,
			EndDate:    model.EndDate,
		},
		DisplayName: model.ReportType.DisplayName(),
		Links: ReportLinks{
			Self:         fmt.Sprintf("%s/v1/reports/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?fromDate=%s&untilDate=%s", url, model.StartDate, model.EndDate),
		},
	}
}

type ReportListResponse struct {
	ResponseError
	Data       []Report    `json:"data"`       // List of reports
	Pagination *Pagination `json:"pagination"` // Pagination information
}

type ReportCreateResponse struct {
	ResponseError
	Data []ReportResponse `json:"data"` // List of the created reports or their respective error
}

type ReportResponse struct {
	ResponseError
	Data *Report `json:"data"` // Data for the report
}

type ReportQueryFilter struct {
	ReportType models.ReportType `form:"reportType"`                 // By type
	Offset     uint              `form:"offset" filterField:"false"` // The offset of the first report returned. Defaults to 0.
	Limit      int               `form:"limit" filterField:"false"`  // Maximum number of reports to return. Defaults to 50.
}

func (f ReportQueryFilter) model(userID string) models.Report {
	return models.Report{
		UserID:     userID,
		ReportType: f.ReportType,
	}
}
