package v1

import (
	"fmt"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// DebtEditable represents all user configurable parameters
type DebtEditable struct {
	Title           string          `json:"title" example:"Car loan" default:""`                                                  // Title of the debt, unique per user
	DebtType        models.DebtType `json:"debtType" example:"borrowed" default:""`                                               // 'lent' for money owed to the user, 'borrowed' for money the user owes
	TotalAmount     decimal.Decimal `json:"totalAmount" example:"5000" minimum:"0.01" maximum:"9999999999.99" multipleOf:"0.01"`  // The original amount
	RemainingAmount decimal.Decimal `json:"remainingAmount" example:"3200" minimum:"0" maximum:"9999999999.99" multipleOf:"0.01"` // The amount not paid back yet
	StartDate       types.Date      `json:"startDate" example:"2024-01-15"`                                                       // Day the debt started
	DueDate         *types.Date     `json:"dueDate" example:"2025-01-15"`                                                         // Day the debt is due, if any
	Note            string          `json:"note" example:"0% interest" default:""`                                                // A note
}

func (editable DebtEditable) model(userID string) models.Debt {
	return models.Debt{
		UserID:          userID,
		Title:           editable.Title,
		DebtType:        editable.DebtType,
		TotalAmount:     editable.TotalAmount,
		RemainingAmount: editable.RemainingAmount,
		StartDate:       editable.StartDate,
		DueDate:         editable.DueDate,
		Note:            editable.Note,
	}
}

type DebtLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/debts/d8cd40e2-b2b3-4d3f-8d15-30c7d1bb0a2f"` // The debt itself
}

type Debt struct {
	models.DefaultModel
	DebtEditable
	Links DebtLinks `json:"links"`

	// These fields are computed
	DisplayName string          `json:"displayName" example:"Borrowed"` // Display name of the debt type
	Paid        decimal.Decimal `json:"paid" example:"1800"`            // Amount that has been paid back
}

func newDebt(c *gin.Context, model models.Debt) Debt {
	return Debt{
		DefaultModel: model.DefaultModel,
		DebtEditable: DebtEditable{
			Title:           model.Title,
			DebtType:        model.DebtType,
			TotalAmount:     model.TotalAmount,
			RemainingAmount: model.RemainingAmount,
			StartDate:       model.StartDate,
			DueDate:         model.DueDate,
			Note:            model.Note,
		},
		Links: DebtLinks{
			Self: fmt.Sprintf("%s/v1/debts/%s", baseURL(c), model.ID),
		},
		DisplayName: model.DebtType.DisplayName(),
		Paid:        model.Paid(),
	}
}

type DebtListResponse struct {
	ResponseError
	Data       []Debt      `json:"data"`       // List of debts
	Pagination *Pagination `json:"pagination"` // Pagination information
}

type DebtCreateResponse struct {
	ResponseError
	Data []DebtResponse `json:"data"` // List of the created debts or their respective error
}

type DebtResponse struct {
	ResponseError
	Data *Debt `json:"data"` // Data for the debt
}

type DebtQueryFilter struct {
	Title    string          `form:"title" filterField:"false"`  // By title
	DebtType models.DebtType `form:"debtType"`                   // By type
	Note     string          `form:"note" filterField:"false"`   // By note
	Search   string          `form:"search" filterField:"false"` // By string in title or note
	Offset   uint            `form:"offset" filterField:"false"` // The offset of the first debt returned. Defaults to 0.
	Limit    int             `form:"limit" filterField:"false"`  // Maximum number of debts to return. Defaults to 50.
}

func (f DebtQueryFilter) model(userID string) models.Debt {
	return models.Debt{
		UserID:   userID,
		DebtType: f.DebtType,
	}
}
