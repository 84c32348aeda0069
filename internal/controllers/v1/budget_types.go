package v1

import (
	"fmt"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	ez_uuid "github.com/fintrack/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	CategoryID   *uuid.UUID      `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`                           // ID of the category. A budget without category limits all expenses.
	Month        types.Month     `json:"month" example:"2024-05"`                                                             // The month the budget is for
	MonthlyLimit decimal.Decimal `json:"monthlyLimit" example:"400" minimum:"0.01" maximum:"9999999999.99" multipleOf:"0.01"` // The maximum amount to spend
}

func (editable BudgetEditable) model(userID string) models.Budget {
	return models.Budget{
		UserID:       userID,
		CategoryID:   editable.CategoryID,
		Month:        editable.Month,
		MonthlyLimit: editable.MonthlyLimit,
	}
}

type BudgetLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                                          // The budget itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?transactionType=expense&fromDate=2024-05-01&untilDate=2024-05-31"` // Expenses counted for the budget
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`

	// These fields are computed
	Spent decimal.Decimal `json:"spent" example:"215.3"` // Sum of the expenses in the month
	Left  decimal.Decimal `json:"left" example:"184.7"`  // Limit minus the spent amount. Negative when the budget is exceeded.
}

func newBudget(c *gin.Context, db *gorm.DB, model models.Budget) (Budget, error) {
	spent, err := model.Spent(db)
	if err != nil {
		return Budget{}, err
	}

	transactions := fmt.Sprintf("%s/v1/transactions?transactionType=expense&fromDate=%s&untilDate=%s", baseURL(c), model.Month.FirstDay(), model.Month.LastDay())
	if model.CategoryID != nil {
		transactions = fmt.Sprintf("%s&category=%s", transactions, model.CategoryID)
	}

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			CategoryID:   model.CategoryID,
			Month:        model.Month,
			MonthlyLimit: model.MonthlyLimit,
		},
		Links: BudgetLinks{
			Self:         fmt.Sprintf("%s/v1/budgets/%s", baseURL(c), model.ID),
			Transactions: transactions,
		},
		Spent: spent,
		Left:  model.MonthlyLimit.Sub(spent),
	}, nil
}

type BudgetListResponse struct {
	ResponseError
	Data       []Budget    `json:"data"`       // List of budgets
	Pagination *Pagination `json:"pagination"` // Pagination information
}

type BudgetCreateResponse struct {
	ResponseError
	Data []BudgetResponse `json:"data"` // List of the created budgets or their respective error
}

type BudgetResponse struct {
	ResponseError
	Data *Budget `json:"data"` // Data for the budget
}

type BudgetQueryFilter struct {
	CategoryID ez_uuid.UUID `form:"category"`                   // By ID of the category. Empty for budgets without category.
	Month      string       `form:"month"`                      // By month, YYYY-MM
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first budget returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model(userID string) (models.Budget, error) {
	var month types.Month
	if f.Month != "" {
		m, err := types.ParseMonth(f.Month)
		if err != nil {
			return models.Budget{}, err
		}
		month = m
	}

	return models.Budget{
		UserID:     userID,
		CategoryID: f.CategoryID.Pointer(),
		Month:      month,
	}, nil
}
