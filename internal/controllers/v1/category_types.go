package v1

import (
	"fmt"

	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name         string                 `json:"name" example:"Groceries" default:""`       // Name of the category
	CategoryType models.TransactionType `json:"categoryType" example:"expense" default:""` // Type of transactions in this category, 'income' or 'expense'
}

func (editable CategoryEditable) model(userID string) models.Category {
	return models.Category{
		UserID:       userID,
		Name:         editable.Name,
		CategoryType: editable.CategoryType,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                    // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Transactions in this category
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	DisplayName string        `json:"displayName" example:"Groceries (Expense)"` // Name and type for display
	Links       CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := baseURL(c)

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:         model.Name,
			CategoryType: model.CategoryType,
		},
		DisplayName: model.DisplayName(),
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	ResponseError
	Data       []Category  `json:"data"`       // List of categories
	Pagination *Pagination `json:"pagination"` // Pagination information
}

type CategoryCreateResponse struct {
	ResponseError
	Data []CategoryResponse `json:"data"` // List of the created categories or their respective error
}

type CategoryResponse struct {
	ResponseError
	Data *Category `json:"data"` // Data for the category
}

type CategoryQueryFilter struct {
	Name         string                 `form:"name" filterField:"false"`   // By name
	CategoryType models.TransactionType `form:"categoryType"`               // By type
	Offset       uint                   `form:"offset" filterField:"false"` // The offset of the first category returned. Defaults to 0.
	Limit        int                    `form:"limit" filterField:"false"`  // Maximum number of categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model(userID string) models.Category {
	return models.Category{
		UserID:       userID,
		CategoryType: f.CategoryType,
	}
}
