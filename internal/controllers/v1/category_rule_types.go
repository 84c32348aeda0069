package v1

import (
	"fmt"

	"github.com/fintrack/backend/internal/models"
	ez_uuid "github.com/fintrack/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CategoryRuleEditable represents all user configurable parameters
type CategoryRuleEditable struct {
	CategoryID uuid.UUID `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category assigned to matching transactions
	Priority   uint      `json:"priority" example:"1" default:"0"`                          // Rules with a lower priority are matched first
	Match      string    `json:"match" example:"*supermarket*" default:""`                  // Glob pattern matched against the note, case insensitive
}

func (editable CategoryRuleEditable) model(userID string) models.CategoryRule {
	return models.CategoryRule{
		UserID:     userID,
		CategoryID: editable.CategoryID,
		Priority:   editable.Priority,
		Match:      editable.Match,
	}
}

type CategoryRuleLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/category-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The rule itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"` // The category of the rule
}

type CategoryRule struct {
	models.DefaultModel
	CategoryRuleEditable
	Links CategoryRuleLinks `json:"links"`
}

func newCategoryRule(c *gin.Context, model models.CategoryRule) CategoryRule {
	url := baseURL(c)

	return CategoryRule{
		DefaultModel: model.DefaultModel,
		CategoryRuleEditable: CategoryRuleEditable{
			CategoryID: model.CategoryID,
			Priority:   model.Priority,
			Match:      model.Match,
		},
		Links: CategoryRuleLinks{
			Self:     fmt.Sprintf("%s/v1/category-rules/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type CategoryRuleListResponse struct {
	ResponseError
	Data       []CategoryRule `json:"data"`       // List of category rules
	Pagination *Pagination    `json:"pagination"` // Pagination information
}

type CategoryRuleCreateResponse struct {
	ResponseError
	Data []CategoryRuleResponse `json:"data"` // List of the created category rules or their respective error
}

type CategoryRuleResponse struct {
	ResponseError
	Data *CategoryRule `json:"data"` // Data for the category rule
}

type CategoryRuleQueryFilter struct {
	CategoryID ez_uuid.UUID `form:"category"`                   // By ID of the category
	Priority   uint         `form:"priority"`                   // By priority
	Match      string       `form:"match" filterField:"false"`  // By pattern
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first rule returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of rules to return. Defaults to 50.
}

func (f CategoryRuleQueryFilter) model(userID string) models.CategoryRule {
	return models.CategoryRule{
		UserID:     userID,
		CategoryID: f.CategoryID.UUID,
		Priority:   f.Priority,
	}
}
