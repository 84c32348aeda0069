package v1

import (
	"fmt"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GoalEditable represents all user configurable parameters
type GoalEditable struct {
	Title         string          `json:"title" example:"Vacation" default:""`                                                  // Title of the goal, unique per user
	GoalType      models.GoalType `json:"goalType" example:"savings" default:""`                                                // One of 'savings', 'debt_clear' or 'purchase'
	TargetAmount  decimal.Decimal `json:"targetAmount" example:"1500" minimum:"0.01" maximum:"9999999999.99" multipleOf:"0.01"` // The amount to reach
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"250" minimum:"0" maximum:"9999999999.99" multipleOf:"0.01"`    // The amount funded so far. Increases are allocated from the source balance.
	Deadline      *types.Date     `json:"deadline" example:"2024-12-31"`                                                        // Day the goal should be reached, if any
}

// model returns the goal without its current amount. The current
// amount only changes through allocations.
func (editable GoalEditable) model(userID string) models.Goal {
	return models.Goal{
		UserID:       userID,
		Title:        editable.Title,
		GoalType:     editable.GoalType,
		TargetAmount: editable.TargetAmount,
		Deadline:     editable.Deadline,
	}
}

// GoalInput is the request body for creating and updating goals.
type GoalInput struct {
	GoalEditable
	Source models.Bucket `json:"source" example:"card" default:""` // The balance to allocate from. Defaults to 'total', or 'balance' for single balance profiles.
}

type GoalLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/goals/0e6bd5a1-d8e4-4e53-9a64-8e1e2c6b4f7a"` // The goal itself
}

type Goal struct {
	models.DefaultModel
	GoalEditable
	Links GoalLinks `json:"links"`

	// These fields are computed
	DisplayName string          `json:"displayName" example:"Savings"` // Display name of the goal type
	Progress    decimal.Decimal `json:"progress" example:"16.67"`      // Funded percentage, at most 100
	Missing     decimal.Decimal `json:"missing" example:"1250"`        // Amount still needed to reach the target
}

func newGoal(c *gin.Context, model models.Goal) Goal {
	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Title:         model.Title,
			GoalType:      model.GoalType,
			TargetAmount:  model.TargetAmount,
			CurrentAmount: model.CurrentAmount,
			Deadline:      model.Deadline,
		},
		Links: GoalLinks{
			Self: fmt.Sprintf("%s/v1/goals/%s", baseURL(c), model.ID),
		},
		DisplayName: model.GoalType.DisplayName(),
		Progress:    model.Progress(),
		Missing:     model.Missing(),
	}
}

type GoalListResponse struct {
	ResponseError
	Data       []Goal      `json:"data"`       // List of goals
	Pagination *Pagination `json:"pagination"` // Pagination information
}

type GoalCreateResponse struct {
	ResponseError
	Data []GoalResponse `json:"data"` // List of the created goals or their respective error
}

type GoalResponse struct {
	ResponseError
	Data *Goal `json:"data"` // Data for the goal
}

type GoalQueryFilter struct {
	Title    string          `form:"title" filterField:"false"`  // By title
	GoalType models.GoalType `form:"goalType"`                   // By type
	Offset   uint            `form:"offset" filterField:"false"` // The offset of the first goal returned. Defaults to 0.
	Limit    int             `form:"limit" filterField:"false"`  // Maximum number of goals to return. Defaults to 50.
}

func (f GoalQueryFilter) model(userID string) models.Goal {
	return models.Goal{
		UserID:   userID,
		GoalType: f.GoalType,
	}
}
