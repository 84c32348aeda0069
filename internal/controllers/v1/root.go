package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterRoutes registers the v1 API on r.
func RegisterRoutes(r *gin.RouterGroup) {
	RegisterRootRoutes(r.Group(""))
	RegisterProfileRoutes(r.Group("/profile"))
	RegisterCategoryRoutes(r.Group("/categories"))
	RegisterTransactionRoutes(r.Group("/transactions"))
	RegisterBudgetRoutes(r.Group("/budgets"))
	RegisterDebtRoutes(r.Group("/debts"))
	RegisterGoalRoutes(r.Group("/goals"))
	RegisterCategoryRuleRoutes(r.Group("/category-rules"))
	RegisterReportRoutes(r.Group("/reports"))
	RegisterDashboardRoutes(r.Group("/dashboard"))
	RegisterExportRoutes(r.Group("/export"))
}

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Profile       string `json:"profile" example:"https://example.com/api/v1/profile"`              // URL of the profile endpoint
	Categories    string `json:"categories" example:"https://example.com/api/v1/categories"`        // URL of Category collection endpoint
	Transactions  string `json:"transactions" example:"https://example.com/api/v1/transactions"`    // URL of Transaction collection endpoint
	Budgets       string `json:"budgets" example:"https://example.com/api/v1/budgets"`              // URL of Budget collection endpoint
	Debts         string `json:"debts" example:"https://example.com/api/v1/debts"`                  // URL of Debt collection endpoint
	Goals         string `json:"goals" example:"https://example.com/api/v1/goals"`                  // URL of Goal collection endpoint
	CategoryRules string `json:"categoryRules" example:"https://example.com/api/v1/category-rules"` // URL of Category Rule collection endpoint
	Reports       string `json:"reports" example:"https://example.com/api/v1/reports"`              // URL of Report collection endpoint
	Dashboard     string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`          // URL of the dashboard endpoint
	Export        string `json:"export" example:"https://example.com/api/v1/export"`                // URL of the export endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := baseURL(c)

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Profile:       url + "/v1/profile",
			Categories:    url + "/v1/categories",
			Transactions:  url + "/v1/transactions",
			Budgets:       url + "/v1/budgets",
			Debts:         url + "/v1/debts",
			Goals:         url + "/v1/goals",
			CategoryRules: url + "/v1/category-rules",
			Reports:       url + "/v1/reports",
			Dashboard:     url + "/v1/dashboard",
			Export:        url + "/v1/export",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Delete everything
// @Description	Permanently deletes all resources of the user and resets the balances of the profile
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, newHTTPError(errCleanupConfirmation))
		return
	}

	// Foreign keys are checked during cleanup,
	// add new models *before* any of the models
	// they reference
	resources := []any{
		&models.CategoryRule{},
		&models.Budget{},
		&models.Transaction{},
		&models.Category{},
		&models.Goal{},
		&models.Debt{},
		&models.Report{},
	}

	// Use a transaction so that we can roll back if errors happen
	tx := models.DB.Begin()
	defer tx.Rollback()

	for _, model := range resources {
		err := tx.Unscoped().Scopes(models.OwnedBy(userID(c))).Delete(model).Error
		if err != nil {
			c.JSON(status(err), newHTTPError(err))
			return
		}
	}

	profile, err := models.ProfileFor(tx, userID(c))
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	profile.TotalBalance = decimal.Zero
	profile.CardBalance = decimal.Zero
	profile.EWalletBalance = decimal.Zero
	profile.ReservedBalance = decimal.Zero

	err = tx.Save(&profile).Error
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	err = tx.Commit().Error
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	c.Status(http.StatusNoContent)
}
