package v1

import (
	"encoding/json"
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

// Export contains all resources of the user.
type Export struct {
	Profile       Profile        `json:"profile"`       // The profile
	Categories    []Category     `json:"categories"`    // All categories
	Transactions  []Transaction  `json:"transactions"`  // All transactions
	Budgets       []Budget       `json:"budgets"`       // All budgets
	Debts         []Debt         `json:"debts"`         // All debts
	Goals         []Goal         `json:"goals"`         // All goals
	CategoryRules []CategoryRule `json:"categoryRules"` // All category rules
	Reports       []Report       `json:"reports"`       // All reports
}

type ExportQueryFilter struct {
	Format string `form:"format"` // 'json' or 'yaml'. Defaults to 'json'.
}

func newExport(c *gin.Context, model models.Export) (Export, error) {
	e := Export{
		Profile:       newProfile(c, model.Profile),
		Categories:    make([]Category, 0, len(model.Categories)),
		Transactions:  make([]Transaction, 0, len(model.Transactions)),
		Budgets:       make([]Budget, 0, len(model.Budgets)),
		Debts:         make([]Debt, 0, len(model.Debts)),
		Goals:         make([]Goal, 0, len(model.Goals)),
		CategoryRules: make([]CategoryRule, 0, len(model.CategoryRules)),
		Reports:       make([]Report, 0, len(model.Reports)),
	}

	for _, m := range model.Categories {
		e.Categories = append(e.Categories, newCategory(c, m))
	}

	for _, m := range model.Transactions {
		e.Transactions = append(e.Transactions, newTransaction(c, m))
	}

	for _, m := range model.Budgets {
		budget, err := newBudget(c, models.DB, m)
		if err != nil {
			return Export{}, err
		}
		e.Budgets = append(e.Budgets, budget)
	}

	for _, m := range model.Debts {
		e.Debts = append(e.Debts, newDebt(c, m))
	}

	for _, m := range model.Goals {
		e.Goals = append(e.Goals, newGoal(c, m))
	}

	for _, m := range model.CategoryRules {
		e.CategoryRules = append(e.CategoryRules, newCategoryRule(c, m))
	}

	for _, m := range model.Reports {
		e.Reports = append(e.Reports, newReport(c, m))
	}

	return e, nil
}

// toYAML encodes the export as YAML with the same keys as the JSON encoding.
func (e Export) toYAML() ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}

	var generic map[string]any
	err = json.Unmarshal(data, &generic)
	if err != nil {
		return nil, err
	}

	return yaml.Marshal(generic)
}

func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", GetExport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export
// @Description	Returns all resources of the user
// @Tags			Export
// @Produce		json
// @Produce		application/yaml
// @Success		200		{object}	Export
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			format	query		string	false	"'json' or 'yaml'. Defaults to 'json'."
// @Router			/v1/export [get]
func GetExport(c *gin.Context) {
	var filter ExportQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, newHTTPError(err))
		return
	}

	if filter.Format != "" && filter.Format != "json" && filter.Format != "yaml" {
		c.JSON(http.StatusBadRequest, newHTTPError(errExportFormat))
		return
	}

	model, err := models.ExportFor(models.DB, userID(c))
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	export, err := newExport(c, model)
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	if filter.Format != "yaml" {
		c.JSON(http.StatusOK, export)
		return
	}

	data, err := export.toYAML()
	if err != nil {
		c.JSON(http.StatusInternalServerError, newHTTPError(models.ErrGeneral))
		return
	}

	c.Data(http.StatusOK, "application/yaml; charset=utf-8", data)
}
