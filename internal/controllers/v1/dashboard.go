package v1

import (
	"net/http"
	"time"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type Dashboard struct {
	Profile            Profile                 `json:"profile"`                        // The profile with all balances
	Balance            decimal.Decimal         `json:"balance" example:"1800"`         // Sum of all balances
	RealBalance        decimal.Decimal         `json:"realBalance" example:"950.4"`    // Balance after expenses, open debts and reserved funds
	Income             decimal.Decimal         `json:"income" example:"5200"`          // Sum of all income
	Expense            decimal.Decimal         `json:"expense" example:"3100.6"`       // Sum of all expenses
	Saved              decimal.Decimal         `json:"saved" example:"2099.4"`         // Income minus expenses
	Allocated          decimal.Decimal         `json:"allocated" example:"750"`        // Sum of the current amounts of all goals
	TodayCount         int64                   `json:"todayCount" example:"3"`         // Number of transactions today
	MonthlyExpense     decimal.Decimal         `json:"monthlyExpense" example:"612.3"` // Expenses in the current month
	MonthlyBudget      decimal.Decimal         `json:"monthlyBudget" example:"900"`    // Sum of the budgets for the current month
	BudgetLeft         decimal.Decimal         `json:"budgetLeft" example:"287.7"`     // Budget minus expenses of the current month
	CategoryExpenses   []models.CategoryAmount `json:"categoryExpenses"`               // Expenses per category
	MonthlyExpenses    []models.MonthAmount    `json:"monthlyExpenses"`                // Expenses per month, oldest first
	MonthlyIncome      []models.MonthAmount    `json:"monthlyIncome"`                  // Income per month, oldest first
	RecentTransactions []Transaction           `json:"recentTransactions"`             // The latest transactions
	Goals              []Goal                  `json:"goals"`                          // The latest goals
	Debts              []Debt                  `json:"debts"`                          // All debts with their remaining amounts
}

type DashboardResponse struct {
	ResponseError
	Data *Dashboard `json:"data"` // Data for the dashboard
}

type DashboardQueryFilter struct {
	Date string `form:"date"` // The day to compute the dashboard for, YYYY-MM-DD. Defaults to today.
}

func newDashboard(c *gin.Context, model models.Dashboard) Dashboard {
	d := Dashboard{
		Profile:            newProfile(c, model.Profile),
		Balance:            model.Balance,
		RealBalance:        model.RealBalance,
		Income:             model.Income,
		Expense:            model.Expense,
		Saved:              model.Saved,
		Allocated:          model.Allocated,
		TodayCount:         model.TodayCount,
		MonthlyExpense:     model.MonthlyExpense,
		MonthlyBudget:      model.MonthlyBudget,
		BudgetLeft:         model.BudgetLeft,
		CategoryExpenses:   model.CategoryExpenses,
		MonthlyExpenses:    model.MonthlyExpenses,
		MonthlyIncome:      model.MonthlyIncome,
		RecentTransactions: make([]Transaction, 0, len(model.RecentTransactions)),
		Goals:              make([]Goal, 0, len(model.Goals)),
		Debts:              make([]Debt, 0, len(model.Debts)),
	}

	for _, t := range model.RecentTransactions {
		d.RecentTransactions = append(d.RecentTransactions, newTransaction(c, t))
	}

	for _, g := range model.Goals {
		d.Goals = append(d.Goals, newGoal(c, g))
	}

	for _, debt := range model.Debts {
		d.Debts = append(d.Debts, newDebt(c, debt))
	}

	return d
}

func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns the totals, chart series and latest resources of the user
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	DashboardResponse
// @Failure		400		{object}	DashboardResponse
// @Failure		500		{object}	DashboardResponse
// @Param			date	query		string	false	"The day to compute the dashboard for, YYYY-MM-DD. Defaults to today."
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	var filter DashboardQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, DashboardResponse{ResponseError: newResponseError(err)})
		return
	}

	today := time.Now().In(time.UTC)
	if filter.Date != "" {
		date, err := types.ParseDate(filter.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, DashboardResponse{ResponseError: newResponseError(err)})
			return
		}
		today = date.Time()
	}

	dashboard, err := models.DashboardFor(models.DB, userID(c), today)
	if err != nil {
		c.JSON(status(err), DashboardResponse{ResponseError: newResponseError(err)})
		return
	}

	apiResource := newDashboard(c, dashboard)
	c.JSON(http.StatusOK, DashboardResponse{Data: &apiResource})
}
