package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/fintrack/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestReportsCreate() {
	tests := []struct {
		name   string
		report v1.ReportEditable
		status int
		field  string
	}{
		{"Monthly", v1.ReportEditable{}, http.StatusCreated, ""},
		{"Yearly", v1.ReportEditable{ReportType: models.ReportTypeYearly, StartDate: types.NewDate(2024, time.January, 1), EndDate: types.NewDate(2024, time.December, 31)}, http.StatusCreated, ""},
		{"Single day", v1.ReportEditable{StartDate: types.NewDate(2024, time.March, 5), EndDate: types.NewDate(2024, time.March, 5)}, http.StatusCreated, ""},
		{"Invalid type", v1.ReportEditable{ReportType: "weekly"}, http.StatusBadRequest, "reportType"},
		{"End before start", v1.ReportEditable{StartDate: types.NewDate(2024, time.April, 1)}, http.StatusBadRequest, "endDate"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			report := createTestReport(t, tt.report, tt.status)

			if tt.status == http.StatusCreated {
				require.NotNil(t, report.Data)
				assert.Nil(t, report.Data.Summary)
				return
			}

			require.NotNil(t, report.Field)
			assert.Equal(t, tt.field, *report.Field)
		})
	}
}

func (suite *TestSuiteStandard) TestReportsSummary() {
	groceries := createTestCategory(suite.T(), v1.CategoryEditable{})
	rent := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Rent"})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &groceries.Data.ID, Amount: decimal.NewFromInt(60)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &groceries.Data.ID, Amount: decimal.NewFromFloat(40.25)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &rent.Data.ID, Amount: decimal.NewFromInt(700)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(15)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{TransactionType: models.TransactionTypeIncome, Amount: decimal.NewFromInt(2000)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(500), Date: types.NewDate(2024, time.April, 1)})

	_ = createTestDebt(suite.T(), v1.DebtEditable{RemainingAmount: decimal.NewFromInt(300)})
	_ = createTestDebt(suite.T(), v1.DebtEditable{Title: "Kim", DebtType: models.DebtTypeLent, TotalAmount: decimal.NewFromInt(80), RemainingAmount: decimal.NewFromInt(80)})

	report := createTestReport(suite.T(), v1.ReportEditable{})
	assert.Equal(suite.T(), "Monthly", report.Data.DisplayName)

	r := test.Request(suite.T(), http.MethodGet, report.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var res v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &res)
	require.NotNil(suite.T(), res.Data.Summary)

	summary := res.Data.Summary
	assert.True(suite.T(), summary.Income.Equal(decimal.NewFromInt(2000)), "Income is %s", summary.Income)
	assert.True(suite.T(), summary.Expense.Equal(decimal.NewFromFloat(815.25)), "Expense is %s", summary.Expense)
	assert.True(suite.T(), summary.Saved.Equal(decimal.NewFromFloat(1184.75)), "Saved is %s", summary.Saved)
	assert.Equal(suite.T(), int64(5), summary.Transactions)
	assert.True(suite.T(), summary.LentRemaining.IsZero(), "Monthly reports do not include debts")

	require.Len(suite.T(), summary.CategoryExpenses, 3)
	assert.Equal(suite.T(), "", summary.CategoryExpenses[0].Category)
	assert.True(suite.T(), summary.CategoryExpenses[0].Amount.Equal(decimal.NewFromInt(15)))
	assert.Equal(suite.T(), "Groceries", summary.CategoryExpenses[1].Category)
	assert.True(suite.T(), summary.CategoryExpenses[1].Amount.Equal(decimal.NewFromFloat(100.25)))
	assert.Equal(suite.T(), "Rent", summary.CategoryExpenses[2].Category)

	debt := createTestReport(suite.T(), v1.ReportEditable{ReportType: models.ReportTypeDebt})
	assert.Equal(suite.T(), "Debt Summary", debt.Data.DisplayName)

	r = test.Request(suite.T(), http.MethodGet, debt.Data.Links.Self, nil)
	test.DecodeResponse(suite.T(), &r, &res)
	assert.True(suite.T(), res.Data.Summary.LentRemaining.Equal(decimal.NewFromInt(80)), "Lent remaining is %s", res.Data.Summary.LentRemaining)
	assert.True(suite.T(), res.Data.Summary.BorrowedRemaining.Equal(decimal.NewFromInt(300)), "Borrowed remaining is %s", res.Data.Summary.BorrowedRemaining)
}

func (suite *TestSuiteStandard) TestReportsList() {
	_ = createTestReport(suite.T(), v1.ReportEditable{})
	_ = createTestReport(suite.T(), v1.ReportEditable{StartDate: types.NewDate(2024, time.April, 1), EndDate: types.NewDate(2024, time.April, 30)})
	_ = createTestReport(suite.T(), v1.ReportEditable{ReportType: models.ReportTypeYearly, StartDate: types.NewDate(2023, time.January, 1), EndDate: types.NewDate(2023, time.December, 31)})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Monthly", "reportType=monthly", 2},
		{"Yearly", "reportType=yearly", 1},
		{"Category", "reportType=category", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/reports?%s", tt.query), nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var res v1.ReportListResponse
			test.DecodeResponse(t, &r, &res)
			assert.Len(t, res.Data, tt.len)

			for _, report := range res.Data {
				assert.Nil(t, report.Summary, "Lists do not contain summaries")
			}
		})
	}
}

func (suite *TestSuiteStandard) TestReportsUpdate() {
	report := createTestReport(suite.T(), v1.ReportEditable{})

	r := test.Request(suite.T(), http.MethodPatch, report.Data.Links.Self, map[string]any{"reportType": "category"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var res v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &res)
	assert.Equal(suite.T(), models.ReportTypeCategory, res.Data.ReportType)
	assert.Equal(suite.T(), "Category-wise", res.Data.DisplayName)

	r = test.Request(suite.T(), http.MethodPatch, report.Data.Links.Self, map[string]any{"endDate": "2024-02-01"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestReportsDelete() {
	report := createTestReport(suite.T(), v1.ReportEditable{})

	r := test.Request(suite.T(), http.MethodDelete, report.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, report.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
