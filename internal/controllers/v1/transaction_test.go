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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{})
	missing := uuid.New()

	tests := []struct {
		name        string
		transaction v1.TransactionEditable
		status      int
		field       string
	}{
		{"With category", v1.TransactionEditable{CategoryID: &category.Data.ID, PaymentSource: models.PaymentSourceCard}, http.StatusCreated, ""},
		{"Without category", v1.TransactionEditable{Note: "Bus ticket"}, http.StatusCreated, ""},
		{"Income", v1.TransactionEditable{TransactionType: models.TransactionTypeIncome, Amount: decimal.NewFromInt(2500)}, http.StatusCreated, ""},
		{"Amount too small", v1.TransactionEditable{Amount: decimal.NewFromFloat(0.001)}, http.StatusBadRequest, "amount"},
		{"Negative amount", v1.TransactionEditable{Amount: decimal.NewFromInt(-3)}, http.StatusBadRequest, "amount"},
		{"Invalid type", v1.TransactionEditable{TransactionType: "transfer"}, http.StatusBadRequest, "transactionType"},
		{"Invalid payment source", v1.TransactionEditable{PaymentSource: "cheque"}, http.StatusBadRequest, "paymentSource"},
		{"Missing category", v1.TransactionEditable{CategoryID: &missing}, http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			transaction := createTestTransaction(t, tt.transaction, tt.status)

			if tt.status == http.StatusCreated {
				require.NotNil(t, transaction.Data)
				assert.Equal(t, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID), transaction.Data.Links.Self)
				return
			}

			require.NotNil(t, transaction.Error)
			if tt.field != "" {
				require.NotNil(t, transaction.Field)
				assert.Equal(t, tt.field, *transaction.Field)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreateDefaults() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Note: "  Coffee  "})

	assert.Equal(suite.T(), models.PaymentSourceCash, transaction.Data.PaymentSource)
	assert.Equal(suite.T(), "Coffee", transaction.Data.Note)
	assert.True(suite.T(), transaction.Data.Amount.Equal(decimal.NewFromFloat(12.5)))
	assert.Nil(suite.T(), transaction.Data.CategoryID)
}

// TestTransactionsCategoryRules verifies that transactions without a
// category get the category of the first matching rule.
func (suite *TestSuiteStandard) TestTransactionsCategoryRules() {
	groceries := createTestCategory(suite.T(), v1.CategoryEditable{})
	farm := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Farm"})
	dining := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Dining"})

	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{CategoryID: groceries.Data.ID, Priority: 10, Match: "*market*"})
	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{CategoryID: farm.Data.ID, Priority: 1, Match: "farmers market*"})

	tests := []struct {
		name     string
		input    v1.TransactionEditable
		category *uuid.UUID
	}{
		{"Higher priority rule wins", v1.TransactionEditable{Note: "Farmers Market Saturday"}, &farm.Data.ID},
		{"Lower priority rule", v1.TransactionEditable{Note: "Supermarket"}, &groceries.Data.ID},
		{"No match", v1.TransactionEditable{Note: "Cinema"}, nil},
		{"Empty note", v1.TransactionEditable{}, nil},
		{"Explicit category", v1.TransactionEditable{Note: "Supermarket", CategoryID: &dining.Data.ID}, &dining.Data.ID},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			transaction := createTestTransaction(t, tt.input)
			assert.Equal(t, tt.category, transaction.Data.CategoryID)
		})
	}

	// Rules of other users are not applied
	var res v1.TransactionCreateResponse
	createResource(suite.T(), "transactions", v1.TransactionEditable{
		TransactionType: models.TransactionTypeExpense,
		Amount:          decimal.NewFromInt(3),
		Date:            types.NewDate(2024, time.March, 3),
		Note:            "Supermarket",
	}, &res, nil, test.UserHeader("someone-else"))
	assert.Nil(suite.T(), res.Data[0].Data.CategoryID)
}

func (suite *TestSuiteStandard) TestTransactionsList() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &category.Data.ID, Amount: decimal.NewFromInt(10), Date: types.NewDate(2024, time.March, 1), Note: "Weekly shop"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(20), Date: types.NewDate(2024, time.March, 15), Note: "Train", PaymentSource: models.PaymentSourceCard})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{TransactionType: models.TransactionTypeIncome, Amount: decimal.NewFromInt(3000), Date: types.NewDate(2024, time.April, 1), Note: "Salary"})

	tests := []struct {
		name  string
		query string
		notes []string
	}{
		{"All, newest first", "", []string{"Salary", "Train", "Weekly shop"}},
		{"Category", fmt.Sprintf("category=%s", category.Data.ID), []string{"Weekly shop"}},
		{"No category", "category=", []string{"Salary", "Train"}},
		{"Type", "transactionType=income", []string{"Salary"}},
		{"Payment source", "paymentSource=card", []string{"Train"}},
		{"From date", "fromDate=2024-03-15", []string{"Salary", "Train"}},
		{"Until date", "untilDate=2024-03-15", []string{"Train", "Weekly shop"}},
		{"Date range", "fromDate=2024-03-02&untilDate=2024-03-31", []string{"Train"}},
		{"Amount less", "amountLessOrEqual=20", []string{"Train", "Weekly shop"}},
		{"Amount more", "amountMoreOrEqual=20", []string{"Salary", "Train"}},
		{"Note", "note=shop", []string{"Weekly shop"}},
		{"Search", "search=ALA", []string{"Salary"}},
		{"Limit", "limit=1", []string{"Salary"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var res v1.TransactionListResponse
			test.DecodeResponse(t, &r, &res)

			notes := make([]string, 0, len(res.Data))
			for _, transaction := range res.Data {
				notes = append(notes, transaction.Note)
			}
			assert.Equal(t, tt.notes, notes)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsListInvalidFilter() {
	for _, query := range []string{"fromDate=yesterday", "untilDate=2024-13-01", "category=nope", "limit=many"} {
		suite.T().Run(query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", query), nil)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Note: "Lunch"})
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Dining"})

	r := test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{
		"amount":     "8.99",
		"categoryId": category.Data.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var res v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &res)
	assert.True(suite.T(), res.Data.Amount.Equal(decimal.NewFromFloat(8.99)), "Amount is %s", res.Data.Amount)
	assert.Equal(suite.T(), &category.Data.ID, res.Data.CategoryID)
	assert.Equal(suite.T(), "Lunch", res.Data.Note)

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Zero amount", map[string]any{"amount": "0"}, http.StatusBadRequest},
		{"Invalid type", map[string]any{"transactionType": "refund"}, http.StatusBadRequest},
		{"Missing category", map[string]any{"categoryId": uuid.New()}, http.StatusNotFound},
		{"Broken body", `{ "note": 5 }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, transaction.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestTransactionsDoNotMoveBalances verifies that transactions are a
// record only.
func (suite *TestSuiteStandard) TestTransactionsDoNotMoveBalances() {
	adjustBalance(suite.T(), models.BucketCard, decimal.NewFromInt(100))
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{PaymentSource: models.PaymentSourceCard, Amount: decimal.NewFromInt(40)})

	profile := getProfile(suite.T())
	assert.True(suite.T(), profile.CardBalance.Equal(decimal.NewFromInt(100)), "Card balance is %s", profile.CardBalance)
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{})

	r := test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, nil, test.UserHeader("intruder"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
