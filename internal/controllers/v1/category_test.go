package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategoriesDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var res v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &res)
	assert.Equal(suite.T(), models.ErrGeneral.Error(), *res.Error)
}

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	tests := []struct {
		name     string
		category v1.CategoryEditable
		status   int
		field    string
	}{
		{"Expense", v1.CategoryEditable{Name: "Rent"}, http.StatusCreated, ""},
		{"Same name as income", v1.CategoryEditable{Name: "Rent", CategoryType: models.TransactionTypeIncome}, http.StatusCreated, ""},
		{"Duplicate", v1.CategoryEditable{Name: "Rent"}, http.StatusBadRequest, "name"},
		{"Whitespace name", v1.CategoryEditable{Name: "   "}, http.StatusBadRequest, "name"},
		{"Invalid type", v1.CategoryEditable{Name: "Transfers", CategoryType: "transfer"}, http.StatusBadRequest, "categoryType"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			category := createTestCategory(t, tt.category, tt.status)

			if tt.field == "" {
				require.NotNil(t, category.Data)
				assert.Equal(t, fmt.Sprintf("http://example.com/v1/categories/%s", category.Data.ID), category.Data.Links.Self)
				assert.Equal(t, fmt.Sprintf("http://example.com/v1/transactions?category=%s", category.Data.ID), category.Data.Links.Transactions)
				return
			}

			require.NotNil(t, category.Field)
			assert.Equal(t, tt.field, *category.Field)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesCreateBrokenBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", `[{ "name": 2 }]`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesList() {
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Salary", CategoryType: models.TransactionTypeIncome})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Gifts"})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Hidden"}, http.StatusCreated)

	// A category of another user
	var other v1.CategoryCreateResponse
	createResource(suite.T(), "categories", v1.CategoryEditable{Name: "Other", CategoryType: models.TransactionTypeExpense}, &other, nil, test.UserHeader("someone-else"))

	tests := []struct {
		name  string
		query string
		names []string
	}{
		{"All", "", []string{"Gifts", "Groceries", "Hidden", "Salary"}},
		{"Income", "categoryType=income", []string{"Salary"}},
		{"Name", "name=gr", []string{"Groceries"}},
		{"Limit", "limit=1", []string{"Gifts"}},
		{"Offset", "offset=3", []string{"Salary"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?%s", tt.query), nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var res v1.CategoryListResponse
			test.DecodeResponse(t, &r, &res)

			names := make([]string, 0, len(res.Data))
			for _, c := range res.Data {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.names, names)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGet() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing", category.Data.ID.String(), http.StatusOK},
		{"Not existing", uuid.New().String(), http.StatusNotFound},
		{"Invalid UUID", "not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), nil)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, nil)
	var res v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &res)
	assert.Equal(suite.T(), "Groceries (Expense)", res.Data.DisplayName)
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Taken"})

	r := test.Request(suite.T(), http.MethodPatch, category.Data.Links.Self, map[string]any{"name": "Food"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var res v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &res)
	assert.Equal(suite.T(), "Food", res.Data.Name)
	assert.Equal(suite.T(), models.TransactionTypeExpense, res.Data.CategoryType)

	r = test.Request(suite.T(), http.MethodPatch, category.Data.Links.Self, map[string]any{"name": "Taken"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	test.DecodeResponse(suite.T(), &r, &res)
	assert.Equal(suite.T(), models.ErrCategoryNameNotUnique.Error(), *res.Error)

	r = test.Request(suite.T(), http.MethodPatch, category.Data.Links.Self, `{ "name": 2 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/categories/%s", uuid.New()), map[string]any{"name": "Nope"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestCategoriesDelete verifies that transactions keep existing without
// a category and rules of the category are removed.
func (suite *TestSuiteStandard) TestCategoriesDelete() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{})
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: &category.Data.ID})
	rule := createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{CategoryID: category.Data.ID})

	r := test.Request(suite.T(), http.MethodDelete, category.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var res v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &res)
	assert.Nil(suite.T(), res.Data.CategoryID)

	r = test.Request(suite.T(), http.MethodGet, rule.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
