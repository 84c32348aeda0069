package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestGoalCreateAllocates() {
	adjustBalance(suite.T(), models.BucketTotal, decimal.NewFromInt(100))

	goal := createTestGoal(suite.T(), v1.GoalInput{
		GoalEditable: v1.GoalEditable{
			TargetAmount:  decimal.NewFromInt(50),
			CurrentAmount: decimal.NewFromInt(30),
		},
	})

	assert.True(suite.T(), goal.Data.CurrentAmount.Equal(decimal.NewFromInt(30)), "Current amount is %s", goal.Data.CurrentAmount)
	assert.True(suite.T(), goal.Data.Progress.Equal(decimal.NewFromInt(60)), "Progress is %s", goal.Data.Progress)
	assert.True(suite.T(), goal.Data.Missing.Equal(decimal.NewFromInt(20)), "Missing is %s", goal.Data.Missing)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/goals/%s", goal.Data.ID), goal.Data.Links.Self)

	profile := getProfile(suite.T())
	assert.True(suite.T(), profile.TotalBalance.Equal(decimal.NewFromInt(70)), "Total balance is %s", profile.TotalBalance)
	assert.True(suite.T(), profile.ReservedBalance.Equal(decimal.NewFromInt(30)), "Reserved balance is %s", profile.ReservedBalance)
	assert.True(suite.T(), profile.Balance.Equal(decimal.NewFromInt(100)), "Balance is %s", profile.Balance)
	assert.True(suite.T(), profile.Spendable.Equal(decimal.NewFromInt(70)), "Spendable is %s", profile.Spendable)
}

func (suite *TestSuiteStandard) TestGoalCreateSource() {
	adjustBalance(suite.T(), models.BucketCard, decimal.NewFromInt(40))

	goal := createTestGoal(suite.T(), v1.GoalInput{
		GoalEditable: v1.GoalEditable{CurrentAmount: decimal.NewFromInt(25)},
		Source:       models.BucketCard,
	})
	assert.True(suite.T(), goal.Data.CurrentAmount.Equal(decimal.NewFromInt(25)))

	profile := getProfile(suite.T())
	assert.True(suite.T(), profile.CardBalance.Equal(decimal.NewFromInt(15)), "Card balance is %s", profile.CardBalance)
	assert.True(suite.T(), profile.TotalBalance.IsZero(), "Total balance is %s", profile.TotalBalance)
	assert.True(suite.T(), profile.ReservedBalance.Equal(decimal.NewFromInt(25)), "Reserved balance is %s", profile.ReservedBalance)
}

func (suite *TestSuiteStandard) TestGoalCreateSingleSchema() {
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/profile", v1.ProfileEditable{Schema: models.SchemaSingle})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	adjustBalance(suite.T(), models.BucketBalance, decimal.NewFromInt(80))

	// Without source, the single balance is used
	goal := createTestGoal(suite.T(), v1.GoalInput{GoalEditable: v1.GoalEditable{CurrentAmount: decimal.NewFromInt(50)}})
	assert.True(suite.T(), goal.Data.CurrentAmount.Equal(decimal.NewFromInt(50)))

	profile := getProfile(suite.T())
	assert.True(suite.T(), profile.TotalBalance.Equal(decimal.NewFromInt(30)), "Single balance is %s", profile.TotalBalance)
	assert.True(suite.T(), profile.ReservedBalance.IsZero(), "Reserved balance is %s", profile.ReservedBalance)
}

func (suite *TestSuiteStandard) TestGoalCreateFails() {
	adjustBalance(suite.T(), models.BucketTotal, decimal.NewFromInt(100))

	tests := []struct {
		name   string
		input  v1.GoalInput
		status int
		field  string
		err    error
	}{
		{
			"Target exceeded",
			v1.GoalInput{GoalEditable: v1.GoalEditable{Title: "Exceeded", TargetAmount: decimal.NewFromInt(50), CurrentAmount: decimal.NewFromInt(60)}},
			http.StatusBadRequest,
			"currentAmount",
			models.ErrTargetExceeded,
		},
		{
			"Insufficient funds",
			v1.GoalInput{GoalEditable: v1.GoalEditable{Title: "Expensive", TargetAmount: decimal.NewFromInt(500), CurrentAmount: decimal.NewFromInt(200)}},
			http.StatusBadRequest,
			"currentAmount",
			models.ErrInsufficientFunds,
		},
		{
			"Invalid source",
			v1.GoalInput{GoalEditable: v1.GoalEditable{Title: "Reserved source", CurrentAmount: decimal.NewFromInt(10)}, Source: models.BucketReserved},
			http.StatusBadRequest,
			"currentAmount",
			models.ErrInvalidSource,
		},
		{
			"Single balance source",
			v1.GoalInput{GoalEditable: v1.GoalEditable{Title: "Balance source", CurrentAmount: decimal.NewFromInt(10)}, Source: models.BucketBalance},
			http.StatusBadRequest,
			"currentAmount",
			models.ErrInvalidSource,
		},
		{
			"Negative current amount",
			v1.GoalInput{GoalEditable: v1.GoalEditable{Title: "Negative", CurrentAmount: decimal.NewFromInt(-5)}},
			http.StatusBadRequest,
			"currentAmount",
			models.ErrAllocationAmountNotPositive,
		},
		{
			"Target not positive",
			v1.GoalInput{GoalEditable: v1.GoalEditable{Title: "No target", TargetAmount: decimal.NewFromInt(-1)}},
			http.StatusBadRequest,
			"targetAmount",
			models.ErrGoalTargetNotPositive,
		},
		{
			"Invalid type",
			v1.GoalInput{GoalEditable: v1.GoalEditable{Title: "Type", GoalType: "retirement"}},
			http.StatusBadRequest,
			"goalType",
			models.ErrGoalTypeInvalid,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			goal := createTestGoal(t, tt.input, tt.status)
			require.NotNil(t, goal.Error)
			assert.Contains(t, *goal.Error, tt.err.Error())
			require.NotNil(t, goal.Field)
			assert.Equal(t, tt.field, *goal.Field)
		})
	}

	// No goal was created and no funds moved
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.GoalListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 0)

	profile := getProfile(suite.T())
	assert.True(suite.T(), profile.TotalBalance.Equal(decimal.NewFromInt(100)), "Total balance is %s", profile.TotalBalance)
	assert.True(suite.T(), profile.ReservedBalance.IsZero(), "Reserved balance is %s", profile.ReservedBalance)
}

func (suite *TestSuiteStandard) TestGoalCreateDuplicateTitle() {
	_ = createTestGoal(suite.T(), v1.GoalInput{GoalEditable: v1.GoalEditable{Title: "Twice"}})

	goal := createTestGoal(suite.T(), v1.GoalInput{GoalEditable: v1.GoalEditable{Title: "Twice"}}, http.StatusBadRequest)
	assert.Equal(suite.T(), models.ErrGoalTitleNotUnique.Error(), *goal.Error)
	assert.Equal(suite.T(), "title", *goal.Field)

	// Another user can use the same title
	var res v1.GoalCreateResponse
	createResource(suite.T(), "goals", v1.GoalInput{GoalEditable: v1.GoalEditable{Title: "Twice", GoalType: models.GoalTypePurchase, TargetAmount: decimal.NewFromInt(10)}}, &res, nil, test.UserHeader("someone-else"))
	assert.Nil(suite.T(), res.Data[0].Error)
}

// TestGoalCreateBatch verifies that each goal of a batch is allocated on its own.
func (suite *TestSuiteStandard) TestGoalCreateBatch() {
	adjustBalance(suite.T(), models.BucketTotal, decimal.NewFromInt(100))

	goals := []v1.GoalInput{
		{GoalEditable: v1.GoalEditable{Title: "First", GoalType: models.GoalTypeSavings, TargetAmount: decimal.NewFromInt(80), CurrentAmount: decimal.NewFromInt(70)}},
		{GoalEditable: v1.GoalEditable{Title: "Second", GoalType: models.GoalTypeSavings, TargetAmount: decimal.NewFromInt(80), CurrentAmount: decimal.NewFromInt(40)}},
		{GoalEditable: v1.GoalEditable{Title: "Third", GoalType: models.GoalTypeSavings, TargetAmount: decimal.NewFromInt(80), CurrentAmount: decimal.NewFromInt(30)}},
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/goals", goals)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var res v1.GoalCreateResponse
	test.DecodeResponse(suite.T(), &r, &res)
	require.Len(suite.T(), res.Data, 3)

	assert.Nil(suite.T(), res.Data[0].Error)
	require.NotNil(suite.T(), res.Data[1].Error)
	assert.Contains(suite.T(), *res.Data[1].Error, models.ErrInsufficientFunds.Error())
	assert.Nil(suite.T(), res.Data[2].Error)

	profile := getProfile(suite.T())
	assert.True(suite.T(), profile.TotalBalance.IsZero(), "Total balance is %s", profile.TotalBalance)
	assert.True(suite.T(), profile.ReservedBalance.Equal(decimal.NewFromInt(100)), "Reserved balance is %s", profile.ReservedBalance)
}

func (suite *TestSuiteStandard) TestGoalUpdate() {
	adjustBalance(suite.T(), models.BucketTotal, decimal.NewFromInt(100))

	goal := createTestGoal(suite.T(), v1.GoalInput{GoalEditable: v1.GoalEditable{CurrentAmount: decimal.NewFromInt(30)}})
	path := goal.Data.Links.Self

	tests := []struct {
		name      string
		body      any
		current   decimal.Decimal
		total     decimal.Decimal
		reserved  decimal.Decimal
		title     string
		status    int
		errorText string
	}{
		{"Title only", map[string]any{"title": "Holidays"}, decimal.NewFromInt(30), decimal.NewFromInt(70), decimal.NewFromInt(30), "Holidays", http.StatusOK, ""},
		{"Increase", map[string]any{"currentAmount": "45"}, decimal.NewFromInt(45), decimal.NewFromInt(55), decimal.NewFromInt(45), "Holidays", http.StatusOK, ""},
		{"Decrease keeps balances", map[string]any{"currentAmount": "10"}, decimal.NewFromInt(10), decimal.NewFromInt(55), decimal.NewFromInt(45), "Holidays", http.StatusOK, ""},
		{"Unchanged", map[string]any{"currentAmount": "10"}, decimal.NewFromInt(10), decimal.NewFromInt(55), decimal.NewFromInt(45), "Holidays", http.StatusOK, ""},
		{"Exceeds target", map[string]any{"currentAmount": "51"}, decimal.NewFromInt(10), decimal.NewFromInt(55), decimal.NewFromInt(45), "Holidays", http.StatusBadRequest, models.ErrTargetExceeded.Error()},
		{"Target below current", map[string]any{"targetAmount": "5"}, decimal.NewFromInt(10), decimal.NewFromInt(55), decimal.NewFromInt(45), "Holidays", http.StatusBadRequest, models.ErrTargetExceeded.Error()},
		{"Raise target and fund", map[string]any{"targetAmount": "200", "currentAmount": "60"}, decimal.NewFromInt(60), decimal.NewFromInt(5), decimal.NewFromInt(95), "Holidays", http.StatusOK, ""},
		{"Insufficient funds", map[string]any{"currentAmount": "70"}, decimal.NewFromInt(60), decimal.NewFromInt(5), decimal.NewFromInt(95), "Holidays", http.StatusBadRequest, models.ErrInsufficientFunds.Error()},
		{"Negative", map[string]any{"currentAmount": "-1"}, decimal.NewFromInt(60), decimal.NewFromInt(5), decimal.NewFromInt(95), "Holidays", http.StatusBadRequest, models.ErrGoalCurrentNegative.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var res v1.GoalResponse
			test.DecodeResponse(t, &r, &res)

			if tt.errorText != "" {
				require.NotNil(t, res.Error)
				assert.Contains(t, *res.Error, tt.errorText)
				assert.Equal(t, "currentAmount", *res.Field)
			}

			r = test.Request(t, http.MethodGet, path, nil)
			test.DecodeResponse(t, &r, &res)
			assert.True(t, res.Data.CurrentAmount.Equal(tt.current), "Current amount is %s, expected %s", res.Data.CurrentAmount, tt.current)
			assert.Equal(t, tt.title, res.Data.Title)

			profile := getProfile(t)
			assert.True(t, profile.TotalBalance.Equal(tt.total), "Total balance is %s, expected %s", profile.TotalBalance, tt.total)
			assert.True(t, profile.ReservedBalance.Equal(tt.reserved), "Reserved balance is %s, expected %s", profile.ReservedBalance, tt.reserved)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalUpdateSource() {
	adjustBalance(suite.T(), models.BucketEWallet, decimal.NewFromInt(20))

	goal := createTestGoal(suite.T(), v1.GoalInput{})

	r := test.Request(suite.T(), http.MethodPatch, goal.Data.Links.Self, map[string]any{"currentAmount": "20", "source": "e_wallet"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	profile := getProfile(suite.T())
	assert.True(suite.T(), profile.EWalletBalance.IsZero(), "E-wallet balance is %s", profile.EWalletBalance)
	assert.True(suite.T(), profile.ReservedBalance.Equal(decimal.NewFromInt(20)), "Reserved balance is %s", profile.ReservedBalance)
}

func (suite *TestSuiteStandard) TestGoalDeleteKeepsFunds() {
	adjustBalance(suite.T(), models.BucketTotal, decimal.NewFromInt(100))
	goal := createTestGoal(suite.T(), v1.GoalInput{GoalEditable: v1.GoalEditable{CurrentAmount: decimal.NewFromInt(30)}})

	r := test.Request(suite.T(), http.MethodDelete, goal.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	profile := getProfile(suite.T())
	assert.True(suite.T(), profile.TotalBalance.Equal(decimal.NewFromInt(70)), "Total balance is %s", profile.TotalBalance)
	assert.True(suite.T(), profile.ReservedBalance.Equal(decimal.NewFromInt(30)), "Reserved balance is %s", profile.ReservedBalance)
}

func (suite *TestSuiteStandard) TestGoalGetOtherUser() {
	goal := createTestGoal(suite.T(), v1.GoalInput{})

	r := test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, nil, test.UserHeader("intruder"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var res v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &res)
	assert.Equal(suite.T(), "there is no goal matching your query", *res.Error)

	r = test.Request(suite.T(), http.MethodPatch, goal.Data.Links.Self, map[string]any{"title": "Mine"}, test.UserHeader("intruder"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, goal.Data.Links.Self, nil, test.UserHeader("intruder"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGoalsList() {
	_ = createTestGoal(suite.T(), v1.GoalInput{GoalEditable: v1.GoalEditable{Title: "Laptop", GoalType: models.GoalTypePurchase}})
	_ = createTestGoal(suite.T(), v1.GoalInput{GoalEditable: v1.GoalEditable{Title: "Emergency fund"}})
	_ = createTestGoal(suite.T(), v1.GoalInput{GoalEditable: v1.GoalEditable{Title: "Pay back Kim", GoalType: models.GoalTypeDebtClear}})

	tests := []struct {
		name  string
		query string
		len   int
		total int64
	}{
		{"All", "", 3, 3},
		{"Type", "goalType=purchase", 1, 1},
		{"Title", "title=fund", 1, 1},
		{"Title no match", "title=boat", 0, 0},
		{"Limit", "limit=2", 2, 3},
		{"Offset", "offset=2", 1, 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/goals?%s", tt.query), nil)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var res v1.GoalListResponse
			test.DecodeResponse(t, &r, &res)
			assert.Len(t, res.Data, tt.len)
			assert.Equal(t, tt.total, res.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalDisplay() {
	goal := createTestGoal(suite.T(), v1.GoalInput{GoalEditable: v1.GoalEditable{GoalType: models.GoalTypeDebtClear}})
	assert.Equal(suite.T(), "Debt Clearance", goal.Data.DisplayName)

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/goals/%s", uuid.New()), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
