package models

import (
	"strings"

	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GoalType string

const (
	GoalTypeSavings   GoalType = "savings"
	GoalTypeDebtClear GoalType = "debt_clear"
	GoalTypePurchase  GoalType = "purchase"
)

// Valid reports whether t is a known goal type.
func (t GoalType) Valid() bool {
	switch t {
	case GoalTypeSavings, GoalTypeDebtClear, GoalTypePurchase:
		return true
	}
	return false
}

func (t GoalType) DisplayName() string {
	return displayName(string(t), map[string]string{
		string(GoalTypeDebtClear): "Debt Clearance",
	})
}

// Goal is a savings, debt clearance or purchase target.
//
// Funds are moved into a goal with Allocate. Deleting a goal does
// not return its funds to any bucket.
type Goal struct {
	DefaultModel
	UserID        string          `gorm:"uniqueIndex:goal_user_title"`
	Title         string          `gorm:"uniqueIndex:goal_user_title"`
	GoalType      GoalType
	TargetAmount  decimal.Decimal `gorm:"type:DECIMAL(12,2)"`
	CurrentAmount decimal.Decimal `gorm:"type:DECIMAL(12,2)"`
	Deadline      *types.Date
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Title = strings.TrimSpace(g.Title)
	g.TargetAmount = RoundMoney(g.TargetAmount)
	g.CurrentAmount = RoundMoney(g.CurrentAmount)

	return g.validate()
}

func (g Goal) validate() error {
	if g.Title == "" {
		return fieldError("title", ErrGoalTitleEmpty)
	}

	if !g.GoalType.Valid() {
		return fieldError("goalType", ErrGoalTypeInvalid)
	}

	if !g.TargetAmount.IsPositive() {
		return fieldError("targetAmount", ErrGoalTargetNotPositive)
	}

	if g.CurrentAmount.IsNegative() {
		return fieldError("currentAmount", ErrGoalCurrentNegative)
	}

	if g.CurrentAmount.GreaterThan(g.TargetAmount) {
		return fieldError("currentAmount", ErrTargetExceeded)
	}

	return nil
}

// Progress returns the funded percentage of the goal, capped at 100.
func (g Goal) Progress() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.Zero
	}

	percentage := g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100))
	return decimal.Min(percentage, decimal.NewFromInt(100)).Round(moneyPlaces)
}

// Missing returns the amount still needed to reach the target.
func (g Goal) Missing() decimal.Decimal {
	return decimal.Max(g.TargetAmount.Sub(g.CurrentAmount), decimal.Zero)
}
