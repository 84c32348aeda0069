package models

import (
	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the spending limit for a category in one month.
type Budget struct {
	DefaultModel
	UserID       string          `gorm:"uniqueIndex:budget_user_category_month"`
	CategoryID   *uuid.UUID      `gorm:"uniqueIndex:budget_user_category_month"`
	Category     *Category       `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	Month        types.Month     `gorm:"uniqueIndex:budget_user_category_month"`
	MonthlyLimit decimal.Decimal `gorm:"type:DECIMAL(12,2)"`
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.MonthlyLimit = RoundMoney(b.MonthlyLimit)

	if b.CategoryID != nil && *b.CategoryID == uuid.Nil {
		b.CategoryID = nil
	}

	if b.Month.IsZero() {
		return fieldError("month", ErrBudgetMonthMissing)
	}

	if b.MonthlyLimit.LessThan(minimumAmount) {
		return fieldError("monthlyLimit", ErrAmountNotPositive)
	}

	return nil
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)
	return checkCategory(tx, b.UserID, b.CategoryID)
}

func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	return checkCategory(tx, b.UserID, b.CategoryID)
}

// Spent returns the sum of all expenses in the month of the budget.
//
// If the budget has a category, only expenses in that category are counted.
func (b Budget) Spent(db *gorm.DB) (decimal.Decimal, error) {
	q := db.Model(&Transaction{}).
		Scopes(OwnedBy(b.UserID)).
		Where(&Transaction{TransactionType: TransactionTypeExpense}).
		Where("date BETWEEN ? AND ?", b.Month.FirstDay(), b.Month.LastDay())

	if b.CategoryID != nil {
		q = q.Where("category_id = ?", *b.CategoryID)
	}

	return sum(q, "amount")
}

// Left returns the amount of the limit that has not been spent yet.
// It is negative when the budget is overspent.
func (b Budget) Left(db *gorm.DB) (decimal.Decimal, error) {
	spent, err := b.Spent(db)
	if err != nil {
		return decimal.Zero, err
	}

	return b.MonthlyLimit.Sub(spent), nil
}
