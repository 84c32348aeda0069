package models

import (
	"strings"

	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DebtType string

const (
	DebtTypeLent     DebtType = "lent"
	DebtTypeBorrowed DebtType = "borrowed"
)

func (t DebtType) Valid() bool {
	return t == DebtTypeLent || t == DebtTypeBorrowed
}

func (t DebtType) DisplayName() string {
	return displayName(string(t), nil)
}

// Debt is money lent to or borrowed from someone else.
type Debt struct {
	DefaultModel
	UserID          string `gorm:"uniqueIndex:debt_user_title"`
	Title           string `gorm:"uniqueIndex:debt_user_title"`
	DebtType        DebtType
	TotalAmount     decimal.Decimal `gorm:"type:DECIMAL(12,2)"`
	RemainingAmount decimal.Decimal `gorm:"type:DECIMAL(12,2)"`
	StartDate       types.Date
	DueDate         *types.Date
	Note            string
}

func (d *Debt) BeforeSave(_ *gorm.DB) error {
	d.Title = strings.TrimSpace(d.Title)
	d.Note = strings.TrimSpace(d.Note)
	d.TotalAmount = RoundMoney(d.TotalAmount)
	d.RemainingAmount = RoundMoney(d.RemainingAmount)

	if d.DueDate != nil && d.DueDate.IsZero() {
		d.DueDate = nil
	}

	return d.validate()
}

func (d Debt) validate() error {
	if d.Title == "" {
		return fieldError("title", ErrDebtTitleEmpty)
	}

	if !d.DebtType.Valid() {
		return fieldError("debtType", ErrDebtTypeInvalid)
	}

	if d.TotalAmount.LessThan(minimumAmount) {
		return fieldError("totalAmount", ErrAmountNotPositive)
	}

	if d.RemainingAmount.IsNegative() {
		return fieldError("remainingAmount", ErrDebtRemainingNegative)
	}

	if d.RemainingAmount.GreaterThan(d.TotalAmount) {
		return fieldError("remainingAmount", ErrDebtRemainingExceedsTotal)
	}

	if d.StartDate.IsZero() {
		return fieldError("startDate", ErrDebtStartDateMissing)
	}

	if d.DueDate != nil && d.DueDate.Before(d.StartDate) {
		return fieldError("dueDate", ErrDebtDueBeforeStart)
	}

	return nil
}

// Paid returns the amount that has already been paid back.
func (d Debt) Paid() decimal.Decimal {
	return d.TotalAmount.Sub(d.RemainingAmount)
}
