package models

import (
	"strings"

	"github.com/fintrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentSource string

const (
	PaymentSourceCash   PaymentSource = "cash"
	PaymentSourceCard   PaymentSource = "card"
	PaymentSourceWallet PaymentSource = "wallet"
)

func (s PaymentSource) Valid() bool {
	switch s {
	case PaymentSourceCash, PaymentSourceCard, PaymentSourceWallet:
		return true
	}
	return false
}

// Transaction is a single income or expense.
//
// Transactions are a record only, they do not change the balances
// of the profile.
type Transaction struct {
	DefaultModel
	UserID          string     `gorm:"index"`
	CategoryID      *uuid.UUID `gorm:"index"`
	Category        *Category  `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	TransactionType TransactionType
	PaymentSource   PaymentSource
	Amount          decimal.Decimal `gorm:"type:DECIMAL(12,2)"`
	Date            types.Date
	Note            string
}

// BeforeSave
//   - trims whitespace from the note
//   - rounds the amount to cents
//   - validates all fields
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)
	t.Amount = RoundMoney(t.Amount)

	// A category ID of all zeroes means no category
	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}

	if !t.TransactionType.Valid() {
		return fieldError("transactionType", ErrTransactionTypeInvalid)
	}

	if !t.PaymentSource.Valid() {
		return fieldError("paymentSource", ErrPaymentSourceInvalid)
	}

	if t.Amount.LessThan(minimumAmount) {
		return fieldError("amount", ErrAmountNotPositive)
	}

	if t.Date.IsZero() {
		return fieldError("date", ErrTransactionDateMissing)
	}

	return nil
}

// BeforeCreate verifies the category and assigns one from the
// category rules of the user if none is set.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	if t.CategoryID == nil {
		categoryID, err := MatchCategory(tx, t.UserID, t.Note)
		if err != nil {
			return err
		}
		t.CategoryID = categoryID
	}

	return checkCategory(tx, t.UserID, t.CategoryID)
}

func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	return checkCategory(tx, t.UserID, t.CategoryID)
}

// checkCategory verifies that a referenced category exists for the user.
func checkCategory(tx *gorm.DB, userID string, categoryID *uuid.UUID) error {
	if categoryID == nil {
		return nil
	}

	return tx.Scopes(OwnedBy(userID)).First(&Category{}, "id = ?", *categoryID).Error
}
