package models

import (
	"strings"

	"gorm.io/gorm"
)

// TransactionType is the direction of money flow. It is used for
// both transactions and the categories they are filed under.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

func (t TransactionType) DisplayName() string {
	return displayName(string(t), nil)
}

// Category groups transactions and budgets.
//
// The name is unique per user and category type, so "Gifts" can exist
// once as income and once as expense category.
type Category struct {
	DefaultModel
	UserID       string          `gorm:"uniqueIndex:category_user_name_type"`
	Name         string          `gorm:"uniqueIndex:category_user_name_type"`
	CategoryType TransactionType `gorm:"uniqueIndex:category_user_name_type"`
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	if c.Name == "" {
		return fieldError("name", ErrCategoryNameEmpty)
	}

	if !c.CategoryType.Valid() {
		return fieldError("categoryType", ErrCategoryTypeInvalid)
	}

	return nil
}

// DisplayName is the name of the category together with its type.
func (c Category) DisplayName() string {
	return c.Name + " (" + c.CategoryType.DisplayName() + ")"
}
