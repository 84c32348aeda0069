package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Allocation errors. These are expected, user-correctable input errors.
var (
	ErrInsufficientFunds           = errors.New("there are not enough funds in the selected balance")
	ErrInvalidSource               = errors.New("the selected source balance is not valid for this profile")
	ErrTargetExceeded              = errors.New("the current amount cannot exceed the target amount")
	ErrAllocationAmountNotPositive = errors.New("the amount to allocate must be larger than zero")
)

var (
	ErrProfileSchemaInvalid      = errors.New("the profile schema must be one of 'split', 'single' or 'reserved'")
	ErrBucketNegative            = errors.New("a balance cannot be negative")
	ErrAdjustmentZero            = errors.New("the adjustment amount must not be zero")
	ErrAmountNotPositive         = errors.New("the amount must be at least 0.01")
	ErrCategoryNameNotUnique     = errors.New("the category name must be unique per category type")
	ErrCategoryTypeInvalid       = errors.New("the category type must be 'income' or 'expense'")
	ErrCategoryNameEmpty         = errors.New("the category name must not be empty")
	ErrTransactionTypeInvalid    = errors.New("the transaction type must be 'income' or 'expense'")
	ErrPaymentSourceInvalid      = errors.New("the payment source must be one of 'cash', 'card' or 'wallet'")
	ErrTransactionDateMissing    = errors.New("the transaction date must be set")
	ErrBudgetMonthNotUnique      = errors.New("there is already a budget for this category and month")
	ErrBudgetMonthMissing        = errors.New("the budget month must be set")
	ErrDebtTitleNotUnique        = errors.New("the debt title must be unique")
	ErrDebtTitleEmpty            = errors.New("the debt title must not be empty")
	ErrDebtTypeInvalid           = errors.New("the debt type must be 'lent' or 'borrowed'")
	ErrDebtRemainingNegative     = errors.New("the remaining amount cannot be negative")
	ErrDebtRemainingExceedsTotal = errors.New("the remaining amount cannot exceed the total amount")
	ErrDebtDueBeforeStart        = errors.New("the due date cannot be before the start date")
	ErrDebtStartDateMissing      = errors.New("the start date must be set")
	ErrGoalTitleNotUnique        = errors.New("the goal title must be unique")
	ErrGoalTitleEmpty            = errors.New("the goal title must not be empty")
	ErrGoalTypeInvalid           = errors.New("the goal type must be one of 'savings', 'debt_clear' or 'purchase'")
	ErrGoalTargetNotPositive     = errors.New("the target amount must be larger than zero")
	ErrGoalCurrentNegative       = errors.New("the current amount cannot be negative")
	ErrCategoryRuleMatchEmpty    = errors.New("the match pattern must not be empty")
	ErrReportTypeInvalid         = errors.New("the report type must be one of 'monthly', 'yearly', 'category' or 'debt'")
	ErrReportRangeInvalid        = errors.New("the end date cannot be before the start date")
	ErrReportDatesMissing        = errors.New("start and end date must be set")
)

// FieldError is a validation error for a single input field.
//
// It is reported back to the user together with the name of the field
// so that the input can be corrected.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}
