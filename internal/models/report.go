package models

import (
	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReportType string

const (
	ReportTypeMonthly  ReportType = "monthly"
	ReportTypeYearly   ReportType = "yearly"
	ReportTypeCategory ReportType = "category"
	ReportTypeDebt     ReportType = "debt"
)

func (t ReportType) Valid() bool {
	switch t {
	case ReportTypeMonthly, ReportTypeYearly, ReportTypeCategory, ReportTypeDebt:
		return true
	}
	return false
}

func (t ReportType) DisplayName() string {
	return displayName(string(t), map[string]string{
		string(ReportTypeCategory): "Category-wise",
		string(ReportTypeDebt):     "Debt Summary",
	})
}

// Report is a summary of the finances of a user over a date range.
type Report struct {
	DefaultModel
	UserID     string `gorm:"index"`
	ReportType ReportType
	StartDate  types.Date
	EndDate    types.Date
}

func (r *Report) BeforeSave(_ *gorm.DB) error {
	if !r.ReportType.Valid() {
		return fieldError("reportType", ErrReportTypeInvalid)
	}

	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return fieldError("startDate", ErrReportDatesMissing)
	}

	if r.EndDate.Before(r.StartDate) {
		return fieldError("endDate", ErrReportRangeInvalid)
	}

	return nil
}

// MonthlyReportFor returns a monthly report covering a month.
func MonthlyReportFor(userID string, month types.Month) Report {
	return Report{
		UserID:     userID,
		ReportType: ReportTypeMonthly,
		StartDate:  month.FirstDay(),
		EndDate:    month.LastDay(),
	}
}

// CreateMonthlyReports creates the monthly report for a month for every
// profile that does not have it yet. It returns the number of created reports.
func CreateMonthlyReports(db *gorm.DB, month types.Month) (int, error) {
	var profiles []Profile
	err := db.Order("created_at ASC").Find(&profiles).Error
	if err != nil {
		return 0, err
	}

	created := 0
	for _, profile := range profiles {
		report := MonthlyReportFor(profile.UserID, month)

		var count int64
		err := db.Model(&Report{}).Where(&Report{
			UserID:     report.UserID,
			ReportType: report.ReportType,
			StartDate:  report.StartDate,
		}).Count(&count).Error
		if err != nil {
			return created, err
		}

		if count > 0 {
			continue
		}

		err = db.Create(&report).Error
		if err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}

// CategoryAmount is the sum of transactions in one category.
type CategoryAmount struct {
	Category string          `json:"category" yaml:"category" example:"Groceries"` // Name of the category, empty for transactions without a category
	Amount   decimal.Decimal `json:"amount" yaml:"amount" example:"120.5"`         // Sum of the transactions
}

// ReportSummary holds the figures computed for a report.
type ReportSummary struct {
	Income            decimal.Decimal  `json:"income" example:"2500"`           // Sum of income in the range
	Expense           decimal.Decimal  `json:"expense" example:"1800.25"`       // Sum of expenses in the range
	Saved             decimal.Decimal  `json:"saved" example:"699.75"`          // Income minus expenses
	Transactions      int64            `json:"transactions" example:"42"`       // Number of transactions in the range
	CategoryExpenses  []CategoryAmount `json:"categoryExpenses"`                // Expenses per category
	LentRemaining     decimal.Decimal  `json:"lentRemaining" example:"150"`     // Remaining amount of money lent. Zero except for debt reports.
	BorrowedRemaining decimal.Decimal  `json:"borrowedRemaining" example:"300"` // Remaining amount of money borrowed. Zero except for debt reports.
}

// Summary computes the summary of the report over its date range.
func (r Report) Summary(db *gorm.DB) (ReportSummary, error) {
	var summary ReportSummary

	transactions := func() *gorm.DB {
		return db.Model(&Transaction{}).
			Scopes(OwnedBy(r.UserID)).
			Where("date BETWEEN ? AND ?", r.StartDate, r.EndDate)
	}

	var err error
	summary.Income, err = sum(transactions().Where(&Transaction{TransactionType: TransactionTypeIncome}), "amount")
	if err != nil {
		return ReportSummary{}, err
	}

	summary.Expense, err = sum(transactions().Where(&Transaction{TransactionType: TransactionTypeExpense}), "amount")
	if err != nil {
		return ReportSummary{}, err
	}
	summary.Saved = summary.Income.Sub(summary.Expense)

	err = transactions().Count(&summary.Transactions).Error
	if err != nil {
		return ReportSummary{}, err
	}

	summary.CategoryExpenses, err = categoryExpenses(transactions())
	if err != nil {
		return ReportSummary{}, err
	}

	if r.ReportType == ReportTypeDebt {
		summary.LentRemaining, summary.BorrowedRemaining, err = debtRemaining(db, r.UserID)
		if err != nil {
			return ReportSummary{}, err
		}
	}

	return summary, nil
}

// categoryExpenses returns the expenses matched by q grouped by category name,
// ordered by name.
func categoryExpenses(q *gorm.DB) ([]CategoryAmount, error) {
	var rows []struct {
		Name  string
		Total decimal.NullDecimal
	}

	err := q.Select("COALESCE(categories.name, '') AS name, SUM(transactions.amount) AS total").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.transaction_type = ?", TransactionTypeExpense).
		Group("COALESCE(categories.name, '')").
		Order("name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	amounts := make([]CategoryAmount, 0, len(rows))
	for _, row := range rows {
		amounts = append(amounts, CategoryAmount{
			Category: row.Name,
			Amount:   RoundMoney(row.Total.Decimal),
		})
	}

	return amounts, nil
}

// debtRemaining returns the remaining amounts of all lent and borrowed debts.
func debtRemaining(db *gorm.DB, userID string) (lent, borrowed decimal.Decimal, err error) {
	lent, err = sum(db.Model(&Debt{}).Scopes(OwnedBy(userID)).Where(&Debt{DebtType: DebtTypeLent}), "remaining_amount")
	if err != nil {
		return
	}

	borrowed, err = sum(db.Model(&Debt{}).Scopes(OwnedBy(userID)).Where(&Debt{DebtType: DebtTypeBorrowed}), "remaining_amount")
	return
}
