package models

import (
	"sort"
	"time"

	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	dashboardRecentTransactions = 8
	dashboardGoals              = 4
)

// MonthAmount is a sum of transactions in one month.
type MonthAmount struct {
	Month  types.Month     `json:"month" example:"2024-03"` // The month
	Amount decimal.Decimal `json:"amount" example:"812.4"`  // Sum of the transactions
}

// Dashboard is the overview of the finances of a user.
type Dashboard struct {
	Profile            Profile
	Balance            decimal.Decimal
	RealBalance        decimal.Decimal
	Income             decimal.Decimal
	Expense            decimal.Decimal
	Saved              decimal.Decimal
	Allocated          decimal.Decimal
	TodayCount         int64
	MonthlyExpense     decimal.Decimal
	MonthlyBudget      decimal.Decimal
	BudgetLeft         decimal.Decimal
	CategoryExpenses   []CategoryAmount
	MonthlyExpenses    []MonthAmount
	MonthlyIncome      []MonthAmount
	RecentTransactions []Transaction
	Goals              []Goal
	Debts              []Debt
}

// DashboardFor computes the dashboard of a user as of today.
//
// The sections are independent of each other and are loaded concurrently.
func DashboardFor(db *gorm.DB, userID string, today time.Time) (Dashboard, error) {
	var d Dashboard

	profile, err := ProfileFor(db, userID)
	if err != nil {
		return Dashboard{}, err
	}
	d.Profile = profile
	d.Balance = profile.Balance()

	day := types.DateOf(today)
	month := day.Month()

	transactions := func() *gorm.DB {
		return db.Model(&Transaction{}).Scopes(OwnedBy(userID))
	}

	var g errgroup.Group

	g.Go(func() (err error) {
		d.Income, err = sum(transactions().Where(&Transaction{TransactionType: TransactionTypeIncome}), "amount")
		return
	})

	g.Go(func() (err error) {
		d.Expense, err = sum(transactions().Where(&Transaction{TransactionType: TransactionTypeExpense}), "amount")
		return
	})

	g.Go(func() error {
		return transactions().Where("date = ?", day).Count(&d.TodayCount).Error
	})

	g.Go(func() (err error) {
		d.MonthlyExpense, err = sum(transactions().
			Where(&Transaction{TransactionType: TransactionTypeExpense}).
			Where("date BETWEEN ? AND ?", month.FirstDay(), month.LastDay()), "amount")
		return
	})

	g.Go(func() (err error) {
		d.MonthlyBudget, err = sum(db.Model(&Budget{}).Scopes(OwnedBy(userID)).Where("month = ?", month), "monthly_limit")
		return
	})

	g.Go(func() (err error) {
		d.Allocated, err = sum(db.Model(&Goal{}).Scopes(OwnedBy(userID)), "current_amount")
		return
	})

	g.Go(func() (err error) {
		d.CategoryExpenses, err = categoryExpenses(transactions())
		return
	})

	g.Go(func() (err error) {
		d.MonthlyIncome, d.MonthlyExpenses, err = monthlySeries(transactions())
		return
	})

	g.Go(func() error {
		return db.Scopes(OwnedBy(userID)).
			Order("date DESC, created_at DESC").
			Limit(dashboardRecentTransactions).
			Find(&d.RecentTransactions).Error
	})

	g.Go(func() error {
		return db.Scopes(OwnedBy(userID)).
			Order("created_at DESC").
			Limit(dashboardGoals).
			Find(&d.Goals).Error
	})

	g.Go(func() error {
		return db.Scopes(OwnedBy(userID)).
			Order("start_date DESC").
			Find(&d.Debts).Error
	})

	err = g.Wait()
	if err != nil {
		return Dashboard{}, err
	}

	d.Saved = d.Income.Sub(d.Expense)
	d.BudgetLeft = d.MonthlyBudget.Sub(d.MonthlyExpense)
	d.RealBalance = d.realBalance()

	return d, nil
}

// realBalance is the balance after all expenses and open debts.
//
// Money lent is still owned by the user and added, money borrowed is
// subtracted. Reserved funds are not available and are left out. They
// stay reserved when a goal is deleted or its current amount is lowered.
func (d Dashboard) realBalance() decimal.Decimal {
	balance := d.Profile.Spendable().Sub(d.Expense)

	for _, debt := range d.Debts {
		switch debt.DebtType {
		case DebtTypeBorrowed:
			balance = balance.Sub(debt.RemainingAmount)
		case DebtTypeLent:
			balance = balance.Add(debt.RemainingAmount)
		}
	}

	return RoundMoney(balance)
}

// monthlySeries returns the income and expense sums per month for all
// transactions matched by q, ordered by month.
func monthlySeries(q *gorm.DB) (income, expense []MonthAmount, err error) {
	var transactions []Transaction
	err = q.Select("date", "transaction_type", "amount").Find(&transactions).Error
	if err != nil {
		return nil, nil, err
	}

	incomeSums := make(map[types.Month]decimal.Decimal)
	expenseSums := make(map[types.Month]decimal.Decimal)

	for _, t := range transactions {
		month := t.Date.Month()

		switch t.TransactionType {
		case TransactionTypeIncome:
			incomeSums[month] = incomeSums[month].Add(t.Amount)
		case TransactionTypeExpense:
			expenseSums[month] = expenseSums[month].Add(t.Amount)
		}
	}

	return sortedSeries(incomeSums), sortedSeries(expenseSums), nil
}

func sortedSeries(sums map[types.Month]decimal.Decimal) []MonthAmount {
	series := make([]MonthAmount, 0, len(sums))
	for month, amount := range sums {
		series = append(series, MonthAmount{Month: month, Amount: RoundMoney(amount)})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Month.Before(series[j].Month)
	})

	return series
}
