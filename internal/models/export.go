package models

import (
	"gorm.io/gorm"
)

// Export contains all resources of a user.
type Export struct {
	Profile       Profile
	Categories    []Category
	Transactions  []Transaction
	Budgets       []Budget
	Debts         []Debt
	Goals         []Goal
	CategoryRules []CategoryRule
	Reports       []Report
}

// ExportFor loads all resources of a user.
func ExportFor(db *gorm.DB, userID string) (Export, error) {
	var e Export

	profile, err := ProfileFor(db, userID)
	if err != nil {
		return Export{}, err
	}
	e.Profile = profile

	queries := []struct {
		order string
		dest  any
	}{
		{"category_type ASC, name ASC", &e.Categories},
		{"date DESC, created_at DESC", &e.Transactions},
		{"month DESC", &e.Budgets},
		{"start_date DESC", &e.Debts},
		{"created_at DESC", &e.Goals},
		{"priority ASC, created_at ASC", &e.CategoryRules},
		{"created_at DESC", &e.Reports},
	}

	for _, q := range queries {
		err := db.Scopes(OwnedBy(userID)).Order(q.order).Find(q.dest).Error
		if err != nil {
			return Export{}, err
		}
	}

	return e, nil
}
