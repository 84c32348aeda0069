package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// stringFilter filters a text column by substring.
//
// A parameter that is set, but empty, matches resources where the
// column is empty.
func stringFilter(query *gorm.DB, setFields []string, field, column, value string) *gorm.DB {
	if value != "" {
		return query.Where(fmt.Sprintf("%s LIKE ?", column), fmt.Sprintf("%%%s%%", value))
	}

	if slices.Contains(setFields, field) {
		return query.Where(fmt.Sprintf("%s = ''", column))
	}

	return query
}

// searchFilter matches resources containing search in any of the columns.
func searchFilter(db, query *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" || len(columns) == 0 {
		return query
	}

	pattern := fmt.Sprintf("%%%s%%", search)
	condition := db.Where(fmt.Sprintf("%s LIKE ?", columns[0]), pattern)
	for _, column := range columns[1:] {
		condition = condition.Or(fmt.Sprintf("%s LIKE ?", column), pattern)
	}

	return query.Where(condition)
}
