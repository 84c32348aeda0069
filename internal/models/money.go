package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// moneyPlaces is the number of fractional digits of all monetary amounts.
const moneyPlaces = 2

// RoundMoney rounds an amount to the precision money is stored in.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

// minimumAmount is the smallest positive monetary amount.
var minimumAmount = decimal.New(1, -moneyPlaces)

// sum returns the sum of column over all rows matched by q, rounded to cents.
//
// SQLite returns sums of DECIMAL columns as floating point numbers, the
// rounding removes the representation error.
func sum(q *gorm.DB, column string) (decimal.Decimal, error) {
	var total decimal.NullDecimal

	err := q.Select(fmt.Sprintf("SUM(%s)", column)).Row().Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("getting the sum of %s failed: %w", column, err)
	}

	return RoundMoney(total.Decimal), nil
}
