package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// allocationField is the input field allocation errors are reported on.
const allocationField = "currentAmount"

// Allocated returns copies of the profile and the goal with amount moved
// from the source bucket into the goal.
//
// For SchemaReserved, the amount is also credited to the reserved bucket.
// If any check fails, the unchanged profile and goal are returned together
// with a *FieldError.
func (p Profile) Allocated(goal Goal, amount decimal.Decimal, source Bucket) (Profile, Goal, error) {
	amount = RoundMoney(amount)

	if !amount.IsPositive() {
		return p, goal, fieldError(allocationField, ErrAllocationAmountNotPositive)
	}

	if !p.Schema.AllowsSource(source) {
		return p, goal, fieldError(allocationField, fmt.Errorf("%w: '%s'", ErrInvalidSource, source))
	}

	if goal.CurrentAmount.Add(amount).GreaterThan(goal.TargetAmount) {
		return p, goal, fieldError(allocationField, ErrTargetExceeded)
	}

	available := p.bucket(source)
	if available.LessThan(amount) {
		return p, goal, fieldError(allocationField, fmt.Errorf("%w: %s balance is %s", ErrInsufficientFunds, source, available.StringFixed(moneyPlaces)))
	}

	*available = available.Sub(amount)
	if p.Schema.ReservesAllocations() {
		p.ReservedBalance = p.ReservedBalance.Add(amount)
	}
	goal.CurrentAmount = goal.CurrentAmount.Add(amount)

	return p, goal, nil
}

// Allocate moves amount from the source bucket of the profile into the goal
// and saves both.
//
// Both records are saved on tx, the caller is responsible for running this
// in a transaction. profile and goal are only updated when all checks and
// writes succeeded.
func Allocate(tx *gorm.DB, profile *Profile, goal *Goal, amount decimal.Decimal, source Bucket) error {
	p, g, err := profile.Allocated(*goal, amount, source)
	if err != nil {
		return err
	}

	err = tx.Save(&p).Error
	if err != nil {
		return err
	}

	err = tx.Save(&g).Error
	if err != nil {
		return err
	}

	*profile = p
	*goal = g
	return nil
}

// AllocateDelta sets the current amount of a goal to funded.
//
// Only an increase is allocated from the source bucket. A decrease is saved
// as is and does not return any funds to the profile.
func AllocateDelta(tx *gorm.DB, profile *Profile, goal *Goal, funded decimal.Decimal, source Bucket) error {
	delta := RoundMoney(funded).Sub(goal.CurrentAmount)
	if delta.IsPositive() {
		return Allocate(tx, profile, goal, delta, source)
	}

	g := *goal
	g.CurrentAmount = funded

	err := tx.Save(&g).Error
	if err != nil {
		return err
	}

	*goal = g
	return nil
}

// UpdateGoal saves update over the stored goal with the same ID and user
// and sets its current amount to funded, allocating an increase from source.
//
// The stored goal and the profile are read in the same transaction as the
// writes, the increase is computed against the committed current amount.
// A nil funded keeps the stored current amount. An empty source uses the
// default source of the profile's schema.
func UpdateGoal(db *gorm.DB, update Goal, funded *decimal.Decimal, source Bucket) (Goal, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var stored Goal
		err := tx.Scopes(OwnedBy(update.UserID)).First(&stored, "id = ?", update.ID).Error
		if err != nil {
			return err
		}

		profile, err := ProfileFor(tx, stored.UserID)
		if err != nil {
			return err
		}

		if source == "" {
			source = profile.Schema.DefaultSource()
		}

		target := stored.CurrentAmount
		if funded != nil {
			target = *funded
		}

		update.DefaultModel = stored.DefaultModel
		update.UserID = stored.UserID
		update.CurrentAmount = stored.CurrentAmount

		return AllocateDelta(tx, &profile, &update, target, source)
	})
	if err != nil {
		return Goal{}, err
	}

	return update, nil
}
