package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultSchema is the schema of profiles that are created on first access.
var DefaultSchema = SchemaReserved

// Profile holds the balance buckets of a single user.
//
// Buckets are never set directly. They change through allocations to goals
// and through explicit adjustments.
type Profile struct {
	DefaultModel
	UserID          string          `gorm:"uniqueIndex"`
	FullName        string
	Schema          Schema
	TotalBalance    decimal.Decimal `gorm:"type:DECIMAL(12,2)"` // Also holds the single balance of SchemaSingle
	CardBalance     decimal.Decimal `gorm:"type:DECIMAL(12,2)"`
	EWalletBalance  decimal.Decimal `gorm:"type:DECIMAL(12,2)"`
	ReservedBalance decimal.Decimal `gorm:"type:DECIMAL(12,2)"`
}

// ProfileFor returns the profile of a user, creating it if it does not exist yet.
func ProfileFor(db *gorm.DB, userID string) (Profile, error) {
	var profile Profile
	err := db.Where(&Profile{UserID: userID}).First(&profile).Error
	if err == nil {
		return profile, nil
	}

	if !errors.Is(err, ErrResourceNotFound) {
		return Profile{}, err
	}

	profile = Profile{
		UserID: userID,
		Schema: DefaultSchema,
	}

	err = db.Create(&profile).Error
	if err != nil {
		return Profile{}, err
	}

	return profile, nil
}

func (p *Profile) BeforeSave(_ *gorm.DB) error {
	p.FullName = strings.TrimSpace(p.FullName)

	if !p.Schema.Valid() {
		return fieldError("schema", ErrProfileSchemaInvalid)
	}

	for _, b := range []Bucket{BucketTotal, BucketCard, BucketEWallet, BucketReserved} {
		amount := p.bucket(b)
		*amount = RoundMoney(*amount)

		if amount.IsNegative() {
			return fieldError(string(b), ErrBucketNegative)
		}
	}

	return nil
}

// bucket returns a pointer to the amount stored for b, nil for unknown buckets.
func (p *Profile) bucket(b Bucket) *decimal.Decimal {
	switch b {
	case BucketTotal, BucketBalance:
		return &p.TotalBalance
	case BucketCard:
		return &p.CardBalance
	case BucketEWallet:
		return &p.EWalletBalance
	case BucketReserved:
		return &p.ReservedBalance
	}
	return nil
}

// Amount returns the amount in a bucket.
func (p Profile) Amount(b Bucket) (decimal.Decimal, error) {
	amount := p.bucket(b)
	if amount == nil {
		return decimal.Zero, ErrInvalidSource
	}
	return *amount, nil
}

// Balance is the sum of all buckets, including reserved funds.
func (p Profile) Balance() decimal.Decimal {
	return p.TotalBalance.Add(p.CardBalance).Add(p.EWalletBalance).Add(p.ReservedBalance)
}

// Spendable is the balance that is not reserved for goals.
func (p Profile) Spendable() decimal.Decimal {
	return p.Balance().Sub(p.ReservedBalance)
}

// Adjusted returns a copy of the profile with amount added to a bucket.
//
// Negative amounts withdraw from the bucket. Only allocation sources can be
// adjusted, the reserved bucket changes through allocations only.
func (p Profile) Adjusted(b Bucket, amount decimal.Decimal) (Profile, error) {
	amount = RoundMoney(amount)

	if !p.Schema.AllowsSource(b) {
		return p, fieldError("bucket", fmt.Errorf("%w: '%s'", ErrInvalidSource, b))
	}

	if amount.IsZero() {
		return p, fieldError("amount", ErrAdjustmentZero)
	}

	current := p.bucket(b)
	if current.Add(amount).IsNegative() {
		return p, fieldError("amount", fmt.Errorf("%w: %s balance is %s", ErrInsufficientFunds, b, current.StringFixed(moneyPlaces)))
	}

	*current = current.Add(amount)
	return p, nil
}

// Adjust adds amount to a bucket and saves the profile.
//
// The profile is read again in the transaction of the write, so the
// adjustment applies to the committed balances and p is updated with them.
func (p *Profile) Adjust(db *gorm.DB, b Bucket, amount decimal.Decimal) error {
	var adjusted Profile
	err := db.Transaction(func(tx *gorm.DB) error {
		var stored Profile
		err := tx.First(&stored, "id = ?", p.ID).Error
		if err != nil {
			return err
		}

		adjusted, err = stored.Adjusted(b, amount)
		if err != nil {
			return err
		}

		return tx.Save(&adjusted).Error
	})
	if err != nil {
		return err
	}

	*p = adjusted
	return nil
}

// UpdateProfile sets the name and the schema of the profile of a user.
//
// Only these columns are taken from update, the balances are read in the
// transaction of the write and are never overwritten.
func UpdateProfile(db *gorm.DB, userID string, update Profile) (Profile, error) {
	var profile Profile
	err := db.Transaction(func(tx *gorm.DB) (err error) {
		profile, err = ProfileFor(tx, userID)
		if err != nil {
			return err
		}

		profile.FullName = update.FullName
		profile.Schema = update.Schema

		return tx.Save(&profile).Error
	})
	if err != nil {
		return Profile{}, err
	}

	return profile, nil
}
