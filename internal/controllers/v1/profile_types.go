package v1

import (
	"fmt"

	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProfileEditable represents all user configurable parameters
type ProfileEditable struct {
	FullName string        `json:"fullName" example:"Alex Doe" default:""` // Name of the user
	Schema   models.Schema `json:"schema" example:"reserved" default:""`   // Balance layout, one of 'split', 'single' or 'reserved'
}

type ProfileLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/profile"`                    // The profile itself
	Adjustments string `json:"adjustments" example:"https://example.com/api/v1/profile/adjustments"` // Endpoint to adjust balances
	Dashboard   string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`             // Dashboard of the user
	Goals       string `json:"goals" example:"https://example.com/api/v1/goals"`                     // Goals funded from the balances
}

type Profile struct {
	models.DefaultModel
	ProfileEditable
	TotalBalance    decimal.Decimal `json:"totalBalance" example:"1200"`   // The total balance. Holds the single balance for the 'single' schema.
	CardBalance     decimal.Decimal `json:"cardBalance" example:"300"`     // The card balance
	EWalletBalance  decimal.Decimal `json:"eWalletBalance" example:"50"`   // The e-wallet balance
	ReservedBalance decimal.Decimal `json:"reservedBalance" example:"250"` // Funds allocated to goals. Only used by the 'reserved' schema.
	Links           ProfileLinks    `json:"links"`

	// These fields are computed
	Balance   decimal.Decimal `json:"balance" example:"1800"`                // Sum of all balances
	Spendable decimal.Decimal `json:"spendable" example:"1550"`              // Balance that is not reserved
	Sources   []models.Bucket `json:"sources" example:"total,card,e_wallet"` // Balances that funds can be allocated from
}

func newProfile(c *gin.Context, model models.Profile) Profile {
	url := baseURL(c)

	return Profile{
		DefaultModel: model.DefaultModel,
		ProfileEditable: ProfileEditable{
			FullName: model.FullName,
			Schema:   model.Schema,
		},
		TotalBalance:    model.TotalBalance,
		CardBalance:     model.CardBalance,
		EWalletBalance:  model.EWalletBalance,
		ReservedBalance: model.ReservedBalance,
		Links: ProfileLinks{
			Self:        fmt.Sprintf("%s/v1/profile", url),
			Adjustments: fmt.Sprintf("%s/v1/profile/adjustments", url),
			Dashboard:   fmt.Sprintf("%s/v1/dashboard", url),
			Goals:       fmt.Sprintf("%s/v1/goals", url),
		},
		Balance:   model.Balance(),
		Spendable: model.Spendable(),
		Sources:   model.Schema.Sources(),
	}
}

type ProfileResponse struct {
	ResponseError
	Data *Profile `json:"data"` // Data for the profile
}

// Adjustment adds an amount to one balance of the profile.
type Adjustment struct {
	Bucket models.Bucket   `json:"bucket" example:"card"`  // The balance to adjust. Must be a valid allocation source for the schema.
	Amount decimal.Decimal `json:"amount" example:"-25.5"` // The amount to add. Negative amounts withdraw.
}
