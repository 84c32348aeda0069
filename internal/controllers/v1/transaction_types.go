package v1

import (
	"fmt"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	ez_uuid "github.com/fintrack/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	CategoryID      *uuid.UUID             `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`                       // ID of the category. When not set, category rules are applied to the note.
	TransactionType models.TransactionType `json:"transactionType" example:"expense"`                                               // 'income' or 'expense'
	PaymentSource   models.PaymentSource   `json:"paymentSource" example:"card" default:"cash"`                                     // 'cash', 'card' or 'wallet'
	Amount          decimal.Decimal        `json:"amount" example:"14.03" minimum:"0.01" maximum:"9999999999.99" multipleOf:"0.01"` // The amount
	Date            types.Date             `json:"date" example:"2024-05-03"`                                                       // Day of the transaction
	Note            string                 `json:"note" example:"Farmers market" default:""`                                        // A note
}

func (editable TransactionEditable) model(userID string) models.Transaction {
	paymentSource := editable.PaymentSource
	if paymentSource == "" {
		paymentSource = models.PaymentSourceCash
	}

	return models.Transaction{
		UserID:          userID,
		CategoryID:      editable.CategoryID,
		TransactionType: editable.TransactionType,
		PaymentSource:   paymentSource,
		Amount:          editable.Amount,
		Date:            editable.Date,
		Note:            editable.Note,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			CategoryID:      model.CategoryID,
			TransactionType: model.TransactionType,
			PaymentSource:   model.PaymentSource,
			Amount:          model.Amount,
			Date:            model.Date,
			Note:            model.Note,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", baseURL(c), model.ID),
		},
	}
}

type TransactionListResponse struct {
	ResponseError
	Data       []Transaction `json:"data"`       // List of transactions
	Pagination *Pagination   `json:"pagination"` // Pagination information
}

type TransactionCreateResponse struct {
	ResponseError
	Data []TransactionResponse `json:"data"` // List of the created transactions or their respective error
}

type TransactionResponse struct {
	ResponseError
	Data *Transaction `json:"data"` // Data for the transaction
}

type TransactionQueryFilter struct {
	CategoryID        ez_uuid.UUID           `form:"category"`                              // By ID of the category. Empty for transactions without category.
	TransactionType   models.TransactionType `form:"transactionType"`                       // By type
	PaymentSource     models.PaymentSource   `form:"paymentSource"`                         // By payment source
	FromDate          string                 `form:"fromDate" filterField:"false"`          // Transactions on and after this day
	UntilDate         string                 `form:"untilDate" filterField:"false"`         // Transactions on and before this day
	AmountLessOrEqual decimal.Decimal        `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal        `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Note              string                 `form:"note" filterField:"false"`              // By note
	Search            string                 `form:"search" filterField:"false"`            // By string in the note
	Offset            uint                   `form:"offset" filterField:"false"`            // The offset of the first transaction returned. Defaults to 0.
	Limit             int                    `form:"limit" filterField:"false"`             // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model(userID string) models.Transaction {
	return models.Transaction{
		UserID:          userID,
		CategoryID:      f.CategoryID.Pointer(),
		TransactionType: f.TransactionType,
		PaymentSource:   f.PaymentSource,
	}
}

// dateRange parses the optional date range of the filter.
func (f TransactionQueryFilter) dateRange() (from, until types.Date, err error) {
	if f.FromDate != "" {
		from, err = types.ParseDate(f.FromDate)
		if err != nil {
			return
		}
	}

	if f.UntilDate != "" {
		until, err = types.ParseDate(f.UntilDate)
	}

	return
}
