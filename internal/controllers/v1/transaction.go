package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransactions)
	}
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PATCH("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	resourceOptionsDetail[models.Transaction](c)
}

// @Summary		Create transactions
// @Description	Creates transactions. Transactions without a category are categorized by the first matching category rule.
// @Tags			Transactions
// @Produce		json
// @Success		201				{object}	TransactionCreateResponse
// @Failure		400				{object}	TransactionCreateResponse
// @Failure		404				{object}	TransactionCreateResponse
// @Failure		500				{object}	TransactionCreateResponse
// @Param			transactions	body		[]TransactionEditable	true	"Transactions"
// @Router			/v1/transactions [post]
func CreateTransactions(c *gin.Context) {
	var transactions []TransactionEditable

	err := httputil.BindData(c, &transactions)
	if err != nil {
		c.JSON(status(err), TransactionCreateResponse{ResponseError: newResponseError(err)})
		return
	}

	s := http.StatusCreated
	r := TransactionCreateResponse{}

	for _, create := range transactions {
		transaction := create.model(userID(c))

		err = models.DB.Create(&transaction).Error
		if err != nil {
			s = highestStatus(err, s)
			r.Data = append(r.Data, TransactionResponse{ResponseError: newResponseError(err)})
			continue
		}

		apiResource := newTransaction(c, transaction)
		r.Data = append(r.Data, TransactionResponse{Data: &apiResource})
	}

	c.JSON(s, r)
}

// @Summary		Get transactions
// @Description	Returns a list of transactions, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200					{object}	TransactionListResponse
// @Failure		400					{object}	TransactionListResponse
// @Failure		500					{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			category			query	string	false	"Filter by category ID"
// @Param			transactionType		query	string	false	"Filter by type"
// @Param			paymentSource		query	string	false	"Filter by payment source"
// @Param			fromDate			query	string	false	"Transactions on and after this day"
// @Param			untilDate			query	string	false	"Transactions on and before this day"
// @Param			amountLessOrEqual	query	string	false	"Amount less than or equal to this"
// @Param			amountMoreOrEqual	query	string	false	"Amount more than or equal to this"
// @Param			note				query	string	false	"Filter by note"
// @Param			search				query	string	false	"Search for this text in the note"
// @Param			offset				query	uint	false	"The offset of the first transaction returned. Defaults to 0."
// @Param			limit				query	int		false	"Maximum number of transactions to return. Defaults to 50."
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, TransactionListResponse{ResponseError: newResponseError(err)})
		return
	}

	from, until, err := filter.dateRange()
	if err != nil {
		c.JSON(http.StatusBadRequest, TransactionListResponse{ResponseError: newResponseError(err)})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model(userID(c))
	q := models.DB.
		Order("date DESC, created_at DESC").
		Where(&where, append([]any{"UserID"}, queryFields...)...)

	if !from.IsZero() {
		q = q.Where("date >= ?", from)
	}

	if !until.IsZero() {
		q = q.Where("date <= ?", until)
	}

	if !filter.AmountLessOrEqual.IsZero() {
		q = q.Where("amount <= ?", filter.AmountLessOrEqual)
	}

	if !filter.AmountMoreOrEqual.IsZero() {
		q = q.Where("amount >= ?", filter.AmountMoreOrEqual)
	}

	q = stringFilter(q, setFields, "Note", "note", filter.Note)
	q = searchFilter(models.DB, q, filter.Search, "note")
	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var transactions []models.Transaction
	err = q.Find(&transactions).Error
	if err != nil {
		c.JSON(status(err), TransactionListResponse{ResponseError: newResponseError(err)})
		return
	}

	total, err := count(q)
	if err != nil {
		c.JSON(status(err), TransactionListResponse{ResponseError: newResponseError(err)})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	transaction, err := getResource[models.Transaction](c, models.DB)
	if err != nil {
		c.JSON(status(err), TransactionResponse{ResponseError: newResponseError(err)})
		return
	}

	apiResource := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &apiResource})
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func UpdateTransaction(c *gin.Context) {
	transaction, err := getResource[models.Transaction](c, models.DB)
	if err != nil {
		c.JSON(status(err), TransactionResponse{ResponseError: newResponseError(err)})
		return
	}

	data := newTransaction(c, transaction).TransactionEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), TransactionResponse{ResponseError: newResponseError(err)})
		return
	}

	update := data.model(transaction.UserID)
	update.DefaultModel = transaction.DefaultModel

	err = models.DB.Save(&update).Error
	if err != nil {
		c.JSON(status(err), TransactionResponse{ResponseError: newResponseError(err)})
		return
	}

	apiResource := newTransaction(c, update)
	c.JSON(http.StatusOK, TransactionResponse{Data: &apiResource})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	deleteResource[models.Transaction](c)
}
