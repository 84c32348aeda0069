package v1

import (
	"errors"
	"net/http"

	"github.com/fintrack/backend/internal/models"
)

var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
	errExportFormat        = errors.New("the export format must be 'json' or 'yaml'")
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error
	Field string `json:"field,omitempty" example:"currentAmount"`                       // The input field the error refers to, if any
}

func newHTTPError(err error) httpError {
	e := newResponseError(err)
	return httpError{
		Error: *e.Error,
		Field: e.field(),
	}
}

// ResponseError contains the error members of all responses.
type ResponseError struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Field *string `json:"field,omitempty" example:"currentAmount"`                       // The input field the error refers to, if any
}

func newResponseError(err error) ResponseError {
	s := err.Error()
	r := ResponseError{Error: &s}

	var fieldErr *models.FieldError
	if errors.As(err, &fieldErr) {
		r.Field = &fieldErr.Field
	}

	return r
}

func (r ResponseError) field() string {
	if r.Field == nil {
		return ""
	}
	return *r.Field
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// highestStatus returns the status for err if it is higher than current.
//
// Batch creations respond with the highest status of all items.
func highestStatus(err error, current int) int {
	if s := status(err); s > current {
		return s
	}
	return current
}
