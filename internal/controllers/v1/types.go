package v1

import (
	"github.com/fintrack/backend/internal/models"
	ez_uuid "github.com/fintrack/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

// We use one type per Endpoint so that swagger can parse them - it cannot handle generics yet, see
// https://github.com/swaggo/swag/issues/1170

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// userID returns the ID of the user making the request.
func userID(c *gin.Context) string {
	return c.GetString(string(models.ContextUserID))
}

// baseURL returns the external URL of the API.
func baseURL(c *gin.Context) string {
	return c.GetString(string(models.ContextURL))
}
