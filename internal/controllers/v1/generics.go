package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type resource interface {
	models.Category | models.Transaction | models.Budget | models.Debt | models.Goal | models.CategoryRule | models.Report
}

// getResource loads the resource with the ID from the URI. Resources of other
// users are reported as not existing.
func getResource[R resource](c *gin.Context, db *gorm.DB) (R, error) {
	var r R

	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return r, err
	}

	err = db.Scopes(models.OwnedBy(userID(c))).First(&r, "id = ?", uri.ID.UUID).Error
	return r, err
}

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R resource](c *gin.Context) {
	_, err := getResource[R](c, models.DB)
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// deleteResource deletes the resource with the ID from the URI.
func deleteResource[R resource](c *gin.Context) {
	r, err := getResource[R](c, models.DB)
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	err = models.DB.Delete(&r).Error
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// paginate applies offset and limit to a query. The limit defaults to 50.
func paginate(q *gorm.DB, setFields []string, offset uint, limit int) (*gorm.DB, int) {
	if !slices.Contains(setFields, "Limit") {
		limit = 50
	}

	return q.Offset(int(offset)).Limit(limit), limit
}

// count returns the total number of resources matched by q, ignoring pagination.
func count(q *gorm.DB) (int64, error) {
	var total int64
	err := q.Limit(-1).Offset(-1).Count(&total).Error
	return total, err
}
