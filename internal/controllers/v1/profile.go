package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterProfileRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsProfile)
		r.GET("", GetProfile)
		r.PATCH("", UpdateProfile)
	}
	{
		r.OPTIONS("/adjustments", OptionsProfileAdjustments)
		r.POST("/adjustments", CreateProfileAdjustment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profile
// @Success		204
// @Router			/v1/profile [options]
func OptionsProfile(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profile
// @Success		204
// @Router			/v1/profile/adjustments [options]
func OptionsProfileAdjustments(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get profile
// @Description	Returns the profile of the user with all balances. The profile is created on first access.
// @Tags			Profile
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		500	{object}	ProfileResponse
// @Router			/v1/profile [get]
func GetProfile(c *gin.Context) {
	profile, err := models.ProfileFor(models.DB, userID(c))
	if err != nil {
		c.JSON(status(err), ProfileResponse{ResponseError: newResponseError(err)})
		return
	}

	apiResource := newProfile(c, profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &apiResource})
}

// @Summary		Update profile
// @Description	Updates the name and the schema of the profile. Balances are not moved when the schema changes.
// @Tags			Profile
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Failure		500		{object}	ProfileResponse
// @Param			profile	body		ProfileEditable	true	"Profile"
// @Router			/v1/profile [patch]
func UpdateProfile(c *gin.Context) {
	profile, err := models.ProfileFor(models.DB, userID(c))
	if err != nil {
		c.JSON(status(err), ProfileResponse{ResponseError: newResponseError(err)})
		return
	}

	data := newProfile(c, profile).ProfileEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), ProfileResponse{ResponseError: newResponseError(err)})
		return
	}

	profile, err = models.UpdateProfile(models.DB, profile.UserID, models.Profile{FullName: data.FullName, Schema: data.Schema})
	if err != nil {
		c.JSON(status(err), ProfileResponse{ResponseError: newResponseError(err)})
		return
	}

	apiResource := newProfile(c, profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &apiResource})
}

// @Summary		Adjust balance
// @Description	Adds a signed amount to one balance of the profile. The reserved balance cannot be adjusted.
// @Tags			Profile
// @Accept			json
// @Produce		json
// @Success		200			{object}	ProfileResponse
// @Failure		400			{object}	ProfileResponse
// @Failure		500			{object}	ProfileResponse
// @Param			adjustment	body		Adjustment	true	"Adjustment"
// @Router			/v1/profile/adjustments [post]
func CreateProfileAdjustment(c *gin.Context) {
	var adjustment Adjustment
	err := httputil.BindData(c, &adjustment)
	if err != nil {
		c.JSON(status(err), ProfileResponse{ResponseError: newResponseError(err)})
		return
	}

	profile, err := models.ProfileFor(models.DB, userID(c))
	if err != nil {
		c.JSON(status(err), ProfileResponse{ResponseError: newResponseError(err)})
		return
	}

	err = profile.Adjust(models.DB, adjustment.Bucket, adjustment.Amount)
	if err != nil {
		c.JSON(status(err), ProfileResponse{ResponseError: newResponseError(err)})
		return
	}

	apiResource := newProfile(c, profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &apiResource})
}
