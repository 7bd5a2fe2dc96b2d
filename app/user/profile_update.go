package user

import (
	"net/http"
	"strings"

	"notesapp/notes-api/internal"
	"notesapp/notes-api/internal/model"
	"notesapp/notes-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type profileBody struct {
	Name string `json:"name"`
}

// ProfileUpdate changes the display name. Email is immutable in this
// design, changing it would invalidate the verification state.
func ProfileUpdate(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	u := c.MustGet("user").(model.User)

	var data profileBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.NameValidator(data.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	name := strings.TrimSpace(data.Name)

	if err := d.DB.Model(&u).Update("name", name).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to update user profile",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update profile", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	u.Name = name

	c.JSON(http.StatusOK, profileView(&u))
}
