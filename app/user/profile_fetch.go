// Package user contains the profile endpoints
package user

import (
	"net/http"

	"notesapp/notes-api/internal"
	"notesapp/notes-api/internal/model"

	"github.com/gin-gonic/gin"
)

func ProfileFetch(c *gin.Context, d *internal.Deps) {
	// The auth middleware already resolved the full record
	u := c.MustGet("user").(model.User)

	c.JSON(http.StatusOK, profileView(&u))
}

func profileView(u *model.User) gin.H {
	return gin.H{
		"id":            u.ID,
		"email":         u.Email,
		"name":          u.Name,
		"googleId":      u.GoogleID,
		"emailVerified": u.EmailVerified,
		"createdAt":     u.CreatedAt,
		"updatedAt":     u.UpdatedAt,
	}
}
