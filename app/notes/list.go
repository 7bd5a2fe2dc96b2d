// Package notes contains the note CRUD endpoints. Every handler runs
// behind the auth middleware and only ever touches rows owned by the
// authenticated user.
package notes

import (
	"net/http"

	"notesapp/notes-api/internal"
	"notesapp/notes-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NoteList(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	notes := []model.Note{}

	err := d.DB.
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&notes).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to fetch notes",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch notes", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, notes)
}
