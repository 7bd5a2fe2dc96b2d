package notes

import (
	"net/http"

	"notesapp/notes-api/internal"
	"notesapp/notes-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NoteDelete(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	r := d.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		Delete(model.Note{})
	if r.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to delete note",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete note", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if r.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Note not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Note deleted successfully",
		"requestID": requestID,
	})
}
