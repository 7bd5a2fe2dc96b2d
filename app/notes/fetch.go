package notes

import (
	"net/http"

	"notesapp/notes-api/internal"
	"notesapp/notes-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NoteFetch(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var note model.Note

	err := d.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&note).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Note not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to fetch note",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch note", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, note)
}
