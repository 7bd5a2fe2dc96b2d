package notes

import (
	"net/http"
	"strings"

	"notesapp/notes-api/internal"
	"notesapp/notes-api/internal/model"
	"notesapp/notes-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type updateBody struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// NoteUpdate applies a partial update, either field may be omitted but
// not both
func NoteUpdate(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data updateBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if data.Title == nil && data.Content == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Title or content is required",
			"requestID": requestID,
		})
		return
	}

	updates := map[string]any{}

	if data.Title != nil {
		if err := validators.NoteTitleValidator(*data.Title); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}

		updates["title"] = strings.TrimSpace(*data.Title)
	}

	if data.Content != nil {
		updates["content"] = strings.TrimSpace(*data.Content)
	}

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
			"error":     "Failed to update note",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch note", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := d.DB.Model(&note).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to update note",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update note", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, note)
}
