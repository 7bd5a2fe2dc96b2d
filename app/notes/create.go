package notes

import (
	"net/http"
	"strings"

	"notesapp/notes-api/internal"
	"notesapp/notes-api/internal/model"
	"notesapp/notes-api/validators"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

type createBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func NoteCreate(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data createBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.NoteTitleValidator(data.Title); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.NoteContentValidator(data.Content); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	noteID, err := gonanoid.New(16)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to create note",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate note ID", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	note := model.Note{
		ID:      noteID,
		Title:   strings.TrimSpace(data.Title),
		Content: strings.TrimSpace(data.Content),
		UserID:  userID,
	}

	if err := d.DB.Create(&note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to create note",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create note", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, note)
}
