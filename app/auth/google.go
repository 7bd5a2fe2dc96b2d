package auth

import (
	"errors"
	"net/http"

	"notesapp/notes-api/internal"
	"notesapp/notes-api/internal/model"
	"notesapp/notes-api/internal/service"
	"notesapp/notes-api/pkg/security"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

type googleBody struct {
	Credential string `json:"credential"`
}

// GoogleLogin verifies a Google ID token and resolves it to a local
// account: a fresh identity creates a user, a known google_id logs in,
// and an email collision with a password account follows the
// configured link policy.
func GoogleLogin(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data googleBody
	if err := c.ShouldBind(&data); err != nil || data.Credential == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Google credential is required",
			"requestID": requestID,
		})
		return
	}

	claims, err := d.Google.Verify(c.Request.Context(), data.Credential)
	if err != nil {
		if errors.Is(err, service.ErrMissingClaims) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Invalid Google credential",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Google authentication failed",
			"requestID": requestID,
		})

		zap.L().Error("Failed to verify Google token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var user model.User

	r := d.DB.
		Where("email = ? OR google_id = ?", claims.Email, claims.Sub).
		Limit(1).
		Find(&user)
	if r.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch user", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if r.RowsAffected == 0 {
		// First Google login, provision a verified account with no
		// password credential
		userID, err := gonanoid.New(16)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to generate user ID", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		user = model.User{
			ID:            userID,
			Email:         claims.Email,
			Name:          claims.Name,
			GoogleID:      &claims.Sub,
			EmailVerified: true,
		}

		if err := d.DB.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to create user", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	} else if user.GoogleID == nil {
		if d.GoogleLinkPolicy == "reject-on-conflict" {
			c.JSON(http.StatusConflict, gin.H{
				"error":     "An account with this email already exists. Please log in with your password",
				"requestID": requestID,
			})
			return
		}

		err := d.DB.Model(&user).
			Updates(map[string]any{
				"google_id":      claims.Sub,
				"email_verified": true,
			}).
			Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to link Google identity", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		user.GoogleID = &claims.Sub
		user.EmailVerified = true
	}

	token, err := security.IssueSession(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to issue session token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Google login successful",
		"token":   token,
		"user":    userSummary(&user),
	})
}
