package auth

import (
	"net/http"
	"time"

	"notesapp/notes-api/internal"
	"notesapp/notes-api/internal/model"
	"notesapp/notes-api/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type verifyOTPBody struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// VerifyOTP consumes a passcode. Wrong code, expired code and a code
// that was never requested are indistinguishable on purpose.
func VerifyOTP(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data verifyOTPBody
	if err := c.ShouldBind(&data); err != nil || data.Email == "" || data.OTP == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Email and OTP are required",
			"requestID": requestID,
		})
		return
	}

	var otp model.OneTimePasscode

	err := d.DB.
		Where("email = ? AND code = ? AND expires_at > ?", data.Email, data.OTP, time.Now()).
		First(&otp).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Invalid or expired OTP",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch passcode", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Flip the flag and burn the code together, a passcode is single use
	err = d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(model.User{}).
			Where("email = ?", data.Email).
			Update("email_verified", true).
			Error; err != nil {
			return err
		}

		return tx.Where("email = ?", data.Email).Delete(model.OneTimePasscode{}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to consume passcode", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	user, found, err := lookupUser(d.DB, data.Email)
	if err != nil || !found {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch user after verification", zap.Error(err), zap.String("requestID", requestID))
		return
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
		"message": "Email verified successfully",
		"token":   token,
		"user":    userSummary(user),
	})
}
