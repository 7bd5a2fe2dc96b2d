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

// otpTTL is how long a passcode stays usable after it was sent
const otpTTL = time.Minute * 10

type sendOTPBody struct {
	Email string `json:"email"`
}

func SendOTP(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data sendOTPBody
	if err := c.ShouldBind(&data); err != nil || data.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Email is required",
			"requestID": requestID,
		})
		return
	}

	_, found, err := lookupUser(d.DB, data.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "User not found",
			"requestID": requestID,
		})
		return
	}

	code, err := security.GenerateOTP()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate passcode", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Replace any earlier codes in one transaction so two concurrent
	// sends can't leave zero or two live rows behind
	err = d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", data.Email).Delete(model.OneTimePasscode{}).Error; err != nil {
			return err
		}

		return tx.Create(&model.OneTimePasscode{
			Email:     data.Email,
			Code:      code,
			ExpiresAt: time.Now().Add(otpTTL),
		}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to store passcode", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := d.Mailer.SendOTP(data.Email, code); err != nil {
		if d.MailOnFailure == "log_and_continue" {
			zap.L().Warn("Passcode email delivery failed, continuing anyway",
				zap.Error(err),
				zap.String("email", data.Email),
				zap.String("code", code),
				zap.String("requestID", requestID))
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Failed to send OTP",
				"requestID": requestID,
			})

			zap.L().Error("Failed to send passcode email", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "OTP sent successfully",
		"requestID": requestID,
	})
}
