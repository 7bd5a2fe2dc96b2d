package service

import (
	"time"

	"notesapp/notes-api/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OTPCleanup defines a function used to periodically delete passcodes
// that expired without ever being verified
func OTPCleanup(t time.Duration, db *gorm.DB) {
	ticker := time.NewTicker(t)

	zap.L().Debug("OTP cleanup attached", zap.Duration("tick_every", t))

	go func() {
		for range ticker.C {
			err := db.
				Where("expires_at < ?", time.Now()).
				Delete(model.OneTimePasscode{}).
				Error
			if err != nil {
				zap.L().Error("Failed to cleanup expired passcodes", zap.Error(err))
			}
		}
	}()
}
