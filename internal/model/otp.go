package model

import "time"

// OneTimePasscode is a short-lived email verification code. At most one
// live row exists per email, older rows are replaced on every send.
type OneTimePasscode struct {
	ID        int       `gorm:"primaryKey;autoIncrement"`
	Email     string    `gorm:"index;not null"`
	Code      string    `gorm:"not null"`
	ExpiresAt time.Time
	CreatedAt time.Time
}
