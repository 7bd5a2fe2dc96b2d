// Package model contains the gorm models persisted by the application
package model

import "time"

type User struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Email         string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  *string   `json:"-"`
	Name          string    `gorm:"not null" json:"name"`
	GoogleID      *string   `gorm:"uniqueIndex" json:"googleId,omitempty"`
	EmailVerified bool      `gorm:"default:false" json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Notes []Note `gorm:"foreignKey:UserID" json:"-"`
}

// HasPassword reports whether the account can be used with the password
// login path. Google-only accounts have no hash at all.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}
