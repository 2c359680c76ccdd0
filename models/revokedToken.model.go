package models

import (
	"time"

	"gorm.io/gorm"
)

// RevokedToken is the logout list for issued JWTs. Tokens carry a unique jti
// claim; a row here means the token is no longer accepted, even if unexpired.
// Rows past ExpiresAt are prunable.
type RevokedToken struct {
	gorm.Model
	JTI       string    `gorm:"size:36;uniqueIndex;not null" json:"jti"`
	UserID    uint      `gorm:"index" json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
