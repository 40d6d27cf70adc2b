package models

import (
	"time"

	"gorm.io/gorm"
)

// Blacklisted refresh token. Rows past ExpiresAt are harmless leftovers;
// the token they name can no longer validate anyway.
type RevokedToken struct {
	gorm.Model
	JTI       string `gorm:"type:varchar(64);uniqueIndex;not null"`
	UserID    uint   `gorm:"index"`
	ExpiresAt time.Time
}
