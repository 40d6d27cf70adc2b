package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Name     string `gorm:"size:30"`
	Avatar   string

	// Accounts stay inactive until the email is verified.
	IsActive       bool `gorm:"default:false"`
	VerifyToken    string
	VerifyTokenExp time.Time
	ResetToken     string
	ResetTokenExp  time.Time

	// Tokens issued before this instant are rejected. Bumped on
	// password change to force re-login everywhere.
	SessionsValidFrom time.Time

	LastLogin time.Time
}
