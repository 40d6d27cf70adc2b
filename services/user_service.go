package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/hazalkoom/Food-Tracker/config"
	"github.com/hazalkoom/Food-Tracker/models"
	"github.com/hazalkoom/Food-Tracker/utils"

	"gorm.io/gorm"
)

const (
	verifyTokenTTL = 24 * time.Hour
	resetTokenTTL  = time.Hour
)

type RegisterInput struct {
	Email     string `json:"email" binding:"required,email"`
	Name      string `json:"name" binding:"required,min=2,max=30"`
	Password  string `json:"password" binding:"required,min=8"`
	Password2 string `json:"password2" binding:"required"`
}

// RegisterUser creates an inactive account and mails the verification
// link. A failed send surfaces to the caller; the account still exists
// and resend-verification covers recovery.
func RegisterUser(input RegisterInput) (*models.User, error) {
	if input.Password != input.Password2 {
		return nil, NewFieldError("password", "Passwords don't match.")
	}

	var existing models.User
	if err := config.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return nil, NewFieldError("email", "A user with this email already exists.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:          input.Email,
		Password:       hashed,
		Name:           input.Name,
		IsActive:       false,
		VerifyToken:    utils.GenerateRandomToken(32),
		VerifyTokenExp: time.Now().Add(verifyTokenTTL),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	if err := utils.SendVerificationEmail(user.Email, user.Name, verificationLink(&user)); err != nil {
		return nil, err
	}
	return &user, nil
}

func verificationLink(user *models.User) string {
	return fmt.Sprintf("%s/api/users/verify-email/%s/%s/",
		config.BaseURL(), utils.EncodeUID(user.ID), user.VerifyToken)
}

func resetLink(user *models.User) string {
	return fmt.Sprintf("%s/api/users/password-reset-confirm/%s/%s/",
		config.BaseURL(), utils.EncodeUID(user.ID), user.ResetToken)
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

// ErrAlreadyVerified distinguishes the harmless repeat cases in the
// verification flows.
var ErrAlreadyVerified = errors.New("email is already verified")

// genericTokenErr deliberately doesn't say whether the uid, the token, or
// the expiry was wrong.
var genericTokenErr = errors.New("Invalid or expired token.")

// VerifyEmail activates the account named by an emailed uid/token pair.
func VerifyEmail(uidB64, token string) error {
	id, err := utils.DecodeUID(uidB64)
	if err != nil {
		return genericTokenErr
	}
	user, err := FindUserByID(id)
	if err != nil {
		return genericTokenErr
	}
	if user.IsActive {
		return ErrAlreadyVerified
	}
	if user.VerifyToken == "" || user.VerifyToken != token || time.Now().After(user.VerifyTokenExp) {
		return genericTokenErr
	}

	user.IsActive = true
	user.VerifyToken = ""
	user.VerifyTokenExp = time.Time{}
	return config.DB.Save(user).Error
}

// ResendVerification re-issues the token and mails a fresh link.
func ResendVerification(email string) error {
	user, err := FindUserByEmail(email)
	if err != nil {
		return NewFieldError("email", "No user with this email exists.")
	}
	if user.IsActive {
		return ErrAlreadyVerified
	}

	user.VerifyToken = utils.GenerateRandomToken(32)
	user.VerifyTokenExp = time.Now().Add(verifyTokenTTL)
	if err := config.DB.Save(user).Error; err != nil {
		return err
	}
	return utils.SendVerificationEmail(user.Email, user.Name, verificationLink(user))
}

// RequestPasswordReset issues a reset token and mails the link.
func RequestPasswordReset(email string) error {
	user, err := FindUserByEmail(email)
	if err != nil {
		return NewFieldError("email", "No user is associated with this email address.")
	}

	user.ResetToken = utils.GenerateRandomToken(32)
	user.ResetTokenExp = time.Now().Add(resetTokenTTL)
	if err := config.DB.Save(user).Error; err != nil {
		return err
	}
	return utils.SendPasswordResetEmail(user.Email, user.Name, resetLink(user))
}

type PasswordResetConfirmInput struct {
	NewPassword  string `json:"new_password" binding:"required,min=8"`
	NewPassword2 string `json:"new_password2" binding:"required"`
}

// ConfirmPasswordReset checks the emailed uid/token pair and sets the new
// password.
func ConfirmPasswordReset(uidB64, token string, input PasswordResetConfirmInput) error {
	if input.NewPassword != input.NewPassword2 {
		return NewFieldError("new_password", "Password fields didn't match.")
	}

	id, err := utils.DecodeUID(uidB64)
	if err != nil {
		return genericTokenErr
	}
	user, err := FindUserByID(id)
	if err != nil {
		return genericTokenErr
	}
	if user.ResetToken == "" || user.ResetToken != token || time.Now().After(user.ResetTokenExp) {
		return genericTokenErr
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	user.SessionsValidFrom = time.Now()
	return config.DB.Save(user).Error
}

type ChangePasswordInput struct {
	OldPassword  string `json:"old_password" binding:"required"`
	NewPassword  string `json:"new_password" binding:"required,min=8"`
	NewPassword2 string `json:"new_password2" binding:"required"`
}

// ChangePassword rehashes and invalidates every session issued before now.
func ChangePassword(userID uint, input ChangePasswordInput) error {
	user, err := FindUserByID(userID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(input.OldPassword, user.Password) {
		return NewFieldError("old_password", "Old password is incorrect.")
	}
	if input.NewPassword == input.OldPassword {
		return NewFieldError("new_password", "New password must be different from old password.")
	}
	if input.NewPassword != input.NewPassword2 {
		return NewFieldError("new_password2", "The two password fields didn't match.")
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.SessionsValidFrom = time.Now()
	return config.DB.Save(user).Error
}

type ProfileInput struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"` // base64 data URI, uploaded on change
}

func UserProfile(user *models.User) map[string]interface{} {
	return map[string]interface{}{
		"id":          user.ID,
		"email":       user.Email,
		"name":        user.Name,
		"avatar":      user.Avatar,
		"date_joined": user.CreatedAt,
		"last_login":  user.LastLogin,
	}
}

// UpdateProfile changes name and avatar. Email is immutable here.
func UpdateProfile(userID uint, input ProfileInput) (*models.User, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Avatar != "" {
		url, err := utils.UploadAvatar(input.Avatar, user.ID)
		if err != nil {
			return nil, NewFieldError("avatar", "Could not store the avatar image.")
		}
		user.Avatar = url
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the user; log entries cascade with it.
func DeleteAccount(userID uint) error {
	user, err := FindUserByID(userID)
	if err != nil {
		return err
	}
	if err := config.DB.Where("user_id = ?", userID).Delete(&models.FoodLogEntry{}).Error; err != nil {
		return err
	}
	return config.DB.Delete(user).Error
}
