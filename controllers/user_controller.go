package controllers

import (
	"errors"
	"net/http"

	"github.com/hazalkoom/Food-Tracker/middlewares"
	"github.com/hazalkoom/Food-Tracker/services"

	"github.com/gin-gonic/gin"
)

func Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.RegisterUser(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully. Please check your email to verify your account.",
		"user":    services.UserProfile(user),
	})
}

// GET /api/users/verify-email/:uid/:token
func VerifyEmail(c *gin.Context) {
	err := services.VerifyEmail(c.Param("uid"), c.Param("token"))
	if err != nil {
		if errors.Is(err, services.ErrAlreadyVerified) {
			c.JSON(http.StatusOK, gin.H{"message": "Email is already verified."})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully."})
}

type EmailInput struct {
	Email string `json:"email" binding:"required,email"`
}

func ResendVerification(c *gin.Context) {
	var input EmailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := services.ResendVerification(input.Email)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyVerified) {
			c.JSON(http.StatusOK, gin.H{"message": "Email is already verified."})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verification email resent. Please check your inbox."})
}

func PasswordResetRequest(c *gin.Context) {
	var input EmailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.RequestPasswordReset(input.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent. Please check your inbox."})
}

// POST /api/users/password-reset-confirm/:uid/:token
func PasswordResetConfirm(c *gin.Context) {
	var input services.PasswordResetConfirmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := services.ConfirmPasswordReset(c.Param("uid"), c.Param("token"), input)
	if err != nil {
		var fieldErr *services.FieldError
		if errors.As(err, &fieldErr) {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset successfully."})
}

func GetProfile(c *gin.Context) {
	user, err := services.FindUserByID(middlewares.UserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	c.JSON(http.StatusOK, services.UserProfile(user))
}

func UpdateProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateProfile(middlewares.UserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.UserProfile(user))
}

func DeleteProfile(c *gin.Context) {
	if err := services.DeleteAccount(middlewares.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func ChangePassword(c *gin.Context) {
	var input services.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.ChangePassword(middlewares.UserID(c), input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully. Please login again."})
}
