package controllers

import (
	"errors"
	"net/http"

	"github.com/hazalkoom/Food-Tracker/services"

	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := services.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotVerified) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account email is not verified"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, pair)
}

type RefreshInput struct {
	Refresh string `json:"refresh" binding:"required"`
}

func RefreshToken(c *gin.Context) {
	var input RefreshInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	access, err := services.RefreshAccessToken(input.Refresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is invalid or expired"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": access})
}

type VerifyTokenInput struct {
	Token string `json:"token" binding:"required"`
}

func VerifyToken(c *gin.Context) {
	var input VerifyTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.VerifyToken(input.Token); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is invalid or expired"})
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

type LogoutInput struct {
	Refresh string `json:"refresh" binding:"required"`
}

func Logout(c *gin.Context) {
	var input LogoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired refresh token."})
		return
	}

	if err := services.Logout(input.Refresh); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired refresh token."})
		return
	}

	c.JSON(http.StatusResetContent, gin.H{"message": "Successfully logged out."})
}
