package services

import (
	"errors"
	"time"

	"github.com/hazalkoom/Food-Tracker/config"
	"github.com/hazalkoom/Food-Tracker/models"
	"github.com/hazalkoom/Food-Tracker/utils"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotVerified = errors.New("account email is not verified")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthenticateUser checks credentials and returns an access/refresh pair.
// Unverified accounts cannot log in.
func AuthenticateUser(email, password string) (*utils.TokenPair, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountNotVerified
	}

	pair, err := utils.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	user.LastLogin = time.Now()
	config.DB.Save(&user)

	return pair, nil
}

// RefreshAccessToken exchanges a live, un-revoked refresh token for a new
// access token.
func RefreshAccessToken(refreshToken string) (string, error) {
	claims, err := validRefreshClaims(refreshToken)
	if err != nil {
		return "", err
	}

	userID, ok := utils.ClaimUserID(claims)
	if !ok {
		return "", ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	user, err := FindUserByID(userID)
	if err != nil {
		return "", ErrInvalidToken
	}
	if sessionRevoked(user, claims) {
		return "", ErrInvalidToken
	}

	return utils.GenerateAccessToken(user.ID, email)
}

// VerifyToken reports whether a token (access or refresh) still validates.
func VerifyToken(tokenString string) error {
	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		return ErrInvalidToken
	}

	if tokenType, _ := claims["type"].(string); tokenType == "refresh" {
		if jti, _ := claims["jti"].(string); jti != "" && IsTokenRevoked(jti) {
			return ErrInvalidToken
		}
	}

	userID, ok := utils.ClaimUserID(claims)
	if !ok {
		return ErrInvalidToken
	}
	user, err := FindUserByID(userID)
	if err != nil {
		return ErrInvalidToken
	}
	if sessionRevoked(user, claims) {
		return ErrInvalidToken
	}
	return nil
}

// Logout blacklists the refresh token so it can't mint new access tokens.
// Logging out an already-revoked token succeeds.
func Logout(refreshToken string) error {
	claims, err := utils.ParseToken(refreshToken)
	if err != nil {
		return ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return ErrInvalidToken
	}

	jti, _ := claims["jti"].(string)
	if jti == "" {
		return ErrInvalidToken
	}
	if IsTokenRevoked(jti) {
		return nil
	}
	userID, _ := utils.ClaimUserID(claims)

	expiresAt := time.Now()
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Time
	}

	revoked := models.RevokedToken{JTI: jti, UserID: userID, ExpiresAt: expiresAt}
	if err := config.DB.Create(&revoked).Error; err != nil {
		// already blacklisted counts as success
		var existing models.RevokedToken
		if config.DB.Where("jti = ?", jti).First(&existing).Error == nil {
			return nil
		}
		return err
	}
	return nil
}

func IsTokenRevoked(jti string) bool {
	var revoked models.RevokedToken
	err := config.DB.Where("jti = ?", jti).First(&revoked).Error
	return !errors.Is(err, gorm.ErrRecordNotFound)
}

func validRefreshClaims(refreshToken string) (jwt.MapClaims, error) {
	claims, err := utils.ParseToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return nil, ErrInvalidToken
	}
	if jti, _ := claims["jti"].(string); jti != "" && IsTokenRevoked(jti) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// sessionRevoked rejects tokens issued before the user's last password
// change.
func sessionRevoked(user *models.User, claims jwt.MapClaims) bool {
	if user.SessionsValidFrom.IsZero() {
		return false
	}
	iat, err := claims.GetIssuedAt()
	if err != nil || iat == nil {
		return true
	}
	// truncate to seconds, iat carries no sub-second precision
	return iat.Time.Before(user.SessionsValidFrom.Truncate(time.Second))
}
