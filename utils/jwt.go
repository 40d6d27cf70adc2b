package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	AccessTokenTTL  = time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func GenerateAccessToken(userID uint, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"type":   "access",
		"iat":    now.Unix(),
		"exp":    now.Add(AccessTokenTTL).Unix(),
	})
	return token.SignedString(jwtSecret())
}

func GenerateRefreshToken(userID uint, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"type":   "refresh",
		"jti":    uuid.NewString(),
		"iat":    now.Unix(),
		"exp":    now.Add(RefreshTokenTTL).Unix(),
	})
	return token.SignedString(jwtSecret())
}

func GenerateTokenPair(userID uint, email string) (*TokenPair, error) {
	access, err := GenerateAccessToken(userID, email)
	if err != nil {
		return nil, err
	}
	refresh, err := GenerateRefreshToken(userID, email)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// ParseToken validates signature and expiry and returns the claims.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

// ClaimUserID pulls the userId claim out of a parsed token.
func ClaimUserID(claims jwt.MapClaims) (uint, bool) {
	switch id := claims["userId"].(type) {
	case float64:
		return uint(id), true
	case int64:
		return uint(id), true
	}
	return 0, false
}
