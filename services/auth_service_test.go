package services

import (
	"testing"
	"time"

	"github.com/hazalkoom/Food-Tracker/config"
	"github.com/hazalkoom/Food-Tracker/models"
	"github.com/hazalkoom/Food-Tracker/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createCredentialedUser(t *testing.T, email, password string, active bool) *models.User {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{
		Email:    email,
		Password: hashed,
		Name:     "Auth User",
		IsActive: active,
	}
	require.NoError(t, config.DB.Create(user).Error)
	return user
}

func TestAuthenticateUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	setupTestDB(t)
	createCredentialedUser(t, "login@example.com", "correct horse", true)
	createCredentialedUser(t, "unverified@example.com", "correct horse", false)

	t.Run("ValidCredentials", func(t *testing.T) {
		pair, err := AuthenticateUser("login@example.com", "correct horse")
		require.NoError(t, err)
		assert.NotEmpty(t, pair.Access)
		assert.NotEmpty(t, pair.Refresh)

		require.NoError(t, VerifyToken(pair.Access))
		require.NoError(t, VerifyToken(pair.Refresh))
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := AuthenticateUser("login@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, err := AuthenticateUser("ghost@example.com", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnverifiedAccount", func(t *testing.T) {
		_, err := AuthenticateUser("unverified@example.com", "correct horse")
		assert.ErrorIs(t, err, ErrAccountNotVerified)
	})
}

func TestRefreshAndLogout(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	setupTestDB(t)
	createCredentialedUser(t, "session@example.com", "correct horse", true)

	pair, err := AuthenticateUser("session@example.com", "correct horse")
	require.NoError(t, err)

	t.Run("RefreshMintsAccessToken", func(t *testing.T) {
		access, err := RefreshAccessToken(pair.Refresh)
		require.NoError(t, err)
		require.NoError(t, VerifyToken(access))
	})

	t.Run("AccessTokenCannotRefresh", func(t *testing.T) {
		_, err := RefreshAccessToken(pair.Access)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("GarbageCannotRefresh", func(t *testing.T) {
		_, err := RefreshAccessToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("LogoutRevokesRefresh", func(t *testing.T) {
		require.NoError(t, Logout(pair.Refresh))

		_, err := RefreshAccessToken(pair.Refresh)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.ErrorIs(t, VerifyToken(pair.Refresh), ErrInvalidToken)

		// repeat logout is treated as success
		require.NoError(t, Logout(pair.Refresh))
	})

	t.Run("LogoutRejectsAccessToken", func(t *testing.T) {
		assert.ErrorIs(t, Logout(pair.Access), ErrInvalidToken)
	})
}

func TestPasswordChangeRevokesSessions(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	setupTestDB(t)
	user := createCredentialedUser(t, "rotate@example.com", "correct horse", true)

	pair, err := AuthenticateUser("rotate@example.com", "correct horse")
	require.NoError(t, err)
	require.NoError(t, VerifyToken(pair.Access))

	user.SessionsValidFrom = time.Now().Add(2 * time.Second)
	require.NoError(t, config.DB.Save(user).Error)

	assert.ErrorIs(t, VerifyToken(pair.Access), ErrInvalidToken)
	assert.ErrorIs(t, VerifyToken(pair.Refresh), ErrInvalidToken)
	_, err = RefreshAccessToken(pair.Refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
