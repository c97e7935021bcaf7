package utils

import (
	"testing"
	"time"

	"ratewave/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func testUser() *models.User {
	return &models.User{
		ID:       uuid.New(),
		Username: "testuser",
		Email:    "test@example.com",
	}
}

func TestGenerateSessionToken_Success(t *testing.T) {
	user := testUser()

	token, err := GenerateSessionToken(user, testSecret, time.Hour)

	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidateSessionToken_RoundTrip(t *testing.T) {
	user := testUser()
	token, err := GenerateSessionToken(user, testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateSessionToken(token, testSecret)

	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.Email, claims.Email)
}

func TestValidateSessionToken_WrongSecret(t *testing.T) {
	user := testUser()
	token, err := GenerateSessionToken(user, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ValidateSessionToken(token, "another-secret")

	assert.Error(t, err, "Token signed with a different secret should not validate")
}

func TestValidateSessionToken_Expired(t *testing.T) {
	user := testUser()
	token, err := GenerateSessionToken(user, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ValidateSessionToken(token, testSecret)

	assert.Error(t, err, "Expired token should not validate")
}

func TestValidateSessionToken_Garbage(t *testing.T) {
	_, err := ValidateSessionToken("not.a.token", testSecret)
	assert.Error(t, err)
}
