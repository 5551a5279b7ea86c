package utils

import (
	"testing"
	"time"

	"funfans-backend/models"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndDecodeJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, issued, err := GenerateJWT(models.User{ID: "u1", Role: models.RoleCreator}, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.JTI)

	claims, err := DecodeJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, models.RoleCreator, claims.Role)
	assert.Equal(t, issued.JTI, claims.JTI)
	assert.WithinDuration(t, issued.ExpiresAt, claims.ExpiresAt, time.Second)
}

func TestDecodeJWT_RejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, _, err := GenerateJWT(models.User{ID: "u1", Role: models.RoleUser}, -time.Minute)
	require.NoError(t, err)

	_, err = DecodeJWT(token)
	assert.Error(t, err)
}

func TestDecodeJWT_RejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, _, err := GenerateJWT(models.User{ID: "u1"}, time.Hour)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "another-secret")
	_, err = DecodeJWT(token)
	assert.Error(t, err)
}

func TestDecodeJWT_RejectsMissingClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = DecodeJWT(signed)
	assert.EqualError(t, err, "token is missing required claims")
}
