package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	cfg := DefaultConfig("test-secret", time.Hour)

	token, err := GenerateToken("google-oauth2|12345", "u1@example.com", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, "test-secret")
	require.NoError(t, err)
	require.Equal(t, "google-oauth2|12345", claims.Subject)
	require.Equal(t, "u1@example.com", claims.Email)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	cfg := DefaultConfig("test-secret", time.Hour)

	token, err := GenerateToken("sub", "u1@example.com", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	require.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	cfg := DefaultConfig("test-secret", time.Hour)
	cfg.AccessExpiry = -time.Minute

	token, err := GenerateToken("sub", "u1@example.com", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "test-secret")
	require.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "test-secret")
	require.Error(t, err)
}
