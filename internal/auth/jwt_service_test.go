package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateAccessToken("user-123", "shopper@example.com", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "shopper@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestGenerateRefreshToken(t *testing.T) {
	service := NewJWTService("test-secret")

	tokenID, token, err := service.GenerateRefreshToken("user-123", "shopper@example.com", "user")
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)
	require.NotEmpty(t, token)

	extracted, err := service.ExtractTokenID(token)
	require.NoError(t, err)
	assert.Equal(t, tokenID, extracted)
}

func TestValidateToken_Invalid(t *testing.T) {
	service := NewJWTService("test-secret")

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage string", token: "not-a-token"},
		{name: "empty string", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a")
	verifier := NewJWTService("secret-b")

	token, err := issuer.GenerateAccessToken("user-123", "shopper@example.com", "user")
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestExtractTokenID_AccessTokenHasNone(t *testing.T) {
	service := NewJWTService("test-secret")

	// Access tokens carry no JTI; only refresh tokens do.
	token, err := service.GenerateAccessToken("user-123", "shopper@example.com", "user")
	require.NoError(t, err)

	_, err = service.ExtractTokenID(token)
	assert.Error(t, err)
}
