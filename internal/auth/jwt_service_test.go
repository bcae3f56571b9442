package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateAccessToken(42, "testuser")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "testuser", claims.Username)
	assert.Empty(t, claims.ID, "access tokens carry no JTI")
}

func TestJWTService_RefreshTokenCarriesID(t *testing.T) {
	service := NewJWTService("test-secret")

	tokenID, token, err := service.GenerateRefreshToken(42, "testuser")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenID)

	extracted, err := service.ExtractTokenID(token)
	assert.NoError(t, err)
	assert.Equal(t, tokenID, extracted)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	service := NewJWTService("test-secret")
	other := NewJWTService("other-secret")

	token, err := service.GenerateAccessToken(42, "testuser")
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	service := NewJWTService("test-secret")

	_, err := service.ValidateToken("not-a-jwt")
	assert.Error(t, err)

	_, err = service.ExtractTokenID("not-a-jwt")
	assert.Error(t, err)
}
