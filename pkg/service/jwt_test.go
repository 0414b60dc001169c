package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "intranet-portal/pkg/errors"
)

func newTestJWTService(accessTTL, refreshTTL time.Duration) JWTService {
	return NewJWTService("test-secret-key", accessTTL, refreshTTL, zap.NewNop())
}

func testProfile() TokenProfile {
	return TokenProfile{
		UserID:  42,
		Email:   "user@portal.local",
		Name:    "Тестовый Пользователь",
		Role:    "member",
		IsOwner: false,
	}
}

func TestGenerateAndValidateTokens(t *testing.T) {
	svc := newTestJWTService(time.Hour, 24*time.Hour)

	accessToken, refreshToken, err := svc.GenerateTokens(testProfile())
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	claims, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "user@portal.local", claims.Email)
	assert.Equal(t, "member", claims.Role)
	assert.False(t, claims.IsRefreshToken)

	refreshClaims, err := svc.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.True(t, refreshClaims.IsRefreshToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService(time.Hour, 24*time.Hour)
	accessToken, _, err := svc.GenerateTokens(testProfile())
	require.NoError(t, err)

	other := NewJWTService("another-secret", time.Hour, 24*time.Hour, zap.NewNop())
	_, err = other.ValidateToken(accessToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestJWTService(-time.Minute, 24*time.Hour)
	accessToken, _, err := svc.GenerateTokens(testProfile())
	require.NoError(t, err)

	_, err = svc.ValidateToken(accessToken)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestJWTService(time.Hour, 24*time.Hour)
	_, err := svc.ValidateToken("definitely.not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
