package auth

import (
	"testing"
	"time"

	"pizzahouse/config"
	"pizzahouse/internal/domain/constants"
	"pizzahouse/internal/infra/clock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	now := time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC)
	svc, err := NewJWTService(newTestConfig(testSecret), clock.NewMockClock(now))
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{constants.RoleCustomer, constants.RoleAdmin}

	token, err := svc.GenerateAccessToken(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, now.Add(15*time.Minute), claims.ExpiresAt.UTC())
	assert.Equal(t, 15*time.Minute, svc.AccessTokenDuration())
}

func TestJWTService_ExpiredToken(t *testing.T) {
	mockClock := clock.NewMockClock(time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC))
	cfg := newTestConfig(testSecret)
	cfg.SecretKey.AccessTTL = time.Minute
	svc, err := NewJWTService(cfg, mockClock)
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	mockClock.Add(2 * time.Minute)

	claims, err := svc.ValidateAccessToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	now := time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC)
	svc, err := NewJWTService(newTestConfig(testSecret), clock.NewMockClock(now))
	require.NoError(t, err)

	other, err := NewJWTService(newTestConfig("a_different_secret_of_similar_length"), clock.NewMockClock(now))
	require.NoError(t, err)
	foreign, err := other.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"exp":  now.Add(time.Hour).Unix(),
		"type": "access",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"exp":  now.Add(time.Hour).Unix(),
		"type": "refresh",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "wrong secret", token: foreign},
		{name: "unsigned", token: noneToken},
		{name: "refresh token", token: refreshToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateAccessToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(""), clock.NewMockClock(time.Now()))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}
