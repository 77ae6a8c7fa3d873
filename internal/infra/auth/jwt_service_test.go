package auth

import (
	"testing"
	"time"

	"parkpin/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	cfg := testJWTConfig()

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token against the access secret
	parsed, err := jwtService.ValidateToken(accessToken, cfg.SecretKey.Access)
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	claims, err := parsed.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims)

	// Validate refresh token against the refresh secret
	parsed, err = jwtService.ValidateToken(refreshToken, cfg.SecretKey.Refresh)
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
}

func TestJWTService_TokenTypeClaims(t *testing.T) {
	cfg := testJWTConfig()

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, refreshToken, err := jwtService.GenerateTokens(uuid.New())
	require.NoError(t, err)

	parsed, err := jwtService.ValidateToken(accessToken, cfg.SecretKey.Access)
	require.NoError(t, err)
	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "access", mapClaims["type"])

	parsed, err = jwtService.ValidateToken(refreshToken, cfg.SecretKey.Refresh)
	require.NoError(t, err)
	mapClaims, ok = parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "refresh", mapClaims["type"])
}

func TestJWTService_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, _, err := jwtService.GenerateTokens(uuid.New())
	require.NoError(t, err)

	// An access token must not validate against the refresh secret.
	_, err = jwtService.ValidateToken(accessToken, cfg.SecretKey.Refresh)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := testJWTConfig()

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken("clearly-not-a-jwt-token-format", cfg.SecretKey.Access)
	assert.Error(t, err)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	cfg := testJWTConfig()

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, jwtService.GetRefreshTokenDuration())
}

func TestJWTService_ConfiguredTTL(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL:  5 * time.Minute,
		RefreshTokenTTL: 48 * time.Hour,
	}

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, 48*time.Hour, jwtService.GetRefreshTokenDuration())
}
