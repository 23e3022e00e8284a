package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savori/savory-api/internal/config"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		AccessTokenSecret:           "test-access-secret-0123456789abcdef",
		RefreshTokenSecret:          "test-refresh-secret-0123456789abcdef",
		AccessTokenLifetimeMinutes:  60,
		RefreshTokenLifetimeMinutes: 120,
	}
}

func newTestService(t *testing.T) *hmacJWTService {
	t.Helper()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)
	return svc.(*hmacJWTService)
}

func TestNewJWTService_RejectsShortSecrets(t *testing.T) {
	t.Parallel()

	cfg := testAuthConfig()
	cfg.AccessTokenSecret = "too-short"
	_, err := NewJWTService(cfg)
	assert.Error(t, err)

	cfg = testAuthConfig()
	cfg.RefreshTokenSecret = "too-short"
	_, err = NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	token, err := svc.GenerateToken(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "access", claims.TokenType)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt))
}

func TestJWTService_RefreshTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	token, err := svc.GenerateRefreshToken(ctx, userID)
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "refresh", claims.TokenType)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	issuedAt := time.Now().Add(-24 * time.Hour)
	svc.timeFunc = func() time.Time { return issuedAt }

	token, err := svc.GenerateToken(ctx, uuid.New())
	require.NoError(t, err)

	// Validate well past the one-hour lifetime plus clock skew.
	svc.timeFunc = time.Now

	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_ExpiredRefreshToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	issuedAt := time.Now().Add(-72 * time.Hour)
	svc.timeFunc = func() time.Time { return issuedAt }

	token, err := svc.GenerateRefreshToken(ctx, uuid.New())
	require.NoError(t, err)

	svc.timeFunc = time.Now

	_, err = svc.ValidateRefreshToken(ctx, token)
	assert.ErrorIs(t, err, ErrExpiredRefreshToken)
}

func TestJWTService_WrongTokenType(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(config.AuthConfig{
		// Shared secret so the signature verifies and only the type
		// check can fail.
		AccessTokenSecret:           "shared-secret-0123456789abcdefghij",
		RefreshTokenSecret:          "shared-secret-0123456789abcdefghij",
		AccessTokenLifetimeMinutes:  60,
		RefreshTokenLifetimeMinutes: 120,
	})
	require.NoError(t, err)

	ctx := context.Background()

	refreshToken, err := svc.GenerateRefreshToken(ctx, uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(ctx, refreshToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	accessToken, err := svc.GenerateToken(ctx, uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(ctx, accessToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestJWTService_CrossSecretRejected(t *testing.T) {
	t.Parallel()

	// With distinct secrets, a refresh token fails access validation on
	// its signature before the type check is reached.
	svc := newTestService(t)
	ctx := context.Background()

	refreshToken, err := svc.GenerateRefreshToken(ctx, uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(ctx, refreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_TamperedToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, uuid.New())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	_, err = svc.ValidateToken(ctx, tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_GarbageInput(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.ValidateToken(ctx, input)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}
