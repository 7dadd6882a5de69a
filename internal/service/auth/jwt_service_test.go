package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/dax-daily/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "test-secret-that-is-long-enough-for-testing"
	wrongSecret = "wrong-secret-that-is-long-enough-for-testing"
)

var fixedTime = time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, secret string, now func() time.Time) *hmacJWTService {
	t.Helper()

	svc, err := newHMACJWTService(secret, time.Hour, 7*24*time.Hour, now)
	require.NoError(t, err)
	return svc
}

func at(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(config.AuthConfig{
		JWTSecret:                   testSecret,
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 120,
	})
	require.NoError(t, err)
	assert.NotNil(t, svc)

	_, err = NewJWTService(config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 1, RefreshTokenLifetimeMinutes: 2})
	assert.Error(t, err)

	_, err = NewJWTService(config.AuthConfig{JWTSecret: testSecret})
	assert.Error(t, err, "zero lifetimes are rejected")
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, testSecret, at(fixedTime))
	learnerID := uuid.New()

	token, err := svc.GenerateToken(context.Background(), learnerID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, learnerID, claims.LearnerID)
	assert.Equal(t, learnerID.String(), claims.Subject)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	learnerID := uuid.New()
	issuer := newTestService(t, testSecret, at(fixedTime))

	access, err := issuer.GenerateToken(context.Background(), learnerID)
	require.NoError(t, err)
	refresh, err := issuer.GenerateRefreshToken(context.Background(), learnerID)
	require.NoError(t, err)

	tests := []struct {
		name      string
		validator *hmacJWTService
		token     string
		wantErr   error
	}{
		{"valid token", issuer, access, nil},
		{
			"within clock skew after expiry",
			newTestService(t, testSecret, at(fixedTime.Add(time.Hour+time.Minute))),
			access,
			nil,
		},
		{
			"expired token",
			newTestService(t, testSecret, at(fixedTime.Add(2*time.Hour))),
			access,
			ErrExpiredToken,
		},
		{"wrong signature", newTestService(t, wrongSecret, at(fixedTime)), access, ErrInvalidToken},
		{"malformed token", issuer, "not-a-jwt", ErrInvalidToken},
		{"refresh token used as access", issuer, refresh, ErrWrongTokenType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tt.validator.ValidateToken(context.Background(), tt.token)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, learnerID, claims.LearnerID)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, claims)
		})
	}
}

func TestValidateRefreshToken(t *testing.T) {
	t.Parallel()

	learnerID := uuid.New()
	issuer := newTestService(t, testSecret, at(fixedTime))

	access, err := issuer.GenerateToken(context.Background(), learnerID)
	require.NoError(t, err)
	refresh, err := issuer.GenerateRefreshToken(context.Background(), learnerID)
	require.NoError(t, err)

	claims, err := issuer.ValidateRefreshToken(context.Background(), refresh)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
	assert.Equal(t, fixedTime.Add(7*24*time.Hour).Unix(), claims.ExpiresAt.Unix())

	_, err = issuer.ValidateRefreshToken(context.Background(), access)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	later := newTestService(t, testSecret, at(fixedTime.Add(8*24*time.Hour)))
	_, err = later.ValidateRefreshToken(context.Background(), refresh)
	assert.ErrorIs(t, err, ErrExpiredRefreshToken)

	other := newTestService(t, wrongSecret, at(fixedTime))
	_, err = other.ValidateRefreshToken(context.Background(), refresh)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestValidateToken_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	claims := jwtCustomClaims{
		LearnerID: uuid.New(),
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	svc := newTestService(t, testSecret, at(fixedTime))
	_, err = svc.ValidateToken(context.Background(), unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
