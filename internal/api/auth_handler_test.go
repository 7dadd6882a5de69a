package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/dax-daily/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	resp := env.register(t, "ada@example.com")
	assert.NotEqual(t, uuid.Nil, resp.LearnerID)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	_, err := time.Parse(time.RFC3339, resp.ExpiresAt)
	assert.NoError(t, err)

	claims, err := env.jwtService.ValidateToken(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.LearnerID, claims.LearnerID)

	tests := []struct {
		name    string
		body    any
		status  int
		message string
	}{
		{
			name:    "duplicate email",
			body:    RegisterRequest{Email: "ADA@example.com", Password: testPassword},
			status:  http.StatusConflict,
			message: "Email already exists",
		},
		{
			name:    "short password",
			body:    RegisterRequest{Email: "grace@example.com", Password: "short"},
			status:  http.StatusBadRequest,
			message: "Invalid Password: too short",
		},
		{
			name:    "bad email",
			body:    RegisterRequest{Email: "grace", Password: testPassword},
			status:  http.StatusBadRequest,
			message: "Invalid Email: invalid email format",
		},
		{
			name:    "malformed json",
			body:    `{"email":`,
			status:  http.StatusBadRequest,
			message: "Invalid request format",
		},
		{
			name:    "unknown field",
			body:    `{"email":"grace@example.com","password":"correct horse battery","admin":true}`,
			status:  http.StatusBadRequest,
			message: "Invalid request format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do(t, http.MethodPost, "/api/auth/register", tt.body, "")
			assert.Equal(t, tt.status, rr.Code)

			errResp := decode[shared.ErrorResponse](t, rr)
			assert.Equal(t, tt.message, errResp.Error)
			assert.NotEmpty(t, errResp.TraceID)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	registered := env.register(t, "ada@example.com")

	t.Run("valid credentials", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/api/auth/login",
			LoginRequest{Email: "ada@example.com", Password: testPassword}, "")
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decode[AuthResponse](t, rr)
		assert.Equal(t, registered.LearnerID, resp.LearnerID)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		for _, req := range []LoginRequest{
			{Email: "ada@example.com", Password: "not the password"},
			{Email: "nobody@example.com", Password: testPassword},
		} {
			rr := env.do(t, http.MethodPost, "/api/auth/login", req, "")
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Invalid email or password", decode[shared.ErrorResponse](t, rr).Error)
		}
	})

	t.Run("missing password", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/api/auth/login", LoginRequest{Email: "ada@example.com"}, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid Password: required field", decode[shared.ErrorResponse](t, rr).Error)
	})
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	registered := env.register(t, "ada@example.com")

	t.Run("valid refresh token", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/api/auth/refresh",
			RefreshTokenRequest{RefreshToken: registered.RefreshToken}, "")
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decode[RefreshTokenResponse](t, rr)
		claims, err := env.jwtService.ValidateToken(context.Background(), resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, registered.LearnerID, claims.LearnerID)
		_, err = env.jwtService.ValidateRefreshToken(context.Background(), resp.RefreshToken)
		assert.NoError(t, err)
	})

	t.Run("access token is rejected", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/api/auth/refresh",
			RefreshTokenRequest{RefreshToken: registered.AccessToken}, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Invalid refresh token", decode[shared.ErrorResponse](t, rr).Error)
	})

	t.Run("garbage token", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/api/auth/refresh", RefreshTokenRequest{RefreshToken: "nope"}, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("learner no longer exists", func(t *testing.T) {
		token, err := env.jwtService.GenerateRefreshToken(context.Background(), uuid.New())
		require.NoError(t, err)

		rr := env.do(t, http.MethodPost, "/api/auth/refresh", RefreshTokenRequest{RefreshToken: token}, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/api/auth/refresh", `{}`, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid RefreshToken: required field", decode[shared.ErrorResponse](t, rr).Error)
	})
}
