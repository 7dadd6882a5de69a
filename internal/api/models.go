package api

import (
	"github.com/google/uuid"
	"github.com/phrazzld/dax-daily/internal/domain"
)

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	LearnerID    uuid.UUID `json:"learner_id"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	// ExpiresAt is the RFC 3339 expiry of the access token.
	ExpiresAt string `json:"expires_at"`
}

// RefreshTokenRequest is the body of POST /api/auth/refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse is a fresh token pair.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
}

// SubmissionRequest is the body of POST /api/days/{day}/submissions.
// An empty code string is valid and simply scores low.
type SubmissionRequest struct {
	Code string `json:"code" validate:"max=20000"`
}

// TierSection is one tier of the curriculum listing.
type TierSection struct {
	Tier  domain.Tier      `json:"tier"`
	Label string           `json:"label"`
	Days  []domain.DayInfo `json:"days"`
}

// CurriculumResponse is the body of GET /api/curriculum.
type CurriculumResponse struct {
	Title     string        `json:"title"`
	TotalDays int           `json:"total_days"`
	Tiers     []TierSection `json:"tiers"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
