package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Learner validation errors
var (
	ErrEmptyLearnerID      = errors.New("learner ID cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 12 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// Password length limits. 72 bytes is bcrypt's input limit.
const (
	MinPasswordLength = 12
	MaxPasswordLength = 72
)

// Learner is a registered account whose course progress is tracked.
type Learner struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext, only present during registration
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewLearner creates a Learner with a fresh ID and timestamps.
//
// The password is kept in plaintext on the returned value; the store is
// responsible for hashing it before persisting.
func NewLearner(email, password string) (*Learner, error) {
	now := time.Now().UTC()
	learner := &Learner{
		ID:        uuid.New(),
		Email:     strings.TrimSpace(email),
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := learner.Validate(); err != nil {
		return nil, err
	}

	return learner, nil
}

// Validate checks the learner's fields. A learner without a plaintext
// password must already carry a hash.
func (l *Learner) Validate() error {
	if l.ID == uuid.Nil {
		return ErrEmptyLearnerID
	}

	if l.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(l.Email) {
		return ErrInvalidEmail
	}

	if l.Password != "" {
		switch {
		case len(l.Password) < MinPasswordLength:
			return ErrPasswordTooShort
		case len(l.Password) > MaxPasswordLength:
			return ErrPasswordTooLong
		}
		return nil
	}

	if l.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// validateEmailFormat performs a structural check: one local part, an @,
// and a domain containing a dot that is neither first nor last.
// Request payloads are additionally checked by the validator's email tag.
func validateEmailFormat(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domainPart := email[at+1:]
	if len(domainPart) < 3 || strings.ContainsRune(domainPart, '@') {
		return false
	}

	dot := strings.IndexByte(domainPart, '.')
	return dot > 0 && dot < len(domainPart)-1
}
