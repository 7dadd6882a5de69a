package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/dax-daily/internal/domain"
)

// LearnerStore defines the interface for learner account persistence.
type LearnerStore interface {
	// Create saves a new learner, hashing its plaintext password.
	// Returns ErrEmailExists if the email is already taken.
	// Returns validation errors from the domain Learner if data is invalid.
	Create(ctx context.Context, learner *domain.Learner) error

	// GetByID retrieves a learner by ID.
	// Returns ErrLearnerNotFound if the learner does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Learner, error)

	// GetByEmail retrieves a learner by email address, ignoring case.
	// Returns ErrLearnerNotFound if the learner does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.Learner, error)
}
