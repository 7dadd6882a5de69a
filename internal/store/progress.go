package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/dax-daily/internal/domain"
)

// ProgressStore records which days each learner has completed.
//
// It is a set per learner: adding a day twice is not an error and keeps
// the original completion time.
type ProgressStore interface {
	// Has reports whether the learner has completed day.
	Has(ctx context.Context, learnerID uuid.UUID, day int) (bool, error)

	// Add marks day as completed for the learner. added is true only for the
	// call that inserted the completion; concurrent adds of the same day
	// report true exactly once.
	Add(ctx context.Context, learnerID uuid.UUID, day int) (added bool, err error)

	// List returns the learner's completions ordered by day.
	List(ctx context.Context, learnerID uuid.UUID) ([]domain.Completion, error)
}
