package postgres

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/dax-daily/internal/domain"
	"github.com/phrazzld/dax-daily/internal/platform/logger"
	"github.com/phrazzld/dax-daily/internal/redact"
	"github.com/phrazzld/dax-daily/internal/store"
)

// PostgresProgressStore implements the store.ProgressStore interface
// on the learner_progress table.
type PostgresProgressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProgressStore creates a new PostgreSQL implementation of the ProgressStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresProgressStore(db store.DBTX, logger *slog.Logger) *PostgresProgressStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProgressStore{
		db:     db,
		logger: logger.With(slog.String("component", "progress_store")),
	}
}

// Ensure PostgresProgressStore implements store.ProgressStore interface
var _ store.ProgressStore = (*PostgresProgressStore)(nil)

// Has implements store.ProgressStore.Has
func (s *PostgresProgressStore) Has(ctx context.Context, learnerID uuid.UUID, day int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM learner_progress WHERE learner_id = $1 AND day = $2
		)
	`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, learnerID, day).Scan(&exists); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to check progress",
			redact.Attr(err),
			slog.String("learner_id", learnerID.String()),
			slog.Int("day", day))
		return false, store.NewStoreError("progress", "has", "query failed", MapError(err))
	}

	return exists, nil
}

// Add implements store.ProgressStore.Add
// Re-adding a completed day is a no-op that keeps the first completion time.
func (s *PostgresProgressStore) Add(ctx context.Context, learnerID uuid.UUID, day int) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateDay(day); err != nil {
		return false, err
	}

	query := `
		INSERT INTO learner_progress (learner_id, day, completed_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (learner_id, day) DO NOTHING
	`
	result, err := s.db.ExecContext(ctx, query, learnerID, day)
	if err != nil {
		log.Error("failed to record progress",
			redact.Attr(err),
			slog.String("learner_id", learnerID.String()),
			slog.Int("day", day))
		return false, store.NewStoreError("progress", "add", "insert failed", MapError(err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, store.NewStoreError("progress", "add", "reading affected rows failed", err)
	}
	if rows == 0 {
		return false, nil
	}

	log.Info("day completed",
		slog.String("learner_id", learnerID.String()),
		slog.Int("day", day))
	return true, nil
}

// List implements store.ProgressStore.List
func (s *PostgresProgressStore) List(ctx context.Context, learnerID uuid.UUID) ([]domain.Completion, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT learner_id, day, completed_at
		FROM learner_progress
		WHERE learner_id = $1
		ORDER BY day
	`
	rows, err := s.db.QueryContext(ctx, query, learnerID)
	if err != nil {
		log.Error("failed to list progress",
			redact.Attr(err),
			slog.String("learner_id", learnerID.String()))
		return nil, store.NewStoreError("progress", "list", "query failed", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", redact.Attr(closeErr))
		}
	}()

	completions := make([]domain.Completion, 0)
	for rows.Next() {
		var c domain.Completion
		if err := rows.Scan(&c.LearnerID, &c.Day, &c.CompletedAt); err != nil {
			return nil, MapError(err)
		}
		completions = append(completions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return completions, nil
}
