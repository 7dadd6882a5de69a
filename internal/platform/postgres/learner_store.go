package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/dax-daily/internal/domain"
	"github.com/phrazzld/dax-daily/internal/platform/logger"
	"github.com/phrazzld/dax-daily/internal/redact"
	"github.com/phrazzld/dax-daily/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// PostgresLearnerStore implements the store.LearnerStore interface
// using a PostgreSQL database as the storage backend.
type PostgresLearnerStore struct {
	db         store.DBTX
	bcryptCost int
	logger     *slog.Logger
}

// NewPostgresLearnerStore creates a new PostgreSQL implementation of the LearnerStore interface.
// A bcryptCost outside bcrypt's accepted range falls back to bcrypt.DefaultCost.
// If logger is nil, a default logger will be used.
func NewPostgresLearnerStore(db store.DBTX, bcryptCost int, logger *slog.Logger) *PostgresLearnerStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresLearnerStore{
		db:         db,
		bcryptCost: bcryptCost,
		logger:     logger.With(slog.String("component", "learner_store")),
	}
}

// Ensure PostgresLearnerStore implements store.LearnerStore interface
var _ store.LearnerStore = (*PostgresLearnerStore)(nil)

// Create implements store.LearnerStore.Create
// It validates the learner, hashes the plaintext password and inserts the row.
// On success the learner's HashedPassword is set and Password is cleared.
func (s *PostgresLearnerStore) Create(ctx context.Context, learner *domain.Learner) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := learner.Validate(); err != nil {
		log.Warn("learner validation failed during create",
			redact.Attr(err),
			slog.String("learner_id", learner.ID.String()))
		return err
	}
	if learner.Password == "" {
		return domain.ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(learner.Password), s.bcryptCost)
	if err != nil {
		log.Error("failed to hash password", redact.Attr(err))
		return fmt.Errorf("%w: failed to hash password: %v", store.ErrInternal, err)
	}

	query := `
		INSERT INTO learners (id, email, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		learner.ID,
		learner.Email,
		string(hashed),
		learner.CreatedAt,
		learner.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("email already registered", slog.String("learner_id", learner.ID.String()))
			return store.ErrEmailExists
		}
		log.Error("failed to create learner",
			redact.Attr(err),
			slog.String("learner_id", learner.ID.String()))
		return store.NewStoreError("learner", "create", "insert failed", MapError(err))
	}

	learner.HashedPassword = string(hashed)
	learner.Password = ""

	log.Info("learner created", slog.String("learner_id", learner.ID.String()))
	return nil
}

// GetByID implements store.LearnerStore.GetByID
func (s *PostgresLearnerStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Learner, error) {
	query := `
		SELECT id, email, hashed_password, created_at, updated_at
		FROM learners
		WHERE id = $1
	`
	return s.getOne(ctx, query, id, slog.String("learner_id", id.String()))
}

// GetByEmail implements store.LearnerStore.GetByEmail
func (s *PostgresLearnerStore) GetByEmail(ctx context.Context, email string) (*domain.Learner, error) {
	query := `
		SELECT id, email, hashed_password, created_at, updated_at
		FROM learners
		WHERE LOWER(email) = LOWER($1)
	`
	return s.getOne(ctx, query, strings.TrimSpace(email), slog.String("lookup", "email"))
}

func (s *PostgresLearnerStore) getOne(
	ctx context.Context,
	query string,
	arg any,
	attr slog.Attr,
) (*domain.Learner, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var learner domain.Learner
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&learner.ID,
		&learner.Email,
		&learner.HashedPassword,
		&learner.CreatedAt,
		&learner.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("learner not found", attr)
			return nil, store.ErrLearnerNotFound
		}
		log.Error("failed to get learner", redact.Attr(err), attr)
		return nil, store.NewStoreError("learner", "get", "query failed", MapError(err))
	}

	return &learner, nil
}
