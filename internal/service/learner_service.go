package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/dax-daily/internal/domain"
	"github.com/phrazzld/dax-daily/internal/platform/logger"
	"github.com/phrazzld/dax-daily/internal/redact"
	"github.com/phrazzld/dax-daily/internal/service/auth"
	"github.com/phrazzld/dax-daily/internal/store"
)

// LearnerService manages learner accounts.
type LearnerService interface {
	// Register creates a learner account.
	// Returns store.ErrEmailExists if the email is taken, or a domain
	// validation error for a malformed email or password.
	Register(ctx context.Context, email, password string) (*domain.Learner, error)

	// Authenticate checks credentials and returns the matching learner.
	// Returns ErrInvalidCredentials for an unknown email or a wrong password.
	Authenticate(ctx context.Context, email, password string) (*domain.Learner, error)

	// GetLearner returns the learner with id.
	// Returns ErrInvalidLearner if no such learner exists.
	GetLearner(ctx context.Context, id uuid.UUID) (*domain.Learner, error)
}

type learnerServiceImpl struct {
	learners store.LearnerStore
	verifier auth.PasswordVerifier
	logger   *slog.Logger
}

var _ LearnerService = (*learnerServiceImpl)(nil)

// NewLearnerService creates a LearnerService.
func NewLearnerService(
	learners store.LearnerStore,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) LearnerService {
	if learners == nil {
		panic("learners cannot be nil")
	}
	if verifier == nil {
		panic("verifier cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &learnerServiceImpl{
		learners: learners,
		verifier: verifier,
		logger:   logger.With(slog.String("component", "learner_service")),
	}
}

// Register implements LearnerService.
func (s *learnerServiceImpl) Register(ctx context.Context, email, password string) (*domain.Learner, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	learner, err := domain.NewLearner(email, password)
	if err != nil {
		return nil, err
	}

	if err := s.learners.Create(ctx, learner); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("registration for existing email")
			return nil, err
		}
		log.Error("failed to create learner", redact.Attr(err))
		return nil, NewServiceError("register", "failed to create learner", err)
	}

	log.Info("learner registered", slog.String("learner_id", learner.ID.String()))
	return learner, nil
}

// Authenticate implements LearnerService.
func (s *learnerServiceImpl) Authenticate(ctx context.Context, email, password string) (*domain.Learner, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	learner, err := s.learners.GetByEmail(ctx, email)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("login for unknown email")
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to look up learner", redact.Attr(err))
		return nil, NewServiceError("authenticate", "failed to look up learner", err)
	}

	if err := s.verifier.Compare(learner.HashedPassword, password); err != nil {
		log.Debug("password mismatch", slog.String("learner_id", learner.ID.String()))
		return nil, ErrInvalidCredentials
	}

	return learner, nil
}

// GetLearner implements LearnerService.
func (s *learnerServiceImpl) GetLearner(ctx context.Context, id uuid.UUID) (*domain.Learner, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidLearner
	}

	learner, err := s.learners.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrInvalidLearner
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get learner",
			redact.Attr(err),
			slog.String("learner_id", id.String()))
		return nil, NewServiceError("get_learner", "failed to get learner", err)
	}

	return learner, nil
}
