package memory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/dax-daily/internal/domain"
	"github.com/phrazzld/dax-daily/internal/platform/logger"
	"github.com/phrazzld/dax-daily/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// LearnerStore is an in-memory store.LearnerStore.
type LearnerStore struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]domain.Learner
	byEmail    map[string]uuid.UUID
	bcryptCost int
	logger     *slog.Logger
}

var _ store.LearnerStore = (*LearnerStore)(nil)

// NewLearnerStore creates an empty learner store. A bcryptCost outside
// bcrypt's accepted range falls back to bcrypt.DefaultCost.
func NewLearnerStore(bcryptCost int, logger *slog.Logger) *LearnerStore {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LearnerStore{
		byID:       make(map[uuid.UUID]domain.Learner),
		byEmail:    make(map[string]uuid.UUID),
		bcryptCost: bcryptCost,
		logger:     logger.With(slog.String("component", "memory_learner_store")),
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create implements store.LearnerStore.
func (s *LearnerStore) Create(ctx context.Context, learner *domain.Learner) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := learner.Validate(); err != nil {
		return err
	}
	if learner.Password == "" {
		return domain.ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(learner.Password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("%w: failed to hash password: %v", store.ErrInternal, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := emailKey(learner.Email)
	if _, exists := s.byEmail[key]; exists {
		return store.ErrEmailExists
	}
	if _, exists := s.byID[learner.ID]; exists {
		return fmt.Errorf("%w: learner id", store.ErrDuplicate)
	}

	learner.HashedPassword = string(hashed)
	learner.Password = ""

	s.byID[learner.ID] = *learner
	s.byEmail[key] = learner.ID

	log.Info("learner created", slog.String("learner_id", learner.ID.String()))
	return nil
}

// GetByID implements store.LearnerStore.
func (s *LearnerStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Learner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	learner, ok := s.byID[id]
	if !ok {
		return nil, store.ErrLearnerNotFound
	}
	return &learner, nil
}

// GetByEmail implements store.LearnerStore.
func (s *LearnerStore) GetByEmail(_ context.Context, email string) (*domain.Learner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[emailKey(email)]
	if !ok {
		return nil, store.ErrLearnerNotFound
	}
	learner := s.byID[id]
	return &learner, nil
}
