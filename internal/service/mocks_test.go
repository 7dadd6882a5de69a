package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/dax-daily/internal/domain"
	"github.com/phrazzld/dax-daily/internal/domain/validation"
	"github.com/stretchr/testify/mock"
)

// MockProgressStore mocks store.ProgressStore
type MockProgressStore struct {
	mock.Mock
}

func (m *MockProgressStore) Has(ctx context.Context, learnerID uuid.UUID, day int) (bool, error) {
	args := m.Called(ctx, learnerID, day)
	return args.Bool(0), args.Error(1)
}

func (m *MockProgressStore) Add(ctx context.Context, learnerID uuid.UUID, day int) (bool, error) {
	args := m.Called(ctx, learnerID, day)
	return args.Bool(0), args.Error(1)
}

func (m *MockProgressStore) List(ctx context.Context, learnerID uuid.UUID) ([]domain.Completion, error) {
	args := m.Called(ctx, learnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Completion), args.Error(1)
}

// MockLearnerStore mocks store.LearnerStore
type MockLearnerStore struct {
	mock.Mock
}

func (m *MockLearnerStore) Create(ctx context.Context, learner *domain.Learner) error {
	args := m.Called(ctx, learner)
	return args.Error(0)
}

func (m *MockLearnerStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Learner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Learner), args.Error(1)
}

func (m *MockLearnerStore) GetByEmail(ctx context.Context, email string) (*domain.Learner, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Learner), args.Error(1)
}

// MockPasswordVerifier mocks auth.PasswordVerifier
type MockPasswordVerifier struct {
	mock.Mock
}

func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	args := m.Called(hashedPassword, password)
	return args.Error(0)
}

// stubEngine returns a fixed verdict and records what it was asked to grade.
type stubEngine struct {
	verdict    validation.Verdict
	submission string
	solution   string
	rules      []domain.Rule
}

func (e *stubEngine) Evaluate(submission, solution string, rules []domain.Rule) validation.Verdict {
	e.submission = submission
	e.solution = solution
	e.rules = rules
	return e.verdict
}
