package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/dax-daily/internal/domain"
	"github.com/phrazzld/dax-daily/internal/store"
)

// ProgressStore is an in-memory store.ProgressStore.
type ProgressStore struct {
	mu       sync.RWMutex
	progress map[uuid.UUID]map[int]time.Time
	timeFunc func() time.Time
}

var _ store.ProgressStore = (*ProgressStore)(nil)

// NewProgressStore creates an empty progress store.
func NewProgressStore() *ProgressStore {
	return &ProgressStore{
		progress: make(map[uuid.UUID]map[int]time.Time),
		timeFunc: time.Now,
	}
}

// Has implements store.ProgressStore.
func (s *ProgressStore) Has(_ context.Context, learnerID uuid.UUID, day int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.progress[learnerID][day]
	return ok, nil
}

// Add implements store.ProgressStore.
func (s *ProgressStore) Add(_ context.Context, learnerID uuid.UUID, day int) (bool, error) {
	if err := domain.ValidateDay(day); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	days, ok := s.progress[learnerID]
	if !ok {
		days = make(map[int]time.Time)
		s.progress[learnerID] = days
	}
	if _, done := days[day]; done {
		return false, nil
	}
	days[day] = s.timeFunc().UTC()
	return true, nil
}

// List implements store.ProgressStore.
func (s *ProgressStore) List(_ context.Context, learnerID uuid.UUID) ([]domain.Completion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	days := s.progress[learnerID]
	completions := make([]domain.Completion, 0, len(days))
	for day, at := range days {
		completions = append(completions, domain.Completion{
			LearnerID:   learnerID,
			Day:         day,
			CompletedAt: at,
		})
	}
	sort.Slice(completions, func(i, j int) bool { return completions[i].Day < completions[j].Day })

	return completions, nil
}
