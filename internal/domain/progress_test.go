package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/dax-daily/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDays() []domain.DayInfo {
	return []domain.DayInfo{
		{Day: 1, Tier: domain.TierFoundation, Title: "One"},
		{Day: 2, Tier: domain.TierFoundation, Title: "Two"},
		{Day: 3, Tier: domain.TierBuilder, Title: "Three"},
	}
}

func TestNewProgressSummary(t *testing.T) {
	learnerID := uuid.New()
	now := time.Now().UTC()

	t.Run("no completions", func(t *testing.T) {
		summary := domain.NewProgressSummary(learnerID, nil, testDays())

		assert.Equal(t, learnerID, summary.LearnerID)
		assert.Empty(t, summary.CompletedDays)
		assert.NotNil(t, summary.CompletedDays)
		assert.Equal(t, 0, summary.CompletedCount)
		assert.Equal(t, 3, summary.TotalDays)
		assert.Equal(t, 0, summary.Percent)
		require.Len(t, summary.Tiers, 2)
		assert.Equal(t, domain.TierProgress{
			Tier: domain.TierFoundation, Label: "Foundation", Completed: 0, Total: 2,
		}, summary.Tiers[0])
	})

	t.Run("sorted, deduplicated and rounded", func(t *testing.T) {
		completions := []domain.Completion{
			{LearnerID: learnerID, Day: 3, CompletedAt: now},
			{LearnerID: learnerID, Day: 1, CompletedAt: now},
			{LearnerID: learnerID, Day: 1, CompletedAt: now},
		}

		summary := domain.NewProgressSummary(learnerID, completions, testDays())

		assert.Equal(t, []int{1, 3}, summary.CompletedDays)
		assert.Equal(t, 2, summary.CompletedCount)
		assert.Equal(t, 67, summary.Percent)
		assert.Equal(t, 1, summary.Tiers[0].Completed)
		assert.Equal(t, 1, summary.Tiers[1].Completed)
	})

	t.Run("unknown days ignored", func(t *testing.T) {
		completions := []domain.Completion{{LearnerID: learnerID, Day: 99, CompletedAt: now}}

		summary := domain.NewProgressSummary(learnerID, completions, testDays())

		assert.Empty(t, summary.CompletedDays)
		assert.Equal(t, 0, summary.Percent)
	})

	t.Run("empty curriculum", func(t *testing.T) {
		summary := domain.NewProgressSummary(learnerID, nil, nil)

		assert.Equal(t, 0, summary.TotalDays)
		assert.Equal(t, 0, summary.Percent)
		assert.Empty(t, summary.Tiers)
	})
}
