package domain

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Completion records that a learner passed a day.
type Completion struct {
	LearnerID   uuid.UUID `json:"learner_id"`
	Day         int       `json:"day"`
	CompletedAt time.Time `json:"completed_at"`
}

// TierProgress counts completions within one tier.
type TierProgress struct {
	Tier      Tier   `json:"tier"`
	Label     string `json:"label"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// ProgressSummary is a learner's position in the course.
type ProgressSummary struct {
	LearnerID      uuid.UUID      `json:"learner_id"`
	CompletedDays  []int          `json:"completed_days"`
	CompletedCount int            `json:"completed_count"`
	TotalDays      int            `json:"total_days"`
	Percent        int            `json:"percent"`
	Tiers          []TierProgress `json:"tiers"`
}

// NewProgressSummary builds a summary from a learner's completions and the
// curriculum. Completions for days the curriculum does not know about are
// ignored, so the percentage never exceeds 100.
func NewProgressSummary(learnerID uuid.UUID, completions []Completion, days []DayInfo) *ProgressSummary {
	tierOf := make(map[int]Tier, len(days))
	totals := make(map[Tier]int, len(Tiers))
	for _, d := range days {
		tierOf[d.Day] = d.Tier
		totals[d.Tier]++
	}

	seen := make(map[int]bool, len(completions))
	completed := make([]int, 0, len(completions))
	done := make(map[Tier]int, len(Tiers))
	for _, c := range completions {
		tier, ok := tierOf[c.Day]
		if !ok || seen[c.Day] {
			continue
		}
		seen[c.Day] = true
		completed = append(completed, c.Day)
		done[tier]++
	}
	sort.Ints(completed)

	summary := &ProgressSummary{
		LearnerID:      learnerID,
		CompletedDays:  completed,
		CompletedCount: len(completed),
		TotalDays:      len(days),
	}
	if len(days) > 0 {
		summary.Percent = int(math.Floor(float64(len(completed))/float64(len(days))*100 + 0.5))
	}

	for _, tier := range Tiers {
		if totals[tier] == 0 {
			continue
		}
		summary.Tiers = append(summary.Tiers, TierProgress{
			Tier:      tier,
			Label:     tier.Label(),
			Completed: done[tier],
			Total:     totals[tier],
		})
	}

	return summary
}
