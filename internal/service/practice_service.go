package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/dax-daily/internal/curriculum"
	"github.com/phrazzld/dax-daily/internal/domain"
	"github.com/phrazzld/dax-daily/internal/domain/validation"
	"github.com/phrazzld/dax-daily/internal/platform/logger"
	"github.com/phrazzld/dax-daily/internal/redact"
	"github.com/phrazzld/dax-daily/internal/store"
)

// ContentProvider is the read-only course content the practice service
// needs. *curriculum.Catalog implements it.
type ContentProvider interface {
	Days() []domain.DayInfo
	ByTier(tier domain.Tier) []domain.DayInfo
	Day(day int) (domain.DayInfo, error)
	Challenge(day int) (domain.Challenge, error)
	TotalDays() int
}

var _ ContentProvider = (*curriculum.Catalog)(nil)

// SubmissionResult is the verdict for a submission plus its effect on the
// learner's progress.
type SubmissionResult struct {
	validation.Verdict
	// Recorded is true when this submission completed the day for the first time.
	Recorded bool `json:"recorded"`
	// AlreadyCompleted is true when the day had been completed before.
	AlreadyCompleted bool `json:"already_completed"`
}

// Lesson is a day's challenge as shown before the learner attempts it.
// It omits the solution and the grading rules.
type Lesson struct {
	Day            int         `json:"day"`
	Tier           domain.Tier `json:"tier"`
	TierLabel      string      `json:"tier_label"`
	Title          string      `json:"title"`
	ConceptTopic   string      `json:"concept_topic"`
	DAXFocus       string      `json:"dax_focus"`
	ConceptLesson  string      `json:"concept_lesson"`
	KeyTakeaways   []string    `json:"key_takeaways"`
	Scenario       string      `json:"scenario"`
	Instructions   string      `json:"instructions"`
	StarterCode    string      `json:"starter_code"`
	ExpectedOutput string      `json:"expected_output"`
	Hints          []string    `json:"hints"`
	SampleModel    string      `json:"sample_model"`
	PowerBINotes   string      `json:"power_bi_notes"`
}

// Solution is the revealed reference answer for a day.
type Solution struct {
	Day      int           `json:"day"`
	Solution string        `json:"solution"`
	Patterns []domain.Rule `json:"patterns"`
}

// PracticeService serves lessons and grades learner submissions.
type PracticeService interface {
	// ListDays returns the course schedule in order.
	ListDays(ctx context.Context) []domain.DayInfo

	// ListDaysByTier returns the days of one tier in course order.
	ListDaysByTier(ctx context.Context, tier domain.Tier) []domain.DayInfo

	// GetLesson returns the lesson for day.
	// Returns ErrDayNotFound for days outside the course.
	GetLesson(ctx context.Context, day int) (*Lesson, error)

	// GetSolution returns the reference solution for day.
	// Returns ErrDayNotFound for days outside the course.
	GetSolution(ctx context.Context, day int) (*Solution, error)

	// SubmitAnswer grades code against day's challenge. A passing verdict
	// marks the day completed for the learner; a failing one changes nothing.
	// Every call grades afresh.
	SubmitAnswer(ctx context.Context, learnerID uuid.UUID, day int, code string) (*SubmissionResult, error)

	// GetProgress summarises the days the learner has completed.
	GetProgress(ctx context.Context, learnerID uuid.UUID) (*domain.ProgressSummary, error)
}

type practiceServiceImpl struct {
	content  ContentProvider
	engine   validation.Engine
	progress store.ProgressStore
	logger   *slog.Logger
}

var _ PracticeService = (*practiceServiceImpl)(nil)

// NewPracticeService creates a PracticeService.
func NewPracticeService(
	content ContentProvider,
	engine validation.Engine,
	progress store.ProgressStore,
	logger *slog.Logger,
) PracticeService {
	if content == nil {
		panic("content cannot be nil")
	}
	if engine == nil {
		panic("engine cannot be nil")
	}
	if progress == nil {
		panic("progress cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &practiceServiceImpl{
		content:  content,
		engine:   engine,
		progress: progress,
		logger:   logger.With(slog.String("component", "practice_service")),
	}
}

// ListDays implements PracticeService.
func (s *practiceServiceImpl) ListDays(_ context.Context) []domain.DayInfo {
	return s.content.Days()
}

// ListDaysByTier implements PracticeService.
func (s *practiceServiceImpl) ListDaysByTier(_ context.Context, tier domain.Tier) []domain.DayInfo {
	return s.content.ByTier(tier)
}

// GetLesson implements PracticeService.
func (s *practiceServiceImpl) GetLesson(ctx context.Context, day int) (*Lesson, error) {
	info, challenge, err := s.lookup(ctx, "get_lesson", day)
	if err != nil {
		return nil, err
	}

	return &Lesson{
		Day:            day,
		Tier:           info.Tier,
		TierLabel:      info.Tier.Label(),
		Title:          challenge.Title,
		ConceptTopic:   info.ConceptTopic,
		DAXFocus:       info.DAXFocus,
		ConceptLesson:  challenge.ConceptLesson,
		KeyTakeaways:   challenge.KeyTakeaways,
		Scenario:       challenge.Scenario,
		Instructions:   challenge.Instructions,
		StarterCode:    challenge.StarterCode,
		ExpectedOutput: challenge.ExpectedOutput,
		Hints:          challenge.Hints,
		SampleModel:    challenge.SampleModel,
		PowerBINotes:   challenge.PowerBINotes,
	}, nil
}

// GetSolution implements PracticeService.
func (s *practiceServiceImpl) GetSolution(ctx context.Context, day int) (*Solution, error) {
	_, challenge, err := s.lookup(ctx, "get_solution", day)
	if err != nil {
		return nil, err
	}

	return &Solution{
		Day:      day,
		Solution: challenge.Solution,
		Patterns: challenge.ValidationRules,
	}, nil
}

// SubmitAnswer implements PracticeService.
func (s *practiceServiceImpl) SubmitAnswer(
	ctx context.Context,
	learnerID uuid.UUID,
	day int,
	code string,
) (*SubmissionResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if learnerID == uuid.Nil {
		return nil, ErrInvalidLearner
	}

	_, challenge, err := s.lookup(ctx, "submit_answer", day)
	if err != nil {
		return nil, err
	}

	verdict := s.engine.Evaluate(code, challenge.Solution, challenge.ValidationRules)
	result := &SubmissionResult{Verdict: verdict}

	log.Debug("submission graded",
		slog.String("learner_id", learnerID.String()),
		slog.Int("day", day),
		slog.Int("score", verdict.Score),
		slog.Bool("pass", verdict.Pass))

	completed, err := s.progress.Has(ctx, learnerID, day)
	if err != nil {
		log.Error("failed to read progress",
			redact.Attr(err),
			slog.String("learner_id", learnerID.String()),
			slog.Int("day", day))
		return nil, NewServiceError("submit_answer", "failed to read progress", err)
	}
	result.AlreadyCompleted = completed

	if !verdict.Pass || completed {
		return result, nil
	}

	added, err := s.progress.Add(ctx, learnerID, day)
	if err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			return nil, ErrInvalidLearner
		}
		log.Error("failed to record completion",
			redact.Attr(err),
			slog.String("learner_id", learnerID.String()),
			slog.Int("day", day))
		return nil, NewServiceError("submit_answer", "failed to record completion", err)
	}
	if !added {
		// Another submission completed the day after the Has check.
		result.AlreadyCompleted = true
		return result, nil
	}
	result.Recorded = true

	log.Info("day completed",
		slog.String("learner_id", learnerID.String()),
		slog.Int("day", day),
		slog.Int("score", verdict.Score))

	return result, nil
}

// GetProgress implements PracticeService.
func (s *practiceServiceImpl) GetProgress(
	ctx context.Context,
	learnerID uuid.UUID,
) (*domain.ProgressSummary, error) {
	if learnerID == uuid.Nil {
		return nil, ErrInvalidLearner
	}

	completions, err := s.progress.List(ctx, learnerID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list progress",
			redact.Attr(err),
			slog.String("learner_id", learnerID.String()))
		return nil, NewServiceError("get_progress", "failed to list progress", err)
	}

	return domain.NewProgressSummary(learnerID, completions, s.content.Days()), nil
}

// lookup fetches the curriculum entry and challenge for day.
func (s *practiceServiceImpl) lookup(
	ctx context.Context,
	operation string,
	day int,
) (domain.DayInfo, domain.Challenge, error) {
	info, err := s.content.Day(day)
	if err == nil {
		var challenge domain.Challenge
		challenge, err = s.content.Challenge(day)
		if err == nil {
			return info, challenge, nil
		}
	}

	if errors.Is(err, curriculum.ErrDayNotFound) {
		logger.FromContextOrDefault(ctx, s.logger).Debug("day not found",
			slog.String("operation", operation),
			slog.Int("day", day))
		return domain.DayInfo{}, domain.Challenge{}, fmt.Errorf("%w: %w", ErrDayNotFound, err)
	}
	return domain.DayInfo{}, domain.Challenge{}, NewServiceError(operation, "failed to load challenge", err)
}
