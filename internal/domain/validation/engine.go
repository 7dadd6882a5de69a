package validation

import (
	"strings"

	"github.com/phrazzld/dax-daily/internal/domain"
)

// Verdict is the outcome of evaluating one submission.
type Verdict struct {
	Score        int          `json:"score"`
	Pass         bool         `json:"pass"`
	Feedback     string       `json:"feedback"`
	Improvements []string     `json:"improvements"`
	RuleDetails  []RuleDetail `json:"rule_details"`
	RuleScore    int          `json:"rule_score"`
	Similarity   int          `json:"similarity"`
}

// Engine scores submissions.
type Engine interface {
	// Evaluate scores submission against the reference solution and rules.
	// It never fails and never modifies its arguments.
	Evaluate(submission, solution string, rules []domain.Rule) Verdict
}

// defaultEngine is the standard implementation of the Engine interface
type defaultEngine struct {
	params *Params
}

var _ Engine = (*defaultEngine)(nil)

// NewEngine creates an engine with the default parameters.
func NewEngine() Engine {
	return &defaultEngine{params: NewDefaultParams()}
}

// NewEngineWithParams creates an engine with custom parameters.
// A nil params falls back to the defaults.
func NewEngineWithParams(params *Params) Engine {
	if params == nil {
		params = NewDefaultParams()
	}
	return &defaultEngine{params: params}
}

// Evaluate implements Engine.
func (e *defaultEngine) Evaluate(submission, solution string, rules []domain.Rule) Verdict {
	lowerSubmission := strings.ToLower(submission)

	details := checkRules(lowerSubmission, rules)
	compliance := ruleScore(details)
	similarity := keywordSimilarity(lowerSubmission, solution, e.params.MinKeywordLength)
	score := blendScore(compliance, similarity, e.params)

	return Verdict{
		Score:        score,
		Pass:         score >= e.params.PassThreshold,
		Feedback:     feedbackFor(score),
		Improvements: improvementsFor(details),
		RuleDetails:  details,
		RuleScore:    compliance,
		Similarity:   similarity,
	}
}

// Evaluate scores a submission with the default engine.
func Evaluate(submission, solution string, rules []domain.Rule) Verdict {
	return defaultValidator.Evaluate(submission, solution, rules)
}

var defaultValidator = NewEngine()
