package validation

// Params defines the weights and thresholds used to score a submission.
type Params struct {
	// Blend of the two sub-scores. The weights should sum to 1.
	RuleWeight       float64
	SimilarityWeight float64

	// PassThreshold is the minimum score that counts as a pass.
	PassThreshold int

	// Solution tokens shorter than this many characters are not keywords.
	MinKeywordLength int
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance
type ParamsConfig struct {
	RuleWeight       float64
	SimilarityWeight float64
	PassThreshold    int
	MinKeywordLength int
}

// NewDefaultParams returns the weights used by the course.
func NewDefaultParams() *Params {
	return &Params{
		RuleWeight:       0.6,
		SimilarityWeight: 0.4,
		PassThreshold:    70,
		MinKeywordLength: 4,
	}
}

// NewParams creates a Params instance, keeping defaults for any zero field.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.RuleWeight > 0 {
		params.RuleWeight = config.RuleWeight
	}
	if config.SimilarityWeight > 0 {
		params.SimilarityWeight = config.SimilarityWeight
	}
	if config.PassThreshold > 0 {
		params.PassThreshold = config.PassThreshold
	}
	if config.MinKeywordLength > 0 {
		params.MinKeywordLength = config.MinKeywordLength
	}

	return params
}
